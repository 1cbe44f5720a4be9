// Package isbn canonicalizes book identifiers that come from spreadsheets.
//
// Spreadsheet cells deliver ISBNs as digit strings, as numbers (losing
// leading zeros), or as float-formatted text ("9780000000001.0",
// "9.780000000001E+12"). Canonical form is a digit string left-padded with
// zeros to at least 10 characters. Canonical strings are the only basis
// for identifier equality in txlist.
package isbn

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinWidth is the shortest canonical identifier.
const MinWidth = 10

// ErrInvalid is returned for blank, zero, or malformed identifiers.
var ErrInvalid = errors.New("invalid identifier")

// Normalize converts a raw value into its canonical identifier form.
// Supported inputs are strings, signed and unsigned integers and floats.
func Normalize(raw any) (string, error) {
	var s string
	switch v := raw.(type) {
	case nil:
		return "", fmt.Errorf("%w: blank", ErrInvalid)
	case string:
		s = v
	case int:
		return fromInt(int64(v))
	case int64:
		return fromInt(v)
	case int32:
		return fromInt(int64(v))
	case uint:
		s = strconv.FormatUint(uint64(v), 10)
	case uint64:
		s = strconv.FormatUint(v, 10)
	case float64:
		f, err := fromFloat(v)
		if err != nil {
			return "", err
		}
		s = f
	case float32:
		f, err := fromFloat(float64(v))
		if err != nil {
			return "", err
		}
		s = f
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalid, raw)
	}
	return normalizeString(s)
}

// Clean is like Normalize, but returns an empty string for invalid
// values.
func Clean(raw any) string {
	res, err := Normalize(raw)
	if err != nil {
		return ""
	}
	return res
}

// NormalizeAll canonicalizes a list of raw values, removes duplicates and
// keeps the first-seen order. Invalid values are dropped and counted.
func NormalizeAll(raws []string) ([]string, int) {
	var invalid int
	seen := make(map[string]struct{}, len(raws))
	res := make([]string, 0, len(raws))
	for _, v := range raws {
		id, err := Normalize(v)
		if err != nil {
			invalid++
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		res = append(res, id)
	}
	return res, invalid
}

// IsValid returns true if the value normalizes without errors.
func IsValid(raw any) bool {
	_, err := Normalize(raw)
	return err == nil
}

func normalizeString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: blank", ErrInvalid)
	}

	// numbers exported as text by spreadsheets
	if strings.ContainsAny(s, "eE") || strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", fmt.Errorf("%w: '%s'", ErrInvalid, s)
		}
		if s, err = fromFloat(f); err != nil {
			return "", err
		}
	}

	s = strings.NewReplacer("-", "", " ", "").Replace(s)
	s = strings.ToUpper(s)

	for i, r := range s {
		if r >= '0' && r <= '9' {
			continue
		}
		// X is a valid check digit of ISBN-10
		if r == 'X' && i == len(s)-1 && i > 0 {
			continue
		}
		return "", fmt.Errorf("%w: '%s'", ErrInvalid, s)
	}

	if strings.Trim(s, "0") == "" {
		return "", fmt.Errorf("%w: zero", ErrInvalid)
	}

	if len(s) < MinWidth {
		s = strings.Repeat("0", MinWidth-len(s)) + s
	}
	return s, nil
}

func fromInt(i int64) (string, error) {
	if i < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalid, i)
	}
	return normalizeString(strconv.FormatInt(i, 10))
}

func fromFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return "", fmt.Errorf("%w: %v", ErrInvalid, f)
	}
	return strconv.FormatFloat(f, 'f', 0, 64), nil
}
