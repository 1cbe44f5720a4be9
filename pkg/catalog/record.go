package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"unicode"

	"github.com/gnames/gnfmt"
)

// Record is a holding record of the catalog. The catalog JSON is loosely
// structured: any field can be missing, null, a scalar or a list. Missing
// fields decode to empty values.
type Record struct {
	ISBN               Text           `json:"isbn"`
	Title              Text           `json:"title"`
	Responsibility     Text           `json:"statement_of_responsibility"`
	Edition            Text           `json:"edition"`
	PublicationYear    Text           `json:"publication_year"`
	LocationList       List[Location] `json:"locations"`
	CallNumber         Text           `json:"call_number"`
	Type               Text           `json:"type"`
	ItemList           List[Item]     `json:"items"`
	AccessRestrictions Text           `json:"access_restrictions"`
}

// Location is a library and a shelving location inside it.
type Location struct {
	Library  Text `json:"library"`
	Location Text `json:"location"`
}

// Item is one physical copy.
type Item struct {
	ItemID Text `json:"item_id"`
}

// DecodeRecord parses JSON of a holding record.
func DecodeRecord(data []byte) (*Record, error) {
	var res Record
	enc := gnfmt.GNjson{}
	if err := enc.Decode(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AllISBNs returns all identifiers of the record, one per line.
func (r *Record) AllISBNs() string {
	if r == nil {
		return ""
	}
	return r.ISBN.String()
}

// Locations returns "library - location" lines in catalog order.
func (r *Record) Locations() string {
	if r == nil {
		return ""
	}
	var res []string
	for _, v := range r.LocationList {
		parts := make([]string, 0, 2)
		if s := v.Library.Join(" "); s != "" {
			parts = append(parts, s)
		}
		if s := v.Location.Join(" "); s != "" {
			parts = append(parts, s)
		}
		if len(parts) == 0 {
			continue
		}
		res = append(res, strings.Join(parts, " - "))
	}
	return strings.Join(res, "\n")
}

// Barcodes returns item identifiers of physical copies, one per line.
func (r *Record) Barcodes() string {
	if r == nil {
		return ""
	}
	var res []string
	for _, v := range r.ItemList {
		code := alnum(v.ItemID.Join(" "))
		if code == "" {
			continue
		}
		res = append(res, code)
	}
	return strings.Join(res, "\n")
}

// ItemType returns "eBook" for electronic holdings. Otherwise it returns
// the type reported by the catalog without punctuation.
func (r *Record) ItemType() string {
	if r == nil {
		return ""
	}
	if strings.Contains(strings.ToLower(r.CallNumber.String()), "ebook") {
		return "eBook"
	}
	return alnum(r.Type.Join(" "))
}

// alnum removes everything except letters, digits and spaces.
func alnum(s string) string {
	res := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(res)
}

// Text is a JSON value flattened to strings. Strings, numbers and booleans
// become one element, lists are flattened, objects contribute their
// "display" value, null is empty.
type Text []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*t = flatten(v, nil)
	return nil
}

// String joins values with a new line.
func (t Text) String() string {
	return t.Join("\n")
}

// Join joins non-empty values with a separator.
func (t Text) Join(sep string) string {
	res := make([]string, 0, len(t))
	for _, v := range t {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return strings.Join(res, sep)
}

func flatten(v any, res []string) []string {
	switch d := v.(type) {
	case nil:
		return res
	case string:
		return append(res, d)
	case float64:
		return append(res, strconv.FormatFloat(d, 'f', -1, 64))
	case bool:
		return append(res, strconv.FormatBool(d))
	case []any:
		for _, e := range d {
			res = flatten(e, res)
		}
		return res
	case map[string]any:
		return flatten(d["display"], res)
	default:
		return res
	}
}

// List decodes a JSON list of objects. A single object is treated as a
// list of one, elements that cannot be decoded are skipped, other values
// give an empty list.
type List[T any] []T

// UnmarshalJSON implements json.Unmarshaler.
func (l *List[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*l = nil
	if len(b) == 0 {
		return nil
	}

	var raws []json.RawMessage
	switch b[0] {
	case '[':
		if err := json.Unmarshal(b, &raws); err != nil {
			return nil
		}
	case '{':
		raws = []json.RawMessage{b}
	default:
		return nil
	}

	res := make(List[T], 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		res = append(res, v)
	}
	*l = res
	return nil
}
