package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/txlist/pkg/catalog"
	"github.com/stretchr/testify/assert"
)

type stubCatalog struct {
	keys map[string]string
	errs map[string]error
}

func (s stubCatalog) Search(_ context.Context, isbn string) (string, error) {
	if err, ok := s.errs[isbn]; ok {
		return "", err
	}
	return s.keys[isbn], nil
}

func (s stubCatalog) Detail(_ context.Context, _ string) (*catalog.Record, error) {
	return nil, nil
}

func TestResolve(t *testing.T) {
	errNet := errors.New("connection refused")
	c := stubCatalog{
		keys: map[string]string{
			"9780000000003": "123",
			"9780000000004": "  ",
		},
		errs: map[string]error{"9780000000005": errNet},
	}

	tests := []struct {
		msg    string
		isbn   string
		key    string
		status catalog.Status
	}{
		{"found", "9780000000003", "123", catalog.Found},
		{"blank key", "9780000000004", "", catalog.NotFound},
		{"not found", "9780000000006", "", catalog.NotFound},
		{"failed", "9780000000005", "", catalog.Failed},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := catalog.Resolve(context.Background(), c, v.isbn)
			assert.Equal(t, v.isbn, res.ISBN)
			assert.Equal(t, v.key, res.Key)
			assert.Equal(t, v.status, res.Status)
			if v.status == catalog.Failed {
				assert.ErrorIs(t, res.Err, errNet)
			} else {
				assert.Nil(t, res.Err)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "found", catalog.Found.String())
	assert.Equal(t, "not found", catalog.NotFound.String())
	assert.Equal(t, "failed", catalog.Failed.String())
}
