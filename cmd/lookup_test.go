package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/gnames/txlist/pkg/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type stubCatalog struct {
	keys    map[string]string
	records map[string]string
}

func (s stubCatalog) Search(_ context.Context, isbn string) (string, error) {
	if isbn == "0000000666" {
		return "", errors.New("connection refused")
	}
	return s.keys[isbn], nil
}

func (s stubCatalog) Detail(_ context.Context, key string) (*catalog.Record, error) {
	js, ok := s.records[key]
	if !ok {
		return nil, nil
	}
	return catalog.DecodeRecord([]byte(js))
}

func TestGetLookupCmd(t *testing.T) {
	cmd := getLookupCmd()
	assert.Equal(t, "lookup", cmd.Name())
	assert.Error(t, cmd.Args(cmd, nil), "At least one ISBN is required")
	assert.NoError(t, cmd.Args(cmd, []string{"9780131103627"}))
}

func TestLookupAll(t *testing.T) {
	cat := stubCatalog{
		keys: map[string]string{
			"0131103628":    "1234",
			"9780000000004": "5678",
		},
		records: map[string]string{
			"1234": `{
  "isbn": ["0131103628", "9780131103627"],
  "title": "The C programming language",
  "statement_of_responsibility": "Brian W. Kernighan",
  "edition": "2nd ed.",
  "publication_year": 1988,
  "call_number": "QA76.73.C15 K47 1988",
  "type": "Book",
  "locations": {"library": "Hill", "location": "Stacks"},
  "items": [{"item_id": "S0292-34"}]
}`,
		},
	}

	var buf bytes.Buffer
	inputs := []string{
		"0-13-110362-8", "9780000000004", "9780000000005", "0000000666", "abc",
	}
	require.NoError(t, lookupAll(context.Background(), cat, &buf, inputs))

	var res []lookupOutput
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	require.Len(t, res, 5)

	found := res[0]
	assert.Equal(t, "0131103628", found.ISBN)
	assert.Equal(t, "found", found.Status)
	assert.Equal(t, "1234", found.Key)
	assert.Equal(t, "The C programming language", found.Title)
	assert.Equal(t, "1988", found.Year)
	assert.Equal(t, "Book", found.ItemType)
	assert.Equal(t, "Hill - Stacks", found.Locations)
	assert.Equal(t, "S029234", found.Barcodes)
	assert.Equal(t, "0131103628\n9780131103627", found.AllISBNs)

	tests := []struct {
		msg    string
		out    lookupOutput
		status string
		err    bool
	}{
		{"no details", res[1], "found", true},
		{"not found", res[2], "not found", false},
		{"failed search", res[3], "failed", true},
		{"invalid", res[4], "invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.out.Status)
			assert.Equal(t, tt.err, tt.out.Error != "")
			assert.Empty(t, tt.out.Title)
		})
	}
}

func TestLookupAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := lookupAll(ctx, stubCatalog{}, &buf, []string{"9780131103627"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
