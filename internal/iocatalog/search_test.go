package iocatalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromHref(t *testing.T) {
	tests := []struct {
		msg, href, prefix, key string
	}{
		{"track link", "/catalog/NCSU1234567/track?counter=1", "NCSU", "1234567"},
		{"plain link", "/catalog/NCSU1234567", "NCSU", "1234567"},
		{"query", "/catalog/NCSU12?counter=1", "NCSU", "12"},
		{"no prefix", "/catalog/UNC77/track", "NCSU", "UNC77"},
		{"empty prefix", "/catalog/NCSU5/track", "", "NCSU5"},
		{"punctuation", "/catalog/NCSU12-3_4/track", "NCSU", "1234"},
		{"nothing left", "/catalog/NCSU/track", "NCSU", ""},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			assert.Equal(t, v.key, keyFromHref(v.href, v.prefix))
		})
	}
}

func TestTopResultKey(t *testing.T) {
	tests := []struct {
		msg, page, key string
	}{
		{
			msg: "first result wins",
			page: `<a data-context-href="/catalog/NCSU1/track?counter=1">a</a>
			       <a data-context-href="/catalog/NCSU2/track?counter=2">b</a>`,
			key: "1",
		},
		{
			msg: "other links are ignored",
			page: `<a href="/catalog/NCSU9">x</a>
			       <a data-context-href="/bookmarks/NCSU8">y</a>
			       <div><p><a data-context-href="/catalog/NCSU3/track">z</a></p></div>`,
			key: "3",
		},
		{
			msg:  "attribute on a wrong element",
			page: `<div data-context-href="/catalog/NCSU4/track"></div>`,
			key:  "",
		},
		{
			msg:  "no results",
			page: `<html><body>No results</body></html>`,
			key:  "",
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			key, err := topResultKey(strings.NewReader(v.page), "NCSU")
			require.NoError(t, err)
			assert.Equal(t, v.key, key)
		})
	}
}
