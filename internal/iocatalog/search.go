package iocatalog

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

const resultAttr = "data-context-href"

// topResultKey finds the first search result link of a results page
// and extracts the catalog key from it. Links look like
// /catalog/NCSU1234567/track?counter=1. Returns an empty key if the page
// has no results.
func topResultKey(r io.Reader, prefix string) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	href := findResult(doc)
	if href == "" {
		return "", nil
	}
	return keyFromHref(href, prefix), nil
}

func findResult(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "a" {
		if href := getAttr(n, resultAttr); strings.HasPrefix(href, "/catalog/") {
			return href
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if href := findResult(c); href != "" {
			return href
		}
	}
	return ""
}

func getAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func keyFromHref(href, prefix string) string {
	key := strings.TrimPrefix(href, "/catalog/")
	if i := strings.IndexAny(key, "/?#"); i > -1 {
		key = key[:i]
	}
	key = strings.TrimPrefix(key, prefix)

	var sb strings.Builder
	for _, r := range key {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') ||
			('0' <= r && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
