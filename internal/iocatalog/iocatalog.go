// Package iocatalog implements catalog.Catalog on top of the library
// catalog web site. Identifier search scrapes the HTML results page,
// holding records come from the JSON view of a catalog item.
package iocatalog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gnames/txlist/pkg/catalog"
	"github.com/gnames/txlist/pkg/config"
)

// Client is an HTTP client of the library catalog.
type Client struct {
	baseURL   string
	keyPrefix string
	userAgent string
	http      *http.Client
}

// New creates a catalog client from configuration.
func New(cfg *config.Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.Catalog.BaseURL, "/"),
		keyPrefix: cfg.Catalog.KeyPrefix,
		userAgent: cfg.Catalog.UserAgent,
		http: &http.Client{
			Timeout: time.Duration(cfg.Catalog.Timeout) * time.Second,
		},
	}
}

// SearchURL returns the URL of the search results page of an identifier.
func (c *Client) SearchURL(isbn string) string {
	return c.baseURL + "/?search_field=all_fields&q=" + url.QueryEscape(isbn)
}

// DetailURL returns the URL of the JSON holding record of a catalog key.
func (c *Client) DetailURL(key string) string {
	return c.baseURL + "/catalog/" + url.PathEscape(c.keyPrefix+key) + ".json"
}

// Search implements catalog.Catalog.
func (c *Client) Search(ctx context.Context, isbn string) (string, error) {
	u := c.SearchURL(isbn)
	resp, err := c.get(ctx, u, "text/html")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", CatalogStatusError(u, resp.StatusCode)
	}

	key, err := topResultKey(resp.Body, c.keyPrefix)
	if err != nil {
		return "", CatalogParseError(u, err)
	}
	slog.Debug("Catalog search", "isbn", isbn, "key", key)
	return key, nil
}

// Detail implements catalog.Catalog.
func (c *Client) Detail(ctx context.Context, key string) (*catalog.Record, error) {
	u := c.DetailURL(key)
	resp, err := c.get(ctx, u, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		slog.Debug("Catalog item has no content", "key", key)
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, CatalogStatusError(u, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, CatalogRequestError(u, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	res, err := catalog.DecodeRecord(data)
	if err != nil {
		return nil, CatalogParseError(u, err)
	}
	return res, nil
}

func (c *Client) get(
	ctx context.Context,
	u, accept string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, CatalogRequestError(u, err)
	}
	req.Header.Set("Accept", accept)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, CatalogRequestError(u, err)
	}
	return resp, nil
}
