package iocatalog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/pkg/errcode"
)

func CatalogRequestError(url string, err error) error {
	msg := "Cannot reach the catalog at <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: request to %s failed: %w", fn, url, err),
	}
}

func CatalogStatusError(url string, status int) error {
	msg := "Catalog returned status <em>%d</em> for <em>%s</em>"
	vars := []any{status, url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: unexpected status %d from %s",
			fn, status, url),
	}
}

func CatalogParseError(url string, err error) error {
	msg := "Cannot parse catalog response from <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn, url, err),
	}
}
