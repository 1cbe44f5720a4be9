package ioxlsx

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/pkg/errcode"
)

func XLSXOpenError(path string, err error) error {
	msg := "Cannot open workbook <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.XLSXOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open %s: %w", fn, path, err),
	}
}

func XLSXSheetError(path, sheet string, err error) error {
	msg := "Cannot read sheet <em>%s</em> of <em>%s</em>"
	vars := []any{sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.XLSXSheetError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read sheet %q of %s: %w",
			fn, sheet, path, err),
	}
}

func XLSXColumnError(path, sheet, column string) error {
	msg := "Column <em>%s</em> is missing in sheet <em>%s</em> of <em>%s</em>"
	vars := []any{column, sheet, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.XLSXColumnError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no column %q in sheet %q of %s",
			fn, column, sheet, path),
	}
}

func XLSXWriteError(path string, err error) error {
	msg := "Cannot write workbook <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.XLSXWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}
