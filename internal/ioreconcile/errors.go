package ioreconcile

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/pkg/errcode"
)

func CancelledError(err error) error {
	msg := "Reconciliation was <warn>interrupted</warn>, no lists were written"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReconcileCancelledError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: reconciliation cancelled: %w", fn, err),
	}
}

func InputError(field, hint string) error {
	msg := "Missing <em>%s</em>. %s"
	vars := []any{field, hint}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReconcileInputError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s is not set", fn, field),
	}
}
