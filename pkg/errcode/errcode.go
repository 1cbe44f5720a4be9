package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	ReadDirError

	// Logging errors
	CreateLogFileError

	// Spreadsheet errors
	XLSXOpenError
	XLSXSheetError
	XLSXColumnError
	XLSXWriteError

	// Catalog errors
	CatalogRequestError
	CatalogStatusError
	CatalogParseError

	// Reconcile errors
	ReconcileInputError
	ReconcileCancelledError
)
