package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors_Structure verifies error codes, message variables
// and wrapping of file system errors.
func TestErrors_Structure(t *testing.T) {
	originalErr := errors.New("permission denied")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{
			name: "CreateDirError",
			err:  CreateDirError("/test/dir", originalErr),
			code: errcode.CreateDirError,
			path: "/test/dir",
			text: "cannot create",
		},
		{
			name: "CopyFileError",
			err:  CopyFileError("/test/config.yaml", originalErr),
			code: errcode.CopyFileError,
			path: "/test/config.yaml",
			text: "cannot copy",
		},
		{
			name: "ReadDirError",
			err:  ReadDirError("/semesters/Fall 2023", originalErr),
			code: errcode.ReadDirError,
			path: "/semesters/Fall 2023",
			text: "cannot read",
		},
		{
			name: "ReadFileError",
			err:  ReadFileError("/home/.config/txlist/config.yaml", originalErr),
			code: errcode.ReadFileError,
			path: "/home/.config/txlist/config.yaml",
			text: "cannot read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok,
				"Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "%s",
				"Message should contain format placeholder")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, originalErr,
				"Should wrap original error")
			assert.Contains(t, gnErr.Err.Error(), "from",
				"Error should mention caller context")
			assert.Contains(t, gnErr.Err.Error(), tt.text)
		})
	}
}
