package ioreconcile_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/ioreconcile"
	"github.com/gnames/txlist/internal/iotesting"
	"github.com/gnames/txlist/internal/ioxlsx"
	"github.com/gnames/txlist/pkg/config"
	"github.com/gnames/txlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func semesterSetup(t *testing.T) *config.Config {
	root, dir := iotesting.SetupSemesterDir(t, "Fall 2023")

	iotesting.WriteWorkbook(t, filepath.Join(dir, "FallBookstoreList 9-8-2023.xlsx"),
		iotesting.Sheet{
			Name: ioxlsx.AdoptionSheet,
			Rows: [][]any{
				{"Term", "Dept", "Crs", "Sect", "ISBN-13", "Author", "Binding",
					"Title", "Edition"},
				{"F23", "CH", 101, "001", 9780000000003, "Doe", "P", "Chemistry", 3},
				{"F23", "MA", 241, "001", 9780000000004, "Roe", "C", "Calculus", 1},
				{"F23", "PY", 205, "001", 9780000000005, "Poe", "C", "Physics", 2},
			},
		},
	)
	iotesting.WriteWorkbook(t, filepath.Join(dir, "order_list 8-1-2023.xlsx"),
		iotesting.Sheet{
			Name: ioxlsx.OrderSheet,
			Rows: [][]any{{"ISBN-13"}, {"9780000000005"}},
		},
	)
	iotesting.WriteWorkbook(t, filepath.Join(dir, "pull_list 8-1-2023.xlsx"),
		iotesting.Sheet{
			Name: ioxlsx.PullSheet,
			Rows: [][]any{{"Catkey"}, {"77"}},
		},
	)
	special := filepath.Join(filepath.Dir(root), "SpecialTitles.xlsx")
	iotesting.WriteWorkbook(t, special,
		iotesting.Sheet{
			Name: ioxlsx.ReplaceSheet,
			Rows: [][]any{{"Bookstore ISBN", "Catalog ISBN"}},
		},
		iotesting.Sheet{
			Name: ioxlsx.ExcludeSheet,
			Rows: [][]any{{"Bookstore ISBN"}},
		},
	)

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPathsSemestersDir(root),
		config.OptPathsSpecialTitles(special),
		config.OptRunSemester("Fall 2023"),
		config.OptRunBookstoreFile("FallBookstoreList 9-8-2023"),
	})
	return cfg
}

func TestLoadInput(t *testing.T) {
	cfg := semesterSetup(t)

	in, err := ioreconcile.LoadInput(cfg)
	require.NoError(t, err)
	assert.Len(t, in.Adoptions, 3)
	assert.Equal(t, []string{"9780000000005"}, in.PrevOrdered)
	assert.Equal(t, []string{"77"}, in.PrevPulled)
	assert.Empty(t, in.Replace)
	assert.Empty(t, in.Exclude)
}

func TestLoadInput_Missing(t *testing.T) {
	tests := []struct {
		msg  string
		opts []config.Option
		code gn.ErrorCode
	}{
		{
			msg:  "no semester",
			code: errcode.ReconcileInputError,
		},
		{
			msg:  "no bookstore list",
			opts: []config.Option{config.OptRunSemester("Fall 2023")},
			code: errcode.ReconcileInputError,
		},
		{
			msg: "no semester folder",
			opts: []config.Option{
				config.OptPathsSemestersDir(t.TempDir()),
				config.OptRunSemester("Fall 2023"),
				config.OptRunBookstoreFile("FallBookstoreList 9-8-2023"),
			},
			code: errcode.ReadDirError,
		},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cfg := config.New()
			cfg.Update(v.opts)
			_, err := ioreconcile.LoadInput(cfg)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, v.code, gnErr.Code)
		})
	}
}

func TestRunAndSave(t *testing.T) {
	cfg := semesterSetup(t)
	in, err := ioreconcile.LoadInput(cfg)
	require.NoError(t, err)

	cat := &fakeCatalog{keys: map[string]string{"9780000000004": "44"}}
	res, err := ioreconcile.NewQuiet(cfg, cat).Reconcile(context.Background(), in)
	require.NoError(t, err)

	assert.Empty(t, ioreconcile.ExistingOutputs(cfg))
	orderPath, pullPath, err := ioreconcile.Save(cfg, res)
	require.NoError(t, err)
	assert.Equal(t, []string{orderPath, pullPath},
		ioreconcile.ExistingOutputs(cfg), "a rerun sees lists it replaces")
	assert.Equal(t, "order_list 9-8-2023.xlsx", filepath.Base(orderPath))
	assert.Equal(t, "pull_list 9-8-2023.xlsx", filepath.Base(pullPath))

	isbns, err := ioxlsx.ReadColumn(orderPath, ioxlsx.OrderSheet, ioxlsx.OrderColumn)
	require.NoError(t, err)
	assert.Equal(t, []string{"9780000000003"}, isbns)

	keys, err := ioxlsx.ReadColumn(pullPath, ioxlsx.PullSheet, ioxlsx.PullKeyColumn)
	require.NoError(t, err)
	assert.Equal(t, []string{"44"}, keys)
}

func TestOutputPaths_NoDate(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptRunSemester("Fall 2023"),
		config.OptRunBookstoreFile("FallBookstoreList"),
	})
	orderPath, pullPath := ioreconcile.OutputPaths(cfg)
	assert.Contains(t, filepath.Base(orderPath), "order_list ")
	assert.Contains(t, filepath.Base(pullPath), "pull_list ")
	assert.Equal(t, cfg.SemesterDir(), filepath.Dir(orderPath))
}
