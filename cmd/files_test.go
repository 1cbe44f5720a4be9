package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/txlist/internal/iofs"
	"github.com/gnames/txlist/internal/iotesting"
	"github.com/gnames/txlist/pkg/config"
	"github.com/gnames/txlist/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFilesCmd(t *testing.T) {
	cmd := getFilesCmd()
	assert.Equal(t, "files", cmd.Use)

	flag := cmd.Flags().Lookup("semester")
	require.NotNil(t, flag)
	assert.Equal(t, "s", flag.Shorthand)
	assert.Nil(t, cmd.Flags().Lookup("bookstore"))
}

func TestPrintFiles(t *testing.T) {
	files := iofs.SemesterFiles{
		Dir:        "/data/Fall 2023",
		Bookstore:  []string{"FallBookstoreList 9-8-2023.xlsx"},
		OrderLists: []string{"order_list 8-1-2023.xlsx"},
	}

	var buf bytes.Buffer
	printFiles(&buf, files)
	out := buf.String()

	assert.Contains(t, out, "Semester folder: /data/Fall 2023")
	assert.Contains(t, out, "  FallBookstoreList 9-8-2023\n")
	assert.NotContains(t, out, "9-8-2023.xlsx")
	assert.Contains(t, out, "  order_list 8-1-2023.xlsx\n")
	assert.Contains(t, out, "Pull lists:\n  none\n")
}

func TestRunFiles(t *testing.T) {
	root, dir := iotesting.SetupSemesterDir(t, "Spring 2024")
	for _, v := range []string{
		"SpringBooklist 1-5-2024.xlsx",
		"pull_list 1-6-2024.xlsx",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, v), nil, 0644))
	}

	cfg = config.New()
	cfg.Update([]config.Option{config.OptPathsSemestersDir(root)})
	t.Cleanup(func() { cfg = nil })

	cmd := getFilesCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	require.NoError(t, cmd.ParseFlags([]string{"-s", "Spring 2024"}))

	var f runFlags
	f.semester = "Spring 2024"
	require.NoError(t, runFiles(cmd, &f))

	out := buf.String()
	assert.Contains(t, out, "SpringBooklist 1-5-2024")
	assert.Contains(t, out, "pull_list 1-6-2024.xlsx")
	assert.NotContains(t, out, "notes.txt")
}

func TestRunFiles_NoSemester(t *testing.T) {
	cfg = config.New()
	t.Cleanup(func() { cfg = nil })

	err := runFiles(getFilesCmd(), &runFlags{})
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReconcileInputError, gnErr.Code)
}
