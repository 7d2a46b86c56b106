// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "videos_data_test.xlsx")

	tbl := Table{
		Sheet:   "Videos",
		Headers: []string{"Video ID"},
		Rows:    [][]any{{"dQw4w9WgXcQ"}},
	}
	require.NoError(t, WriteFile(context.Background(), path, tbl))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Videos")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Video ID"}, {"dQw4w9WgXcQ"}}, rows)

	// The pending temp file must be gone after the atomic replace.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("stale bytes"), 0o644))

	tbl := Table{Sheet: "Comments", Headers: []string{"Comment ID"}}
	require.NoError(t, WriteFile(context.Background(), path, tbl))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, []string{"Comments"}, f.GetSheetList())
}

func TestWriteFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.xlsx")

	err := WriteFile(context.Background(), path, Table{Sheet: "Videos"})
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
