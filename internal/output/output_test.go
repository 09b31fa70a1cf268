package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listing struct {
	Title *string `json:"title"`
	URL   *string `json:"url"`
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extracted_jobs.json")
	title := "Data Analyst"
	rows := []listing{{Title: &title, URL: nil}}

	require.NoError(t, WriteJSON(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// 4-space indentation and null for absent values.
	assert.True(t, strings.Contains(string(data), "\n    {"), "expected 4-space indent, got:\n%s", data)
	assert.Contains(t, string(data), `"url": null`)

	var got []listing
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Data Analyst", *got[0].Title)
}

func TestWriteJSON_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	first := "First"
	require.NoError(t, WriteJSON(path, []listing{{Title: &first}}))

	require.NoError(t, WriteJSON(path, []listing{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []listing
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Empty(t, got, "second run must replace the file, not append")
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	title := "Data Analyst"
	require.NoError(t, Dump(&buf, []listing{{Title: &title}}))

	assert.Contains(t, buf.String(), `"title": "Data Analyst"`)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
