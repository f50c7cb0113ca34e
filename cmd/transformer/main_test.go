package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crawler-console/pkg/log"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"--input", "data", "-f", "csv", "-o", "out.zip"})
	require.NoError(t, err)
	assert.Equal(t, "data", opts.input)
	assert.Equal(t, "csv", opts.format)
	assert.Equal(t, "out.zip", opts.output)
	assert.Equal(t, "suffix", opts.collision)

	_, err = parseFlags([]string{"--format", "json"})
	assert.EqualError(t, err, "--input is required")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "xhs", "search_contents_2024-05-01.json"),
		`[{"note_id":"n1","title":"a","liked_count":"12"}]`)
	writeFile(t, filepath.Join(dir, "xhs", "search_comments_2024-05-01.csv"),
		"comment_id,note_id,content\nc1,n1,hi\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	dst := filepath.Join(t.TempDir(), "out.zip")
	var out bytes.Buffer
	err := run(context.Background(), log.NewNop(), options{
		input:       dir,
		format:      "json",
		output:      dst,
		concurrency: 2,
		collision:   "suffix",
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[100%] 2/2")
	assert.Contains(t, out.String(), "wrote "+dst)

	zr, err := zip.OpenReader(dst)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 2)
}

func TestRun_InputDirNamesPlatform(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "douyin")
	writeFile(t, filepath.Join(dir, "a.json"), `[{"note_id":"n1"}]`)

	dst := filepath.Join(t.TempDir(), "out.zip")
	err := run(context.Background(), log.NewNop(), options{
		input:       dir,
		format:      "json",
		output:      dst,
		concurrency: 1,
		collision:   "suffix",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	zr, err := zip.OpenReader(dst)
	require.NoError(t, err)
	defer zr.Close()
	require.Len(t, zr.File, 1)
	assert.Equal(t, "douyin-a-formatted.json", zr.File[0].Name)
}

func TestCollect(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	writeFile(t, filepath.Join(dir, "bili", "v.csv"), "bvid\nBV1\n")
	writeFile(t, filepath.Join(dir, "skip.txt"), "x")

	inputs, err := collect(dir)
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "exports/bili/v.csv", inputs[0].Path)
	assert.Nil(t, inputs[0].Body)

	rc, err := inputs[0].Open()
	require.NoError(t, err)
	require.NoError(t, rc.Close())
}

func TestRun_Errors(t *testing.T) {
	empty := t.TempDir()

	err := run(context.Background(), log.NewNop(), options{input: empty, format: "xml"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unsupported format")

	err = run(context.Background(), log.NewNop(), options{input: empty, format: "json"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "no .json or .csv files")

	bad := t.TempDir()
	writeFile(t, filepath.Join(bad, "broken.json"), `{"oops"`)
	var out bytes.Buffer
	err = run(context.Background(), log.NewNop(), options{input: bad, format: "json"}, &out)
	assert.EqualError(t, err, "no file could be ingested")
	assert.Contains(t, out.String(), "/broken.json: ")
}
