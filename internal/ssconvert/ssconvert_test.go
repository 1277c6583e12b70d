package ssconvert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The converter is exercised with stand-in commands that share ssconvert's
// "<cmd> <in> <out>" argument shape.

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "statement.xls")
	require.NoError(t, os.WriteFile(src, []byte("cells"), 0o644))

	out := t.TempDir()
	c := Converter{Command: "cp"}
	dst, err := c.Convert(context.Background(), src, out)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(out, "statement.csv"), dst)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "cells", string(data))
}

func TestConvert_NonZeroExit(t *testing.T) {
	c := Converter{Command: "false"}
	_, err := c.Convert(context.Background(), "in.xls", t.TempDir())

	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "false", cerr.Command)
	assert.Equal(t, "in.xls", cerr.Input)
}

func TestConvert_NoOutputProduced(t *testing.T) {
	// A converter that exits zero without writing the output file is
	// still a conversion failure.
	c := Converter{Command: "true"}
	_, err := c.Convert(context.Background(), "in.xls", t.TempDir())

	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Error(), "no output file")
}

func TestConvert_MissingCommand(t *testing.T) {
	c := Converter{Command: "definitely-not-a-real-binary"}
	_, err := c.Convert(context.Background(), "in.xls", t.TempDir())

	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
}

func TestConvert_ContextCancelled(t *testing.T) {
	// The source exists and the command would succeed, so only the
	// cancelled context can make this fail.
	dir := t.TempDir()
	src := filepath.Join(dir, "statement.xls")
	require.NoError(t, os.WriteFile(src, []byte("cells"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := Converter{Command: "cp"}
	_, err := c.Convert(ctx, src, t.TempDir())
	var cerr *ConversionError
	require.ErrorAs(t, err, &cerr)
	assert.ErrorIs(t, err, context.Canceled)
}
