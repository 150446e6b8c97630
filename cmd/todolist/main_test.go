package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/todolist/internal/config"
)

func TestOpenLogDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := openLog(config.LogConfig{})
	require.NoError(t, err)
	require.NotNil(t, logger)
	closeLog()
}

func TestOpenLogWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, closeLog, err := openLog(config.LogConfig{File: path})
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	logger.Printf("hello")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}
