package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_Upload(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := s.Upload(context.Background(), strings.NewReader("snapshot"), "backup.json", "application/json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "backup.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", string(data))
}

func TestLocalStorage_Upload_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	_, err = s.Upload(context.Background(), strings.NewReader("x"), "../escape.json", "application/json")
	assert.Error(t, err)
}
