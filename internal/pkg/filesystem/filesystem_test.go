package filesystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFsReadWrite(t *testing.T) {
	fs := NewMemoryFs()
	assert.Equal(t, "memory", fs.Name())

	// Missing file
	assert.False(t, fs.Exists("dir/file.txt"))
	_, err := fs.ReadFile("dir/file.txt")
	assert.Error(t, err)

	// Write creates parent directories
	require.NoError(t, fs.WriteFile("dir/file.txt", "content"))
	assert.True(t, fs.Exists("dir/file.txt"))
	assert.True(t, fs.IsDir("dir"))
	assert.False(t, fs.IsDir("dir/file.txt"))

	content, err := fs.ReadFile("dir/file.txt")
	require.NoError(t, err)
	assert.Equal(t, "content", content)
}

func TestMemoryFsReadDirSorted(t *testing.T) {
	fs := NewMemoryFs()
	require.NoError(t, fs.WriteFile("dir/b.jsonl", "{}"))
	require.NoError(t, fs.WriteFile("dir/a.jsonl", "{}"))
	require.NoError(t, fs.WriteFile("dir/c.jsonl", "{}"))

	items, err := fs.ReadDir("dir")
	require.NoError(t, err)

	var names []string
	for _, item := range items {
		names = append(names, item.Name())
	}
	assert.Equal(t, []string{"a.jsonl", "b.jsonl", "c.jsonl"}, names)
}

func TestMemoryFsMkdir(t *testing.T) {
	fs := NewMemoryFs()
	require.NoError(t, fs.Mkdir("a/b/c"))
	assert.True(t, fs.IsDir("a/b/c"))

	// Idempotent
	require.NoError(t, fs.Mkdir("a/b/c"))

	_, err := fs.ReadDir("missing")
	assert.Error(t, err)
}
