package wordstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersist_UnionWithExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["a","b"]`), 0o644))

	n, err := Persist(path, []string{"b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)
}

func TestPersist_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "words.json")

	_, err := Persist(path, []string{"не", "что", "не"})
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"не", "что"}, got)
}

func TestPersist_EmptySet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")

	n, err := Persist(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestPersist_CorruptFileIsNotOverwritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Persist(path, []string{"a"})
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{not json`, string(data))
}

func TestPersist_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.json")

	_, err := Persist(path, []string{"a"})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "words.json", entries[0].Name())
}
