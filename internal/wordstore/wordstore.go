package wordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Persist merges words into the JSON array stored at path and writes the
// deduplicated union back. A missing file counts as empty. The result is
// written to a temporary file first and renamed over path.
func Persist(path string, words []string) (int, error) {
	existing, err := Load(path)
	if err != nil {
		return 0, err
	}

	set := make(map[string]struct{}, len(existing)+len(words))
	for _, w := range existing {
		set[w] = struct{}{}
	}
	for _, w := range words {
		set[w] = struct{}{}
	}

	merged := make([]string, 0, len(set))
	for w := range set {
		merged = append(merged, w)
	}
	// The array is unordered; sorting keeps diffs of the file stable.
	sort.Strings(merged)

	if err := writeAtomic(path, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

// Load reads the JSON array stored at path. A missing file yields nil.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return words, nil
}

func writeAtomic(path string, words []string) error {
	data, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("encode words: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	f, err := os.CreateTemp(dir, ".knownwords-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
