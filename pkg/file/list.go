package file

import (
	"os"
	"path/filepath"
	"sort"
)

// ListRegular returns the full paths of the regular files directly inside
// dir, sorted by name. Subdirectories and symlinked directories are skipped.
func ListRegular(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}

	sort.Strings(files)
	return files, nil
}
