package atomicfile

import (
	"fmt"
	"os"
	"path/filepath"
)

const dirMode = 0o700

// WriteFile replaces path with data by writing a temp file in the same
// directory and renaming it into place. Missing parent directories are
// created with mode 0700.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create directory for %s: %w", base, err)
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", base, err)
	}

	tmpPath := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file for %s: %w", base, err)
	}

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file for %s: %w", base, err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file for %s: %w", base, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file for %s: %w", base, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", base, err)
	}

	committed = true
	return nil
}
