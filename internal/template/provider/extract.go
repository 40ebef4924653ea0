package provider

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// extractFS copies the subtree of fsys at root into dest byte-for-byte,
// recreating directories and keeping permission bits. Git metadata
// directories are skipped.
func extractFS(fsys fs.FS, root, dest string) (int, error) {
	files := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := p
		if root != "." {
			if p == root {
				return nil
			}
			rel = strings.TrimPrefix(p, root+"/")
		} else if p == "." {
			return nil
		}
		target := filepath.Join(dest, filepath.FromSlash(rel))

		if d.IsDir() {
			if d.Name() == gitDir {
				return fs.SkipDir
			}
			return os.MkdirAll(target, 0755)
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		mode := info.Mode().Perm() | 0600

		if err := os.WriteFile(target, data, mode); err != nil {
			return err
		}
		if err := os.Chmod(target, mode); err != nil {
			return err
		}
		files++
		return nil
	})
	return files, err
}
