// Package storage handles the local uploads directory that holds customer
// profile pictures.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/subsync/subsync/internal/platform"
)

type Uploads struct {
	dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// SaveTemp writes an uploaded stream under a random temp name and returns
// the temp filename.
func (u *Uploads) SaveTemp(r io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := platform.NewID() + ext
	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return name, nil
}

// Finalize renames a temp upload so the file is addressed by the owning
// record's identifier.
func (u *Uploads) Finalize(tempName, recordID string) (string, error) {
	finalName := recordID + filepath.Ext(tempName)
	oldPath := filepath.Join(u.dir, tempName)
	newPath := filepath.Join(u.dir, finalName)

	if err := os.Rename(oldPath, newPath); err != nil {
		return "", fmt.Errorf("finalize upload %s: %w", tempName, err)
	}
	return finalName, nil
}

// Remove deletes a stored upload. Missing files are not an error.
func (u *Uploads) Remove(name string) error {
	err := os.Remove(filepath.Join(u.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload %s: %w", name, err)
	}
	return nil
}
