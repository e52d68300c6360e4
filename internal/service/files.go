package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileService stores uploaded blobs as files under a single root
// directory, one file per upload, named by the client. Writes race on
// the filesystem; the last one wins.
type FileService struct {
	root string
}

// NewFileService creates the root directory if needed and returns a
// FileService over it.
func NewFileService(root string) (*FileService, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileService{root: root}, nil
}

// CleanFilename validates a client-supplied filename. Path separators,
// parent references, and characters outside a small allow-list are
// rejected rather than rewritten.
func CleanFilename(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "", ErrBadFilename
	}
	if strings.ContainsAny(name, `/\`) {
		return "", ErrBadFilename
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '_' || r == '-' || r == ' ':
		default:
			return "", ErrBadFilename
		}
	}
	return name, nil
}

// path resolves name inside the root after sanitization.
func (s *FileService) path(name string) (string, error) {
	clean, err := CleanFilename(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.root, clean), nil
}

// Save writes src to a file named by the client, overwriting any
// previous upload with the same name. Returns the stored name.
func (s *FileService) Save(name string, src io.Reader) (string, error) {
	path, err := s.path(name)
	if err != nil {
		return "", err
	}
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filepath.Base(path), nil
}

// List returns the names of all stored files.
func (s *FileService) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// Read returns the stored bytes for name, or ErrNotFound.
func (s *FileService) Read(name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Replace overwrites an existing file with src, or returns ErrNotFound
// when no file with that name is stored.
func (s *FileService) Replace(name string, src io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes the stored file, or returns ErrNotFound.
func (s *FileService) Remove(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); os.IsNotExist(err) {
		return ErrNotFound
	} else if err != nil {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
