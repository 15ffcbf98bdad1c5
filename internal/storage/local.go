package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrDisallowedType  = errors.New("file type is not allowed")
	ErrOutsideRoot     = errors.New("path resolves outside the upload directory")
	ErrFileNotFound    = errors.New("file not found")
	ErrEmptyUploadPath = errors.New("file path is empty")
)

// LocalStorage keeps verification images on the local filesystem under a
// single upload directory, the way the original deployment did.
type LocalStorage struct {
	root         string
	maxFileSize  int64 // bytes
	allowedTypes []string
}

func NewLocalStorage(uploadDir string, maxFileSizeMB int64, allowedTypes []string) (*LocalStorage, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		root:         uploadDir,
		maxFileSize:  maxFileSizeMB * 1024 * 1024,
		allowedTypes: allowedTypes,
	}, nil
}

func (s *LocalStorage) Save(originalFilename string, contentType string, size int64, reader io.Reader) (string, error) {
	if size > s.maxFileSize {
		return "", ErrFileTooLarge
	}
	if !slices.Contains(s.allowedTypes, strings.ToLower(contentType)) {
		return "", ErrDisallowedType
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	name := uuid.New().String() + ext
	fullPath := filepath.Join(s.root, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// LimitReader as a second line of defence against an understated size.
	written, err := io.Copy(f, io.LimitReader(reader, s.maxFileSize+1))
	if err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxFileSize {
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filepath.Join(s.root, name), nil
}

// resolve normalizes a stored or user-supplied path and rejects anything
// escaping the upload directory.
func (s *LocalStorage) resolve(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyUploadPath
	}

	// Paths may be stored with or without the upload dir prefix.
	var full string
	if strings.HasPrefix(path, s.root) {
		full = filepath.Clean(path)
	} else {
		full = filepath.Join(s.root, path)
	}

	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return "", err
	}
	fullAbs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if fullAbs != rootAbs && !strings.HasPrefix(fullAbs, rootAbs+string(os.PathSeparator)) {
		return "", ErrOutsideRoot
	}
	return fullAbs, nil
}

func (s *LocalStorage) Open(path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return f, err
}

func (s *LocalStorage) Exists(path string) bool {
	full, err := s.resolve(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

func (s *LocalStorage) Delete(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	return os.Remove(full)
}

func (s *LocalStorage) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(s.root, entry.Name()))
	}
	return paths, nil
}

// ContentTypeForFile maps a stored filename to the content type it should
// be served with.
func ContentTypeForFile(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
