// Package storage keeps uploaded report images on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/relatorio-inc/relatorio/internal/shared/errors"
	"github.com/relatorio-inc/relatorio/internal/shared/id"
	"github.com/relatorio-inc/relatorio/internal/shared/logger"
)

const (
	defaultMaxBytes = 10 << 20
	minFileSize     = 64
)

// allowedImageTypes maps detected MIME types to the stored extension.
var allowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type LocalStorage struct {
	baseDir      string
	publicPrefix string
	maxBytes     int64
	logger       logger.Interface
}

func NewLocalStorage(baseDir, publicPrefix string, maxBytes int64, log logger.Interface) (*LocalStorage, error) {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		baseDir:      abs,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
		maxBytes:     maxBytes,
		logger:       log,
	}, nil
}

// BaseDir is the absolute directory served under the public prefix.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

// Save validates the content type by sniffing and stores the file under a
// random name. The returned path is relative and slash separated.
func (s *LocalStorage) Save(_ context.Context, dir, originalName string, r io.Reader, size int64) (string, error) {
	if size > s.maxBytes {
		return "", errors.NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", s.maxBytes>>20))
	}

	content, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > s.maxBytes {
		return "", errors.NewValidationError(fmt.Sprintf("file exceeds the %d MB limit", s.maxBytes>>20))
	}
	if len(content) < minFileSize {
		return "", errors.NewValidationError("file is too small or empty")
	}

	detected := mimetype.Detect(content).String()
	ext, ok := allowedImageTypes[detected]
	if !ok {
		s.logger.Warnw("rejected upload with invalid MIME type", "detected_mime", detected, "filename", originalName)
		return "", errors.NewValidationError("only PNG, JPG, GIF and WEBP images are allowed")
	}

	rel, err := cleanRelative(dir)
	if err != nil {
		return "", err
	}
	name, err := id.FileName(ext)
	if err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	stored := path.Join(rel, name)

	dst, err := s.resolve(stored)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0750); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(dst, content, 0640); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	s.logger.Debugw("upload stored", "path", stored, "bytes", len(content))
	return stored, nil
}

// Delete ignores files that are already gone.
func (s *LocalStorage) Delete(_ context.Context, p string) error {
	dst, err := s.resolve(p)
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) PublicURL(p string) string {
	if p == "" {
		return ""
	}
	return s.publicPrefix + "/" + strings.TrimLeft(p, "/")
}

func (s *LocalStorage) resolve(p string) (string, error) {
	rel, err := cleanRelative(p)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if !strings.HasPrefix(dst, s.baseDir+string(os.PathSeparator)) {
		return "", errors.NewValidationError("invalid storage path")
	}
	return dst, nil
}

func cleanRelative(p string) (string, error) {
	cleaned := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." || strings.Contains(p, "..") {
		return "", errors.NewValidationError("invalid storage path")
	}
	return cleaned, nil
}
