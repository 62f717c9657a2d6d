package service

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// FileService owns uploaded documents for the duration of one conversion
// run: it stages them in the upload directory and removes them on every
// exit path via the returned cleanup function.
type FileService struct {
	uploadDir string
}

func NewFileService(uploadDir string) (*FileService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileService{uploadDir: uploadDir}, nil
}

// StageUpload writes an uploaded PDF to a temp file under the upload
// directory and returns its path plus a cleanup function the caller must
// defer. Only .pdf uploads are accepted.
func (s *FileService) StageUpload(file *multipart.FileHeader) (string, func(), error) {
	if ext := strings.ToLower(filepath.Ext(file.Filename)); ext != ".pdf" {
		return "", nil, fmt.Errorf("unsupported file type: %s", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	dst, err := os.CreateTemp(s.uploadDir, "upload-*.pdf")
	if err != nil {
		return "", nil, err
	}
	path := dst.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, err
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, err
	}

	return path, cleanup, nil
}
