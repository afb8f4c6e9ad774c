package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Text extraction is capped so a large upload can't bloat the row
const maxExtractBytes = 1 << 20

func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	// Open the uploaded file
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Create destination directory if it doesn't exist
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	// Unique filename, original extension kept
	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	// Create destination file
	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	// Copy the file content
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// ExtractPlainText returns the content of plain-text uploads so the
// material record is searchable without reopening the file. Binary
// formats yield an empty string.
func ExtractPlainText(file *multipart.FileHeader) string {
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".txt", ".md", ".csv":
	default:
		return ""
	}

	src, err := file.Open()
	if err != nil {
		return ""
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxExtractBytes))
	if err != nil {
		return ""
	}
	return string(data)
}

func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return "/uploads/" + filepath.Base(filePath)
}
