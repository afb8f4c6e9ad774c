package utils

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "apuntes.pdf", "contenido del archivo")

	path, err := SaveUploadedFile(file, dir)
	require.NoError(t, err)
	require.Equal(t, ".pdf", filepath.Ext(path))
	require.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "contenido del archivo", string(data))
}

func TestSaveUploadedFileUniqueNames(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "apuntes.txt", "hola")

	first, err := SaveUploadedFile(file, dir)
	require.NoError(t, err)
	second, err := SaveUploadedFile(file, dir)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestExtractPlainText(t *testing.T) {
	text := uploadedFile(t, "resumen.txt", "límites y derivadas")
	require.Equal(t, "límites y derivadas", ExtractPlainText(text))

	markdown := uploadedFile(t, "Notas.MD", "# Termodinámica")
	require.Equal(t, "# Termodinámica", ExtractPlainText(markdown))

	binary := uploadedFile(t, "libro.pdf", "%PDF-1.7")
	require.Equal(t, "", ExtractPlainText(binary))
}

func TestGetFileURL(t *testing.T) {
	require.Equal(t, "/uploads/abc.pdf", GetFileURL(filepath.Join("uploads", "abc.pdf")))
	require.Equal(t, "", GetFileURL(""))
}
