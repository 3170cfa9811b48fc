package extraction

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExtractFile_PlainText(t *testing.T) {
	path := writeTemp(t, "resume.txt", "John Doe\nSoftware Engineer with Go experience.\n")

	r := ExtractFile(path)
	require.True(t, r.Success)
	assert.Equal(t, MethodText, r.Method)
	assert.Equal(t, "resume.txt", r.FileName)
	assert.Equal(t, "John Doe\nSoftware Engineer with Go experience.", r.Text)
	assert.Equal(t, 8, r.WordCount)
	assert.Equal(t, len(r.Text), r.CharCount)
	assert.Empty(t, r.Error)
}

func TestExtractFile_Missing(t *testing.T) {
	r := ExtractFile(filepath.Join(t.TempDir(), "nope.pdf"))

	assert.False(t, r.Success)
	assert.Equal(t, MethodNone, r.Method)
	assert.Contains(t, r.Error, "could not open file")
}

func TestExtractFile_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "resume.docx", "not really a docx")

	r := ExtractFile(path)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "must be a PDF")
}

func TestExtractFile_EmptyText(t *testing.T) {
	path := writeTemp(t, "resume.txt", "   \n\t ")

	r := ExtractFile(path)
	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "no text")
}

func TestExtract_InvalidPDF(t *testing.T) {
	content := "this is not a pdf"
	r := Extract("resume.pdf", int64(len(content)), strings.NewReader(content))

	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "Invalid PDF file")
}

func TestExtract_TooLarge(t *testing.T) {
	r := Extract("resume.pdf", MaxFileSize+1, strings.NewReader(""))

	assert.False(t, r.Success)
	assert.Contains(t, r.Error, "less than 10MB")
}
