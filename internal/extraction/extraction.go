// Package extraction pulls plain text out of uploaded resume files. PDF is
// the primary format; plain text files pass through unchanged.
package extraction

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxFileSize is the upload size limit.
const MaxFileSize = 10 << 20

// Extraction method names reported in Result.Method.
const (
	MethodPDF  = "pdf"
	MethodText = "text"
	MethodNone = "none"
)

// Result is the extraction envelope handed to the analysis pipeline. The
// pipeline only proceeds when Success is true and Text is non-blank.
type Result struct {
	Success   bool   `json:"success"`
	Text      string `json:"text"`
	Method    string `json:"method"`
	FileName  string `json:"file_name"`
	FileSize  int64  `json:"file_size"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
	Error     string `json:"error,omitempty"`
}

// ExtractFile extracts text from a file on disk. All failures, including
// validation and I/O, are reported through the Result rather than an error.
func ExtractFile(path string) *Result {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return failure(name, 0, fmt.Sprintf("could not open file: %v", err))
	}
	f, err := os.Open(path)
	if err != nil {
		return failure(name, info.Size(), fmt.Sprintf("could not open file: %v", err))
	}
	defer f.Close()

	return Extract(name, info.Size(), f)
}

// Extract extracts text from an in-memory or streamed upload. The reader must
// cover the full file; size is the total length in bytes.
func Extract(name string, size int64, r io.ReaderAt) *Result {
	if size > MaxFileSize {
		return failure(name, size, "File size must be less than 10MB")
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return extractPDF(name, size, r)
	case ".txt":
		return extractText(name, size, r)
	default:
		return failure(name, size, "File must be a PDF or plain text file")
	}
}

// extractPDF reads every non-null page and concatenates the plain text.
func extractPDF(name string, size int64, r io.ReaderAt) *Result {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return failure(name, size, fmt.Sprintf("Invalid PDF file: %v", err))
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return failure(name, size, "Could not extract text from PDF. The PDF might be image-based or corrupted.")
	}
	return success(name, size, MethodPDF, text)
}

func extractText(name string, size int64, r io.ReaderAt) *Result {
	raw, err := io.ReadAll(io.NewSectionReader(r, 0, size))
	if err != nil {
		return failure(name, size, fmt.Sprintf("could not read file: %v", err))
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return failure(name, size, "File contains no text")
	}
	return success(name, size, MethodText, text)
}

func success(name string, size int64, method, text string) *Result {
	return &Result{
		Success:   true,
		Text:      text,
		Method:    method,
		FileName:  name,
		FileSize:  size,
		WordCount: len(strings.Fields(text)),
		CharCount: len(text),
	}
}

func failure(name string, size int64, msg string) *Result {
	return &Result{
		Success:  false,
		Method:   MethodNone,
		FileName: name,
		FileSize: size,
		Error:    msg,
	}
}
