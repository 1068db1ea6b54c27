// Package ingestion turns uploaded files and raw job postings into the plain
// text and JobRecord values the parsing and matching cores consume.
package ingestion

import (
	"bytes"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText pulls plain text out of an uploaded resume file, dispatching on
// the file extension. Extraction failures become empty text, never an error;
// the parse cascade handles empty input with its own diagnostics.
func ExtractText(filename string, data []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err := extractPDFText(bytes.NewReader(data))
		if err != nil {
			log.Printf("pdf extraction failed for %s: %v", filename, err)
			return ""
		}
		return text
	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			log.Printf("docx extraction failed for %s: %v", filename, err)
			return ""
		}
		return text
	default:
		return string(data)
	}
}

func extractPDFText(reader *bytes.Reader) (string, error) {
	pdfReader, err := pdf.NewReader(reader, int64(reader.Len()))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

// stripDocxMarkup reduces the docx body XML to readable text: paragraph
// boundaries become newlines, all other tags are dropped.
func stripDocxMarkup(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}

// ReadAll buffers an upload stream. Split out so handlers can cap sizes with
// an io.LimitReader.
func ReadAll(r io.Reader) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
