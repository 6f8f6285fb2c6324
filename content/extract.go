// Package content extracts plain text from uploaded note files.
package content

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"noteshare/apperrors"

	"github.com/ledongthuc/pdf"
)

// ExtractText pulls the text out of the file at path, dispatching on the
// extension. Missing files surface as os.ErrNotExist so callers can fall
// back to synthesized content.
func ExtractText(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return extractPDF(path)
	case ".docx":
		return extractDOCX(path)
	default:
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedType, filepath.Ext(path))
	}
}

func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return buf.String(), nil
}

// extractDOCX reads the raw text runs out of word/document.xml. A .docx file
// is a zip archive; the <w:t> elements hold the text and </w:p> closes a
// paragraph.
func extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("opening docx: %w", err)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("opening docx document: %w", err)
		}
		defer rc.Close()

		var sb strings.Builder
		decoder := xml.NewDecoder(rc)
		for {
			token, err := decoder.Token()
			if err != nil {
				break
			}
			switch el := token.(type) {
			case xml.StartElement:
				if el.Name.Local == "t" {
					var text string
					if err := decoder.DecodeElement(&text, &el); err != nil {
						return "", fmt.Errorf("decoding docx text run: %w", err)
					}
					sb.WriteString(text)
				}
			case xml.EndElement:
				if el.Name.Local == "p" {
					sb.WriteString("\n")
				}
			}
		}
		return sb.String(), nil
	}

	return "", fmt.Errorf("docx has no word/document.xml")
}
