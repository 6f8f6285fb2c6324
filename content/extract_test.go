package content

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"noteshare/apperrors"
	"noteshare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDocx(t *testing.T, dir, name, documentXML string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	entry, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return path
}

const sampleDocumentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Photosynthesis converts light</w:t></w:r><w:r><w:t> into chemical energy.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtractTextDocx(t *testing.T) {
	path := writeDocx(t, t.TempDir(), "notes.docx", sampleDocumentXML)

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Photosynthesis converts light into chemical energy.")
	assert.Contains(t, text, "Second paragraph.")
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, err := ExtractText(path)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedType)
}

func TestExtractTextMissingFile(t *testing.T) {
	_, err := ExtractText(filepath.Join(t.TempDir(), "gone.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFallbackMentionsMetadata(t *testing.T) {
	note := &models.Note{
		Title:    "Organic Chemistry Basics",
		Subject:  "Chemistry",
		Year:     "2",
		Semester: "1",
		Uploader: "casey",
	}

	text := Fallback(note)
	assert.Contains(t, text, "Organic Chemistry Basics")
	assert.Contains(t, text, "Chemistry")
	assert.Contains(t, text, "casey")
}

func TestFallbackDefaultsUploader(t *testing.T) {
	text := Fallback(&models.Note{Title: "Untitled"})
	assert.Contains(t, text, "another user")
}

func TestTextForNoteDegradesToFallback(t *testing.T) {
	note := &models.Note{
		PublicID: "n1",
		Title:    "Linear Algebra Review",
		Filename: "does-not-exist.pdf",
	}

	text := TextForNote(note, t.TempDir())
	assert.NotEmpty(t, text)
	assert.Contains(t, text, "Linear Algebra Review")
}

func TestTextForNoteReadsRealFile(t *testing.T) {
	dir := t.TempDir()
	writeDocx(t, dir, "real.docx", sampleDocumentXML)

	note := &models.Note{PublicID: "n1", Title: "Bio", Filename: "real.docx"}
	text := TextForNote(note, dir)
	assert.Contains(t, text, "Photosynthesis")
}
