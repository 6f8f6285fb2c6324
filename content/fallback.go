package content

import (
	"fmt"
	"log"
	"path/filepath"

	"noteshare/models"
)

// Fallback builds a stand-in text from the note's metadata. It is used
// whenever the real file cannot be read, so downstream generation always has
// something to work with.
func Fallback(note *models.Note) string {
	uploader := note.Uploader
	if uploader == "" {
		uploader = "another user"
	}
	return fmt.Sprintf(
		"This is sample content from %q uploaded by %s. This note covers %s topics for %s year, semester %s. The uploaded file is not available for text extraction.",
		note.Title, uploader, note.Subject, note.Year, note.Semester,
	)
}

// TextForNote returns the note's extracted text, degrading to Fallback when
// the file is absent (e.g. stored in a remote bucket with no local mirror)
// or extraction fails. It never returns an empty string.
func TextForNote(note *models.Note, uploadDir string) string {
	if note.Filename == "" {
		return Fallback(note)
	}

	path := filepath.Join(uploadDir, filepath.Base(note.Filename))
	text, err := ExtractText(path)
	if err != nil {
		log.Printf("content: falling back to synthesized text for note %s: %v", note.PublicID, err)
		return Fallback(note)
	}
	if text == "" {
		return Fallback(note)
	}
	return text
}
