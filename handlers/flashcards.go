package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"noteshare/ai"
	"noteshare/content"
	"noteshare/models"
)

// POST /api/flashcards/generate — turn note text into a flashcard set.
// Generation failures return a generic message; the upstream error text
// stays in the server log.
func (h *DBHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NoteContent string `json:"noteContent" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "noteContent is required and must be a string")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "noteContent is required and must be a string")
		return
	}

	gen, err := h.generator()
	if err != nil {
		log.Println("GenerateFlashcards: generator unavailable:", err)
		writeError(w, http.StatusInternalServerError, "Flashcard generation is not configured")
		return
	}

	cards, err := ai.GenerateFlashcards(r.Context(), gen, req.NoteContent)
	if err != nil {
		log.Println("GenerateFlashcards:", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate flashcards. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// POST /api/flashcards/ask — answer a question about one note's content.
func (h *DBHandler) AskQuestion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		NoteID   string `json:"noteId" validate:"required"`
		Question string `json:"question" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "noteId and question are required")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "noteId and question are required")
		return
	}

	var note models.Note
	if err := h.Where("public_id = ?", req.NoteID).First(&note).Error; err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	gen, err := h.generator()
	if err != nil {
		log.Println("AskQuestion: generator unavailable:", err)
		writeError(w, http.StatusInternalServerError, "Question answering is not configured")
		return
	}

	noteText := content.TextForNote(&note, h.UploadDir)
	answer, err := ai.AnswerQuestion(r.Context(), gen, noteText, req.Question)
	if err != nil {
		log.Println("AskQuestion:", err)
		writeError(w, http.StatusInternalServerError, "Failed to get answer. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

// GET /api/flashcards/note/{id}/content — the note's text, real or
// synthesized. A missing file never fails this endpoint.
func (h *DBHandler) GetNoteContent(w http.ResponseWriter, r *http.Request) {
	var note models.Note
	if err := h.Where("public_id = ?", r.PathValue("id")).First(&note).Error; err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"content": content.TextForNote(&note, h.UploadDir),
	})
}
