package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"noteshare/models"
	"noteshare/reactions"
	"noteshare/utils"
)

// GET /api/public/notes
func (h *DBHandler) ListPublicNotes(w http.ResponseWriter, r *http.Request) {
	query := h.Model(&models.Note{}).Order("year DESC, semester DESC, created_at DESC")

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		query = query.Limit(limit)
	}

	var notes []models.Note
	if err := query.Find(&notes).Error; err != nil {
		log.Println("ListPublicNotes: query failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// GET /api/notes/{id}
func (h *DBHandler) GetNoteByID(w http.ResponseWriter, r *http.Request) {
	noteID := r.PathValue("id")

	var note models.Note
	if err := h.Where("public_id = ?", noteID).First(&note).Error; err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// PATCH /api/notes/{id} — owner-only field edits, last write wins.
func (h *DBHandler) UpdateNoteByID(w http.ResponseWriter, r *http.Request) {
	authID, ok := utils.GetAuthID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var note models.Note
	if err := h.Where("public_id = ?", r.PathValue("id")).First(&note).Error; err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	if note.UploaderUID != authID {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	var req struct {
		Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
		Filename    *string `json:"filename" validate:"omitempty,max=500"`
		Year        *string `json:"year" validate:"omitempty,max=50"`
		Semester    *string `json:"semester" validate:"omitempty,max=50"`
		Subject     *string `json:"subject" validate:"omitempty,max=200"`
		Description *string `json:"description" validate:"omitempty,max=2000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Filename != nil {
		note.Filename = *req.Filename
	}
	if req.Year != nil {
		note.Year = *req.Year
	}
	if req.Semester != nil {
		note.Semester = *req.Semester
	}
	if req.Subject != nil {
		note.Subject = *req.Subject
	}
	if req.Description != nil {
		note.Description = *req.Description
	}

	if err := h.Save(&note).Error; err != nil {
		log.Println("UpdateNoteByID: save failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update note")
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DELETE /api/notes/{id} — only the uploader may delete.
func (h *DBHandler) DeleteNoteByID(w http.ResponseWriter, r *http.Request) {
	authID, ok := utils.GetAuthID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var note models.Note
	if err := h.Where("public_id = ?", r.PathValue("id")).First(&note).Error; err != nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}
	if note.UploaderUID != authID {
		writeError(w, http.StatusForbidden, "Forbidden")
		return
	}

	if err := h.Delete(&note).Error; err != nil {
		log.Println("DeleteNoteByID: delete failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// POST /api/notes/{id}/like
func (h *DBHandler) LikeNote(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionLike)
}

// POST /api/notes/{id}/dislike
func (h *DBHandler) DislikeNote(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, models.ReactionDislike)
}

func (h *DBHandler) react(w http.ResponseWriter, r *http.Request, kind models.ReactionKind) {
	authID, ok := utils.GetAuthID(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := reactions.Toggle(h.DB, r.PathValue("id"), authID, kind)
	if err != nil {
		respondError(w, err, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
