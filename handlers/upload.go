package handlers

import (
	"log"
	"net/http"

	"noteshare/middleware"
	"noteshare/models"
	"noteshare/storage"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const maxUploadBytes = 32 << 20

// POST /api/upload — multipart note upload. The file goes to the configured
// store; the note row records where it landed.
func (h *DBHandler) UploadNote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	form := struct {
		Title       string `validate:"required,max=200"`
		Year        string `validate:"max=50"`
		Semester    string `validate:"max=50"`
		Subject     string `validate:"max=200"`
		Description string `validate:"max=2000"`
	}{
		Title:       r.FormValue("title"),
		Year:        r.FormValue("year"),
		Semester:    r.FormValue("semester"),
		Subject:     r.FormValue("subject"),
		Description: r.FormValue("description"),
	}
	if err := validate.Struct(form); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid upload fields: "+err.Error())
		return
	}

	objectName := storage.ObjectName(header.Filename)
	fileURL, err := h.Files.Save(r.Context(), objectName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("UploadNote: storing file failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	publicID, err := gonanoid.New()
	if err != nil {
		log.Println("UploadNote: failed to generate publicID:", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	note := models.Note{
		PublicID:    publicID,
		Title:       form.Title,
		Year:        form.Year,
		Semester:    form.Semester,
		Subject:     form.Subject,
		Description: form.Description,
		Uploader:    user.Username,
		UploaderUID: user.AuthID,
		Filename:    objectName,
		FileURL:     fileURL,
	}
	if err := h.Create(&note).Error; err != nil {
		log.Println("UploadNote: creating note failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	writeJSON(w, http.StatusCreated, note)
}
