package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"noteshare/ai"
	"noteshare/apperrors"
	"noteshare/storage"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DBHandler owns the request handlers and their dependencies.
type DBHandler struct {
	*gorm.DB
	Files     storage.Store
	UploadDir string
	APIKey    string

	// Generator overrides the Gemini client when set; tests use this.
	Generator ai.TextGenerator
}

var validate = validator.New()

func (h *DBHandler) generator() (ai.TextGenerator, error) {
	if h.Generator != nil {
		return h.Generator, nil
	}
	return ai.NewGeminiGenerator(h.APIKey)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON: encoding response:", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// respondError maps a domain error onto a JSON error response. Unexpected
// errors get the fallback message so internals never leak to clients.
func respondError(w http.ResponseWriter, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Println("respondError:", err)
		writeError(w, status, fallback)
		return
	}
	writeError(w, status, err.Error())
}
