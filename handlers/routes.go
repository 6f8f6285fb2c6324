package handlers

import (
	"net/http"

	"noteshare/middleware"
)

// Routes builds the API mux. Mutating routes go through SyncUserMiddleware,
// which requires a validated token and attaches the caller's profile.
func (h *DBHandler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Notes
	mux.HandleFunc("POST /api/upload", middleware.SyncUserMiddleware(h.UploadNote))
	mux.HandleFunc("GET /api/public/notes", h.ListPublicNotes)
	mux.HandleFunc("GET /api/notes/{id}", h.GetNoteByID)
	mux.HandleFunc("PATCH /api/notes/{id}", middleware.SyncUserMiddleware(h.UpdateNoteByID))
	mux.HandleFunc("DELETE /api/notes/{id}", middleware.SyncUserMiddleware(h.DeleteNoteByID))
	mux.HandleFunc("POST /api/notes/{id}/like", middleware.SyncUserMiddleware(h.LikeNote))
	mux.HandleFunc("POST /api/notes/{id}/dislike", middleware.SyncUserMiddleware(h.DislikeNote))

	// Profiles
	mux.HandleFunc("GET /api/users/me", middleware.SyncUserMiddleware(h.GetMe))
	mux.HandleFunc("PATCH /api/users/me", middleware.SyncUserMiddleware(h.UpdateMe))
	mux.HandleFunc("POST /api/users/me/avatar", middleware.SyncUserMiddleware(h.UploadAvatar))
	mux.HandleFunc("DELETE /api/users/me/avatar", middleware.SyncUserMiddleware(h.DeleteAvatar))
	mux.HandleFunc("GET /api/users/me/notes", middleware.SyncUserMiddleware(h.GetMyNotes))
	mux.HandleFunc("GET /api/users/search", h.SearchUsers)
	mux.HandleFunc("GET /api/users/{uid}", h.GetUserByID)
	mux.HandleFunc("GET /api/users/{uid}/notes", h.GetUserNotes)

	// Follow graph
	mux.HandleFunc("POST /api/users/{uid}/follow", middleware.SyncUserMiddleware(h.FollowUser))
	mux.HandleFunc("DELETE /api/users/{uid}/follow", middleware.SyncUserMiddleware(h.UnfollowUser))
	mux.HandleFunc("GET /api/users/{uid}/follow-status", middleware.SyncUserMiddleware(h.FollowStatus))

	// Flashcards / Q&A
	mux.HandleFunc("POST /api/flashcards/generate", middleware.SyncUserMiddleware(h.GenerateFlashcards))
	mux.HandleFunc("POST /api/flashcards/ask", middleware.SyncUserMiddleware(h.AskQuestion))
	mux.HandleFunc("GET /api/flashcards/note/{id}/content", middleware.SyncUserMiddleware(h.GetNoteContent))

	// Locally stored uploads
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))

	return mux
}
