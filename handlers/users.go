package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"noteshare/middleware"
	"noteshare/models"
	"noteshare/social"
	"noteshare/storage"
	"noteshare/utils"
)

type profileResponse struct {
	models.User
	Counts models.UserCounts `json:"counts"`
	// IsFollowing is present only when a follow-status check was requested.
	IsFollowing *bool `json:"isFollowing,omitempty"`
}

// GET /api/users/me — create-or-get profile for the logged-in user. The
// lazy creation already happened in SyncUserMiddleware.
func (h *DBHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	counts, err := social.Counts(h.DB, user.AuthID)
	if err != nil {
		log.Println("GetMe: counting failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	writeJSON(w, http.StatusOK, profileResponse{User: *user, Counts: counts})
}

// PATCH /api/users/me
func (h *DBHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Username   *string `json:"username" validate:"omitempty,min=1,max=100"`
		College    *string `json:"college" validate:"omitempty,max=200"`
		Profession *string `json:"profession" validate:"omitempty,max=200"`
		Bio        *string `json:"bio" validate:"omitempty,max=2000"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.College != nil {
		user.College = *req.College
	}
	if req.Profession != nil {
		user.Profession = *req.Profession
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := h.Save(user).Error; err != nil {
		log.Println("UpdateMe: save failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// POST /api/users/me/avatar — multipart avatar upload.
func (h *DBHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No avatar uploaded")
		return
	}
	defer file.Close()

	name := storage.ObjectName(header.Filename)
	url, err := h.Files.Save(r.Context(), name, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		log.Println("UploadAvatar: storing file failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to store avatar")
		return
	}

	user.AvatarURL = url
	if err := h.Save(user).Error; err != nil {
		log.Println("UploadAvatar: save failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// DELETE /api/users/me/avatar — reset to the default sentinel.
func (h *DBHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user.AvatarURL = models.DefaultAvatarURL
	if err := h.Save(user).Error; err != nil {
		log.Println("DeleteAvatar: save failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Profile picture deleted",
		"avatarUrl": user.AvatarURL,
	})
}

// GET /api/users/me/notes
func (h *DBHandler) GetMyNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	h.listNotesFor(w, user.AuthID)
}

// GET /api/users/search?query=q — case-insensitive username search.
func (h *DBHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "Query parameter required")
		return
	}

	var users []models.User
	if err := h.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(query)+"%").
		Limit(10).Find(&users).Error; err != nil {
		log.Println("SearchUsers: query failed:", err)
		writeError(w, http.StatusInternalServerError, "Search failed")
		return
	}

	type result struct {
		Username  string `json:"username"`
		AvatarURL string `json:"avatarUrl"`
		AuthID    string `json:"authId"`
	}
	results := make([]result, 0, len(users))
	for _, u := range users {
		results = append(results, result{Username: u.Username, AvatarURL: u.AvatarURL, AuthID: u.AuthID})
	}
	writeJSON(w, http.StatusOK, results)
}

// GET /api/users/{uid} — public profile with read-time counts. With
// ?status=true and an authenticated caller, the response also says whether
// the caller follows this user.
func (h *DBHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	var user models.User
	if err := h.Where("auth_id = ?", uid).First(&user).Error; err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	counts, err := social.Counts(h.DB, uid)
	if err != nil {
		log.Println("GetUserByID: counting failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	resp := profileResponse{User: user, Counts: counts}
	if r.URL.Query().Get("status") == "true" {
		if callerID, ok := utils.GetAuthID(r); ok {
			following, err := social.IsFollowing(h.DB, callerID, uid)
			if err != nil {
				log.Println("GetUserByID: follow status failed:", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch user")
				return
			}
			resp.IsFollowing = &following
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GET /api/users/{uid}/notes
func (h *DBHandler) GetUserNotes(w http.ResponseWriter, r *http.Request) {
	h.listNotesFor(w, r.PathValue("uid"))
}

func (h *DBHandler) listNotesFor(w http.ResponseWriter, uploaderUID string) {
	var notes []models.Note
	if err := h.Where("uploader_uid = ?", uploaderUID).
		Order("created_at DESC").Find(&notes).Error; err != nil {
		log.Println("listNotesFor: query failed:", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// POST /api/users/{uid}/follow
func (h *DBHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := social.Follow(h.DB, user.AuthID, r.PathValue("uid")); err != nil {
		respondError(w, err, "Failed to follow user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Followed successfully"})
}

// DELETE /api/users/{uid}/follow — idempotent.
func (h *DBHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := social.Unfollow(h.DB, user.AuthID, r.PathValue("uid")); err != nil {
		respondError(w, err, "Failed to unfollow user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Unfollowed successfully"})
}

// GET /api/users/{uid}/follow-status
func (h *DBHandler) FollowStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	following, err := social.IsFollowing(h.DB, user.AuthID, r.PathValue("uid"))
	if err != nil {
		respondError(w, err, "Failed to check follow status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"isFollowing": following})
}
