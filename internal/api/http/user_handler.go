package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

// UserHandler serves the authenticated user's own profile.
type UserHandler struct {
	users service.UserService
	files storage.FileStorage
}

func NewUserHandler(users service.UserService, files storage.FileStorage) *UserHandler {
	return &UserHandler{users: users, files: files}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	current := userFrom(r.Context())

	user, count, err := h.users.GetProfile(r.Context(), current.ID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user, count))
}

func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	current := userFrom(r.Context())
	if !current.IsAdmin && current.ID != id {
		writeError(w, http.StatusForbidden, "You can only view your own profile")
		return
	}

	user, count, err := h.users.GetProfile(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user, count))
}

type profileUpdateRequest struct {
	Age      *int    `json:"age"`
	Location *string `json:"location"`
	Height   *string `json:"height"`
	Size     *string `json:"size"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req profileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	current := userFrom(r.Context())
	user, count, err := h.users.UpdateProfile(r.Context(), current.ID, service.ProfileUpdate{
		Age:      req.Age,
		Location: req.Location,
		Height:   req.Height,
		Size:     req.Size,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user, count))
}

func (h *UserHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("verificationImage")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Verification picture is required")
		return
	}
	defer file.Close()

	path, err := h.files.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	current := userFrom(r.Context())
	user, err := h.users.UpdateVerificationImage(r.Context(), current.ID, path)
	if err != nil {
		_ = h.files.Delete(path)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":               "Picture uploaded, your account is back in review",
		"status":                string(user.Status),
		"verificationImagePath": user.VerificationImagePath,
	})
}

func (h *UserHandler) Register(router *mux.Router) {
	router.HandleFunc("/users/me", h.GetMe).Methods("GET")
	router.HandleFunc("/users/me", h.UpdateMe).Methods("PUT")
	router.HandleFunc("/users/me/upload-picture", h.UploadPicture).Methods("POST")
	router.HandleFunc("/users/{id:[0-9]+}", h.GetByID).Methods("GET")
}
