package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

// RegistrationHandler accepts the multipart signup form with the identity
// verification picture.
type RegistrationHandler struct {
	users service.UserService
	files storage.FileStorage
}

func NewRegistrationHandler(users service.UserService, files storage.FileStorage) *RegistrationHandler {
	return &RegistrationHandler{users: users, files: files}
}

// multipart memory threshold; larger parts spill to temp files.
const maxMultipartMemory = 4 << 20

func (h *RegistrationHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	if email == "" || password == "" || firstName == "" || lastName == "" {
		writeError(w, http.StatusBadRequest, "Email, password, first name and last name are required")
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

	user, err := h.users.Register(r.Context(), email, password, firstName, lastName, path)
	if err != nil {
		// The account was not created, so the picture is orphaned. If the
		// delete fails too, the cleanup job picks it up later.
		_ = h.files.Delete(path)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Registration received, your account is being reviewed",
		"userId":  user.ID,
		"email":   user.Email,
		"status":  string(user.Status),
	})
}

func writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "File exceeds the maximum allowed size")
	case errors.Is(err, storage.ErrDisallowedType):
		writeError(w, http.StatusUnsupportedMediaType, "File type is not allowed")
	default:
		writeError(w, http.StatusInternalServerError, "Failed to store file")
	}
}

func (h *RegistrationHandler) Register(router *mux.Router) {
	router.HandleFunc("/registration/register", h.RegisterUser).Methods("POST")
}
