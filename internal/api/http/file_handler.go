package http

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/storage"
)

// FileHandler serves stored verification images to admins. The path comes
// from the user record and is validated against the storage root.
type FileHandler struct {
	files storage.FileStorage
}

func NewFileHandler(files storage.FileStorage) *FileHandler {
	return &FileHandler{files: files}
}

func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeError(w, http.StatusBadRequest, "Missing path parameter")
		return
	}

	f, err := h.files.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrOutsideRoot), errors.Is(err, storage.ErrEmptyUploadPath):
			writeError(w, http.StatusBadRequest, "Invalid path")
		case errors.Is(err, storage.ErrFileNotFound):
			writeError(w, http.StatusNotFound, "File not found")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to open file")
		}
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", storage.ContentTypeForFile(path))
	w.Header().Set("Content-Disposition", `inline; filename="`+filepath.Base(path)+`"`)
	// Verification images are sensitive; keep them out of shared caches.
	w.Header().Set("Cache-Control", "private, no-store")

	if _, err := io.Copy(w, f); err != nil {
		logger.Warn("Failed to stream file", "path", path, "error", err)
	}
}

func (h *FileHandler) Register(admin *mux.Router) {
	admin.HandleFunc("/files", h.Serve).Methods("GET")
}
