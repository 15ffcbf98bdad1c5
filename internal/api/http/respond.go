package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"velvetden-backend/internal/booking"
	"velvetden-backend/internal/logger"
	"velvetden-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps known service errors to HTTP statuses. The error
// text goes to the client verbatim; the booking failure texts are part of
// the contract and are matched on the other end.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrNotApproved),
		errors.Is(err, booking.ErrNotYourBooking):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrEventNotFound),
		errors.Is(err, booking.ErrSpaceNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTemplateNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrSpaceAlreadyBooked),
		errors.Is(err, booking.ErrOneSpacePerEvent),
		errors.Is(err, booking.ErrUserAlreadyBooked),
		errors.Is(err, service.ErrEventCancelled):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, booking.ErrSpaceNotBooked),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrPictureNotRequested),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidSpaceCount):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
