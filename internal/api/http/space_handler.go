package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/service"
)

// SpaceHandler serves booking and cancellation for the authenticated user.
type SpaceHandler struct {
	spaces service.SpaceService
}

func NewSpaceHandler(spaces service.SpaceService) *SpaceHandler {
	return &SpaceHandler{spaces: spaces}
}

type bookRequest struct {
	SpaceID int64 `json:"spaceId"`
}

func (h *SpaceHandler) Book(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(mux.Vars(r)["eventId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SpaceID == 0 {
		writeError(w, http.StatusBadRequest, "spaceId is required")
		return
	}

	space, err := h.spaces.BookSpace(r.Context(), eventID, req.SpaceID, userFrom(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "Space booked",
		"spaceId":   space.ID,
		"spaceName": space.Name,
	})
}

func (h *SpaceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	spaceID, err := strconv.ParseInt(mux.Vars(r)["spaceId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid space id")
		return
	}

	if err := h.spaces.CancelBooking(r.Context(), spaceID, userFrom(r.Context())); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

func (h *SpaceHandler) Register(router *mux.Router) {
	router.HandleFunc("/spaces/events/{eventId:[0-9]+}/book", h.Book).Methods("POST")
	router.HandleFunc("/spaces/{spaceId:[0-9]+}/cancel", h.Cancel).Methods("DELETE")
}
