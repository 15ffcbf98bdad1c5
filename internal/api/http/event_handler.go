package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/service"
)

// EventHandler serves event reads for all users; create and cancel are
// wired under the admin router.
type EventHandler struct {
	events service.EventService
}

func NewEventHandler(events service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

func (h *EventHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetUpcomingEvent(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, "No upcoming event")
		return
	}
	writeJSON(w, http.StatusOK, toEventDTO(event))
}

func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.GetAllEvents(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]eventDTO, 0, len(events))
	for i := range events {
		dtos = append(dtos, toEventDTO(&events[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

type createEventRequest struct {
	City             string    `json:"city"`
	DateTime         time.Time `json:"dateTime"`
	SpaceTemplateIDs []int64   `json:"spaceTemplateIds"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.City == "" || req.DateTime.IsZero() {
		writeError(w, http.StatusBadRequest, "City and dateTime are required")
		return
	}

	event, err := h.events.CreateEvent(r.Context(), req.City, req.DateTime, req.SpaceTemplateIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventDTO(event))
}

func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return
	}

	event, err := h.events.CancelEvent(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventDTO(event))
}

// Register wires the public upcoming-event read; everything else is admin.
func (h *EventHandler) Register(public, admin *mux.Router) {
	public.HandleFunc("/events/upcoming", h.GetUpcoming).Methods("GET")
	admin.HandleFunc("/events/all", h.GetAll).Methods("GET")
	admin.HandleFunc("/events", h.Create).Methods("POST")
	admin.HandleFunc("/events/{id:[0-9]+}/cancel", h.Cancel).Methods("PUT")
}
