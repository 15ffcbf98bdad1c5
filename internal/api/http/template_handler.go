package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/service"
)

// TemplateHandler serves the reusable space definitions events are built
// from.
type TemplateHandler struct {
	templates service.SpaceTemplateService
}

func NewTemplateHandler(templates service.SpaceTemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.ListTemplates(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	dtos := make([]templateDTO, 0, len(templates))
	for i := range templates {
		dtos = append(dtos, toTemplateDTO(&templates[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

func (h *TemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid template id")
		return
	}

	template, err := h.templates.GetTemplate(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplateDTO(template))
}

type createTemplateRequest struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Color == "" {
		writeError(w, http.StatusBadRequest, "Name and color are required")
		return
	}

	template, err := h.templates.CreateTemplate(r.Context(), req.Name, domain.SpaceColor(req.Color), req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTemplateDTO(template))
}

func (h *TemplateHandler) Register(authed, admin *mux.Router) {
	authed.HandleFunc("/space-templates", h.List).Methods("GET")
	authed.HandleFunc("/space-templates/{id:[0-9]+}", h.Get).Methods("GET")
	admin.HandleFunc("/space-templates", h.Create).Methods("POST")
}
