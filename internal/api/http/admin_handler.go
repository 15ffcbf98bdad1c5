package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"velvetden-backend/internal/domain"
	"velvetden-backend/internal/service"
	"velvetden-backend/internal/storage"
)

// AdminHandler serves the review queue and walk-in management.
type AdminHandler struct {
	admin  service.AdminService
	spaces service.SpaceService
	files  storage.FileStorage
}

func NewAdminHandler(admin service.AdminService, spaces service.SpaceService, files storage.FileStorage) *AdminHandler {
	return &AdminHandler{admin: admin, spaces: spaces, files: files}
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, counts, err := h.admin.ListUsers(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dtos := make([]userDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, toUserDTO(&users[i], counts[i]))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// setStatus backs the approve, reject and request-picture actions; each
// route binds a fixed target status.
func (h *AdminHandler) setStatus(status domain.UserStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := h.admin.SetUserStatus(r.Context(), id, status)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toUserDTO(user, 0))
	}
}

type adminUserUpdateRequest struct {
	Age           *int    `json:"age"`
	Location      *string `json:"location"`
	Height        *string `json:"height"`
	Size          *string `json:"size"`
	AdminComments *string `json:"adminComments"`
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req adminUserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, count, err := h.admin.UpdateUser(r.Context(), id, service.AdminUserUpdate{
		Age:           req.Age,
		Location:      req.Location,
		Height:        req.Height,
		Size:          req.Size,
		AdminComments: req.AdminComments,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserDTO(user, count))
}

// CreateUser takes the walk-in form as multipart so an admin can attach a
// picture taken at the door; every field but the names is optional.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	if firstName == "" || lastName == "" {
		writeError(w, http.StatusBadRequest, "First name and last name are required")
		return
	}

	params := service.CreateUserParams{
		Email:         strings.TrimSpace(r.FormValue("email")),
		Password:      r.FormValue("password"),
		FirstName:     firstName,
		LastName:      lastName,
		Status:        r.FormValue("status"),
		Location:      r.FormValue("location"),
		Height:        r.FormValue("height"),
		Size:          r.FormValue("size"),
		AdminComments: r.FormValue("adminComments"),
	}
	if raw := r.FormValue("age"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid age")
			return
		}
		params.Age = &age
	}

	if file, header, err := r.FormFile("verificationImage"); err == nil {
		defer file.Close()
		path, err := h.files.Save(header.Filename, header.Header.Get("Content-Type"), header.Size, file)
		if err != nil {
			writeStorageError(w, err)
			return
		}
		params.ImagePath = path
	}

	user, err := h.admin.CreateUser(r.Context(), params)
	if err != nil {
		if params.ImagePath != "" {
			_ = h.files.Delete(params.ImagePath)
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserDTO(user, 0))
}

type bookForUserRequest struct {
	UserEmail string `json:"userEmail"`
}

func (h *AdminHandler) BookForUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	spaceID, err := strconv.ParseInt(vars["spaceId"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid space id")
		return
	}

	var req bookForUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserEmail = strings.TrimSpace(req.UserEmail)
	if req.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "userEmail is required")
		return
	}

	user, err := h.admin.GetUserByEmail(r.Context(), req.UserEmail)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	space, err := h.spaces.BookSpaceForUser(r.Context(), eventID, spaceID, user)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSpaceDTO(space))
}

func (h *AdminHandler) Register(router *mux.Router) {
	router.HandleFunc("/admin/users", h.ListUsers).Methods("GET")
	router.HandleFunc("/admin/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/admin/users/{id:[0-9]+}", h.UpdateUser).Methods("PUT")
	router.HandleFunc("/admin/users/{id:[0-9]+}/approve", h.setStatus(domain.UserStatusApproved)).Methods("POST")
	router.HandleFunc("/admin/users/{id:[0-9]+}/reject", h.setStatus(domain.UserStatusRejected)).Methods("POST")
	router.HandleFunc("/admin/users/{id:[0-9]+}/request-picture", h.setStatus(domain.UserStatusPictureRequested)).Methods("POST")
	router.HandleFunc("/admin/users/{eventId:[0-9]+}/{spaceId:[0-9]+}/book-for-user", h.BookForUser).Methods("POST")
}
