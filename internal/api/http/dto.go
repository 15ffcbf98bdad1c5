package http

import (
	"time"

	"velvetden-backend/internal/domain"
)

// Wire shapes are camelCase to match the web client.

type spaceDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Available bool   `json:"available"`
	BookedBy  string `json:"bookedBy,omitempty"`
}

type eventDTO struct {
	ID              int64      `json:"id"`
	City            string     `json:"city"`
	DateTime        time.Time  `json:"dateTime"`
	Upcoming        bool       `json:"upcoming"`
	Cancelled       bool       `json:"cancelled"`
	Spaces          []spaceDTO `json:"spaces"`
	AvailableSpaces int        `json:"availableSpaces"`
	TotalSpaces     int        `json:"totalSpaces"`
}

type userDTO struct {
	ID                    int64  `json:"id"`
	Email                 string `json:"email"`
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Status                string `json:"status"`
	Approved              bool   `json:"approved"`
	IsAdmin               bool   `json:"isAdmin"`
	VerificationImagePath string `json:"verificationImagePath,omitempty"`
	Age                   *int   `json:"age"`
	Location              string `json:"location,omitempty"`
	Height                string `json:"height,omitempty"`
	Size                  string `json:"size,omitempty"`
	AdminComments         string `json:"adminComments,omitempty"`
	BookedSpacesCount     int    `json:"bookedSpacesCount"`
}

type templateDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

func toSpaceDTO(s *domain.Space) spaceDTO {
	return spaceDTO{
		ID:        s.ID,
		Name:      s.Name,
		Color:     string(s.Color),
		Available: s.Available(),
		BookedBy:  s.BookedByEmail,
	}
}

func toEventDTO(e *domain.Event) eventDTO {
	dto := eventDTO{
		ID:              e.ID,
		City:            e.City,
		DateTime:        e.DateTime,
		Upcoming:        e.Upcoming,
		Cancelled:       e.Cancelled,
		Spaces:          make([]spaceDTO, 0, len(e.Spaces)),
		AvailableSpaces: e.AvailableSpacesCount(),
		TotalSpaces:     e.TotalSpacesCount(),
	}
	for i := range e.Spaces {
		dto.Spaces = append(dto.Spaces, toSpaceDTO(&e.Spaces[i]))
	}
	return dto
}

func toUserDTO(u *domain.User, bookedSpacesCount int) userDTO {
	return userDTO{
		ID:                    u.ID,
		Email:                 u.Email,
		FirstName:             u.FirstName,
		LastName:              u.LastName,
		Status:                string(u.Status),
		Approved:              u.Approved(),
		IsAdmin:               u.IsAdmin,
		VerificationImagePath: u.VerificationImagePath,
		Age:                   u.Age,
		Location:              u.Location,
		Height:                u.Height,
		Size:                  u.Size,
		AdminComments:         u.AdminComments,
		BookedSpacesCount:     bookedSpacesCount,
	}
}

func toTemplateDTO(t *domain.SpaceTemplate) templateDTO {
	return templateDTO{
		ID:          t.ID,
		Name:        t.Name,
		Color:       string(t.Color),
		Description: t.Description,
	}
}
