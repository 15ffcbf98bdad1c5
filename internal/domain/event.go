package domain

import "time"

type SpaceColor string

const (
	SpaceColorGreen  SpaceColor = "GREEN"
	SpaceColorYellow SpaceColor = "YELLOW"
	SpaceColorOrange SpaceColor = "ORANGE"
	SpaceColorBlue   SpaceColor = "BLUE"
	SpaceColorPurple SpaceColor = "PURPLE"
	SpaceColorWhite  SpaceColor = "WHITE"
)

// SpaceTemplate is a reusable definition (name + color) that event spaces
// are stamped from.
type SpaceTemplate struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Color       SpaceColor `json:"color"`
	Description string     `json:"description"`
}

// Space is one bookable slot at an event. BookedByEmail is empty while the
// space is available.
type Space struct {
	ID            int64      `json:"id"`
	TemplateID    int64      `json:"template_id"`
	EventID       int64      `json:"event_id"`
	Name          string     `json:"name"`
	Color         SpaceColor `json:"color"`
	BookedByID    *int64     `json:"booked_by_id"`
	BookedByEmail string     `json:"booked_by_email"`
}

func (s *Space) Available() bool {
	return s.BookedByID == nil
}

type Event struct {
	ID        int64     `json:"id"`
	City      string    `json:"city"`
	DateTime  time.Time `json:"date_time"`
	Upcoming  bool      `json:"upcoming"`
	Cancelled bool      `json:"cancelled"`
	Spaces    []Space   `json:"spaces"`
}

func (e *Event) AvailableSpacesCount() int {
	count := 0
	for i := range e.Spaces {
		if e.Spaces[i].Available() {
			count++
		}
	}
	return count
}

func (e *Event) TotalSpacesCount() int {
	return len(e.Spaces)
}
