package domain

import (
	"strings"
	"time"
)

// UserStatus is the verification state of a registered user.
type UserStatus string

const (
	UserStatusInReview         UserStatus = "IN_REVIEW"
	UserStatusApproved         UserStatus = "APPROVED"
	UserStatusPictureRequested UserStatus = "PICTURE_REQUESTED"
	UserStatusRejected         UserStatus = "REJECTED"
)

// ParseUserStatus normalizes a raw status string. "DECLINED" is a legacy
// synonym for REJECTED and is folded in here, at the single point where
// status strings enter the system. Unknown strings return ok=false.
func ParseUserStatus(raw string) (UserStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "IN_REVIEW":
		return UserStatusInReview, true
	case "APPROVED":
		return UserStatusApproved, true
	case "PICTURE_REQUESTED":
		return UserStatusPictureRequested, true
	case "REJECTED", "DECLINED":
		return UserStatusRejected, true
	default:
		return "", false
	}
}

type User struct {
	ID                    int64      `json:"id"`
	Email                 string     `json:"email"`
	PasswordHash          string     `json:"-"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	Status                UserStatus `json:"status"`
	VerificationImagePath string     `json:"verification_image_path"`
	IsAdmin               bool       `json:"is_admin"`
	Age                   *int       `json:"age"`
	Location              string     `json:"location"`
	Height                string     `json:"height"`
	Size                  string     `json:"size"`
	AdminComments         string     `json:"admin_comments"`
	CreatedAt             time.Time  `json:"created_at"`
}

// Approved is derived from status so the two can never disagree.
func (u *User) Approved() bool {
	return u.Status == UserStatusApproved
}
