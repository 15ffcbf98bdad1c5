// Package booking holds the admission rules for booking a space: how each
// space presents to the current user, what a click on it should do, and how
// server-side rejections map back to a known failure kind. It is pure
// decision logic; callers do all I/O and rendering.
package booking

import (
	"errors"
	"strings"
	"time"

	"velvetden-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// Canonical booking error messages. These exact texts are returned by the
// server and matched back by ClassifyError, so both sides are defined here.
var (
	ErrNotApproved        = errors.New("Only approved users can book spaces")
	ErrOneSpacePerEvent   = errors.New("You can only book one space per event")
	ErrSpaceAlreadyBooked = errors.New("Space is already booked")
	ErrEventNotFound      = errors.New("Event not found")
	ErrSpaceNotFound      = errors.New("Space not found")
	ErrSpaceNotBooked     = errors.New("Space is not currently booked")
	ErrNotYourBooking     = errors.New("Space is not booked by this user")
	ErrUserAlreadyBooked  = errors.New("User already has a booking for this event")
)

// Session is the caller's authentication state.
type Session struct {
	Authenticated bool
	UserEmail     string
}

// Profile is the subset of the user's details the rules need. A nil
// *Profile means the profile has not loaded yet.
type Profile struct {
	Status            domain.UserStatus
	Approved          bool
	BookedSpacesCount int
}

// Space is the view of a single space as fetched from the event snapshot.
type Space struct {
	ID        int64
	Available bool
	BookedBy  string // booking user's email, empty if available
}

// Event is the snapshot the spaces belong to.
type Event struct {
	ID        int64
	Cancelled bool
	Spaces    []Space
}

// StateKind classifies how a space presents to the current user.
type StateKind int

const (
	StateBooked StateKind = iota
	StateAvailableRejected
	StateAvailableNotApproved
	StateAvailableOneSpaceLimit
	StateAvailableBookable
)

// SpaceState is the display classification for one space. IsMine is only
// meaningful for StateBooked.
type SpaceState struct {
	Kind   StateKind
	IsMine bool
}

// rejected reports whether the profile status is REJECTED, tolerating raw
// or legacy status strings that bypassed normalization.
func rejected(p *Profile) bool {
	if p == nil {
		return false
	}
	status, ok := domain.ParseUserStatus(string(p.Status))
	return ok && status == domain.UserStatusRejected
}

// ClassifySpace decides how one space should present to the current user.
// Disqualifications apply in strict priority order: rejected status beats
// not-approved, which beats the one-space limit. Unauthenticated users (and
// users whose profile has not loaded) always see available spaces as
// bookable; the login flow sorts them out on click.
func ClassifySpace(sess Session, profile *Profile, ev Event, sp Space) SpaceState {
	if !sp.Available {
		return SpaceState{
			Kind:   StateBooked,
			IsMine: sess.Authenticated && sp.BookedBy != "" && sp.BookedBy == sess.UserEmail,
		}
	}

	if !sess.Authenticated || profile == nil {
		return SpaceState{Kind: StateAvailableBookable}
	}

	if rejected(profile) {
		return SpaceState{Kind: StateAvailableRejected}
	}
	if !profile.Approved {
		return SpaceState{Kind: StateAvailableNotApproved}
	}
	if profile.BookedSpacesCount > 0 {
		return SpaceState{Kind: StateAvailableOneSpaceLimit}
	}
	return SpaceState{Kind: StateAvailableBookable}
}

// ActionKind enumerates what a click on a space should do.
type ActionKind int

const (
	ActionIgnore ActionKind = iota
	ActionShowNotApprovedWarning
	ActionShowOneSpaceLimitWarning
	ActionRequireLogin
	ActionConfirmBooking
)

// ClickAction is the outcome of a click. SpaceID is set for
// ActionRequireLogin and ActionConfirmBooking.
type ClickAction struct {
	Kind    ActionKind
	SpaceID int64
}

// OnSpaceClick decides the outcome of clicking a space in the given display
// state. modalOpen is owned by the presentation layer; while a blocking
// modal is up every click is ignored.
func OnSpaceClick(state SpaceState, sess Session, spaceID int64, modalOpen bool) ClickAction {
	if modalOpen {
		return ClickAction{Kind: ActionIgnore}
	}

	switch state.Kind {
	case StateBooked, StateAvailableRejected:
		return ClickAction{Kind: ActionIgnore}
	case StateAvailableNotApproved:
		return ClickAction{Kind: ActionShowNotApprovedWarning}
	case StateAvailableOneSpaceLimit:
		return ClickAction{Kind: ActionShowOneSpaceLimitWarning}
	case StateAvailableBookable:
		if !sess.Authenticated {
			return ClickAction{Kind: ActionRequireLogin, SpaceID: spaceID}
		}
		return ClickAction{Kind: ActionConfirmBooking, SpaceID: spaceID}
	default:
		return ClickAction{Kind: ActionIgnore}
	}
}

// PostLoginKind enumerates what to do with a deferred booking after login.
type PostLoginKind int

const (
	PostLoginNoop PostLoginKind = iota
	PostLoginShowNotApprovedWarning
	PostLoginConfirmBooking
)

// PostLoginAction is the outcome of resolving a pending booking.
type PostLoginAction struct {
	Kind    PostLoginKind
	SpaceID int64
}

// PendingBooking is the one-shot slot holding a booking intent captured
// when an unauthenticated user clicked a space. At most one intent is
// outstanding; capturing again overwrites.
type PendingBooking struct {
	spaceID int64
	set     bool
}

// Capture records the space the user wanted before being sent to login.
func (p *PendingBooking) Capture(spaceID int64) {
	p.spaceID = spaceID
	p.set = true
}

// ResolveAfterLogin consumes the pending slot. The slot is cleared
// unconditionally, so a second call (or a re-render) returns Noop.
func (p *PendingBooking) ResolveAfterLogin(profile *Profile) PostLoginAction {
	if !p.set {
		return PostLoginAction{Kind: PostLoginNoop}
	}
	spaceID := p.spaceID
	p.set = false
	p.spaceID = 0

	if profile == nil || !profile.Approved {
		return PostLoginAction{Kind: PostLoginShowNotApprovedWarning}
	}
	return PostLoginAction{Kind: PostLoginConfirmBooking, SpaceID: spaceID}
}

// ErrorKind classifies a server-side booking rejection.
type ErrorKind int

const (
	ErrorGeneric ErrorKind = iota
	ErrorNotApproved
	ErrorOneSpaceLimit
	ErrorSpaceAlreadyBooked
)

// ClassifyError maps a free-text server error message to a known failure
// kind via case-insensitive substring match. The server's answer is
// authoritative: even a click that passed local classification can come
// back rejected (space taken between render and click), and the message
// text is all the client has to route the right modal.
func ClassifyError(message string) ErrorKind {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "only approved") || strings.Contains(m, "approved"):
		return ErrorNotApproved
	case strings.Contains(m, "one space") || strings.Contains(m, "only book one"):
		return ErrorOneSpaceLimit
	case strings.Contains(m, "already booked") || strings.Contains(m, "space is already"):
		return ErrorSpaceAlreadyBooked
	default:
		return ErrorGeneric
	}
}

// TokenExpired reports whether a JWT's exp claim has passed. The signature
// is deliberately not verified: this is an optimistic freshness check so a
// client can force logout before the server would answer 401. The
// authoritative check stays server-side. Malformed tokens count as expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.Before(now)
}
