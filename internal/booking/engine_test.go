package booking

import (
	"testing"
	"time"

	"velvetden-backend/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func approvedProfile(booked int) *Profile {
	return &Profile{Status: domain.UserStatusApproved, Approved: true, BookedSpacesCount: booked}
}

func TestClassifySpace_BookedSpaces(t *testing.T) {
	ev := Event{ID: 1}
	sess := Session{Authenticated: true, UserEmail: "me@example.com"}

	t.Run("BookedByMe", func(t *testing.T) {
		sp := Space{ID: 3, Available: false, BookedBy: "me@example.com"}
		state := ClassifySpace(sess, approvedProfile(1), ev, sp)
		assert.Equal(t, StateBooked, state.Kind)
		assert.True(t, state.IsMine)
	})

	t.Run("BookedByOther", func(t *testing.T) {
		sp := Space{ID: 3, Available: false, BookedBy: "other@example.com"}
		state := ClassifySpace(sess, approvedProfile(0), ev, sp)
		assert.Equal(t, StateBooked, state.Kind)
		assert.False(t, state.IsMine)
	})

	t.Run("BookedAnonymousViewer", func(t *testing.T) {
		sp := Space{ID: 3, Available: false, BookedBy: "me@example.com"}
		state := ClassifySpace(Session{}, nil, ev, sp)
		assert.Equal(t, StateBooked, state.Kind)
		assert.False(t, state.IsMine)
	})
}

func TestClassifySpace_PriorityOrder(t *testing.T) {
	ev := Event{ID: 1}
	sp := Space{ID: 5, Available: true}
	sess := Session{Authenticated: true, UserEmail: "me@example.com"}

	t.Run("RejectedBeatsEverything", func(t *testing.T) {
		// Rejected wins even with approved=true and an existing booking.
		profile := &Profile{Status: domain.UserStatusRejected, Approved: true, BookedSpacesCount: 2}
		state := ClassifySpace(sess, profile, ev, sp)
		assert.Equal(t, StateAvailableRejected, state.Kind)
	})

	t.Run("DeclinedLegacySynonym", func(t *testing.T) {
		profile := &Profile{Status: domain.UserStatus("declined"), Approved: true, BookedSpacesCount: 2}
		state := ClassifySpace(sess, profile, ev, sp)
		assert.Equal(t, StateAvailableRejected, state.Kind)
	})

	t.Run("NotApprovedBeatsOneSpaceLimit", func(t *testing.T) {
		profile := &Profile{Status: domain.UserStatusInReview, Approved: false, BookedSpacesCount: 1}
		state := ClassifySpace(sess, profile, ev, sp)
		assert.Equal(t, StateAvailableNotApproved, state.Kind)
	})

	t.Run("PictureRequestedIsNotApproved", func(t *testing.T) {
		profile := &Profile{Status: domain.UserStatusPictureRequested, Approved: false}
		state := ClassifySpace(sess, profile, ev, sp)
		assert.Equal(t, StateAvailableNotApproved, state.Kind)
	})

	t.Run("OneSpaceLimit", func(t *testing.T) {
		state := ClassifySpace(sess, approvedProfile(1), ev, sp)
		assert.Equal(t, StateAvailableOneSpaceLimit, state.Kind)
	})

	t.Run("Bookable", func(t *testing.T) {
		state := ClassifySpace(sess, approvedProfile(0), ev, sp)
		assert.Equal(t, StateAvailableBookable, state.Kind)
	})
}

func TestClassifySpace_Unauthenticated(t *testing.T) {
	ev := Event{ID: 1}
	sp := Space{ID: 5, Available: true}

	// Anonymous users always see available spaces as bookable.
	state := ClassifySpace(Session{}, nil, ev, sp)
	assert.Equal(t, StateAvailableBookable, state.Kind)

	// Same when authenticated but the profile has not loaded yet.
	state = ClassifySpace(Session{Authenticated: true, UserEmail: "me@example.com"}, nil, ev, sp)
	assert.Equal(t, StateAvailableBookable, state.Kind)
}

func TestClassifySpace_Idempotent(t *testing.T) {
	ev := Event{ID: 1}
	sp := Space{ID: 5, Available: true}
	sess := Session{Authenticated: true, UserEmail: "me@example.com"}
	profile := &Profile{Status: domain.UserStatusRejected, BookedSpacesCount: 1}

	first := ClassifySpace(sess, profile, ev, sp)
	second := ClassifySpace(sess, profile, ev, sp)
	assert.Equal(t, first, second)
}

func TestOnSpaceClick(t *testing.T) {
	authed := Session{Authenticated: true, UserEmail: "me@example.com"}
	anon := Session{}

	t.Run("ModalOpenIgnoresEverything", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableBookable}, authed, 7, true)
		assert.Equal(t, ActionIgnore, action.Kind)
	})

	t.Run("BookedIgnored", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateBooked, IsMine: true}, authed, 7, false)
		assert.Equal(t, ActionIgnore, action.Kind)
	})

	t.Run("RejectedIgnored", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableRejected}, authed, 7, false)
		assert.Equal(t, ActionIgnore, action.Kind)
	})

	t.Run("NotApprovedWarning", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableNotApproved}, authed, 7, false)
		assert.Equal(t, ActionShowNotApprovedWarning, action.Kind)
	})

	t.Run("OneSpaceLimitWarning", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableOneSpaceLimit}, authed, 7, false)
		assert.Equal(t, ActionShowOneSpaceLimitWarning, action.Kind)
	})

	t.Run("AnonymousGetsLogin", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableBookable}, anon, 7, false)
		assert.Equal(t, ActionRequireLogin, action.Kind)
		assert.Equal(t, int64(7), action.SpaceID)
	})

	t.Run("ApprovedGetsConfirmation", func(t *testing.T) {
		action := OnSpaceClick(SpaceState{Kind: StateAvailableBookable}, authed, 7, false)
		assert.Equal(t, ActionConfirmBooking, action.Kind)
		assert.Equal(t, int64(7), action.SpaceID)
	})
}

func TestPendingBooking_ResolveAfterLogin(t *testing.T) {
	t.Run("EmptySlotIsNoop", func(t *testing.T) {
		var p PendingBooking
		action := p.ResolveAfterLogin(approvedProfile(0))
		assert.Equal(t, PostLoginNoop, action.Kind)
	})

	t.Run("ApprovedFiresExactlyOnce", func(t *testing.T) {
		var p PendingBooking
		p.Capture(42)

		action := p.ResolveAfterLogin(approvedProfile(0))
		assert.Equal(t, PostLoginConfirmBooking, action.Kind)
		assert.Equal(t, int64(42), action.SpaceID)

		// The slot is consumed: a re-render must not re-trigger.
		action = p.ResolveAfterLogin(approvedProfile(0))
		assert.Equal(t, PostLoginNoop, action.Kind)
	})

	t.Run("NotApprovedDiscardsIntent", func(t *testing.T) {
		var p PendingBooking
		p.Capture(42)

		profile := &Profile{Status: domain.UserStatusInReview, Approved: false}
		action := p.ResolveAfterLogin(profile)
		assert.Equal(t, PostLoginShowNotApprovedWarning, action.Kind)

		action = p.ResolveAfterLogin(approvedProfile(0))
		assert.Equal(t, PostLoginNoop, action.Kind)
	})

	t.Run("NilProfileDiscardsIntent", func(t *testing.T) {
		var p PendingBooking
		p.Capture(42)
		action := p.ResolveAfterLogin(nil)
		assert.Equal(t, PostLoginShowNotApprovedWarning, action.Kind)
	})

	t.Run("CaptureOverwrites", func(t *testing.T) {
		var p PendingBooking
		p.Capture(1)
		p.Capture(2)
		action := p.ResolveAfterLogin(approvedProfile(0))
		assert.Equal(t, int64(2), action.SpaceID)
	})
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		message string
		want    ErrorKind
	}{
		{"Only approved users can book spaces", ErrorNotApproved},
		{"only APPROVED users can book", ErrorNotApproved},
		{"You can only book one space per event", ErrorOneSpaceLimit},
		{"Space is already booked", ErrorSpaceAlreadyBooked},
		{"space IS ALREADY booked by someone else", ErrorSpaceAlreadyBooked},
		{"Event not found", ErrorGeneric},
		{"", ErrorGeneric},
		{"something went wrong", ErrorGeneric},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyError(tc.message), "message: %q", tc.message)
	}
}

func TestClassifyError_MatchesCanonicalServerErrors(t *testing.T) {
	assert.Equal(t, ErrorNotApproved, ClassifyError(ErrNotApproved.Error()))
	assert.Equal(t, ErrorOneSpaceLimit, ClassifyError(ErrOneSpacePerEvent.Error()))
	assert.Equal(t, ErrorSpaceAlreadyBooked, ClassifyError(ErrSpaceAlreadyBooked.Error()))
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()
	secret := []byte("0123456789abcdef0123456789abcdef")

	makeToken := func(exp time.Time) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "me@example.com",
			"exp": exp.Unix(),
		})
		signed, err := token.SignedString(secret)
		assert.NoError(t, err)
		return signed
	}

	assert.False(t, TokenExpired(makeToken(now.Add(time.Hour)), now))
	assert.True(t, TokenExpired(makeToken(now.Add(-time.Minute)), now))
	assert.True(t, TokenExpired("not-a-jwt", now))
	assert.True(t, TokenExpired("", now))
}
