package application

import (
	"context"
	"sync"
	"time"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

var _ output.EventRepository = (*fakeEventRepo)(nil)

// fakeEventRepo is an in-memory event store. AppendBooking evaluates its
// condition and the insert under one lock, mirroring the atomicity contract
// of the real store.
type fakeEventRepo struct {
	mu     sync.Mutex
	events []*entities.Event

	// appendErr, when set, forces AppendBooking to fail with it.
	appendErr error
}

func (f *fakeEventRepo) find(id string) *entities.Event {
	for _, e := range f.events {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func copyEvent(e *entities.Event) *entities.Event {
	cp := *e
	cp.Bookings = append([]entities.Booking(nil), e.Bookings...)
	cp.BookingCount = len(cp.Bookings)
	return &cp
}

func (f *fakeEventRepo) Create(_ context.Context, event *entities.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, copyEvent(event))
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.find(id)
	if e == nil {
		return nil, domain.ErrEventNotFound
	}
	return copyEvent(e), nil
}

func (f *fakeEventRepo) FindOwned(_ context.Context, id, organizerID string) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.find(id)
	if e == nil || e.OrganizerID != organizerID {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	return copyEvent(e), nil
}

func (f *fakeEventRepo) FindByStatus(_ context.Context, status string) ([]entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Event
	for _, e := range f.events {
		if e.Status == status {
			out = append(out, *copyEvent(e))
		}
	}
	return out, nil
}

func (f *fakeEventRepo) FindByOrganizerID(_ context.Context, organizerID string) ([]entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entities.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, *copyEvent(e))
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Update(_ context.Context, id, ownerScope string, patch entities.EventPatch) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.find(id)
	if e == nil || (ownerScope != "" && e.OrganizerID != ownerScope) {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Image != nil {
		e.Image = *patch.Image
	}
	if patch.MaxParticipants != nil {
		e.MaxParticipants = *patch.MaxParticipants
	}
	return copyEvent(e), nil
}

func (f *fakeEventRepo) UpdateStatus(_ context.Context, id, ownerScope, status string) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.find(id)
	if e == nil || (ownerScope != "" && e.OrganizerID != ownerScope) {
		return nil, domain.ErrNotFoundOrUnauthorized
	}
	e.Status = status
	return copyEvent(e), nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id, ownerScope string) (*entities.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e.ID == id {
			if ownerScope != "" && e.OrganizerID != ownerScope {
				return nil, domain.ErrNotFoundOrUnauthorized
			}
			f.events = append(f.events[:i], f.events[i+1:]...)
			return copyEvent(e), nil
		}
	}
	return nil, domain.ErrNotFoundOrUnauthorized
}

func (f *fakeEventRepo) AppendBooking(_ context.Context, eventID, participantID string, joinedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	e := f.find(eventID)
	if e == nil {
		return domain.ErrEventNotFound
	}
	for _, b := range e.Bookings {
		if b.ParticipantID == participantID {
			return domain.ErrBookingConditionFailed
		}
	}
	if len(e.Bookings) >= e.MaxParticipants {
		return domain.ErrBookingConditionFailed
	}
	e.Bookings = append(e.Bookings, entities.Booking{
		EventID:       eventID,
		ParticipantID: participantID,
		Participant:   entities.UserRef{ID: participantID},
		Status:        domain.BookingPending,
		JoinedAt:      joinedAt,
	})
	return nil
}

func (f *fakeEventRepo) UpdateBookingStatus(_ context.Context, eventID, participantID, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e := f.find(eventID)
	if e == nil {
		return domain.ErrParticipantNotFound
	}
	for i := range e.Bookings {
		if e.Bookings[i].ParticipantID == participantID {
			e.Bookings[i].Status = status
			return nil
		}
	}
	return domain.ErrParticipantNotFound
}

var _ output.UserRepository = (*fakeUserRepo)(nil)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entities.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *user
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) SetApproved(_ context.Context, id string, approved bool) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			u.IsApproved = approved
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

var _ output.TokenManager = (*stubTokens)(nil)

type stubTokens struct{}

func (stubTokens) Issue(user *entities.User) (string, time.Time, error) {
	return "token-" + user.ID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), nil
}

func (stubTokens) Verify(string) (domain.Principal, error) {
	return domain.Principal{}, domain.ErrUnauthenticated
}
