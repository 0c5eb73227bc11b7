package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
)

// Stub use cases with overridable behaviors. Handlers under test only call
// the functions a given test installs.

type stubEvents struct {
	createEvent    func(caller domain.Principal, in input.CreateEventInput) (*entities.Event, error)
	getEvent       func(id string) (*entities.Event, error)
	listPublished  func() ([]entities.Event, error)
	listMine       func(caller domain.Principal) ([]entities.Event, error)
	updateEvent    func(caller domain.Principal, id string, patch entities.EventPatch) (*entities.Event, error)
	deleteEvent    func(caller domain.Principal, id string) (*entities.Event, error)
	setEventStatus func(caller domain.Principal, id, status string) (*entities.Event, error)
}

func (s *stubEvents) CreateEvent(_ context.Context, caller domain.Principal, in input.CreateEventInput) (*entities.Event, error) {
	return s.createEvent(caller, in)
}

func (s *stubEvents) GetEvent(_ context.Context, id string) (*entities.Event, error) {
	return s.getEvent(id)
}

func (s *stubEvents) ListPublished(_ context.Context) ([]entities.Event, error) {
	return s.listPublished()
}

func (s *stubEvents) ListMine(_ context.Context, caller domain.Principal) ([]entities.Event, error) {
	return s.listMine(caller)
}

func (s *stubEvents) UpdateEvent(_ context.Context, caller domain.Principal, id string, patch entities.EventPatch) (*entities.Event, error) {
	return s.updateEvent(caller, id, patch)
}

func (s *stubEvents) DeleteEvent(_ context.Context, caller domain.Principal, id string) (*entities.Event, error) {
	return s.deleteEvent(caller, id)
}

func (s *stubEvents) SetEventStatus(_ context.Context, caller domain.Principal, id, status string) (*entities.Event, error) {
	return s.setEventStatus(caller, id, status)
}

type stubBookings struct {
	book             func(caller domain.Principal, eventID string) (*entities.Event, error)
	setBookingStatus func(caller domain.Principal, eventID, participantID, status string) (*entities.Event, error)
	ticket           func(caller domain.Principal, eventID string) (*entities.Ticket, error)
}

func (s *stubBookings) Book(_ context.Context, caller domain.Principal, eventID string) (*entities.Event, error) {
	return s.book(caller, eventID)
}

func (s *stubBookings) SetBookingStatus(_ context.Context, caller domain.Principal, eventID, participantID, status string) (*entities.Event, error) {
	return s.setBookingStatus(caller, eventID, participantID, status)
}

func (s *stubBookings) Ticket(_ context.Context, caller domain.Principal, eventID string) (*entities.Ticket, error) {
	return s.ticket(caller, eventID)
}

type stubAuth struct {
	register         func(in input.RegisterInput) (*entities.User, error)
	login            func(in input.LoginInput) (*input.LoginResult, error)
	approveOrganizer func(caller domain.Principal, userID string) (*entities.User, error)
}

func (s *stubAuth) Register(_ context.Context, in input.RegisterInput) (*entities.User, error) {
	return s.register(in)
}

func (s *stubAuth) Login(_ context.Context, in input.LoginInput) (*input.LoginResult, error) {
	return s.login(in)
}

func (s *stubAuth) ApproveOrganizer(_ context.Context, caller domain.Principal, userID string) (*entities.User, error) {
	return s.approveOrganizer(caller, userID)
}

// stubTokens resolves fixed token strings to principals.
type stubTokens struct {
	principals map[string]domain.Principal
}

func (s stubTokens) Issue(user *entities.User) (string, time.Time, error) {
	return "token-" + user.ID, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), nil
}

func (s stubTokens) Verify(raw string) (domain.Principal, error) {
	if p, ok := s.principals[raw]; ok {
		return p, nil
	}
	return domain.Principal{}, domain.ErrUnauthenticated
}

// keyTranslator echoes the message key, so tests assert on stable keys
// instead of rendered copy.
type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

type testHarness struct {
	events   *stubEvents
	bookings *stubBookings
	auth     *stubAuth
	tokens   stubTokens
	server   *httptest.Server
}

func newHarness(t *testing.T) *testHarness {
	h := &testHarness{
		events:   &stubEvents{},
		bookings: &stubBookings{},
		auth:     &stubAuth{},
		tokens:   stubTokens{principals: map[string]domain.Principal{}},
	}
	handler := NewHandler(h.events, h.bookings, h.auth, h.tokens, keyTranslator{}, zap.NewNop(), "")
	h.server = httptest.NewServer(handler.Routes())
	t.Cleanup(h.server.Close)
	return h
}

func (h *testHarness) asPrincipal(p domain.Principal) string {
	token := "token-" + p.ID
	h.tokens.principals[token] = p
	return token
}

func (h *testHarness) do(method, path, token, body string) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != "" {
		req, err = http.NewRequest(method, h.server.URL+path, strings.NewReader(body))
	} else {
		req, err = http.NewRequest(method, h.server.URL+path, nil)
	}
	if err != nil {
		return nil, err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return http.DefaultClient.Do(req)
}
