package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/MostafaRhazlani/EventFlow/internal/domain"
	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// statusForCode maps domain error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case "event_not_found", "user_not_found", "not_found_or_unauthorized", "participant_not_found":
		return http.StatusNotFound
	case "unauthenticated", "invalid_credentials":
		return http.StatusUnauthorized
	case "unauthorized":
		return http.StatusForbidden
	case "email_taken":
		return http.StatusConflict
	case "already_booked", "event_full", "booking_failed", "booking_not_confirmed", "validation":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	status := statusForCode(code)
	if code == "" || status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err), zap.String("path", r.URL.Path))
		code = "internal"
		status = http.StatusInternalServerError
	}

	resp := errorResponse{
		Error: h.t.T(locale(r), "error."+code, nil),
		Code:  code,
	}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// locale returns the caller's language preference; go-i18n accepts the
// Accept-Language value as-is.
func locale(r *http.Request) string {
	return r.Header.Get("Accept-Language")
}

// decodeJSONStrict rejects unknown fields so typos fail loudly.
func decodeJSONStrict(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

type userResponse struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResponse(u *entities.User) userResponse {
	return userResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       u.Role,
		IsApproved: u.IsApproved,
		CreatedAt:  u.CreatedAt,
	}
}

type userRefResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toUserRefResponse(r entities.UserRef) userRefResponse {
	return userRefResponse{ID: r.ID, FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

type bookingResponse struct {
	ParticipantID string          `json:"participant_id"`
	Participant   userRefResponse `json:"participant"`
	Status        string          `json:"status"`
	JoinedAt      time.Time       `json:"joined_at"`
}

type eventResponse struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        string            `json:"location"`
	Date            time.Time         `json:"date"`
	Image           string            `json:"image,omitempty"`
	Status          string            `json:"status"`
	MaxParticipants int               `json:"max_participants"`
	Organizer       userRefResponse   `json:"organizer"`
	BookingCount    int               `json:"booking_count"`
	Remaining       int               `json:"remaining"`
	Bookings        []bookingResponse `json:"bookings,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func toEventResponse(e *entities.Event) eventResponse {
	resp := eventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		Location:        e.Location,
		Date:            e.Date,
		Image:           e.Image,
		Status:          e.Status,
		MaxParticipants: e.MaxParticipants,
		Organizer:       toUserRefResponse(e.Organizer),
		BookingCount:    e.BookingCount,
		Remaining:       e.Remaining(),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
	for _, b := range e.Bookings {
		resp.Bookings = append(resp.Bookings, bookingResponse{
			ParticipantID: b.ParticipantID,
			Participant:   toUserRefResponse(b.Participant),
			Status:        b.Status,
			JoinedAt:      b.JoinedAt,
		})
	}
	return resp
}

func toEventListResponse(events []entities.Event) []eventResponse {
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = toEventResponse(&events[i])
	}
	return out
}
