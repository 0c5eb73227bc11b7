// Package httpapi is the HTTP transport adapter: routing, authentication
// middleware and the translation between wire payloads and use cases.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/output"
)

type Handler struct {
	events    input.EventUseCase
	bookings  input.BookingUseCase
	auth      input.AuthUseCase
	tokens    output.TokenManager
	t         output.Translator
	logger    *zap.Logger
	uploadDir string
}

func NewHandler(
	events input.EventUseCase,
	bookings input.BookingUseCase,
	auth input.AuthUseCase,
	tokens output.TokenManager,
	translator output.Translator,
	logger *zap.Logger,
	uploadDir string,
) *Handler {
	return &Handler{
		events:    events,
		bookings:  bookings,
		auth:      auth,
		tokens:    tokens,
		t:         translator,
		logger:    logger,
		uploadDir: uploadDir,
	}
}

// Routes builds the router. Authentication is attempted on every request;
// individual routes decide whether a principal is required.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(h.accessLog)
	r.Use(h.authenticate)

	r.Get("/health", h.health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	r.With(h.requireAuth).Patch("/users/{id}/approve", h.approveOrganizer)

	r.Route("/events", func(r chi.Router) {
		r.Get("/", h.listEvents)
		r.Get("/{id}", h.getEvent)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/", h.createEvent)
			r.Get("/mine", h.listMine)
			r.Patch("/{id}", h.updateEvent)
			r.Delete("/{id}", h.deleteEvent)
			r.Patch("/{id}/status", h.setEventStatus)
			r.Post("/{id}/book", h.book)
			r.Patch("/{id}/bookings/{participantID}", h.setBookingStatus)
			r.Get("/{id}/ticket", h.ticket)
		})
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
