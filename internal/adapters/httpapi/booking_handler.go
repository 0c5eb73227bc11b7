package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MostafaRhazlani/EventFlow/pkg/ticket"
)

func (h *Handler) book(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	event, err := h.bookings.Book(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

func (h *Handler) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	var req setStatusRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, r, badJSON(err))
		return
	}
	event, err := h.bookings.SetBookingStatus(r.Context(), caller,
		chi.URLParam(r, "id"), chi.URLParam(r, "participantID"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (h *Handler) ticket(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	data, err := h.bookings.Ticket(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pdf, err := ticket.Render(*data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ticket.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
