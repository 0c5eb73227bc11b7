package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MostafaRhazlani/EventFlow/internal/domain/entities"
	"github.com/MostafaRhazlani/EventFlow/internal/ports/input"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)

	var in input.CreateEventInput
	if isMultipart(r) {
		form, err := h.parseEventForm(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		in = input.CreateEventInput{
			Title:       stringOr(form.Title, ""),
			Description: stringOr(form.Description, ""),
			Location:    stringOr(form.Location, ""),
			Image:       stringOr(form.Image, ""),
		}
		if form.Date != nil {
			in.Date = *form.Date
		}
		if form.MaxParticipants != nil {
			in.MaxParticipants = *form.MaxParticipants
		}
	} else {
		var req createEventRequest
		if err := decodeJSONStrict(r, &req); err != nil {
			h.writeError(w, r, badJSON(err))
			return
		}
		in = input.CreateEventInput{
			Title:           req.Title,
			Description:     req.Description,
			Location:        req.Location,
			Date:            req.Date,
			MaxParticipants: req.MaxParticipants,
		}
	}

	event, err := h.events.CreateEvent(r.Context(), caller, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

type createEventRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	Date            time.Time `json:"date"`
	MaxParticipants int       `json:"max_participants"`
}

func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListPublished(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventListResponse(events))
}

func (h *Handler) listMine(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	events, err := h.events.ListMine(r.Context(), caller)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventListResponse(events))
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

type updateEventRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Location        *string    `json:"location"`
	Date            *time.Time `json:"date"`
	MaxParticipants *int       `json:"max_participants"`
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)

	var patch entities.EventPatch
	if isMultipart(r) {
		form, err := h.parseEventForm(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		patch = *form
	} else {
		var req updateEventRequest
		if err := decodeJSONStrict(r, &req); err != nil {
			h.writeError(w, r, badJSON(err))
			return
		}
		patch = entities.EventPatch{
			Title:           req.Title,
			Description:     req.Description,
			Location:        req.Location,
			Date:            req.Date,
			MaxParticipants: req.MaxParticipants,
		}
	}

	event, err := h.events.UpdateEvent(r.Context(), caller, chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	event, err := h.events.DeleteEvent(r.Context(), caller, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}

type setStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) setEventStatus(w http.ResponseWriter, r *http.Request) {
	caller, _ := principalFrom(r)
	var req setStatusRequest
	if err := decodeJSONStrict(r, &req); err != nil {
		h.writeError(w, r, badJSON(err))
		return
	}
	event, err := h.events.SetEventStatus(r.Context(), caller, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(event))
}
