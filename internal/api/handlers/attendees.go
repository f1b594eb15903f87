package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gatherhall/server/internal/api/respond"
	"github.com/gatherhall/server/internal/domain/attendees"
	"github.com/gatherhall/server/internal/domain/ids"
)

// AttendeesHandler serves the reduced attendee route set: list, get,
// create, delete. Reads come back with the event reference expanded.
type AttendeesHandler struct {
	Service *attendees.Service
}

func NewAttendeesHandler(service *attendees.Service) *AttendeesHandler {
	return &AttendeesHandler{Service: service}
}

func (h *AttendeesHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		respond.Internal(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, documents(items))
}

func (h *AttendeesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid attendee ID", err)
		return
	}

	item, err := h.Service.GetByULID(r.Context(), ulid)
	if err != nil {
		if errors.Is(err, attendees.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Attendee not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item.Document())
}

func (h *AttendeesHandler) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.Service.Create(r.Context(), fields)
	if err != nil {
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, item.Document())
}

func (h *AttendeesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid attendee ID", err)
		return
	}

	if err := h.Service.Delete(r.Context(), ulid); err != nil {
		if errors.Is(err, attendees.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Attendee not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Attendee deleted", nil)
}
