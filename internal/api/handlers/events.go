package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gatherhall/server/internal/api/respond"
	"github.com/gatherhall/server/internal/domain/events"
	"github.com/gatherhall/server/internal/domain/ids"
)

type EventsHandler struct {
	Service *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Service: service}
}

func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		respond.Internal(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, documents(items))
}

func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	item, err := h.Service.GetByULID(r.Context(), ulid)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Event not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item.Document())
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
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

// Update serves both PUT and PATCH: the stored document is merged with the
// request fields either way, matching the store's observed behavior.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.Service.Update(r.Context(), ulid, fields)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Event not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item.Document())
}

func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid event ID", err)
		return
	}

	if err := h.Service.Delete(r.Context(), ulid); err != nil {
		if errors.Is(err, events.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Event not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Event deleted", nil)
}
