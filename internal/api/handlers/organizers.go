package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gatherhall/server/internal/api/respond"
	"github.com/gatherhall/server/internal/domain/ids"
	"github.com/gatherhall/server/internal/domain/organizers"
)

type OrganizersHandler struct {
	Service *organizers.Service
}

func NewOrganizersHandler(service *organizers.Service) *OrganizersHandler {
	return &OrganizersHandler{Service: service}
}

func (h *OrganizersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		respond.Internal(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, documents(items))
}

func (h *OrganizersHandler) Get(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid organizer ID", err)
		return
	}

	item, err := h.Service.GetByULID(r.Context(), ulid)
	if err != nil {
		if errors.Is(err, organizers.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Organizer not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item.Document())
}

func (h *OrganizersHandler) Create(w http.ResponseWriter, r *http.Request) {
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

func (h *OrganizersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid organizer ID", err)
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.Service.Update(r.Context(), ulid, fields)
	if err != nil {
		if errors.Is(err, organizers.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Organizer not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, item.Document())
}

func (h *OrganizersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ulid := strings.TrimSpace(pathParam(r, "id"))
	if err := ids.ValidateULID(ulid); err != nil {
		respond.Message(w, r, http.StatusBadRequest, "Invalid organizer ID", err)
		return
	}

	if err := h.Service.Delete(r.Context(), ulid); err != nil {
		if errors.Is(err, organizers.ErrNotFound) {
			respond.Message(w, r, http.StatusNotFound, "Organizer not found", err)
			return
		}
		respond.Internal(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Organizer deleted", nil)
}
