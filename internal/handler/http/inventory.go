package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/internal/utils"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds request bodies of mutations.
const maxBodyBytes = 1 << 20

func (h *Handler) list(fallback models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r, fallback)
		if err != nil {
			writeError(w, r, err, "Handler.list")
			return
		}

		page, err := h.gateway.List(r.Context(), models.QueryFromValues(category, r.URL.Query()))
		if err != nil {
			writeError(w, r, err, "Handler.list")
			return
		}
		utils.WriteData(w, page, http.StatusOK)
	}
}

func (h *Handler) detail(fallback models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r, fallback)
		if err != nil {
			writeError(w, r, err, "Handler.detail")
			return
		}

		rec, err := h.gateway.Detail(r.Context(), category, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "Handler.detail")
			return
		}
		utils.WriteData(w, rec, http.StatusOK)
	}
}

func (h *Handler) getFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.gateway.Filters(r.Context())
	if err != nil {
		writeError(w, r, err, "Handler.getFilters")
		return
	}
	utils.WriteData(w, opts, http.StatusOK)
}

func (h *Handler) getLocations(w http.ResponseWriter, r *http.Request) {
	loc, err := h.gateway.Locations(r.Context(), r.URL.Query().Get("serialNumber"))
	if err != nil {
		writeError(w, r, err, "Handler.getLocations")
		return
	}
	utils.WriteData(w, loc, http.StatusOK)
}

func (h *Handler) create(category models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := decodeRecord(w, r, false)
		if err != nil {
			writeError(w, r, err, "Handler.create")
			return
		}

		ack, err := h.gateway.Create(r.Context(), category, item)
		if err != nil {
			writeError(w, r, err, "Handler.create")
			return
		}
		logger.FromRequest(r).Info().Str("category", category.String()).Str("id", ack.ID).Msg("create queued")
		utils.WriteData(w, ack, http.StatusCreated)
	}
}

func (h *Handler) update(category models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, err := decodeRecord(w, r, false)
		if err != nil {
			writeError(w, r, err, "Handler.update")
			return
		}

		ack, err := h.gateway.Update(r.Context(), category, chi.URLParam(r, "id"), patch)
		if err != nil {
			writeError(w, r, err, "Handler.update")
			return
		}
		utils.WriteData(w, ack, http.StatusOK)
	}
}

func (h *Handler) delete(fallback models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := categoryFromRequest(r, fallback)
		if err != nil {
			writeError(w, r, err, "Handler.delete")
			return
		}

		ack, err := h.gateway.Delete(r.Context(), category, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err, "Handler.delete")
			return
		}
		utils.WriteData(w, ack, http.StatusOK)
	}
}

// move archives or sells the located machine {id}. The body is optional.
func (h *Handler) move(target models.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeRecord(w, r, true)
		if err != nil {
			writeError(w, r, err, "Handler.move")
			return
		}

		id := chi.URLParam(r, "id")
		var ack models.Ack
		if target == models.Archived {
			ack, err = h.gateway.Archive(r.Context(), id, payload)
		} else {
			ack, err = h.gateway.Sell(r.Context(), id, payload)
		}
		if err != nil {
			writeError(w, r, err, "Handler.move")
			return
		}
		utils.WriteData(w, ack, http.StatusCreated)
	}
}

// categoryFromRequest resolves the machine category named by the "location"
// query parameter. Routes of other categories ignore the parameter.
func categoryFromRequest(r *http.Request, fallback models.Category) (models.Category, error) {
	raw := r.URL.Query().Get("location")
	if raw == "" || !fallback.IsMachine() {
		return fallback, nil
	}
	c, err := models.ParseCategory(raw)
	if err != nil || !c.IsMachine() {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, raw)
	}
	return c, nil
}

// decodeRecord reads a JSON object from the body. An empty body is accepted
// only when optional is set.
func decodeRecord(w http.ResponseWriter, r *http.Request, optional bool) (models.Record, error) {
	var rec models.Record
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&rec)
	switch {
	case errors.Is(err, io.EOF) && optional:
		return models.Record{}, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	case rec == nil:
		return models.Record{}, nil
	}
	return rec, nil
}
