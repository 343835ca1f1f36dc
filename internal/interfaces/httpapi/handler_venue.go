package httpapi

import (
	"net/http"

	"github.com/playfield/tournament-service/internal/domain/venue"
	"github.com/playfield/tournament-service/internal/usecase"
)

type venueRequest struct {
	Name    string `json:"name" validate:"omitempty,max=120"`
	City    string `json:"city" validate:"omitempty,max=120"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

type venueDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	items, err := h.venueService.ListVenues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list venues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]venueDTO, 0, len(items))
	for _, item := range items {
		out = append(out, venueToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetVenue")
	defer span.End()

	venueID := r.PathValue("venueID")
	item, err := h.venueService.GetVenue(ctx, venueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get venue failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(item))
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateVenue")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req venueRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.venueService.CreateVenue(ctx, principal, usecase.VenueInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create venue failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, venueToDTO(item))
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateVenue")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req venueRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	venueID := r.PathValue("venueID")
	item, err := h.venueService.UpdateVenue(ctx, principal, venueID, usecase.VenueInput{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update venue failed", "venue_id", venueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueToDTO(item))
}

func venueToDTO(v venue.Venue) venueDTO {
	return venueDTO{
		ID:      v.ID,
		Name:    v.Name,
		City:    v.City,
		Address: v.Address,
	}
}
