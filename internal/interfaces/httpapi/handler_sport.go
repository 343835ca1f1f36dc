package httpapi

import (
	"net/http"

	"github.com/playfield/tournament-service/internal/domain/sport"
	"github.com/playfield/tournament-service/internal/usecase"
)

type createSportRequest struct {
	Name   string         `json:"name" validate:"required,max=100"`
	Type   string         `json:"type" validate:"required,oneof=team individual"`
	Schema map[string]any `json:"configSchema"`
}

type registerSchemaRequest struct {
	Schema map[string]any `json:"configSchema" validate:"required"`
}

type sportDTO struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	ConfigSchema map[string]any `json:"configSchema"`
}

func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSports")
	defer span.End()

	items, err := h.sportService.ListSports(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]sportDTO, 0, len(items))
	for _, item := range items {
		out = append(out, sportToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSport")
	defer span.End()

	sportID := r.PathValue("sportID")
	item, err := h.sportService.GetSport(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sportToDTO(item))
}

func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSport")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req createSportRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.sportService.CreateSport(ctx, principal, usecase.CreateSportInput{
		Name:   req.Name,
		Type:   req.Type,
		Schema: sport.SchemaFromDocument(req.Schema),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create sport failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, sportToDTO(item))
}

func (h *Handler) GetSportSchema(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSportSchema")
	defer span.End()

	sportID := r.PathValue("sportID")
	schema, err := h.sportService.GetSchema(ctx, sportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get sport schema failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, schema.Document())
}

func (h *Handler) RegisterSportSchema(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterSportSchema")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req registerSchemaRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sportID := r.PathValue("sportID")
	schema := sport.SchemaFromDocument(req.Schema)
	if err := h.sportService.RegisterSchema(ctx, principal, sportID, schema); err != nil {
		h.logger.WarnContext(ctx, "register sport schema failed", "sport_id", sportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, schema.Document())
}

func sportToDTO(v sport.Sport) sportDTO {
	return sportDTO{
		ID:           v.ID,
		Name:         v.Name,
		Type:         v.Type,
		ConfigSchema: v.ConfigSchema.Document(),
	}
}
