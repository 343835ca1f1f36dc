package httpapi

import (
	"net/http"

	"github.com/playfield/tournament-service/internal/domain/player"
	"github.com/playfield/tournament-service/internal/usecase"
)

type playerRequest struct {
	Name    string         `json:"name" validate:"omitempty,max=120"`
	Details map[string]any `json:"details"`
}

type playerDTO struct {
	ID      string         `json:"id"`
	TeamID  string         `json:"teamId"`
	Name    string         `json:"name"`
	Details map[string]any `json:"details"`
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	items, err := h.playerService.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddPlayer")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req playerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	item, err := h.playerService.AddPlayer(ctx, principal, teamID, usecase.PlayerInput{
		Name:    req.Name,
		Details: req.Details,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add player failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req playerRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	playerID := r.PathValue("playerID")
	item, err := h.playerService.UpdatePlayer(ctx, principal, playerID, usecase.PlayerInput{
		Name:    req.Name,
		Details: req.Details,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, principal, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:      v.ID,
		TeamID:  v.TeamID,
		Name:    v.Name,
		Details: v.Details,
	}
}
