package httpapi

import (
	"net/http"

	"github.com/playfield/tournament-service/internal/domain/team"
	"github.com/playfield/tournament-service/internal/usecase"
)

type teamRequest struct {
	Name      string  `json:"name" validate:"omitempty,max=120"`
	City      string  `json:"city" validate:"omitempty,max=120"`
	CoachName string  `json:"coachName" validate:"omitempty,max=120"`
	CaptainID *string `json:"captainId"`
}

type teamDTO struct {
	ID        string  `json:"id"`
	EventID   string  `json:"eventId"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	CoachName string  `json:"coachName"`
	CaptainID *string `json:"captainId,omitempty"`
}

func (h *Handler) ListTeamsByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	items, err := h.teamService.ListTeamsByEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) AddTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddTeam")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req teamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	item, err := h.teamService.AddTeam(ctx, principal, eventID, usecase.TeamInput{
		Name:      req.Name,
		City:      req.City,
		CoachName: req.CoachName,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add team failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req teamRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := r.PathValue("teamID")
	item, err := h.teamService.UpdateTeam(ctx, principal, teamID, usecase.TeamInput{
		Name:      req.Name,
		City:      req.City,
		CoachName: req.CoachName,
		CaptainID: req.CaptainID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	teamID := r.PathValue("teamID")
	if err := h.teamService.DeleteTeam(ctx, principal, teamID); err != nil {
		h.logger.WarnContext(ctx, "delete team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:        v.ID,
		EventID:   v.EventID,
		Name:      v.Name,
		City:      v.City,
		CoachName: v.CoachName,
		CaptainID: v.CaptainID,
	}
}
