package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/playfield/tournament-service/internal/domain/fixture"
	"github.com/playfield/tournament-service/internal/usecase"
)

type scheduleFixtureRequest struct {
	StartTime string `json:"startTime" validate:"required"`
	VenueID   string `json:"venueId"`
	TeamAID   string `json:"teamAId"`
	TeamBID   string `json:"teamBId"`
	Title     string `json:"title" validate:"omitempty,max=150"`
}

type updateFixtureRequest struct {
	StartTime string  `json:"startTime"`
	VenueID   *string `json:"venueId"`
	Title     string  `json:"title" validate:"omitempty,max=150"`
}

type recordScoreRequest struct {
	ScoreData map[string]any `json:"scoreData" validate:"required"`
}

type fixtureDTO struct {
	ID        string         `json:"id"`
	EventID   string         `json:"eventId"`
	VenueID   *string        `json:"venueId,omitempty"`
	StartTime string         `json:"startTime"`
	TeamAID   *string        `json:"teamAId,omitempty"`
	TeamBID   *string        `json:"teamBId,omitempty"`
	Title     string         `json:"title,omitempty"`
	ScoreData map[string]any `json:"scoreData"`
}

func (h *Handler) ListFixturesByEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	items, err := h.fixtureService.ListFixturesByEvent(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ScheduleFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScheduleFixture")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req scheduleFixtureRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startTime, err := parseDate(req.StartTime)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	item, err := h.fixtureService.ScheduleFixture(ctx, principal, eventID, usecase.ScheduleFixtureInput{
		StartTime: startTime,
		VenueID:   req.VenueID,
		TeamAID:   req.TeamAID,
		TeamBID:   req.TeamBID,
		Title:     req.Title,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "schedule fixture failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, fixtureToDTO(item))
}

func (h *Handler) UpdateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateFixture")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req updateFixtureRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateFixtureInput{
		VenueID: req.VenueID,
		Title:   req.Title,
	}
	if strings.TrimSpace(req.StartTime) != "" {
		parsed, err := parseDate(req.StartTime)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.StartTime = &parsed
	}

	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.UpdateFixture(ctx, principal, fixtureID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) RecordFixtureScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordFixtureScore")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req recordScoreRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtureID := r.PathValue("fixtureID")
	item, err := h.fixtureService.RecordScore(ctx, principal, fixtureID, req.ScoreData)
	if err != nil {
		h.logger.WarnContext(ctx, "record score failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDTO(item))
}

func (h *Handler) DeleteFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFixture")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	fixtureID := r.PathValue("fixtureID")
	if err := h.fixtureService.DeleteFixture(ctx, principal, fixtureID); err != nil {
		h.logger.WarnContext(ctx, "delete fixture failed", "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	return fixtureDTO{
		ID:        v.ID,
		EventID:   v.EventID,
		VenueID:   v.VenueID,
		StartTime: v.StartTime.UTC().Format(time.RFC3339),
		TeamAID:   v.TeamAID,
		TeamBID:   v.TeamBID,
		Title:     v.Title,
		ScoreData: v.ScoreData,
	}
}
