package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/playfield/tournament-service/internal/domain/event"
	"github.com/playfield/tournament-service/internal/usecase"
)

type createEventRequest struct {
	SportID     string         `json:"sportId" validate:"required"`
	Title       string         `json:"title" validate:"required,max=150"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	StartDate   string         `json:"startDate" validate:"required"`
	EndDate     string         `json:"endDate"`
	VenueID     string         `json:"venueId"`
	RulesConfig map[string]any `json:"rulesConfig"`
}

type updateEventRequest struct {
	Title       string         `json:"title" validate:"omitempty,max=150"`
	Description string         `json:"description" validate:"omitempty,max=2000"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	VenueID     *string        `json:"venueId"`
	RulesConfig map[string]any `json:"rulesConfig"`
}

type transitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming live completed"`
}

type eventDTO struct {
	ID          string         `json:"id"`
	SportID     string         `json:"sportId"`
	ManagerID   string         `json:"managerId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   string         `json:"startDate"`
	EndDate     *string        `json:"endDate,omitempty"`
	Status      string         `json:"status"`
	VenueID     *string        `json:"venueId,omitempty"`
	RulesConfig map[string]any `json:"rulesConfig"`
}

type eventDetailDTO struct {
	Event    eventDTO     `json:"event"`
	Sport    sportDTO     `json:"sport"`
	Venue    *venueDTO    `json:"venue,omitempty"`
	Teams    []teamDTO    `json:"teams"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	query := r.URL.Query()
	filter := event.Filter{
		SportID:   strings.TrimSpace(query.Get("sport_id")),
		VenueID:   strings.TrimSpace(query.Get("venue_id")),
		Status:    strings.ToLower(strings.TrimSpace(query.Get("status"))),
		ManagerID: strings.TrimSpace(query.Get("manager_id")),
		Search:    strings.TrimSpace(query.Get("q")),
	}

	startBefore, err := h.eventService.DateWindow(query.Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	filter.StartBefore = startBefore

	items, err := h.eventService.ListEvents(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	detail, err := h.eventService.GetEventDetail(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventDetailToDTO(detail))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateEvent")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req createEventRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var endDate *time.Time
	if strings.TrimSpace(req.EndDate) != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		endDate = &parsed
	}

	item, err := h.eventService.CreateEvent(ctx, principal, usecase.CreateEventInput{
		SportID:     req.SportID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		VenueID:     req.VenueID,
		RulesConfig: req.RulesConfig,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create event failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(item))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateEvent")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req updateEventRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		VenueID:     req.VenueID,
		RulesConfig: req.RulesConfig,
	}
	if strings.TrimSpace(req.StartDate) != "" {
		parsed, err := parseDate(req.StartDate)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.StartDate = &parsed
	}
	if strings.TrimSpace(req.EndDate) != "" {
		parsed, err := parseDate(req.EndDate)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.EndDate = &parsed
	}

	eventID := r.PathValue("eventID")
	item, err := h.eventService.UpdateEvent(ctx, principal, eventID, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) TransitionEventStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TransitionEventStatus")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	var req transitionStatusRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	item, err := h.eventService.TransitionStatus(ctx, principal, eventID, req.Status)
	if err != nil {
		h.logger.WarnContext(ctx, "transition event status failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	eventID := r.PathValue("eventID")
	if err := h.eventService.DeleteEvent(ctx, principal, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

// parseDate accepts RFC 3339 timestamps and plain dates.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Time{}, fmt.Errorf("%w: date %q is not RFC 3339 or YYYY-MM-DD", usecase.ErrInvalidInput, value)
}

func eventToDTO(v event.Event) eventDTO {
	dto := eventDTO{
		ID:          v.ID,
		SportID:     v.SportID,
		ManagerID:   v.ManagerID,
		Title:       v.Title,
		Description: v.Description,
		StartDate:   v.StartDate.UTC().Format(time.RFC3339),
		Status:      v.Status,
		VenueID:     v.VenueID,
		RulesConfig: v.RulesConfig,
	}
	if v.EndDate != nil {
		formatted := v.EndDate.UTC().Format(time.RFC3339)
		dto.EndDate = &formatted
	}
	return dto
}

func eventDetailToDTO(detail usecase.EventDetail) eventDetailDTO {
	dto := eventDetailDTO{
		Event:    eventToDTO(detail.Event),
		Sport:    sportToDTO(detail.Sport),
		Teams:    make([]teamDTO, 0, len(detail.Teams)),
		Fixtures: make([]fixtureDTO, 0, len(detail.Fixtures)),
	}
	if detail.Venue != nil {
		venue := venueToDTO(*detail.Venue)
		dto.Venue = &venue
	}
	for _, item := range detail.Teams {
		dto.Teams = append(dto.Teams, teamToDTO(item))
	}
	for _, item := range detail.Fixtures {
		dto.Fixtures = append(dto.Fixtures, fixtureToDTO(item))
	}
	return dto
}
