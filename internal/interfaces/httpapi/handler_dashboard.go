package httpapi

import (
	"net/http"

	"github.com/playfield/tournament-service/internal/usecase"
)

type managerDashboardDTO struct {
	EventCount int                `json:"eventCount"`
	Events     []eventOverviewDTO `json:"events"`
}

type eventOverviewDTO struct {
	Event        eventDTO `json:"event"`
	TeamCount    int      `json:"teamCount"`
	PlayerCount  int      `json:"playerCount"`
	FixtureCount int      `json:"fixtureCount"`
}

type publicStatsDTO struct {
	ActiveEvents int `json:"activeEvents"`
	Teams        int `json:"teams"`
	Sports       int `json:"sports"`
}

func (h *Handler) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerDashboard")
	defer span.End()

	principal, ok := h.requirePrincipal(ctx, w)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetManagerDashboard(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get manager dashboard failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, managerDashboardToDTO(dashboard))
}

func (h *Handler) GetPublicStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPublicStats")
	defer span.End()

	stats, err := h.dashboardService.GetPublicStats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get public stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, publicStatsDTO{
		ActiveEvents: stats.ActiveEvents,
		Teams:        stats.Teams,
		Sports:       stats.Sports,
	})
}

func managerDashboardToDTO(v usecase.ManagerDashboard) managerDashboardDTO {
	events := make([]eventOverviewDTO, 0, len(v.Events))
	for _, overview := range v.Events {
		events = append(events, eventOverviewDTO{
			Event:        eventToDTO(overview.Event),
			TeamCount:    overview.TeamCount,
			PlayerCount:  overview.PlayerCount,
			FixtureCount: overview.FixtureCount,
		})
	}
	return managerDashboardDTO{EventCount: v.EventCount, Events: events}
}
