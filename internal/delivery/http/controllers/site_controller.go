package controllers

import (
	"log/slog"
	"net/http"

	"weddinginvite/internal/delivery/http/helpers"
	"weddinginvite/internal/domain"
)

// ListEventsSuccessResponse is the success response envelope for GET /api/events (200).
type ListEventsSuccessResponse struct {
	Success bool              `json:"success"`
	Data    []*domain.Event   `json:"data"`
	Error   *helpers.APIError `json:"error"`
}

// ItinerarySuccessResponse is the success response envelope for GET /api/itinerary (200).
type ItinerarySuccessResponse struct {
	Success bool                  `json:"success"`
	Data    []*domain.DaySchedule `json:"data"`
	Error   *helpers.APIError     `json:"error"`
}

// WardrobeSuccessResponse is the success response envelope for GET /api/wardrobe (200).
type WardrobeSuccessResponse struct {
	Success bool                  `json:"success"`
	Data    []*domain.DayWardrobe `json:"data"`
	Error   *helpers.APIError     `json:"error"`
}

// SettingsSuccessResponse is the success response envelope for GET /api/settings (200).
type SettingsSuccessResponse struct {
	Success bool                 `json:"success"`
	Data    *domain.SiteSettings `json:"data"`
	Error   *helpers.APIError    `json:"error"`
}

// SiteController serves the public, non-personalized pages.
type SiteController struct {
	Logger  *slog.Logger
	Service domain.InvitationService
}

func NewSiteController(logger *slog.Logger, svc domain.InvitationService) *SiteController {
	return &SiteController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Tags site
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "events in display order"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/events [get]
func (c *SiteController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to load events")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// Itinerary godoc
// @Summary Itinerary grouped by day
// @Tags site
// @Produce json
// @Success 200 {object} controllers.ItinerarySuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/itinerary [get]
func (c *SiteController) Itinerary(w http.ResponseWriter, r *http.Request) {
	days, err := c.Service.Itinerary(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to load itinerary")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// Wardrobe godoc
// @Summary Wardrobe guidance grouped by day
// @Tags site
// @Produce json
// @Success 200 {object} controllers.WardrobeSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/wardrobe [get]
func (c *SiteController) Wardrobe(w http.ResponseWriter, r *http.Request) {
	days, err := c.Service.Wardrobe(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to load wardrobe")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, days)
}

// Settings godoc
// @Summary Site settings
// @Description Config values with defaults applied and the greeting rendered to HTML.
// @Tags site
// @Produce json
// @Success 200 {object} controllers.SettingsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/settings [get]
func (c *SiteController) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := c.Service.SiteSettings(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "Failed to load settings")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, settings)
}

// Health godoc
// @Summary Liveness probe
// @Tags site
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (c *SiteController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
