package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddinginvite/internal/delivery/http/controllers"
	"weddinginvite/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(rsvpController *controllers.RSVPController, siteController *controllers.SiteController) *http.ServeMux {
	mux := http.NewServeMux()

	// RSVP
	mux.HandleFunc("POST /api/rsvp", rsvpController.Submit)
	mux.HandleFunc("GET /api/rsvp", rsvpController.GetInvitation)
	mux.HandleFunc("GET /api/rsvp/qr", rsvpController.QRCode)

	// Public pages
	mux.HandleFunc("GET /api/events", siteController.ListEvents)
	mux.HandleFunc("GET /api/itinerary", siteController.Itinerary)
	mux.HandleFunc("GET /api/wardrobe", siteController.Wardrobe)
	mux.HandleFunc("GET /api/settings", siteController.Settings)
	mux.HandleFunc("GET /healthz", siteController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with panic recovery, request logging and CORS.
func NewHandler(logger *slog.Logger, mux *http.ServeMux, allowedOrigins []string) http.Handler {
	return middleware.Recover(logger, middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
