package routes

import (
	"io/fs"
	"net/http"

	"github.com/monjauro/app/assets"
	"github.com/monjauro/app/internal/app"
	"github.com/monjauro/app/internal/handler"
	"github.com/monjauro/app/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler()
	seo := handler.NewSEOHandler()
	legal := handler.NewLegalHandler(app.LegalService)
	funnel := handler.NewFunnelHandler(app.PaymentService, app.Cfg.PlanMonthlyPrice, app.Cfg.PlanAnnualPrice)
	dashboard := handler.NewDashboardHandler(app.TrackerService, app.ProfileService, app.Cfg.RecentInjectionLimit)
	injection := handler.NewInjectionHandler(app.TrackerService)
	nutrition := handler.NewNutritionHandler(app.TrackerService)
	progress := handler.NewProgressHandler(app.TrackerService, app.ProfileService)
	profile := handler.NewProfileHandler(app.ProfileService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)

	// Home / funnel
	mux.HandleFunc("GET /{$}", home.HomePage)
	rateLimiter := middleware.RateLimitFunnel()
	mux.HandleFunc("POST /funnel", rateLimiter(funnel.Transition))

	// Content
	mux.HandleFunc("GET /legal/{page}", legal.ShowPage)

	// ============================================================================
	// TRACKING ROUTES (/app/*)
	// ============================================================================

	mux.HandleFunc("GET /app/dashboard", dashboard.DashboardPage)
	mux.HandleFunc("GET /app/progress", progress.ProgressPage)

	// Injections
	mux.HandleFunc("POST /app/injections", injection.Create)
	mux.HandleFunc("DELETE /app/injections/{id}", injection.Delete)

	// Nutrition
	mux.HandleFunc("POST /app/nutrition", nutrition.Create)
	mux.HandleFunc("DELETE /app/nutrition/{id}", nutrition.Delete)

	// Profile
	mux.HandleFunc("GET /app/profile", profile.ProfilePage)
	mux.HandleFunc("PUT /app/profile", profile.Update)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (CSRF and pages read it)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.MethodOverride, // Rewrites POST+_method before routing
		middleware.CSRFProtection, // CSRF protection for all state-changing requests
		middleware.WithURLPath,
	)

	return handler
}
