package routes

import (
	"net/http"

	"github.com/caseline/caseline/internal/app"
	"github.com/caseline/caseline/internal/handler"
	"github.com/caseline/caseline/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.Mongo, app.DB, app.Drafts)
	submission := handler.NewSubmissionHandler(app.SubmissionService, app.DraftService)
	timeline := handler.NewTimelineHandler(app.SubmissionService)
	draft := handler.NewDraftHandler(app.DraftService)
	attachment := handler.NewAttachmentHandler(app.AttachmentService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Submission aggregate
	mux.HandleFunc("GET /api/submission", middleware.RequireAuth(submission.Get))
	mux.HandleFunc("POST /api/submission", middleware.RequireAuth(submission.Save))
	mux.HandleFunc("PATCH /api/submission/status", middleware.RequireAuth(submission.UpdateStatus))
	mux.HandleFunc("DELETE /api/submission", middleware.RequireAuth(submission.Delete))

	// Timeline arrangement
	mux.HandleFunc("POST /api/timeline/preview", middleware.RequireAuth(timeline.Preview))
	mux.HandleFunc("POST /api/timeline/reorder", middleware.RequireAuth(timeline.Reorder))

	// Draft autosave
	mux.HandleFunc("GET /api/draft/{section}", middleware.RequireAuth(draft.Get))
	mux.HandleFunc("PUT /api/draft/{section}", middleware.RequireAuth(draft.Put))
	mux.HandleFunc("DELETE /api/draft/{section}", middleware.RequireAuth(draft.Delete))

	// Evidence uploads (rate limited)
	uploadLimiter := middleware.RateLimitUploads()
	mux.HandleFunc("POST /api/events/{id}/attachments", uploadLimiter(middleware.RequireAuth(attachment.Upload)))
	mux.HandleFunc("GET /api/events/{id}/attachments", middleware.RequireAuth(attachment.List))
	mux.HandleFunc("DELETE /api/uploads/{id}", middleware.RequireAuth(attachment.Delete))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.Cfg.JWTSecret),
	)

	return h
}
