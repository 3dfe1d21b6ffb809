package handler

import (
	"ai-tutor/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything SetupRoutes mounts.
type Handlers struct {
	Analytics *AnalyticsHandler
	Auth      *AuthHandler
	Health    *HealthHandler
}

// SetupRoutes registers /health and the /api group. Middleware passed in extra runs
// on /api only (rate limiting, for example).
func SetupRoutes(app *fiber.App, h Handlers, extra ...fiber.Handler) {
	vm := middleware.NewValidationMiddleware()

	app.Get("/health", h.Health.Health)

	apiGroup := app.Group("/api")
	for _, mw := range extra {
		apiGroup.Use(mw)
	}

	apiGroup.Get("/students", h.Analytics.ListStudents)
	apiGroup.Post("/login", h.Auth.Login)
	apiGroup.Get("/student_summary/:student_id", vm.ValidateStudentID(), h.Analytics.GetStudentSummary)
	apiGroup.Get("/weak_topics/:student_id", vm.ValidateStudentID(), h.Analytics.GetWeakTopics)
	apiGroup.Get("/predict_weak_topics", vm.ValidateStudentID(), h.Analytics.PredictWeakTopics)
	apiGroup.Get("/concepts", h.Analytics.GetConceptCatalog)
	apiGroup.Get("/reports/weak_topics", h.Analytics.GetCohortWeakTopics)
	apiGroup.Get("/dataset", h.Analytics.GetDatasetInfo)
	apiGroup.Post("/dataset/reload", h.Analytics.ReloadDataset)
}
