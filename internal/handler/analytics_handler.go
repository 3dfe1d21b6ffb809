package handler

import (
	"ai-tutor/internal/domain"
	"ai-tutor/internal/middleware"
	"ai-tutor/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AnalyticsHandler handles student analytics HTTP requests
type AnalyticsHandler struct {
	service service.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler instance
func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// studentID reads the ID stored by middleware.ValidateStudentID.
func studentID(c *fiber.Ctx) (int64, error) {
	id, ok := c.Locals(middleware.StudentIDLocal).(int64)
	if !ok {
		return 0, domain.NewInternalError("student_id was not validated for this route", nil)
	}
	return id, nil
}

// ListStudents godoc
// @Summary List students
// @Description Returns every student_id present in the dataset, ascending
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /students [get]
func (h *AnalyticsHandler) ListStudents(c *fiber.Ctx) error {
	resp, err := h.service.ListStudents(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetStudentSummary godoc
// @Summary Student summary
// @Description Overall accuracy, mean response time and per-concept mastery for one student
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.StudentSummaryResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /student_summary/{student_id} [get]
func (h *AnalyticsHandler) GetStudentSummary(c *fiber.Ctx) error {
	id, err := studentID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetStudentSummary(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetWeakTopics godoc
// @Summary Weak topics
// @Description Weak concepts for one student alongside the full per-concept list
// @Tags students
// @Produce json
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.WeakTopicsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /weak_topics/{student_id} [get]
func (h *AnalyticsHandler) GetWeakTopics(c *fiber.Ctx) error {
	id, err := studentID(c)
	if err != nil {
		return err
	}
	resp, err := h.service.GetWeakTopics(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PredictWeakTopics godoc
// @Summary Weak topics (legacy)
// @Description Backward-compatible alias of /weak_topics/{student_id}
// @Tags students
// @Produce json
// @Param student_id query int true "Student ID"
// @Success 200 {object} dto.WeakTopicsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /predict_weak_topics [get]
func (h *AnalyticsHandler) PredictWeakTopics(c *fiber.Ctx) error {
	return h.GetWeakTopics(c)
}

// GetConceptCatalog godoc
// @Summary Concept catalog
// @Description Every concept label in the dataset, sorted
// @Tags concepts
// @Produce json
// @Success 200 {object} dto.ConceptCatalogResponse
// @Router /concepts [get]
func (h *AnalyticsHandler) GetConceptCatalog(c *fiber.Ctx) error {
	resp, err := h.service.GetConceptCatalog(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetCohortWeakTopics godoc
// @Summary Cohort weak-topic report
// @Description Weak topics of every student plus the number of students weak in each concept
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CohortWeakTopicsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /reports/weak_topics [get]
func (h *AnalyticsHandler) GetCohortWeakTopics(c *fiber.Ctx) error {
	resp, err := h.service.GetCohortWeakTopics(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetDatasetInfo godoc
// @Summary Dataset info
// @Description Version, source and counts of the snapshot being served
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.DatasetInfoResponse
// @Router /dataset [get]
func (h *AnalyticsHandler) GetDatasetInfo(c *fiber.Ctx) error {
	resp, err := h.service.GetDatasetInfo(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ReloadDataset godoc
// @Summary Reload dataset
// @Description Reloads attempts from the configured source and swaps the snapshot atomically
// @Tags dataset
// @Produce json
// @Success 200 {object} dto.DatasetInfoResponse
// @Failure 403 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /dataset/reload [post]
func (h *AnalyticsHandler) ReloadDataset(c *fiber.Ctx) error {
	resp, err := h.service.ReloadDataset(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
