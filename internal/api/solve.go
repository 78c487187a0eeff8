package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/schedcu/solver/internal/entity"
	"github.com/schedcu/solver/internal/repository"
	"github.com/schedcu/solver/internal/service"
	"github.com/schedcu/solver/internal/solver"
)

// SolveHandler handles HTTP requests for submitting and inspecting solves.
type SolveHandler struct {
	svc      service.SolveService
	validate *validator.Validate
}

// NewSolveHandler creates a new solve handler.
func NewSolveHandler(svc service.SolveService) *SolveHandler {
	return &SolveHandler{svc: svc, validate: validator.New()}
}

// PeriodRequest names one scheduling period's bounds.
type PeriodRequest struct {
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required,gtfield=Start"`
}

// SubmitSolveRequest contains the request body for POST /api/solves.
type SubmitSolveRequest struct {
	ScheduleID       string                           `json:"schedule_id" validate:"required"`
	Periods          []PeriodRequest                  `json:"periods" validate:"required,min=1,dive"`
	ConstraintSpecs  map[string]entity.ConstraintSpec `json:"constraint_specs"`
	TimeLimitSeconds int                              `json:"time_limit_seconds" validate:"omitempty,min=1"`
	NumWorkers       int                              `json:"num_workers" validate:"omitempty,min=1"`
	Async            bool                             `json:"async"`
}

func (r SubmitSolveRequest) toServiceRequest() service.SubmitSolveRequest {
	periods := make([]solver.PeriodDates, len(r.Periods))
	for i, p := range r.Periods {
		periods[i] = solver.PeriodDates{Start: p.Start, End: p.End}
	}
	return service.SubmitSolveRequest{
		ScheduleID:       r.ScheduleID,
		PeriodDates:      periods,
		ConstraintSpecs:  r.ConstraintSpecs,
		TimeLimitSeconds: r.TimeLimitSeconds,
		NumWorkers:       r.NumWorkers,
	}
}

// SubmitSolve handles POST /api/solves. With async=true it enqueues the
// solve and returns a job id to poll; otherwise it blocks for the result.
func (h *SolveHandler) SubmitSolve(c echo.Context) error {
	var req SubmitSolveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("INVALID_REQUEST", "invalid request body: "+err.Error()))
	}
	if err := h.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("VALIDATION_FAILED", err.Error()))
	}

	svcReq := req.toServiceRequest()

	if req.Async {
		job, err := h.svc.SubmitSolve(c.Request().Context(), svcReq)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("SUBMIT_FAILED", "failed to submit solve: "+err.Error()))
		}
		return c.JSON(http.StatusAccepted, SuccessResponse(map[string]interface{}{
			"job_id": job.ID,
			"status": job.Status,
		}))
	}

	result, err := h.svc.SolveNow(c.Request().Context(), svcReq)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponseWithCode("SOLVE_FAILED", "solve failed: "+err.Error()))
	}
	return c.JSON(http.StatusOK, SuccessResponse(result))
}

// GetSolveJob handles GET /api/solves/:id
func (h *SolveHandler) GetSolveJob(c echo.Context) error {
	id := c.Param("id")

	job, err := h.svc.GetJob(c.Request().Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, ErrorResponseWithCode("NOT_FOUND", "solve job not found"))
		}
		return c.JSON(http.StatusBadRequest, ErrorResponseWithCode("INVALID_ID", err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse(job))
}

// HealthCheck handles GET /api/health
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}
