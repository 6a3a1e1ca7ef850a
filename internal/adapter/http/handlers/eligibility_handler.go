package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "eligibility_hub/internal/adapter/http/dto/request"
	response "eligibility_hub/internal/adapter/http/dto/response"
	"eligibility_hub/internal/usecase"
	"eligibility_hub/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEligibilityPayload = pkg.NewDomainErrorSimple("INVALID_ELIGIBILITY_INPUT", "Invalid eligibility payload", http.StatusBadRequest)
)

// listFilterParams are the query parameters forwarded verbatim to the
// clearinghouse list call as filters.
var listFilterParams = []string{
	"service_type",
	"relationship_code",
	"subscriber_id",
	"date_from",
	"date_to",
	"queue_status",
	"status",
}

// EligibilityHandler handles HTTP requests for eligibility submissions.

type EligibilityHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewEligibilityHandler(uc usecase.ISubmissionUseCase) *EligibilityHandler {
	return &EligibilityHandler{usecase: uc}
}

// SubmitInquiry accepts a new 270 eligibility inquiry and returns the
// pending submission created for it.
func (h *EligibilityHandler) SubmitInquiry(c *gin.Context) {
	var payload request.EligibilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEligibilityPayload.HTTPStatus, errInvalidEligibilityPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	sub, err := h.usecase.Submit(c.Request.Context(), sessionID(c), cmd)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubmission(sub))
}

// ListSubmissions returns one normalized page of submissions plus the
// pending-work flag the console uses to drive its poll indicator.
func (h *EligibilityHandler) ListSubmissions(c *gin.Context) {
	q := usecase.ListQuery{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 0),
		Filters:  map[string]string{},
	}
	for _, p := range listFilterParams {
		if v := strings.TrimSpace(c.Query(p)); v != "" {
			q.Filters[p] = v
		}
	}

	res, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListResult(res))
}

// GetSubmission refreshes one submission and returns it with the merged
// per-network benefit views and their display projections.
func (h *EligibilityHandler) GetSubmission(c *gin.Context) {
	id := strings.TrimSpace(c.Param("submission_id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	sub, err := h.usecase.Get(c.Request.Context(), sessionID(c), id)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissionDetail(sub))
}

// RetrySubmission re-enqueues a failed or stuck submission.
func (h *EligibilityHandler) RetrySubmission(c *gin.Context) {
	id := strings.TrimSpace(c.Param("submission_id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	sub, err := h.usecase.Retry(c.Request.Context(), sessionID(c), id)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

// DismissSubmission drops one submission from the session so it stops
// being tracked. Dismissing an id the session never tracked is a no-op.
func (h *EligibilityHandler) DismissSubmission(c *gin.Context) {
	id := strings.TrimSpace(c.Param("submission_id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	if err := h.usecase.Dismiss(c.Request.Context(), sessionID(c), id); err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearSession discards every submission the session was tracking.
func (h *EligibilityHandler) ClearSession(c *gin.Context) {
	if err := h.usecase.ClearSession(c.Request.Context(), sessionID(c)); err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// sessionID resolves the console session owning the request. The console
// sends it as a header; a missing header falls back to a shared session so
// curl-style usage still works.
func sessionID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader("X-Session-ID")); v != "" {
		return v
	}
	return "default"
}

func queryInt(c *gin.Context, name string, fallback int) int {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInquiry), errors.Is(err, usecase.ErrInvalidMemberID), errors.Is(err, usecase.ErrInvalidSubmissionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionCompleted):
		return pkg.NewDomainErrorSimple("SUBMISSION_COMPLETED", "Submission already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrRetryFailed):
		return pkg.NewDomainErrorSimple("RETRY_FAILED", "Retry request failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("CLEARINGHOUSE_UNAVAILABLE", "Clearinghouse unavailable", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrMalformedGatewayBody):
		return pkg.NewDomainErrorSimple("MALFORMED_RESPONSE", "Malformed clearinghouse response", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
