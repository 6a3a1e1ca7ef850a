package handlers

import (
	"net/http"
	"strings"

	response "eligibility_hub/internal/adapter/http/dto/response"
	"eligibility_hub/internal/usecase"
	"eligibility_hub/pkg"

	"github.com/gin-gonic/gin"
)

// HistoryHandler serves the completed-verification audit trail.

type HistoryHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewHistoryHandler(uc usecase.ISubmissionUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// ListHistory returns the audit rows for one member.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	memberID := strings.TrimSpace(c.Query("member_id"))
	if memberID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "member_id is required", http.StatusBadRequest).ToHTTPError())
		return
	}

	records, err := h.usecase.History(c.Request.Context(), memberID)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerificationRecords(records))
}

// GetRecord returns one audit row by submission id.
func (h *HistoryHandler) GetRecord(c *gin.Context) {
	id := strings.TrimSpace(c.Param("submission_id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	rec, err := h.usecase.HistoryRecord(c.Request.Context(), id)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVerificationRecord(rec))
}
