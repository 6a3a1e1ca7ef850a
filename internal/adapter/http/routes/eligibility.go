package routes

import (
	"eligibility_hub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEligibility = "/eligibility"
	PathHistory     = "/history"
)

func addEligibilityRoutes(rg *gin.RouterGroup, eligibilityHandler *handlers.EligibilityHandler, historyHandler *handlers.HistoryHandler) {
	eligibility := rg.Group(PathEligibility)
	{
		eligibility.POST("", eligibilityHandler.SubmitInquiry)
		eligibility.GET("", eligibilityHandler.ListSubmissions)
		eligibility.DELETE("", eligibilityHandler.ClearSession)
		eligibility.GET("/:submission_id", eligibilityHandler.GetSubmission)
		eligibility.DELETE("/:submission_id", eligibilityHandler.DismissSubmission)
		eligibility.POST("/:submission_id/retry", eligibilityHandler.RetrySubmission)
	}

	rg.GET(PathHistory, historyHandler.ListHistory)
	rg.GET(PathHistory+"/:submission_id", historyHandler.GetRecord)
}
