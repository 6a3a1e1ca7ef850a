package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eligibility_hub/internal/adapter/http/handlers/mocks"
	"eligibility_hub/internal/domain/entities"
	"eligibility_hub/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEligibilityHandler_SubmitInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	validBody := `{
		"subscriber": {"member_id": "W123456", "first_name": "Jane", "last_name": "Doe"},
		"provider": {"npi": "1234567890"},
		"service_date": "2026-08-01",
		"service_types": ["30"]
	}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		r := gin.New()
		r.POST("/v1/eligibility", h.SubmitInquiry)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank member id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		r := gin.New()
		r.POST("/v1/eligibility", h.SubmitInquiry)

		body := `{"subscriber":{"member_id":"   "},"provider":{"npi":"1234567890"},"service_date":"2026-08-01"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			Submit(gomock.Any(), "console-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, cmd usecase.InquiryCommand) (entities.Submission, error) {
				if cmd.MemberID != "W123456" || cmd.ProviderNPI != "1234567890" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Submission{ID: "sub-1", QueueStatus: entities.QueueStatusPending}, nil
			})

		r := gin.New()
		r.POST("/v1/eligibility", h.SubmitInquiry)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "console-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body %s", w.Code, w.Body.String())
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if out["id"] != "sub-1" || out["queue_status"] != "pending" {
			t.Fatalf("unexpected response: %v", out)
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			Submit(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Submission{}, usecase.ErrGatewayUnavailable)

		r := gin.New()
		r.POST("/v1/eligibility", h.SubmitInquiry)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility", bytes.NewBufferString(validBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestEligibilityHandler_ListSubmissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("filters and pagination forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q usecase.ListQuery) (usecase.ListResult, error) {
				if q.Page != 2 || q.PageSize != 10 {
					t.Fatalf("unexpected pagination: %+v", q)
				}
				if q.Filters["queue_status"] != "pending" || q.Filters["subscriber_id"] != "W123456" {
					t.Fatalf("unexpected filters: %v", q.Filters)
				}
				return usecase.ListResult{
					Page: entities.ListPage{
						Items:      []entities.Submission{{ID: "sub-1", QueueStatus: entities.QueueStatusPending}},
						TotalCount: 20,
						Page:       2,
						PageSize:   10,
					},
					HasPendingWork: true,
				}, nil
			})

		r := gin.New()
		r.GET("/v1/eligibility", h.ListSubmissions)

		req := httptest.NewRequest(http.MethodGet, "/v1/eligibility?page=2&page_size=10&queue_status=pending&subscriber_id=W123456", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body %s", w.Code, w.Body.String())
		}
		var out map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if out["total_count"] != float64(20) || out["has_pending_work"] != true {
			t.Fatalf("unexpected response: %v", out)
		}
	})

	t.Run("list failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(usecase.ListResult{}, usecase.ErrGatewayUnavailable)

		r := gin.New()
		r.GET("/v1/eligibility", h.ListSubmissions)

		req := httptest.NewRequest(http.MethodGet, "/v1/eligibility", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestEligibilityHandler_GetSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("found with benefit views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		sub := entities.Submission{
			ID:                "sub-1",
			QueueStatus:       entities.QueueStatusCompleted,
			EligibilityStatus: entities.EligibilityStatusEligible,
			Benefits: entities.BenefitBuckets{
				BothNetworks: []entities.BenefitRecord{
					{BenefitType: "Office Visit", ServiceTypeCode: "98", CoverageLevelCode: "EMP", CopayValue: "$20", Network: entities.NetworkBoth},
				},
			},
		}
		uc.EXPECT().Get(gomock.Any(), "default", "sub-1").Return(sub, nil)

		r := gin.New()
		r.GET("/v1/eligibility/:submission_id", h.GetSubmission)

		req := httptest.NewRequest(http.MethodGet, "/v1/eligibility/sub-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var out struct {
			ID        string `json:"id"`
			InNetwork struct {
				LineItems []struct {
					Title string `json:"title"`
					Value string `json:"value"`
				} `json:"line_items"`
			} `json:"in_network"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if out.ID != "sub-1" {
			t.Fatalf("unexpected id: %q", out.ID)
		}
		if len(out.InNetwork.LineItems) != 1 || out.InNetwork.LineItems[0].Value != "$20" {
			t.Fatalf("unexpected line items: %+v", out.InNetwork.LineItems)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().Get(gomock.Any(), "default", "missing").Return(entities.Submission{}, usecase.ErrSubmissionNotFound)

		r := gin.New()
		r.GET("/v1/eligibility/:submission_id", h.GetSubmission)

		req := httptest.NewRequest(http.MethodGet, "/v1/eligibility/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestEligibilityHandler_RetrySubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			Retry(gomock.Any(), "default", "sub-1").
			Return(entities.Submission{ID: "sub-1", QueueStatus: entities.QueueStatusPending}, nil)

		r := gin.New()
		r.POST("/v1/eligibility/:submission_id/retry", h.RetrySubmission)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility/sub-1/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			Retry(gomock.Any(), "default", "sub-1").
			Return(entities.Submission{}, usecase.ErrSubmissionCompleted)

		r := gin.New()
		r.POST("/v1/eligibility/:submission_id/retry", h.RetrySubmission)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility/sub-1/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("retry request failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().
			Retry(gomock.Any(), "default", "sub-1").
			Return(entities.Submission{}, usecase.ErrRetryFailed)

		r := gin.New()
		r.POST("/v1/eligibility/:submission_id/retry", h.RetrySubmission)

		req := httptest.NewRequest(http.MethodPost, "/v1/eligibility/sub-1/retry", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestEligibilityHandler_DismissSubmission(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("dismissed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().Dismiss(gomock.Any(), "console-1", "sub-1").Return(nil)

		r := gin.New()
		r.DELETE("/v1/eligibility/:submission_id", h.DismissSubmission)

		req := httptest.NewRequest(http.MethodDelete, "/v1/eligibility/sub-1", nil)
		req.Header.Set("X-Session-ID", "console-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewEligibilityHandler(uc)

		uc.EXPECT().Dismiss(gomock.Any(), "default", "sub-1").Return(errors.New("redis down"))

		r := gin.New()
		r.DELETE("/v1/eligibility/:submission_id", h.DismissSubmission)

		req := httptest.NewRequest(http.MethodDelete, "/v1/eligibility/sub-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestEligibilityHandler_ClearSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISubmissionUseCase(ctrl)
	h := NewEligibilityHandler(uc)

	uc.EXPECT().ClearSession(gomock.Any(), "console-1").Return(nil)

	r := gin.New()
	r.DELETE("/v1/eligibility", h.ClearSession)

	req := httptest.NewRequest(http.MethodDelete, "/v1/eligibility", nil)
	req.Header.Set("X-Session-ID", "console-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestMapSubmissionError_Unknown(t *testing.T) {
	appErr := mapSubmissionError(errors.New("boom"))
	if appErr.HTTPStatus != http.StatusInternalServerError || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("unexpected mapping: %+v", appErr)
	}
}
