package response

import (
	"time"

	"eligibility_hub/internal/domain/entities"
	"eligibility_hub/internal/usecase"
)

type SubscriberResponse struct {
	MemberID         string `json:"member_id"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	RelationshipCode string `json:"relationship_code,omitempty"`
}

type ProviderResponse struct {
	NPI              string `json:"npi"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// SubmissionResponse is the list-row / submit-result shape: lifecycle state
// plus the identifying fields, no benefit detail.
type SubmissionResponse struct {
	ID                string             `json:"id"`
	QueueStatus       string             `json:"queue_status"`
	EligibilityStatus string             `json:"eligibility_status"`
	CreatedAt         time.Time          `json:"created_at"`
	ServiceDate       string             `json:"service_date"`
	Subscriber        SubscriberResponse `json:"subscriber"`
	Provider          ProviderResponse   `json:"provider"`
	PayerName         string             `json:"payer_name,omitempty"`
	ServiceTypes      []string           `json:"service_types,omitempty"`
	HasPendingWork    bool               `json:"has_pending_work"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:                s.ID,
		QueueStatus:       string(s.QueueStatus),
		EligibilityStatus: string(s.EffectiveEligibility()),
		CreatedAt:         s.CreatedAt,
		ServiceDate:       s.ServiceDate,
		Subscriber: SubscriberResponse{
			MemberID:         s.Subscriber.MemberID,
			FirstName:        s.Subscriber.FirstName,
			LastName:         s.Subscriber.LastName,
			DateOfBirth:      s.Subscriber.DateOfBirth,
			RelationshipCode: s.Subscriber.RelationshipCode,
		},
		Provider: ProviderResponse{
			NPI:              s.Provider.NPI,
			OrganizationName: s.Provider.OrganizationName,
		},
		PayerName:      s.PayerName,
		ServiceTypes:   s.ServiceTypes,
		HasPendingWork: s.HasPendingWork(),
	}
}

// SubmissionListResponse is the paginated list envelope, with the pending
// flag the console uses to decide whether to keep polling.
//
// Seq and Stale expose the fetch ordering: a stale response resolved after
// a newer fetch for the same view already landed, so the console must drop
// it instead of rendering its rows.
type SubmissionListResponse struct {
	Items          []SubmissionResponse `json:"items"`
	TotalCount     int                  `json:"total_count"`
	Page           int                  `json:"page"`
	PageSize       int                  `json:"page_size"`
	HasPendingWork bool                 `json:"has_pending_work"`
	Seq            uint64               `json:"seq"`
	Stale          bool                 `json:"stale"`
}

func FromListResult(res usecase.ListResult) SubmissionListResponse {
	items := make([]SubmissionResponse, 0, len(res.Page.Items))
	for _, s := range res.Page.Items {
		items = append(items, FromSubmission(s))
	}
	return SubmissionListResponse{
		Items:          items,
		TotalCount:     res.Page.TotalCount,
		Page:           res.Page.Page,
		PageSize:       res.Page.PageSize,
		HasPendingWork: res.HasPendingWork,
		Seq:            res.Seq,
		Stale:          res.Stale,
	}
}

// NetworkBenefitsResponse is one per-network benefit view: the merged raw
// records plus their display projections, index-aligned.
type NetworkBenefitsResponse struct {
	Benefits  []entities.BenefitRecord  `json:"benefits"`
	LineItems []usecase.DisplayLineItem `json:"line_items"`
}

func buildNetworkView(merged []entities.BenefitRecord) NetworkBenefitsResponse {
	items := make([]usecase.DisplayLineItem, 0, len(merged))
	for _, b := range merged {
		items = append(items, usecase.ProjectBenefit(b))
	}
	return NetworkBenefitsResponse{Benefits: merged, LineItems: items}
}

// SubmissionDetailResponse is the detail shape: the submission summary plus
// the merged in-network and out-of-network benefit views.
type SubmissionDetailResponse struct {
	SubmissionResponse
	InNetwork    NetworkBenefitsResponse `json:"in_network"`
	OutOfNetwork NetworkBenefitsResponse `json:"out_of_network"`
}

func FromSubmissionDetail(s entities.Submission) SubmissionDetailResponse {
	return SubmissionDetailResponse{
		SubmissionResponse: FromSubmission(s),
		InNetwork:          buildNetworkView(usecase.InNetworkView(s.Benefits)),
		OutOfNetwork:       buildNetworkView(usecase.OutOfNetworkView(s.Benefits)),
	}
}

type VerificationRecordResponse struct {
	ID                string    `json:"id"`
	MemberID          string    `json:"member_id"`
	PayerName         string    `json:"payer_name,omitempty"`
	QueueStatus       string    `json:"queue_status"`
	EligibilityStatus string    `json:"eligibility_status"`
	ServiceDate       string    `json:"service_date"`
	CheckedAt         time.Time `json:"checked_at"`
}

type HistoryResponse struct {
	Items []VerificationRecordResponse `json:"items"`
}

func FromVerificationRecord(r entities.VerificationRecord) VerificationRecordResponse {
	return VerificationRecordResponse{
		ID:                r.ID,
		MemberID:          r.MemberID,
		PayerName:         r.PayerName,
		QueueStatus:       string(r.QueueStatus),
		EligibilityStatus: string(r.EligibilityStatus),
		ServiceDate:       r.ServiceDate,
		CheckedAt:         r.CheckedAt,
	}
}

func FromVerificationRecords(records []entities.VerificationRecord) HistoryResponse {
	items := make([]VerificationRecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, FromVerificationRecord(r))
	}
	return HistoryResponse{Items: items}
}
