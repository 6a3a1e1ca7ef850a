package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// QueueStatus represents the processing state of an eligibility submission
// as tracked by the upstream asynchronous worker.
//
// Domain notes:
//   - The clearinghouse is the source of truth for queue state; a refresh
//     replaces the whole record, so any status it reports is accepted as-is.
//   - pending/processing are non-terminal; polling keeps running while any
//     tracked submission is in one of them.

type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "pending"
	QueueStatusProcessing QueueStatus = "processing"
	QueueStatusCompleted  QueueStatus = "completed"
	QueueStatusFailed     QueueStatus = "failed"
)

// Terminal reports whether the upstream worker is done with the submission.
func (s QueueStatus) Terminal() bool {
	return s == QueueStatusCompleted || s == QueueStatusFailed
}

// EligibilityStatus is the verification outcome, distinct from QueueStatus.
// It is meaningful only once the queue status is terminal.

type EligibilityStatus string

const (
	EligibilityStatusEligible    EligibilityStatus = "eligible"
	EligibilityStatusNotEligible EligibilityStatus = "not_eligible"
	EligibilityStatusUnknown     EligibilityStatus = "unknown"
)

// SubscriberRef identifies the patient/subscriber the inquiry was made for.
type SubscriberRef struct {
	MemberID         string `json:"member_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	RelationshipCode string `json:"relationship_code,omitempty"`
}

// ProviderRef identifies the requesting provider.
type ProviderRef struct {
	NPI              string `json:"npi"`
	OrganizationName string `json:"organization_name,omitempty"`
}

// BenefitBuckets groups raw benefit records by network applicability exactly
// as returned by the clearinghouse. Merging into effective per-network views
// happens later and never mutates the buckets.
type BenefitBuckets struct {
	InNetwork    []BenefitRecord `json:"in_network"`
	OutOfNetwork []BenefitRecord `json:"out_of_network"`
	BothNetworks []BenefitRecord `json:"both_networks"`
}

// Submission is one eligibility inquiry (a 270/271 exchange) tracked for the
// duration of a console session.
//
// Storage model:
//   - Session copy lives in Redis under the owning session id with a TTL.
//   - Completed verifications are additionally appended to the DynamoDB
//     history table for audit.
//
// Raw payloads:
//   - RawRequest/RawResponse keep the EDI-derived JSON blobs (270 request,
//     271 response) for traceability. RawResponse stays nil until terminal.

type Submission struct {
	ID                string            `json:"id"`
	QueueStatus       QueueStatus       `json:"queue_status"`
	EligibilityStatus EligibilityStatus `json:"eligibility_status"`
	CreatedAt         time.Time         `json:"created_at"`
	ServiceDate       string            `json:"service_date"`
	Subscriber        SubscriberRef     `json:"subscriber"`
	Provider          ProviderRef       `json:"provider"`
	PayerName         string            `json:"payer_name,omitempty"`
	ServiceTypes      []string          `json:"service_types,omitempty"`
	Benefits          BenefitBuckets    `json:"benefits"`
	RawRequest        json.RawMessage   `json:"raw_request,omitempty"`
	RawResponse       json.RawMessage   `json:"raw_response,omitempty"`
}

// EffectiveEligibility enforces the invariant that eligibility is unknown
// while the submission is still in flight, whatever the upstream sent.
func (s Submission) EffectiveEligibility() EligibilityStatus {
	if !s.QueueStatus.Terminal() {
		return EligibilityStatusUnknown
	}
	if s.EligibilityStatus == "" {
		return EligibilityStatusUnknown
	}
	return s.EligibilityStatus
}

// HasPendingWork reports whether either status still names an in-flight
// state. Matching is case-insensitive and accepts the "in_process" spelling
// some clearinghouses use.
func (s Submission) HasPendingWork() bool {
	for _, v := range []string{string(s.QueueStatus), string(s.EligibilityStatus)} {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "pending", "processing", "in_process":
			return true
		}
	}
	return false
}
