package entities

import "time"

// VerificationRecord is the audit row written once a submission reaches a
// terminal queue status. Unlike the session copy it outlives the console
// session.
//
// Storage model (DynamoDB):
//   - PK: id (submission id)
//   - GSI1 (member_id-index): member_id

type VerificationRecord struct {
	ID                string            `json:"id"`
	MemberID          string            `json:"member_id"`
	PayerName         string            `json:"payer_name"`
	QueueStatus       QueueStatus       `json:"queue_status"`
	EligibilityStatus EligibilityStatus `json:"eligibility_status"`
	ServiceDate       string            `json:"service_date"`
	CheckedAt         time.Time         `json:"checked_at"`
}

// TrackedSubmission pairs a session-store entry with the session that owns
// it, for the poll loop that sweeps every active session.
type TrackedSubmission struct {
	SessionID  string     `json:"session_id"`
	Submission Submission `json:"submission"`
}
