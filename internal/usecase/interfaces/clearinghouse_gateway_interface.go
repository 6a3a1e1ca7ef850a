package interfaces

import (
	"context"
	"encoding/json"
)

// IClearinghouseGateway abstracts the external eligibility clearinghouse
// that runs the 270/271 exchange out-of-band.
//
// The gateway is a thin transport: it returns the raw JSON bodies as sent by
// the clearinghouse, and the use case layer normalizes the varying envelope
// and record shapes. Responses therefore stay auditable end to end.
type IClearinghouseGateway interface {
	// SubmitInquiry creates a new eligibility submission and returns the raw
	// created-submission body (queue status pending).
	SubmitInquiry(ctx context.Context, requestPayload json.RawMessage) (json.RawMessage, error)

	// GetSubmission returns the raw detail body, including the three benefit
	// buckets and the EDI-derived request/response blobs.
	GetSubmission(ctx context.Context, submissionID string) (json.RawMessage, error)

	// ListSubmissions returns the raw list body in whatever envelope shape
	// the endpoint uses.
	ListSubmissions(ctx context.Context, page, pageSize int, filters map[string]string) (json.RawMessage, error)

	// RetrySubmission re-queues a failed/stuck submission. The response body
	// carries at most an informational message.
	RetrySubmission(ctx context.Context, submissionID string) (json.RawMessage, error)
}
