package interfaces

import (
	"context"
	"eligibility_hub/internal/domain/entities"
)

// IVerificationHistoryRepository abstracts DynamoDB persistence for the
// verification audit trail.
//
// The service must be able to:
//   - append a record when a submission reaches a terminal status
//   - fetch a record by submission id
//   - list records for one subscriber (member id)

type IVerificationHistoryRepository interface {
	Append(ctx context.Context, r entities.VerificationRecord) (entities.VerificationRecord, error)
	GetByID(ctx context.Context, id string) (entities.VerificationRecord, error)
	ListByMemberID(ctx context.Context, memberID string) ([]entities.VerificationRecord, error)
}
