package contract

import (
	"context"

	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ComplaintRepository interface {
	Create(ctx context.Context, complaint *entity.Complaint) error
	Update(ctx context.Context, complaint *entity.Complaint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	CreateMessage(ctx context.Context, message *entity.ComplaintMessage) error
	FindMessages(ctx context.Context, complaintId uuid.UUID) ([]*entity.ComplaintMessage, error)

	// RequestReopen flips reopen_status none|rejected -> pending on a
	// resolved complaint. Returns false when the complaint is not resolved
	// or a reopen is already pending.
	RequestReopen(ctx context.Context, id, userId uuid.UUID) (bool, error)

	// SettleReopen resolves a pending reopen request. Accepting also moves
	// the complaint back to open. Returns false if no reopen is pending.
	SettleReopen(ctx context.Context, id uuid.UUID, accept bool) (bool, error)
}
