package contract

import (
	"context"

	"devagency-be/internal/entity"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.ProjectRequirement) error
	Update(ctx context.Context, project *entity.ProjectRequirement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectRequirement, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectRequirement, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindAllForReview joins the owner for the admin tracker table.
	FindAllForReview(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectRequirementReview, error)

	CountInProgress(ctx context.Context) (int64, error)
}
