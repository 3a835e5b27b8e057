package user

import (
	"context"

	"devagency-be/internal/dto"
	"devagency-be/internal/entity"
	"devagency-be/internal/pkg/apperror"
	"devagency-be/internal/pkg/logger"
	"devagency-be/internal/pkg/serverutils"
	"devagency-be/internal/repository/specification"
	"devagency-be/internal/repository/unitofwork"
	adminEvents "devagency-be/pkg/admin/events"

	"github.com/google/uuid"
)

// Manager handles user-related admin operations. Role changes are reserved
// for full admins; coadmins can list but not mutate roles.
type Manager struct {
	logger    logger.ILogger
	publisher adminEvents.Publisher
}

func NewManager(logger logger.ILogger, publisher adminEvents.Publisher) *Manager {
	return &Manager{
		logger:    logger,
		publisher: publisher,
	}
}

// List returns users for the admin user-management table.
func (m *Manager) List(ctx context.Context, uow unitofwork.UnitOfWork, search string, limit, offset int) ([]*entity.User, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	}
	if search != "" {
		specs = append(specs, specification.UserSearchQuery{Query: search})
	}
	return uow.UserRepository().FindAll(ctx, specs...)
}

// UpdateRole changes a user's role. The actor must hold the manage-users
// capability, which excludes coadmins.
func (m *Manager) UpdateRole(ctx context.Context, uow unitofwork.UnitOfWork, actorRole entity.UserRole, userId uuid.UUID, req dto.AdminUpdateUserRoleRequest) (*entity.User, error) {
	if !serverutils.PermissionsFor(actorRole).CanManageUsers {
		return nil, apperror.Authorization("only admins can change user roles")
	}
	if !entity.ValidRole(req.Role) {
		return nil, apperror.Validation("unknown role %q", req.Role)
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if err := uow.UserRepository().UpdateRole(ctx, userId, entity.UserRole(req.Role)); err != nil {
		return nil, err
	}
	user.Role = entity.UserRole(req.Role)

	m.logger.Info("ADMIN", "User role updated", map[string]interface{}{
		"userId": userId.String(),
		"role":   req.Role,
	})
	m.publisher.PublishUserRoleChanged(ctx, userId, user.Email, req.Role)

	return user, nil
}
