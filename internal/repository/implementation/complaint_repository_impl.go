package implementation

import (
	"context"
	"errors"

	"devagency-be/internal/entity"
	"devagency-be/internal/mapper"
	"devagency-be/internal/model"
	"devagency-be/internal/repository/contract"
	"devagency-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ComplaintMapper
}

func NewComplaintRepository(db *gorm.DB) contract.ComplaintRepository {
	return &ComplaintRepositoryImpl{
		db:     db,
		mapper: mapper.NewComplaintMapper(),
	}
}

func (r *ComplaintRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ComplaintRepositoryImpl) Create(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ToModel(complaint)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) Update(ctx context.Context, complaint *entity.Complaint) error {
	m := r.mapper.ToModel(complaint)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*complaint = *r.mapper.ToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Complaint, error) {
	var m model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ComplaintRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Complaint, error) {
	var models []*model.Complaint
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	complaints := make([]*entity.Complaint, 0, len(models))
	for _, m := range models {
		complaints = append(complaints, r.mapper.ToEntity(m))
	}
	return complaints, nil
}

func (r *ComplaintRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Complaint{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ComplaintRepositoryImpl) CreateMessage(ctx context.Context, message *entity.ComplaintMessage) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *ComplaintRepositoryImpl) FindMessages(ctx context.Context, complaintId uuid.UUID) ([]*entity.ComplaintMessage, error) {
	var models []*model.ComplaintMessage
	err := r.db.WithContext(ctx).
		Where("complaint_id = ?", complaintId).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	messages := make([]*entity.ComplaintMessage, 0, len(models))
	for _, m := range models {
		messages = append(messages, r.mapper.MessageToEntity(m))
	}
	return messages, nil
}

func (r *ComplaintRepositoryImpl) RequestReopen(ctx context.Context, id, userId uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ? AND user_id = ? AND status = ? AND reopen_status IN ?",
			id, userId, string(entity.ComplaintStatusResolved),
			[]string{string(entity.ReopenStatusNone), string(entity.ReopenStatusRejected)}).
		Update("reopen_status", string(entity.ReopenStatusPending))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ComplaintRepositoryImpl) SettleReopen(ctx context.Context, id uuid.UUID, accept bool) (bool, error) {
	values := map[string]interface{}{}
	if accept {
		values["reopen_status"] = string(entity.ReopenStatusAccepted)
		values["status"] = string(entity.ComplaintStatusOpen)
	} else {
		values["reopen_status"] = string(entity.ReopenStatusRejected)
	}

	result := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("id = ? AND reopen_status = ?", id, string(entity.ReopenStatusPending)).
		Updates(values)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
