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

type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.ProjectRequirement) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, project *entity.ProjectRequirement) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProjectRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProjectRequirement{}).Error
}

func (r *ProjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProjectRequirement, error) {
	var m model.ProjectRequirement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ProjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectRequirement, error) {
	var models []*model.ProjectRequirement
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	projects := make([]*entity.ProjectRequirement, 0, len(models))
	for _, m := range models {
		projects = append(projects, r.mapper.ToEntity(m))
	}
	return projects, nil
}

func (r *ProjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProjectRequirement{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type projectReviewRow struct {
	model.ProjectRequirement
	UserEmail    string
	UserFullName string
}

func (r *ProjectRepositoryImpl) FindAllForReview(ctx context.Context, specs ...specification.Specification) ([]*entity.ProjectRequirementReview, error) {
	var rows []projectReviewRow

	query := r.db.WithContext(ctx).Model(&model.ProjectRequirement{}).
		Select("project_requirements.*, users.email AS user_email, users.full_name AS user_full_name").
		Joins("JOIN users ON users.id = project_requirements.user_id")
	query = r.applySpecifications(query, specs...)

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	reviews := make([]*entity.ProjectRequirementReview, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, &entity.ProjectRequirementReview{
			ProjectRequirement: *r.mapper.ToEntity(&rows[i].ProjectRequirement),
			UserEmail:          rows[i].UserEmail,
			UserFullName:       rows[i].UserFullName,
		})
	}
	return reviews, nil
}

func (r *ProjectRepositoryImpl) CountInProgress(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProjectRequirement{}).
		Where("status <> ?", string(entity.ProjectStatusFinished)).
		Count(&count).Error
	return count, err
}
