package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	evalService "atletku_backend/internals/features/assessments/evaluation/service"
	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	notifModel "atletku_backend/internals/features/home/notifications/model"
	userModel "atletku_backend/internals/features/users/user/model"
)

// GormRepository — implementasi evaluation.Repository di atas Postgres.
// Di dalam Transaction, row athlete_profiles di-lock (SELECT ... FOR UPDATE)
// supaya recompute read-modify-write tidak saling timpa antar reviewer.
type GormRepository struct {
	db      *gorm.DB
	locking bool
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ evalService.Repository = (*GormRepository)(nil)

func (r *GormRepository) Transaction(ctx context.Context, fn func(evalService.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx, locking: true})
	})
}

func (r *GormRepository) FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.SubmissionModel, error) {
	var sub submissionModel.SubmissionModel
	err := r.db.WithContext(ctx).
		Where("submission_id = ?", id).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *GormRepository) SaveSubmission(ctx context.Context, sub *submissionModel.SubmissionModel) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *GormRepository) ListScoresByUser(ctx context.Context, userID uuid.UUID) ([]float64, error) {
	var scores []float64
	err := r.db.WithContext(ctx).
		Model(&submissionModel.SubmissionModel{}).
		Where("submission_user_id = ? AND submission_score IS NOT NULL", userID).
		Pluck("submission_score", &scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *GormRepository) FindAthleteByUserID(ctx context.Context, userID uuid.UUID) (*userModel.AthleteProfileModel, error) {
	q := r.db.WithContext(ctx)
	if r.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var p userModel.AthleteProfileModel
	err := q.Where("athlete_profile_user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormRepository) SaveAthlete(ctx context.Context, p *userModel.AthleteProfileModel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GormRepository) CreateNotification(ctx context.Context, n *notifModel.NotificationModel) error {
	return r.db.WithContext(ctx).Create(n).Error
}
