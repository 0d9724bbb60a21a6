package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	achievementModel "atletku_backend/internals/features/assessments/achievements/model"
	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	statsDTO "atletku_backend/internals/features/dashboard/stats/dto"
	statsService "atletku_backend/internals/features/dashboard/stats/service"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

var _ statsService.Repository = (*GormRepository)(nil)

// row internal utk scan join users ⋈ athlete_profiles (text[] perlu pq.StringArray)
type athleteRow struct {
	UserID           uuid.UUID
	UserFullName     string
	UserEmail        string
	AthleteSports    pq.StringArray `gorm:"type:text[]"`
	AthleteState     *string
	AthleteGender    *string
	AthleteBirthDate *time.Time
	AthleteOverallScore      float64
	AthleteEvaluationStatus  string
	AthleteEvaluationRemarks *string
	AthleteIsTestSubmitted   bool
}

func (r *GormRepository) ListAthletes(ctx context.Context) ([]statsDTO.AthleteSummary, error) {
	var rows []athleteRow
	err := r.db.WithContext(ctx).
		Table("athlete_profiles").
		Select(`users.user_id, users.user_full_name, users.user_email,
			athlete_profiles.athlete_sports, athlete_profiles.athlete_state,
			athlete_profiles.athlete_gender, athlete_profiles.athlete_birth_date,
			athlete_profiles.athlete_overall_score, athlete_profiles.athlete_evaluation_status,
			athlete_profiles.athlete_evaluation_remarks, athlete_profiles.athlete_is_test_submitted`).
		Joins("JOIN users ON users.user_id = athlete_profiles.athlete_profile_user_id").
		Where("users.user_is_active = TRUE").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]statsDTO.AthleteSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, statsDTO.AthleteSummary{
			UserID:           row.UserID,
			FullName:         row.UserFullName,
			Email:            row.UserEmail,
			Sports:           row.AthleteSports,
			State:            row.AthleteState,
			Gender:           row.AthleteGender,
			BirthDate:        row.AthleteBirthDate,
			OverallScore:     row.AthleteOverallScore,
			EvaluationStatus: row.AthleteEvaluationStatus,
			IsTestSubmitted:  row.AthleteIsTestSubmitted,
			Remarks:          row.AthleteEvaluationRemarks,
		})
	}
	return out, nil
}

func (r *GormRepository) ListSubmissionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]submissionModel.SubmissionModel, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var subs []submissionModel.SubmissionModel
	err := r.db.WithContext(ctx).
		Where("submission_user_id IN ?", userIDs).
		Order("submission_taken_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *GormRepository) ListAchievementsByUser(ctx context.Context, userID uuid.UUID) ([]achievementModel.AchievementModel, error) {
	var items []achievementModel.AchievementModel
	err := r.db.WithContext(ctx).
		Where("achievement_user_id = ?", userID).
		Order("achievement_earned_at DESC NULLS LAST").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
