package dto

import (
	"time"

	"github.com/google/uuid"

	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
)

/* =======================================================
   RESPONSE DTOs (dashboard reviewer)
   ======================================================= */

// AthleteSummary — gabungan ringkas users + athlete_profiles untuk listing admin
type AthleteSummary struct {
	UserID           uuid.UUID  `json:"user_id"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email"`
	Sports           []string   `json:"sports"`
	State            *string    `json:"state,omitempty"`
	Gender           *string    `json:"gender,omitempty"`
	BirthDate        *time.Time `json:"birth_date,omitempty"`
	OverallScore     float64    `json:"overall_score"`
	EvaluationStatus string     `json:"evaluation_status"`
	IsTestSubmitted  bool       `json:"is_test_submitted"`
	Remarks          *string    `json:"remarks,omitempty"`
}

type LeaderboardEntry struct {
	UserID       uuid.UUID `json:"user_id"`
	FullName     string    `json:"full_name"`
	Sports       []string  `json:"sports"`
	OverallScore float64   `json:"overall_score"`
}

type StateCount struct {
	State string `json:"state"`
	Count int    `json:"count"`
}

type BucketAverage struct {
	Bucket  string  `json:"bucket"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type DashboardStats struct {
	TotalAthletes    int `json:"total_athletes"`
	PendingAthletes  int `json:"pending_athletes"`
	ApprovedAthletes int `json:"approved_athletes"`
	RejectedAthletes int `json:"rejected_athletes"`

	Leaderboard       []LeaderboardEntry `json:"leaderboard"`
	StateDistribution []StateCount       `json:"state_distribution"`

	FlaggedCount  int                              `json:"flagged_count"`
	LatestFlagged *submissionModel.SubmissionModel `json:"latest_flagged,omitempty"`

	JumpByAgeBucket    []BucketAverage `json:"jump_by_age_bucket"`
	SitupByGender      []BucketAverage `json:"situp_by_gender"`
	EnduranceByQuarter []BucketAverage `json:"endurance_by_quarter"`
}

// PendingSubmission — submission pending + ringkasan atletnya (join utk antrian review)
type PendingSubmission struct {
	Submission submissionModel.SubmissionModel `json:"submission"`
	Athlete    AthleteSummary                  `json:"athlete"`
}
