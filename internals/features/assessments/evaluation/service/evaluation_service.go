// internals/features/assessments/evaluation/service/evaluation_service.go
//
// Evaluation engine: aturan bagaimana hasil tes individual menjadi profil
// atlet terverifikasi. Semua mutasi overall_score / evaluation_status /
// is_test_submitted lewat sini.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	notifModel "atletku_backend/internals/features/home/notifications/model"
	userModel "atletku_backend/internals/features/users/user/model"
	helper "atletku_backend/internals/helpers"
)

var (
	ErrSubmissionNotFound = errors.New("submission tidak ditemukan")
	ErrAthleteNotFound    = errors.New("profil atlet tidak ditemukan")
	ErrForbiddenScope     = errors.New("atlet di luar scope cabang olahraga reviewer")
	ErrInvalidStatus      = errors.New("status evaluasi tidak valid")
	ErrScoreOutOfRange    = errors.New("skor di luar rentang 0-25")
)

const (
	// Batas auto-approval: rata-rata HARUS > threshold (strict)
	AutoApprovalThreshold = 17.0
	// Rentang skor penilaian video
	MinSubmissionScore = 0.0
	MaxSubmissionScore = 25.0
)

// Repository — akses data yang dibutuhkan engine. Implementasi GORM di
// package repository; test memakai double in-memory.
type Repository interface {
	// Transaction menjalankan fn secara serial per-atlet (row lock di impl GORM)
	Transaction(ctx context.Context, fn func(Repository) error) error

	FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.SubmissionModel, error)
	SaveSubmission(ctx context.Context, sub *submissionModel.SubmissionModel) error
	// ListScoresByUser hanya mengembalikan skor non-null
	ListScoresByUser(ctx context.Context, userID uuid.UUID) ([]float64, error)

	FindAthleteByUserID(ctx context.Context, userID uuid.UUID) (*userModel.AthleteProfileModel, error)
	SaveAthlete(ctx context.Context, p *userModel.AthleteProfileModel) error

	CreateNotification(ctx context.Context, n *notifModel.NotificationModel) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type EvaluateSubmissionInput struct {
	SubmissionID uuid.UUID
	Status       *string  // pending|approved|rejected (jalur tanpa skor)
	Score        *float64 // jika ada → status dipaksa "scored"
}

// EvaluateSubmission menilai satu submission lalu (bila ada skor) menghitung
// ulang indeks agregat atlet dan mengecek aturan auto-approval.
func (s *Service) EvaluateSubmission(ctx context.Context, reviewerScope []string, in EvaluateSubmissionInput) (*submissionModel.SubmissionModel, error) {
	if in.Score != nil {
		v := *in.Score
		if math.IsNaN(v) || math.IsInf(v, 0) || v < MinSubmissionScore || v > MaxSubmissionScore {
			return nil, ErrScoreOutOfRange
		}
	}
	if in.Status != nil {
		switch *in.Status {
		case submissionModel.SubmissionStatusPending,
			submissionModel.SubmissionStatusApproved,
			submissionModel.SubmissionStatusRejected:
		default:
			return nil, ErrInvalidStatus
		}
	}

	var out *submissionModel.SubmissionModel
	err := s.repo.Transaction(ctx, func(r Repository) error {
		sub, err := r.FindSubmission(ctx, in.SubmissionID)
		if err != nil {
			return err
		}
		if sub == nil {
			return ErrSubmissionNotFound
		}

		athlete, err := r.FindAthleteByUserID(ctx, sub.SubmissionUserID)
		if err != nil {
			return err
		}
		if athlete == nil {
			return ErrAthleteNotFound
		}
		if !helper.SportsScopeAllows(reviewerScope, athlete.AthleteSports) {
			return ErrForbiddenScope
		}

		if in.Status != nil {
			sub.SubmissionStatus = *in.Status
		}
		if in.Score != nil {
			score := *in.Score
			sub.SubmissionScore = &score
			// jalur skor: status terminal "scored"
			sub.SubmissionStatus = submissionModel.SubmissionStatusScored
		}
		if err := r.SaveSubmission(ctx, sub); err != nil {
			return err
		}

		// Rata-rata hanya dari submission yang punya skor; null tidak dihitung nol
		if sub.SubmissionScore != nil {
			if err := s.recomputeOverallScore(ctx, r, athlete); err != nil {
				return err
			}
		}

		out = sub
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// recomputeOverallScore dipanggil di dalam transaksi (row atlet ter-lock)
func (s *Service) recomputeOverallScore(ctx context.Context, r Repository, athlete *userModel.AthleteProfileModel) error {
	scores, err := r.ListScoresByUser(ctx, athlete.AthleteProfileUserID)
	if err != nil {
		return err
	}
	if len(scores) == 0 {
		return nil
	}

	var sum float64
	for _, v := range scores {
		sum += v
	}
	mean := sum / float64(len(scores))
	athlete.AthleteOverallScore = mean

	// Auto-approval: strict > threshold, dan approved adalah sink (tidak re-trigger)
	autoApproved := false
	if mean > AutoApprovalThreshold && athlete.AthleteEvaluationStatus != userModel.EvaluationStatusApproved {
		athlete.AthleteEvaluationStatus = userModel.EvaluationStatusApproved
		autoApproved = true
	}

	if err := r.SaveAthlete(ctx, athlete); err != nil {
		return err
	}

	if autoApproved {
		return r.CreateNotification(ctx, &notifModel.NotificationModel{
			NotificationUserID:  athlete.AthleteProfileUserID,
			NotificationTitle:   "Selamat! Profil kamu disetujui otomatis",
			NotificationMessage: fmt.Sprintf("Indeks performa kamu mencapai %.2f dan melewati ambang seleksi. Profil kamu disetujui otomatis dan masuk daftar seleksi trial.", mean),
			NotificationType:    notifModel.NotificationTypeStatusUpdate,
			NotificationTags:    []string{"auto_approval", "trial_selection"},
		})
	}
	return nil
}

type EvaluateAthleteInput struct {
	AthleteUserID uuid.UUID
	Status        string // approved|rejected
	Remarks       *string
}

// EvaluateAthlete menerapkan keputusan reviewer pada profil atlet.
// Dipanggil berulang dengan status sama → state akhir sama, tapi notifikasi
// tetap ditulis tiap panggilan (sengaja tanpa dedup).
func (s *Service) EvaluateAthlete(ctx context.Context, reviewerScope []string, in EvaluateAthleteInput) (*userModel.AthleteProfileModel, error) {
	if in.Status != userModel.EvaluationStatusApproved && in.Status != userModel.EvaluationStatusRejected {
		return nil, ErrInvalidStatus
	}

	var out *userModel.AthleteProfileModel
	err := s.repo.Transaction(ctx, func(r Repository) error {
		athlete, err := r.FindAthleteByUserID(ctx, in.AthleteUserID)
		if err != nil {
			return err
		}
		if athlete == nil {
			return ErrAthleteNotFound
		}
		if !helper.SportsScopeAllows(reviewerScope, athlete.AthleteSports) {
			return ErrForbiddenScope
		}

		athlete.AthleteEvaluationStatus = in.Status
		if in.Remarks != nil {
			athlete.AthleteEvaluationRemarks = in.Remarks
		}
		if in.Status == userModel.EvaluationStatusRejected {
			// rejection membuka kembali alur tes
			athlete.AthleteIsTestSubmitted = false
		}
		if err := r.SaveAthlete(ctx, athlete); err != nil {
			return err
		}

		if err := r.CreateNotification(ctx, s.decisionNotification(athlete, in.Status)); err != nil {
			return err
		}

		out = athlete
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) decisionNotification(athlete *userModel.AthleteProfileModel, status string) *notifModel.NotificationModel {
	n := &notifModel.NotificationModel{
		NotificationUserID: athlete.AthleteProfileUserID,
		NotificationType:   notifModel.NotificationTypeStatusUpdate,
	}
	if status == userModel.EvaluationStatusApproved {
		n.NotificationTitle = "Profil kamu disetujui"
		n.NotificationMessage = "Selamat! Reviewer telah menyetujui profil kamu. Pantau pengumuman seleksi berikutnya."
		n.NotificationTags = []string{"approved"}
	} else {
		n.NotificationTitle = "Profil kamu ditolak"
		n.NotificationMessage = "Mohon maaf, profil kamu belum lolos verifikasi. Kamu bisa memperbaiki data dan mengikuti tes ulang."
		if athlete.AthleteEvaluationRemarks != nil && *athlete.AthleteEvaluationRemarks != "" {
			n.NotificationMessage += " Catatan reviewer: " + *athlete.AthleteEvaluationRemarks
		}
		n.NotificationTags = []string{"rejected", "retest_open"}
	}
	return n
}
