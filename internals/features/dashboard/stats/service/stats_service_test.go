package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/smartystreets/goconvey/convey"

	achievementModel "atletku_backend/internals/features/assessments/achievements/model"
	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	statsDTO "atletku_backend/internals/features/dashboard/stats/dto"
	userModel "atletku_backend/internals/features/users/user/model"
)

type memStatsRepo struct {
	athletes     []statsDTO.AthleteSummary
	submissions  []submissionModel.SubmissionModel
	achievements map[uuid.UUID][]achievementModel.AchievementModel
}

func (m *memStatsRepo) ListAthletes(ctx context.Context) ([]statsDTO.AthleteSummary, error) {
	out := make([]statsDTO.AthleteSummary, len(m.athletes))
	copy(out, m.athletes)
	return out, nil
}

func (m *memStatsRepo) ListSubmissionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]submissionModel.SubmissionModel, error) {
	allow := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, id := range userIDs {
		allow[id] = struct{}{}
	}
	var out []submissionModel.SubmissionModel
	for _, sub := range m.submissions {
		if _, ok := allow[sub.SubmissionUserID]; ok {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (m *memStatsRepo) ListAchievementsByUser(ctx context.Context, userID uuid.UUID) ([]achievementModel.AchievementModel, error) {
	return m.achievements[userID], nil
}

func summary(name, status string, score float64, sports []string, state string) statsDTO.AthleteSummary {
	a := statsDTO.AthleteSummary{
		UserID:           uuid.New(),
		FullName:         name,
		EvaluationStatus: status,
		OverallScore:     score,
		Sports:           sports,
	}
	if state != "" {
		a.State = &state
	}
	return a
}

func scored(userID uuid.UUID, category string, score float64, takenAt time.Time) submissionModel.SubmissionModel {
	return submissionModel.SubmissionModel{
		SubmissionID:       uuid.New(),
		SubmissionUserID:   userID,
		SubmissionCategory: category,
		SubmissionScore:    &score,
		SubmissionStatus:   submissionModel.SubmissionStatusScored,
		SubmissionTakenAt:  takenAt,
	}
}

func TestComputeDashboard(t *testing.T) {
	ctx := context.Background()

	// seam waktu: tahun berjalan tetap supaya age bucket deterministik
	origNow := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = origNow }()

	convey.Convey("Given tiga atlet beda cabang, status, dan negara bagian", t, func() {
		a1 := summary("Andi", userModel.EvaluationStatusApproved, 20, []string{"athletics"}, "Jawa Barat")
		a2 := summary("Budi", "", 15, []string{"badminton"}, "jawa barat  ")
		a3 := summary("Citra", userModel.EvaluationStatusRejected, 10, []string{"athletics"}, "")

		birth2010 := time.Date(2010, 3, 1, 0, 0, 0, 0, time.UTC)
		a1.BirthDate = &birth2010 // umur 15 → bucket 15-17
		male := "Male"
		a2.Gender = &male

		repo := &memStatsRepo{
			athletes: []statsDTO.AthleteSummary{a1, a2, a3},
			submissions: []submissionModel.SubmissionModel{
				scored(a1.UserID, submissionModel.CategoryJump, 20, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
				scored(a1.UserID, submissionModel.CategoryJump, 10, time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)),
				scored(a2.UserID, submissionModel.CategorySitup, 18, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)),
				scored(a2.UserID, submissionModel.CategoryEndurance, 12, time.Date(2025, 8, 9, 0, 0, 0, 0, time.UTC)),
				// pending → tidak masuk chart
				{
					SubmissionID:       uuid.New(),
					SubmissionUserID:   a3.UserID,
					SubmissionCategory: submissionModel.CategoryJump,
					SubmissionStatus:   submissionModel.SubmissionStatusPending,
					SubmissionTakenAt:  time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
				},
				// rejected → flagged
				{
					SubmissionID:        uuid.New(),
					SubmissionUserID:    a3.UserID,
					SubmissionCategory:  submissionModel.CategorySprint,
					SubmissionStatus:    submissionModel.SubmissionStatusRejected,
					SubmissionTakenAt:   time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
					SubmissionUpdatedAt: time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
				},
			},
		}
		svc := NewService(repo)

		convey.Convey("When dashboard dihitung tanpa scope", func() {
			stats, err := svc.ComputeDashboard(ctx, nil)
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then hitungan status benar (kosong = pending)", func() {
				convey.So(stats.TotalAthletes, convey.ShouldEqual, 3)
				convey.So(stats.ApprovedAthletes, convey.ShouldEqual, 1)
				convey.So(stats.PendingAthletes, convey.ShouldEqual, 1)
				convey.So(stats.RejectedAthletes, convey.ShouldEqual, 1)
			})

			convey.Convey("Then leaderboard urut skor turun", func() {
				convey.So(len(stats.Leaderboard), convey.ShouldEqual, 3)
				convey.So(stats.Leaderboard[0].FullName, convey.ShouldEqual, "Andi")
				convey.So(stats.Leaderboard[2].FullName, convey.ShouldEqual, "Citra")
			})

			convey.Convey("Then distribusi negara bagian dinormalisasi lowercase/trim", func() {
				convey.So(stats.StateDistribution[0].State, convey.ShouldEqual, "jawa barat")
				convey.So(stats.StateDistribution[0].Count, convey.ShouldEqual, 2)
				convey.So(stats.StateDistribution[1].State, convey.ShouldEqual, "unknown")
			})

			convey.Convey("Then flagged count dan latest flagged terisi", func() {
				convey.So(stats.FlaggedCount, convey.ShouldEqual, 1)
				convey.So(stats.LatestFlagged, convey.ShouldNotBeNil)
				convey.So(stats.LatestFlagged.SubmissionCategory, convey.ShouldEqual, submissionModel.CategorySprint)
			})

			convey.Convey("Then chart jump per age bucket hanya dari submission ter-ratifikasi", func() {
				convey.So(len(stats.JumpByAgeBucket), convey.ShouldEqual, 1)
				convey.So(stats.JumpByAgeBucket[0].Bucket, convey.ShouldEqual, "15-17")
				convey.So(stats.JumpByAgeBucket[0].Average, convey.ShouldAlmostEqual, 15.0, 1e-9)
				convey.So(stats.JumpByAgeBucket[0].Count, convey.ShouldEqual, 2)
			})

			convey.Convey("Then chart situp per gender memakai bucket lowercase", func() {
				convey.So(len(stats.SitupByGender), convey.ShouldEqual, 1)
				convey.So(stats.SitupByGender[0].Bucket, convey.ShouldEqual, "male")
				convey.So(stats.SitupByGender[0].Average, convey.ShouldAlmostEqual, 18.0, 1e-9)
			})

			convey.Convey("Then chart endurance per kuartal", func() {
				convey.So(len(stats.EnduranceByQuarter), convey.ShouldEqual, 1)
				convey.So(stats.EnduranceByQuarter[0].Bucket, convey.ShouldEqual, "Q3")
			})
		})

		convey.Convey("When dashboard dihitung dengan scope athletics", func() {
			stats, err := svc.ComputeDashboard(ctx, []string{"athletics"})
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then hanya atlet athletics yang dihitung", func() {
				convey.So(stats.TotalAthletes, convey.ShouldEqual, 2)
				convey.So(stats.ApprovedAthletes, convey.ShouldEqual, 1)
				convey.So(stats.RejectedAthletes, convey.ShouldEqual, 1)
				convey.So(stats.PendingAthletes, convey.ShouldEqual, 0)
				convey.So(len(stats.SitupByGender), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestListAthletes(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given campuran status atlet", t, func() {
		repo := &memStatsRepo{athletes: []statsDTO.AthleteSummary{
			summary("Andi", userModel.EvaluationStatusApproved, 20, nil, ""),
			summary("Budi", "", 12, nil, ""),
			summary("Citra", userModel.EvaluationStatusPending, 18, nil, ""),
		}}
		svc := NewService(repo)

		convey.Convey("When difilter status=pending", func() {
			out, err := svc.ListAthletes(ctx, nil, "pending")

			convey.Convey("Then status kosong ikut terhitung pending dan urut skor turun", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(out), convey.ShouldEqual, 2)
				convey.So(out[0].FullName, convey.ShouldEqual, "Citra")
				convey.So(out[1].FullName, convey.ShouldEqual, "Budi")
			})
		})

		convey.Convey("When tanpa filter", func() {
			out, err := svc.ListAthletes(ctx, nil, "")
			convey.So(err, convey.ShouldBeNil)
			convey.So(len(out), convey.ShouldEqual, 3)
			convey.So(out[0].FullName, convey.ShouldEqual, "Andi")
		})
	})

	convey.Convey("Given atlet lebih banyak dari batas listing", t, func() {
		repo := &memStatsRepo{}
		for i := 0; i < maxAthleteList+20; i++ {
			repo.athletes = append(repo.athletes, summary("Atlet", "", float64(i), nil, ""))
		}
		svc := NewService(repo)

		out, err := svc.ListAthletes(ctx, nil, "")
		convey.So(err, convey.ShouldBeNil)
		convey.So(len(out), convey.ShouldEqual, maxAthleteList)
		convey.So(out[0].OverallScore, convey.ShouldEqual, float64(maxAthleteList+19))
	})
}

func TestListPendingSubmissions(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given submission pending dari atlet in-scope dan out-of-scope", t, func() {
		inScope := summary("Andi", "", 0, []string{"athletics"}, "")
		outScope := summary("Budi", "", 0, []string{"swimming"}, "")
		older := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		repo := &memStatsRepo{
			athletes: []statsDTO.AthleteSummary{inScope, outScope},
			submissions: []submissionModel.SubmissionModel{
				{SubmissionID: uuid.New(), SubmissionUserID: inScope.UserID, SubmissionStatus: submissionModel.SubmissionStatusPending, SubmissionTakenAt: older},
				{SubmissionID: uuid.New(), SubmissionUserID: inScope.UserID, SubmissionStatus: submissionModel.SubmissionStatusPending, SubmissionTakenAt: newer},
				{SubmissionID: uuid.New(), SubmissionUserID: inScope.UserID, SubmissionStatus: submissionModel.SubmissionStatusScored, SubmissionTakenAt: newer},
				{SubmissionID: uuid.New(), SubmissionUserID: outScope.UserID, SubmissionStatus: submissionModel.SubmissionStatusPending, SubmissionTakenAt: newer},
			},
		}
		svc := NewService(repo)

		convey.Convey("When reviewer athletics mengambil antrian", func() {
			out, err := svc.ListPendingSubmissions(ctx, []string{"athletics"})

			convey.Convey("Then hanya pending in-scope, terbaru dulu, dengan data atlet", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(out), convey.ShouldEqual, 2)
				convey.So(out[0].Submission.SubmissionTakenAt, convey.ShouldEqual, newer)
				convey.So(out[0].Athlete.FullName, convey.ShouldEqual, "Andi")
			})
		})
	})
}

func TestGetAthleteDetail(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given satu atlet dengan submission dan prestasi", t, func() {
		a := summary("Andi", "", 10, []string{"athletics"}, "")
		repo := &memStatsRepo{
			athletes: []statsDTO.AthleteSummary{a},
			submissions: []submissionModel.SubmissionModel{
				{SubmissionID: uuid.New(), SubmissionUserID: a.UserID, SubmissionStatus: submissionModel.SubmissionStatusPending},
			},
			achievements: map[uuid.UUID][]achievementModel.AchievementModel{
				a.UserID: {{AchievementID: uuid.New(), AchievementUserID: a.UserID, AchievementTitle: "Juara 1 Provinsi"}},
			},
		}
		svc := NewService(repo)

		convey.Convey("When diambil oleh reviewer in-scope", func() {
			detail, err := svc.GetAthleteDetail(ctx, []string{"athletics"}, a.UserID)
			convey.So(err, convey.ShouldBeNil)
			convey.So(detail.Athlete.FullName, convey.ShouldEqual, "Andi")
			convey.So(len(detail.Submissions), convey.ShouldEqual, 1)
			convey.So(len(detail.Achievements), convey.ShouldEqual, 1)
		})

		convey.Convey("When diambil oleh reviewer out-of-scope", func() {
			_, err := svc.GetAthleteDetail(ctx, []string{"swimming"}, a.UserID)
			convey.So(err, convey.ShouldEqual, ErrForbiddenScope)
		})

		convey.Convey("When atlet tidak ada", func() {
			_, err := svc.GetAthleteDetail(ctx, nil, uuid.New())
			convey.So(err, convey.ShouldEqual, ErrAthleteNotFound)
		})
	})
}
