// internals/features/dashboard/stats/service/stats_service.go
//
// Aggregation/reporting engine: query read-only di atas data atlet+submission,
// semua dihitung fresh (tanpa cache) dan deterministik.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	achievementModel "atletku_backend/internals/features/assessments/achievements/model"
	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	statsDTO "atletku_backend/internals/features/dashboard/stats/dto"
	userModel "atletku_backend/internals/features/users/user/model"
	helper "atletku_backend/internals/helpers"
)

var (
	ErrAthleteNotFound = errors.New("profil atlet tidak ditemukan")
	ErrForbiddenScope  = errors.New("atlet di luar scope cabang olahraga reviewer")
)

// batas listing atlet admin
const maxAthleteList = 100

// seam waktu untuk umur (age bucket) supaya test deterministik
var nowFunc = time.Now

// Repository — pembacaan data mentah; agregasi dihitung di service ini
// (meniru controller asli yang mengagregasi di memori, bukan di query).
type Repository interface {
	ListAthletes(ctx context.Context) ([]statsDTO.AthleteSummary, error)
	ListSubmissionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]submissionModel.SubmissionModel, error)
	ListAchievementsByUser(ctx context.Context, userID uuid.UUID) ([]achievementModel.AchievementModel, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// athletesInScope memfilter atlet sesuai scope reviewer (kosong/all = semua)
func (s *Service) athletesInScope(ctx context.Context, scope []string) ([]statsDTO.AthleteSummary, error) {
	all, err := s.repo.ListAthletes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]statsDTO.AthleteSummary, 0, len(all))
	for _, a := range all {
		if helper.SportsScopeAllows(scope, a.Sports) {
			out = append(out, a)
		}
	}
	return out, nil
}

// normalizeStatus — status kosong/null diperlakukan sebagai pending
func normalizeStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return userModel.EvaluationStatusPending
	}
	return status
}

/* =======================================================
   ComputeDashboard
   ======================================================= */

func (s *Service) ComputeDashboard(ctx context.Context, scope []string) (*statsDTO.DashboardStats, error) {
	athletes, err := s.athletesInScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := &statsDTO.DashboardStats{TotalAthletes: len(athletes)}

	byUser := make(map[uuid.UUID]statsDTO.AthleteSummary, len(athletes))
	userIDs := make([]uuid.UUID, 0, len(athletes))
	for _, a := range athletes {
		byUser[a.UserID] = a
		userIDs = append(userIDs, a.UserID)

		switch normalizeStatus(a.EvaluationStatus) {
		case userModel.EvaluationStatusApproved:
			stats.ApprovedAthletes++
		case userModel.EvaluationStatusRejected:
			stats.RejectedAthletes++
		default:
			stats.PendingAthletes++
		}
	}

	stats.Leaderboard = buildLeaderboard(athletes, 5)
	stats.StateDistribution = buildStateDistribution(athletes)

	subs, err := s.repo.ListSubmissionsByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	// Flagged activity: submission rejected milik atlet in-scope + yang terbaru
	for i := range subs {
		sub := subs[i]
		if sub.SubmissionStatus != submissionModel.SubmissionStatusRejected {
			continue
		}
		stats.FlaggedCount++
		if stats.LatestFlagged == nil || sub.SubmissionUpdatedAt.After(stats.LatestFlagged.SubmissionUpdatedAt) {
			cp := sub
			stats.LatestFlagged = &cp
		}
	}

	// Chart hanya dari submission ter-ratifikasi (scored/approved) yang punya skor
	currentYear := nowFunc().Year()
	jump := newBucketAgg()
	situp := newBucketAgg()
	endurance := newBucketAgg()

	for i := range subs {
		sub := subs[i]
		if !sub.IsRatified() || sub.SubmissionScore == nil {
			continue
		}
		athlete, ok := byUser[sub.SubmissionUserID]
		if !ok {
			continue
		}
		switch sub.SubmissionCategory {
		case submissionModel.CategoryJump:
			jump.add(ageBucket(athlete.BirthDate, currentYear), *sub.SubmissionScore)
		case submissionModel.CategorySitup:
			situp.add(genderBucket(athlete.Gender), *sub.SubmissionScore)
		case submissionModel.CategoryEndurance:
			endurance.add(quarterBucket(sub.SubmissionTakenAt), *sub.SubmissionScore)
		}
	}

	stats.JumpByAgeBucket = jump.result([]string{"0-14", "15-17", "18-20", "21+", "unknown"})
	stats.SitupByGender = situp.result(nil)
	stats.EnduranceByQuarter = endurance.result([]string{"Q1", "Q2", "Q3", "Q4"})

	return stats, nil
}

func buildLeaderboard(athletes []statsDTO.AthleteSummary, limit int) []statsDTO.LeaderboardEntry {
	sorted := make([]statsDTO.AthleteSummary, len(athletes))
	copy(sorted, athletes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].OverallScore != sorted[j].OverallScore {
			return sorted[i].OverallScore > sorted[j].OverallScore
		}
		return sorted[i].FullName < sorted[j].FullName
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]statsDTO.LeaderboardEntry, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, statsDTO.LeaderboardEntry{
			UserID:       a.UserID,
			FullName:     a.FullName,
			Sports:       a.Sports,
			OverallScore: a.OverallScore,
		})
	}
	return out
}

func buildStateDistribution(athletes []statsDTO.AthleteSummary) []statsDTO.StateCount {
	counts := map[string]int{}
	for _, a := range athletes {
		state := "unknown"
		if a.State != nil {
			if v := strings.ToLower(strings.TrimSpace(*a.State)); v != "" {
				state = v
			}
		}
		counts[state]++
	}
	out := make([]statsDTO.StateCount, 0, len(counts))
	for state, n := range counts {
		out = append(out, statsDTO.StateCount{State: state, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].State < out[j].State
	})
	return out
}

/* =======================================================
   Bucket helpers
   ======================================================= */

func ageBucket(birthDate *time.Time, currentYear int) string {
	if birthDate == nil {
		return "unknown"
	}
	age := currentYear - birthDate.Year()
	switch {
	case age < 15:
		return "0-14"
	case age < 18:
		return "15-17"
	case age < 21:
		return "18-20"
	default:
		return "21+"
	}
}

func genderBucket(gender *string) string {
	if gender == nil {
		return "unknown"
	}
	g := strings.ToLower(strings.TrimSpace(*gender))
	if g == "" {
		return "unknown"
	}
	return g
}

func quarterBucket(t time.Time) string {
	return fmt.Sprintf("Q%d", (int(t.Month())-1)/3+1)
}

type bucketAgg struct {
	sum   map[string]float64
	count map[string]int
}

func newBucketAgg() *bucketAgg {
	return &bucketAgg{sum: map[string]float64{}, count: map[string]int{}}
}

func (b *bucketAgg) add(bucket string, score float64) {
	b.sum[bucket] += score
	b.count[bucket]++
}

// result mengembalikan rata-rata per bucket; order = urutan tetap (bucket
// tanpa data di-skip). order nil → urut alfabet.
func (b *bucketAgg) result(order []string) []statsDTO.BucketAverage {
	if order == nil {
		order = make([]string, 0, len(b.count))
		for k := range b.count {
			order = append(order, k)
		}
		sort.Strings(order)
	}
	out := make([]statsDTO.BucketAverage, 0, len(order))
	for _, bucket := range order {
		n := b.count[bucket]
		if n == 0 {
			continue
		}
		out = append(out, statsDTO.BucketAverage{
			Bucket:  bucket,
			Average: b.sum[bucket] / float64(n),
			Count:   n,
		})
	}
	return out
}

/* =======================================================
   ListAthletes / ListPendingSubmissions / GetAthleteDetail
   ======================================================= */

func (s *Service) ListAthletes(ctx context.Context, scope []string, statusFilter string) ([]statsDTO.AthleteSummary, error) {
	athletes, err := s.athletesInScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	statusFilter = strings.ToLower(strings.TrimSpace(statusFilter))
	if statusFilter != "" {
		filtered := athletes[:0]
		for _, a := range athletes {
			if normalizeStatus(a.EvaluationStatus) == statusFilter {
				filtered = append(filtered, a)
			}
		}
		athletes = filtered
	}

	sort.SliceStable(athletes, func(i, j int) bool {
		if athletes[i].OverallScore != athletes[j].OverallScore {
			return athletes[i].OverallScore > athletes[j].OverallScore
		}
		return athletes[i].FullName < athletes[j].FullName
	})
	if len(athletes) > maxAthleteList {
		athletes = athletes[:maxAthleteList]
	}
	return athletes, nil
}

func (s *Service) ListPendingSubmissions(ctx context.Context, scope []string) ([]statsDTO.PendingSubmission, error) {
	athletes, err := s.athletesInScope(ctx, scope)
	if err != nil {
		return nil, err
	}
	byUser := make(map[uuid.UUID]statsDTO.AthleteSummary, len(athletes))
	userIDs := make([]uuid.UUID, 0, len(athletes))
	for _, a := range athletes {
		byUser[a.UserID] = a
		userIDs = append(userIDs, a.UserID)
	}

	subs, err := s.repo.ListSubmissionsByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]statsDTO.PendingSubmission, 0)
	for i := range subs {
		sub := subs[i]
		if sub.SubmissionStatus != submissionModel.SubmissionStatusPending {
			continue
		}
		athlete, ok := byUser[sub.SubmissionUserID]
		if !ok {
			continue
		}
		out = append(out, statsDTO.PendingSubmission{Submission: sub, Athlete: athlete})
	}
	// antrian review: terbaru dulu
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Submission.SubmissionTakenAt.After(out[j].Submission.SubmissionTakenAt)
	})
	return out, nil
}

type AthleteDetail struct {
	Athlete      statsDTO.AthleteSummary            `json:"athlete"`
	Submissions  []submissionModel.SubmissionModel  `json:"submissions"`
	Achievements []achievementModel.AchievementModel `json:"achievements"`
}

func (s *Service) GetAthleteDetail(ctx context.Context, scope []string, athleteUserID uuid.UUID) (*AthleteDetail, error) {
	all, err := s.repo.ListAthletes(ctx)
	if err != nil {
		return nil, err
	}
	var athlete *statsDTO.AthleteSummary
	for i := range all {
		if all[i].UserID == athleteUserID {
			athlete = &all[i]
			break
		}
	}
	if athlete == nil {
		return nil, ErrAthleteNotFound
	}
	// scope check juga di single-record read (bukan cuma list)
	if !helper.SportsScopeAllows(scope, athlete.Sports) {
		return nil, ErrForbiddenScope
	}

	subs, err := s.repo.ListSubmissionsByUsers(ctx, []uuid.UUID{athleteUserID})
	if err != nil {
		return nil, err
	}
	achievements, err := s.repo.ListAchievementsByUser(ctx, athleteUserID)
	if err != nil {
		return nil, err
	}

	return &AthleteDetail{
		Athlete:      *athlete,
		Submissions:  subs,
		Achievements: achievements,
	}, nil
}
