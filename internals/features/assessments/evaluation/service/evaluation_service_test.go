package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/smartystreets/goconvey/convey"

	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
	notifModel "atletku_backend/internals/features/home/notifications/model"
	userModel "atletku_backend/internals/features/users/user/model"
)

// memRepo — double in-memory; Transaction dijalankan langsung tanpa lock
type memRepo struct {
	submissions   map[uuid.UUID]*submissionModel.SubmissionModel
	athletes      map[uuid.UUID]*userModel.AthleteProfileModel
	notifications []*notifModel.NotificationModel
}

func newMemRepo() *memRepo {
	return &memRepo{
		submissions: map[uuid.UUID]*submissionModel.SubmissionModel{},
		athletes:    map[uuid.UUID]*userModel.AthleteProfileModel{},
	}
}

func (m *memRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(m)
}

func (m *memRepo) FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.SubmissionModel, error) {
	sub, ok := m.submissions[id]
	if !ok {
		return nil, nil
	}
	cp := *sub
	return &cp, nil
}

func (m *memRepo) SaveSubmission(ctx context.Context, sub *submissionModel.SubmissionModel) error {
	cp := *sub
	m.submissions[sub.SubmissionID] = &cp
	return nil
}

func (m *memRepo) ListScoresByUser(ctx context.Context, userID uuid.UUID) ([]float64, error) {
	var out []float64
	for _, sub := range m.submissions {
		if sub.SubmissionUserID == userID && sub.SubmissionScore != nil {
			out = append(out, *sub.SubmissionScore)
		}
	}
	return out, nil
}

func (m *memRepo) FindAthleteByUserID(ctx context.Context, userID uuid.UUID) (*userModel.AthleteProfileModel, error) {
	p, ok := m.athletes[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memRepo) SaveAthlete(ctx context.Context, p *userModel.AthleteProfileModel) error {
	cp := *p
	m.athletes[p.AthleteProfileUserID] = &cp
	return nil
}

func (m *memRepo) CreateNotification(ctx context.Context, n *notifModel.NotificationModel) error {
	m.notifications = append(m.notifications, n)
	return nil
}

func (m *memRepo) addAthlete(userID uuid.UUID, sports []string) *userModel.AthleteProfileModel {
	p := &userModel.AthleteProfileModel{
		AthleteProfileID:        uuid.New(),
		AthleteProfileUserID:    userID,
		AthleteSports:           sports,
		AthleteEvaluationStatus: userModel.EvaluationStatusPending,
	}
	m.athletes[userID] = p
	return p
}

func (m *memRepo) addSubmission(userID uuid.UUID, score *float64) *submissionModel.SubmissionModel {
	sub := &submissionModel.SubmissionModel{
		SubmissionID:     uuid.New(),
		SubmissionUserID: userID,
		SubmissionScore:  score,
		SubmissionStatus: submissionModel.SubmissionStatusPending,
	}
	if score != nil {
		sub.SubmissionStatus = submissionModel.SubmissionStatusScored
	}
	m.submissions[sub.SubmissionID] = sub
	return sub
}

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func TestEvaluateSubmission(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given atlet dengan dua submission sudah dinilai (15 & 20) dan satu belum", t, func() {
		repo := newMemRepo()
		userID := uuid.New()
		repo.addAthlete(userID, []string{"athletics"})
		repo.addSubmission(userID, fptr(15))
		repo.addSubmission(userID, fptr(20))
		pending := repo.addSubmission(userID, nil)
		svc := NewService(repo)

		convey.Convey("When submission ketiga dinilai 16.0", func() {
			out, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: pending.SubmissionID,
				Score:        fptr(16.0),
			})

			convey.Convey("Then status jadi scored dan rata-rata 17.0 TIDAK auto-approve (strict >)", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.SubmissionStatus, convey.ShouldEqual, submissionModel.SubmissionStatusScored)
				convey.So(*out.SubmissionScore, convey.ShouldEqual, 16.0)

				athlete := repo.athletes[userID]
				convey.So(athlete.AthleteOverallScore, convey.ShouldAlmostEqual, 17.0, 1e-9)
				convey.So(athlete.AthleteEvaluationStatus, convey.ShouldEqual, userModel.EvaluationStatusPending)
				convey.So(repo.notifications, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When submission ketiga dinilai 16.5", func() {
			_, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: pending.SubmissionID,
				Score:        fptr(16.5),
			})

			convey.Convey("Then rata-rata 17.166... melewati ambang dan atlet auto-approved", func() {
				convey.So(err, convey.ShouldBeNil)

				athlete := repo.athletes[userID]
				convey.So(athlete.AthleteOverallScore, convey.ShouldAlmostEqual, 51.5/3, 1e-9)
				convey.So(athlete.AthleteEvaluationStatus, convey.ShouldEqual, userModel.EvaluationStatusApproved)
				convey.So(len(repo.notifications), convey.ShouldEqual, 1)
				convey.So(repo.notifications[0].NotificationTags, convey.ShouldContain, "auto_approval")
			})
		})

		convey.Convey("When atlet sudah approved lalu dapat skor tinggi lagi", func() {
			repo.athletes[userID].AthleteEvaluationStatus = userModel.EvaluationStatusApproved
			_, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: pending.SubmissionID,
				Score:        fptr(25),
			})

			convey.Convey("Then approved tetap approved tanpa notifikasi baru (sink)", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(repo.athletes[userID].AthleteEvaluationStatus, convey.ShouldEqual, userModel.EvaluationStatusApproved)
				convey.So(repo.notifications, convey.ShouldBeEmpty)
			})
		})
	})

	convey.Convey("Given submission tanpa skor manapun", t, func() {
		repo := newMemRepo()
		userID := uuid.New()
		repo.addAthlete(userID, nil)
		sub := repo.addSubmission(userID, nil)
		svc := NewService(repo)

		convey.Convey("When status diubah jadi rejected tanpa skor", func() {
			out, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Status:       sptr(submissionModel.SubmissionStatusRejected),
			})

			convey.Convey("Then status berubah dan overall score tidak disentuh", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.SubmissionStatus, convey.ShouldEqual, submissionModel.SubmissionStatusRejected)
				convey.So(out.SubmissionScore, convey.ShouldBeNil)
				convey.So(repo.athletes[userID].AthleteOverallScore, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When status tidak dikenal", func() {
			_, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Status:       sptr("evaluated"),
			})
			convey.So(err, convey.ShouldEqual, ErrInvalidStatus)
		})

		convey.Convey("When skor di luar rentang", func() {
			_, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Score:        fptr(25.5),
			})
			convey.So(err, convey.ShouldEqual, ErrScoreOutOfRange)

			_, err = svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Score:        fptr(-1),
			})
			convey.So(err, convey.ShouldEqual, ErrScoreOutOfRange)
		})
	})

	convey.Convey("Given reviewer dengan scope terbatas", t, func() {
		repo := newMemRepo()
		userID := uuid.New()
		repo.addAthlete(userID, []string{"badminton"})
		sub := repo.addSubmission(userID, nil)
		svc := NewService(repo)

		convey.Convey("When reviewer cabang lain menilai", func() {
			_, err := svc.EvaluateSubmission(ctx, []string{"athletics"}, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Score:        fptr(20),
			})

			convey.Convey("Then ditolak dengan ErrForbiddenScope dan tidak ada perubahan", func() {
				convey.So(err, convey.ShouldEqual, ErrForbiddenScope)
				convey.So(repo.submissions[sub.SubmissionID].SubmissionScore, convey.ShouldBeNil)
			})
		})

		convey.Convey("When reviewer ber-scope all menilai", func() {
			_, err := svc.EvaluateSubmission(ctx, []string{"all"}, EvaluateSubmissionInput{
				SubmissionID: sub.SubmissionID,
				Score:        fptr(20),
			})
			convey.So(err, convey.ShouldBeNil)
		})
	})

	convey.Convey("Given submission yang tidak ada", t, func() {
		svc := NewService(newMemRepo())
		_, err := svc.EvaluateSubmission(ctx, nil, EvaluateSubmissionInput{
			SubmissionID: uuid.New(),
			Score:        fptr(10),
		})
		convey.So(err, convey.ShouldEqual, ErrSubmissionNotFound)
	})
}

func TestEvaluateAthlete(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given atlet pending yang sudah submit rangkaian tes", t, func() {
		repo := newMemRepo()
		userID := uuid.New()
		p := repo.addAthlete(userID, []string{"athletics"})
		p.AthleteIsTestSubmitted = true
		svc := NewService(repo)

		convey.Convey("When reviewer menolak dengan catatan", func() {
			out, err := svc.EvaluateAthlete(ctx, nil, EvaluateAthleteInput{
				AthleteUserID: userID,
				Status:        userModel.EvaluationStatusRejected,
				Remarks:       sptr("Video tidak jelas, ulangi tes lompat"),
			})

			convey.Convey("Then status rejected, flag submit direset, notifikasi berisi catatan", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.AthleteEvaluationStatus, convey.ShouldEqual, userModel.EvaluationStatusRejected)
				convey.So(out.AthleteIsTestSubmitted, convey.ShouldBeFalse)
				convey.So(*out.AthleteEvaluationRemarks, convey.ShouldEqual, "Video tidak jelas, ulangi tes lompat")

				convey.So(len(repo.notifications), convey.ShouldEqual, 1)
				convey.So(repo.notifications[0].NotificationTags, convey.ShouldContain, "retest_open")
				convey.So(repo.notifications[0].NotificationMessage, convey.ShouldContainSubstring, "Video tidak jelas")

				convey.Convey("And atlet kembali boleh mulai tes", func() {
					convey.So(repo.athletes[userID].CanStartTest(), convey.ShouldBeTrue)
				})
			})
		})

		convey.Convey("When reviewer approve dua kali berturut-turut", func() {
			_, err1 := svc.EvaluateAthlete(ctx, nil, EvaluateAthleteInput{
				AthleteUserID: userID,
				Status:        userModel.EvaluationStatusApproved,
			})
			_, err2 := svc.EvaluateAthlete(ctx, nil, EvaluateAthleteInput{
				AthleteUserID: userID,
				Status:        userModel.EvaluationStatusApproved,
			})

			convey.Convey("Then state akhir sama tapi notifikasi terkirim dua kali", func() {
				convey.So(err1, convey.ShouldBeNil)
				convey.So(err2, convey.ShouldBeNil)
				convey.So(repo.athletes[userID].AthleteEvaluationStatus, convey.ShouldEqual, userModel.EvaluationStatusApproved)
				convey.So(len(repo.notifications), convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When status bukan approved/rejected", func() {
			_, err := svc.EvaluateAthlete(ctx, nil, EvaluateAthleteInput{
				AthleteUserID: userID,
				Status:        userModel.EvaluationStatusPending,
			})
			convey.So(err, convey.ShouldEqual, ErrInvalidStatus)
		})

		convey.Convey("When reviewer di luar scope cabang atlet", func() {
			_, err := svc.EvaluateAthlete(ctx, []string{"swimming"}, EvaluateAthleteInput{
				AthleteUserID: userID,
				Status:        userModel.EvaluationStatusApproved,
			})
			convey.So(err, convey.ShouldEqual, ErrForbiddenScope)
		})
	})

	convey.Convey("Given atlet yang tidak ada", t, func() {
		svc := NewService(newMemRepo())
		_, err := svc.EvaluateAthlete(context.Background(), nil, EvaluateAthleteInput{
			AthleteUserID: uuid.New(),
			Status:        userModel.EvaluationStatusApproved,
		})
		convey.So(err, convey.ShouldEqual, ErrAthleteNotFound)
	})
}
