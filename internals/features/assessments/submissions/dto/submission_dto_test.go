package dto

import (
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	submissionModel "atletku_backend/internals/features/assessments/submissions/model"
)

func TestCreateSubmissionRequest(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	convey.Convey("ResolveCategory pakai kategori eksplisit kalau valid", t, func() {
		req := CreateSubmissionRequest{TestName: "Tes Bebas", Category: "sprint"}
		convey.So(req.ResolveCategory(), convey.ShouldEqual, submissionModel.CategorySprint)
	})

	convey.Convey("ResolveCategory jatuh ke tebakan nama tes", t, func() {
		req := CreateSubmissionRequest{TestName: "Vertical Jump"}
		convey.So(req.ResolveCategory(), convey.ShouldEqual, submissionModel.CategoryJump)

		req = CreateSubmissionRequest{TestName: "Tes Misterius", Category: "bukan-kategori"}
		convey.So(req.ResolveCategory(), convey.ShouldEqual, submissionModel.CategoryOther)
	})

	convey.Convey("ResolveTakenAt parse RFC3339 atau fallback ke now", t, func() {
		req := CreateSubmissionRequest{TakenAt: "2025-05-20T08:30:00Z"}
		convey.So(req.ResolveTakenAt(now), convey.ShouldEqual, time.Date(2025, 5, 20, 8, 30, 0, 0, time.UTC))

		req = CreateSubmissionRequest{TakenAt: ""}
		convey.So(req.ResolveTakenAt(now), convey.ShouldEqual, now)

		req = CreateSubmissionRequest{TakenAt: "20-05-2025"}
		convey.So(req.ResolveTakenAt(now), convey.ShouldEqual, now)
	})

	convey.Convey("ToModel selalu mulai pending", t, func() {
		req := CreateSubmissionRequest{TestName: "Sit-Up 60 detik"}
		req.Normalize()
		m := req.ToModel(nil, now)
		convey.So(m.SubmissionStatus, convey.ShouldEqual, submissionModel.SubmissionStatusPending)
		convey.So(m.SubmissionCategory, convey.ShouldEqual, submissionModel.CategorySitup)
		convey.So(m.SubmissionScore, convey.ShouldBeNil)
	})
}
