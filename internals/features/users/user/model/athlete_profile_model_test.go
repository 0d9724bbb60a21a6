package model

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestCanStartTest(t *testing.T) {
	convey.Convey("Aturan gate mulai tes", t, func() {
		cases := []struct {
			status    string
			submitted bool
			want      bool
		}{
			{EvaluationStatusPending, false, true},
			{EvaluationStatusPending, true, false},
			{EvaluationStatusRejected, false, true},
			{EvaluationStatusRejected, true, true}, // rejected selalu buka lagi
			{EvaluationStatusApproved, false, false},
			{EvaluationStatusApproved, true, false},
		}

		for _, tc := range cases {
			p := AthleteProfileModel{
				AthleteEvaluationStatus: tc.status,
				AthleteIsTestSubmitted:  tc.submitted,
			}
			convey.So(p.CanStartTest(), convey.ShouldEqual, tc.want)
		}
	})
}
