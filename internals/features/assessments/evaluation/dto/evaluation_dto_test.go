package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/smartystreets/goconvey/convey"
)

var validate = validator.New()

func TestEvaluateSubmissionRequest(t *testing.T) {
	convey.Convey("Normalize merapikan status", t, func() {
		status := "  Approved "
		req := EvaluateSubmissionRequest{Status: &status}
		req.Normalize()
		convey.So(*req.Status, convey.ShouldEqual, "approved")
	})

	convey.Convey("IsEmpty true hanya saat status dan skor kosong", t, func() {
		convey.So((&EvaluateSubmissionRequest{}).IsEmpty(), convey.ShouldBeTrue)
		score := 10.0
		convey.So((&EvaluateSubmissionRequest{Score: &score}).IsEmpty(), convey.ShouldBeFalse)
	})

	convey.Convey("Validasi menolak status asing dan skor di luar rentang", t, func() {
		bad := "evaluated"
		convey.So(validate.Struct(&EvaluateSubmissionRequest{Status: &bad}), convey.ShouldNotBeNil)

		over := 25.5
		convey.So(validate.Struct(&EvaluateSubmissionRequest{Score: &over}), convey.ShouldNotBeNil)

		edge := 25.0
		convey.So(validate.Struct(&EvaluateSubmissionRequest{Score: &edge}), convey.ShouldBeNil)
	})
}

func TestEvaluateAthleteRequest(t *testing.T) {
	convey.Convey("Status wajib approved/rejected", t, func() {
		convey.So(validate.Struct(&EvaluateAthleteRequest{Status: "approved"}), convey.ShouldBeNil)
		convey.So(validate.Struct(&EvaluateAthleteRequest{Status: "pending"}), convey.ShouldNotBeNil)
		convey.So(validate.Struct(&EvaluateAthleteRequest{Status: ""}), convey.ShouldNotBeNil)
	})

	convey.Convey("Normalize merapikan status dan remarks", t, func() {
		remarks := "  ulangi tes  "
		req := EvaluateAthleteRequest{Status: "REJECTED", Remarks: &remarks}
		req.Normalize()
		convey.So(req.Status, convey.ShouldEqual, "rejected")
		convey.So(*req.Remarks, convey.ShouldEqual, "ulangi tes")
	})
}
