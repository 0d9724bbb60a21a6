package model

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDeriveCategory(t *testing.T) {
	convey.Convey("Given berbagai nama tes", t, func() {
		cases := map[string]string{
			"Vertical Jump":      CategoryJump,
			"lompat jauh":        CategoryJump,
			"Sit-Up 60 detik":    CategorySitup,
			"sit up test":        CategorySitup,
			"SITUP":              CategorySitup,
			"Endurance Run":      CategoryEndurance,
			"lari 12 menit":      CategoryEndurance,
			"Sprint 100m":        CategorySprint,
			"Push Up":            CategoryStrength,
			"Strength Test":      CategoryStrength,
			"Kelincahan Zigzag":  CategoryOther,
			"":                   CategoryOther,
		}

		convey.Convey("Then kategori ditebak case-insensitive dari substring", func() {
			for name, want := range cases {
				convey.So(DeriveCategory(name), convey.ShouldEqual, want)
			}
		})
	})
}

func TestIsValidCategory(t *testing.T) {
	convey.Convey("Kategori enum dikenali, yang lain tidak", t, func() {
		convey.So(IsValidCategory(CategoryJump), convey.ShouldBeTrue)
		convey.So(IsValidCategory(CategoryOther), convey.ShouldBeTrue)
		convey.So(IsValidCategory("vertical jump"), convey.ShouldBeFalse)
		convey.So(IsValidCategory(""), convey.ShouldBeFalse)
	})
}

func TestIsRatified(t *testing.T) {
	convey.Convey("Hanya scored dan approved yang ter-ratifikasi", t, func() {
		for status, want := range map[string]bool{
			SubmissionStatusPending:  false,
			SubmissionStatusScored:   true,
			SubmissionStatusApproved: true,
			SubmissionStatusRejected: false,
		} {
			sub := SubmissionModel{SubmissionStatus: status}
			convey.So(sub.IsRatified(), convey.ShouldEqual, want)
		}
	})
}
