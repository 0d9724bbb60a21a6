package helper

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestBuildPagination(t *testing.T) {
	convey.Convey("Metadata pagination dihitung dari total row", t, func() {
		p := Paging{Page: 2, PerPage: 10, Offset: 10, Limit: 10}

		convey.Convey("Total pas kelipatan per_page", func() {
			out := BuildPagination(p, 30, 10)
			convey.So(out.TotalPages, convey.ShouldEqual, 3)
			convey.So(out.HasNext, convey.ShouldBeTrue)
			convey.So(out.HasPrev, convey.ShouldBeTrue)
			convey.So(out.Count, convey.ShouldEqual, 10)
		})

		convey.Convey("Total dengan sisa menambah satu halaman", func() {
			out := BuildPagination(p, 31, 10)
			convey.So(out.TotalPages, convey.ShouldEqual, 4)
		})

		convey.Convey("Halaman terakhir tidak punya next", func() {
			out := BuildPagination(Paging{Page: 3, PerPage: 10}, 30, 10)
			convey.So(out.HasNext, convey.ShouldBeFalse)
			convey.So(out.HasPrev, convey.ShouldBeTrue)
		})

		convey.Convey("Halaman pertama tidak punya prev", func() {
			out := BuildPagination(Paging{Page: 1, PerPage: 10}, 5, 5)
			convey.So(out.TotalPages, convey.ShouldEqual, 1)
			convey.So(out.HasPrev, convey.ShouldBeFalse)
		})
	})
}
