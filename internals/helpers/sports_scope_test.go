package helper

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestParseSportsScope(t *testing.T) {
	convey.Convey("Query sports dipecah per koma dan di-trim", t, func() {
		convey.So(ParseSportsScope(""), convey.ShouldBeNil)
		convey.So(ParseSportsScope("   "), convey.ShouldBeNil)
		convey.So(ParseSportsScope("athletics"), convey.ShouldResemble, []string{"athletics"})
		convey.So(ParseSportsScope(" athletics , badminton ,"), convey.ShouldResemble, []string{"athletics", "badminton"})
	})
}

func TestSportsScopeAllows(t *testing.T) {
	convey.Convey("Scope kosong atau 'all' adalah wildcard", t, func() {
		convey.So(SportsScopeAllows(nil, []string{"athletics"}), convey.ShouldBeTrue)
		convey.So(SportsScopeAllows([]string{}, nil), convey.ShouldBeTrue)
		convey.So(SportsScopeAllows([]string{"all"}, []string{"badminton"}), convey.ShouldBeTrue)
		convey.So(SportsScopeAllows([]string{"ALL "}, nil), convey.ShouldBeTrue)
	})

	convey.Convey("Pencocokan case-insensitive dengan trim", t, func() {
		convey.So(SportsScopeAllows([]string{"Athletics"}, []string{" athletics"}), convey.ShouldBeTrue)
		convey.So(SportsScopeAllows([]string{"athletics", "swimming"}, []string{"swimming"}), convey.ShouldBeTrue)
		convey.So(SportsScopeAllows([]string{"athletics"}, []string{"badminton"}), convey.ShouldBeFalse)
		convey.So(SportsScopeAllows([]string{"athletics"}, nil), convey.ShouldBeFalse)
	})
}
