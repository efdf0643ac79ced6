package slug_test

import (
	"testing"

	"github.com/fthomas67/ninjagamezone/pkg/slug"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMake(t *testing.T) {
	Convey("Given free-text titles", t, func() {
		Convey("When the title is plain ASCII", func() {
			Convey("Then it should be lower-cased and dash separated", func() {
				So(slug.Make("Moto X3M Pool Party"), ShouldEqual, "moto-x3m-pool-party")
				So(slug.Make("2 Players"), ShouldEqual, "2-players")
				So(slug.Make(".IO"), ShouldEqual, "io")
			})
		})

		Convey("When the title carries accents and ligatures", func() {
			Convey("Then they should fold to ASCII", func() {
				So(slug.Make("Tous les jeux"), ShouldEqual, "tous-les-jeux")
				So(slug.Make("Garçons"), ShouldEqual, "garcons")
				So(slug.Make("Cœur Élégant"), ShouldEqual, "coeur-elegant")
				So(slug.Make("Ÿoyo Ünïcode"), ShouldEqual, "yoyo-unicode")
			})
		})

		Convey("When the title has punctuation at the edges", func() {
			Convey("Then no leading, trailing or doubled dashes should remain", func() {
				So(slug.Make("  --Hello,   World!!  "), ShouldEqual, "hello-world")
				So(slug.Make("Baby Hazel: Kitchen Time"), ShouldEqual, "baby-hazel-kitchen-time")
			})
		})

		Convey("When nothing slug-safe is left", func() {
			Convey("Then the slug should be empty", func() {
				So(slug.Make(""), ShouldEqual, "")
				So(slug.Make("!!!"), ShouldEqual, "")
			})
		})
	})
}
