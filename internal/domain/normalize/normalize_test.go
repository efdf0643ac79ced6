package normalize_test

import (
	"testing"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given a default normalizer", t, func() {
		n := normalize.New()

		Convey("When normalizing a complete record", func() {
			raw := model.RawGameRecord{
				ID:          "g1",
				Title:       "  Crème Brûlée Rush ",
				Description: "Cook fast",
				URL:         "https://play.example/g1",
				Thumbnail:   "https://img.example/g1.jpg",
				Category:    "Cooking",
				Tags:        "Cooking, Girls, Time Management",
				Width:       "800",
				Height:      "600",
			}
			g := n.Normalize(raw)

			Convey("Then fields should be carried over and derived", func() {
				So(g.ID, ShouldEqual, "g1")
				So(g.Title, ShouldEqual, "Crème Brûlée Rush")
				So(g.Slug, ShouldEqual, "creme-brulee-rush")
				So(g.CategoryID, ShouldEqual, 11)
				So(g.CategoryName, ShouldEqual, "Cooking")
				So(g.Tags, ShouldResemble, []string{"Cooking", "Girls", "Time Management"})
				So(g.Width, ShouldEqual, "800")
				So(g.Height, ShouldEqual, "600")
				So(g.Popularity, ShouldBeBetweenOrEqual, 0, 99)
				So(g.SimilarGames, ShouldBeNil)
			})

			Convey("Then normalizing again should give the same game", func() {
				So(n.Normalize(raw), ShouldResemble, g)
				So(normalize.New().Normalize(raw), ShouldResemble, g)
			})
		})

		Convey("When the record has no tags and an unknown category", func() {
			g := n.Normalize(model.RawGameRecord{ID: "g2", Title: "X", Category: "Strategy"})

			Convey("Then tags should be empty and the category should fall back", func() {
				So(g.Tags, ShouldNotBeNil)
				So(g.Tags, ShouldBeEmpty)
				So(g.CategoryID, ShouldEqual, 0)
				So(g.CategoryName, ShouldEqual, "Strategy")
			})
		})

		Convey("When the tag string uses a different delimiter", func() {
			g := n.Normalize(model.RawGameRecord{ID: "g3", Tags: "Action,3D"})

			Convey("Then it should be kept as a single tag", func() {
				So(g.Tags, ShouldResemble, []string{"Action,3D"})
			})
		})
	})
}

func TestPopularityModes(t *testing.T) {
	Convey("Given many records", t, func() {
		raws := make([]model.RawGameRecord, 200)
		for i := range raws {
			raws[i] = model.RawGameRecord{ID: string(rune('a'+i%26)) + string(rune('0'+i%10)) + string(rune('A'+i/26))}
		}

		Convey("When using hashed popularity", func() {
			games := normalize.New().NormalizeAll(raws)

			Convey("Then every value should be in range and some flags set", func() {
				featured := 0
				for _, g := range games {
					So(g.Popularity, ShouldBeBetweenOrEqual, 0, 99)
					if g.Featured {
						featured++
					}
				}
				So(featured, ShouldBeGreaterThan, 0)
				So(featured, ShouldBeLessThan, len(games))
			})
		})

		Convey("When using seeded random popularity", func() {
			a := normalize.New(normalize.WithMode(normalize.ModeRandom), normalize.WithSeed(7)).NormalizeAll(raws)
			b := normalize.New(normalize.WithMode(normalize.ModeRandom), normalize.WithSeed(7)).NormalizeAll(raws)

			Convey("Then the same seed should reproduce the same sequence", func() {
				So(a, ShouldResemble, b)
				for _, g := range a {
					So(g.Popularity, ShouldBeBetweenOrEqual, 0, 99)
				}
			})
		})

		Convey("When an unknown mode is requested", func() {
			n := normalize.New(normalize.WithMode("weighted"))

			Convey("Then hashed mode should stay in effect", func() {
				So(n.Mode(), ShouldEqual, normalize.ModeHashed)
			})
		})
	})
}

func TestSplitTags(t *testing.T) {
	Convey("Given raw tag strings", t, func() {
		So(normalize.SplitTags(""), ShouldResemble, []string{})
		So(normalize.SplitTags("Puzzle"), ShouldResemble, []string{"Puzzle"})
		So(normalize.SplitTags("A, B, "), ShouldResemble, []string{"A", "B", ""})
	})
}
