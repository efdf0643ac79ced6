package query_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/query"
	. "github.com/smartystreets/goconvey/convey"
)

// memSource is a fixed set of catalogs.
type memSource map[model.Filter][]model.RawGameRecord

func (m memSource) Select(f model.Filter) []model.RawGameRecord {
	if !f.Known() {
		f = model.FilterMostPlayed
	}
	return m[f]
}

func (m memSource) LookupPool() []model.RawGameRecord {
	pool := append([]model.RawGameRecord{}, m[model.FilterNewest]...)
	return append(pool, m[model.FilterMostPlayed]...)
}

func records(prefix string, n int, category, tags string) []model.RawGameRecord {
	out := make([]model.RawGameRecord, n)
	for i := range out {
		out[i] = model.RawGameRecord{
			ID:       fmt.Sprintf("%s%d", prefix, i+1),
			Title:    fmt.Sprintf("%s game %d", prefix, i+1),
			Category: category,
			Tags:     tags,
		}
	}
	return out
}

func ids(games []model.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestQuery(t *testing.T) {
	Convey("Given a most played catalog of five records", t, func() {
		src := memSource{model.FilterMostPlayed: records("m", 5, "Arcade", "Arcade, Kids")}
		e := query.New(src)

		Convey("When asking for page 1 with page size 2", func() {
			p := e.Query(model.FilterMostPlayed, 0, 1, 2)

			Convey("Then two items and the full total should be returned", func() {
				So(ids(p.Items), ShouldResemble, []string{"m1", "m2"})
				So(p.Total, ShouldEqual, 5)
				So(p.Page, ShouldEqual, 1)
				So(p.PageSize, ShouldEqual, 2)
				So(p.Message, ShouldBeEmpty)
			})
		})

		Convey("When walking every page", func() {
			Convey("Then pages should cover the catalog exactly once in order", func() {
				var seen []string
				for page := 1; page <= 3; page++ {
					p := e.Query(model.FilterMostPlayed, 0, page, 2)
					So(len(p.Items), ShouldBeLessThanOrEqualTo, 2)
					So(p.Total, ShouldEqual, 5)
					seen = append(seen, ids(p.Items)...)
				}
				So(seen, ShouldResemble, []string{"m1", "m2", "m3", "m4", "m5"})
			})
		})

		Convey("When asking past the last page", func() {
			p := e.Query(model.FilterMostPlayed, 0, 9, 2)

			Convey("Then items should be empty but total kept and no message set", func() {
				So(p.Items, ShouldBeEmpty)
				So(p.Total, ShouldEqual, 5)
				So(p.Message, ShouldBeEmpty)
			})
		})

		Convey("When the page offset would overflow an int", func() {
			huge := e.Query(model.FilterMostPlayed, 0, (1<<62)+1, 4)
			maxed := e.Query(model.FilterMostPlayed, 0, math.MaxInt, math.MaxInt)

			Convey("Then the page should be empty instead of wrapping to the start", func() {
				So(huge.Items, ShouldBeEmpty)
				So(huge.Total, ShouldEqual, 5)
				So(maxed.Items, ShouldBeEmpty)
			})
		})

		Convey("When the page size exceeds the catalog", func() {
			p := e.Query(model.FilterMostPlayed, 0, 1, math.MaxInt)

			Convey("Then every record should be on the first page", func() {
				So(p.Items, ShouldHaveLength, 5)
			})
		})

		Convey("When page and page size are below one", func() {
			p := e.Query(model.FilterMostPlayed, 0, 0, 0)

			Convey("Then the first page with the default size should be returned", func() {
				So(p.Page, ShouldEqual, 1)
				So(p.PageSize, ShouldEqual, query.DefaultPageSize)
				So(p.Items, ShouldHaveLength, 5)
			})
		})

		Convey("When the filter is unknown", func() {
			p := e.Query("hotgames", 0, 1, 10)

			Convey("Then most played should be used", func() {
				So(p.Total, ShouldEqual, 5)
			})
		})

		Convey("When the same query runs twice", func() {
			Convey("Then results should be identical", func() {
				So(e.Query(model.FilterMostPlayed, 0, 2, 2), ShouldResemble, e.Query(model.FilterMostPlayed, 0, 2, 2))
			})
		})
	})

	Convey("Given a catalog with mixed categories", t, func() {
		src := memSource{model.FilterNewest: []model.RawGameRecord{
			{ID: "p1", Category: "Puzzle", Tags: ""},
			{ID: "a1", Category: "Arcade", Tags: "Arcade"},
			{ID: "p2", Category: "Kids", Tags: "Logic, Puzzles"},
			{ID: "r1", Category: "Sports", Tags: "Race, Cars"},
		}}
		e := query.New(src, query.WithDefaultPageSize(10))

		Convey("When filtering on Puzzle", func() {
			p := e.Query(model.FilterNewest, 15, 1, 0)

			Convey("Then name and tag matches should be kept in source order", func() {
				So(ids(p.Items), ShouldResemble, []string{"p1", "p2"})
				So(p.Total, ShouldEqual, 2)
				So(p.PageSize, ShouldEqual, 10)
			})
		})

		Convey("When filtering on a category without games", func() {
			p := e.Query(model.FilterNewest, 7, 1, 10)

			Convey("Then an empty page with the category message should be returned", func() {
				So(p.Items, ShouldNotBeNil)
				So(p.Items, ShouldBeEmpty)
				So(p.Total, ShouldEqual, 0)
				So(p.Message, ShouldEqual, "no games available in category Baby Hazel")
			})
		})

		Convey("When the category id is out of range", func() {
			p := e.Query(model.FilterNewest, 99, 1, 10)

			Convey("Then it should behave like all games", func() {
				So(p.Total, ShouldEqual, 4)
				So(p.Message, ShouldBeEmpty)
			})
		})
	})

	Convey("Given an empty catalog", t, func() {
		e := query.New(memSource{})

		Convey("When querying without a category", func() {
			p := e.Query(model.FilterBestOnMobile, 0, 1, 10)

			Convey("Then the generic message should be set", func() {
				So(p.Items, ShouldBeEmpty)
				So(p.Message, ShouldEqual, "no games found")
			})
		})

		Convey("When querying with a category", func() {
			p := e.Query(model.FilterBestOnMobile, 16, 1, 10)

			Convey("Then the category message should be set", func() {
				So(p.Message, ShouldEqual, "no games available in category Racing")
			})
		})
	})
}

func TestFindByID(t *testing.T) {
	Convey("Given newest, most played and best rated catalogs", t, func() {
		src := memSource{
			model.FilterNewest: []model.RawGameRecord{
				{ID: "A", Title: "Alpha", Tags: "Action, 3D"},
				{ID: "B", Title: "Bravo", Tags: "action"},
			},
			model.FilterMostPlayed: []model.RawGameRecord{
				{ID: "C", Title: "Charlie", Tags: "Puzzle"},
				{ID: "A", Title: "Alpha again", Tags: "Action, 3D"},
			},
			model.FilterBestRated: []model.RawGameRecord{
				{ID: "Z", Title: "Zulu", Tags: "Action"},
			},
		}
		e := query.New(src)

		Convey("When looking up A", func() {
			g, ok := e.FindByID("A")

			Convey("Then the first occurrence should win and carry B as similar", func() {
				So(ok, ShouldBeTrue)
				So(g.Title, ShouldEqual, "Alpha")
				So(ids(g.SimilarGames), ShouldResemble, []string{"B"})
			})
		})

		Convey("When looking up a game only present in most played", func() {
			g, ok := e.FindByID("C")

			Convey("Then it should be found without similar games", func() {
				So(ok, ShouldBeTrue)
				So(g.ID, ShouldEqual, "C")
				So(g.SimilarGames, ShouldBeEmpty)
			})
		})

		Convey("When looking up ids outside the lookup pool", func() {
			Convey("Then they should not be found", func() {
				_, ok := e.FindByID("Z")
				So(ok, ShouldBeFalse)
				So(e.Contains("Z"), ShouldBeFalse)
				So(e.Contains("C"), ShouldBeTrue)
				g, ok := e.Get("A")
				So(ok, ShouldBeTrue)
				So(g.Title, ShouldEqual, "Alpha")
				So(g.SimilarGames, ShouldBeNil)
				g, ok = e.FindByID("missing")
				So(ok, ShouldBeFalse)
				So(g, ShouldResemble, model.Game{})
			})
		})

		Convey("When every pooled id is looked up", func() {
			Convey("Then each should be found with a bounded similar list", func() {
				for _, r := range src.LookupPool() {
					g, ok := e.FindByID(r.ID)
					So(ok, ShouldBeTrue)
					So(len(g.SimilarGames), ShouldBeLessThanOrEqualTo, e.SimilarLimit())
					So(ids(g.SimilarGames), ShouldNotContain, r.ID)
				}
			})
		})
	})
}

func TestSearch(t *testing.T) {
	Convey("Given newest and most played catalogs", t, func() {
		src := memSource{
			model.FilterNewest: []model.RawGameRecord{
				{ID: "1", Title: "Moto Racer", Tags: "Racing"},
				{ID: "2", Title: "Chess", Description: "Classic board game", Tags: "Board"},
			},
			model.FilterMostPlayed: []model.RawGameRecord{
				{ID: "1", Title: "Moto Racer", Tags: "Racing"},
				{ID: "3", Title: "Drift", Tags: "Cars, RACING"},
			},
		}
		e := query.New(src)

		Convey("When searching across title and tags", func() {
			p := e.Search("racing", 1, 10)

			Convey("Then each match should appear once", func() {
				So(ids(p.Items), ShouldResemble, []string{"1", "3"})
				So(p.Total, ShouldEqual, 2)
			})
		})

		Convey("When searching the description", func() {
			p := e.Search("  BOARD game ", 1, 10)

			Convey("Then the match should be found", func() {
				So(ids(p.Items), ShouldResemble, []string{"2"})
			})
		})

		Convey("When nothing matches", func() {
			p := e.Search("golf", 1, 10)

			Convey("Then a message should explain it", func() {
				So(p.Items, ShouldBeEmpty)
				So(p.Message, ShouldEqual, `no games match "golf"`)
			})
		})

		Convey("When the keyword is blank", func() {
			p := e.Search("   ", 0, 0)

			Convey("Then an empty page should be returned", func() {
				So(p.Items, ShouldBeEmpty)
				So(p.Page, ShouldEqual, 1)
				So(p.Message, ShouldNotBeEmpty)
			})
		})
	})
}
