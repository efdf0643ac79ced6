package similarity_test

import (
	"testing"

	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/similarity"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(games []model.Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestFindSimilar(t *testing.T) {
	Convey("Given a ranker and a small pool", t, func() {
		r := similarity.New()
		pool := []model.RawGameRecord{
			{ID: "A", Tags: "Action, 3D"},
			{ID: "B", Tags: "action"},
			{ID: "C", Tags: "Puzzle"},
		}
		target := model.Game{ID: "A", Tags: []string{"Action", "3D"}}

		Convey("When looking for games similar to A", func() {
			got := r.FindSimilar(target, pool, similarity.DefaultLimit)

			Convey("Then only B should be returned", func() {
				So(ids(got), ShouldResemble, []string{"B"})
				So(got[0].Tags, ShouldResemble, []string{"action"})
			})
		})

		Convey("When the limit is below one", func() {
			Convey("Then nothing should be returned", func() {
				So(r.FindSimilar(target, pool, 0), ShouldBeEmpty)
				So(r.FindSimilar(target, pool, -3), ShouldBeEmpty)
			})
		})

		Convey("When the target has no tags", func() {
			Convey("Then nothing can overlap", func() {
				So(r.FindSimilar(model.Game{ID: "Z", Tags: []string{}}, pool, 6), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a pool with ties and duplicates", t, func() {
		r := similarity.New()
		target := model.Game{ID: "T", Tags: []string{"Action", "Racing", "3D"}}
		pool := []model.RawGameRecord{
			{ID: "one", Tags: "Action"},
			{ID: "T", Tags: "Action, Racing, 3D"},
			{ID: "two", Tags: "Racing, 3D, Cars"},
			{ID: "three", Tags: "3D"},
			{ID: "one", Tags: "Action, Racing, 3D"},
			{ID: "four", Tags: "Action, Racing, 3D, 3D"},
			{ID: "five", Tags: "Sports"},
		}

		Convey("When ranking", func() {
			got := r.FindSimilar(target, pool, 10)

			Convey("Then scores should be non-increasing with ties in pool order", func() {
				So(ids(got), ShouldResemble, []string{"four", "two", "one", "three"})
				prev := len(target.Tags) + 1
				for _, g := range got {
					s := similarity.Score(target.Tags, rawTags(pool, g.ID))
					So(s, ShouldBeLessThanOrEqualTo, prev)
					prev = s
				}
			})

			Convey("Then the target and zero-score records should be excluded", func() {
				So(ids(got), ShouldNotContain, "T")
				So(ids(got), ShouldNotContain, "five")
			})
		})

		Convey("When the limit is smaller than the candidates", func() {
			got := r.FindSimilar(target, pool, 2)

			Convey("Then the top entries should be kept", func() {
				So(ids(got), ShouldResemble, []string{"four", "two"})
			})
		})
	})
}

func rawTags(pool []model.RawGameRecord, id string) string {
	for _, p := range pool {
		if p.ID == id {
			return p.Tags
		}
	}
	return ""
}

func TestScore(t *testing.T) {
	Convey("Given tag lists", t, func() {
		So(similarity.Score([]string{"Action", "3D"}, "ACTION, 3d, Cars"), ShouldEqual, 2)
		So(similarity.Score([]string{"Action"}, ""), ShouldEqual, 0)
		So(similarity.Score([]string{"Action"}, "Action, action"), ShouldEqual, 1)
	})
}
