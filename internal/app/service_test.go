package service_test

import (
	"context"
	"errors"
	"testing"

	service "github.com/fthomas67/ninjagamezone/internal/app"
	"github.com/fthomas67/ninjagamezone/internal/adapters/repository"
	"github.com/fthomas67/ninjagamezone/internal/domain/model"
	"github.com/fthomas67/ninjagamezone/internal/domain/query"
	"github.com/fthomas67/ninjagamezone/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func testCatalogs() *repository.Catalogs {
	return repository.NewCatalogs(map[model.Filter][]model.RawGameRecord{
		model.FilterNewest: {
			{ID: "n1", Title: "Neon Racer", Category: "Racing", Tags: "Racing, Cars, 3D"},
			{ID: "n2", Title: "Puzzle Box", Category: "Puzzle", Tags: "Puzzles, Logic"},
		},
		model.FilterMostPlayed: {
			{ID: "m1", Title: "Drift King", Category: "Racing", Tags: "Cars, Drift"},
			{ID: "m2", Title: "Goal!", Category: "Sports", Tags: "Soccer, Sport"},
			{ID: "m3", Title: "Tiny Chef", Category: "Cooking", Tags: "Cooking, Girls"},
		},
		model.FilterBestRated: {
			{ID: "b1", Title: "Only Rated", Category: "Arcade", Tags: "Arcade"},
		},
	})
}

func startedService(opts ...service.Option) *service.Service {
	opts = append([]service.Option{service.WithCatalogs(testCatalogs()), service.WithWorkerCount(1)}, opts...)
	svc := service.New(opts...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["defaultPageSize"], ShouldEqual, 24)
			So(stats["similarLimit"], ShouldEqual, 6)
			So(stats["popularityMode"], ShouldEqual, "hashed")
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithWorkerCount(3),
			service.WithQueueSize(10),
			service.WithRecentCapacity(4),
			service.WithDefaultPageSize(8),
			service.WithSimilarLimit(2),
			service.WithPopularity("random", 9),
		)

		Convey("Then the options should be applied", func() {
			stats := svc.GetStats()
			So(stats["workerCount"], ShouldEqual, 3)
			So(stats["queueSize"], ShouldEqual, 10)
			So(stats["recentCapacity"], ShouldEqual, 4)
			So(stats["defaultPageSize"], ShouldEqual, 8)
			So(stats["similarLimit"], ShouldEqual, 2)
			So(stats["popularityMode"], ShouldEqual, "random")
		})
	})

	Convey("Given a popularity mode in upper case", t, func() {
		svc := service.New(service.WithPopularity(" RANDOM", 9))

		Convey("Then it should still select the random mode", func() {
			So(svc.GetStats()["popularityMode"], ShouldEqual, "random")
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New(service.WithCatalogs(testCatalogs()))
		ctx := context.Background()

		Convey("When enqueueing before start", func() {
			_, err := svc.Enqueue(ctx, model.PlayEvent{GameID: "n1"})

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})

		Convey("When starting and stopping the service", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			stats := svc.GetStats()

			Convey("Then stats should describe the catalogs", func() {
				So(stats["started"], ShouldEqual, true)
				So(stats["categories"], ShouldEqual, 21)
				So(stats["catalogs"], ShouldResemble, map[string]int{
					"newest": 2, "mostplayed": 3, "bestgames": 1, "bestonmobile": 0,
				})
			})

			Convey("Then stop should be idempotent", func() {
				So(svc.Stop(ctx), ShouldBeNil)
				So(svc.Stop(ctx), ShouldBeNil)
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer func() { _ = svc.Stop(context.Background()) }()
		ctx := context.Background()

		Convey("When listing games by category", func() {
			p := svc.Games(ctx, model.FilterMostPlayed, 16, 1, 10)

			Convey("Then only racing games should be returned", func() {
				So(p.Total, ShouldEqual, 1)
				So(p.Items[0].ID, ShouldEqual, "m1")
			})
		})

		Convey("When looking up a game", func() {
			g, err := svc.Game(ctx, "n1")

			Convey("Then similar games should be attached", func() {
				So(err, ShouldBeNil)
				So(g.Slug, ShouldEqual, "neon-racer")
				So(len(g.SimilarGames), ShouldEqual, 1)
				So(g.SimilarGames[0].ID, ShouldEqual, "m1")
			})
		})

		Convey("When looking up a game only in best rated", func() {
			_, err := svc.Game(ctx, "b1")

			Convey("Then it should not be found", func() {
				So(errors.Is(err, query.ErrGameNotFound), ShouldBeTrue)
			})
		})

		Convey("When searching", func() {
			p := svc.Search(ctx, "cars", 1, 10)

			Convey("Then tag matches should be returned", func() {
				So(p.Total, ShouldEqual, 2)
			})
		})

		Convey("When building the home page", func() {
			sections := svc.Home(ctx, 2)

			Convey("Then four sections should be returned, hot games showing most played", func() {
				So(sections, ShouldHaveLength, 4)
				So(sections[0].Key, ShouldEqual, "mostplayed")
				So(sections[3].Key, ShouldEqual, "hotgames")
				So(sections[3].Games, ShouldResemble, sections[0].Games)
				So(sections[1].Games, ShouldHaveLength, 2)
				So(sections[2].Games, ShouldHaveLength, 1)
			})
		})

		Convey("When resolving categories", func() {
			c, ok := svc.Category("course")
			So(ok, ShouldBeTrue)
			So(c.Name, ShouldEqual, "Racing")
			c, ok = svc.CategoryByID(11)
			So(ok, ShouldBeTrue)
			So(c.Name, ShouldEqual, "Cooking")
			So(svc.Categories(), ShouldHaveLength, 21)
		})
	})
}

func TestService_Enqueue(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := startedService()
		defer func() { _ = svc.Stop(context.Background()) }()
		ctx := context.Background()

		Convey("When enqueueing an event without id", func() {
			e, err := svc.Enqueue(ctx, model.PlayEvent{GameID: "m2"})

			Convey("Then an id and timestamp should be assigned", func() {
				So(err, ShouldBeNil)
				So(e.EventID, ShouldNotBeEmpty)
				So(e.TS.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When enqueueing an event without game", func() {
			_, err := svc.Enqueue(ctx, model.PlayEvent{EventID: "x"})

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, service.ErrInvalidEvent), ShouldBeTrue)
			})
		})
	})
}
