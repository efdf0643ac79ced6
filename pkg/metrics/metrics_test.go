package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options on a private registry", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created with catalog defaults", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "ninjagz")
				So(manager.subsystem, ShouldEqual, "catalog")
				So(manager.enabled, ShouldBeTrue)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithMetricPrefix("test_"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then metric names should carry namespace, subsystem and prefix", func() {
				manager.categoryCount.Set(21)
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found bool
				for _, f := range families {
					if f.GetName() == "test_namespace_test_subsystem_test_categories" {
						found = true
						So(f.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
				So(manager.refreshInterval, ShouldEqual, 5*time.Second)
			})
		})

		Convey("When empty option values are supplied", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithRefreshInterval(0),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "ninjagz")
				So(manager.subsystem, ShouldEqual, "catalog")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
				So(manager.refreshInterval, ShouldEqual, defaultRefreshInterval)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording query outcomes", func() {
			before := testutil.ToFloat64(globalManager.queries.WithLabelValues("newest", "ok"))
			RecordQuery("newest", "ok")
			RecordQuery("newest", "ok")

			Convey("Then the labelled counter should grow", func() {
				after := testutil.ToFloat64(globalManager.queries.WithLabelValues("newest", "ok"))
				So(after-before, ShouldEqual, 2)
			})
		})

		Convey("When updating gauges", func() {
			UpdateCatalogRecords("mostplayed", 5)
			UpdateRecentSize(3)
			UpdateQueueSize(7)

			Convey("Then gauges should reflect the last value", func() {
				So(testutil.ToFloat64(globalManager.catalogRecords.WithLabelValues("mostplayed")), ShouldEqual, 5)
				So(testutil.ToFloat64(globalManager.recentSize), ShouldEqual, 3)
				So(testutil.ToFloat64(globalManager.queueSize), ShouldEqual, 7)
			})
		})

		Convey("When recording the remaining metrics", func() {
			Convey("Then none of them should panic", func() {
				So(func() {
					UpdateCategoryCount(21)
					RecordQueryLatency(0.3)
					RecordLookup("found")
					RecordLookup("not_found")
					RecordSimilarResults(4)
					RecordSearch("empty")
					RecordPlay()
					RecordPlayDropped("unknown_game")
					RecordHTTPRequest("games", "GET", "200")
					RecordHTTPRequestDuration("games", "GET", "200", 1.5)
					UpdateQueueCapacity(1024)
					UpdateQueueUtilization(0.1)
					RecordQueueEnqueue()
					RecordQueueDequeue()
					RecordQueueEnqueueError()
					UpdateWorkerActiveCount(2)
					RecordWorkerProcessingLatency(0.2)
					RecordWorkerError()
					RecordErrorByComponent("worker", "lookup")
					RecordErrorByEndpoint("games", "GET", "client_error")
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(12)
					RecordSystemGCPauseTime(0.4)
				}, ShouldNotPanic)
			})
		})

		Convey("When metrics are disabled", func() {
			prev := globalManager.enabled
			globalManager.enabled = false
			defer func() { globalManager.enabled = prev }()

			before := testutil.ToFloat64(globalManager.playsTotal)
			RecordPlay()

			Convey("Then recording should be a no-op", func() {
				So(testutil.ToFloat64(globalManager.playsTotal), ShouldEqual, before)
			})
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		RecordLookup("found")
		families, err := GetRegistry().Gather()

		Convey("Then it should expose catalog metrics without Go runtime collectors", func() {
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
			for _, f := range families {
				So(strings.HasPrefix(f.GetName(), "ninjagz_catalog_"), ShouldBeTrue)
			}
			So(RefreshInterval(), ShouldEqual, defaultRefreshInterval)
		})
	})
}
