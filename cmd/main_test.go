package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/maeumlab/gunghap/internal/adapters/http/api"
	"github.com/maeumlab/gunghap/internal/adapters/http/swagger"
	"github.com/maeumlab/gunghap/internal/app"
	"github.com/maeumlab/gunghap/internal/config"
	"github.com/maeumlab/gunghap/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("GUNGHAP_ADDR", ":8081")
			_ = os.Setenv("GUNGHAP_QUEUE_SIZE", "1000")
			_ = os.Setenv("GUNGHAP_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("GUNGHAP_ADDR")
				_ = os.Unsetenv("GUNGHAP_QUEUE_SIZE")
				_ = os.Unsetenv("GUNGHAP_WORKER_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8081")
				convey.So(cfg.GeocodeQueueSize, convey.ShouldEqual, 1000)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithWorkerCount(8),
					app.WithQueueSize(2000),
					app.WithDedupeSize(1000),
					app.WithTopK(5),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc, 50)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When running the system metrics updater briefly", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() {
				startSystemMetricsUpdater(ctx)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("When running the service metrics updater briefly", func() {
			svc := app.New()
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() {
				startServiceMetricsUpdater(ctx, svc)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("When updating system metrics once", func() {
			convey.So(func() {
				updateSystemMetrics()
			}, convey.ShouldNotPanic)
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When wiring the full application", func() {
			_ = os.Setenv("GUNGHAP_ADDR", ":8081")
			_ = os.Setenv("GUNGHAP_WORKER_COUNT", "2")
			defer func() {
				_ = os.Unsetenv("GUNGHAP_ADDR")
				_ = os.Unsetenv("GUNGHAP_WORKER_COUNT")
			}()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				svc := app.New(
					app.WithWorkerCount(cfg.WorkerCount),
					app.WithQueueSize(cfg.GeocodeQueueSize),
					app.WithDedupeSize(cfg.DedupeSize),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				server := api.NewServer(svc, svc, cfg.MaxTopK)
				convey.So(server, convey.ShouldNotBeNil)

				mux := http.NewServeMux()
				server.Register(ctx, mux)
				swagger.Register(ctx, mux)

				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the listen address is empty", func() {
			_ = os.Setenv("GUNGHAP_ADDR", "")
			defer func() { _ = os.Unsetenv("GUNGHAP_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When service options carry zero values", func() {
			convey.Convey("Then defaults should be kept", func() {
				svc := app.New(
					app.WithWorkerCount(0),
					app.WithQueueSize(0),
					app.WithDedupeSize(0),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}
