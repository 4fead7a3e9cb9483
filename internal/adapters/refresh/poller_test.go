package refresh_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/nexusops/tempo/internal/adapters/refresh"
	"github.com/nexusops/tempo/internal/adapters/state"
	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...logger.Field) {}
func (nopLogger) Info(context.Context, string, ...logger.Field)  {}
func (nopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (nopLogger) Error(context.Context, string, ...logger.Field) {}
func (n nopLogger) Named(string) logger.Logger                   { return n }

// fakeFetcher serves canned collections and canned per-collection errors.
type fakeFetcher struct {
	assets      []model.Asset
	engineers   []model.Engineer
	alerts      []model.Alert
	readiness   []model.ReadinessMetric
	assignments []model.RawAssignment
	audit       []model.AuditEntry

	assetsErr    error
	engineersErr error
	alertsErr    error
	readinessErr error
	ordersErr    error
	auditErr     error
}

func (f *fakeFetcher) Assets(context.Context) ([]model.Asset, error) {
	return f.assets, f.assetsErr
}

func (f *fakeFetcher) Engineers(context.Context) ([]model.Engineer, error) {
	return f.engineers, f.engineersErr
}

func (f *fakeFetcher) Alerts(context.Context) ([]model.Alert, error) {
	return f.alerts, f.alertsErr
}

func (f *fakeFetcher) Readiness(context.Context) ([]model.ReadinessMetric, error) {
	return f.readiness, f.readinessErr
}

func (f *fakeFetcher) Assignments(context.Context) ([]model.RawAssignment, error) {
	return f.assignments, f.ordersErr
}

func (f *fakeFetcher) AuditLog(context.Context) ([]model.AuditEntry, error) {
	return f.audit, f.auditErr
}

// capturingPublisher records every update and signals each arrival.
type capturingPublisher struct {
	mu      sync.Mutex
	updates []state.Update
	arrived chan struct{}
}

func newCapturingPublisher() *capturingPublisher {
	return &capturingPublisher{arrived: make(chan struct{}, 64)}
}

func (c *capturingPublisher) Publish(u state.Update) bool {
	c.mu.Lock()
	c.updates = append(c.updates, u)
	c.mu.Unlock()
	c.arrived <- struct{}{}
	return true
}

func (c *capturingPublisher) last() state.Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updates[len(c.updates)-1]
}

func (c *capturingPublisher) waitOne(t *testing.T) {
	t.Helper()
	select {
	case <-c.arrived:
	case <-time.After(2 * time.Second):
		t.Fatal("no publish arrived")
	}
}

func runOneCycle(t *testing.T, f *fakeFetcher) state.Update {
	t.Helper()
	pub := newCapturingPublisher()
	p := refresh.New(f, pub,
		refresh.WithInterval(time.Hour),
		refresh.WithLogger(nopLogger{}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go p.Run(ctx)
	pub.waitOne(t)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	if err := p.Shutdown(shutdownCtx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	return pub.last()
}

func TestCyclePublishesAllCollections(t *testing.T) {
	Convey("Given a store where every read succeeds", t, func() {
		f := &fakeFetcher{
			assets:    []model.Asset{{ID: "AST-1", Name: "Boiler Plant"}},
			engineers: []model.Engineer{{ID: "ENG-1", Name: "R. Vance"}},
			alerts:    []model.Alert{{ID: "AL-1"}},
			readiness: []model.ReadinessMetric{{Skill: "welding", Needed: 2, Available: 2, Readiness: 100}},
			assignments: []model.RawAssignment{{
				ID:        "WO-1",
				AssetName: "Boiler Plant",
				StartDate: "2024-03-14T09:00:00",
				EndTime:   "2024-03-14T12:00:00",
			}},
			audit: []model.AuditEntry{{ID: "AUD-1"}},
		}

		Convey("When a cycle runs", func() {
			u := runOneCycle(t, f)

			Convey("Then every collection is present in the update", func() {
				So(u.Assets, ShouldNotBeNil)
				So(u.Engineers, ShouldNotBeNil)
				So(u.Alerts, ShouldNotBeNil)
				So(u.Readiness, ShouldNotBeNil)
				So(u.Assignments, ShouldNotBeNil)
				So(u.AuditLog, ShouldNotBeNil)
				So(u.Cycle, ShouldEqual, 1)
			})

			Convey("Then assignments are normalized with references resolved", func() {
				got := *u.Assignments
				So(len(got), ShouldEqual, 1)
				So(got[0].ID, ShouldEqual, "WO-1")
				So(got[0].AssetID, ShouldEqual, "AST-1")
				So(got[0].DurationHours, ShouldEqual, 3.0)
			})
		})
	})
}

func TestCyclePartialFailure(t *testing.T) {
	Convey("Given a store where alerts and audit fail", t, func() {
		f := &fakeFetcher{
			assets:    []model.Asset{{ID: "AST-1", Name: "CNC Milling Machine"}},
			engineers: []model.Engineer{{ID: "ENG-1", Name: "M. Osei"}},
			readiness: []model.ReadinessMetric{{Skill: "hydraulics"}},
			alertsErr: errors.New("boom"),
			auditErr:  errors.New("boom"),
		}

		Convey("When a cycle runs", func() {
			u := runOneCycle(t, f)

			Convey("Then only the failed collections are omitted", func() {
				So(u.Alerts, ShouldBeNil)
				So(u.AuditLog, ShouldBeNil)
				So(u.Assets, ShouldNotBeNil)
				So(u.Engineers, ShouldNotBeNil)
				So(u.Readiness, ShouldNotBeNil)
				So(u.Assignments, ShouldNotBeNil)
			})
		})
	})
}

func TestReadinessFallback(t *testing.T) {
	Convey("Given remote readiness is down but rosters are up", t, func() {
		f := &fakeFetcher{
			assets: []model.Asset{{
				ID:                     "AST-1",
				Name:                   "HV Transformer",
				RequiredCertifications: []string{"high-voltage"},
			}},
			engineers:    []model.Engineer{{ID: "ENG-1", Certifications: []string{"High-Voltage"}}},
			readinessErr: errors.New("analysis service unreachable"),
		}

		Convey("When a cycle runs", func() {
			u := runOneCycle(t, f)

			Convey("Then readiness is recomputed locally from the rosters", func() {
				So(u.Readiness, ShouldNotBeNil)
				got := *u.Readiness
				So(len(got), ShouldEqual, 1)
				So(got[0].Skill, ShouldEqual, "high-voltage")
				So(got[0].Readiness, ShouldEqual, 100.0)
			})
		})
	})

	Convey("Given remote readiness and the rosters are all down", t, func() {
		f := &fakeFetcher{
			assetsErr:    errors.New("boom"),
			engineersErr: errors.New("boom"),
			readinessErr: errors.New("boom"),
		}

		Convey("When a cycle runs", func() {
			u := runOneCycle(t, f)

			Convey("Then readiness is left untouched", func() {
				So(u.Readiness, ShouldBeNil)
			})
		})
	})
}

func TestShutdownStopsTicking(t *testing.T) {
	Convey("Given a running poller", t, func() {
		f := &fakeFetcher{}
		pub := newCapturingPublisher()
		p := refresh.New(f, pub,
			refresh.WithInterval(10*time.Millisecond),
			refresh.WithLogger(nopLogger{}),
		)

		go p.Run(context.Background())
		pub.waitOne(t)

		Convey("When it is shut down", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			So(p.Shutdown(ctx), ShouldBeNil)

			Convey("Then no new cycles fire afterwards", func() {
				// Drain anything that raced the shutdown.
				deadline := time.After(50 * time.Millisecond)
			drain:
				for {
					select {
					case <-pub.arrived:
					case <-deadline:
						break drain
					}
				}

				select {
				case <-pub.arrived:
					t.Fatal("cycle fired after shutdown")
				case <-time.After(50 * time.Millisecond):
				}
			})

			Convey("Then a second shutdown is a no-op", func() {
				So(p.Shutdown(ctx), ShouldBeNil)
			})
		})
	})
}

func TestLatePublishAfterStoreClose(t *testing.T) {
	Convey("Given a closed snapshot store", t, func() {
		s := state.New()
		So(s.Close(), ShouldBeNil)

		Convey("When a straggling cycle publishes into it", func() {
			assets := []model.Asset{{ID: "AST-9"}}
			ok := s.Publish(state.Update{Cycle: 7, Assets: &assets})

			Convey("Then the update is discarded without error", func() {
				So(ok, ShouldBeFalse)
				So(len(s.Snapshot().Assets), ShouldEqual, 0)
			})
		})
	})
}
