package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nexusops/tempo/internal/adapters/store"
	service "github.com/nexusops/tempo/internal/app"
	"github.com/nexusops/tempo/internal/domain/auditlog"
	"github.com/nexusops/tempo/internal/domain/model"
	"github.com/nexusops/tempo/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// fakeStore serves canned collections and records write calls.
type fakeStore struct {
	assets      []model.Asset
	engineers   []model.Engineer
	alerts      []model.Alert
	readiness   []model.ReadinessMetric
	assignments []model.RawAssignment
	audit       []model.AuditEntry

	writeCalls atomic.Int64
	writeErr   error
}

func (f *fakeStore) Assets(context.Context) ([]model.Asset, error)       { return f.assets, nil }
func (f *fakeStore) Engineers(context.Context) ([]model.Engineer, error) { return f.engineers, nil }
func (f *fakeStore) Alerts(context.Context) ([]model.Alert, error)       { return f.alerts, nil }
func (f *fakeStore) Readiness(context.Context) ([]model.ReadinessMetric, error) {
	return f.readiness, nil
}
func (f *fakeStore) Assignments(context.Context) ([]model.RawAssignment, error) {
	return f.assignments, nil
}
func (f *fakeStore) AuditLog(context.Context) ([]model.AuditEntry, error) { return f.audit, nil }

func (f *fakeStore) write() (store.Ack, error) {
	f.writeCalls.Add(1)
	if f.writeErr != nil {
		return store.Ack{}, f.writeErr
	}
	return store.Ack{Status: "success"}, nil
}

func (f *fakeStore) RunScheduler(context.Context) (store.Ack, error) { return f.write() }
func (f *fakeStore) CompleteAssignment(context.Context, string) (store.Ack, error) {
	return f.write()
}
func (f *fakeStore) AddAsset(context.Context, any) (store.Ack, error)       { return f.write() }
func (f *fakeStore) DeleteAsset(context.Context, string) (store.Ack, error) { return f.write() }
func (f *fakeStore) AddEngineer(context.Context, any) (store.Ack, error)    { return f.write() }
func (f *fakeStore) DeleteEngineer(context.Context, string) (store.Ack, error) {
	return f.write()
}
func (f *fakeStore) TriggerChaos(context.Context) (store.Ack, error) { return f.write() }
func (f *fakeStore) ResetHealth(context.Context) (store.Ack, error)  { return f.write() }

func startService(t *testing.T, fs *fakeStore) *service.Service {
	t.Helper()
	svc := service.New(
		service.WithStoreClient(fs),
		service.WithRefreshInterval(10*time.Millisecond),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		svc.Stop(ctx)
	})

	// Wait for the first cycle to land.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.GetStats()["cycle"].(int64) > 0 {
			return svc
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("first refresh cycle never landed")
	return nil
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			So(svc.GetStats()["started"], ShouldEqual, false)
		})
	})
}

func TestService_StartStop(t *testing.T) {
	Convey("Given a service over a fake store", t, func() {
		fs := &fakeStore{assets: []model.Asset{{ID: "AST-1", Name: "Boiler Plant"}}}
		svc := startService(t, fs)

		Convey("Then it should be marked as started", func() {
			So(svc.GetStats()["started"], ShouldEqual, true)
		})

		Convey("When starting twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
		})

		Convey("When stopping the service", func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			svc.Stop(ctx)

			Convey("Then it should be marked as stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})

			Convey("Then reads keep serving the final snapshot", func() {
				So(len(svc.Assets(ctx)), ShouldEqual, 1)
			})
		})
	})
}

func TestService_Reads(t *testing.T) {
	Convey("Given a started service with fleet data", t, func() {
		fs := &fakeStore{
			assets:    []model.Asset{{ID: "AST-1", Name: "CNC Milling Machine", Type: "CNC Milling Machine"}},
			engineers: []model.Engineer{{ID: "ENG-1", Name: "M. Osei"}},
			alerts:    []model.Alert{{ID: "AL-1"}},
			assignments: []model.RawAssignment{{
				ID:           "WO-1",
				AssetName:    "CNC Milling Machine",
				EngineerName: "M. Osei",
				StartDate:    "2024-03-14T09:30:00",
				EndTime:      "2024-03-14T12:30:00",
			}},
			audit: []model.AuditEntry{{
				ID:                "AUD-1",
				EventType:         "REPAIR_COMPLETED",
				Engineer:          "M. Osei",
				SignalReceivedAt:  "2024-03-14T08:00:00",
				ActualStartAt:     "2024-03-14T09:30:00",
				ActualCompletedAt: "2024-03-14T11:00:00",
				Timestamp:         "2024-03-14T11:00:00",
			}},
		}
		svc := startService(t, fs)
		ctx := context.Background()

		Convey("Then the fleet reads serve the snapshot", func() {
			So(len(svc.Assets(ctx)), ShouldEqual, 1)
			So(len(svc.Engineers(ctx)), ShouldEqual, 1)
			So(len(svc.Alerts(ctx)), ShouldEqual, 1)
		})

		Convey("Then assignments come back normalized with ids resolved", func() {
			got := svc.Assignments(ctx)
			So(len(got), ShouldEqual, 1)
			So(got[0].AssetID, ShouldEqual, "AST-1")
			So(got[0].EngineerID, ShouldEqual, "ENG-1")
		})

		Convey("Then the calendar buckets the assignment on its start day", func() {
			month := svc.Calendar(ctx, 2024, time.March)
			day, ok := month.Day(14)
			So(ok, ShouldBeTrue)
			So(day.Count, ShouldEqual, 1)
			So(len(month.DayAssignments(14)), ShouldEqual, 1)
		})

		Convey("Then the gantt places the assignment in the window", func() {
			bars := svc.Gantt(ctx)
			So(len(bars), ShouldEqual, 1)
			So(bars[0].OffsetPercent, ShouldAlmostEqual, (9.5-8.0)/12.0*100.0, 0.001)
		})

		Convey("Then the audit read attaches derived metrics", func() {
			got := svc.Audit(ctx, auditlog.Filter{})
			So(len(got), ShouldEqual, 1)
			So(got[0].RepairMinutes, ShouldEqual, 90)
			So(got[0].LeadMinutes, ShouldEqual, 180)
			So(got[0].OverSLA, ShouldBeTrue)
		})

		Convey("Then filtering by engineer narrows the audit read", func() {
			So(len(svc.Audit(ctx, auditlog.Filter{Engineer: "osei"})), ShouldEqual, 1)
			So(len(svc.Audit(ctx, auditlog.Filter{Engineer: "vance"})), ShouldEqual, 0)
		})

		Convey("Then repair estimates use the duration table", func() {
			start := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)
			rule, end := svc.EstimateRepair(ctx, "CNC Milling Machine", start)
			So(rule.BaseMinutes, ShouldEqual, 120)
			So(end.Sub(start), ShouldEqual, 165*time.Minute)
		})
	})
}

func TestService_Writes(t *testing.T) {
	Convey("Given a started service", t, func() {
		fs := &fakeStore{}
		svc := startService(t, fs)
		ctx := context.Background()

		Convey("When proxying a write", func() {
			ack, err := svc.RunScheduler(ctx)

			Convey("Then the store call goes through", func() {
				So(err, ShouldBeNil)
				So(ack.Status, ShouldEqual, "success")
				So(fs.writeCalls.Load(), ShouldBeGreaterThanOrEqualTo, 1)
			})
		})

		Convey("When the store rejects the write", func() {
			fs.writeErr = errors.New("store says no")
			_, err := svc.CompleteAssignment(ctx, "WO-9")

			Convey("Then the error is surfaced unchanged", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given a service that was never started", t, func() {
		svc := service.New(service.WithStoreClient(&fakeStore{}))

		Convey("When proxying a write", func() {
			_, err := svc.TriggerChaos(context.Background())

			Convey("Then the not-started sentinel is returned", func() {
				So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			})
		})
	})
}
