package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nexusops/tempo/internal/adapters/store"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientReads(t *testing.T) {
	Convey("Given a store serving fleet collections", t, func() {
		var lastRequestID atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastRequestID.Store(r.Header.Get("X-Request-ID"))
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/assets":
				_, _ = w.Write([]byte(`[{"asset_id":"AST-1","name":"Boiler Plant","risk_level":7}]`))
			case "/engineers":
				_, _ = w.Write([]byte(`[{"engineer_id":"ENG-1","name":"R. Vance","team":"Utilities"}]`))
			case "/alerts":
				_, _ = w.Write([]byte(`[{"id":"AL-1","message":"CRITICAL: gap","severity":5}]`))
			case "/analysis/readiness":
				_, _ = w.Write([]byte(`[{"skill":"Electrician","needed":2,"available":1,"readiness":50}]`))
			case "/assignments":
				_, _ = w.Write([]byte(`[{"id":"wo-1","asset_name":"Boiler Plant","engineer_name":"R. Vance","start_date":"2024-03-14T09:00:00Z","duration_hours":2,"type":"CRITICAL"}]`))
			case "/audit":
				_, _ = w.Write([]byte(`[{"id":"ev-1","event_type":"REPAIR_COMPLETE","engineer":"R. Vance","timestamp":"2024-03-14T11:00:00Z"}]`))
			default:
				http.NotFound(w, r)
			}
		}))
		defer srv.Close()

		c := store.New(store.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When fetching assets", func() {
			assets, err := c.Assets(ctx)

			Convey("Then the list should decode", func() {
				So(err, ShouldBeNil)
				So(len(assets), ShouldEqual, 1)
				So(assets[0].ID, ShouldEqual, "AST-1")
				So(assets[0].RiskLevel, ShouldEqual, 7)
			})

			Convey("And a request correlation id should be sent", func() {
				So(lastRequestID.Load(), ShouldNotBeEmpty)
			})
		})

		Convey("When fetching engineers", func() {
			engineers, err := c.Engineers(ctx)
			So(err, ShouldBeNil)
			So(engineers[0].Name, ShouldEqual, "R. Vance")
		})

		Convey("When fetching alerts", func() {
			alerts, err := c.Alerts(ctx)
			So(err, ShouldBeNil)
			So(alerts[0].Severity, ShouldEqual, 5)
		})

		Convey("When fetching readiness", func() {
			readiness, err := c.Readiness(ctx)
			So(err, ShouldBeNil)
			So(readiness[0].Readiness, ShouldEqual, 50)
		})

		Convey("When fetching raw assignments", func() {
			raw, err := c.Assignments(ctx)
			So(err, ShouldBeNil)
			So(raw[0].DurationHours, ShouldEqual, 2)
		})

		Convey("When fetching the audit log", func() {
			entries, err := c.AuditLog(ctx)
			So(err, ShouldBeNil)
			So(entries[0].EventType, ShouldEqual, "REPAIR_COMPLETE")
		})
	})
}

func TestClientWrites(t *testing.T) {
	Convey("Given a store accepting actions", t, func() {
		var gotMethod, gotPath atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod.Store(r.Method)
			gotPath.Store(r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","message":"done"}`))
		}))
		defer srv.Close()

		c := store.New(store.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When triggering a scheduler run", func() {
			ack, err := c.RunScheduler(ctx)

			So(err, ShouldBeNil)
			So(ack.Status, ShouldEqual, "success")
			So(gotMethod.Load(), ShouldEqual, http.MethodPost)
			So(gotPath.Load(), ShouldEqual, "/schedule")
		})

		Convey("When completing an assignment", func() {
			ack, err := c.CompleteAssignment(ctx, "wo-9")

			So(err, ShouldBeNil)
			So(ack.Message, ShouldEqual, "done")
			So(gotMethod.Load(), ShouldEqual, http.MethodPut)
			So(gotPath.Load(), ShouldEqual, "/assignments/wo-9/complete")
		})

		Convey("When registering an asset", func() {
			_, err := c.AddAsset(ctx, map[string]any{"name": "New Rig"})

			So(err, ShouldBeNil)
			So(gotPath.Load(), ShouldEqual, "/assets/add")
		})

		Convey("When deleting an engineer", func() {
			_, err := c.DeleteEngineer(ctx, "ENG-3")

			So(err, ShouldBeNil)
			So(gotMethod.Load(), ShouldEqual, http.MethodDelete)
			So(gotPath.Load(), ShouldEqual, "/engineers/ENG-3")
		})

		Convey("When triggering simulation actions", func() {
			_, err := c.TriggerChaos(ctx)
			So(err, ShouldBeNil)
			So(gotPath.Load(), ShouldEqual, "/assets/chaos")

			_, err = c.ResetHealth(ctx)
			So(err, ShouldBeNil)
			So(gotPath.Load(), ShouldEqual, "/assets/reset-health")
		})
	})
}

func TestClientFailures(t *testing.T) {
	Convey("Given a store returning errors", t, func() {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "boiler offline", http.StatusBadGateway)
		}))
		defer srv.Close()

		c := store.New(store.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When a fetch hits a non-success status", func() {
			_, err := c.Assets(ctx)

			Convey("Then the response body surfaces in the error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "boiler offline")
				So(err.Error(), ShouldContainSubstring, "502")
			})

			Convey("And exactly one request was made, no retries", func() {
				So(calls.Load(), ShouldEqual, 1)
			})
		})

		Convey("When the write ack is an empty body", func() {
			empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))
			defer empty.Close()

			ack, err := store.New(store.WithBaseURL(empty.URL)).RunScheduler(ctx)

			Convey("Then the call succeeds with a zero ack", func() {
				So(err, ShouldBeNil)
				So(ack.Status, ShouldEqual, "")
			})
		})

		Convey("When the body is not valid JSON", func() {
			garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>nope</html>"))
			}))
			defer garbage.Close()

			_, err := store.New(store.WithBaseURL(garbage.URL)).Assets(ctx)
			So(err, ShouldNotBeNil)
		})
	})
}
