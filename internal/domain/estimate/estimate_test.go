package estimate_test

import (
	"testing"
	"time"

	"github.com/nexusops/tempo/internal/domain/estimate"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimatorRule(t *testing.T) {
	Convey("Given an estimator with the production table", t, func() {
		e := estimate.New()

		Convey("When looking up a known asset type", func() {
			rule := e.Rule("HV Transformer")

			Convey("Then the table entry should be returned", func() {
				So(rule.BaseMinutes, ShouldEqual, 240)
				So(rule.BufferMinutes, ShouldEqual, 60)
			})
		})

		Convey("When looking up a type with zero buffer", func() {
			rule := e.Rule("SCADA Server")

			So(rule.BaseMinutes, ShouldEqual, 45)
			So(rule.BufferMinutes, ShouldEqual, 0)
		})

		Convey("When looking up an unknown asset type", func() {
			rule := e.Rule("Quantum Flux Capacitor")

			Convey("Then the default rule should be returned", func() {
				So(rule.BaseMinutes, ShouldEqual, 60)
				So(rule.BufferMinutes, ShouldEqual, 15)
			})
		})

		Convey("When looking up an empty type", func() {
			rule := e.Rule("")

			So(rule.BaseMinutes, ShouldEqual, 60)
			So(rule.BufferMinutes, ShouldEqual, 15)
		})
	})
}

func TestEstimateEnd(t *testing.T) {
	Convey("Given an estimator", t, func() {
		e := estimate.New()
		start := time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC)

		Convey("When estimating the end for a known type", func() {
			end := e.EstimateEnd(start, "Packaging Robot")

			Convey("Then end should be start plus base plus buffer", func() {
				So(end.Equal(start.Add(105*time.Minute)), ShouldBeTrue)
			})
		})

		Convey("When estimating the end for an unknown type", func() {
			end := e.EstimateEnd(start, "whatever")

			Convey("Then the default 75 minutes should apply", func() {
				So(end.Equal(start.Add(75*time.Minute)), ShouldBeTrue)
			})
		})
	})
}

func TestEstimatorOptions(t *testing.T) {
	Convey("Given custom options", t, func() {
		Convey("When replacing the rule table", func() {
			e := estimate.New(estimate.WithRules(map[string]estimate.Rule{
				"Test Rig": {BaseMinutes: 10, BufferMinutes: 5},
			}))

			Convey("Then only the injected table should resolve", func() {
				So(e.Rule("Test Rig").BaseMinutes, ShouldEqual, 10)
				So(e.Rule("Boiler Plant").BaseMinutes, ShouldEqual, 60) // falls back
			})
		})

		Convey("When overriding the default rule", func() {
			e := estimate.New(estimate.WithDefaultRule(estimate.Rule{BaseMinutes: 30, BufferMinutes: 10}))

			So(e.Rule("missing").Total(), ShouldEqual, 40*time.Minute)
		})

		Convey("When passing an empty table", func() {
			e := estimate.New(estimate.WithRules(nil))

			Convey("Then the production table should remain", func() {
				So(e.Rule("Boiler Plant").BaseMinutes, ShouldEqual, 200)
			})
		})
	})
}

func TestRuleTotal(t *testing.T) {
	Convey("Given a rule", t, func() {
		rule := estimate.Rule{BaseMinutes: 180, BufferMinutes: 30}

		Convey("When computing the total", func() {
			So(rule.Total(), ShouldEqual, 210*time.Minute)
		})
	})
}
