package metrics_test

import (
	"testing"

	"github.com/okian/quintet/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a fresh metrics manager", t, func() {
		m := metrics.NewManager(metrics.WithNamespace("testns"))

		Convey("Then it exposes its own registry", func() {
			So(m.Registry(), ShouldNotBeNil)

			families, err := m.Registry().Gather()
			So(err, ShouldBeNil)
			// Vec collectors only materialize on first use; the plain
			// counters, gauges and histograms are present immediately.
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the default manager", t, func() {
		Convey("Then recording business metrics does not panic", func() {
			So(func() {
				metrics.RecordTeamRequest()
				metrics.RecordTeamBuilt(245)
				metrics.RecordEmptyTeam()
				metrics.RecordCombinationsEvaluated(1000)
				metrics.RecordSearchLatency(12.5)
				metrics.UpdateCatalogProducts(18)
				metrics.UpdateCatalogCategories(8)
				metrics.UpdateBudgetFloor(245)
			}, ShouldNotPanic)
		})

		Convey("Then recording HTTP metrics does not panic", func() {
			So(func() {
				metrics.RecordHTTPRequest("team_builder", "GET", "200")
				metrics.RecordHTTPRequestDuration("team_builder", "GET", "200", 4.2)
				metrics.RecordHTTPError("team_builder", "GET", "client_error")
			}, ShouldNotPanic)
		})

		Convey("Then the recorded metrics are gatherable", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["quintet_team_requests_total"], ShouldBeTrue)
			So(names["quintet_http_requests_total"], ShouldBeTrue)
			So(names["quintet_budget_floor"], ShouldBeTrue)
		})
	})
}
