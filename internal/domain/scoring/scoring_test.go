package scoring_test

import (
	"testing"

	"github.com/okian/quintet/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore_Tiers(t *testing.T) {
	Convey("Given the budget-tiered scoring policy", t, func() {
		const (
			totalCost  = 400.0
			totalValue = 2.0
		)

		Convey("When the budget is in the low tier", func() {
			budget := 300.0
			got := scoring.Score(totalCost, totalValue, budget)

			Convey("Then pure value plus half utilization applies", func() {
				So(got, ShouldAlmostEqual, totalValue+0.5*(totalCost/budget))
			})
		})

		Convey("When the budget is in the middle tier", func() {
			budget := 800.0
			got := scoring.Score(totalCost, totalValue, budget)

			Convey("Then value is discounted and utilization rewarded", func() {
				So(got, ShouldAlmostEqual, 0.7*totalValue+2*(totalCost/budget))
			})
		})

		Convey("When the budget is in the high tier", func() {
			budget := 2000.0
			got := scoring.Score(totalCost, totalValue, budget)

			Convey("Then absolute spend earns a direct bonus", func() {
				So(got, ShouldAlmostEqual, 0.5*totalValue+3*(totalCost/budget)+totalCost/100)
			})
		})
	})
}

func TestScore_TierBoundaries(t *testing.T) {
	Convey("Given the inclusive tier boundaries", t, func() {
		const (
			totalCost  = 450.0
			totalValue = 1.5
		)

		Convey("Then a budget of exactly 500 uses the low tier", func() {
			got := scoring.Score(totalCost, totalValue, 500)
			So(got, ShouldAlmostEqual, totalValue+0.5*(totalCost/500))
		})

		Convey("And a budget just above 500 uses the middle tier", func() {
			budget := 500.0001
			got := scoring.Score(totalCost, totalValue, budget)
			So(got, ShouldAlmostEqual, 0.7*totalValue+2*(totalCost/budget))
		})

		Convey("Then a budget of exactly 1000 uses the middle tier", func() {
			got := scoring.Score(totalCost, totalValue, 1000)
			So(got, ShouldAlmostEqual, 0.7*totalValue+2*(totalCost/1000))
		})

		Convey("And a budget just above 1000 uses the high tier", func() {
			budget := 1000.0001
			got := scoring.Score(totalCost, totalValue, budget)
			So(got, ShouldAlmostEqual, 0.5*totalValue+3*(totalCost/budget)+totalCost/100)
		})

		Convey("And scores are discontinuous across the boundary", func() {
			below := scoring.Score(totalCost, totalValue, 500)
			above := scoring.Score(totalCost, totalValue, 500.0001)
			So(below, ShouldNotAlmostEqual, above)
		})
	})
}

func TestScore_ZeroBudget(t *testing.T) {
	Convey("Given a non-positive budget", t, func() {
		Convey("Then utilization is defined as zero", func() {
			So(scoring.Score(100, 3.0, 0), ShouldAlmostEqual, 3.0)
			So(scoring.Score(100, 3.0, -50), ShouldAlmostEqual, 3.0)
		})
	})
}
