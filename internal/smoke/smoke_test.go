package smoke

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestVerifyTeam(t *testing.T) {
	Convey("Given a well-formed team response", t, func() {
		team := teamResult{
			TotalCost: 150,
			Products: []product{
				{ID: 1, Price: 10, Category: "Electronics"},
				{ID: 2, Price: 20, Category: "Audio"},
				{ID: 3, Price: 30, Category: "Furniture"},
				{ID: 4, Price: 40, Category: "Wearables"},
				{ID: 5, Price: 50, Category: "Displays"},
			},
		}

		Convey("Then it verifies against its budget", func() {
			So(verifyTeam(150, team), ShouldBeNil)
			So(verifyTeam(1000, team), ShouldBeNil)
		})

		Convey("Then a short team fails", func() {
			short := team
			short.Products = short.Products[:4]
			So(verifyTeam(150, short), ShouldNotBeNil)
		})

		Convey("Then a duplicate category fails", func() {
			dup := team
			dup.Products = append([]product(nil), team.Products...)
			dup.Products[4].Category = "Electronics"
			So(verifyTeam(150, dup), ShouldNotBeNil)
		})

		Convey("Then a mismatched total cost fails", func() {
			wrong := team
			wrong.TotalCost = 140
			So(verifyTeam(150, wrong), ShouldNotBeNil)
		})

		Convey("Then exceeding the budget fails", func() {
			So(verifyTeam(149, team), ShouldNotBeNil)
		})
	})
}

func TestSweep(t *testing.T) {
	Convey("Given a budget range", t, func() {
		Convey("Then the sweep starts exactly at the floor", func() {
			got := sweep(245, 1000, 10)
			So(got, ShouldHaveLength, 10)
			So(got[0], ShouldEqual, 245)
			So(got[9], ShouldAlmostEqual, 1000)
		})

		Convey("Then degenerate ranges collapse to the floor", func() {
			So(sweep(245, 100, 10), ShouldResemble, []float64{245})
			So(sweep(245, 1000, 1), ShouldResemble, []float64{245})
		})
	})
}
