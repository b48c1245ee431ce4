package value_test

import (
	"testing"

	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/value"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompute(t *testing.T) {
	Convey("Given products with positive prices", t, func() {
		products := []catalog.Product{
			{ID: 1, Name: "Test Product", Price: 50, Rating: 4.0, Category: catalog.Electronics},
			{ID: 2, Name: "Another Product", Price: 100, Rating: 5.0, Category: catalog.Audio},
		}

		Convey("When computing values", func() {
			out, err := value.Compute(products)

			Convey("Then each value is exactly rating over price", func() {
				So(err, ShouldBeNil)
				So(out, ShouldHaveLength, 2)
				So(out[0].Value, ShouldEqual, 4.0/50)
				So(out[1].Value, ShouldEqual, 5.0/100)
			})

			Convey("And all other fields are preserved", func() {
				So(out[0].ID, ShouldEqual, 1)
				So(out[0].Name, ShouldEqual, "Test Product")
				So(out[0].Price, ShouldEqual, 50)
				So(out[0].Rating, ShouldEqual, 4.0)
				So(out[0].Category, ShouldEqual, catalog.Electronics)
			})

			Convey("And the input slice is untouched", func() {
				So(products[0].Value, ShouldEqual, 0)
				So(products[1].Value, ShouldEqual, 0)
			})
		})

		Convey("When prices are at the extremes", func() {
			extremes := []catalog.Product{
				{ID: 1, Name: "Cheap", Price: 1, Rating: 4.0, Category: catalog.Electronics},
				{ID: 2, Name: "Expensive", Price: 1000, Rating: 4.0, Category: catalog.Audio},
			}
			out, err := value.Compute(extremes)

			Convey("Then the ratio still holds exactly", func() {
				So(err, ShouldBeNil)
				So(out[0].Value, ShouldEqual, 4.0)
				So(out[1].Value, ShouldEqual, 0.004)
			})
		})
	})

	Convey("Given a product with a non-positive price", t, func() {
		Convey("Then a zero price is an invalid-product error", func() {
			_, err := value.Compute([]catalog.Product{
				{ID: 1, Name: "Free", Price: 0, Rating: 4.0, Category: catalog.Audio},
			})
			So(err, ShouldWrap, catalog.ErrInvalidProduct)
		})

		Convey("Then a negative price is an invalid-product error", func() {
			_, err := value.Compute([]catalog.Product{
				{ID: 1, Name: "Refund", Price: -5, Rating: 4.0, Category: catalog.Audio},
			})
			So(err, ShouldWrap, catalog.ErrInvalidProduct)
		})
	})

	Convey("Given no products", t, func() {
		out, err := value.Compute(nil)
		So(err, ShouldBeNil)
		So(out, ShouldBeEmpty)
	})
}
