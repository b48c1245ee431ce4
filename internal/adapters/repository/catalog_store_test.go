package repository_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/quintet/internal/adapters/repository"
	"github.com/okian/quintet/internal/domain/catalog"
	"github.com/okian/quintet/internal/domain/floor"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewCatalogStore_Embedded(t *testing.T) {
	Convey("Given the embedded sample catalog", t, func() {
		ctx := context.Background()
		store, err := repository.NewCatalogStore(ctx)

		Convey("Then it loads and validates", func() {
			So(err, ShouldBeNil)
			So(store.Len(), ShouldEqual, 18)
		})

		Convey("Then it spans the full category universe", func() {
			products, err := store.Products(ctx)
			So(err, ShouldBeNil)
			So(catalog.DistinctCategories(products), ShouldEqual, 8)
		})

		Convey("Then its budget floor matches the reference data set", func() {
			products, err := store.Products(ctx)
			So(err, ShouldBeNil)
			got, err := floor.Minimum(products)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 245)
		})

		Convey("Then Products hands out independent copies", func() {
			first, err := store.Products(ctx)
			So(err, ShouldBeNil)
			first[0].Price = -999

			second, err := store.Products(ctx)
			So(err, ShouldBeNil)
			So(second[0].Price, ShouldBeGreaterThan, 0)
		})
	})
}

func TestNewCatalogStore_File(t *testing.T) {
	Convey("Given a catalog file override", t, func() {
		ctx := context.Background()
		dir := t.TempDir()

		write := func(name, content string) string {
			path := filepath.Join(dir, name)
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			return path
		}

		Convey("When the file is valid", func() {
			path := write("ok.json", `[
				{"id": 1, "name": "Thing", "price": 30, "rating": 4.2, "category": "Audio"}
			]`)
			store, err := repository.NewCatalogStore(ctx, repository.WithPath(path))

			Convey("Then it replaces the embedded data", func() {
				So(err, ShouldBeNil)
				So(store.Len(), ShouldEqual, 1)
			})
		})

		Convey("When the file does not exist", func() {
			_, err := repository.NewCatalogStore(ctx, repository.WithPath(filepath.Join(dir, "missing.json")))
			So(err, ShouldWrap, repository.ErrLoadCatalog)
		})

		Convey("When the file is not JSON", func() {
			path := write("bad.json", "not json at all")
			_, err := repository.NewCatalogStore(ctx, repository.WithPath(path))
			So(err, ShouldWrap, repository.ErrLoadCatalog)
		})

		Convey("When a product has a non-positive price", func() {
			path := write("price.json", `[
				{"id": 1, "name": "Free", "price": 0, "rating": 4.2, "category": "Audio"}
			]`)
			_, err := repository.NewCatalogStore(ctx, repository.WithPath(path))
			So(err, ShouldWrap, catalog.ErrInvalidProduct)
		})

		Convey("When a product has an unknown category", func() {
			path := write("category.json", `[
				{"id": 1, "name": "Odd", "price": 10, "rating": 4.2, "category": "Mystery"}
			]`)
			_, err := repository.NewCatalogStore(ctx, repository.WithPath(path))
			So(err, ShouldWrap, catalog.ErrUnknownCategory)
		})
	})
}
