package logger_test

import (
	"context"
	"testing"

	"github.com/okian/quintet/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("Then the global logger is retrievable", func() {
			So(logger.Get(), ShouldNotBeNil)
		})

		Convey("Then logging at every level does not panic", func() {
			l := logger.Get()
			So(func() {
				l.Debug(ctx, "debug message", logger.String("k", "v"))
				l.Info(ctx, "info message", logger.Int("count", 3))
				l.Warn(ctx, "warn message", logger.Float64("ratio", 0.5))
				l.Error(ctx, "error message", logger.Any("detail", []int{1, 2}))
			}, ShouldNotPanic)
		})

		Convey("Then Named returns a tagged child logger", func() {
			named := logger.Named("search")
			So(named, ShouldNotBeNil)
			So(func() { named.Info(ctx, "from child") }, ShouldNotPanic)
		})

		Convey("Then Sync is a no-op", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level names", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then known names parse", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "", "INFO", " Debug "} {
				So(logger.SetLevelString(lvl), ShouldBeNil)
			}
		})

		Convey("Then unknown names are rejected", func() {
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}
