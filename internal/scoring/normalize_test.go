package scoring_test

import (
	"math"
	"testing"

	"pageant-scoring-system/internal/scoring"

	. "github.com/smartystreets/goconvey/convey"
)

func ptr(v float64) *float64 { return &v }

func TestNormalize(t *testing.T) {
	Convey("Given raw judge aggregates", t, func() {
		Convey("Percentages pass through", func() {
			So(scoring.Normalize(ptr(75)), ShouldEqual, 75.0)
			So(scoring.Normalize(ptr(100)), ShouldEqual, 100.0)
			So(scoring.Normalize(ptr(0)), ShouldEqual, 0.0)
		})

		Convey("Fractional values up to 10 are read as a ten-point scale", func() {
			So(scoring.Normalize(ptr(7.5)), ShouldEqual, 75.0)
			So(scoring.Normalize(ptr(9.25)), ShouldAlmostEqual, 92.5, 1e-9)
		})

		Convey("Integers up to 10 are not rescaled", func() {
			So(scoring.Normalize(ptr(10)), ShouldEqual, 10.0)
			So(scoring.Normalize(ptr(6)), ShouldEqual, 6.0)
		})

		Convey("Values above 100 are clamped", func() {
			So(scoring.Normalize(ptr(150)), ShouldEqual, 100.0)
			So(scoring.Normalize(ptr(100.5)), ShouldEqual, 100.0)
		})

		Convey("Missing values become 0", func() {
			So(scoring.Normalize(nil), ShouldEqual, 0.0)
			So(scoring.NormalizeValue(math.NaN()), ShouldEqual, 0.0)
		})

		Convey("Normalizing twice is not idempotent for small fractions", func() {
			// 0.75 → 7.5 → 75：一个真实的 7.5% 再次归一化会被放大
			once := scoring.NormalizeValue(0.75)
			So(once, ShouldEqual, 7.5)
			So(scoring.NormalizeValue(once), ShouldEqual, 75.0)
		})

		Convey("Normalizing twice is stable for percentages above 10", func() {
			for _, v := range []float64{10.5, 42, 86.25, 99.99} {
				So(scoring.NormalizeValue(scoring.NormalizeValue(v)), ShouldEqual, scoring.NormalizeValue(v))
			}
		})
	})
}
