package scoring_test

import (
	"testing"

	"pageant-scoring-system/internal/scoring"

	. "github.com/smartystreets/goconvey/convey"
)

type entry struct {
	id    int
	score float64
}

func byScore(e entry) float64 { return e.score }

func ids(ranked []scoring.Ranked[entry]) []int {
	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.Item.id
	}
	return out
}

func ranks(ranked []scoring.Ranked[entry]) []int {
	out := make([]int, len(ranked))
	for i, r := range ranked {
		out[i] = r.Rank
	}
	return out
}

func TestRank(t *testing.T) {
	Convey("Given scores with a tie at the top", t, func() {
		in := []entry{{1, 90}, {2, 90}, {3, 80}}

		Convey("Tied scores share a rank and the next rank skips", func() {
			out := scoring.Rank(in, byScore)
			So(ranks(out), ShouldResemble, []int{1, 1, 3})
			So(ids(out), ShouldResemble, []int{1, 2, 3})
		})
	})

	Convey("Given unsorted scores", t, func() {
		in := []entry{{1, 50}, {2, 80}, {3, 80}, {4, 95}, {5, 50}, {6, 10}}

		Convey("They are ordered descending with competition ranks", func() {
			out := scoring.Rank(in, byScore)
			So(ids(out), ShouldResemble, []int{4, 2, 3, 1, 5, 6})
			So(ranks(out), ShouldResemble, []int{1, 2, 2, 4, 4, 6})
		})

		Convey("The input is left untouched", func() {
			scoring.Rank(in, byScore)
			So(in[0], ShouldResemble, entry{1, 50})
		})
	})

	Convey("Given all equal scores", t, func() {
		out := scoring.Rank([]entry{{3, 0}, {1, 0}, {2, 0}}, byScore)
		So(ranks(out), ShouldResemble, []int{1, 1, 1})
		So(ids(out), ShouldResemble, []int{3, 1, 2})
	})

	Convey("Given scores that differ only below the displayed precision", t, func() {
		out := scoring.Rank([]entry{{1, 74.00000000000001}, {2, 74}, {3, 73.99}}, byScore)
		So(ranks(out), ShouldResemble, []int{1, 1, 3})
		So(ids(out), ShouldResemble, []int{1, 2, 3})
	})

	Convey("Given no scores", t, func() {
		So(scoring.Rank(nil, byScore), ShouldBeEmpty)
	})
}
