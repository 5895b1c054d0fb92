package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given a metrics set on a private registry", t, func() {
		m := New(prometheus.NewRegistry())

		Convey("Leaderboard builds are counted per view, scope and result", func() {
			m.ObserveLeaderboard("overall", "solo", ResultOK, 3*time.Millisecond)
			m.ObserveLeaderboard("overall", "solo", ResultOK, time.Millisecond)
			m.ObserveLeaderboard("overall", "pair:male", ResultNotConfigured, time.Millisecond)

			So(testutil.ToFloat64(m.leaderboardBuilds.WithLabelValues("overall", "solo", ResultOK)), ShouldEqual, 2.0)
			So(testutil.ToFloat64(m.leaderboardBuilds.WithLabelValues("overall", "pair:male", ResultNotConfigured)), ShouldEqual, 1.0)
			So(testutil.CollectAndCount(m.leaderboardDuration), ShouldEqual, 1)
		})

		Convey("Saved score rows are summed", func() {
			m.ScoresSaved("solo", 2)
			m.ScoresSaved("solo", 3)
			m.WeightsSaved("pair:female")

			So(testutil.ToFloat64(m.scoresSaved.WithLabelValues("solo")), ShouldEqual, 5.0)
			So(testutil.ToFloat64(m.weightSaves.WithLabelValues("pair:female")), ShouldEqual, 1.0)
		})

		Convey("Unmatched routes share one label", func() {
			m.ObserveHTTP("", http.MethodGet, http.StatusNotFound, time.Millisecond)
			So(testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", http.MethodGet, "404")), ShouldEqual, 1.0)
		})

		Convey("The handler exposes the registry", func() {
			m.ScoresSaved("solo", 1)
			w := httptest.NewRecorder()
			m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			So(w.Code, ShouldEqual, http.StatusOK)
			So(strings.Contains(w.Body.String(), "pageant_scores_saved_total"), ShouldBeTrue)
			So(strings.Contains(w.Body.String(), "go_goroutines"), ShouldBeFalse)
		})
	})
}
