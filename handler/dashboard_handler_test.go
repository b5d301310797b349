package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"main/model"

	"github.com/gin-gonic/gin"
)

func dashboardRouter(calendar CalendarFetcher, stats StatsFetcher) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(Templates())
	router.GET("/", NewDashboardHandler("octocat", calendar, stats, nil).GetDashboard)
	return router
}

func getDashboard(router *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestDashboardRendersBothSections(t *testing.T) {
	router := dashboardRouter(
		&stubCalendarFetcher{calendar: testCalendar()},
		&stubStatsFetcher{stats: testStats()},
	)

	w := getDashboard(router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	for _, want := range []string{
		"octocat",
		"7 contributions in the last year",
		"5 contributions on Monday, June 2, 2025", // tooltip
		"level-2",
		"Jun",
		">Go<",
		"1 hr",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestDashboardActiveRange(t *testing.T) {
	stats := &stubStatsFetcher{stats: testStats()}
	router := dashboardRouter(&stubCalendarFetcher{calendar: testCalendar()}, stats)

	w := getDashboard(router, "/?range=last_30_days")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := stats.lastRange.Load(); got != model.RangeLast30Days {
		t.Errorf("fetched range = %v, want last_30_days", got)
	}
	if !strings.Contains(w.Body.String(), `class="range active" href="/?range=last_30_days"`) {
		t.Error("expected last_30_days to be the active range option")
	}
}

func TestDashboardPartialFailure(t *testing.T) {
	router := dashboardRouter(
		&stubCalendarFetcher{err: model.UpstreamError(errTest)},
		&stubStatsFetcher{stats: testStats()},
	)

	w := getDashboard(router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (a broken source must not fail the page)", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Unable to load contribution data.") {
		t.Error("expected the contributions error message")
	}
	if !strings.Contains(body, ">Go<") {
		t.Error("the coding-time section must still render when only the calendar fails")
	}
}

func TestDashboardBothSourcesFail(t *testing.T) {
	router := dashboardRouter(
		&stubCalendarFetcher{err: model.UpstreamError(errTest)},
		&stubStatsFetcher{err: model.NetworkError(errTest)},
	)

	w := getDashboard(router, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Unable to load contribution data.") ||
		!strings.Contains(body, "Unable to load coding activity.") {
		t.Error("expected both error messages")
	}
}
