package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

func TestDashboardPrintsView(t *testing.T) {
	score := 52
	f := &fakeFetcher{
		user: &wellbeing.User{ID: 1, BurnoutScore: &score},
		test: &wellbeing.BurnoutTestResult{TotalScore: 20, PhysicalScore: 4, EmotionalScore: 8, CognitiveScore: 8, CreatedAt: "2025-10-01T08:00:00Z"},
		diary: []wellbeing.MoodEntry{
			{Date: "2025-11-03", Mood: 5},
			{Date: "2025-11-04", Mood: 1},
		},
	}

	out := executeCommand(t, newTestDeps(t, f), "dashboard", "--token", "abc")
	assertContains(t, out, "52 points")
	assertContains(t, out, "Very high burnout")
	assertContains(t, out, "01 Oct 2025")
	assertContains(t, out, "November 2025")
	assertNotContains(t, out, "warning:")

	if len(f.months) != 1 || f.months[0] != (wellbeing.Month{Year: 2025, Month: time.November}) {
		t.Fatalf("diary months = %v, want current month", f.months)
	}
}

func TestDashboardReportsFailedSources(t *testing.T) {
	f := &fakeFetcher{
		user:     &wellbeing.User{ID: 1},
		testErr:  &wellbeing.FetchError{Op: "latest test", StatusCode: http.StatusBadGateway},
		diaryErr: wellbeing.ErrNotFound,
	}

	out := executeCommand(t, newTestDeps(t, f), "dashboard", "--token", "abc", "--month", "2024-02")
	assertContains(t, out, "warning: could not load latest test")
	assertContains(t, out, "try again later")
	assertNotContains(t, out, "could not load mood diary")
	assertContains(t, out, "February 2024")
}

func TestDashboardJSON(t *testing.T) {
	f := &fakeFetcher{
		user:  &wellbeing.User{ID: 1},
		test:  &wellbeing.BurnoutTestResult{TotalScore: 10},
		diary: []wellbeing.MoodEntry{{Date: "2025-11-01", Mood: 3}},
	}

	out := executeCommand(t, newTestDeps(t, f), "dashboard", "--token", "abc", "--json")

	var report struct {
		Month          string `json:"month"`
		EffectiveScore *int   `json:"effective_score"`
		Level          string `json:"level"`
		Navigation     struct {
			MonthIndex int `json:"month_index"`
		} `json:"navigation"`
		Diary struct {
			State string `json:"state"`
		} `json:"diary_status"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("json.Unmarshal: %v\n%s", err, out)
	}
	if report.Month != "2025-11" {
		t.Fatalf("month = %q, want 2025-11", report.Month)
	}
	if report.EffectiveScore == nil || *report.EffectiveScore != 10 {
		t.Fatalf("effective score = %v, want 10", report.EffectiveScore)
	}
	if report.Level != "low" {
		t.Fatalf("level = %q, want low", report.Level)
	}
	if report.Navigation.MonthIndex != 10 {
		t.Fatalf("month index = %d, want 10", report.Navigation.MonthIndex)
	}
	if report.Diary.State != "loaded" {
		t.Fatalf("diary state = %q, want loaded", report.Diary.State)
	}
}

func TestDashboardRejectsBadMonth(t *testing.T) {
	_, err := runRoot(t, newTestDeps(t, &fakeFetcher{}), "dashboard", "--token", "abc", "--month", "2025-13")
	if err == nil {
		t.Fatalf("expected error for invalid month")
	}
}

func TestCalendarNavigationCommands(t *testing.T) {
	cases := []struct {
		args []string
		want wellbeing.Month
	}{
		{args: []string{"calendar", "--month", "2025-03"}, want: wellbeing.Month{Year: 2025, Month: time.March}},
		{args: []string{"prev", "--month", "2025-01"}, want: wellbeing.Month{Year: 2024, Month: time.December}},
		{args: []string{"next", "--month", "2025-12"}, want: wellbeing.Month{Year: 2026, Month: time.January}},
		{args: []string{"next"}, want: wellbeing.Month{Year: 2025, Month: time.December}},
	}

	for _, tc := range cases {
		f := &fakeFetcher{diaryErr: wellbeing.ErrNotFound}
		out := executeCommand(t, newTestDeps(t, f), append(tc.args, "--token", "abc")...)
		if len(f.months) != 1 || f.months[0] != tc.want {
			t.Fatalf("%v fetched %v, want %v", tc.args, f.months, tc.want)
		}
		assertContains(t, out, tc.want.Title())
		assertContains(t, out, "(no diary entries)")
		assertContains(t, out, "none 100%")
	}
}

func TestDashboardAgainstPortalAPI(t *testing.T) {
	token := signToken(t, "user-7", fixedNow.Add(time.Hour))

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Header.Get("Authorization") != "Bearer "+token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	api.HandleFunc("/users/me", func(w http.ResponseWriter, req *http.Request) {
		writeTestJSON(w, wellbeing.User{ID: 7, FirstName: "Ana"})
	})
	api.HandleFunc("/burnout-tests/last", func(w http.ResponseWriter, req *http.Request) {
		http.NotFound(w, req)
	})
	api.HandleFunc("/diary", func(w http.ResponseWriter, req *http.Request) {
		month, _ := strconv.Atoi(req.URL.Query().Get("month"))
		if req.URL.Query().Get("year") != "2025" || month != 11 {
			http.NotFound(w, req)
			return
		}
		writeTestJSON(w, []wellbeing.MoodEntry{{ID: 1, Date: "2025-11-02", Mood: 2}})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := portal.NewClient(srv.URL+"/api", portal.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	deps := newTestDeps(t, client)
	deps.Config.Token = token

	out := executeCommand(t, deps, "dashboard")
	assertContains(t, out, "not taken the burnout test")
	assertContains(t, out, "Take the burnout survey")
	assertNotContains(t, out, "warning:")
}

func writeTestJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
