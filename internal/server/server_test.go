package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

type stubFetcher struct {
	test  *wellbeing.BurnoutTestResult
	diary []wellbeing.MoodEntry
}

func (f *stubFetcher) CurrentUser(context.Context, portal.Session) (*wellbeing.User, error) {
	return &wellbeing.User{ID: 1}, nil
}

func (f *stubFetcher) LatestTest(context.Context, portal.Session) (*wellbeing.BurnoutTestResult, error) {
	if f.test == nil {
		return nil, wellbeing.ErrNotFound
	}
	return f.test, nil
}

func (f *stubFetcher) Diary(context.Context, portal.Session, wellbeing.Month) ([]wellbeing.MoodEntry, error) {
	return f.diary, nil
}

func serve(t *testing.T, h *Handler, target, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestDashboardRequiresSession(t *testing.T) {
	rec := serve(t, NewHandler(&stubFetcher{}), "/api/dashboard", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestDashboardRequiresBearerScheme(t *testing.T) {
	for _, auth := range []string{"Basic dXNlcjpwYXNz", "token-without-scheme", "Bearer ", "Token abc"} {
		rec := serve(t, NewHandler(&stubFetcher{}), "/api/dashboard", auth)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("Authorization %q: status = %d, want 401", auth, rec.Code)
		}
	}

	rec := serve(t, NewHandler(&stubFetcher{}), "/api/dashboard", "bearer abc")
	if rec.Code != http.StatusOK {
		t.Fatalf("lowercase bearer scheme: status = %d, want 200", rec.Code)
	}
}

func TestDashboardRejectsBadMonth(t *testing.T) {
	rec := serve(t, NewHandler(&stubFetcher{}), "/api/dashboard?month=11-2025", "Bearer token")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDashboardReturnsViewContract(t *testing.T) {
	f := &stubFetcher{
		test:  &wellbeing.BurnoutTestResult{TotalScore: 20, PhysicalScore: 4, EmotionalScore: 8, CognitiveScore: 8},
		diary: []wellbeing.MoodEntry{{Date: "2025-12-24", Mood: 3}},
	}
	rec := serve(t, NewHandler(f), "/api/dashboard?month=2025-12", "Bearer token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	var body struct {
		EffectiveScore *int   `json:"effective_score"`
		Level          string `json:"level"`
		Grid           struct {
			Cells []map[string]int `json:"cells"`
		} `json:"grid"`
		Percentages map[string]int `json:"bucket_percentages"`
		Navigation  struct {
			Year       int `json:"year"`
			MonthIndex int `json:"month_index"`
			Next       struct {
				Year  int `json:"year"`
				Month int `json:"month"`
			} `json:"next"`
		} `json:"navigation"`
		Test struct {
			State string `json:"state"`
		} `json:"test_status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if body.EffectiveScore == nil || *body.EffectiveScore != 20 || body.Level != "medium" {
		t.Fatalf("score/level = %v/%q", body.EffectiveScore, body.Level)
	}
	if len(body.Grid.Cells) != wellbeing.GridCells {
		t.Fatalf("cells = %d, want %d", len(body.Grid.Cells), wellbeing.GridCells)
	}
	if body.Percentages["yellow"] != 3 || body.Percentages["none"] != 97 {
		t.Fatalf("percentages = %v", body.Percentages)
	}
	if body.Navigation.Year != 2025 || body.Navigation.MonthIndex != 11 {
		t.Fatalf("navigation = %+v", body.Navigation)
	}
	if body.Navigation.Next.Year != 2026 || body.Navigation.Next.Month != 1 {
		t.Fatalf("next = %+v, want 2026-01", body.Navigation.Next)
	}
	if body.Test.State != "loaded" {
		t.Fatalf("test state = %q, want loaded", body.Test.State)
	}
}

func TestDashboardNoTestIsNotAnError(t *testing.T) {
	h := NewHandler(&stubFetcher{})
	h.now = func() time.Time { return time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC) }

	rec := serve(t, h, "/api/dashboard", "Bearer token")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body struct {
		Month          string `json:"month"`
		EffectiveScore *int   `json:"effective_score"`
		Domains        any    `json:"domain_breakdown"`
		Test           struct {
			State string `json:"state"`
			Error string `json:"error"`
		} `json:"test_status"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if body.Month != "2025-11" {
		t.Fatalf("month = %q, want 2025-11", body.Month)
	}
	if body.EffectiveScore != nil || body.Domains != nil {
		t.Fatalf("expected no score and no domains, got %v / %v", body.EffectiveScore, body.Domains)
	}
	if body.Test.State != "not_found" || body.Test.Error != "" {
		t.Fatalf("test status = %+v, want clean not_found", body.Test)
	}
}

func TestHealth(t *testing.T) {
	rec := serve(t, NewHandler(&stubFetcher{}), "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
