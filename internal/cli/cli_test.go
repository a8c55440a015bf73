package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/faizmokh/pulse/internal/files"
	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

var fixedNow = time.Date(2025, time.November, 19, 10, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	mu       sync.Mutex
	tokens   []string
	months   []wellbeing.Month
	user     *wellbeing.User
	test     *wellbeing.BurnoutTestResult
	testErr  error
	diary    []wellbeing.MoodEntry
	diaryErr error
}

func (f *fakeFetcher) record(s portal.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, s.Token)
}

func (f *fakeFetcher) CurrentUser(_ context.Context, s portal.Session) (*wellbeing.User, error) {
	f.record(s)
	return f.user, nil
}

func (f *fakeFetcher) LatestTest(_ context.Context, s portal.Session) (*wellbeing.BurnoutTestResult, error) {
	f.record(s)
	return f.test, f.testErr
}

func (f *fakeFetcher) Diary(_ context.Context, s portal.Session, month wellbeing.Month) ([]wellbeing.MoodEntry, error) {
	f.record(s)
	f.mu.Lock()
	f.months = append(f.months, month)
	f.mu.Unlock()
	return f.diary, f.diaryErr
}

func newTestDeps(t *testing.T, fetcher portal.Fetcher) Deps {
	t.Helper()
	return Deps{
		Files:   newTempManager(t),
		Fetcher: fetcher,
		Now:     func() time.Time { return fixedNow },
	}
}

func runRoot(t *testing.T, deps Deps, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand(context.Background(), deps)
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func executeCommand(t *testing.T, deps Deps, args ...string) string {
	t.Helper()
	out, err := runRoot(t, deps, args...)
	if err != nil {
		t.Fatalf("Execute(%q): %v\n%s", args, err, out)
	}
	return out
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing substring %q", output, want)
	}
}

func assertNotContains(t *testing.T, output, want string) {
	t.Helper()
	if strings.Contains(output, want) {
		t.Fatalf("output %q unexpectedly contained substring %q", output, want)
	}
}

func newTempManager(t *testing.T) *files.Manager {
	t.Helper()
	mgr, err := files.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return mgr
}

func signToken(t *testing.T, subject string, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}
	return signed
}
