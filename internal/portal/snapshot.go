package portal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/faizmokh/pulse/internal/wellbeing"
)

// Snapshot is the result of loading every dashboard source once. Each
// source keeps its own error so one failure never hides the others.
type Snapshot struct {
	Month    wellbeing.Month
	User     *wellbeing.User
	UserErr  error
	Test     *wellbeing.BurnoutTestResult
	TestErr  error
	Diary    []wellbeing.MoodEntry
	DiaryErr error
}

// LoadDashboard fetches the user, latest test and diary for month in parallel.
func LoadDashboard(ctx context.Context, f Fetcher, s Session, month wellbeing.Month) Snapshot {
	snap := Snapshot{Month: month}

	// Goroutines always return nil: each source's error is stored on the
	// snapshot so one failure never cancels the other fetches.
	var g errgroup.Group
	g.Go(func() error {
		snap.User, snap.UserErr = f.CurrentUser(ctx, s)
		return nil
	})
	g.Go(func() error {
		snap.Test, snap.TestErr = f.LatestTest(ctx, s)
		return nil
	})
	g.Go(func() error {
		snap.Diary, snap.DiaryErr = f.Diary(ctx, s, month)
		return nil
	})
	g.Wait()

	return snap
}

// Board replays the snapshot into a dashboard board.
func (s Snapshot) Board() *wellbeing.Board {
	board := wellbeing.NewBoard(s.Month)
	board.BeginUser()
	board.BeginTest()
	board.GoTo(s.Month)
	board.ResolveUser(s.User, s.UserErr)
	board.ResolveTest(s.Test, s.TestErr)
	board.ResolveDiary(s.Month, s.Diary, s.DiaryErr)
	return board
}
