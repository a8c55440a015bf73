package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/files"
	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/ui"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

func resolveMonth(monthFlag string, now time.Time) (wellbeing.Month, error) {
	if monthFlag == "" {
		return wellbeing.MonthOf(now), nil
	}
	month, err := wellbeing.ParseMonth(monthFlag)
	if err != nil {
		return wellbeing.Month{}, fmt.Errorf("parse month: %w", err)
	}
	return month, nil
}

// session resolves the token from the --token flag, then PULSE_TOKEN, then
// the saved login.
func (a *app) session() (portal.Session, error) {
	token := strings.TrimSpace(a.token)
	if token == "" {
		token = strings.TrimSpace(a.Config.Token)
	}
	if token == "" && a.Files != nil {
		saved, err := a.Files.LoadToken()
		if err != nil && !errors.Is(err, files.ErrNoToken) {
			return portal.Session{}, err
		}
		token = saved
	}

	session, err := portal.NewSession(token)
	if err != nil {
		return portal.Session{}, fmt.Errorf("%w: run `pulse login --token <token>` or set PULSE_TOKEN", err)
	}
	if session.Expired(a.Now()) {
		return portal.Session{}, fmt.Errorf("%w: run `pulse login --token <token>` again", portal.ErrSessionExpired)
	}
	return session, nil
}

// printProblems writes one line per source that failed to load.
func printProblems(w io.Writer, board *wellbeing.Board) {
	problem := func(name string, state wellbeing.State, err error) {
		if state != wellbeing.StateFailed {
			return
		}
		hint := ""
		if wellbeing.Retryable(err) {
			hint = " (try again later)"
		}
		fmt.Fprintf(w, "warning: could not load %s: %v%s\n", name, err, hint)
	}
	problem("user", board.User().State, board.User().Err)
	problem("latest test", board.Test().State, board.Test().Err)
	problem("mood diary", board.Diary().State, board.Diary().Err)
}

func printCalendar(cmd *cobra.Command, board *wellbeing.Board) {
	out := cmd.OutOrStdout()
	view := board.View()
	fmt.Fprintln(out, board.Month().Title())
	fmt.Fprintln(out, ui.RenderCalendar(view.Grid))
	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.RenderPercentages(view.Percentages))
	if board.Diary().State == wellbeing.StateNotFound {
		fmt.Fprintln(out, "(no diary entries)")
	}
	printProblems(cmd.ErrOrStderr(), board)
}
