package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/server"
	"github.com/faizmokh/pulse/internal/ui"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

func newDashboardCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		monthFlag string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the burnout level, latest test and mood diary once",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonth(monthFlag, a.Now())
			if err != nil {
				return err
			}
			session, err := a.session()
			if err != nil {
				return err
			}

			board := portal.LoadDashboard(ctx, a.Fetcher, session, month).Board()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(server.NewReport(board)); err != nil {
					return fmt.Errorf("encode dashboard: %w", err)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderView(board.View()))
			printProblems(cmd.ErrOrStderr(), board)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Diary month (YYYY-MM), defaults to the current month")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the view as JSON")
	return cmd
}

func newCalendarCommand(ctx context.Context, a *app) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the mood diary calendar of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonth(monthFlag, a.Now())
			if err != nil {
				return err
			}
			return showMonth(ctx, cmd, a, month)
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Month to show (YYYY-MM), defaults to the current month")
	return cmd
}

func newPrevCommand(ctx context.Context, a *app) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "prev",
		Short: "Print the mood diary calendar of the previous month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonth(monthFlag, a.Now())
			if err != nil {
				return err
			}
			return showMonth(ctx, cmd, a, month.Prev())
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Reference month (YYYY-MM), defaults to the current month")
	return cmd
}

func newNextCommand(ctx context.Context, a *app) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the mood diary calendar of the next month",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := resolveMonth(monthFlag, a.Now())
			if err != nil {
				return err
			}
			return showMonth(ctx, cmd, a, month.Next())
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "Reference month (YYYY-MM), defaults to the current month")
	return cmd
}

func showMonth(ctx context.Context, cmd *cobra.Command, a *app, month wellbeing.Month) error {
	session, err := a.session()
	if err != nil {
		return err
	}

	board := wellbeing.NewBoard(month)
	board.GoTo(month)
	entries, err := a.Fetcher.Diary(ctx, session, month)
	board.ResolveDiary(month, entries, err)

	printCalendar(cmd, board)
	return nil
}
