package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/pulse/internal/portal"
	"github.com/faizmokh/pulse/internal/wellbeing"
)

// Model owns Bubble Tea state for the dashboard.
type Model struct {
	ctx     context.Context
	fetcher portal.Fetcher
	session portal.Session
	now     func() time.Time

	board    *wellbeing.Board
	spinner  spinner.Model
	spinning bool
	help     help.Model
	keys     keyMap

	statusLine string
}

type userLoadedMsg struct {
	user *wellbeing.User
	err  error
}

type testLoadedMsg struct {
	test *wellbeing.BurnoutTestResult
	err  error
}

type diaryLoadedMsg struct {
	req     wellbeing.DiaryRequest
	entries []wellbeing.MoodEntry
	err     error
}

// NewModel seeds the dashboard on month with every source loading.
func NewModel(ctx context.Context, fetcher portal.Fetcher, session portal.Session, month wellbeing.Month) Model {
	board := wellbeing.NewBoard(month)
	board.BeginUser()
	board.BeginTest()
	board.GoTo(month)

	return Model{
		ctx:        ctx,
		fetcher:    fetcher,
		session:    session,
		now:        time.Now,
		board:      board,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		spinning:   true,
		help:       help.New(),
		keys:       defaultKeyMap(),
		statusLine: "Loading dashboard...",
	}
}

// Init fetches all sources in parallel.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadUserCmd(),
		m.loadTestCmd(),
		m.loadDiaryCmd(m.board.DiaryRequest()),
	)
}

// Update wires state transitions from key presses and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case userLoadedMsg:
		m.board.ResolveUser(msg.user, msg.err)
		return m.afterResolve(), nil
	case testLoadedMsg:
		m.board.ResolveTest(msg.test, msg.err)
		return m.afterResolve(), nil
	case diaryLoadedMsg:
		// Ignore results of superseded requests.
		if !m.board.ResolveDiaryRequest(msg.req, msg.entries, msg.err) {
			return m, nil
		}
		return m.afterResolve(), nil
	case spinner.TickMsg:
		if !m.loading() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		return m.gotoMonth(m.board.Month().Prev())
	case key.Matches(msg, m.keys.Next):
		return m.gotoMonth(m.board.Month().Next())
	case key.Matches(msg, m.keys.Today):
		return m.gotoMonth(wellbeing.MonthOf(m.now()))
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	}
	return m, nil
}

func (m Model) gotoMonth(month wellbeing.Month) (tea.Model, tea.Cmd) {
	m.board.GoTo(month)
	m.statusLine = fmt.Sprintf("Loading %s...", month.Title())
	return m, tea.Batch(m.startSpinner(), m.loadDiaryCmd(m.board.DiaryRequest()))
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.board.BeginUser()
	m.board.BeginTest()
	m.board.GoTo(m.board.Month())
	m.statusLine = "Refreshing..."
	return m, tea.Batch(
		m.startSpinner(),
		m.loadUserCmd(),
		m.loadTestCmd(),
		m.loadDiaryCmd(m.board.DiaryRequest()),
	)
}

func (m *Model) startSpinner() tea.Cmd {
	if m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m Model) afterResolve() Model {
	if !m.loading() {
		m.statusLine = ""
	}
	return m
}

func (m Model) loading() bool {
	return m.board.User().Loading() || m.board.Test().Loading() || m.board.Diary().Loading()
}

func (m Model) loadUserCmd() tea.Cmd {
	fetcher, ctx, session := m.fetcher, m.ctx, m.session
	return func() tea.Msg {
		user, err := fetcher.CurrentUser(ctx, session)
		return userLoadedMsg{user: user, err: err}
	}
}

func (m Model) loadTestCmd() tea.Cmd {
	fetcher, ctx, session := m.fetcher, m.ctx, m.session
	return func() tea.Msg {
		test, err := fetcher.LatestTest(ctx, session)
		return testLoadedMsg{test: test, err: err}
	}
}

func (m Model) loadDiaryCmd(req wellbeing.DiaryRequest) tea.Cmd {
	fetcher, ctx, session := m.fetcher, m.ctx, m.session
	return func() tea.Msg {
		entries, err := fetcher.Diary(ctx, session, req.Month)
		return diaryLoadedMsg{req: req, entries: entries, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	view := m.board.View()
	var b strings.Builder

	title := "Wellbeing dashboard"
	if user := m.board.User().Data; user != nil && strings.TrimSpace(user.FirstName+user.LastName) != "" {
		title += " · " + strings.TrimSpace(user.FirstName+" "+user.LastName)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(card("Burnout level", m.levelBody(view)))
	b.WriteByte('\n')
	b.WriteString(card("Latest test", m.testBody(view)))
	b.WriteByte('\n')
	b.WriteString(card("Test scores", m.domainsBody(view)))
	b.WriteByte('\n')
	b.WriteString(card(m.diaryTitle(), m.diaryBody(view)))
	b.WriteByte('\n')
	b.WriteString(card("Recommendations", RenderRecommendation(view.Recommendation)))
	b.WriteString("\n")

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')
	return b.String()
}

func (m Model) levelBody(view wellbeing.View) string {
	if view.EffectiveScore == nil && (m.board.User().Loading() || m.board.Test().Loading()) {
		return m.spinner.View() + " Loading..."
	}
	if user := m.board.User(); user.State == wellbeing.StateFailed {
		return RenderLevel(view) + "\n" + failureLine("Could not load your profile", user.Err)
	}
	return RenderLevel(view)
}

func (m Model) testBody(view wellbeing.View) string {
	src := m.board.Test()
	switch src.State {
	case wellbeing.StateLoading:
		return m.spinner.View() + " Loading test data..."
	case wellbeing.StateFailed:
		failure := failureLine("Could not load test data", src.Err)
		if src.Data == nil {
			return failure
		}
		return RenderTest(view.LatestTest) + "\n" + failure
	default:
		return RenderTest(view.LatestTest)
	}
}

func (m Model) domainsBody(view wellbeing.View) string {
	if m.board.Test().Loading() {
		return m.spinner.View() + " Loading scores..."
	}
	return RenderDomains(view.Domains)
}

func (m Model) diaryTitle() string {
	return "‹ Mood diary · " + m.board.Month().Title() + " ›"
}

func (m Model) diaryBody(view wellbeing.View) string {
	src := m.board.Diary()
	switch src.State {
	case wellbeing.StateLoading:
		return m.spinner.View() + " Loading diary..."
	case wellbeing.StateFailed:
		failure := failureLine("Could not load the mood diary", src.Err)
		if src.Data == nil {
			return failure
		}
		return RenderCalendar(view.Grid) + "\n\n" + RenderPercentages(view.Percentages) + "\n" + failure
	}

	body := RenderCalendar(view.Grid) + "\n\n" + RenderPercentages(view.Percentages)
	if src.State == wellbeing.StateNotFound {
		body += "\n" + mutedStyle.Render("No diary entries for this month yet.")
	}
	return body
}

func failureLine(prefix string, err error) string {
	line := prefix
	if err != nil {
		line += ": " + err.Error()
	}
	if wellbeing.Retryable(err) {
		line += " (press r to retry)"
	}
	return errorStyle.Render(line)
}
