package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/pulse/internal/wellbeing"
)

const barWidth = 20

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ca3af"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	cellStyle    = lipgloss.NewStyle().Width(4).Align(lipgloss.Center)
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#d1d5db")).
	Padding(0, 1)

var levelColors = map[wellbeing.Level]lipgloss.Color{
	wellbeing.LevelLow:      lipgloss.Color("#16a34a"),
	wellbeing.LevelMedium:   lipgloss.Color("#ca8a04"),
	wellbeing.LevelHigh:     lipgloss.Color("#ea580c"),
	wellbeing.LevelVeryHigh: lipgloss.Color("#dc2626"),
}

type bucketColor struct {
	bg, fg lipgloss.Color
}

var bucketColors = map[wellbeing.Bucket]bucketColor{
	wellbeing.BucketRed:    {bg: "#fecaca", fg: "#b91c1c"},
	wellbeing.BucketYellow: {bg: "#fef08a", fg: "#a16207"},
	wellbeing.BucketGreen:  {bg: "#bbf7d0", fg: "#15803d"},
	wellbeing.BucketNone:   {bg: "#f3f4f6", fg: "#9ca3af"},
}

func levelStyle(level wellbeing.Level) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[level])
}

func bucketStyle(b wellbeing.Bucket) lipgloss.Style {
	c := bucketColors[b]
	return cellStyle.Background(c.bg).Foreground(c.fg)
}

func pillStyle(b wellbeing.Bucket) lipgloss.Style {
	c := bucketColors[b]
	return lipgloss.NewStyle().Bold(true).Padding(0, 1).Background(c.bg).Foreground(c.fg)
}

// RenderLevel renders the effective burnout score and its label.
func RenderLevel(view wellbeing.View) string {
	if view.EffectiveScore == nil || view.Level == nil {
		return mutedStyle.Render("No data")
	}
	return levelStyle(*view.Level).Render(
		fmt.Sprintf("%d points · %s", *view.EffectiveScore, view.Level.Label()),
	)
}

// RenderTest renders the summary of the latest test.
func RenderTest(test *wellbeing.BurnoutTestResult) string {
	if test == nil {
		return "You have not taken the burnout test yet.\n" +
			mutedStyle.Render("Take the survey to get personal recommendations.")
	}
	level := wellbeing.ClassifyTotal(test.TotalScore)
	lines := []string{
		fmt.Sprintf("Taken on: %s", formatTestDate(test.CreatedAt)),
		fmt.Sprintf("Total: %d points", test.TotalScore),
		levelStyle(level).Render(level.Label()),
	}
	return strings.Join(lines, "\n")
}

// RenderDomains renders one bar per domain of the breakdown.
func RenderDomains(b *wellbeing.DomainBreakdown) string {
	if b == nil {
		return "No test results yet. Take the survey to see your physical,\n" +
			"emotional and cognitive scores."
	}
	var rows []string
	for _, row := range b.Rows() {
		filled := row.Fill * barWidth / 100
		bar := levelStyle(row.Level).Render(strings.Repeat("█", filled)) +
			mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf("%-10s %2d/%-2d %s %s",
			domainTitle(row.Domain), row.Score, row.Max, bar, row.Level.ShortLabel()))
	}
	return strings.Join(rows, "\n")
}

// RenderCalendar renders the month grid, Monday first, with colored days.
func RenderCalendar(grid wellbeing.MonthGrid) string {
	var b strings.Builder
	header := make([]string, 0, len(weekdayHeader))
	for _, day := range weekdayHeader {
		header = append(header, mutedStyle.Inherit(cellStyle).Render(day))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	for _, week := range grid.Weeks() {
		cells := make([]string, 0, len(week))
		for _, cell := range week {
			if cell.Empty() {
				cells = append(cells, cellStyle.Render(""))
				continue
			}
			cells = append(cells, bucketStyle(cell.Bucket()).Render(fmt.Sprintf("%d", cell.Day)))
		}
		b.WriteByte('\n')
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return b.String()
}

// RenderPercentages renders the color shares of the month.
func RenderPercentages(p wellbeing.Percentages) string {
	parts := []string{
		pillStyle(wellbeing.BucketGreen).Render(fmt.Sprintf("green %d%%", p.Green)),
		pillStyle(wellbeing.BucketYellow).Render(fmt.Sprintf("yellow %d%%", p.Yellow)),
		pillStyle(wellbeing.BucketRed).Render(fmt.Sprintf("red %d%%", p.Red)),
		pillStyle(wellbeing.BucketNone).Render(fmt.Sprintf("none %d%%", p.None)),
	}
	return strings.Join(parts, " ")
}

// RenderRecommendation renders the headline and tips.
func RenderRecommendation(rec wellbeing.Recommendation) string {
	var b strings.Builder
	b.WriteString(rec.Headline)
	for _, tip := range rec.Tips {
		b.WriteString("\n  • ")
		b.WriteString(tip)
	}
	return b.String()
}

// RenderView renders a fully loaded view without any fetch state. It is used
// by one-shot commands.
func RenderView(view wellbeing.View) string {
	month := wellbeing.Month{Year: view.Grid.Year, Month: view.Grid.Month}
	sections := []string{
		card("Burnout level", RenderLevel(view)),
		card("Latest test", RenderTest(view.LatestTest)),
		card("Test scores", RenderDomains(view.Domains)),
		card("Mood diary · "+month.Title(), RenderCalendar(view.Grid)+"\n\n"+RenderPercentages(view.Percentages)),
		card("Recommendations", RenderRecommendation(view.Recommendation)),
	}
	return strings.Join(sections, "\n")
}

func card(title, body string) string {
	return cardStyle.Render(headingStyle.Render(title) + "\n" + body)
}

func domainTitle(d wellbeing.Domain) string {
	switch d {
	case wellbeing.DomainPhysical:
		return "Physical"
	case wellbeing.DomainEmotional:
		return "Emotional"
	case wellbeing.DomainCognitive:
		return "Cognitive"
	default:
		return string(d)
	}
}

func formatTestDate(value string) string {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.Format("02 Jan 2006")
	}
	if len(value) >= 10 {
		if parsed, err := time.Parse("2006-01-02", value[:10]); err == nil {
			return parsed.Format("02 Jan 2006")
		}
	}
	return value
}
