package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/fastlane/internal/api/response"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF7F")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5F87AF")).
			Padding(0, 1)
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a plain status line in text mode
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		return
	}
	_, _ = fmt.Fprintln(o.w, msg)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Game:
		o.printGame(v)
	case response.TurnSummary:
		_, _ = fmt.Fprintln(o.w, renderSummary(v))
	case response.Catalog:
		o.printCatalog(v)
	case response.HealthResponse:
		_, _ = fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

func (o *Output) printGame(g response.Game) {
	header := fmt.Sprintf("Week %d", g.Turn)
	if g.GameOver {
		header += " (game over)"
	}
	_, _ = fmt.Fprintln(o.w, titleStyle.Render(header))

	cards := make([]string, 0, len(g.Players))
	for i, p := range g.Players {
		cards = append(cards, renderPlayer(p, i == g.CurrentPlayerIndex && !g.GameOver))
	}
	_, _ = fmt.Fprintln(o.w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	if g.AIThinking {
		_, _ = fmt.Fprintln(o.w, labelStyle.Render("The computer is thinking..."))
	}
	if g.Winner != nil {
		_, _ = fmt.Fprintf(o.w, "Winner: %s\n", playerName(g, *g.Winner))
	}
	if g.PendingSummary != nil {
		_, _ = fmt.Fprintln(o.w, renderSummary(*g.PendingSummary))
		_, _ = fmt.Fprintln(o.w, labelStyle.Render(`Run "fastlane ack" to continue.`))
	}

	if len(g.Log) > 0 {
		lines := make([]string, 0, len(g.Log)+1)
		lines = append(lines, titleStyle.Render("Log"))
		for _, e := range g.Log {
			line := fmt.Sprintf("[%d] %s", e.Turn, e.Message)
			if e.Category == "error" {
				line = errorStyle.Render(line)
			}
			lines = append(lines, line)
		}
		_, _ = fmt.Fprintln(o.w, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
}

func renderPlayer(p response.Player, current bool) string {
	name := p.Name
	if p.IsAI {
		name += " (computer)"
	}
	if current {
		name = currentStyle.Render("> " + name)
	} else {
		name = titleStyle.Render(name)
	}

	job := p.JobID
	if job == "" {
		job = "unemployed"
	}
	course := p.EnrolledCourse
	if course == "" {
		course = "none"
	}

	rows := []string{
		name,
		row("Location", p.Location),
		row("Time", fmt.Sprintf("%dh", p.Time)),
		row("Cash", fmt.Sprintf("$%d", p.Cash)),
		row("Savings", fmt.Sprintf("$%d", p.Savings)),
		row("Loan", fmt.Sprintf("$%d", p.Loan)),
		row("Happiness", fmt.Sprintf("%d", p.Happiness)),
		row("Hunger", fmt.Sprintf("%d", p.Hunger)),
		row("Education", fmt.Sprintf("%d (%d/%d credits)", p.EducationLevel, p.EducationCredits, p.EducationCreditsGoal)),
		row("Course", course),
		row("Career", fmt.Sprintf("%d, %s", p.CareerLevel, job)),
	}
	if p.HasCar {
		rows = append(rows, row("Car", "yes"))
	}
	if len(p.Inventory) > 0 {
		rows = append(rows, row("Items", strings.Join(p.Inventory, ", ")))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderSummary(s response.TurnSummary) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("Week %d summary for %s", s.Turn, s.PlayerName))}
	for _, e := range s.Events {
		lines = append(lines, fmt.Sprintf("%-12s %-24s %+d", e.Type, e.Label, e.Amount))
	}
	lines = append(lines,
		row("Cash change", fmt.Sprintf("%+d", s.CashDelta)),
		row("Happiness change", fmt.Sprintf("%+d", s.HappinessDelta)),
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (o *Output) printCatalog(c response.Catalog) {
	_, _ = fmt.Fprintln(o.w, titleStyle.Render("Locations"))
	for _, l := range c.Locations {
		_, _ = fmt.Fprintf(o.w, "  %-12s %s\n", l.ID, l.Name)
	}
	_, _ = fmt.Fprintln(o.w, titleStyle.Render("Jobs"))
	for _, j := range c.Jobs {
		_, _ = fmt.Fprintf(o.w, "  %-16s %-22s level %d  $%d/h  %dh shift  needs education %d\n",
			j.ID, j.Title, j.Level, j.Wage, j.ShiftHours, j.RequiredEducation)
	}
	_, _ = fmt.Fprintln(o.w, titleStyle.Render("Courses"))
	for _, co := range c.Courses {
		_, _ = fmt.Fprintf(o.w, "  %-16s %-22s level %d  $%d  %d credits\n",
			co.ID, co.Name, co.Level, co.Cost, co.Credits)
	}
	_, _ = fmt.Fprintln(o.w, titleStyle.Render("Items"))
	for _, it := range c.Items {
		_, _ = fmt.Fprintf(o.w, "  %-22s at %-10s $%d\n", it.Name, it.Location, it.Cost)
	}
}

func row(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

func playerName(g response.Game, id string) string {
	for _, p := range g.Players {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}
