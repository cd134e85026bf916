package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/fiscal-sim/fiscal-sim/sim"
	"github.com/fiscal-sim/fiscal-sim/sim/montecarlo"
	"github.com/fiscal-sim/fiscal-sim/sim/trace"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder    = lipgloss.Color("#282726")
	colorTextDim   = lipgloss.Color("#575653")
	colorTextMuted = lipgloss.Color("#6F6E69")
	colorText      = lipgloss.Color("#FFFCF0")
	colorAccent    = lipgloss.Color("#3AA99F")
	colorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(72).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. The first column is left-aligned,
// the rest are numeric and right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], utf8.RuneCountInString(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}
	rule("╰", "┴", "╯")

	return b.String()
}

// formatMillions renders an amount in Bs as millions with separators,
// e.g. 38150500000 -> "38,150.5".
func formatMillions(v float64) string {
	return humanize.CommafWithDigits(math.Round(v/1e5)/10, 1)
}

// formatUSD renders reserves (already in millions of USD).
func formatUSD(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func formatShocks(s sim.Shocks) string {
	var parts []string
	add := func(label string, v float64) {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%s %+g%%", label, v))
		}
	}
	add("tc", s.ExchangeRate)
	add("gas", s.Gas)
	add("oro", s.Gold)
	add("plata", s.Silver)
	add("zinc", s.Zinc)
	add("estaño", s.Tin)
	add("plomo", s.Lead)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func yearsTable(title string, years []sim.YearState) Table {
	t := Table{
		Title: title,
		Headers: []string{
			"Año", "Z", "TC", "Ingresos MM Bs", "Gastos MM Bs", "Déficit MM Bs",
			"Deuda/PIB", "Déficit/PIB", "RIN M USD", "Meses imp.",
		},
	}
	for _, ys := range years {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", ys.Year),
			fmt.Sprintf("%+.3f", ys.Z),
			fmt.Sprintf("%.2f", ys.ExchangeRate),
			formatMillions(ys.TotalRevenue),
			formatMillions(ys.TotalExpenditure),
			formatMillions(ys.Deficit),
			formatPercent(ys.DebtToGDP),
			formatPercent(ys.DeficitToGDP),
			formatUSD(ys.Reserves),
			fmt.Sprintf("%.1f", ys.ReserveMonths),
		})
	}
	return t
}

func renderAlerts(w io.Writer, years []sim.YearState, steps []trace.SimulationStep) {
	total := 0
	for _, ys := range years {
		total += len(ys.Alerts)
	}
	if total == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  Sin alertas"))
		return
	}
	fmt.Fprintln(w, "  "+headerStyle.Render("Alertas"))
	for _, ys := range years {
		for _, msg := range ys.Alerts {
			fmt.Fprintf(w, "  %d  %s\n", ys.Year, warnStyle.Render(msg))
		}
	}
	// the step summary is only available when the run kept its step log
	if len(steps) == 0 {
		return
	}
	summary := trace.Summarize(steps)
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  %d alertas en %d de %d años (primera: %d)",
		summary.TotalAlerts, summary.YearsWithAlerts, summary.TotalSteps, summary.FirstAlertYear)))
}

// renderClosing writes the last simulated year's headline figures.
func renderClosing(w io.Writer, res *sim.SimulationResult) {
	final := res.Final()
	if final == nil {
		return
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  Cierre %d: deuda/PIB %s, déficit/PIB %s, RIN %s M USD (%.1f meses)",
		final.Year, formatPercent(final.DebtToGDP), formatPercent(final.DeficitToGDP),
		formatUSD(final.Reserves), final.ReserveMonths)))
}

// renderRun writes a single projection as tables.
func renderRun(w io.Writer, p *sim.SimulationParameters, res sim.SimulationResult) {
	fmt.Fprintln(w, RenderTitle(fmt.Sprintf("Proyección fiscal: %d años desde %d", len(res.Years), p.BaseYear)))
	fmt.Fprintln(w, mutedStyle.Render("  Shocks: "+formatShocks(p.Shocks)))
	fmt.Fprintln(w)
	fmt.Fprint(w, RenderTable(yearsTable("Resultados", res.Years)))
	renderClosing(w, &res)
	fmt.Fprintln(w)
	renderAlerts(w, res.Years, res.Steps)
}

// renderMonteCarlo writes the per-year percentile bands and the
// representative trial.
func renderMonteCarlo(w io.Writer, p *sim.SimulationParameters, res *montecarlo.Result, runID string) {
	fmt.Fprintln(w, RenderTitle(fmt.Sprintf("Monte Carlo: %s simulaciones", humanize.Comma(int64(res.Trials)))))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("  %s  ·  ejecución %s  ·  shocks: %s", res.Method, runID, formatShocks(p.Shocks))))
	fmt.Fprintln(w)

	t := Table{
		Title: "Bandas por año (P5 / mediana / P95)",
		Headers: []string{
			"Año", "Deuda/PIB P5", "Mediana", "P95",
			"Déficit prom. MM Bs", "RIN P5", "RIN mediana", "RIN P95",
		},
	}
	for _, ys := range res.Years {
		debt := ys.Statistics["deuda_pib_ratio"]
		deficit := ys.Statistics["deficit_superavit"]
		rin := ys.Statistics["rin"]
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", ys.Year),
			formatPercent(debt.P5),
			formatPercent(debt.Median),
			formatPercent(debt.P95),
			formatMillions(deficit.Mean),
			formatUSD(rin.P5),
			formatUSD(rin.Median),
			formatUSD(rin.P95),
		})
	}
	fmt.Fprint(w, RenderTable(t))
	fmt.Fprintln(w)

	title := fmt.Sprintf("Simulación representativa (#%d)", res.RepresentativeIndex)
	fmt.Fprint(w, RenderTable(yearsTable(title, res.Representative.Years)))
	renderClosing(w, &res.Representative)
	fmt.Fprintln(w)
	renderAlerts(w, res.Representative.Years, res.Representative.Steps)
}

// renderScenarios lists the scenario catalogue.
func renderScenarios(w io.Writer, catalog sim.ScenarioCatalog) {
	t := Table{
		Title:   "Escenarios",
		Headers: []string{"ID", "Nombre", "Shocks", "Descripción"},
	}
	for _, id := range catalog.IDs() {
		s := catalog[id]
		t.Rows = append(t.Rows, []string{id, s.Name, formatShocks(s.Shocks), s.Description})
	}
	fmt.Fprint(w, RenderTable(t))
}
