package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carbon-predictor/domain"
	"carbon-predictor/format"
	"carbon-predictor/service"
)

var (
	colorGreen  = lipgloss.Color("#4caf50")
	colorAmber  = lipgloss.Color("#ffc107")
	colorRed    = lipgloss.Color("#f44336")
	colorDim    = lipgloss.Color("#928374")
	colorHeader = lipgloss.Color("#667eea")
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleBold   = lipgloss.NewStyle().Bold(true)
)

const barWidth = 30

func bucketStyle(b domain.Bucket) lipgloss.Style {
	switch b {
	case domain.BucketLow:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case domain.BucketMedium:
		return lipgloss.NewStyle().Foreground(colorAmber)
	case domain.BucketHigh:
		return lipgloss.NewStyle().Foreground(colorRed)
	default:
		return styleDim
	}
}

func header(text string) string {
	upper := strings.ToUpper(text)
	return styleHeader.Render(upper) + "\n" + styleDim.Render(strings.Repeat("─", len(upper)))
}

func bar(percent float64) string {
	n := int(percent / 100 * barWidth)
	return strings.Repeat("█", n) + styleDim.Render(strings.Repeat("░", barWidth-n))
}

// RenderAssessment lays an assessment out for the terminal.
func RenderAssessment(a domain.Assessment) string {
	var b strings.Builder
	style := bucketStyle(a.Bucket)

	b.WriteString(header("Your carbon footprint") + "\n")
	fmt.Fprintf(&b, "  Estimated CO2 emission  %s  %s\n",
		styleBold.Render(format.Units(a.Prediction.Emission)),
		styleDim.Render(format.SignedPercent(a.Prediction.DeltaVsNationalAvgPct)+" vs avg"))
	fmt.Fprintf(&b, "  Yearly projection       %s\n", format.Units(a.Prediction.YearlyProjection))
	fmt.Fprintf(&b, "  Trees to offset         %d trees\n", a.Prediction.TreesToOffset)
	fmt.Fprintf(&b, "  Level                   %s\n", style.Render("● "+strings.ToUpper(string(a.Bucket))))
	fmt.Fprintf(&b, "  %s %s\n", bar(format.Ratio(a.Gauge.Value, a.Gauge.Max)), styleDim.Render("0–"+format.Number(a.Gauge.Max, 0)))

	for _, adj := range a.Adjustments {
		fmt.Fprintf(&b, "  %s\n", styleDim.Render(fmt.Sprintf("%s clamped from %d to %d", adj.Field, adj.From, adj.To)))
	}

	b.WriteString("\n" + header("Emission breakdown") + "\n")
	for _, s := range a.Shares {
		fmt.Fprintf(&b, "  %-15s %8s  %5s%%  %s\n", s.Category, format.Number(s.Value, 0), format.Number(s.Percent, 1), bar(s.Percent))
	}

	b.WriteString("\n" + header("Recommendations") + "\n")
	b.WriteString("  " + style.Render(a.Summary) + "\n")
	for _, r := range a.Recommendations {
		b.WriteString("  - " + r + "\n")
	}

	b.WriteString("\n" + header("How you compare") + "\n")
	for _, c := range a.Comparison {
		fmt.Fprintf(&b, "  %-13s %8s  %s\n", c.Label, format.Number(c.Emission, 0), bar(format.Ratio(c.Emission, service.GaugeMax)))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderModelInfo prints the model metadata, comparison table and description.
func RenderModelInfo(info domain.ModelInfo) string {
	var b strings.Builder

	b.WriteString(header("Model") + "\n")
	fmt.Fprintf(&b, "  Name         %s\n", info.Name)
	fmt.Fprintf(&b, "  Kind         %s\n", info.Kind)
	fmt.Fprintf(&b, "  Source       %s\n", info.Source)
	fmt.Fprintf(&b, "  Fingerprint  %s\n", info.Fingerprint)
	b.WriteString("  Features\n")
	for i, f := range info.FeatureNames {
		fmt.Fprintf(&b, "    %d. %s\n", i+1, f)
	}

	if t := info.Comparison; t != nil {
		b.WriteString("\n" + header("Model comparison") + "\n")
		b.WriteString("  " + styleBold.Render(strings.Join(t.Columns, " | ")) + "\n")
		for _, row := range t.Rows {
			b.WriteString("  " + strings.Join(row, " | ") + "\n")
		}
	}

	if info.Description != "" {
		b.WriteString("\n" + header("Performance details") + "\n")
		for _, line := range strings.Split(strings.TrimRight(info.Description, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
