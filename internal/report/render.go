package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"reform-engine/internal/model"
)

// Dashboard palette
var (
	ColorDarkestBlue = lipgloss.Color("#0C1A27")
	ColorBluePrimary = lipgloss.Color("#2C6496")
	ColorDarkRed     = lipgloss.Color("#B50D0D")
	ColorGreen       = lipgloss.Color("#29D40F")
	ColorDarkGray    = lipgloss.Color("#616161")
	ColorGray        = lipgloss.Color("#808080")
)

var sliceColors = []lipgloss.Color{ColorDarkRed, ColorBluePrimary, ColorGreen, ColorGray}

var styles = struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Card     lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Banner   lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorDarkestBlue),
	Heading:  lipgloss.NewStyle().Bold(true).Foreground(ColorBluePrimary),
	Muted:    lipgloss.NewStyle().Foreground(ColorDarkGray),
	Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(ColorBluePrimary).Padding(0, 1).Width(24),
	Positive: lipgloss.NewStyle().Bold(true).Foreground(ColorGreen),
	Negative: lipgloss.NewStyle().Bold(true).Foreground(ColorDarkRed),
	Banner:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(ColorDarkRed).Padding(0, 1),
}

const barWidth = 40

// Render writes the summary cards, per-lever subtotals and the three chart
// series as terminal text.
func Render(w io.Writer, s model.Scenario, m model.DerivedMetrics) error {
	p := message.NewPrinter(language.English)
	var b strings.Builder

	b.WriteString(styles.Banner.Render(Disclaimer) + "\n\n")
	b.WriteString(styles.Title.Render("Medicaid Reform Modeling: "+s.State.Name) + "\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("Projected federal funding loss (%d): ", firstYear(m))+p.Sprintf("$%.1fB", s.State.FundingLoss)) + "\n\n")

	netStyle := styles.Negative
	if m.NetBudgetImpact >= 0 {
		netStyle = styles.Positive
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Net Budget Impact", netStyle.Render(p.Sprintf("$%.1fB", m.NetBudgetImpact))),
		card("People Affected", p.Sprintf("%.1fM", m.TotalAffected/1e6)),
		card("Coverage Reduction", p.Sprintf("%.1f%%", m.CoverageReduction*100)),
	)
	b.WriteString(cards + "\n\n")

	b.WriteString(styles.Heading.Render("Levers") + "\n")
	b.WriteString(p.Sprintf("  Eligibility     %s  affected %.2fM, saves $%.1fB\n",
		thresholdSummary(s.Eligibility), m.EligibilityAffected/1e6, m.EligibilitySavings))
	if s.Work.Enabled {
		b.WriteString(p.Sprintf("  Work rules      %d h/week, admin $%.1fB, net savings $%.1fB\n",
			s.Work.HoursPerWeek, m.WorkReqAdminCost, m.WorkReqSavings))
	} else {
		b.WriteString("  Work rules      off\n")
	}
	if s.Snap.Enabled {
		b.WriteString(p.Sprintf("  SNAP sharing    %d%%, added cost $%.1fB\n", s.Snap.SharePercent, m.SnapCost))
	} else {
		b.WriteString("  SNAP sharing    off\n")
	}
	b.WriteString(p.Sprintf("  Revenue         income +%.1f%%, property +%.1f%%, sin +%d%%: $%.1fB\n\n",
		s.Revenue.IncomeTaxIncrease, s.Revenue.PropertyTaxIncrease, s.Revenue.SinTaxIncrease, m.TotalRevenue))

	b.WriteString(styles.Heading.Render("Funding Sources & Impacts") + "\n")
	var total float64
	for _, sl := range m.FundingBreakdown {
		total += sl.Value
	}
	for i, sl := range m.FundingBreakdown {
		style := lipgloss.NewStyle().Foreground(sliceColors[i%len(sliceColors)])
		b.WriteString(p.Sprintf("  %-16s %s $%.1fB\n", sl.Name, style.Render(bar(sl.Value, total)), sl.Value))
	}
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("Medicaid Enrollment (millions)") + "\n")
	var maxEnrollment float64
	for _, e := range m.Enrollment {
		maxEnrollment = max(maxEnrollment, e.Enrollment)
	}
	barStyle := lipgloss.NewStyle().Foreground(ColorBluePrimary)
	for _, e := range m.Enrollment {
		b.WriteString(p.Sprintf("  %-16s %s %.2f\n", e.Name, barStyle.Render(bar(e.Enrollment, maxEnrollment)), e.Enrollment))
	}
	b.WriteString("\n")

	b.WriteString(styles.Heading.Render("5-Year Budget Trajectory") + "\n")
	for _, pt := range m.Trajectory {
		b.WriteString(fmt.Sprintf("  %d  ", pt.Year) + p.Sprintf("$%.1fB\n", pt.Deficit))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func card(label, value string) string {
	return styles.Card.Render(styles.Muted.Render(label) + "\n" + value)
}

func bar(v, scale float64) string {
	if scale <= 0 || v <= 0 {
		return ""
	}
	n := int(v / scale * barWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}

func thresholdSummary(e model.EligibilityThresholds) string {
	parts := make([]string, 0, len(model.Groups))
	for _, g := range model.Groups {
		v, _ := e.Get(g)
		parts = append(parts, fmt.Sprintf("%s %d%%", g, v))
	}
	return strings.Join(parts, ", ")
}

func firstYear(m model.DerivedMetrics) int {
	if len(m.Trajectory) == 0 {
		return 0
	}
	return m.Trajectory[0].Year
}
