package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jask/packrat/internal/gear"
	"github.com/jask/packrat/internal/store"
)

var summaryTotalStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

// summaryPane charts the total weight carried per group. Like the group
// panes it learns about changes only through store notifications.
type summaryPane struct {
	log    *logrus.Entry
	totals map[gear.Group]float64
	count  int
}

func newSummaryPane(st *store.Store, log *logrus.Entry) *summaryPane {
	p := &summaryPane{log: log, totals: make(map[gear.Group]float64)}
	st.Subscribe(p.onStoreChange)
	return p
}

func (p *summaryPane) onStoreChange(items []gear.Item) {
	totals := make(map[gear.Group]float64, len(gear.Groups()))
	for _, item := range items {
		totals[item.Group] += item.Grams
	}
	p.totals = totals
	p.count = len(items)
}

// View renders the summary box. The chart is rebuilt from scratch every
// frame; only the totals survive between notifications.
func (p *summaryPane) View(width, height int) string {
	if width < 12 {
		width = 12
	}
	if height < 3 {
		height = 3
	}
	contentWidth := boxContentWidth(width)
	contentLines := height - 2

	var total float64
	for _, g := range gear.Groups() {
		total += p.totals[g]
	}

	var lines []string
	switch {
	case p.count == 0:
		lines = []string{paneEmptyStyle.Render("no gear yet")}
	case contentLines >= 4:
		bc := barchart.New(contentWidth, contentLines-1)
		data := make([]barchart.BarData, 0, len(gear.Groups()))
		for _, g := range gear.Groups() {
			data = append(data, barchart.BarData{
				Label: shortGroupLabel(g),
				Values: []barchart.BarValue{{
					Name:  g.Label(),
					Value: p.totals[g],
					Style: lipgloss.NewStyle().Foreground(groupAccent(g)),
				}},
			})
		}
		bc.PushAll(data)
		bc.Draw()
		lines = append(lines, splitLines(bc.View())...)
		if len(lines) > contentLines-1 {
			lines = lines[:contentLines-1]
		}
		lines = append(lines, summaryTotalStyle.Render(truncate("total "+gear.WeightLabel(total), contentWidth)))
	default:
		lines = []string{summaryTotalStyle.Render(truncate("total "+gear.WeightLabel(total), contentWidth))}
	}

	return borderBox("Weight by group", lines, width, height, colorSurface2, colorAccent, false)
}

func shortGroupLabel(g gear.Group) string {
	switch g {
	case gear.GroupUncategorized:
		return "Unc"
	case gear.GroupCamping:
		return "Camp"
	case gear.GroupHiking:
		return "Hike"
	case gear.GroupTravel:
		return "Trav"
	case gear.GroupKitchen:
		return "Kit"
	}
	return g.Label()
}
