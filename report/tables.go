package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nonsonwune/canvas_grades/canvas"
	"github.com/nonsonwune/canvas_grades/importer"
	"github.com/nonsonwune/canvas_grades/merger"
)

func (p *Printer) newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(p.Out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

// AsymmetricPartners lists declarations that were not reciprocated so the
// grader can fix them by hand.
func (p *Printer) AsymmetricPartners(w *importer.AsymmetricPartnerWarning) {
	if w == nil || len(w.Pairs) == 0 {
		return
	}
	p.Warn("Asymmetric partners: %d", len(w.Pairs))
	table := p.newTable("Student", "Declared Partner")
	for _, pair := range w.Pairs {
		table.Append([]string{pair.Student, pair.Partner})
	}
	table.Render()
}

// ImportSummary prints row counts for an input file.
func (p *Printer) ImportSummary(title string, stats importer.ImportStats) {
	p.Header("%s: %s", title, stats.SourceFile)
	table := p.newTable("Rows", "Imported", "Skipped", "Duplicates")
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalProcessed),
		fmt.Sprintf("%d", stats.ValidRecords),
		fmt.Sprintf("%d", stats.SkippedRecords),
		fmt.Sprintf("%d", len(stats.Duplicates)),
	})
	table.Render()

	if len(stats.Duplicates) > 0 {
		p.Warn("listed more than once, last row kept: %s", strings.Join(stats.Duplicates, ", "))
	}
	if len(stats.NegativeScores) > 0 {
		p.Warn("negative scores: %s", strings.Join(stats.NegativeScores, ", "))
	}
}

// MergeSummary prints what happened to every student that declared a partner.
func (p *Printer) MergeSummary(r *merger.Report) {
	if r == nil || len(r.Actions) == 0 {
		return
	}
	p.Header("Partner Merge")
	table := p.newTable("Student", "Partner", "Action", "Score", "Reciprocal")
	for _, a := range r.Actions {
		reciprocal := "yes"
		if !a.Reciprocal {
			reciprocal = "no"
		}
		table.Append([]string{a.Student, a.Partner, string(a.Kind), canvas.FormatScore(a.Score), reciprocal})
	}
	table.Render()
	p.Info("%d filled from partner, %d set to the lower score", r.Count(merger.Filled), r.Count(merger.Minimum))
}
