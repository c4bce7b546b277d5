// Package report formats render passes as plain text tables for the terminal and the bot.
package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/domain/models"
)

const NoData = "Sin datos"

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleDefault)
	return t
}

func percent(count, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%1.1f%%", float64(count)/float64(total)*100)
}

// DistributionTable lists value, count and share of one chart.
func DistributionTable(c dashboard.Chart) string {
	t := newTable()
	t.SetTitle(c.Title)
	t.AppendHeader(table.Row{"Respuesta", "Cantidad", "Porcentaje"})
	total := c.Distribution.Total()
	for _, e := range c.Distribution.Entries {
		t.AppendRow(table.Row{e.Value, e.Count, percent(e.Count, total)})
	}
	if total == 0 {
		t.AppendRow(table.Row{NoData, 0, percent(0, 0)})
	}
	t.AppendFooter(table.Row{"Total", total, ""})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	return t.Render()
}

// GroupsTable lists every group with its number of responses.
func GroupsTable(sizes []models.ValueCount) string {
	t := newTable()
	t.AppendHeader(table.Row{"Grupo", "Respuestas"})
	total := 0
	for _, g := range sizes {
		t.AppendRow(table.Row{g.Value, g.Count})
		total += g.Count
	}
	t.AppendFooter(table.Row{"Total", total})
	return t.Render()
}

// KeywordsTable lists the most frequent keywords of the free-text question.
func KeywordsTable(words []models.WordFrequency) string {
	t := newTable()
	t.AppendHeader(table.Row{"#", "Palabra", "Frecuencia"})
	for i, w := range words {
		t.AppendRow(table.Row{i + 1, w.Word, w.Count})
	}
	return t.Render()
}

// SelectionLine is the counter shown above the charts.
func SelectionLine(pass dashboard.Pass) string {
	groups := "todos"
	if len(pass.Selection) > 0 {
		groups = strings.Join(pass.Selection, ", ")
	}
	return fmt.Sprintf("Total de respuestas seleccionadas: %d de %d (grupos: %s)",
		pass.SelectedRecords, pass.TotalRecords, groups)
}

// PassSummary renders the selection counter, one table per chart and the keywords.
func PassSummary(pass dashboard.Pass, keywordsTitle string) string {
	parts := []string{SelectionLine(pass)}
	for _, c := range pass.Charts {
		parts = append(parts, DistributionTable(c))
	}
	if keywordsTitle != "" {
		parts = append(parts, keywordsTitle)
	}
	if len(pass.Keywords) == 0 {
		parts = append(parts, NoData)
	} else {
		parts = append(parts, KeywordsTable(pass.Keywords))
	}
	return strings.Join(parts, "\n\n")
}
