package cmd

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/inference-sim/units/units"
)

// renderCatalog writes the catalog as a table, one row per unit.
func renderCatalog(w io.Writer, cat *units.Catalog) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Unit", "Dimension", "Factor", "Base"})
	for _, k := range cat.Kinds() {
		base := ""
		if b, ok := cat.Base(k.Dimension); ok {
			base = b.Name
		}
		t.AppendRow(table.Row{k.Name, string(k.Dimension), strconv.FormatFloat(k.Factor, 'g', -1, 64), base})
	}
	t.Render()
}
