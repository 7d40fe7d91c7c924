package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sells-group/index-enrich/internal/model"
)

// RenderTable produces the plain-text rendering of the enriched table that is
// embedded in the recommendation prompt: one aligned row per record with
// symbol, name, any extra attributes, ytd and sector.
func RenderTable(table *model.Table) string {
	attrs := attrColumns(table)

	cols := []string{"symbol", "name"}
	cols = append(cols, attrs...)
	cols = append(cols, "ytd", "sector")

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, strings.Join(cols, "\t"))
	for _, rec := range table.Records {
		fields := []string{rec.Symbol, rec.Name}
		for _, attr := range attrs {
			fields = append(fields, rec.Attrs[attr])
		}
		fields = append(fields, formatYTD(rec.YTD), rec.Sector)
		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
	w.Flush()

	return strings.TrimRight(sb.String(), "\n")
}

// attrColumns collects the union of extra attribute names across the table,
// sorted for a stable rendering.
func attrColumns(table *model.Table) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, rec := range table.Records {
		for attr := range rec.Attrs {
			if !seen[attr] {
				seen[attr] = true
				cols = append(cols, attr)
			}
		}
	}
	sort.Strings(cols)
	return cols
}

// formatYTD renders a YTD percentage without trailing float noise.
func formatYTD(ytd float64) string {
	return strconv.FormatFloat(ytd, 'f', -1, 64)
}
