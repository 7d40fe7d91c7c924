package pipeline

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/index-enrich/internal/model"
)

// TallySectors counts records per sector label, grouping on the exact string
// value. Unclassified records (empty sector) are excluded, so the tally's
// total equals the number of classified records.
func TallySectors(table *model.Table) model.SectorTally {
	tally := make(model.SectorTally)
	for _, rec := range table.Records {
		if rec.Sector == "" {
			continue
		}
		tally[rec.Sector]++
	}
	return tally
}

// SortedSectors returns the tally's sectors ordered by descending count,
// ties broken alphabetically.
func SortedSectors(tally model.SectorTally) []string {
	sectors := make([]string, 0, len(tally))
	for s := range tally {
		sectors = append(sectors, s)
	}
	sort.Slice(sectors, func(i, j int) bool {
		if tally[sectors[i]] != tally[sectors[j]] {
			return tally[sectors[i]] > tally[sectors[j]]
		}
		return sectors[i] < sectors[j]
	})
	return sectors
}

// LogTally emits the sector counts as a diagnostic. The tally has no
// downstream consumer.
func LogTally(tally model.SectorTally) {
	for _, sector := range SortedSectors(tally) {
		zap.L().Info("sector count",
			zap.String("sector", sector),
			zap.Int("count", tally[sector]),
		)
	}
}
