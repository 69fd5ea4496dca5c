// Package export saves feature results as reports, either to a local
// directory or to a GCS bucket.
package export

import (
	"context"
	"fmt"
	"time"

	"rankcraft/internal/flows"
)

// Exporter persists reports and lists what has been saved. SaveJSON and
// SaveCSV return the location of the written report.
type Exporter interface {
	SaveJSON(ctx context.Context, name string, v any) (string, error)
	SaveCSV(ctx context.Context, name string, header []string, rows [][]string) (string, error)
	List(ctx context.Context) ([]string, error)
}

// stamp produces a unique, sortable report file name.
func stamp(name, ext string) string {
	return fmt.Sprintf("%s-%s.%s", name, time.Now().UTC().Format("20060102-150405"), ext)
}

// KeywordRecords flattens a keyword report into CSV rows.
func KeywordRecords(keywords []flows.Keyword) ([]string, [][]string) {
	header := []string{"keyword", "monthly_searches", "competition", "difficulty"}
	rows := make([][]string, len(keywords))
	for i, k := range keywords {
		rows[i] = []string{k.Keyword, fmt.Sprintf("%d", k.MonthlySearches), k.Competition, k.Difficulty}
	}
	return header, rows
}

// RankRecords flattens a rank report into CSV rows.
func RankRecords(ranked []flows.RankedKeyword) ([]string, [][]string) {
	header := []string{"keyword", "rank", "best_rank", "monthly_searches", "competition"}
	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{r.Keyword, r.Rank.String(), fmt.Sprintf("%d", r.BestRank), fmt.Sprintf("%d", r.MonthlySearches), r.Competition}
	}
	return header, rows
}
