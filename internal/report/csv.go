package report

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"

	"camlink/internal/blocking"
	"camlink/internal/fileutil"
	"camlink/internal/identification"
)

var (
	matchesHeader  = []string{"left_spec_id", "right_spec_id"}
	solvedHeader   = []string{"id", "brand_n_model", "page_title"}
	unsolvedHeader = []string{"id", "page_title"}
)

// WriteMatches writes pairs, in the order given, as a two-column CSV.
func WriteMatches(path string, pairs []blocking.Pair) error {
	return writeCSV(path, matchesHeader, func(w *csv.Writer) error {
		for _, pair := range pairs {
			if err := w.Write([]string{pair.Left, pair.Right}); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteSolved writes solved records sorted by identity, then id.
func WriteSolved(path string, records []identification.Record) error {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b identification.Record) int {
		if c := cmp.Compare(a.Identity(), b.Identity()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return writeCSV(path, solvedHeader, func(w *csv.Writer) error {
		for _, record := range sorted {
			if err := w.Write([]string{record.ID, record.Identity(), record.NormalizedTitle}); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteUnsolved writes unsolved records sorted by normalized title, then id.
func WriteUnsolved(path string, records []identification.Record) error {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b identification.Record) int {
		if c := cmp.Compare(a.NormalizedTitle, b.NormalizedTitle); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return writeCSV(path, unsolvedHeader, func(w *csv.Writer) error {
		for _, record := range sorted {
			if err := w.Write([]string{record.ID, record.NormalizedTitle}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, header []string, rows func(*csv.Writer) error) error {
	err := fileutil.WriteFileAtomic(path, 0o644, func(out io.Writer) error {
		w := csv.NewWriter(out)
		if err := w.Write(header); err != nil {
			return err
		}
		if err := rows(w); err != nil {
			return err
		}
		w.Flush()
		return w.Error()
	})
	if err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
