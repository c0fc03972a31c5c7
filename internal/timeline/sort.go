package timeline

import (
	"sort"
	"strings"
	"time"

	"github.com/caseline/caseline/internal/model"
)

// SortChronological returns the entries ordered by their parsed instants.
// This is the canonical timeline ordering: every date string, exact or
// approximate, is reduced to an instant via ParseApproximateDate and compared
// numerically. The sort is stable, so entries with equal instants keep their
// input order. The input slice is not modified.
func SortChronological(entries []Entry) []Entry {
	type keyed struct {
		instant time.Time
		entry   Entry
	}
	sorted := make([]keyed, len(entries))
	for i, e := range entries {
		sorted[i] = keyed{instant: ParseApproximateDate(e.ApproximateDate), entry: e}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].instant.Before(sorted[j].instant)
	})
	out := make([]Entry, len(sorted))
	for i, k := range sorted {
		out[i] = k.entry
	}
	return out
}

// SortEventsChronological orders real events by parsed instant, stable.
// Used to snapshot a sensible baseline when entering custom mode and to
// normalize event order before persisting.
func SortEventsChronological(events []model.TimelineEvent) []model.TimelineEvent {
	sorted := append([]model.TimelineEvent(nil), events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ParseApproximateDate(sorted[i].ApproximateDate).Before(ParseApproximateDate(sorted[j].ApproximateDate))
	})
	return sorted
}

// CompareLenient is the read-only display comparator: exact calendar dates
// compare by instant and always sort ahead of approximate text, and two
// approximate strings fall back to lexicographic comparison of the raw text
// rather than heuristic parsing. It deliberately differs from the canonical
// chronological rule; see SortLenient.
func CompareLenient(a, b Entry) int {
	aExact := IsExactDate(a.ApproximateDate)
	bExact := IsExactDate(b.ApproximateDate)

	switch {
	case aExact && bExact:
		ai := ParseApproximateDate(a.ApproximateDate)
		bi := ParseApproximateDate(b.ApproximateDate)
		return ai.Compare(bi)
	case aExact:
		return -1
	case bExact:
		return 1
	default:
		return strings.Compare(a.ApproximateDate, b.ApproximateDate)
	}
}

// SortLenient orders entries with CompareLenient, stable. It serves only the
// persisted-submission view, where guessing instants for vague text is less
// desirable than pinning the entries with known dates first. All other call
// sites use SortChronological.
func SortLenient(entries []Entry) []Entry {
	sorted := append([]Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CompareLenient(sorted[i], sorted[j]) < 0
	})
	return sorted
}
