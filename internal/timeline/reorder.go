package timeline

import (
	"errors"

	"github.com/caseline/caseline/internal/model"
)

// Mode selects how the timeline is ordered for display.
type Mode string

const (
	// ModeChronological orders all entries by parsed instant.
	ModeChronological Mode = "chronological"
	// ModeCustom renders real events in the user's drag order; synthetic
	// entries stay at their chronologically-merged positions.
	ModeCustom Mode = "custom"
)

var (
	ErrNotCustomMode  = errors.New("manual reorder is only available in custom mode")
	ErrSyntheticEntry = errors.New("synthetic timeline entries cannot be reordered")
	ErrUnknownEvent   = errors.New("event is not part of the timeline")
)

// Reorder removes draggedID from order and reinserts it at targetIndex,
// returning a new slice. targetIndex is clamped into [0, len(order)-1]; an
// unknown draggedID leaves the order unchanged. The input is never modified.
func Reorder(order []string, draggedID string, targetIndex int) []string {
	out := append([]string(nil), order...)

	from := -1
	for i, id := range out {
		if id == draggedID {
			from = i
			break
		}
	}
	if from == -1 {
		return out
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(out)-1 {
		targetIndex = len(out) - 1
	}

	out = append(out[:from], out[from+1:]...)
	out = append(out, "")
	copy(out[targetIndex+1:], out[targetIndex:])
	out[targetIndex] = draggedID
	return out
}

// Arranger reconciles the automatic chronological ordering with an explicit
// user-chosen order. customOrder tracks real event ids only and is kept a
// permutation of the current event id set at all times.
type Arranger struct {
	mode        Mode
	customOrder []string
}

func NewArranger() *Arranger {
	return &Arranger{mode: ModeChronological}
}

func (a *Arranger) Mode() Mode {
	return a.mode
}

// CustomOrder returns a copy of the manual event order.
func (a *Arranger) CustomOrder() []string {
	return append([]string(nil), a.customOrder...)
}

// Restore rehydrates a previously saved arrangement, e.g. from a draft.
func (a *Arranger) Restore(mode Mode, customOrder []string) {
	if mode != ModeCustom {
		mode = ModeChronological
	}
	a.mode = mode
	a.customOrder = append([]string(nil), customOrder...)
}

// ToggleMode flips between chronological and custom ordering. Entering
// custom mode snapshots the current chronological order as the baseline, so
// dragging starts from a sensible arrangement. Leaving custom mode keeps the
// custom order around for the next toggle.
func (a *Arranger) ToggleMode(events []model.TimelineEvent) Mode {
	if a.mode == ModeChronological {
		sorted := SortEventsChronological(events)
		a.customOrder = make([]string, len(sorted))
		for i, ev := range sorted {
			a.customOrder[i] = ev.ID
		}
		a.mode = ModeCustom
		return a.mode
	}
	a.mode = ModeChronological
	return a.mode
}

// MoveEvent applies one drag operation in custom mode. Synthetic entries are
// never draggable.
func (a *Arranger) MoveEvent(draggedID string, targetIndex int) error {
	if a.mode != ModeCustom {
		return ErrNotCustomMode
	}
	if IsSyntheticID(draggedID) {
		return ErrSyntheticEntry
	}
	found := false
	for _, id := range a.customOrder {
		if id == draggedID {
			found = true
			break
		}
	}
	if !found {
		return ErrUnknownEvent
	}
	a.customOrder = Reorder(a.customOrder, draggedID, targetIndex)
	return nil
}

// Arrange produces the display sequence for the current mode. Chronological
// mode is a full stable sort of the merged entries. Custom mode renders real
// events in the manual order and inserts each synthetic entry at its
// chronological rank: the number of events whose parsed instant is on or
// before the entry's own instant.
func (a *Arranger) Arrange(events []model.TimelineEvent, complaints []model.Complaint) []Entry {
	entries := Merge(events, complaints)
	if a.mode != ModeCustom {
		return SortChronological(entries)
	}

	a.reconcile(events)

	byID := make(map[string]Entry, len(events))
	var synthetic []Entry
	for _, e := range entries {
		if e.Synthetic() {
			synthetic = append(synthetic, e)
		} else {
			byID[e.ID] = e
		}
	}

	ordered := make([]Entry, 0, len(a.customOrder))
	for _, id := range a.customOrder {
		ordered = append(ordered, byID[id])
	}

	synthetic = SortChronological(synthetic)
	ranks := make([]int, len(synthetic))
	for i, s := range synthetic {
		instant := ParseApproximateDate(s.ApproximateDate)
		rank := 0
		for _, ev := range events {
			if !ParseApproximateDate(ev.ApproximateDate).After(instant) {
				rank++
			}
		}
		ranks[i] = rank
	}

	out := make([]Entry, 0, len(ordered)+len(synthetic))
	si := 0
	for i, ev := range ordered {
		for si < len(synthetic) && ranks[si] <= i {
			out = append(out, synthetic[si])
			si++
		}
		out = append(out, ev)
	}
	out = append(out, synthetic[si:]...)
	return out
}

// reconcile keeps customOrder a permutation of the live event id set: ids of
// deleted events are dropped, events added since the last snapshot are
// appended in chronological order.
func (a *Arranger) reconcile(events []model.TimelineEvent) {
	present := make(map[string]bool, len(events))
	for _, ev := range events {
		present[ev.ID] = true
	}

	kept := a.customOrder[:0:0]
	seen := make(map[string]bool, len(a.customOrder))
	for _, id := range a.customOrder {
		if present[id] && !seen[id] {
			kept = append(kept, id)
			seen[id] = true
		}
	}

	for _, ev := range SortEventsChronological(events) {
		if !seen[ev.ID] {
			kept = append(kept, ev.ID)
		}
	}
	a.customOrder = kept
}
