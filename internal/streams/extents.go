package streams

import (
	"fmt"

	"github.com/google/btree"
)

// Extent is a half-open byte range [Start, End).
type Extent struct {
	Start int64 // inclusive
	End   int64 // exclusive
}

func (e Extent) Size() int64 {
	return e.End - e.Start
}

func (e Extent) Overlaps(other Extent) bool {
	return e.Start < other.End && other.Start < e.End
}

func (e Extent) Adjacent(other Extent) bool {
	return e.End == other.Start || other.End == e.Start
}

func (e Extent) merge(other Extent) Extent {
	if !e.Overlaps(other) && !e.Adjacent(other) {
		panic("cannot merge non-overlapping, non-adjacent extents")
	}
	start := e.Start
	if other.Start < start {
		start = other.Start
	}
	end := e.End
	if other.End > end {
		end = other.End
	}
	return Extent{Start: start, End: end}
}

func (e Extent) String() string {
	return fmt.Sprintf("[%d, %d)", e.Start, e.End)
}

// ExtentMap tracks written byte ranges, ordered by start offset. Stored
// extents are disjoint and non-adjacent; any extent added that touches
// existing ones is merged with them. It is not thread-safe.
type ExtentMap struct {
	tree *btree.BTreeG[Extent]
}

func NewExtentMap() *ExtentMap {
	return &ExtentMap{
		tree: btree.NewG[Extent](32, func(a, b Extent) bool { return a.Start < b.Start }),
	}
}

// Add records an extent, merging it with any overlapping or adjacent ones.
// Empty extents are ignored.
func (m *ExtentMap) Add(e Extent) {
	if e.Size() <= 0 {
		return
	}
	var absorb []Extent
	// Only the closest predecessor can touch e; everything before it ends
	// strictly earlier.
	m.tree.DescendLessOrEqual(Extent{Start: e.Start}, func(item Extent) bool {
		if item.Start < e.Start && (item.Overlaps(e) || item.Adjacent(e)) {
			absorb = append(absorb, item)
		}
		return false
	})
	m.tree.AscendGreaterOrEqual(Extent{Start: e.Start}, func(item Extent) bool {
		if item.Start > e.End {
			return false
		}
		absorb = append(absorb, item)
		return true
	})
	merged := e
	for _, item := range absorb {
		m.tree.Delete(item)
		merged = merged.merge(item)
	}
	m.tree.ReplaceOrInsert(merged)
}

// Ranges returns the extents in ascending start order.
func (m *ExtentMap) Ranges() []Extent {
	out := make([]Extent, 0, m.tree.Len())
	m.tree.Ascend(func(item Extent) bool {
		out = append(out, item)
		return true
	})
	return out
}

// Covered returns the total number of bytes covered by the map.
func (m *ExtentMap) Covered() int64 {
	var total int64
	m.tree.Ascend(func(item Extent) bool {
		total += item.Size()
		return true
	})
	return total
}

func (m *ExtentMap) Len() int {
	return m.tree.Len()
}
