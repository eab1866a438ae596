package translator

import (
	"fmt"
	"sort"
)

// Diagnostic is a single error message tied to a character span of the source.
type Diagnostic struct {
	Message string
	Start   int // 0-based character offset
	End     int // exclusive
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s (at %d-%d)", d.Message, d.Start, d.End)
}

// Diagnostics is an ordered diagnostic list, kept in discovery order.
type Diagnostics []Diagnostic

func (ds *Diagnostics) add(message string, start, end int) {
	*ds = append(*ds, Diagnostic{Message: message, Start: start, End: end})
}

// Sorted returns a copy ordered by start offset. Equal starts keep discovery order.
func (ds Diagnostics) Sorted() Diagnostics {
	out := make(Diagnostics, len(ds))
	copy(out, ds)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}

// Err returns the first diagnostic as an error, or nil when the list is empty.
func (ds Diagnostics) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return ds[0]
}
