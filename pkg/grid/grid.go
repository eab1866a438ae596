// Package grid maps character offsets in editor text onto rows and columns
// of a fixed-width character grid.
package grid

// GetGridCoords returns the column and row of cell index in a grid that is
// cols cells wide.
func GetGridCoords(index, cols int) (x, y int) {
	return index % cols, index / cols
}

// Locate returns the 0-based line and column of a character offset in text.
// Offsets past the end are placed after the last character.
func Locate(text string, offset int) (line, col int) {
	i := 0
	for _, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
		i++
	}
	return line, col + max(offset-i, 0)
}

// Segment is the part of a span that falls on one line.
type Segment struct {
	Line int
	Col  int
	Len  int
}

// SplitSpan breaks the character span start..end of text into one segment
// per line it touches. A span that covers nothing but a line break still
// yields a one-cell segment so it stays visible; an empty span is widened
// to one cell.
func SplitSpan(text string, start, end int) []Segment {
	if end <= start {
		end = start + 1
	}
	runes := []rune(text)
	line, col := Locate(text, start)

	var segs []Segment
	cur := Segment{Line: line, Col: col}
	for i := start; i < end; i++ {
		if i < len(runes) && runes[i] == '\n' {
			if cur.Len == 0 {
				cur.Len = 1
			}
			segs = append(segs, cur)
			line++
			cur = Segment{Line: line}
			continue
		}
		cur.Len++
	}
	if cur.Len > 0 {
		segs = append(segs, cur)
	}
	return segs
}
