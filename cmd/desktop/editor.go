package main

import (
	"strings"

	"octcalc/pkg/grid"
)

// editor is a minimal multi-line text buffer with a rune cursor.
type editor struct {
	text   []rune
	cursor int
}

func newEditor(src string) *editor {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return &editor{text: []rune(src), cursor: len([]rune(src))}
}

func (e *editor) String() string {
	return string(e.text)
}

func (e *editor) insert(r rune) {
	e.text = append(e.text, 0)
	copy(e.text[e.cursor+1:], e.text[e.cursor:])
	e.text[e.cursor] = r
	e.cursor++
}

func (e *editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.text = append(e.text[:e.cursor-1], e.text[e.cursor:]...)
	e.cursor--
}

func (e *editor) delete() {
	if e.cursor >= len(e.text) {
		return
	}
	e.text = append(e.text[:e.cursor], e.text[e.cursor+1:]...)
}

func (e *editor) left() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *editor) right() {
	if e.cursor < len(e.text) {
		e.cursor++
	}
}

// position returns the cursor's line and column.
func (e *editor) position() (line, col int) {
	return grid.Locate(e.String(), e.cursor)
}

func (e *editor) lines() []string {
	return strings.Split(e.String(), "\n")
}

// moveTo places the cursor at line, col, clamped to the text.
func (e *editor) moveTo(line, col int) {
	lines := e.lines()
	line = min(max(line, 0), len(lines)-1)
	offset := 0
	for _, l := range lines[:line] {
		offset += len([]rune(l)) + 1
	}
	e.cursor = offset + min(max(col, 0), len([]rune(lines[line])))
}

func (e *editor) up() {
	line, col := e.position()
	if line > 0 {
		e.moveTo(line-1, col)
	}
}

func (e *editor) down() {
	line, col := e.position()
	e.moveTo(line+1, col)
}

func (e *editor) home() {
	line, _ := e.position()
	e.moveTo(line, 0)
}

func (e *editor) end() {
	line, _ := e.position()
	e.moveTo(line, len([]rune(e.lines()[line])))
}
