package grid

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from line-oriented text.
//
// The input is trimmed and split into lines; every line (itself trimmed) is
// one row. With an empty sep each rune of a line is one cell token, otherwise
// the line is split on the literal sep. Each token goes through cell.
//
// Errors:
//   - ErrEmptyGrid       if the trimmed input is empty.
//   - ErrEmptyRow        if a line is blank.
//   - ErrNonRectangular  if rows differ in length.
//   - ErrParseCell       (wrapping the parser's error) for a rejected token.
//
// Complexity: O(len(text)).
func Parse[T comparable](text, sep string, cell CellParser[T]) (*Grid[T], error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]T, 0, len(lines))
	for y, line := range lines {
		row, err := parseRow(strings.TrimSpace(line), sep, cell)
		if err != nil {
			return nil, fmt.Errorf("%w (line %d)", err, y+1)
		}
		rows = append(rows, row)
	}

	return FromRows(rows)
}

// parseRow converts one trimmed line into cells.
func parseRow[T comparable](line, sep string, cell CellParser[T]) ([]T, error) {
	var tokens []string
	if sep == "" {
		tokens = make([]string, 0, len(line))
		for _, r := range line {
			tokens = append(tokens, string(r))
		}
	} else if line != "" {
		tokens = strings.Split(line, sep)
	}
	row := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := cell(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrParseCell, tok, err)
		}
		row = append(row, v)
	}

	return row, nil
}

// Load is Parse for inputs known to be valid; it panics on any parse error.
func Load[T comparable](text, sep string, cell CellParser[T]) *Grid[T] {
	g, err := Parse(text, sep, cell)
	if err != nil {
		panic(err)
	}

	return g
}

// ParseRunes parses a character grid: one rune per cell, no separator.
func ParseRunes(text string) (*Grid[rune], error) {
	return Parse(text, "", RuneCell)
}

// LoadRunes is ParseRunes that panics on invalid input.
func LoadRunes(text string) *Grid[rune] {
	return Load(text, "", RuneCell)
}

// RuneCell accepts tokens made of exactly one rune.
func RuneCell(token string) (rune, error) {
	r, n := utf8.DecodeRuneInString(token)
	if n == 0 || n != len(token) || (r == utf8.RuneError && n == 1) {
		return 0, fmt.Errorf("want a single rune, got %d bytes", len(token))
	}

	return r, nil
}

// IntCell parses a base-10 integer token.
func IntCell(token string) (int, error) {
	return strconv.Atoi(token)
}

// Format renders g row by row: cells are formatted with cell and joined with
// sep, rows are joined with "\n". There is no trailing newline.
// Complexity: O(W×H).
func (g *Grid[T]) Format(cell func(T) string, sep string) string {
	var b strings.Builder
	for y := 0; y < g.size.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.size.Width; x++ {
			if x > 0 {
				b.WriteString(sep)
			}
			b.WriteString(cell(g.cells[y*g.size.Width+x]))
		}
	}

	return b.String()
}

// Text serializes a character grid back to the text ParseRunes accepts.
// Text(LoadRunes(s)) == strings.TrimSpace(s) for rectangular input whose
// lines carry no surrounding whitespace.
func Text(g *Grid[rune]) string {
	return g.Format(func(r rune) string { return string(r) }, "")
}
