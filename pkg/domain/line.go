package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LineValue is the raw value cast for one line.
//
//	1, 7  young yang (static)
//	2, 8  young yin (static)
//	3, 9  old yang (moving)
//	4, 6  old yin (moving)
type LineValue int

// Valid reports whether v is in the accepted domain.
func (v LineValue) Valid() bool {
	switch v {
	case 1, 2, 3, 4, 6, 7, 8, 9:
		return true
	}
	return false
}

// Yang reports whether the line is unbroken.
func (v LineValue) Yang() bool {
	return v%2 == 1
}

// Moving reports whether the line changes into its opposite.
func (v LineValue) Moving() bool {
	switch v {
	case 3, 4, 6, 9:
		return true
	}
	return false
}

// Bit is the pattern character of the line.
func (v LineValue) Bit() byte {
	if v.Yang() {
		return '1'
	}
	return '0'
}

// Lines holds six validated values, bottom to top.
type Lines [6]LineValue

// NewLines validates raw values. No partial result is built on failure.
func NewLines(values []int) (Lines, error) {
	var lines Lines
	if len(values) != len(lines) {
		return lines, &LineError{Index: -1, Count: len(values)}
	}
	for i, v := range values {
		lv := LineValue(v)
		if !lv.Valid() {
			return Lines{}, &LineError{Index: i, Value: v, Count: len(values)}
		}
		lines[i] = lv
	}
	return lines, nil
}

// Pattern derives the yin/yang pattern from the parities.
func (l Lines) Pattern() Pattern {
	b := make([]byte, len(l))
	for i, v := range l {
		b[i] = v.Bit()
	}
	return Pattern(b)
}

// Changed derives the pattern after every moving line has flipped.
func (l Lines) Changed() Pattern {
	b := make([]byte, len(l))
	for i, v := range l {
		bit := v.Bit()
		if v.Moving() {
			bit = flipBit(bit)
		}
		b[i] = bit
	}
	return Pattern(b)
}

// Moving returns the 0-based indices of the moving lines.
func (l Lines) Moving() []int {
	idx := []int{}
	for i, v := range l {
		if v.Moving() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Ints returns the raw values.
func (l Lines) Ints() []int {
	out := make([]int, len(l))
	for i, v := range l {
		out[i] = int(v)
	}
	return out
}

// ParseLines accepts "221242", "2,2,1,2,4,2" or "2 2 1 2 4 2".
// It only splits the input; domain validation happens in NewLines.
func ParseLines(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	var fields []string
	if strings.ContainsAny(s, ", ") {
		fields = strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	} else {
		for _, r := range s {
			fields = append(fields, string(r))
		}
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidLines, f)
		}
		out = append(out, n)
	}
	return out, nil
}
