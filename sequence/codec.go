// SPDX-License-Identifier: MIT
// Package: transmission/sequence
//
// codec.go - "<count>x<status>" text format.
//
// Tokens are whitespace separated and may span several lines; a status
// given twice keeps its last count.

package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads whitespace-separated "<count>x<status>" tokens.
// A status given twice keeps the last multiplicity.
func Parse(text string) (Sequence, error) {
	s := New()
	if err := parseInto(s, text); err != nil {
		return nil, err
	}
	return s, nil
}

func parseInto(s Sequence, text string) error {
	for _, tok := range strings.Fields(text) {
		countStr, statusStr, ok := strings.Cut(tok, "x")
		if !ok || countStr == "" || statusStr == "" {
			return fmt.Errorf("Parse(%q): %w", tok, ErrMalformed)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return fmt.Errorf("Parse(%q): count: %w", tok, ErrMalformed)
		}
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			return fmt.Errorf("Parse(%q): status: %w", tok, ErrMalformed)
		}
		if count <= 0 {
			return fmt.Errorf("Parse(%q): %w", tok, ErrBadMultiplicity)
		}
		if status < 0 {
			return fmt.Errorf("Parse(%q): %w", tok, ErrNegativeStatus)
		}
		s[status] = count
	}
	return nil
}

// Read parses a sequence spread over any number of lines.
func Read(r io.Reader) (Sequence, error) {
	s := New()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := parseInto(s, sc.Text()); err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return s, nil
}

// Write renders s on a single line followed by a newline.
func Write(w io.Writer, s Sequence) error {
	if _, err := io.WriteString(w, s.String()+"\n"); err != nil {
		return fmt.Errorf("Write: %w", err)
	}
	return nil
}
