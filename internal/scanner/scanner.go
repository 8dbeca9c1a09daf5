package scanner

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strings"
)

// WindowLines is the number of physical lines a single table row may span.
const WindowLines = 11

// ws matches whitespace between tags, vertical breaks included.
const ws = `[\s\v\x{85}\x{2028}\x{2029}]*`

var rowRe = regexp.MustCompile(
	`<tr>` + ws + `<td>` + ws + `<p>([^<>]+)</p>` + ws + `</td>` +
		ws + `<td>` + ws + `<p>(?:<a href="([^"]+)"[^<>]*>)?([^<>]+)(?:</a>)?</p>` + ws + `</td>` +
		ws + `<td>` + ws + `<p>([^<>]+)</p>` + ws + `</td>` + ws + `</tr>`,
)

// Row is one manufacturer table row as it appears in the HTML.
type Row struct {
	Code   string
	URL    string
	Name   string
	Status string

	// Line is the 1-based line holding the closing </tr>.
	Line int
}

type Scanner struct {
	r      *bufio.Reader
	window []string
	lines  int
	queue  []Row
	cur    Row
	err    error
	eof    bool
}

func New(r io.Reader) *Scanner {
	return &Scanner{
		r:      bufio.NewReader(r),
		window: make([]string, 0, WindowLines+1),
	}
}

// Scan advances to the next recognized row. It returns false at the end of
// the input or on a read error, which Err reports.
func (s *Scanner) Scan() bool {
	for len(s.queue) == 0 {
		if s.eof || s.err != nil {
			return false
		}
		s.readLine()
	}

	s.cur = s.queue[0]
	s.queue = s.queue[1:]
	return true
}

func (s *Scanner) Row() Row {
	return s.cur
}

func (s *Scanner) Err() error {
	return s.err
}

// Lines reports how many physical lines have been consumed so far.
func (s *Scanner) Lines() int {
	return s.lines
}

func (s *Scanner) readLine() {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
			return
		}
		s.eof = true
		if line == "" {
			return
		}
	}

	s.lines++
	s.window = append(s.window, line)
	if len(s.window) > WindowLines {
		s.window = s.window[1:]
	}

	s.match(len(line))
}

// match queues every row whose closing tag sits on the newest line, so a
// row is reported once even though it stays in the window for a while.
func (s *Scanner) match(newest int) {
	joined := strings.Join(s.window, "")
	start := len(joined) - newest

	for _, m := range rowRe.FindAllStringSubmatchIndex(joined, -1) {
		if m[1] <= start {
			continue
		}

		row := Row{
			Code:   joined[m[2]:m[3]],
			Name:   joined[m[6]:m[7]],
			Status: joined[m[8]:m[9]],
			Line:   s.lines,
		}
		if m[4] >= 0 {
			row.URL = joined[m[4]:m[5]]
		}

		s.queue = append(s.queue, row)
	}
}
