// SPDX-License-Identifier: EPL-2.0

package rle

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ik5/txac/gain"
)

// Stats summarizes a Decode call.
type Stats struct {
	// Tokens is the number of non-empty tokens read, including near repeat
	// follow-ups and dropped ones.
	Tokens int
	// Literals, Runs and Snipers count the tokens decoded per form.
	Literals int
	Runs     int
	Snipers  int
	// Dropped counts malformed tokens that produced no samples.
	Dropped int
	// Empty counts empty tokens (",," or a trailing separator).
	Empty int
	// Blocks reports whether block repeat groups were expanded.
	Blocks bool
}

const (
	// MaxRunCount is the largest count an exact run may carry.
	MaxRunCount = 1 << 24
	// DefaultMaxSamples bounds the output of a single Decode call.
	DefaultMaxSamples = 1 << 30
)

// Decoder parses token text into samples, applying a gain stage to every
// value.
type Decoder struct {
	stage        gain.Stage
	logger       *slog.Logger
	expandBlocks bool
	sizeHint     int
	maxSamples   int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(d *Decoder) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithBlocks enables or disables block repeat expansion. It is enabled by
// default.
func WithBlocks(enabled bool) Option {
	return func(d *Decoder) { d.expandBlocks = enabled }
}

// WithSizeHint sets the initial sample capacity.
func WithSizeHint(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.sizeHint = n
		}
	}
}

// WithMaxSamples caps the number of samples runs may expand to. Runs that
// would exceed it are dropped.
func WithMaxSamples(n int) Option {
	return func(d *Decoder) {
		if n > 0 {
			d.maxSamples = n
		}
	}
}

// NewDecoder returns a decoder that applies stage to every decoded value.
func NewDecoder(stage gain.Stage, opts ...Option) *Decoder {
	d := &Decoder{
		stage:        stage,
		logger:       slog.Default(),
		expandBlocks: true,
		maxSamples:   DefaultMaxSamples,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode parses text and returns the decoded samples.
func (d *Decoder) Decode(text []byte) ([]int32, Stats) {
	var st Stats

	if d.expandBlocks && bytes.IndexByte(text, '(') >= 0 {
		text = ExpandBlocks(text)
		st.Blocks = true
	}

	hint := d.sizeHint
	if hint == 0 {
		// literals average a few bytes each
		hint = len(text)/4 + 16
	}
	s := &scanner{text: text}
	out := make([]int32, 0, hint)

	for !s.done() {
		tok := s.next()
		if len(tok) == 0 {
			st.Empty++
			continue
		}
		st.Tokens++

		switch form, v, count, err := parseToken(tok); {
		case err != nil:
			st.Dropped++
			d.drop(tok, s.pos, err)

		case form == formRun && count > d.maxSamples-len(out):
			st.Dropped++
			d.drop(tok, s.pos, fmt.Errorf("%w: run of %d exceeds the %d sample limit",
				ErrInvalidCount, count, d.maxSamples))

		case form == formRun:
			st.Runs++
			start := len(out)
			out = grow(out, count)
			d.stage.Fill(out[start:], v)

		case form == formSniper:
			st.Snipers++
			first := d.stage.Sample(v)
			out = append(out, first)
			for range count {
				lit := s.next()
				if len(lit) == 0 && s.done() {
					break
				}
				st.Tokens++
				lv, err := parseLeading(lit)
				if err != nil {
					st.Dropped++
					d.drop(lit, s.pos, err)
					continue
				}
				out = append(out, d.stage.Sample(lv))
			}
			out = append(out, first)

		default:
			st.Literals++
			out = append(out, d.stage.Sample(v))
		}
	}

	return out, st
}

func (d *Decoder) drop(tok []byte, offset int, err error) {
	d.logger.Warn("dropping token",
		slog.String("token", string(tok)),
		slog.Int("offset", offset),
		slog.Any("error", err))
}

type tokenForm int

const (
	formLiteral tokenForm = iota
	formRun
	formSniper
)

// parseToken classifies tok in priority order: exact run, near repeat,
// literal.
func parseToken(tok []byte) (tokenForm, float32, int, error) {
	if i := bytes.IndexByte(tok, '^'); i >= 0 {
		v, n, err := parsePair(tok[:i], tok[i+1:])
		if err != nil {
			return formRun, 0, 0, err
		}
		if n <= 0 || n > MaxRunCount {
			return formRun, 0, 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
		}
		return formRun, v, n, nil
	}

	if i := bytes.IndexByte(tok, '~'); i >= 0 {
		v, n, err := parsePair(tok[:i], tok[i+1:])
		if err != nil {
			return formSniper, 0, 0, err
		}
		if n < 0 {
			return formSniper, 0, 0, fmt.Errorf("%w: %d", ErrInvalidCount, n)
		}
		return formSniper, v, n, nil
	}

	v, err := parseLiteral(tok)
	return formLiteral, v, 0, err
}

func parsePair(value, count []byte) (float32, int, error) {
	v, err := parseLiteral(value)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(string(count))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedToken, count)
	}
	return v, n, nil
}

func parseLiteral(tok []byte) (float32, error) {
	if len(tok) == 0 || !numeric(tok) {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	f, err := strconv.ParseFloat(string(tok), 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	return float32(f), nil
}

// parseLeading reads the number at the start of tok and ignores whatever
// follows it, so "5^3" yields 5. Near repeat follow-ups are read this way.
func parseLeading(tok []byte) (float32, error) {
	return parseLiteral(tok[:numericPrefix(tok)])
}

// numericPrefix returns the length of the longest prefix of tok made of an
// optional sign, digits and at most one dot.
func numericPrefix(tok []byte) int {
	i := 0
	if len(tok) > 0 && (tok[0] == '-' || tok[0] == '+') {
		i++
	}
	for dot := false; i < len(tok); i++ {
		c := tok[i]
		if c == '.' && !dot {
			dot = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
	}
	return i
}

// numeric restricts literals to an optional sign and decimal digits with an
// optional fraction, rejecting the extra forms ParseFloat accepts.
func numeric(tok []byte) bool {
	i := 0
	if tok[0] == '-' || tok[0] == '+' {
		i++
	}
	digits, dot := 0, false
	for ; i < len(tok); i++ {
		switch c := tok[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

// grow extends s by n elements.
func grow(s []int32, n int) []int32 {
	if cap(s)-len(s) < n {
		ns := make([]int32, len(s), max(2*cap(s), len(s)+n))
		copy(ns, s)
		s = ns
	}
	return s[:len(s)+n]
}

// scanner walks comma separated tokens.
type scanner struct {
	text []byte
	pos  int
}

func (s *scanner) done() bool { return s.pos >= len(s.text) }

// next returns the text up to the next comma (or the end) and moves past
// the comma.
func (s *scanner) next() []byte {
	if s.done() {
		return nil
	}
	rest := s.text[s.pos:]
	i := bytes.IndexByte(rest, ',')
	if i < 0 {
		s.pos = len(s.text)
		return rest
	}
	s.pos += i + 1
	return rest[:i]
}
