// SPDX-License-Identifier: EPL-2.0

package rle

import "bytes"

// ExpandBlocks rewrites every "(body)^rep" group as rep copies of "body,".
//
// Groups do not nest: the body ends at the first ')' after '('. A '(' without
// a closing ')' is dropped. A missing or unreadable "^rep" counts as one
// repetition. Repetitions that would grow the text past 1 GiB are skipped.
// Text without '(' is returned unchanged.
func ExpandBlocks(text []byte) []byte {
	if bytes.IndexByte(text, '(') < 0 {
		return text
	}

	out := make([]byte, 0, len(text)*2)
	p := text

	for len(p) > 0 {
		open := bytes.IndexByte(p, '(')
		if open < 0 {
			out = append(out, p...)
			break
		}
		out = append(out, p[:open]...)

		closeAt := bytes.IndexByte(p[open:], ')')
		if closeAt < 0 {
			p = p[open+1:]
			continue
		}
		closeAt += open

		body := p[open+1 : closeAt]
		rest := p[closeAt+1:]

		rep, used := parseRepeat(rest)
		rest = rest[used:]

		for range rep {
			if len(out)+len(body)+1 > maxExpandedText {
				break
			}
			out = append(out, body...)
			out = append(out, ',')
		}

		if len(rest) > 0 && rest[0] == ',' {
			rest = rest[1:]
		}
		p = rest
	}

	return out
}

// parseRepeat reads "^<digits>" at the start of p. It returns the repeat
// count and the number of bytes consumed; without a valid suffix it reports
// one repetition and consumes nothing.
func parseRepeat(p []byte) (int, int) {
	if len(p) < 2 || p[0] != '^' {
		return 1, 0
	}

	n, i := 0, 1
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		n = n*10 + int(p[i]-'0')
		if n > maxBlockRepeat {
			n = maxBlockRepeat
		}
		i++
	}
	if i == 1 {
		return 1, 0
	}
	return n, i
}

// maxBlockRepeat caps a single group so corrupt input cannot request an
// unbounded expansion.
const maxBlockRepeat = 1 << 20

// maxExpandedText bounds the expanded text; repetitions past it are skipped.
const maxExpandedText = 1 << 30
