package common

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrExhausted is returned when no candidate decodes the whole input.
var ErrExhausted = errors.New("no candidate encoding could decode the input")

// Candidate is one named encoding in the fallback sequence.
type Candidate struct {
	Name string
	// Labels are the charset names chardet may report for this encoding.
	Labels []string

	enc   encoding.Encoding
	valid func([]byte) bool
}

// Decoded is the text of a successful decode plus the encoding that produced it.
type Decoded struct {
	Text     string
	Encoding string
}

// Candidates returns the fixed fallback order. Order is precedence, not accuracy.
func Candidates() []Candidate {
	return []Candidate{
		utf8Candidate(),
		singleByte("cp1251", cyrillicWindows, charmap.Windows1251, 0x98),
		singleByte("cp866", []string{"IBM866", "cp866"}, charmap.CodePage866),
		singleByte("windows-1251", cyrillicWindows, charmap.Windows1251, 0x98),
	}
}

var cyrillicWindows = []string{"windows-1251", "cp1251"}

func utf8Candidate() Candidate {
	return Candidate{
		Name:   "utf-8",
		Labels: []string{"UTF-8"},
		// UTF8BOM strips a leading BOM on decode
		enc:   unicode.UTF8BOM,
		valid: utf8.Valid,
	}
}

// singleByte builds a strict charmap candidate. x/text never fails on a
// charmap decode, so bytes mapping to U+FFFD and the listed undefined bytes
// are rejected up front.
func singleByte(name string, labels []string, cm *charmap.Charmap, undefined ...byte) Candidate {
	return Candidate{
		Name:   name,
		Labels: labels,
		enc:    cm,
		valid: func(b []byte) bool {
			for _, c := range b {
				if bytes.IndexByte(undefined, c) >= 0 || cm.DecodeByte(c) == utf8.RuneError {
					return false
				}
			}
			return true
		},
	}
}

// Decode decodes the whole of b or reports false. Partial results are never returned.
func (c Candidate) Decode(b []byte) (string, bool) {
	if !c.valid(b) {
		return "", false
	}
	out, err := c.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// Matches reports whether a detector charset name refers to this candidate.
func (c Candidate) Matches(charset string) bool {
	for _, l := range c.Labels {
		if strings.EqualFold(l, charset) {
			return true
		}
	}
	return false
}

// Lookup returns the default candidate with the given name, falling back to labels.
func Lookup(name string) (Candidate, bool) {
	all := Candidates()
	for _, c := range all {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	for _, c := range all {
		if c.Matches(name) {
			return c, true
		}
	}
	return Candidate{}, false
}

// Decode tries candidates in order and returns the first full decode.
func Decode(data []byte, candidates []Candidate) (Decoded, error) {
	decoded, _, err := selectCandidate(data, candidates, nil)
	return decoded, err
}

func selectCandidate(data []byte, candidates []Candidate, rejected func(Candidate)) (Decoded, Candidate, error) {
	for _, c := range candidates {
		text, ok := c.Decode(data)
		if !ok {
			if rejected != nil {
				rejected(c)
			}
			continue
		}
		return Decoded{Text: text, Encoding: c.Name}, c, nil
	}
	return Decoded{}, Candidate{}, ErrExhausted
}
