package charset

import (
	"unicode/utf8"

	escpos "github.com/fabienbellanger/escpos-go"
)

// Encoder turns a string into the bytes sent with a print command,
// optionally through a page-code table with per-character fallback.
//
// The zero value replaces invalid input sequences with '?'; a strict
// encoder rejects them instead.
type Encoder struct {
	// Strict rejects text the generic encoder cannot represent instead
	// of substituting a replacement byte.
	Strict bool
}

const replacementByte = '?'

// Encode encodes text with the generic byte encoder. If maxLen > 0 the
// output is truncated to exactly maxLen bytes; this may cut a multi-byte
// character in half.
func (e Encoder) Encode(text string, maxLen int) ([]byte, error) {
	out, err := e.generic(text)
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && len(out) > maxLen {
		out = out[:maxLen]
	}
	return out, nil
}

// EncodeWithPageCode encodes text one Unicode scalar at a time: a
// character present in the page-code table costs one byte; any other
// character falls back to the generic encoder. A character whose bytes
// would exceed maxLen is dropped along with the remainder of the text,
// so an encoded character is never split on this path. maxLen <= 0 means
// no limit.
func (e Encoder) EncodeWithPageCode(text string, pc PageCode, maxLen int) ([]byte, error) {
	table, ok := Table(pc)
	if !ok {
		return nil, escpos.Inputf("no table registered for page code %s", pc)
	}

	out := make([]byte, 0, len(text))
	for _, r := range text {
		var encoded []byte
		if b, found := table[r]; found {
			encoded = []byte{b}
		} else {
			enc, err := e.generic(string(r))
			if err != nil {
				return nil, err
			}
			encoded = enc
		}
		if maxLen > 0 && len(out)+len(encoded) > maxLen {
			break
		}
		out = append(out, encoded...)
	}
	return out, nil
}

// generic is the fallback byte encoder: UTF-8 with replacement or
// rejection of invalid sequences.
func (e Encoder) generic(text string) ([]byte, error) {
	if utf8.ValidString(text) {
		return []byte(text), nil
	}
	if e.Strict {
		return nil, escpos.Inputf("text contains byte sequences the encoder cannot represent")
	}
	out := make([]byte, 0, len(text))
	for _, r := range text {
		if r == utf8.RuneError {
			out = append(out, replacementByte)
			continue
		}
		out = utf8.AppendRune(out, r)
	}
	return out, nil
}
