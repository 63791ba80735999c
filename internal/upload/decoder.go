package upload

import "unicode/utf8"

// Decoder is an incremental UTF-8 decoder. It retains an incomplete
// multi-byte sequence at the end of one chunk and prepends it to the next,
// so text split at arbitrary byte boundaries decodes correctly.
//
// A fresh decode-per-chunk would replace the split character with garbage
// on both sides of the boundary; this is the reason the decoder carries
// state between Write calls.
type Decoder struct {
	pending []byte
}

// Write consumes the next chunk and returns the decoded text that is safe
// to emit. Bytes that form the start of an incomplete multi-byte sequence
// are held back for the next call.
func (d *Decoder) Write(chunk []byte) string {
	if len(chunk) == 0 {
		return ""
	}

	buf := chunk
	if len(d.pending) > 0 {
		buf = append(d.pending, chunk...)
		d.pending = nil
	}

	hold := incompleteTailLen(buf)
	if hold > 0 {
		d.pending = append([]byte(nil), buf[len(buf)-hold:]...)
		buf = buf[:len(buf)-hold]
	}

	return string(buf)
}

// Flush returns any remaining text once the stream has ended. A dangling
// incomplete sequence at EOF decodes to a single replacement character,
// matching how incremental text decoders terminate.
func (d *Decoder) Flush() string {
	if len(d.pending) == 0 {
		return ""
	}
	d.pending = nil
	return string(utf8.RuneError)
}

// incompleteTailLen reports how many trailing bytes of buf form the start
// of a UTF-8 sequence whose continuation bytes have not arrived yet.
// Returns 0 when the buffer ends on a complete (or hopelessly invalid)
// boundary.
func incompleteTailLen(buf []byte) int {
	for back := 1; back <= utf8.UTFMax && back <= len(buf); back++ {
		b := buf[len(buf)-back]
		if b < 0x80 {
			// ASCII: boundary is complete
			return 0
		}
		if b >= 0xC0 {
			// Start byte: hold back if its sequence is longer than what we have
			if seqLen(b) > back {
				return back
			}
			return 0
		}
		// Continuation byte, keep scanning backwards
	}
	return 0
}

// seqLen returns the declared length of a UTF-8 sequence given its start
// byte, or 0 for an invalid start byte.
func seqLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
