package tail

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidEncoding is reported when read bytes are not valid UTF-8 and
// cannot be explained as a multi-byte sequence waiting for its remaining
// bytes.
var ErrInvalidEncoding = errors.New("invalid UTF-8 sequence")

// decode prepends any pending bytes from the previous cycle to data and
// decodes greedily from the front. A trailing incomplete sequence is kept
// back as the new pending prefix; it is emitted only once its final byte
// arrives. Invalid bytes clear the cycle: the valid prefix is returned
// together with ErrInvalidEncoding and the remainder is dropped.
//
// Invariant: pending never holds utf8.UTFMax or more bytes, and always
// forms a valid prefix of some character.
func (f *Follower) decode(data []byte) (string, error) {

	buf := data
	if len(f.pending) > 0 {
		buf = make([]byte, 0, len(f.pending)+len(data))
		buf = append(buf, f.pending...)
		buf = append(buf, data...)
		f.pending = f.pending[:0]
	}

	valid := 0
	for valid < len(buf) {
		if buf[valid] < utf8.RuneSelf {
			valid++
			continue
		}
		r, size := utf8.DecodeRune(buf[valid:])
		if r != utf8.RuneError || size > 1 {
			valid += size
			continue
		}
		if !utf8.FullRune(buf[valid:]) {
			// Incomplete trailing sequence. By construction this can only
			// happen at the end of the buffer.
			f.pending = append(f.pending, buf[valid:]...)
			return string(buf[:valid]), nil
		}
		return string(buf[:valid]),
			fmt.Errorf("tail.decode: %w: byte 0x%02X at offset %d", ErrInvalidEncoding, buf[valid], f.offset+int64(valid)-int64(len(buf)))
	}

	return string(buf), nil
}
