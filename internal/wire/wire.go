// Package wire implements the framed binary codec shared by the login
// and character protocols: fixed-width little-endian integers, big-endian
// IP addresses, NUL-padded fixed-length strings and the opcode-prefixed
// frame convention described in spec.md §4.1.
//
// Decoding follows the same shape the teacher's internal/protocol package
// uses for its own Blowfish-wrapped frames (ReadPacket/WritePacket): a
// decoder consumes a byte slice and either returns the bytes consumed, or
// signals that more data is needed, or fails fatally. Encoding writes into
// a caller-supplied buffer and signals "too small" with the size needed
// rather than ever writing a partial frame.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrNeedMoreData is returned by a decoder when the supplied buffer does
// not yet contain a full frame. Callers must not treat this as fatal: they
// should keep reading from the socket and retry decoding with more bytes.
var ErrNeedMoreData = errors.New("wire: need more data")

// DecodeError is a fatal decode failure: an invalid opcode, or a
// successfully classified packet whose body fails validation. The
// connection must be closed after a DecodeError.
type DecodeError struct {
	Reason string
}

func (e DecodeError) Error() string { return "wire: " + e.Reason }

func decodeErrorf(format string, args ...any) error {
	return DecodeError{Reason: fmt.Sprintf(format, args...)}
}

// OverflowError is returned by an encoder when buf is smaller than the
// space required to serialize the response. Needed is the number of bytes
// the caller must provide; no partial write occurs.
type OverflowError struct {
	Needed int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("wire: buffer too small, need %d bytes", e.Needed)
}

// PutU16 writes a little-endian uint16 at buf[0:2].
func PutU16(buf []byte, v uint16) { binary.LittleEndian.PutUint16(buf, v) }

// PutU32 writes a little-endian uint32 at buf[0:4].
func PutU32(buf []byte, v uint32) { binary.LittleEndian.PutUint32(buf, v) }

// GetU16 reads a little-endian uint16 from buf[0:2].
func GetU16(buf []byte) uint16 { return binary.LittleEndian.Uint16(buf) }

// GetU32 reads a little-endian uint32 from buf[0:4].
func GetU32(buf []byte) uint32 { return binary.LittleEndian.Uint32(buf) }

// PutIPv4BE writes a 4-byte big-endian IPv4 address. ip must be a 4-byte
// slice (net.IP.To4()); an ip of any other length (nil, short, or the
// 16-byte form) is written as all-zero.
func PutIPv4BE(buf []byte, ip []byte) {
	if len(ip) != 4 {
		clear(buf[:4])
		return
	}
	copy(buf[:4], ip)
}

// PutString writes s into a fixed-width NUL-padded field of the given
// width, truncating s if it (plus its terminator) would overflow. Excess
// bytes after the first NUL are left zeroed, matching the "excess bytes
// after the first NUL are ignored on decode" decode rule in spec.md §4.1.
func PutString(buf []byte, s string, width int) {
	clear(buf[:width])
	n := len(s)
	if n > width {
		n = width
	}
	// Leave room for the NUL terminator when s fills the field exactly.
	if n == width && width > 0 {
		n = width - 1
	}
	copy(buf[:n], s[:n])
}

// GetString reads a fixed-width NUL-padded string field, stopping at the
// first NUL byte (or the field width if none is present).
func GetString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}

// PutBool writes a one-byte boolean (0/1).
func PutBool(buf []byte, v bool) {
	if v {
		buf[0] = 1
	} else {
		buf[0] = 0
	}
}

// GetBool reads a one-byte boolean; any non-zero byte is true.
func GetBool(buf []byte) bool { return buf[0] != 0 }

// NeedBytes is a small helper for decoders: returns ErrNeedMoreData if buf
// is shorter than n.
func NeedBytes(buf []byte, n int) error {
	if len(buf) < n {
		return ErrNeedMoreData
	}
	return nil
}
