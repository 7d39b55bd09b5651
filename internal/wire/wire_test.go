package wire

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetU16U32RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutU16(buf[0:2], 0xbeef)
	PutU32(buf[2:6], 0xdeadbeef)
	assert.Equal(t, uint16(0xbeef), GetU16(buf[0:2]))
	assert.Equal(t, uint32(0xdeadbeef), GetU32(buf[2:6]))
}

func TestPutStringTruncatesAndNulPads(t *testing.T) {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = 0xff
	}
	PutString(buf, "hi", 8)
	assert.Equal(t, "hi", GetString(buf))
	assert.Equal(t, byte(0), buf[2])

	// Exact-width string leaves room for the NUL terminator.
	PutString(buf, "12345678", 8)
	assert.Equal(t, "1234567", GetString(buf))
}

func TestPutIPv4BEZeroesOnBadInput(t *testing.T) {
	buf := make([]byte, 4)
	PutIPv4BE(buf, nil)
	assert.Equal(t, []byte{0, 0, 0, 0}, buf)

	PutIPv4BE(buf, []byte{127, 0, 0, 1})
	assert.Equal(t, []byte{127, 0, 0, 1}, buf)
}

func TestDecodeFrameFixedBody(t *testing.T) {
	bodyLen := func(opcode uint16) (int, bool) {
		if opcode == 0x1234 {
			return 4, true
		}
		return 0, false
	}

	frame := []byte{0x34, 0x12, 1, 2, 3, 4}
	opcode, body, consumed, err := DecodeFrame(frame, bodyLen)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), opcode)
	assert.Equal(t, []byte{1, 2, 3, 4}, body)
	assert.Equal(t, 6, consumed)
}

func TestDecodeFrameNeedsMoreDataDoesNotConsume(t *testing.T) {
	bodyLen := func(opcode uint16) (int, bool) { return 4, true }

	// Only the opcode is present; the 4-byte body hasn't arrived yet.
	frame := []byte{0x34, 0x12}
	_, _, consumed, err := DecodeFrame(frame, bodyLen)
	assert.ErrorIs(t, err, ErrNeedMoreData)
	assert.Equal(t, 0, consumed)
}

func TestDecodeFrameUnknownOpcodeIsFatal(t *testing.T) {
	bodyLen := func(opcode uint16) (int, bool) { return 0, false }

	frame := []byte{0xff, 0xff}
	_, _, _, err := DecodeFrame(frame, bodyLen)
	var decErr DecodeError
	require.True(t, errors.As(err, &decErr))
}

func TestDecodeFrameSizePrefixed(t *testing.T) {
	bodyLen := func(opcode uint16) (int, bool) { return SizePrefixed, true }

	// opcode(2) + size(2)=8 + 4-byte body.
	frame := []byte{0x01, 0x00, 0x08, 0x00, 0xaa, 0xbb, 0xcc, 0xdd}
	opcode, body, consumed, err := DecodeFrame(frame, bodyLen)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), opcode)
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, body)
	assert.Equal(t, 8, consumed)
}

func TestOverflowErrorMessage(t *testing.T) {
	err := OverflowError{Needed: 12}
	assert.Contains(t, err.Error(), "12")
}
