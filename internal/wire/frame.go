package wire

// BodyLenFunc resolves an opcode to the length of its body (the bytes
// following the 2-byte opcode), or reports the opcode is unknown. A
// negative length means the packet is size-prefixed: the two bytes
// immediately following the opcode hold the total frame length (opcode +
// size field + body), little-endian, as described in spec.md §4.1.
type BodyLenFunc func(opcode uint16) (length int, known bool)

// SizePrefixed is the sentinel BodyLenFunc implementations return for
// opcodes whose size is carried on the wire rather than implied by the
// opcode.
const SizePrefixed = -1

// DecodeFrame reads one opcode-prefixed frame out of buf.
//
// It returns the opcode, the body bytes (the slice of buf holding exactly
// the declared body, no opcode/size prefix), and the total number of bytes
// consumed from buf. If buf does not yet contain a complete frame it
// returns ErrNeedMoreData and consumed=0; the caller must not advance its
// read cursor in that case. An unknown opcode is a fatal DecodeError.
func DecodeFrame(buf []byte, bodyLen BodyLenFunc) (opcode uint16, body []byte, consumed int, err error) {
	if err := NeedBytes(buf, 2); err != nil {
		return 0, nil, 0, err
	}
	opcode = GetU16(buf)

	length, known := bodyLen(opcode)
	if !known {
		return 0, nil, 0, decodeErrorf("invalid opcode 0x%04x", opcode)
	}

	if length < 0 {
		if err := NeedBytes(buf, 4); err != nil {
			return 0, nil, 0, err
		}
		total := int(GetU16(buf[2:4]))
		if total < 4 {
			return 0, nil, 0, decodeErrorf("invalid frame size %d for opcode 0x%04x", total, opcode)
		}
		if err := NeedBytes(buf, total); err != nil {
			return 0, nil, 0, err
		}
		return opcode, buf[4:total], total, nil
	}

	total := 2 + length
	if err := NeedBytes(buf, total); err != nil {
		return 0, nil, 0, err
	}
	return opcode, buf[2:total], total, nil
}
