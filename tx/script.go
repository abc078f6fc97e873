package tx

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/txscript"
)

// extractOpReturnPush returns the data push of an OP_RETURN output script.
// Three push encodings occur in practice: a direct push (opcode 1-75 is the
// length), OP_PUSHDATA1 (next byte is the length), and OP_PUSHDATA2 (next
// two bytes, little-endian, are the length). A script whose declared length
// runs past the buffer yields no match; nothing is ever read out of bounds.
func extractOpReturnPush(script []byte) ([]byte, bool) {
	if len(script) < 2 || script[0] != txscript.OP_RETURN {
		return nil, false
	}

	var start, length int
	switch op := script[1]; {
	case op >= txscript.OP_DATA_1 && op <= txscript.OP_DATA_75:
		start, length = 2, int(op)
	case op == txscript.OP_PUSHDATA1:
		if len(script) < 3 {
			return nil, false
		}
		start, length = 3, int(script[2])
	case op == txscript.OP_PUSHDATA2:
		if len(script) < 4 {
			return nil, false
		}
		start, length = 4, int(binary.LittleEndian.Uint16(script[2:4]))
	default:
		return nil, false
	}

	if start+length > len(script) {
		return nil, false
	}
	return script[start : start+length], true
}
