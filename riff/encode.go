// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"math"
)

// Literal tags of the outer records.
const (
	RIFFTag = "RIFF"
	ListTag = "LIST"
)

// Header sizes in bytes.
const (
	ChunkHeaderSize     = 8
	ListHeaderSize      = 12
	ContainerHeaderSize = 12
)

// Alignment is the required payload granularity. Standard RIFF pads to 2
// bytes; this format requires every payload to be a multiple of 4 so that
// float sample data is always aligned.
const Alignment = 4

// EncodeChunk returns id, the little-endian payload length and data.
func EncodeChunk(id string, data []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, formatError(-1, id, ErrInvalidTag)
	}

	if len(data)%Alignment != 0 {
		return nil, formatError(-1, id, ErrUnalignedPayload)
	}

	if uint64(len(data)) > math.MaxUint32 {
		return nil, formatError(-1, id, ErrPayloadTooLarge)
	}

	out := make([]byte, ChunkHeaderSize+len(data))
	copy(out[0:4], id)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(data)))
	copy(out[ChunkHeaderSize:], data)

	return out, nil
}

// EncodeList returns a LIST record of the given type whose payload is the
// concatenation of children. Children must already be encoded records.
func EncodeList(listType string, children ...[]byte) ([]byte, error) {
	return encodeGroup(ListTag, listType, children)
}

// EncodeContainer wraps payload in the top-level RIFF header of formType.
func EncodeContainer(formType string, payload []byte) ([]byte, error) {
	return encodeGroup(RIFFTag, formType, [][]byte{payload})
}

// encodeGroup writes literal | size | groupType | children, with
// size = 4 + total child length.
func encodeGroup(literal, groupType string, children [][]byte) ([]byte, error) {
	if len(groupType) != 4 {
		return nil, formatError(-1, groupType, ErrInvalidTag)
	}

	total := uint64(4)
	for _, c := range children {
		if len(c)%Alignment != 0 {
			return nil, formatError(-1, groupType, ErrUnalignedPayload)
		}
		total += uint64(len(c))
	}

	if total > math.MaxUint32 {
		return nil, formatError(-1, groupType, ErrPayloadTooLarge)
	}

	out := make([]byte, 8, 8+total)
	copy(out[0:4], literal)
	binary.LittleEndian.PutUint32(out[4:8], uint32(total))
	out = append(out, groupType...)

	for _, c := range children {
		out = append(out, c...)
	}

	return out, nil
}

// PadJSON pads text with trailing spaces to the next multiple of Alignment.
// Whitespace after a JSON value is ignored by decoders.
func PadJSON(text []byte) []byte {
	rem := len(text) % Alignment
	if rem == 0 {
		return text
	}

	padded := make([]byte, len(text), len(text)+Alignment-rem)
	copy(padded, text)

	for range Alignment - rem {
		padded = append(padded, ' ')
	}

	return padded
}
