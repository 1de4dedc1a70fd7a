// SPDX-License-Identifier: EPL-2.0

package riff

import "encoding/binary"

// ChunkHeader describes a chunk in a buffer. DataStart and DataEnd are
// absolute offsets; the payload is buf[DataStart:DataEnd].
type ChunkHeader struct {
	ID        string
	Size      uint32
	Offset    int
	DataStart int
	DataEnd   int
}

// ListHeader describes a LIST record. Its children occupy
// buf[DataStart:DataEnd].
type ListHeader struct {
	Type      string
	Size      uint32
	Offset    int
	DataStart int
	DataEnd   int
}

// ContainerHeader describes the top-level RIFF record.
type ContainerHeader struct {
	FormType  string
	Size      uint32
	DataStart int
	DataEnd   int
}

// DecodeChunkHeader reads the chunk header at offset. It fails with
// ErrTruncatedBuffer when the header or the declared payload does not fit
// in buf.
func DecodeChunkHeader(buf []byte, offset int) (ChunkHeader, error) {
	return decodeChunkHeader(buf, offset, len(buf))
}

// DecodeListHeader reads the LIST header at offset. It fails with
// ErrMalformedContainer when the literal is not "LIST" or the size cannot
// hold the type tag, and with ErrTruncatedBuffer when the list does not fit
// in buf.
func DecodeListHeader(buf []byte, offset int) (ListHeader, error) {
	return decodeListHeader(buf, offset, len(buf))
}

// DecodeContainerHeader checks the "RIFF" literal and the form type at the
// start of buf and returns the payload extent.
func DecodeContainerHeader(buf []byte, formType string) (ContainerHeader, error) {
	if len(buf) < ContainerHeaderSize {
		return ContainerHeader{}, formatError(0, "", ErrTruncatedBuffer)
	}

	if got := string(buf[0:4]); got != RIFFTag {
		return ContainerHeader{}, &FormatError{Offset: 0, Tag: got, Want: RIFFTag, Err: ErrMalformedContainer}
	}

	size := binary.LittleEndian.Uint32(buf[4:8])
	got := string(buf[8:12])

	if got != formType {
		return ContainerHeader{}, &FormatError{Offset: 8, Tag: got, Want: formType, Err: ErrMalformedContainer}
	}

	if size < 4 {
		return ContainerHeader{}, formatError(0, got, ErrMalformedContainer)
	}

	h := ContainerHeader{
		FormType:  got,
		Size:      size,
		DataStart: ContainerHeaderSize,
		DataEnd:   ContainerHeaderSize + int(size) - 4,
	}

	if h.DataEnd > len(buf) {
		return ContainerHeader{}, formatError(0, got, ErrTruncatedBuffer)
	}

	return h, nil
}

func decodeChunkHeader(buf []byte, offset, limit int) (ChunkHeader, error) {
	if offset < 0 || offset+ChunkHeaderSize > limit {
		return ChunkHeader{}, formatError(offset, "", ErrTruncatedBuffer)
	}

	h := ChunkHeader{
		ID:        string(buf[offset : offset+4]),
		Size:      binary.LittleEndian.Uint32(buf[offset+4 : offset+8]),
		Offset:    offset,
		DataStart: offset + ChunkHeaderSize,
	}
	h.DataEnd = h.DataStart + int(h.Size)

	if h.DataEnd > limit || h.DataEnd < h.DataStart {
		return ChunkHeader{}, formatError(offset, h.ID, ErrTruncatedBuffer)
	}

	return h, nil
}

func decodeListHeader(buf []byte, offset, limit int) (ListHeader, error) {
	if offset < 0 || offset+ListHeaderSize > limit {
		return ListHeader{}, formatError(offset, "", ErrTruncatedBuffer)
	}

	if got := string(buf[offset : offset+4]); got != ListTag {
		return ListHeader{}, &FormatError{Offset: offset, Tag: got, Want: ListTag, Err: ErrMalformedContainer}
	}

	h := ListHeader{
		Size:      binary.LittleEndian.Uint32(buf[offset+4 : offset+8]),
		Type:      string(buf[offset+8 : offset+12]),
		Offset:    offset,
		DataStart: offset + ListHeaderSize,
	}

	if h.Size < 4 {
		return ListHeader{}, formatError(offset, h.Type, ErrMalformedContainer)
	}

	h.DataEnd = h.DataStart + int(h.Size) - 4

	if h.DataEnd > limit || h.DataEnd < h.DataStart {
		return ListHeader{}, formatError(offset, h.Type, ErrTruncatedBuffer)
	}

	return h, nil
}
