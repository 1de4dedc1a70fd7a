// SPDX-License-Identifier: EPL-2.0

package riff

// Scanner walks consecutive sibling records inside [start, end) of a buffer.
// Each record's extent comes from its own header and is checked against end,
// so a child can never reach past its parent. The walk is a single linear
// pass over the bytes.
type Scanner struct {
	buf []byte
	off int
	end int
}

// NewScanner returns a scanner over buf[start:end]. end is clamped to len(buf).
func NewScanner(buf []byte, start, end int) *Scanner {
	return &Scanner{buf: buf, off: start, end: min(end, len(buf))}
}

// Offset is the position of the next record.
func (s *Scanner) Offset() int { return s.off }

// More reports whether bytes remain before end.
func (s *Scanner) More() bool { return s.off < s.end }

// Chunk decodes the chunk at the cursor and advances past it.
func (s *Scanner) Chunk() (ChunkHeader, error) {
	h, err := decodeChunkHeader(s.buf, s.off, s.end)
	if err != nil {
		return ChunkHeader{}, err
	}

	s.off = h.DataEnd

	return h, nil
}

// ExpectChunk decodes the next chunk and checks its id.
func (s *Scanner) ExpectChunk(id string) (ChunkHeader, error) {
	h, err := s.Chunk()
	if err != nil {
		return ChunkHeader{}, err
	}

	if err := Expect(h.Offset, h.ID, id); err != nil {
		return ChunkHeader{}, err
	}

	return h, nil
}

// List decodes the LIST record at the cursor and advances past it.
// Use Enter to walk its children.
func (s *Scanner) List() (ListHeader, error) {
	h, err := decodeListHeader(s.buf, s.off, s.end)
	if err != nil {
		return ListHeader{}, err
	}

	s.off = h.DataEnd

	return h, nil
}

// ExpectList decodes the next LIST record and checks its type.
func (s *Scanner) ExpectList(listType string) (ListHeader, error) {
	h, err := s.List()
	if err != nil {
		return ListHeader{}, err
	}

	if err := Expect(h.Offset, h.Type, listType); err != nil {
		return ListHeader{}, err
	}

	return h, nil
}

// Enter returns a scanner over the children of l.
func (s *Scanner) Enter(l ListHeader) *Scanner {
	return NewScanner(s.buf, l.DataStart, l.DataEnd)
}

// Payload returns the bytes of a chunk without copying.
func (s *Scanner) Payload(h ChunkHeader) []byte {
	return s.buf[h.DataStart:h.DataEnd]
}
