// SPDX-License-Identifier: EPL-2.0

package riff

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChunk(t *testing.T, id string, data []byte) []byte {
	t.Helper()

	b, err := EncodeChunk(id, data)
	require.NoError(t, err)

	return b
}

func TestEncodeChunk_Layout(t *testing.T) {
	t.Parallel()

	b := mustChunk(t, "wavd", []byte{1, 2, 3, 4, 5, 6, 7, 8})

	require.Len(t, b, 16)
	assert.Equal(t, "wavd", string(b[0:4]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b[8:])
}

func TestEncodeChunk_Validation(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "abc", "abcde", "cfg"} {
		_, err := EncodeChunk(id, nil)
		assert.ErrorIs(t, err, ErrInvalidTag, "id %q", id)
	}

	for size := range 17 {
		_, err := EncodeChunk("data", make([]byte, size))
		if size%4 == 0 {
			assert.NoError(t, err, "size %d", size)
		} else {
			assert.ErrorIs(t, err, ErrUnalignedPayload, "size %d", size)
		}
	}
}

func TestEncodeList_Layout(t *testing.T) {
	t.Parallel()

	a := mustChunk(t, "cfgs", []byte("{}  "))
	b := mustChunk(t, "wavd", make([]byte, 8))

	l, err := EncodeList("wave", a, b)
	require.NoError(t, err)

	assert.Equal(t, "LIST", string(l[0:4]))
	assert.Equal(t, uint32(4+len(a)+len(b)), binary.LittleEndian.Uint32(l[4:8]))
	assert.Equal(t, "wave", string(l[8:12]))
	assert.Equal(t, append(append([]byte{}, a...), b...), l[12:])

	empty, err := EncodeList("wavs")
	require.NoError(t, err)
	assert.Equal(t, uint32(4), binary.LittleEndian.Uint32(empty[4:8]))

	_, err = EncodeList("wav", a)
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestEncodeContainer_Layout(t *testing.T) {
	t.Parallel()

	payload := mustChunk(t, "cfgs", []byte("abcd"))

	c, err := EncodeContainer("wask", payload)
	require.NoError(t, err)

	assert.Equal(t, "RIFF", string(c[0:4]))
	assert.Equal(t, uint32(4+len(payload)), binary.LittleEndian.Uint32(c[4:8]))
	assert.Equal(t, "wask", string(c[8:12]))
	assert.Equal(t, payload, c[12:])
}

func TestDecodeChunkHeader(t *testing.T) {
	t.Parallel()

	buf := append([]byte{0, 0, 0, 0}, mustChunk(t, "cfgs", []byte("abcdefgh"))...)

	h, err := DecodeChunkHeader(buf, 4)
	require.NoError(t, err)
	assert.Equal(t, ChunkHeader{ID: "cfgs", Size: 8, Offset: 4, DataStart: 12, DataEnd: 20}, h)
	assert.Equal(t, "abcdefgh", string(buf[h.DataStart:h.DataEnd]))
}

func TestDecodeChunkHeader_Truncated(t *testing.T) {
	t.Parallel()

	good := mustChunk(t, "wavd", make([]byte, 12))

	tests := []struct {
		name   string
		buf    []byte
		offset int
	}{
		{name: "payload one byte short", buf: good[:len(good)-1], offset: 0},
		{name: "header cut", buf: good[:6], offset: 0},
		{name: "offset past end", buf: good, offset: len(good)},
		{name: "negative offset", buf: good, offset: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeChunkHeader(tt.buf, tt.offset)
			require.ErrorIs(t, err, ErrTruncatedBuffer)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.offset, fe.Offset)
		})
	}

	h, err := DecodeChunkHeader(good, 0)
	require.NoError(t, err)
	assert.Equal(t, len(good), h.DataEnd)
}

func TestDecodeChunkHeader_HugeSize(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 16)
	copy(buf, "wavd")
	binary.LittleEndian.PutUint32(buf[4:8], 0xFFFFFFFF)

	_, err := DecodeChunkHeader(buf, 0)
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
}

func TestDecodeListHeader(t *testing.T) {
	t.Parallel()

	child := mustChunk(t, "cfgs", []byte("1234"))
	l, err := EncodeList("wave", child)
	require.NoError(t, err)

	h, err := DecodeListHeader(l, 0)
	require.NoError(t, err)
	assert.Equal(t, "wave", h.Type)
	assert.Equal(t, 12, h.DataStart)
	assert.Equal(t, len(l), h.DataEnd)
}

func TestDecodeListHeader_Errors(t *testing.T) {
	t.Parallel()

	child := mustChunk(t, "cfgs", []byte("1234"))
	l, err := EncodeList("wave", child)
	require.NoError(t, err)

	notList := append([]byte{}, l...)
	copy(notList, "LYST")

	tooSmall := append([]byte{}, l...)
	binary.LittleEndian.PutUint32(tooSmall[4:8], 3)

	tests := []struct {
		name string
		buf  []byte
		want error
	}{
		{name: "wrong literal", buf: notList, want: ErrMalformedContainer},
		{name: "size below type tag", buf: tooSmall, want: ErrMalformedContainer},
		{name: "truncated children", buf: l[:len(l)-4], want: ErrTruncatedBuffer},
		{name: "truncated header", buf: l[:10], want: ErrTruncatedBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeListHeader(tt.buf, 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeContainerHeader(t *testing.T) {
	t.Parallel()

	payload := mustChunk(t, "cfgs", []byte("abcd"))
	c, err := EncodeContainer("wask", payload)
	require.NoError(t, err)

	h, err := DecodeContainerHeader(c, "wask")
	require.NoError(t, err)
	assert.Equal(t, ContainerHeader{FormType: "wask", Size: uint32(4 + len(payload)), DataStart: 12, DataEnd: len(c)}, h)

	wrongRIFF := append([]byte{}, c...)
	copy(wrongRIFF, "RIFX")
	_, err = DecodeContainerHeader(wrongRIFF, "wask")
	require.ErrorIs(t, err, ErrMalformedContainer)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "RIFF", fe.Want)
	assert.Equal(t, "RIFX", fe.Tag)

	_, err = DecodeContainerHeader(c, "WAVE")
	require.ErrorIs(t, err, ErrMalformedContainer)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "WAVE", fe.Want)
	assert.Equal(t, "wask", fe.Tag)

	_, err = DecodeContainerHeader(c[:len(c)-1], "wask")
	assert.ErrorIs(t, err, ErrTruncatedBuffer)

	_, err = DecodeContainerHeader(c[:8], "wask")
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
}

func TestScanner_WalksSiblings(t *testing.T) {
	t.Parallel()

	var children []byte
	for _, id := range []string{"aaaa", "bbbb", "cccc"} {
		children = append(children, mustChunk(t, id, []byte(id+id))...)
	}

	l, err := EncodeList("wavs", children)
	require.NoError(t, err)

	outer := NewScanner(l, 0, len(l))
	list, err := outer.ExpectList("wavs")
	require.NoError(t, err)
	assert.False(t, outer.More())

	var ids []string
	for s := outer.Enter(list); s.More(); {
		h, err := s.Chunk()
		require.NoError(t, err)
		ids = append(ids, h.ID)
		assert.Equal(t, h.ID+h.ID, string(s.Payload(h)))
	}

	assert.Equal(t, []string{"aaaa", "bbbb", "cccc"}, ids)
}

func TestScanner_TruncatedFinalChunk(t *testing.T) {
	t.Parallel()

	first := mustChunk(t, "aaaa", make([]byte, 4))
	last := mustChunk(t, "bbbb", make([]byte, 8))
	// declare more bytes than remain
	binary.LittleEndian.PutUint32(last[4:8], 64)

	buf := append(append([]byte{}, first...), last...)
	s := NewScanner(buf, 0, len(buf))

	_, err := s.Chunk()
	require.NoError(t, err)

	_, err = s.Chunk()
	require.ErrorIs(t, err, ErrTruncatedBuffer)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, len(first), fe.Offset)
	assert.Equal(t, "bbbb", fe.Tag)
}

func TestScanner_ChildCannotEscapeParent(t *testing.T) {
	t.Parallel()

	child := mustChunk(t, "cfgs", make([]byte, 8))
	l, err := EncodeList("wave", child)
	require.NoError(t, err)

	// the list claims fewer bytes than its child needs; trailing bytes exist in buf
	binary.LittleEndian.PutUint32(l[4:8], 4+8)
	buf := append(l, make([]byte, 16)...)

	outer := NewScanner(buf, 0, len(buf))
	list, err := outer.ExpectList("wave")
	require.NoError(t, err)

	_, err = outer.Enter(list).Chunk()
	assert.ErrorIs(t, err, ErrTruncatedBuffer)
}

func TestScanner_Expect(t *testing.T) {
	t.Parallel()

	buf := mustChunk(t, "wavd", make([]byte, 4))

	_, err := NewScanner(buf, 0, len(buf)).ExpectChunk("cfgs")
	require.ErrorIs(t, err, ErrUnexpectedTag)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "cfgs", fe.Want)
	assert.Equal(t, "wavd", fe.Tag)
	assert.Contains(t, err.Error(), `want "cfgs", got "wavd"`)

	_, err = NewScanner(buf, 0, len(buf)).ExpectList("wave")
	assert.ErrorIs(t, err, ErrMalformedContainer)
}

func TestPadJSON(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":      "",
		"{}":    "{}  ",
		"{\"\"": "{\"\" ",
		"abcd":  "abcd",
		"abcde": "abcde   ",
	}

	for in, want := range tests {
		got := PadJSON([]byte(in))
		assert.Equal(t, want, string(got))
		assert.Zero(t, len(got)%Alignment)
	}
}

func TestFormatError_Message(t *testing.T) {
	t.Parallel()

	err := &FormatError{Offset: 12, Tag: "abcd", Err: ErrTruncatedBuffer}
	assert.Equal(t, `riff: record exceeds buffer bounds: tag "abcd" (offset 12)`, err.Error())
	assert.True(t, errors.Is(err, ErrTruncatedBuffer))

	enc := &FormatError{Offset: -1, Tag: "abc", Err: ErrInvalidTag}
	assert.Equal(t, `riff: tag must be exactly 4 bytes: tag "abc"`, enc.Error())
}
