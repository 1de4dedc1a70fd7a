// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ik5/waveseek/audio"
	"github.com/ik5/waveseek/formats/wav"
)

// Example_import decodes a small stereo file and keeps its right channel.
func Example_import() {
	pcm := []int16{1000, -16384, 2000, 16384, 3000, 0}

	data := new(bytes.Buffer)
	data.WriteString("RIFF")
	binary.Write(data, binary.LittleEndian, uint32(36+len(pcm)*2))
	data.WriteString("WAVEfmt ")
	for _, v := range []any{uint32(16), uint16(1), uint16(2), uint32(8000), uint32(32000), uint16(4), uint16(16)} {
		binary.Write(data, binary.LittleEndian, v)
	}
	data.WriteString("data")
	binary.Write(data, binary.LittleEndian, uint32(len(pcm)*2))
	binary.Write(data, binary.LittleEndian, pcm)

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data.Bytes()))
	if err != nil {
		fmt.Println(err)
		return
	}

	w, err := audio.Import(src, audio.ImportOptions{Name: "right", Channel: 1})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(w.Config.Name, w.Samples(), w.Config.SampleInterval)
	// Output: right [-0.5 0.5 0] 0.000125
}
