// SPDX-License-Identifier: EPL-2.0

package waveseek_test

import (
	"fmt"
	"strings"

	"github.com/ik5/waveseek"
	"github.com/ik5/waveseek/audio"
)

const capture = `Record Length,Analog:3
Sample Interval,1.000000E-06
Vertical Units,V
Vertical Scale,1.000000E+00
Vertical Offset,0.000000E+00
Horizontal Units,s
Horizontal Scale,1.000000E-03
Model Number,SDS1104X-E
Serial Number,SDS00000000000
Software Version,8.2.6.1.37
Source,CH1
Second,Volt
0.000000E+00,0.1
1.000000E-06,0.2
2.000000E-06,0.3
`

func ExampleSession() {
	s := waveseek.NewSession("bench")

	if _, err := s.Import(strings.NewReader(capture), waveseek.FormatSiglent, audio.ImportOptions{}); err != nil {
		fmt.Println(err)
		return
	}

	s.Zoom(-1, 0)

	c := s.View.Config()
	fmt.Println(s.Project.Selected().Config.Name, c.ScalePerDivX, c.ScalePerDivY)
	// Output: CH1 0.0005 1
}
