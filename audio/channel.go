// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix selects the average of all channels instead of a single one.
const Downmix = -1

// ChannelReader turns a multi-channel source into a mono one, either by
// picking one channel or by averaging all of them.
type ChannelReader struct {
	src     Source
	channel int
	tmp     []float32
}

// NewChannelReader returns a mono view of src. channel is a zero-based index
// or Downmix.
func NewChannelReader(src Source, channel int) (*ChannelReader, error) {
	if channel != Downmix && (channel < 0 || channel >= src.Channels()) {
		return nil, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, channel, src.Channels())
	}

	return &ChannelReader{src: src, channel: channel}, nil
}

func (c *ChannelReader) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelReader) Channels() int   { return 1 }
func (c *ChannelReader) BufSize() int    { return c.src.BufSize() }

func (c *ChannelReader) Close() error {
	if err := c.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples writes up to len(dst) mono samples.
func (c *ChannelReader) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := c.src.Channels()
	if channels == 1 {
		return c.src.ReadSamples(dst)
	}

	need := len(dst) * channels
	if cap(c.tmp) < need {
		c.tmp = make([]float32, need)
	}
	c.tmp = c.tmp[:need]

	n, err := c.src.ReadSamples(c.tmp)
	frames := n / channels

	if c.channel == Downmix {
		inv := 1 / float32(channels)
		for f := range frames {
			var sum float32
			for _, v := range c.tmp[f*channels : (f+1)*channels] {
				sum += v
			}
			dst[f] = sum * inv
		}
	} else {
		for f := range frames {
			dst[f] = c.tmp[f*channels+c.channel]
		}
	}

	return frames, err
}
