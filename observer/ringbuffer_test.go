package observer

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBufferWrapsAndCounts(t *testing.T) {
	c := qt.New(t)

	b := NewBuffer[int](3)
	c.Assert(b.Count(), qt.Equals, 0)
	c.Assert(b.Back(), qt.Equals, -1)

	b.Append(1)
	b.Append(2)
	c.Assert(b.Count(), qt.Equals, 2)
	c.Assert(b.Ordered(), qt.DeepEquals, []int{1, 2})

	b.Append(3)
	b.Append(4) // wraps, overwriting 1
	c.Assert(b.Count(), qt.Equals, 3)
	c.Assert(b.Ordered(), qt.DeepEquals, []int{2, 3, 4})
	c.Assert(b.At(b.Back()), qt.Equals, 4)
}

func TestWriteCSVStartsWithHeader(t *testing.T) {
	c := qt.New(t)

	s := NewSamples(4)
	s.Append(Sample{Time: 0, Torque: 1.5, BEmfs: [3]float64{1, 2, 3}, Currents: [3]float64{0.1, 0.2, 0.3}})
	s.Append(Sample{Time: 1e-6, Torque: 1.6, BEmfs: [3]float64{1, 2, 3}, Currents: [3]float64{0.2, 0.3, 0.4}})

	var buf strings.Builder
	c.Assert(WriteCSV(&buf, s), qt.IsNil)
	out := buf.String()
	c.Assert(out[:len(csvHeader)], qt.Equals, csvHeader)
}
