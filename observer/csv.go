package observer

import (
	"fmt"
	"io"
)

// csvHeader is the fixed export header.
const csvHeader = "timestamp,torque,bEmf_a,bEmf_b,bEmf_c,current_a,current_b,current_c\n"

// WriteCSV writes the fixed header, then one row per valid buffer
// entry in chronological order, each followed by a trailing newline.
// It is synchronous and bounded by the buffer's capacity -- no
// blocking I/O in the core.
func WriteCSV(w io.Writer, samples *Samples) error {
	if _, err := io.WriteString(w, csvHeader); err != nil {
		return err
	}
	for _, s := range samples.Ordered() {
		_, err := fmt.Fprintf(w, "%v,%v,%v,%v,%v,%v,%v,%v\n",
			s.Time, s.Torque,
			s.BEmfs[0], s.BEmfs[1], s.BEmfs[2],
			s.Currents[0], s.Currents[1], s.Currents[2],
		)
		if err != nil {
			return err
		}
	}
	return nil
}
