package flux

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteTable persists the spectrum as a plain-text table: a '#'-prefixed
// provenance header followed by one "energy value error" row per grid
// point, in grid order. Columns are energy [keV], flux and flux error
// estimate [axions / cm² s keV]. The comment may span multiple lines; each
// becomes its own header line.
func (s Spectrum) WriteTable(w io.Writer, comment string) error {
	bw := bufio.NewWriter(w)
	for _, line := range strings.Split(comment, "\n") {
		if _, err := fmt.Fprintf(bw, "# %s\n", line); err != nil {
			return fmt.Errorf("flux: writing table header: %w", err)
		}
	}
	if _, err := fmt.Fprintln(bw, "# Columns: energy values [keV], axion flux [axions / cm^2 s keV], axion flux error estimate [axions / cm^2 s keV]"); err != nil {
		return fmt.Errorf("flux: writing table header: %w", err)
	}
	for i := range s.Energies {
		if _, err := fmt.Fprintf(bw, "%.9e %.9e %.9e\n", s.Energies[i], s.Values[i], s.Errors[i]); err != nil {
			return fmt.Errorf("flux: writing table row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flux: flushing table: %w", err)
	}
	return nil
}
