package heredity

import (
	"bufio"
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// WriteReport prints every person's gene and trait distribution, in
// population order, with each probability rounded to decimals places.
func WriteReport(w io.Writer, post *Posterior, decimals int) error {
	if decimals < 0 {
		return pfx.Err(fmt.Errorf("cannot print %d decimal places", decimals))
	}

	bw := bufio.NewWriter(w)
	for i, p := range post.pop.people {
		d := post.dist[i]

		fmt.Fprintf(bw, "%s:\n", p.ID)
		fmt.Fprintf(bw, "  Gene:\n")
		for _, g := range GeneCounts {
			fmt.Fprintf(bw, "    %s: %.*f\n", g, decimals, d.GeneProbability(g))
		}
		fmt.Fprintf(bw, "  Trait:\n")
		fmt.Fprintf(bw, "    True: %.*f\n", decimals, d.TraitProbability(true))
		fmt.Fprintf(bw, "    False: %.*f\n", decimals, d.TraitProbability(false))
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// ReportFormat is the layout WriteReportAs produces.
type ReportFormat uint32

const (
	ReportText ReportFormat = iota
	ReportTSV
)

// ParseReportFormat reads "text" or "tsv".
func ParseReportFormat(s string) (ReportFormat, error) {
	switch s {
	case "text", "":
		return ReportText, nil
	case "tsv":
		return ReportTSV, nil
	}
	return ReportText, pfx.Err(fmt.Errorf("report format %q is not one of text or tsv", s))
}

func (f ReportFormat) String() string {
	switch f {
	case ReportText:
		return "text"
	case ReportTSV:
		return "tsv"

	default:
		return "Illegal selection"
	}
}

// WriteReportAs writes post in the given format.
func WriteReportAs(w io.Writer, post *Posterior, decimals int, f ReportFormat) error {
	switch f {
	case ReportText:
		return WriteReport(w, post, decimals)
	case ReportTSV:
		return WriteTSV(w, post, decimals)
	}
	return pfx.Err(fmt.Errorf("report format %s is not supported", f))
}

// WriteTSV prints one tab-separated row per person, field and value, after a
// header row. Rows follow the same order as WriteReport.
func WriteTSV(w io.Writer, post *Posterior, decimals int) error {
	if decimals < 0 {
		return pfx.Err(fmt.Errorf("cannot print %d decimal places", decimals))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "person\tfield\tvalue\tprobability")
	for _, rec := range posteriorRecords("", post) {
		fmt.Fprintf(bw, "%s\t%s\t%s\t%.*f\n", rec.Person, rec.Field, rec.Value, decimals, rec.Probability)
	}

	if err := bw.Flush(); err != nil {
		return pfx.Err(err)
	}

	return nil
}
