package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	fmath "github.com/drakos74/free-means/internal/math"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

const plotHeight = 10

// Options controls what Format prints.
type Options struct {
	// Members prints the label of every member.
	Members bool
	// Plot draws the sse history when it changed over the run.
	Plot      bool
	Precision int
}

// DefaultOptions prints everything but the plot.
func DefaultOptions() Options {
	return Options{
		Members:   true,
		Precision: fmath.DefaultPrecision,
	}
}

// Format writes the human readable report.
func Format(w io.Writer, r Report, opts Options) error {
	var b strings.Builder
	f := func(v float64) string {
		return fmath.FormatP(v, opts.Precision)
	}

	for i, sse := range r.History {
		fmt.Fprintf(&b, "iteration %d: sse = %s\n", i+1, f(sse))
	}
	if !r.Converged {
		fmt.Fprintf(&b, "stopped after %d iterations without converging\n", r.Iterations)
	}
	if opts.Plot && varies(r.History) {
		b.WriteString(asciigraph.Plot(r.History,
			asciigraph.Height(plotHeight),
			asciigraph.Caption("sse per iteration")))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nclusters for k = %d on %s (%d records, seed %d):\n", r.K, r.Dataset, r.Records, r.Seed)
	for _, c := range r.Clusters {
		fmt.Fprintf(&b, "\ncluster %d:\n", c.Index)
		fmt.Fprintf(&b, "size: %d\n", c.Size)
		fmt.Fprintf(&b, "entropy: %s\n", f(c.Entropy))
		fmt.Fprintf(&b, "centroid: %s\n", vector(c.Centroid, f))
		if c.Size > 0 {
			fmt.Fprintf(&b, "distance: avg %s stdev %s max %s\n", f(c.Distance.Avg), f(c.Distance.StDev), f(c.Distance.Max))
		}
		if opts.Members {
			b.WriteString("members:\n")
			for _, m := range c.Members {
				b.WriteString(m)
				b.WriteString("\n")
			}
		}
		b.WriteString("labels:\n")
		table := tablewriter.NewWriter(&b)
		table.SetHeader([]string{"label", "count"})
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, l := range c.Labels {
			table.Append([]string{l.Label, strconv.Itoa(l.Count)})
		}
		table.Render()
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}

func vector(v []float64, f func(float64) string) string {
	ss := make([]string, len(v))
	for i, x := range v {
		ss[i] = f(x)
	}
	return "(" + strings.Join(ss, ", ") + ")"
}

// varies checks if the series has at least two distinct values.
func varies(series []float64) bool {
	for _, s := range series {
		if s != series[0] {
			return true
		}
	}
	return false
}
