package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/waveform"
	"github.com/tphakala/go-fvec/polar"
	"github.com/tphakala/go-fvec/xcorr"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB000"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func printStats(w io.Writer, path string, rec *waveform.Record, stats []fvec.Stats) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(path))
	_, _ = fmt.Fprintf(w, "%d Hz, %d-bit, %.3fs\n", rec.SampleRate, rec.BitDepth, rec.Duration())

	t := newTable("Component", "Samples", "Mean", "Variance", "RMS", "Min", "Max", "Peak", "Peak time")
	for ch, s := range stats {
		t.Row(
			strconv.Itoa(ch),
			strconv.Itoa(s.Length),
			formatFloat(s.Mean),
			formatFloat(s.Variance),
			formatFloat(s.RMS),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.AbsMax),
			formatFloat(rec.Start+float64(s.AbsMaxIndex)/float64(rec.SampleRate)),
		)
	}
	_, _ = fmt.Fprintln(w, t.String())
}

func printLag(w io.Writer, target, reference string, lag xcorr.Lag, sampleRate int) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(target+" vs "+reference))
	t := newTable("Lag (samples)", "Lag (s)", "Coefficient")
	t.Row(
		strconv.Itoa(lag.Samples),
		formatFloat(lag.Seconds(float64(sampleRate))),
		formatFloat(lag.Coefficient),
	)
	_, _ = fmt.Fprintln(w, t.String())
}

func printPolar(w io.Writer, path string, r polar.Result) {
	_, _ = fmt.Fprintln(w, titleStyle.Render(path))
	t := newTable("Azimuth", "Source azimuth", "Incidence", "Rectilinearity", "Planarity")
	t.Row(
		formatFloat(r.Azimuth),
		formatFloat(r.SourceAzimuth()),
		formatFloat(r.Incidence),
		formatFloat(r.Rectilinearity),
		formatFloat(r.Planarity),
	)
	_, _ = fmt.Fprintln(w, t.String())
}

func printPolarWindows(w io.Writer, results []polar.Result, stepSeconds float64) {
	t := newTable("Start (s)", "Azimuth", "Incidence", "Rectilinearity")
	for i, r := range results {
		t.Row(
			formatFloat(float64(i)*stepSeconds),
			formatFloat(r.Azimuth),
			formatFloat(r.Incidence),
			formatFloat(r.Rectilinearity),
		)
	}
	_, _ = fmt.Fprintln(w, t.String())
}
