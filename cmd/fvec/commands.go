package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/simdops"
	"github.com/tphakala/go-fvec/internal/waveform"
	"github.com/tphakala/go-fvec/polar"
	"github.com/tphakala/go-fvec/xcorr"
)

var (
	errComponentCount = errors.New("unexpected number of components")
	errRateMismatch   = errors.New("sample rates differ")
	errDelayCount     = errors.New("delay count does not match input count")
)

// StatsCmd prints per-component statistics.
type StatsCmd struct {
	Files   []string `arg:"" name:"file" help:"Input WAV or FLAC files" type:"existingfile"`
	Precise bool     `help:"Accumulate in float64 instead of float32" env:"FVEC_PRECISE"`
}

func (c *StatsCmd) Run(g *Globals) error {
	precision := fvec.PrecisionLegacy
	if c.Precise {
		precision = fvec.PrecisionDouble
	}
	g.logf("Precision: %s", precision)

	for _, path := range c.Files {
		rec, err := readRecord(g, path)
		if err != nil {
			return err
		}

		stats, err := describeComponents(rec.Components, precision, !g.Sequential)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		printStats(g.out, path, rec, stats)
	}
	return nil
}

// RotateCmd rotates N,E[,Z] records into R,T[,V].
type RotateCmd struct {
	Input     string  `arg:"" help:"Input record with N,E or N,E,Z components" type:"existingfile"`
	Output    string  `arg:"" help:"Output WAV file" type:"path"`
	Azimuth   float64 `required:"" help:"Source azimuth in degrees clockwise from north" env:"FVEC_AZIMUTH"`
	Incidence float64 `help:"Incidence angle in degrees from vertical; unset rotates only the horizontals" default:"NaN" env:"FVEC_INCIDENCE"`
}

func (c *RotateCmd) Run(g *Globals) error {
	rec, err := readRecord(g, c.Input)
	if err != nil {
		return err
	}

	comps := rec.Components
	switch {
	case len(comps) == threeComponents && !math.IsNaN(c.Incidence):
		g.logf("Rotating to RTV: azimuth %g, incidence %g", c.Azimuth, c.Incidence)
		err = fvec.RotateToRTV(comps[0], comps[1], comps[2], c.Azimuth, c.Incidence)
	case len(comps) == pairComponents || len(comps) == threeComponents:
		g.logf("Rotating to RT: azimuth %g", c.Azimuth)
		err = fvec.RotateToRT(comps[0], comps[1], c.Azimuth)
	default:
		return fmt.Errorf("%w: rotate needs 2 or 3, %s has %d", errComponentCount, c.Input, len(comps))
	}
	if err != nil {
		return err
	}

	if err := waveform.Write(c.Output, rec); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out, "Rotated %s -> %s (%d components, azimuth %g)\n",
		c.Input, c.Output, len(comps), c.Azimuth)
	return nil
}

// StackCmd delay-and-sums the first component of several records.
type StackCmd struct {
	Output    string    `arg:"" help:"Output WAV file" type:"path"`
	Inputs    []string  `arg:"" name:"file" help:"Input records" type:"existingfile"`
	Delay     []float64 `help:"Per-input delays in seconds, comma separated" sep:"," env:"FVEC_DELAY"`
	Normalize bool      `help:"Divide the stack by the number of inputs" env:"FVEC_NORMALIZE"`
}

func (c *StackCmd) Run(g *Globals) error {
	if len(c.Delay) > 0 && len(c.Delay) != len(c.Inputs) {
		return fmt.Errorf("%w: %d delays for %d inputs", errDelayCount, len(c.Delay), len(c.Inputs))
	}

	traces := make([]*waveform.Record, len(c.Inputs))
	for i, path := range c.Inputs {
		rec, err := readRecord(g, path)
		if err != nil {
			return err
		}
		if i > 0 && rec.SampleRate != traces[0].SampleRate {
			return fmt.Errorf("%w: %s is %d Hz, %s is %d Hz",
				errRateMismatch, path, rec.SampleRate, c.Inputs[0], traces[0].SampleRate)
		}
		traces[i] = rec
	}

	beam, err := stackTraces(traces, c.Delay)
	if err != nil {
		return err
	}
	if c.Normalize {
		if err := fvec.DivScalar(beam, float64(len(traces))); err != nil {
			return err
		}
	}
	if peak, _, err := fvec.AbsMax(beam); err == nil && peak > 1 {
		g.logf("Stack peak %.3f exceeds full scale and will be clipped", peak)
	}

	out := &waveform.Record{
		SampleRate: traces[0].SampleRate,
		BitDepth:   traces[0].BitDepth,
		Components: [][]float32{beam},
	}
	if err := waveform.Write(c.Output, out); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out, "Stacked %d traces -> %s (%d samples)\n", len(traces), c.Output, len(beam))
	return nil
}

// XcorrCmd reports the best alignment between two traces.
type XcorrCmd struct {
	Reference string `arg:"" help:"Reference record" type:"existingfile"`
	Target    string `arg:"" help:"Record to align against the reference" type:"existingfile"`
	Component int    `help:"Component index to correlate" default:"0" env:"FVEC_COMPONENT"`
}

func (c *XcorrCmd) Run(g *Globals) error {
	ref, err := readRecord(g, c.Reference)
	if err != nil {
		return err
	}
	target, err := readRecord(g, c.Target)
	if err != nil {
		return err
	}
	if ref.SampleRate != target.SampleRate {
		return fmt.Errorf("%w: %d Hz and %d Hz", errRateMismatch, ref.SampleRate, target.SampleRate)
	}
	for _, rec := range []*waveform.Record{ref, target} {
		if c.Component < 0 || c.Component >= len(rec.Components) {
			return fmt.Errorf("%w: component %d of %d", errComponentCount, c.Component, len(rec.Components))
		}
	}

	lag, err := xcorr.Peak(target.Components[c.Component], ref.Components[c.Component])
	if err != nil {
		return err
	}
	printLag(g.out, c.Target, c.Reference, lag, ref.SampleRate)
	return nil
}

// PolarCmd estimates the polarization of a three-component record.
type PolarCmd struct {
	Input  string  `arg:"" help:"Record with N,E,Z components" type:"existingfile"`
	Window float64 `help:"Analysis window in seconds; 0 analyzes the whole record" default:"0" env:"FVEC_WINDOW"`
	Rotate string  `help:"Write the record rotated to R,T,V with the estimated angles" type:"path"`
}

func (c *PolarCmd) Run(g *Globals) error {
	rec, err := readRecord(g, c.Input)
	if err != nil {
		return err
	}
	if len(rec.Components) != threeComponents {
		return fmt.Errorf("%w: polar needs 3, %s has %d", errComponentCount, c.Input, len(rec.Components))
	}
	n, e, z := rec.Components[0], rec.Components[1], rec.Components[2]

	if c.Window > 0 {
		window := int(math.Round(c.Window * float64(rec.SampleRate)))
		step := max(1, int(float64(window)*defaultStepFraction))
		results, err := polar.AnalyzeWindows(n, e, z, window, step)
		if err != nil {
			return err
		}
		printPolarWindows(g.out, results, float64(step)/float64(rec.SampleRate))
	}

	result, err := polar.Analyze(n, e, z)
	if err != nil {
		return err
	}
	printPolar(g.out, c.Input, result)

	if c.Rotate == "" {
		return nil
	}
	if err := result.RotateToRTV(n, e, z); err != nil {
		return err
	}
	if err := waveform.Write(c.Rotate, rec); err != nil {
		return err
	}
	g.logf("Rotated record written to %s", c.Rotate)
	return nil
}

// InfoCmd shows the active kernels.
type InfoCmd struct{}

func (c *InfoCmd) Run(g *Globals) error {
	_, _ = fmt.Fprintf(g.out, "fvec %s\n", version)
	_, _ = fmt.Fprintf(g.out, "Kernels: %s\n", simdops.Info())
	_, _ = fmt.Fprintf(g.out, "Generic fallback: %s\n", strconv.FormatBool(simdops.GenericEnabled()))
	return nil
}

func readRecord(g *Globals, path string) (*waveform.Record, error) {
	rec, err := waveform.Read(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g.logf("Input %s: %d Hz, %d components, %d-bit, %d samples",
		path, rec.SampleRate, len(rec.Components), rec.BitDepth, rec.Samples())
	return rec, nil
}
