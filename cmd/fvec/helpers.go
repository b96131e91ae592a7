package main

import (
	"fmt"
	"sync"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/waveform"
)

// describeComponents computes statistics for every component.
// Handles both parallel and sequential modes.
func describeComponents(components [][]float32, precision fvec.Precision, parallel bool) ([]fvec.Stats, error) {
	stats := make([]fvec.Stats, len(components))
	describe := func(ch int) error {
		s, err := fvec.DescribeWith(components[ch], precision)
		if err != nil {
			return fmt.Errorf("component %d: %w", ch, err)
		}
		stats[ch] = s
		return nil
	}

	var err error
	if parallel && len(components) > 1 {
		err = forEachParallel(len(components), describe)
	} else {
		err = forEachSequential(len(components), describe)
	}
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// forEachParallel runs fn for every channel concurrently and returns the
// first error.
func forEachParallel(channels int, fn func(ch int) error) error {
	var wg sync.WaitGroup
	var processErr error
	var errMu sync.Mutex

	for ch := range channels {
		wg.Add(1)
		go func(channel int) {
			defer wg.Done()
			if err := fn(channel); err != nil {
				errMu.Lock()
				if processErr == nil {
					processErr = err
				}
				errMu.Unlock()
			}
		}(ch)
	}
	wg.Wait()

	return processErr
}

// forEachSequential runs fn for every channel in order.
func forEachSequential(channels int, fn func(ch int) error) error {
	for ch := range channels {
		if err := fn(ch); err != nil {
			return err
		}
	}
	return nil
}

// stackTraces sums the first component of every trace into a buffer as long
// as the longest trace, shifting trace i by delays[i] seconds. All traces
// share the sample rate of the first.
func stackTraces(traces []*waveform.Record, delays []float64) ([]float32, error) {
	size := 0
	for _, rec := range traces {
		size = max(size, rec.Samples())
	}
	beam := make([]float32, size)
	if len(traces) == 0 {
		return beam, nil
	}

	rate := float64(traces[0].SampleRate)
	for i, rec := range traces {
		if len(rec.Components) == 0 {
			continue
		}
		var delay float64
		if len(delays) > 0 {
			delay = delays[i]
		}
		if err := fvec.AddDelayed(beam, traces[0].Start, rec.Components[0], rec.Start, delay, rate); err != nil {
			return nil, fmt.Errorf("trace %d: %w", i, err)
		}
	}
	return beam, nil
}
