// Package waveform reads and writes multi-component sample records.
//
// Records are planar: one float32 buffer per component, normalized to
// [-1, 1] by the bit depth of the stored integer samples. WAV and FLAC are
// read; WAV is written.
package waveform

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/mewkiz/flac"
)

const (
	extWAV  = ".wav"
	extFLAC = ".flac"

	wavFormatPCM = 1

	// Supported integer sample depths.
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// DefaultBitDepth is used by Write when a record carries no bit depth.
	DefaultBitDepth = bitsPerSample16
)

var (
	// ErrUnsupportedFormat indicates an unknown extension or sample encoding.
	ErrUnsupportedFormat = errors.New("unsupported waveform format")

	// ErrInvalidFile indicates a file that could not be decoded.
	ErrInvalidFile = errors.New("invalid waveform file")

	// ErrInvalidRecord indicates a record that cannot be written.
	ErrInvalidRecord = errors.New("invalid record")
)

// Record is a set of equally long, equally sampled components.
type Record struct {
	SampleRate int
	BitDepth   int

	// Start is the time of the first sample in seconds.
	Start float64

	// Components holds one buffer per channel, in file order.
	Components [][]float32
}

// Samples returns the number of samples per component.
func (r *Record) Samples() int {
	if len(r.Components) == 0 {
		return 0
	}
	return len(r.Components[0])
}

// Duration returns the record length in seconds.
func (r *Record) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(r.Samples()) / float64(r.SampleRate)
}

// Read decodes the file at path, choosing the decoder by extension.
func Read(path string) (*Record, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case extWAV:
		return readWAV(path)
	case extFLAC:
		return readFLAC(path)
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

func readWAV(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s is not a WAV file", ErrInvalidFile, path)
	}
	if decoder.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%w: WAV audio format %d", ErrUnsupportedFormat, decoder.WavAudioFormat)
	}

	bitDepth := int(decoder.BitDepth)
	if err := checkBitDepth(bitDepth); err != nil {
		return nil, err
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read audio data: %w", ErrInvalidFile, err)
	}

	format := decoder.Format()
	channels := format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFile, channels)
	}

	return &Record{
		SampleRate: format.SampleRate,
		BitDepth:   bitDepth,
		Components: deinterleave(buf.Data, channels, 1/fullScale(bitDepth)),
	}, nil
}

func readFLAC(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create FLAC decoder: %w", ErrInvalidFile, err)
	}
	defer func() { _ = stream.Close() }()

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	if channels < 1 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFile, channels)
	}

	components := make([][]float32, channels)
	for ch := range components {
		components[ch] = make([]float32, 0, info.NSamples)
	}
	invMax := 1 / fullScale(bitDepth)

	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse FLAC frame: %w", ErrInvalidFile, err)
		}
		if len(frame.Subframes) != channels {
			return nil, fmt.Errorf("%w: frame has %d of %d channels", ErrInvalidFile, len(frame.Subframes), channels)
		}

		for ch, sub := range frame.Subframes {
			for _, s := range sub.Samples {
				components[ch] = append(components[ch], float32(float64(s)*invMax))
			}
		}
	}

	return &Record{
		SampleRate: int(info.SampleRate),
		BitDepth:   bitDepth,
		Components: components,
	}, nil
}

// Write encodes rec as PCM WAV at path. Samples outside [-1, 1] are clipped.
func Write(path string, rec *Record) (err error) {
	if err := validate(rec); err != nil {
		return err
	}
	bitDepth := rec.BitDepth
	if bitDepth == 0 {
		bitDepth = DefaultBitDepth
	}
	if err := checkBitDepth(bitDepth); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	channels := len(rec.Components)
	encoder := wav.NewEncoder(f, rec.SampleRate, bitDepth, channels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  rec.SampleRate,
		},
		Data:           interleave(rec.Components, fullScale(bitDepth)),
		SourceBitDepth: bitDepth,
	}
	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	// Close patches the RIFF sizes into the header.
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

func validate(rec *Record) error {
	if rec == nil || len(rec.Components) == 0 {
		return fmt.Errorf("%w: no components", ErrInvalidRecord)
	}
	if rec.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidRecord, rec.SampleRate)
	}
	n := len(rec.Components[0])
	for ch, c := range rec.Components {
		if len(c) != n {
			return fmt.Errorf("%w: component %d has %d samples, want %d", ErrInvalidRecord, ch, len(c), n)
		}
	}
	return nil
}

func checkBitDepth(bitDepth int) error {
	switch bitDepth {
	case bitsPerSample16, bitsPerSample24, bitsPerSample32:
		return nil
	default:
		return fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

// fullScale returns the largest positive sample value for bitDepth.
func fullScale(bitDepth int) float64 {
	if v := audio.IntMaxSignedValue(bitDepth); v > 0 {
		return float64(v)
	}
	return float64(int64(1)<<(bitDepth-1) - 1)
}

// deinterleave splits interleaved integer samples into scaled planar buffers.
func deinterleave(data []int, channels int, invMaxVal float64) [][]float32 {
	samplesPerChannel := len(data) / channels
	out := make([][]float32, channels)
	for ch := range out {
		out[ch] = make([]float32, samplesPerChannel)
	}
	for i := range samplesPerChannel {
		base := i * channels
		for ch := range channels {
			out[ch][i] = float32(float64(data[base+ch]) * invMaxVal)
		}
	}
	return out
}

// interleave merges planar buffers into clipped integer samples.
func interleave(components [][]float32, maxVal float64) []int {
	channels := len(components)
	samplesPerChannel := len(components[0])
	out := make([]int, samplesPerChannel*channels)
	for i := range samplesPerChannel {
		base := i * channels
		for ch, c := range components {
			sample := math.Max(-1, math.Min(1, float64(c[i])))
			out[base+ch] = int(math.Round(sample * maxVal))
		}
	}
	return out
}
