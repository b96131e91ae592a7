// Command fvec inspects and transforms multi-component waveform files.
//
// Usage:
//
//	fvec stats trace.wav
//	fvec stats --precise trace.flac
//	fvec rotate --azimuth 231 --incidence 35 nez.wav rtv.wav
//	fvec stack --delay 0,0.12,-0.05 --normalize beam.wav sta1.wav sta2.wav sta3.wav
//	fvec xcorr sta1.wav sta2.wav
//	fvec polar --rotate rtv.wav nez.wav
//	fvec info
//
// Every flag can also be set through an FVEC_* environment variable.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/alecthomas/kong"

	"github.com/tphakala/go-fvec/internal/simdops"
)

// version is set via ldflags at build time.
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Verbose    bool   `short:"v" help:"Verbose output" env:"FVEC_VERBOSE"`
	CPUProfile string `name:"cpuprofile" help:"Write CPU profile to file" env:"FVEC_CPUPROFILE" type:"path"`
	Sequential bool   `help:"Process components one at a time" env:"FVEC_SEQUENTIAL"`
	Generic    bool   `help:"Use portable kernels instead of SIMD" env:"FVEC_GENERIC"`

	out io.Writer
}

// logf logs only in verbose mode.
func (g *Globals) logf(format string, args ...any) {
	if g.Verbose {
		log.Printf(format, args...)
	}
}

// CLI is the full command tree.
type CLI struct {
	Globals

	Stats  StatsCmd  `cmd:"" help:"Print per-component statistics"`
	Rotate RotateCmd `cmd:"" help:"Rotate N,E[,Z] components to R,T[,V]"`
	Stack  StackCmd  `cmd:"" help:"Delay-and-sum the first component of several files"`
	Xcorr  XcorrCmd  `cmd:"" help:"Find the lag that best aligns two traces"`
	Polar  PolarCmd  `cmd:"" help:"Estimate polarization of a three-component record"`
	Info   InfoCmd   `cmd:"" help:"Show SIMD and CPU information"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	var cli CLI
	cli.out = stdout

	parser, err := kong.New(&cli,
		kong.Name("fvec"),
		kong.Description("Sample vector tools for seismic waveform records."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Writers(stdout, os.Stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Start CPU profiling if requested (for PGO)
	if cli.CPUProfile != "" {
		f, createErr := os.Create(cli.CPUProfile)
		if createErr != nil {
			return fmt.Errorf("could not create CPU profile: %w", createErr)
		}
		if startErr := pprof.StartCPUProfile(f); startErr != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", startErr)
		}
		defer func() {
			pprof.StopCPUProfile()
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	if cli.Generic {
		simdops.UseGeneric(true)
		defer simdops.UseGeneric(false)
	}

	return ctx.Run(&cli.Globals)
}
