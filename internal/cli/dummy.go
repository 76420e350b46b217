package cli

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"kpfits/internal/fits"
	"kpfits/internal/fixture"
)

// runDummy builds the handler for the dummy command, which synthesizes
// random conformant kernel-phase files for testing downstream tools.
// Dimension flags pin individual quantities; unset ones are drawn from the
// format generator's ranges.
func runDummy(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		seed := flags.Int64("seed", 0, "Random seed (default: time-based)")
		kernels := flags.Int("kernels", 0, "Pin the kernel count")
		frames := flags.Int("frames", 0, "Pin the frame count")
		pixels := flags.Int("pixels", 0, "Pin the image size in pixels")
		apertures := flags.Int("apertures", 0, "Pin the aperture count")
		wavelengths := flags.Int("wavelengths", 0, "Pin the wavelength count")
		uvPoints := flags.Int("uv", 0, "Pin the uv-point count")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		files := flags.Args()
		if len(files) == 0 {
			fmt.Fprintln(stderr, "no files provided")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(*seed))

		code := ExitOK
		for _, path := range files {
			params := fixture.RandomParams(rng)
			pin(&params.Kernels, *kernels)
			pin(&params.Frames, *frames)
			pin(&params.Pixels, *pixels)
			pin(&params.Apertures, *apertures)
			pin(&params.Wavelengths, *wavelengths)
			pin(&params.UVPoints, *uvPoints)
			if err := fits.WriteFile(path, fixture.HDUs(params)); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				code = ExitError
				continue
			}
			fmt.Fprintf(stdout, "wrote %s\n", path)
		}
		return code
	}
}

// pin overrides a drawn dimension when the flag was set.
func pin(dst *int, value int) {
	if value > 0 {
		*dst = value
	}
}
