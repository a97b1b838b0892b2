// Command sculpt runs one signal transform and writes the result.
//
//	sculpt analog --scheme fm --freq 3
//	sculpt pcm --freq 1 --rate 40 --levels 16 --out 'pcm-%Y%m%d-%H%M%S.json'
//	sculpt line --scheme hdb3 --bits 1100001 --wav hdb3.wav --spectrum
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
	"github.com/toprakmurat/SignalSculptor/internal/logging"
	"github.com/toprakmurat/SignalSculptor/internal/spectrum"
	"github.com/toprakmurat/SignalSculptor/internal/wavexport"
)

var errUsage = errors.New("usage: sculpt <analog|pcm|delta|keying|line> [flags]")

// defaultSchemes names the scheme used when --scheme is omitted.
var defaultSchemes = map[signalsculptor.Kind]string{
	signalsculptor.KindAnalog: "AM",
	signalsculptor.KindKeying: "ASK",
	signalsculptor.KindLine:   "NRZ_L",
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, "sculpt:", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	req signalsculptor.Request

	out      string
	wav      string
	trace    string
	wavOpts  wavexport.Options
	spectrum bool
	specOpts spectrum.Options
	top      int
	logLevel string
}

func run(args []string, stdout, stderr io.Writer, now time.Time) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr, opts.logLevel, "text", "sculpt")
	if err != nil {
		return err
	}

	res, err := signalsculptor.Convert(opts.req)
	if err != nil {
		return err
	}
	logger.Debug("converted",
		"kind", opts.req.Kind,
		"input", len(res.Input),
		"transmitted", len(res.Transmitted),
		"calculation_time_ms", res.CalculationTimeMs,
	)

	out := opts.out
	if out != "-" {
		if out, err = expandPath(out, now); err != nil {
			return err
		}
	}
	if err := writeResult(stdout, out, res); err != nil {
		return err
	}
	logWritten(logger, "result", out)

	pts, err := res.Trace(opts.trace)
	if err != nil {
		return err
	}

	if opts.wav != "" {
		path, err := expandPath(opts.wav, now)
		if err != nil {
			return err
		}
		if err := writeWAV(path, pts, opts.wavOpts); err != nil {
			return err
		}
		logWritten(logger, "wav", path)
	}

	if opts.spectrum {
		return printSpectrum(stderr, opts.trace, pts, opts.specOpts, opts.top)
	}
	return nil
}

func logWritten(logger *log.Logger, what, path string) {
	if path != "-" {
		logger.Info("wrote "+what, "path", path)
	}
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	if len(args) == 0 {
		return options{}, errUsage
	}
	kind, err := signalsculptor.ParseKind(args[0])
	if err != nil {
		return options{}, fmt.Errorf("%w: %w", errUsage, err)
	}

	flags := pflag.NewFlagSet("sculpt "+kind.String(), pflag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		freq     = flags.Float64P("freq", "f", defaultFrequency, "Message frequency in Hz.")
		amp      = flags.Float64P("amp", "a", defaultAmplitude, "Message amplitude.")
		bits     = flags.StringP("bits", "b", defaultBits, "Bit string for keying and line codes.")
		scheme   = flags.StringP("scheme", "s", defaultSchemes[kind], "Modulation or line code name.")
		rate     = flags.Float64P("rate", "r", defaultRate, "ADC sampling rate in ticks per second.")
		levels   = flags.Int("levels", defaultLevels, "PCM quantization levels.")
		step     = flags.Float64("step", defaultStep, "Delta modulation step size in (0, 1].")
		out      = flags.StringP("out", "o", defaultOut, "JSON output path (strftime conversions allowed), - for stdout.")
		wavPath  = flags.String("wav", "", "Also write the chosen trace as WAV (strftime conversions allowed).")
		trace    = flags.String("trace", signalsculptor.TraceTransmitted, "Trace for --wav and --spectrum: input, transmitted, output.")
		wavRate  = flags.Int("wav-rate", wavexport.DefaultSampleRate, "WAV sample rate.")
		wavDepth = flags.Int("wav-depth", wavexport.BitDepth16, "WAV bit depth: 16, 24, 32.")
		spec     = flags.Bool("spectrum", false, "Print the strongest spectral bins of the chosen trace.")
		specRate = flags.Float64("spectrum-rate", defaultSpectrumRate, "Resampling rate for --spectrum.")
		top      = flags.Int("top", defaultSpectrumTop, "Bins printed by --spectrum.")
		winName  = flags.String("window", "hann", "Window for --spectrum: none, hann, kaiser.")
		beta     = flags.Float64("beta", spectrum.DefaultKaiserBeta, "Kaiser window beta.")
		logLevel = flags.String("log-level", "info", "Log level: debug, info, warn, error.")
	)
	if err := flags.Parse(args[1:]); err != nil {
		return options{}, err
	}
	if flags.NArg() > 0 {
		return options{}, fmt.Errorf("%w: unexpected argument %q", errUsage, flags.Arg(0))
	}

	req := signalsculptor.Request{
		Kind:      kind,
		Frequency: *freq,
		Amplitude: *amp,
		Bits:      *bits,
		PCM:       signalsculptor.PCMConfig{SamplingRate: *rate, QuantizationLevels: *levels},
		Delta:     signalsculptor.DeltaConfig{SamplingRate: *rate, DeltaStepSize: *step},
	}
	switch kind {
	case signalsculptor.KindAnalog:
		req.Analog, err = signalsculptor.ParseAnalogScheme(*scheme)
	case signalsculptor.KindKeying:
		req.Digital, err = signalsculptor.ParseDigitalScheme(*scheme)
	case signalsculptor.KindLine:
		req.Line, err = signalsculptor.ParseLineCode(*scheme)
	}
	if err != nil {
		return options{}, err
	}
	win, err := spectrum.ParseWindow(*winName)
	if err != nil {
		return options{}, err
	}

	return options{
		req:      req,
		out:      *out,
		wav:      *wavPath,
		trace:    *trace,
		wavOpts:  wavexport.Options{SampleRate: *wavRate, BitDepth: *wavDepth},
		spectrum: *spec,
		specOpts: spectrum.Options{SampleRate: *specRate, Window: win, Beta: *beta},
		top:      *top,
		logLevel: *logLevel,
	}, nil
}
