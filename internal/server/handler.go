package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	signalsculptor "github.com/toprakmurat/SignalSculptor"
	"github.com/toprakmurat/SignalSculptor/internal/config"
	"github.com/toprakmurat/SignalSculptor/internal/simdops"
	"github.com/toprakmurat/SignalSculptor/internal/spectrum"
	"github.com/toprakmurat/SignalSculptor/internal/waveform"
	"github.com/toprakmurat/SignalSculptor/internal/wavexport"
)

// Routes.
const (
	RouteAnalogToAnalog   = "/v1/analog-to-analog"
	RouteAnalogToDigital  = "/v1/analog-to-digital"
	RouteDigitalToAnalog  = "/v1/digital-to-analog"
	RouteDigitalToDigital = "/v1/digital-to-digital"
	RouteSpectrum         = "/v1/spectrum"
	RouteHealth           = "/healthz"
)

const (
	contentTypeJSON = "application/json"
	contentTypeWAV  = "audio/wav"

	// headerCalcTime carries the core's calculation time to the access log.
	headerCalcTime = "X-Calculation-Time-Ms"

	defaultSpectrumRate = waveform.ModulatorRate
	defaultSpectrumTop  = 5
)

// handler serves one Service.
type handler struct {
	svc     *Service
	wav     wavexport.Options
	maxBody int64
}

// NewHandler returns the HTTP routes for cfg, logging each request to logger.
func NewHandler(cfg *config.Config, logger *log.Logger) http.Handler {
	h := &handler{
		svc:     NewService(cfg.Limits),
		wav:     wavexport.Options{SampleRate: cfg.WAV.SampleRate, BitDepth: cfg.WAV.BitDepth},
		maxBody: cfg.Limits.MaxBodyBytes,
	}

	mux := http.NewServeMux()
	mux.Handle("POST "+RouteAnalogToAnalog, operation(h, h.svc.AnalogToAnalog))
	mux.Handle("POST "+RouteAnalogToDigital, operation(h, h.svc.AnalogToDigital))
	mux.Handle("POST "+RouteDigitalToAnalog, operation(h, h.svc.DigitalToAnalog))
	mux.Handle("POST "+RouteDigitalToDigital, operation(h, h.svc.DigitalToDigital))
	mux.HandleFunc("POST "+RouteSpectrum, h.spectrum)
	mux.HandleFunc("GET "+RouteHealth, h.health)

	return withLogging(logger, mux)
}

// operation adapts a Service method to an HTTP handler.
func operation[Req any](h *handler, call func(Req) (signalsculptor.Result, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := h.decode(w, r, &req); err != nil {
			writeError(w, err)
			return
		}

		res, err := call(req)
		if err != nil {
			writeError(w, err)
			return
		}
		h.writeResult(w, r, res)
	})
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return invalidArgument("request body larger than %d bytes", tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return invalidArgument("empty request body")
		}
		return invalidArgument("malformed request: %v", err)
	}
	return nil
}

// writeResult renders res as JSON, or as a WAV stream of one trace when
// the query asks for format=wav.
func (h *handler) writeResult(w http.ResponseWriter, r *http.Request, res signalsculptor.Result) {
	w.Header().Set(headerCalcTime, strconv.FormatFloat(res.CalculationTimeMs, 'f', -1, 64))

	q := r.URL.Query()
	switch q.Get("format") {
	case "", "json":
		writeJSON(w, http.StatusOK, res)
	case "wav":
		pts, err := res.Trace(traceName(q.Get("trace")))
		if err != nil {
			writeError(w, invalidArgument("%v", err))
			return
		}
		data, err := wavexport.Encode(pts, h.wav)
		if err != nil {
			writeError(w, &StatusError{Code: CodeInternal, Message: err.Error()})
			return
		}
		w.Header().Set("Content-Type", contentTypeWAV)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	default:
		writeError(w, invalidArgument("unknown format %q", q.Get("format")))
	}
}

// spectrumRequest is the union of the four operation bodies plus the
// analysis options.
type spectrumRequest struct {
	Kind string `json:"kind"`

	MessageFrequency float64                     `json:"message_frequency"`
	MessageAmplitude float64                     `json:"message_amplitude"`
	Frequency        float64                     `json:"frequency"`
	Amplitude        float64                     `json:"amplitude"`
	PCM              *signalsculptor.PCMConfig   `json:"pcm,omitempty"`
	DeltaModulation  *signalsculptor.DeltaConfig `json:"delta_modulation,omitempty"`
	BinaryInput      string                      `json:"binary_input"`
	Algorithm        string                      `json:"algorithm"`

	SampleRate float64 `json:"sample_rate"`
	Window     string  `json:"window"`
	Beta       float64 `json:"beta"`
	Top        int     `json:"top"`
}

type spectrumReply struct {
	Trace      string         `json:"trace"`
	Window     string         `json:"window"`
	SampleRate float64        `json:"sample_rate"`
	Samples    int            `json:"samples"`
	Length     int            `json:"length"`
	Mean       float64        `json:"mean"`
	RMS        float64        `json:"rms"`
	Dominant   spectrum.Bin   `json:"dominant"`
	Top        []spectrum.Bin `json:"top"`
}

func (h *handler) spectrum(w http.ResponseWriter, r *http.Request) {
	var req spectrumRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := h.run(req)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set(headerCalcTime, strconv.FormatFloat(res.CalculationTimeMs, 'f', -1, 64))

	trace := traceName(r.URL.Query().Get("trace"))
	pts, err := res.Trace(trace)
	if err != nil {
		writeError(w, invalidArgument("%v", err))
		return
	}

	rate := req.SampleRate
	if rate == 0 {
		rate = defaultSpectrumRate
	}
	if rate > h.svc.limits.MaxSamplingRate {
		writeError(w, invalidArgument("sample_rate above %g", h.svc.limits.MaxSamplingRate))
		return
	}
	top := req.Top
	if top <= 0 {
		top = defaultSpectrumTop
	}

	win, err := spectrum.ParseWindow(req.Window)
	if err != nil {
		writeError(w, invalidArgument("window must be none, hann or kaiser"))
		return
	}

	spec, err := spectrum.Analyze(pts, spectrum.Options{
		SampleRate: rate,
		Window:     win,
		Beta:       req.Beta,
		MaxSamples: h.svc.limits.MaxSpectrumSamples,
	})
	if err != nil {
		writeError(w, invalidArgument("%v", err))
		return
	}

	writeJSON(w, http.StatusOK, spectrumReply{
		Trace:      trace,
		Window:     win.String(),
		SampleRate: spec.SampleRate,
		Samples:    spec.Samples,
		Length:     spec.Length,
		Mean:       spec.Mean,
		RMS:        spec.RMS,
		Dominant:   spec.Dominant,
		Top:        spec.Top(top),
	})
}

// run dispatches a spectrum request to the operation named by its kind.
func (h *handler) run(req spectrumRequest) (signalsculptor.Result, error) {
	kind, err := signalsculptor.ParseKind(req.Kind)
	if err != nil {
		return signalsculptor.Result{}, invalidArgument("kind must be analog, pcm, delta, keying or line")
	}

	switch kind {
	case signalsculptor.KindAnalog:
		return h.svc.AnalogToAnalog(AnalogToAnalogRequest{
			MessageFrequency: req.MessageFrequency,
			MessageAmplitude: req.MessageAmplitude,
			Algorithm:        req.Algorithm,
		})
	case signalsculptor.KindPCM:
		if req.DeltaModulation != nil {
			return signalsculptor.Result{}, invalidArgument("kind pcm does not take delta_modulation")
		}
		return h.svc.AnalogToDigital(AnalogToDigitalRequest{
			Frequency: req.Frequency,
			Amplitude: req.Amplitude,
			PCM:       req.PCM,
		})
	case signalsculptor.KindDelta:
		if req.PCM != nil {
			return signalsculptor.Result{}, invalidArgument("kind delta does not take pcm")
		}
		return h.svc.AnalogToDigital(AnalogToDigitalRequest{
			Frequency:       req.Frequency,
			Amplitude:       req.Amplitude,
			DeltaModulation: req.DeltaModulation,
		})
	case signalsculptor.KindKeying:
		return h.svc.DigitalToAnalog(DigitalToAnalogRequest{BinaryInput: req.BinaryInput, Algorithm: req.Algorithm})
	default:
		return h.svc.DigitalToDigital(DigitalToDigitalRequest{BinaryInput: req.BinaryInput, Algorithm: req.Algorithm})
	}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"simd":   simdops.CPUInfo(),
	})
}

// traceName defaults an empty trace query to the transmitted trace.
func traceName(q string) string {
	if q == "" {
		return signalsculptor.TraceTransmitted
	}
	return q
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	se := statusOf(err)
	writeJSON(w, se.HTTPStatus(), se)
}
