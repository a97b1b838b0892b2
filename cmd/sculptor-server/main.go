// Command sculptor-server serves the signal transforms over HTTP.
package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/toprakmurat/SignalSculptor/internal/config"
	"github.com/toprakmurat/SignalSculptor/internal/discovery"
	"github.com/toprakmurat/SignalSculptor/internal/logging"
	"github.com/toprakmurat/SignalSculptor/internal/server"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sculptor-server:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("sculptor-server", pflag.ContinueOnError)
	var (
		configPath = flags.StringP("config", "c", "", "YAML configuration file.")
		listen     = flags.StringP("listen", "l", config.DefaultListen, "Listen address.")
		logLevel   = flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error.")
		logFormat  = flags.String("log-format", config.DefaultLogFormat, "Log format: text, json, logfmt.")
		announce   = flags.Bool("announce", false, "Announce the service with DNS-SD.")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, flags, overrides{
		listen:    *listen,
		logLevel:  *logLevel,
		logFormat: *logFormat,
		announce:  *announce,
	})
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format, "sculptor")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}

	if cfg.Discovery.Enabled {
		announceService(ctx, cfg, ln.Addr(), logger)
	}

	return server.New(cfg, logger).Serve(ctx, ln)
}

// overrides holds flag values that replace the file configuration when
// the flag was given explicitly.
type overrides struct {
	listen    string
	logLevel  string
	logFormat string
	announce  bool
}

func loadConfig(path string, flags *pflag.FlagSet, o overrides) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if flags.Changed("listen") {
		cfg.Listen = o.listen
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("announce") {
		cfg.Discovery.Enabled = o.announce
	}
	return cfg, cfg.Validate()
}

func announceService(ctx context.Context, cfg *config.Config, addr net.Addr, logger *log.Logger) {
	_, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		logger.Warn("discovery disabled", "err", err)
		return
	}
	port, _ := strconv.Atoi(portStr)

	a := discovery.Announcement{
		Name: cfg.Discovery.Name,
		Port: port,
		Text: map[string]string{"path": "/v1"},
	}
	if err := discovery.Announce(ctx, a, logger); err != nil {
		logger.Warn("discovery disabled", "err", err)
	}
}
