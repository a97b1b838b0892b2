// Package discovery announces the service on the local network with
// DNS-SD, so clients can find it without knowing its address.
package discovery

import (
	"context"
	"errors"
	"fmt"

	"github.com/brutella/dnssd"
	"github.com/charmbracelet/log"
)

// ServiceType is the DNS-SD type the server registers under.
const ServiceType = "_signalsculptor._tcp"

// ErrInvalidAnnouncement indicates a missing name or an invalid port.
var ErrInvalidAnnouncement = errors.New("discovery: invalid announcement")

// Announcement describes the advertised service.
type Announcement struct {
	Name string
	Port int
	// Text holds optional TXT record entries.
	Text map[string]string
}

// Validate checks if the announcement is valid.
func (a Announcement) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidAnnouncement)
	}
	if a.Port <= 0 || a.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidAnnouncement, a.Port)
	}
	return nil
}

func (a Announcement) config() dnssd.Config {
	return dnssd.Config{ //nolint:exhaustruct
		Name: a.Name,
		Type: ServiceType,
		Port: a.Port,
		Text: a.Text,
	}
}

// Announce registers a and answers DNS-SD queries until ctx is cancelled.
// It returns once the responder is running; responder failures are logged.
func Announce(ctx context.Context, a Announcement, logger *log.Logger) error {
	if err := a.Validate(); err != nil {
		return err
	}

	sv, err := dnssd.NewService(a.config())
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	rp, err := dnssd.NewResponder()
	if err != nil {
		return fmt.Errorf("failed to create responder: %w", err)
	}

	if _, err := rp.Add(sv); err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}

	logger.Info("announcing", "type", ServiceType, "name", a.Name, "port", a.Port)

	go func() {
		if err := rp.Respond(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("responder stopped", "err", err)
		}
	}()
	return nil
}
