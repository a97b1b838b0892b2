package discovery

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestAnnouncement_Validate(t *testing.T) {
	tests := []struct {
		name    string
		a       Announcement
		wantErr bool
	}{
		{"valid", Announcement{Name: "lab", Port: 50051}, false},
		{"empty name", Announcement{Port: 50051}, true},
		{"zero port", Announcement{Name: "lab"}, true},
		{"port too large", Announcement{Name: "lab", Port: 70000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.a.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAnnouncement)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnnouncement_Config(t *testing.T) {
	a := Announcement{Name: "lab", Port: 8080, Text: map[string]string{"path": "/v1"}}
	cfg := a.config()

	assert.Equal(t, "lab", cfg.Name)
	assert.Equal(t, ServiceType, cfg.Type)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/v1", cfg.Text["path"])
}

func TestAnnounce_RejectsInvalid(t *testing.T) {
	err := Announce(context.Background(), Announcement{Port: 1}, log.New(io.Discard))
	assert.ErrorIs(t, err, ErrInvalidAnnouncement)
}
