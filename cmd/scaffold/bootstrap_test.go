package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesainslie/scaffold/pkg/scaffold/config"
)

func TestBuildLoggingConfig(t *testing.T) {
	tests := []struct {
		name        string
		lc          config.LoggingConfig
		verbose     bool
		wantLevel   string
		wantConsole string
	}{
		{
			name:      "defaults",
			lc:        config.LoggingConfig{},
			wantLevel: "info",
		},
		{
			name:      "configured level",
			lc:        config.LoggingConfig{Level: "warn"},
			wantLevel: "warn",
		},
		{
			name:        "verbose forces debug and console output",
			lc:          config.LoggingConfig{Level: "error"},
			verbose:     true,
			wantLevel:   "debug",
			wantConsole: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLoggingConfig(tt.lc, tt.verbose)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantConsole, got.ConsoleLevel)
		})
	}
}

func TestBuildLoggingConfig_PreservesComponents(t *testing.T) {
	lc := config.LoggingConfig{
		Level:      "info",
		Path:       "/tmp/scaffold.log",
		Components: map[string]string{"journal": "error"},
	}

	got := buildLoggingConfig(lc, false)
	assert.Equal(t, "/tmp/scaffold.log", got.Path)
	assert.Equal(t, "error", got.Components["journal"])
}
