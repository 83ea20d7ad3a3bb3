package logger_test

import (
	"bytes"
	"errors"
	"fieldservice/config"
	"fieldservice/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()

	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	for _, env := range []string{"", "development", "production"} {
		cfg := &config.Config{}
		cfg.Server.Env = env

		logger.InitLogger(cfg)

		if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
			t.Errorf("env %q: expected TimeFieldFormat to be %s, got %s", env, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
		}

		if zerolog.GlobalLevel() != zerolog.TraceLevel {
			t.Errorf("env %q: expected global level to be trace, got %s", env, zerolog.GlobalLevel())
		}
	}

	logger.InitLogger(nil)
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("insert customer failed"))

	if !bytes.Contains(buf.Bytes(), []byte("insert customer failed")) {
		t.Errorf("expected log output to contain the error, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{logLevel: "not-a-level", expectedLevel: zerolog.TraceLevel},
		{logLevel: "", expectedLevel: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level to be %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}
