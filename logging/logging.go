// Package logging builds the zap logger, the terminal owns stdout and stderr so logs only go to a file
package logging

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/cube-dodge/constants"
)

// New returns a JSON file logger under dir when debug is set, otherwise a no-op logger
func New(debug bool, dir string) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	if dir == "" {
		dir = constants.LogDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create log dir")
	}

	encoder := zap.NewProductionEncoderConfig()
	encoder.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    encoder,
		OutputPaths:      []string{Path(dir)},
		ErrorOutputPaths: []string{Path(dir)},
		DisableCaller:    true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

// Path is the log file location inside dir
func Path(dir string) string {
	return filepath.Join(dir, constants.LogFileName)
}
