package config

import (
	"fmt"

	"github.com/nspcc-dev/reqasm-go/pkg/gate"
	"go.uber.org/zap/zapcore"
)

// DefaultMaxQubits is the default limit for the number of simulated qubits.
const DefaultMaxQubits = 10

// ApplicationConfiguration is the configuration of the command line tool.
type ApplicationConfiguration struct {
	LogLevel string `yaml:"LogLevel"`
	LogPath  string `yaml:"LogPath"`
	// MaxQubits limits the register size of the gate command.
	MaxQubits int   `yaml:"MaxQubits"`
	Shell     Shell `yaml:"Shell"`
}

// Shell is the configuration of the interactive prompt.
type Shell struct {
	HistoryFile string `yaml:"HistoryFile"`
	PrintLogo   bool   `yaml:"PrintLogo"`
}

// Validate checks ApplicationConfiguration for internal consistency.
func (a *ApplicationConfiguration) Validate() error {
	if len(a.LogLevel) != 0 {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("LogLevel: %w", err)
		}
	}
	if a.MaxQubits < 1 || a.MaxQubits > gate.MaxQubits {
		return fmt.Errorf("MaxQubits: %d is out of [1, %d] range", a.MaxQubits, gate.MaxQubits)
	}
	return nil
}
