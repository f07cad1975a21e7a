package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the parsed command-line configuration
type Config struct {
	// FilterExpr optionally restricts printed variables (expr-lang, see envfilter)
	FilterExpr string
	// Chdir optionally changes the working directory before dumping
	Chdir string
}

// Tunables holds layer tunables read from environment variables
type Tunables struct {
	// CwdBufferSize is the initial getcwd buffer capacity in bytes
	CwdBufferSize int `env:"OSLAYER_CWD_BUFFER_SIZE" envDefault:"512"`
}

// ParseTunables parses layer tunables from environment variables
func ParseTunables() (*Tunables, error) {
	var t Tunables
	if err := env.Parse(&t); err != nil {
		return nil, fmt.Errorf("failed to parse tunables: %w", err)
	}
	if t.CwdBufferSize < 1 {
		return nil, fmt.Errorf("OSLAYER_CWD_BUFFER_SIZE must be positive, got %d", t.CwdBufferSize)
	}
	return &t, nil
}

// ParseArgs parses command-line arguments and returns a Config.
// Expected format: program_name [--filter <expr>] [--chdir <dir>]
func ParseArgs(args []string) (*Config, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments provided")
	}

	programName := args[0]
	cfg := &Config{}

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "--filter", "-f":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--filter requires a value")
			}
			cfg.FilterExpr = args[i+1]
			i++
		case "--chdir", "-C":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("--chdir requires a value")
			}
			cfg.Chdir = args[i+1]
			i++
		default:
			return nil, fmt.Errorf("Usage: %s [--filter <expr>] [--chdir <dir>]\nExample: %s --filter 'key startsWith \"PATH\"'",
				programName, programName)
		}
	}

	return cfg, nil
}
