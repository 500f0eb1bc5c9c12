package cli

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envFile   = "FLOWSTEP_FILE"
	envOutput = "FLOWSTEP_OUTPUT"

	defaultFile   = "network.yaml"
	defaultOutput = outputText
)

// envDefaults are flag defaults resolved from the environment.
type envDefaults struct {
	file   string
	output string
}

// loadEnvDefaults merges path (if present) into the process environment
// without overriding variables that are already set, then reads the
// FLOWSTEP_* variables.
func loadEnvDefaults(path string) envDefaults {
	if _, err := os.Stat(path); err == nil {
		_ = godotenv.Load(path)
	}

	d := envDefaults{file: defaultFile, output: defaultOutput}
	if v := os.Getenv(envFile); v != "" {
		d.file = v
	}
	if v := os.Getenv(envOutput); v != "" {
		d.output = v
	}

	return d
}
