// Package config provides configuration management for the leapfol CLI.
//
// Values are layered from lowest to highest precedence: built-in defaults,
// leapfol.yaml, LEAPFOL_* environment variables, then explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	StatePath    string     `koanf:"state_path" yaml:"state_path"`
	Record       bool       `koanf:"record" yaml:"record"`
	Verbose      bool       `koanf:"verbose" yaml:"verbose"`
	OutputFormat string     `koanf:"output" yaml:"output"`
	Workers      int        `koanf:"workers" yaml:"workers"`
	MetricsFile  string     `koanf:"metrics_file" yaml:"metrics_file,omitempty"`
	Emit         EmitConfig `koanf:"emit" yaml:"emit"`

	// ProjectRoot is the directory relative paths resolve against. It is
	// inferred, never read from the file.
	ProjectRoot string `koanf:"-" yaml:"-"`
}

// EmitConfig holds prover output settings.
type EmitConfig struct {
	LabelPrefix      string `koanf:"label_prefix" yaml:"label_prefix"`
	ObligationPrefix string `koanf:"obligation_prefix" yaml:"obligation_prefix"`
}

// Default configuration values.
const (
	DefaultStateFile        = ".leapfol/state.db"
	DefaultOutput           = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultWorkers          = 4
	DefaultLabelPrefix      = "axiom"
	DefaultObligationPrefix = "obligation"
)

// ConfigFileNames are the file names searched for, in order.
var ConfigFileNames = []string{"leapfol.yaml", "leapfol.yml"}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	return &Config{
		StatePath:    DefaultStateFile,
		Record:       true,
		OutputFormat: DefaultOutput,
		Workers:      DefaultWorkers,
		Emit: EmitConfig{
			LabelPrefix:      DefaultLabelPrefix,
			ObligationPrefix: DefaultObligationPrefix,
		},
	}
}

func defaultMap() map[string]interface{} {
	d := Default()
	return map[string]interface{}{
		"state_path":             d.StatePath,
		"record":                 d.Record,
		"verbose":                d.Verbose,
		"output":                 d.OutputFormat,
		"workers":                d.Workers,
		"metrics_file":           "",
		"emit.label_prefix":      d.Emit.LabelPrefix,
		"emit.obligation_prefix": d.Emit.ObligationPrefix,
	}
}
