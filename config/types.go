package config

// Config is the application configuration, read from YAML.
type Config struct {
	// CurrentYear fixes the year lifespans of living members run up to.
	// 0 means the system calendar year.
	CurrentYear int `yaml:"current_year" validate:"gte=0"`

	// MinBirthYear is the earliest birth or death year the shell accepts.
	MinBirthYear int `yaml:"min_birth_year" validate:"gte=0"`

	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

type LogConfig struct {
	Mode  string `yaml:"mode" validate:"oneof=development production dev prod"`
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

type OutputConfig struct {
	Color  bool   `yaml:"color"`
	Format string `yaml:"format" validate:"oneof=text json csv"`
}

// DefaultConfig returns the values used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CurrentYear:  0,
		MinBirthYear: 1800,
		Log: LogConfig{
			Mode:  "development",
			Level: "warn",
		},
		Output: OutputConfig{
			Color:  true,
			Format: "text",
		},
	}
}
