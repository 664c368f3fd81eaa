package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gricha/obsidian-gym-tracker/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Vault     VaultConfig     `yaml:"vault"`
	Tracker   TrackerConfig   `yaml:"tracker"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

type VaultConfig struct {
	Dir             string `yaml:"dir"`
	WorkoutsFolder  string `yaml:"workouts_folder"`
	ExercisesFolder string `yaml:"exercises_folder"`
	TemplatesFolder string `yaml:"templates_folder"`
}

type TrackerConfig struct {
	WeightUnit     string   `yaml:"weight_unit"`     // kg or lbs
	TrackExertion  *bool    `yaml:"track_exertion"`  // defaults to true
	ExertionMetric string   `yaml:"exertion_metric"` // rpe or rir
	WorkoutTypes   []string `yaml:"workout_types"`
}

// Settings projects the vault and tracker sections into the value the
// core parsers and catalogs are constructed with.
func (c *Config) Settings() models.Settings {
	s := models.DefaultSettings()
	if c.Vault.WorkoutsFolder != "" {
		s.WorkoutsFolder = c.Vault.WorkoutsFolder
	}
	if c.Vault.ExercisesFolder != "" {
		s.ExercisesFolder = c.Vault.ExercisesFolder
	}
	if c.Vault.TemplatesFolder != "" {
		s.TemplatesFolder = c.Vault.TemplatesFolder
	}
	if c.Tracker.WeightUnit != "" {
		s.WeightUnit = c.Tracker.WeightUnit
	}
	if c.Tracker.TrackExertion != nil {
		s.TrackExertion = *c.Tracker.TrackExertion
	}
	if c.Tracker.ExertionMetric != "" {
		s.Exertion = models.ExertionMetric(c.Tracker.ExertionMetric)
	}
	if len(c.Tracker.WorkoutTypes) > 0 {
		s.WorkoutTypes = c.Tracker.WorkoutTypes
	}
	return s
}

// Load reads config from a YAML file, then applies environment variable
// overrides. Env vars use the prefix GYMTRACKER_ and underscore-separated
// paths:
//
//	GYMTRACKER_SERVER_HOST, GYMTRACKER_SERVER_PORT,
//	GYMTRACKER_AUTH_API_KEY, GYMTRACKER_VAULT_DIR,
//	GYMTRACKER_WEIGHT_UNIT, GYMTRACKER_EXERTION_METRIC
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GYMTRACKER_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("GYMTRACKER_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("GYMTRACKER_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("GYMTRACKER_VAULT_DIR"); v != "" {
		cfg.Vault.Dir = v
	}
	if v := os.Getenv("GYMTRACKER_WEIGHT_UNIT"); v != "" {
		cfg.Tracker.WeightUnit = v
	}
	if v := os.Getenv("GYMTRACKER_EXERTION_METRIC"); v != "" {
		cfg.Tracker.ExertionMetric = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port == 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.Vault.Dir == "" {
		return fmt.Errorf("vault.dir is required")
	}
	if u := c.Tracker.WeightUnit; u != "" && u != "kg" && u != "lbs" {
		return fmt.Errorf("tracker.weight_unit must be kg or lbs, got %q", u)
	}
	if m := c.Tracker.ExertionMetric; m != "" && m != "rpe" && m != "rir" {
		return fmt.Errorf("tracker.exertion_metric must be rpe or rir, got %q", m)
	}
	return nil
}
