package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Calibration holds the tunable thresholds of the text-analysis agents.
// The defaults match the values the scoring model was calibrated with;
// tests substitute fixture values through AgentOptions-style parameters.
type Calibration struct {
	ThemeMinFrequency      int     `mapstructure:"theme_min_frequency"`
	EntityMinMentions      int     `mapstructure:"entity_min_mentions"`
	ConfidenceDivisor      float64 `mapstructure:"confidence_divisor"`
	GapMinMagnitude        float64 `mapstructure:"gap_min_magnitude"`
	ChampionMentionCount   int     `mapstructure:"champion_mention_count"`
	MaxContextQuotes       int     `mapstructure:"max_context_quotes"`
	MaxExclamationMoments  int     `mapstructure:"max_exclamation_moments"`
	MaxFrustrationMoments  int     `mapstructure:"max_frustration_moments"`
	MaxExcitementMoments   int     `mapstructure:"max_excitement_moments"`
	RecommendationCapPerTier int   `mapstructure:"recommendation_cap_per_tier"`
}

type Server struct {
	Port         string `mapstructure:"port"`
	DatasetPath  string `mapstructure:"dataset_path"`
	BenchmarkURL string `mapstructure:"benchmark_url"`
}

type Config struct {
	Server      Server      `mapstructure:"server"`
	Calibration Calibration `mapstructure:"calibration"`
}

// Load reads config.yaml when present and lets environment variables
// override everything (SERVER_PORT, CALIBRATION_THEME_MIN_FREQUENCY, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.dataset_path", "interviews.xlsx")
	v.SetDefault("server.benchmark_url", "")

	v.SetDefault("calibration.theme_min_frequency", 2)
	v.SetDefault("calibration.entity_min_mentions", 2)
	v.SetDefault("calibration.confidence_divisor", 10.0)
	v.SetDefault("calibration.gap_min_magnitude", 2.0)
	v.SetDefault("calibration.champion_mention_count", 5)
	v.SetDefault("calibration.max_context_quotes", 5)
	v.SetDefault("calibration.max_exclamation_moments", 5)
	v.SetDefault("calibration.max_frustration_moments", 3)
	v.SetDefault("calibration.max_excitement_moments", 3)
	v.SetDefault("calibration.recommendation_cap_per_tier", 5)
}

// DefaultCalibration returns the calibration the agents were tuned with.
func DefaultCalibration() Calibration {
	return Calibration{
		ThemeMinFrequency:        2,
		EntityMinMentions:        2,
		ConfidenceDivisor:        10,
		GapMinMagnitude:          2,
		ChampionMentionCount:     5,
		MaxContextQuotes:         5,
		MaxExclamationMoments:    5,
		MaxFrustrationMoments:    3,
		MaxExcitementMoments:     3,
		RecommendationCapPerTier: 5,
	}
}
