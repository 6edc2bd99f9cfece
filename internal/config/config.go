package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Corpus     CorpusConfig     `mapstructure:"corpus"`
	Similarity SimilarityConfig `mapstructure:"similarity"`
	Archive    ArchiveConfig    `mapstructure:"archive"`
	Translator TranslatorConfig `mapstructure:"translator"`
}

type CorpusConfig struct {
	Path string `mapstructure:"path"`
}

type SimilarityConfig struct {
	Threshold float64 `mapstructure:"threshold" validate:"gte=0.5,lte=1"`
}

type ArchiveConfig struct {
	Path string `mapstructure:"path"`
}

type TranslatorConfig struct {
	RapidAPI RapidAPIConfig `mapstructure:"rapidapi"`
}

type RapidAPIConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

// Enabled reports whether the credentials required to call the
// translation service are present.
func (c RapidAPIConfig) Enabled() bool {
	return c.Host != "" && c.Key != ""
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/similarwords")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("corpus.path", "dictionary.txt")
	v.SetDefault("similarity.threshold", 0.7)
	v.SetDefault("archive.path", filepath.Join("archive", "queries.yml"))
	v.SetDefault("translator.rapidapi.cache_directory", filepath.Join("translations", "rapidapi"))
	v.SetDefault("translator.rapidapi.host", "wordsapiv1.p.rapidapi.com")

	// Bind RapidAPI config to environment variables only (not from config file)
	if err := v.BindEnv("translator.rapidapi.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("translator.rapidapi.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
