package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"lynx-bridge/core/backup"
	"lynx-bridge/core/history"
	"lynx-bridge/core/logger"
	"lynx-bridge/core/metrics"
	"lynx-bridge/core/race"
	"lynx-bridge/core/textenc"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// OutputConfig holds settings for the written event database.
type OutputConfig struct {
	// Encoding is the character encoding of the EVT file (ascii, utf-8, utf-16).
	Encoding string `mapstructure:"encoding" default:"ascii"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Output holds settings for the written EVT file.
	Output OutputConfig `mapstructure:"output"`
	// Backup controls the copy taken before the EVT file is rewritten.
	Backup backup.Config `mapstructure:"backup"`
	// Races holds event name and lap count settings.
	Races race.Config `mapstructure:"races"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// History holds configuration for the update journal.
	History history.Config `mapstructure:"history"`
	// Metrics holds configuration for the metrics textfile.
	Metrics metrics.Config `mapstructure:"metrics"`
}

// IsValidEncoding reports whether Output.Encoding names a supported encoding.
func (c *Config) IsValidEncoding() bool {
	_, err := textenc.Parse(c.Output.Encoding)
	return err == nil
}

// LoadConfig loads configuration from the .env file, an optional config.yaml
// and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Map environment variables to nested keys (e.g. OUTPUT_ENCODING -> output.encoding)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
