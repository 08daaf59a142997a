// Marquee - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/recommend/index"
)

// Genre encoding modes.
const (
	// GenreModeCompound treats the raw genre string as one category.
	GenreModeCompound = "compound"

	// GenreModeMulti splits the genre string into tags.
	GenreModeMulti = "multi"
)

// Config contains the recommendation service settings.
type Config struct {
	// DefaultN is the result count used when a request does not specify one.
	DefaultN int `json:"default_n"`

	// MaxN caps the result count of a scored request. Zero means no cap.
	MaxN int `json:"max_n"`

	// StrictCount rejects n > N-1 with ErrOutOfRange instead of clamping.
	StrictCount bool `json:"strict_count"`

	// Metric names the distance function (see index.MetricByName).
	Metric string `json:"metric"`

	// Workers is the number of goroutines used to scan large catalogs.
	Workers int `json:"workers"`

	// GenreMode is GenreModeCompound or GenreModeMulti.
	GenreMode string `json:"genre_mode"`

	// GenreSeparators are the characters that split tags in multi mode.
	GenreSeparators string `json:"genre_separators"`

	// RequestTimeout bounds a single scored request. Zero disables it.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() *Config {
	return &Config{
		DefaultN:        6,
		MaxN:            50,
		StrictCount:     false,
		Metric:          index.MetricEuclidean,
		Workers:         1,
		GenreMode:       GenreModeCompound,
		GenreSeparators: "|,",
		RequestTimeout:  5 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultN < 1 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN != 0 && c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	if _, err := index.MetricByName(c.Metric); err != nil {
		return fmt.Errorf("metric: %w", err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	switch c.GenreMode {
	case GenreModeCompound:
	case GenreModeMulti:
		if c.GenreSeparators == "" {
			return fmt.Errorf("genre_separators must be set in %s mode", GenreModeMulti)
		}
	default:
		return fmt.Errorf("genre_mode must be %q or %q, got %q", GenreModeCompound, GenreModeMulti, c.GenreMode)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must be non-negative, got %v", c.RequestTimeout)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
