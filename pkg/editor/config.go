package editor

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/jsoncanvas/jsoncanvas/pkg/errors"
	"github.com/jsoncanvas/jsoncanvas/pkg/history"
	"github.com/jsoncanvas/jsoncanvas/pkg/layout"
)

// Config controls a session's history depth, view synchronization, and
// layout metrics. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// HistoryCapacity bounds the undo and redo stacks.
	HistoryCapacity int `toml:"history_capacity"`

	// SyncGraphToText scrolls the text view when a graph node is focused.
	SyncGraphToText bool `toml:"sync_graph_to_text"`
	// SyncTextToGraph selects a graph node when a text line is clicked.
	SyncTextToGraph bool `toml:"sync_text_to_graph"`

	// ShowLineNumbers toggles the text view gutter.
	ShowLineNumbers bool `toml:"show_line_numbers"`

	// Layout overrides the layout metrics.
	Layout layout.Metrics `toml:"layout"`
}

// DefaultConfig returns the standard session configuration.
func DefaultConfig() Config {
	return Config{
		HistoryCapacity: history.DefaultCapacity,
		SyncGraphToText: true,
		SyncTextToGraph: true,
		ShowLineNumbers: true,
		Layout:          layout.DefaultMetrics(),
	}
}

// LoadConfig reads a TOML config file and overlays it on the defaults.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot parse config file %s", path)
	}

	if cfg.HistoryCapacity < 1 {
		return Config{}, errors.New(errors.ErrCodeInvalidInput, "history_capacity must be positive, got %d", cfg.HistoryCapacity)
	}
	return cfg, nil
}
