// Package storage writes the external output artifact: a pretty-printed
// JSON array of log entries, flushed once at the end of a run.
package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rob21runner/induslog/internal/sim"
	"github.com/rob21runner/induslog/pkg/logger"
)

type Sink interface {
	Write(entries []sim.LogEntry, path string) error
}

type JSONFileSink struct{}

func NewJSONFileSink() *JSONFileSink {
	return &JSONFileSink{}
}

// Write serializes the whole buffer in one shot. There is no incremental or
// partial persistence: a failure here loses the run and propagates.
func (s *JSONFileSink) Write(entries []sim.LogEntry, path string) error {
	log := logger.Get().With("component", "json_sink")

	if entries == nil {
		entries = []sim.LogEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Errorw("marshal failed", "error", err)
		return fmt.Errorf("marshal log entries: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Errorw("write failed", "path", path, "error", err)
		return fmt.Errorf("write %s: %w", path, err)
	}

	log.Infow("logs saved", "path", path, "entries", len(entries))
	return nil
}

// ReadLogFile loads a previously saved artifact back into memory.
func ReadLogFile(path string) ([]sim.LogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []sim.LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse log file %s: %w", path, err)
	}
	return entries, nil
}
