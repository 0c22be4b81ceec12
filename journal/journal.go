// Package journal appends handoff events to a YAML document stream, one
// document per event.
package journal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v2"
)

type Event struct {
	When        string  `yaml:"when"`
	Event       string  `yaml:"event"`
	Fingerprint string  `yaml:"fingerprint,omitempty"`
	Compact     string  `yaml:"compact,omitempty"`
	Grid        [][]int `yaml:"grid,omitempty"`
	Detail      string  `yaml:"detail,omitempty"`
}

func (it Event) Time() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, it.When)
}

type Journal struct {
	filename string
	mu       sync.Mutex
}

func Open(filename string) *Journal {
	return &Journal{filename: filename}
}

func (it *Journal) Filename() string {
	return it.filename
}

// Unify collapses all whitespace runs into single spaces, so that free
// text details stay on one line in the journal.
func Unify(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// Post appends one event. A missing When is stamped with the current time.
func (it *Journal) Post(event Event) error {
	if len(event.When) == 0 {
		event.When = time.Now().Format(time.RFC3339Nano)
	}
	event.Detail = Unify(event.Detail)

	content, err := yaml.Marshal(event)
	if err != nil {
		return err
	}

	it.mu.Lock()
	defer it.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(it.filename), 0o750); err != nil {
		return fmt.Errorf("journal directory: %w", err)
	}
	handle, err := os.OpenFile(it.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("journal %q: %w", it.filename, err)
	}
	defer handle.Close()

	_, err = handle.Write(append([]byte("---\n"), content...))
	return err
}

// Events reads back every event in posting order. A missing journal file
// is an empty journal.
func (it *Journal) Events() ([]Event, error) {
	it.mu.Lock()
	content, err := os.ReadFile(it.filename)
	it.mu.Unlock()

	if errors.Is(err, os.ErrNotExist) {
		return []Event{}, nil
	}
	if err != nil {
		return nil, err
	}

	result := []Event{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	for {
		event := Event{}
		err := decoder.Decode(&event)
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		if err != nil {
			return nil, fmt.Errorf("journal %q: %w", it.filename, err)
		}
		result = append(result, event)
	}
}

// Clear removes the journal file. Clearing a journal that was never
// written is not an error.
func (it *Journal) Clear() error {
	it.mu.Lock()
	defer it.mu.Unlock()

	err := os.Remove(it.filename)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("journal %q: %w", it.filename, err)
	}
	return nil
}
