// Package logbuf keeps the bounded message log shown in the dashboard's
// "Machine output" panel.
package logbuf

import (
	"strings"
	"sync"
	"time"
)

// Iconic picks unicode level icons over one letter fallbacks.
var Iconic = true

type LogLevel int

const (
	LogTrace LogLevel = iota
	LogDebug
	LogInfo
	LogWarn
	LogError
)

var (
	levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR"}
	levelIcons = [...]string{"·", "○", "●", "▲", "✗"}

	sources = []string{"grid", "belt", "robot", "journal"}
)

func (l LogLevel) known() bool {
	return l >= LogTrace && l <= LogError
}

func (l LogLevel) String() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l]
}

// Icon marks the level in front of a message line.
func (l LogLevel) Icon() string {
	switch {
	case !l.known():
		return "?"
	case Iconic:
		return levelIcons[l]
	default:
		return levelNames[l][:1]
	}
}

// LogEntry is one message. Seq keeps counting when old entries are dropped.
type LogEntry struct {
	Seq     int
	Time    time.Time
	Level   LogLevel
	Source  string
	Message string
}

// LogStats counts the retained entries by level.
type LogStats struct {
	Total  int
	Errors int
	Warns  int
	Infos  int
}

// LogBuffer retains the newest limit entries. Safe for concurrent use.
type LogBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	limit   int
	seq     int
}

// NewLogBuffer keeps at least ten entries.
func NewLogBuffer(limit int) *LogBuffer {
	if limit < 10 {
		limit = 10
	}
	return &LogBuffer{
		entries: make([]LogEntry, 0, limit),
		limit:   limit,
	}
}

func (lb *LogBuffer) Add(level LogLevel, source, message string) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries = append(lb.entries, LogEntry{
		Seq:     lb.seq,
		Time:    time.Now(),
		Level:   level,
		Source:  source,
		Message: strings.TrimSpace(message),
	})
	lb.seq++
	if extra := len(lb.entries) - lb.limit; extra > 0 {
		lb.entries = lb.entries[extra:]
	}
}

// AddLine takes a formatted logger line, as the interceptor sees it.
func (lb *LogBuffer) AddLine(line string) {
	level, source, message := classify(strings.TrimSpace(line))
	if len(message) == 0 {
		return
	}
	lb.Add(level, source, message)
}

// classify reads the level from the logger's [T]/[D]/[N] markers or from
// the wording, and the source from a leading "grid:" style prefix.
func classify(line string) (LogLevel, string, string) {
	level := LogInfo
	if rest, ok := strings.CutPrefix(line, "[T] "); ok {
		level, line = LogTrace, rest
	} else if rest, ok := strings.CutPrefix(line, "[D] "); ok {
		level, line = LogDebug, rest
	} else {
		lower := strings.ToLower(line)
		for _, word := range []string{"error", "fault", "failed"} {
			if strings.Contains(lower, word) {
				level = LogError
				break
			}
		}
		if level == LogInfo && strings.Contains(lower, "warn") {
			level = LogWarn
		}
	}
	line = strings.TrimPrefix(line, "[N] ")

	for _, source := range sources {
		if rest, ok := strings.CutPrefix(line, source+":"); ok {
			return level, source, strings.TrimSpace(rest)
		}
	}
	return level, "", line
}

// Recent is a copy of the newest n entries, oldest first.
func (lb *LogBuffer) Recent(n int) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if n <= 0 || len(lb.entries) == 0 {
		return nil
	}
	if n > len(lb.entries) {
		n = len(lb.entries)
	}
	return append([]LogEntry(nil), lb.entries[len(lb.entries)-n:]...)
}

func (lb *LogBuffer) All() []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()
	return append(make([]LogEntry, 0, len(lb.entries)), lb.entries...)
}

func (lb *LogBuffer) Stats() LogStats {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	stats := LogStats{Total: len(lb.entries)}
	for _, entry := range lb.entries {
		switch entry.Level {
		case LogError:
			stats.Errors++
		case LogWarn:
			stats.Warns++
		case LogInfo:
			stats.Infos++
		}
	}
	return stats
}
