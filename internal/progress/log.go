package progress

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// LogManager implements Manager with line-based output for non-TTY
// environments (CI, cron). Prints a timestamped line per stage instead of
// interactive progress bars.
type LogManager struct {
	mu sync.Mutex
}

// NewLogManager creates a new log-based progress manager.
func NewLogManager() *LogManager {
	return &LogManager{}
}

func (m *LogManager) NewTracker(index, total int, name string) Tracker {
	return &logTracker{
		mgr:   m,
		index: index,
		total: total,
		name:  name,
		start: time.Now(),
	}
}

func (m *LogManager) Wait() {}

// logTracker implements Tracker with one log line per stage change.
type logTracker struct {
	mgr   *LogManager
	index int
	total int
	name  string
	start time.Time
	stage string
}

func (t *logTracker) log(msg string) {
	t.mgr.mu.Lock()
	defer t.mgr.mu.Unlock()
	ts := time.Now().Format("15:04:05")
	fmt.Fprintf(os.Stderr, "%s [%d/%d] %s  %s\n", ts, t.index+1, t.total, t.name, msg)
}

func (t *logTracker) SetStage(stage string) {
	t.stage = stage
	t.log(stage)
}

func (t *logTracker) SetProgress(current, total int64) {}

func (t *logTracker) Done() {
	elapsed := time.Since(t.start).Truncate(time.Millisecond)
	t.log(fmt.Sprintf("Finished in %s", elapsed))
}
