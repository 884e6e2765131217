package progress

import (
	"fmt"
	"sync/atomic"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Tracker tracks progress for a single pipeline pass.
type Tracker interface {
	SetStage(stage string)
	SetProgress(current, total int64)
	Done()
}

// Manager creates trackers for individual passes.
type Manager interface {
	NewTracker(index, total int, name string) Tracker
	Wait()
}

// MPBManager implements Manager using the mpb multi-progress-bar library.
type MPBManager struct {
	container *mpb.Progress
}

// NewMPBManager creates a new mpb-based progress manager.
func NewMPBManager() *MPBManager {
	return &MPBManager{container: mpb.New(mpb.WithWidth(60))}
}

// NewTracker creates a progress tracker for one pass.
func (m *MPBManager) NewTracker(index, total int, name string) Tracker {
	stageVal := &atomic.Value{}
	stageVal.Store("")
	bar := m.container.AddBar(100,
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("[%d/%d] %s ", index+1, total, name), decor.WCSyncSpaceR),
		),
		mpb.AppendDecorators(
			decor.Any(func(s decor.Statistics) string {
				return stageVal.Load().(string)
			}),
		),
	)

	return &mpbTracker{bar: bar, stagePtr: stageVal}
}

// Wait waits for all progress bars to finish.
func (m *MPBManager) Wait() {
	m.container.Wait()
}

type mpbTracker struct {
	bar      *mpb.Bar
	stagePtr *atomic.Value
}

func (t *mpbTracker) SetStage(stage string) {
	t.stagePtr.Store(stage)
}

func (t *mpbTracker) SetProgress(current, total int64) {
	if total > 0 {
		pct := int64(float64(current) / float64(total) * 100)
		t.bar.SetTotal(100, false)
		t.bar.SetCurrent(pct)
	}
}

func (t *mpbTracker) Done() {
	t.bar.SetTotal(100, false)
	t.bar.SetCurrent(100)
	t.bar.Abort(false) // complete without removing
}

// NoopManager is a silent progress manager for tests.
type NoopManager struct{}

func (NoopManager) NewTracker(index, total int, name string) Tracker { return noopTracker{} }
func (NoopManager) Wait()                                            {}

type noopTracker struct{}

func (noopTracker) SetStage(stage string)            {}
func (noopTracker) SetProgress(current, total int64) {}
func (noopTracker) Done()                            {}
