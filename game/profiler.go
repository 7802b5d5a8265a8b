package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// FrameProfiler captures a CPU profile and an execution trace when the frame
// rate stays low for a while
type FrameProfiler struct {
	mu        sync.Mutex
	capturing bool
	last      time.Time // Start of the previous capture
	slow      int       // Consecutive slow frames seen

	dir       string
	threshold float64 // Ticks per second below which a frame is slow
	patience  int     // Slow frames in a row before capturing
	cooldown  time.Duration
	duration  time.Duration
	logger    *log.Logger

	now   func() time.Time
	start func(base string) // Runs one capture; must call finish when done
}

// NewFrameProfiler profiles into dir whenever the measured rate drops below
// 80% of targetTPS for half a second
func NewFrameProfiler(dir string, targetTPS int, logger *log.Logger) *FrameProfiler {
	p := &FrameProfiler{
		dir:       dir,
		threshold: 0.8 * float64(targetTPS),
		patience:  max(targetTPS/2, 1),
		cooldown:  10 * time.Second,
		duration:  5 * time.Second,
		logger:    logger,
		now:       time.Now,
	}
	p.start = func(base string) { go p.capture(base) }
	return p
}

// Observe records the current ticks per second and starts a capture when the
// rate has been low long enough. A zero rate means not measured yet and is
// ignored. Returns true if a capture was started.
func (p *FrameProfiler) Observe(tps float64) bool {
	if tps <= 0 {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tps >= p.threshold {
		p.slow = 0
		return false
	}
	p.slow++
	if p.slow < p.patience || p.capturing {
		return false
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < p.cooldown {
		return false
	}

	p.capturing = true
	p.last = now
	p.slow = 0

	base := fmt.Sprintf("slow-frames-%s", now.Format("20060102-150405"))
	p.logger.Warn("frame rate dropped, profiling", "tps", fmt.Sprintf("%.1f", tps), "dir", p.dir, "name", base)
	p.start(base)
	return true
}

// Capturing reports whether a capture is in progress
func (p *FrameProfiler) Capturing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capturing
}

func (p *FrameProfiler) finish() {
	p.mu.Lock()
	p.capturing = false
	p.mu.Unlock()
}

// capture writes <base>.cpu.prof and <base>.trace side by side
func (p *FrameProfiler) capture(base string) {
	defer p.finish()

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		p.logger.Error("create profile directory", "dir", p.dir, "err", err)
		return
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		if err := p.captureCPU(base); err != nil {
			p.logger.Error("cpu profile", "err", err)
		}
	})
	wg.Go(func() {
		if err := p.captureTrace(base); err != nil {
			p.logger.Error("trace", "err", err)
		}
	})
	wg.Wait()
}

func (p *FrameProfiler) captureCPU(base string) error {
	path := filepath.Join(p.dir, base+".cpu.prof")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	// Fails if a --cpuprofile run already owns the profiler
	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.duration)
	pprof.StopCPUProfile()

	p.logger.Info("cpu profile saved", "path", path)
	return nil
}

func (p *FrameProfiler) captureTrace(base string) error {
	path := filepath.Join(p.dir, base+".trace")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.duration)
	trace.Stop()

	p.logger.Info("trace saved", "path", path)
	return nil
}
