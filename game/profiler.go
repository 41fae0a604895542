package game

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

const (
	fpsWindow          = 500 * time.Millisecond
	fpsDropThreshold   = 55.0
	profileCooldown    = 10 * time.Second
	profileCaptureTime = 5 * time.Second
)

// Profiler watches frame deltas and captures a CPU profile plus an execution trace when
// the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	// FPS window
	windowElapsed time.Duration
	windowFrames  int
	lastFPS       float64

	// capture runs a capture for baseName; replaced in tests
	capture func(baseName string)
	now     func() time.Time
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string) *Profiler {
	p := &Profiler{
		captureCooldown: profileCooldown,
		profilesDir:     dir,
		captureDuration: profileCaptureTime,
		now:             time.Now,
	}
	p.capture = p.captureAll
	return p
}

// FPS returns the frame rate measured over the last complete window
func (p *Profiler) FPS() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastFPS
}

// ObserveFrame records one frame of length delta. At the end of each window a frame
// rate under the threshold triggers a capture.
func (p *Profiler) ObserveFrame(delta time.Duration) {
	p.mu.Lock()
	p.windowElapsed += delta
	p.windowFrames++
	if p.windowElapsed < fpsWindow {
		p.mu.Unlock()
		return
	}
	fps := float64(p.windowFrames) / p.windowElapsed.Seconds()
	p.lastFPS = fps
	p.windowElapsed = 0
	p.windowFrames = 0
	p.mu.Unlock()

	if fps < fpsDropThreshold {
		if err := p.CaptureProfile(fmt.Sprintf("%.0ffps", fps)); err != nil {
			log.Printf("Profiler: %v", err)
		}
	}
}

// CaptureProfile starts a background capture unless one is running or the cooldown
// has not passed
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", now.Sub(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = now
	baseName := fmt.Sprintf("fps-drop-%s-%s", now.Format("20060102-150405"), reason)
	log.Printf("Profiler: frame rate dropped, capturing %s", baseName)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		p.capture(baseName)
	}()
	return nil
}

// recording is one kind of runtime capture, written to baseName+ext
type recording struct {
	name  string
	ext   string
	start func(io.Writer) error
	stop  func()
}

var recordings = []recording{
	{name: "CPU profile", ext: ".cpu.prof", start: pprof.StartCPUProfile, stop: pprof.StopCPUProfile},
	{name: "trace", ext: ".trace", start: trace.Start, stop: trace.Stop},
}

// captureAll runs every recording in parallel for the capture duration, then logs a
// summary
func (p *Profiler) captureAll(baseName string) {
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		log.Printf("Profiler: create %s: %v", p.profilesDir, err)
		return
	}

	var wg sync.WaitGroup
	for _, r := range recordings {
		r := r
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := p.record(r, baseName); err != nil {
				log.Printf("Error capturing %s: %v", r.name, err)
			}
		}()
	}
	wg.Wait()

	p.analyzeProfile(baseName)
}

// record runs r into its own file for the capture duration
func (p *Profiler) record(r recording, baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+r.ext)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := r.start(file); err != nil {
		return fmt.Errorf("start %s: %w", r.name, err)
	}
	time.Sleep(p.captureDuration)
	r.stop()

	log.Printf("%s saved to: %s", r.name, path)
	return nil
}

// analyzeProfile logs where the capture went and the heap at capture time
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("Warning: could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Profile %s (%.2f KB), view with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, profilePath)
	log.Printf("Memory: alloc=%dKB sys=%dKB gc=%d heapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
