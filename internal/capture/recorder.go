package capture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
)

// Recorder accumulates rendered frames and encodes them to numbered WebP
// files with a worker pool. Frames are captured in simulation order; only
// encoding is parallel.
type Recorder struct {
	frames []*image.NRGBA
}

// Capture appends one frame.
func (r *Recorder) Capture(img *image.NRGBA) {
	r.frames = append(r.frames, img)
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// FrameName returns the file name for frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// Encode writes every captured frame to outDir using the given number of
// workers, reporting progress every two seconds.
func (r *Recorder) Encode(outDir string, workers int) []Result {
	total := len(r.frames)
	results := make([]Result, total)
	var processed atomic.Int64

	if err := os.MkdirAll(outDir, 0755); err != nil {
		for i := range results {
			results[i] = Result{Frame: i, Error: err.Error()}
		}
		return results
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	if workers < 1 {
		workers = 1
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = r.encodeFrame(outDir, idx)
				processed.Add(1)
			}
		}()
	}

	for i := range r.frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func (r *Recorder) encodeFrame(outDir string, idx int) Result {
	path := filepath.Join(outDir, FrameName(idx))

	f, err := os.Create(path)
	if err != nil {
		return Result{Frame: idx, Path: path, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, r.frames[idx], nil); err != nil {
		return Result{Frame: idx, Path: path, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: idx, Path: path, Success: true}
}
