package renderer

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
	"sync"

	"github.com/few-photons/pathtracer/pkg/camera"
	"github.com/few-photons/pathtracer/pkg/color"
	"github.com/few-photons/pathtracer/pkg/core"
	"github.com/few-photons/pathtracer/pkg/image"
	"github.com/few-photons/pathtracer/pkg/integrator"
)

// ProgressFunc is the external progress callback: invoked with a fraction
// in [0,1] whenever the dispatcher's completed-pixel counter crosses a
// 1/1000 boundary.
type ProgressFunc func(fraction float64) error

// Dispatcher enumerates every (row, col) of the output grid and submits a
// sampling task per pixel to a WorkerPool. Each task reads only the
// immutable Camera and Integrator and writes to one disjoint cell of the
// resulting PixelBuffer.
type Dispatcher struct {
	Camera          *camera.Camera
	Integrator      integrator.Integrator
	Width, Height   int
	SamplesPerPixel int
	ColorSpace      color.Space
	Seed            int64
	Logger          core.Logger
	OnProgress      ProgressFunc
}

// Render submits one task per pixel to pool and blocks until every task has
// completed, returning the fully populated pixel buffer. Pixels may
// complete in any order; there is no ordering guarantee between tasks.
func (d *Dispatcher) Render(pool *WorkerPool) *image.PixelBuffer {
	buf := image.NewPixelBuffer(d.Width, d.Height)
	total := d.Width * d.Height

	progress := &progressTracker{total: total, onProgress: d.OnProgress, logger: d.Logger}

	var wg sync.WaitGroup
	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			row, col := row, col
			wg.Add(1)
			pool.Execute(func() {
				defer wg.Done()
				d.renderPixel(buf, row, col)
				progress.advance()
			})
		}
	}
	wg.Wait()

	return buf
}

func (d *Dispatcher) renderPixel(buf *image.PixelBuffer, row, col int) {
	random := rand.New(rand.NewSource(seedFor(row, col, d.Seed)))

	var sum core.Vec3
	for i := 0; i < d.SamplesPerPixel; i++ {
		s := (float64(col) + random.Float64()) / float64(d.Width-1)
		t := (float64(d.Height-1-row) + random.Float64()) / float64(d.Height-1)

		ray := d.Camera.GetRay(s, t, random)
		sum = sum.Add(d.Integrator.RayColor(ray, random))
	}

	avg := sum.Divide(float64(d.SamplesPerPixel))
	buf.SetPixel(row, col, color.ToRGB(avg, d.ColorSpace))
}

// seedFor derives a deterministic per-task RNG seed from the pixel
// coordinates and a user-supplied base seed, so a fixed seed reproduces a
// fixed image even though tasks complete in an arbitrary order.
func seedFor(row, col int, base int64) int64 {
	h := fnv.New64a()
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(row))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(col))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(base))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// progressTracker guards a monotonic completed-pixel counter and invokes
// OnProgress whenever it crosses a 1/1000 boundary, holding the lock for
// the callback invocation as the source does.
type progressTracker struct {
	mu           sync.Mutex
	completed    int
	reportedPerK int
	total        int
	onProgress   ProgressFunc
	logger       core.Logger
}

func (p *progressTracker) advance() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	if p.total <= 0 || p.onProgress == nil {
		return
	}

	fraction := float64(p.completed) / float64(p.total)
	perK := int(fraction * 1000)
	if perK <= p.reportedPerK && p.completed < p.total {
		return
	}
	p.reportedPerK = perK

	if err := p.onProgress(fraction); err != nil && p.logger != nil {
		p.logger.Printf("progress callback: %v", err)
	}
}
