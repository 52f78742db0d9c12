package source

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Francexi/browserhost/internal/infrastructure/logging"
)

// Driver is the host render loop: once per frame it ticks every attached
// source (materializing pending creations) and runs its render-side work.
// Sources are iterated from a snapshot so no lock is held across engine
// dispatch.
type Driver struct {
	mu      sync.Mutex
	sources map[string]*Source

	interval time.Duration
	logger   *logging.Logger
}

// NewDriver creates a driver ticking at the given frame rate.
func NewDriver(frameRate int, logger *logging.Logger) *Driver {
	if frameRate <= 0 {
		frameRate = 60
	}
	if logger == nil {
		logger = logging.NewDefault()
	}
	return &Driver{
		sources:  make(map[string]*Source),
		interval: time.Second / time.Duration(frameRate),
		logger:   logger,
	}
}

// Attach adds a source to the frame loop.
func (d *Driver) Attach(s *Source) {
	d.mu.Lock()
	d.sources[s.ID()] = s
	d.mu.Unlock()
}

// Detach removes a source from the frame loop.
func (d *Driver) Detach(id string) {
	d.mu.Lock()
	delete(d.sources, id)
	d.mu.Unlock()
}

// Get returns an attached source by ID.
func (d *Driver) Get(id string) (*Source, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sources[id]
	return s, ok
}

// List returns the attached sources.
func (d *Driver) List() []*Source {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*Source, 0, len(d.sources))
	for _, s := range d.sources {
		out = append(out, s)
	}
	return out
}

// Run drives frames until the context is cancelled.
func (d *Driver) Run(ctx context.Context) {
	d.logger.Info("render loop starting", zap.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("render loop stopped")
			return
		case <-ticker.C:
			d.Frame()
		}
	}
}

// Frame runs one host frame over all attached sources.
func (d *Driver) Frame() {
	for _, s := range d.List() {
		s.Tick()
		s.Render()
	}
}
