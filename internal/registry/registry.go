package registry

import (
	"sync"

	"github.com/bytedance/sonic"

	"github.com/Francexi/browserhost/internal/infrastructure/monitoring"
)

// Member is one registered instance. DispatchEvent must not block: members
// forward the event to their browser as a fire-and-forget task.
type Member interface {
	ID() string
	DispatchEvent(name string, payload []byte)
}

// Observer mirrors dispatched events to an out-of-band consumer (e.g. a
// websocket stream). targetID is "" for broadcasts.
type Observer func(name string, payload []byte, targetID string)

// Registry is the process-scoped set of live instances.
type Registry struct {
	mu       sync.Mutex
	members  map[string]Member
	observer Observer

	metrics *monitoring.Metrics
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		members: make(map[string]Member),
	}
}

// WithMetrics attaches instance gauges.
func (r *Registry) WithMetrics(m *monitoring.Metrics) *Registry {
	r.metrics = m
	return r
}

// SetObserver installs the event mirror. Pass nil to remove it.
func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	r.observer = o
	r.mu.Unlock()
}

// Register inserts a member. Registering the same ID twice replaces the
// earlier entry, preserving the one-entry-per-instance invariant.
func (r *Registry) Register(m Member) {
	r.mu.Lock()
	r.members[m.ID()] = m
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.InstancesActive.Inc()
		r.metrics.InstancesTotal.Inc()
	}
}

// Unregister removes a member by ID. Safe to call for an instance that never
// completed initialization.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	_, existed := r.members[id]
	delete(r.members, id)
	r.mu.Unlock()

	if existed && r.metrics != nil {
		r.metrics.InstancesActive.Dec()
	}
}

// ForEach visits every member under the registry lock. Visitors must only
// enqueue work, never call back into the registry.
func (r *Registry) ForEach(visit func(Member)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.members {
		visit(m)
	}
}

// Get looks a member up by ID.
func (r *Registry) Get(id string) (Member, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	return m, ok
}

// Len returns the number of registered members.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Dispatch serializes payload once and delivers the event to target, or to
// every member when target is nil.
func (r *Registry) Dispatch(name string, payload interface{}, target Member) error {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return err
	}

	if r.metrics != nil {
		r.metrics.EventsDispatched.WithLabelValues(name).Inc()
	}

	targetID := ""
	if target != nil {
		targetID = target.ID()
		target.DispatchEvent(name, data)
	} else {
		r.ForEach(func(m Member) {
			m.DispatchEvent(name, data)
		})
	}

	r.mu.Lock()
	observer := r.observer
	r.mu.Unlock()
	if observer != nil {
		observer(name, data, targetID)
	}
	return nil
}
