package registry

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"
)

type fakeMember struct {
	id string

	mu     sync.Mutex
	events []string
}

func (f *fakeMember) ID() string { return f.id }

func (f *fakeMember) DispatchEvent(name string, payload []byte) {
	f.mu.Lock()
	f.events = append(f.events, name+":"+string(payload))
	f.mu.Unlock()
}

func (f *fakeMember) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.events...)
}

func TestRegisterUnregisterAnyOrder(t *testing.T) {
	r := New()

	const n = 50
	members := make([]*fakeMember, n)
	for i := range members {
		members[i] = &fakeMember{id: fmt.Sprintf("m%d", i)}
		r.Register(members[i])
	}
	if r.Len() != n {
		t.Fatalf("got %d members, want %d", r.Len(), n)
	}

	order := rand.Perm(n)
	for _, i := range order {
		r.Unregister(members[i].id)
	}
	if r.Len() != 0 {
		t.Fatalf("registry not empty after unregistering all: %d left", r.Len())
	}
}

func TestRegisterSameIDKeepsOneEntry(t *testing.T) {
	r := New()
	m := &fakeMember{id: "dup"}
	r.Register(m)
	r.Register(m)

	if r.Len() != 1 {
		t.Fatalf("got %d entries, want 1", r.Len())
	}

	seen := 0
	r.ForEach(func(Member) { seen++ })
	if seen != 1 {
		t.Fatalf("ForEach visited %d entries, want 1", seen)
	}
}

func TestUnregisterUnknownIsSafe(t *testing.T) {
	r := New()
	r.Unregister("never-registered")
}

func TestBroadcastReachesEveryMember(t *testing.T) {
	r := New()
	members := []*fakeMember{{id: "a"}, {id: "b"}, {id: "c"}}
	for _, m := range members {
		r.Register(m)
	}

	if err := r.Dispatch("visibilityChanged", map[string]bool{"visible": true}, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	for _, m := range members {
		got := m.received()
		if len(got) != 1 {
			t.Fatalf("member %s received %d events, want 1", m.id, len(got))
		}
		if got[0] != `visibilityChanged:{"visible":true}` {
			t.Fatalf("member %s received %q", m.id, got[0])
		}
	}
}

func TestTargetedDispatch(t *testing.T) {
	r := New()
	a := &fakeMember{id: "a"}
	b := &fakeMember{id: "b"}
	r.Register(a)
	r.Register(b)

	if err := r.Dispatch("ping", map[string]int{"n": 1}, a); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}

	if len(a.received()) != 1 {
		t.Fatal("target did not receive the event")
	}
	if len(b.received()) != 0 {
		t.Fatal("non-target received a targeted event")
	}
}

func TestObserverMirrorsEvents(t *testing.T) {
	r := New()
	a := &fakeMember{id: "a"}
	r.Register(a)

	var mu sync.Mutex
	var mirrored []string
	r.SetObserver(func(name string, payload []byte, targetID string) {
		mu.Lock()
		mirrored = append(mirrored, name+"/"+targetID)
		mu.Unlock()
	})

	r.Dispatch("broadcast", nil, nil)
	r.Dispatch("direct", nil, a)

	mu.Lock()
	defer mu.Unlock()
	if len(mirrored) != 2 || mirrored[0] != "broadcast/" || mirrored[1] != "direct/a" {
		t.Fatalf("observer saw %v", mirrored)
	}
}
