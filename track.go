//go:build !kerrnotrack

package kerr

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	gostack "github.com/eluv-io/stack"
)

// trackHandles controls whether constructors register new handles with the leak tracker. This is a runtime setting -
// use the "kerrnotrack" build tag to remove handle tracking at compile time.
var trackHandles = atomic.Bool{}

// SetTrackHandles enables or disables leak tracking for handles created from now on. While enabled, every constructor
// records the handle and its creation stack until the handle is resolved; Leaks and Checkpoint report the handles that
// are still unresolved. Tracking allocates, so the allocation-free path of NewSimple is only allocation-free while
// tracking is disabled (the default).
func SetTrackHandles(b bool) {
	trackHandles.Store(b)
}

// TrackHandles returns true if leak tracking is enabled.
func TrackHandles() bool {
	return trackHandles.Load()
}

// guardSeq orders guards by creation.
var guardSeq uint64

// guard represents a tracked, unresolved handle.
type guard struct {
	// r is a read-only copy of the handle's representation used for reporting; records are immutable.
	r   repr
	seq uint64
	// the program counters returned by runtime.Callers()
	pcs []uintptr
	// resolved is shared by all copies of the handle
	resolved atomic.Bool
}

var live = struct {
	sync.Mutex
	guards map[*guard]struct{}
}{guards: make(map[*guard]struct{})}

// track registers a new handle if tracking is enabled. It must be called directly from the constructor.
func track(r repr) *guard {
	if !trackHandles.Load() {
		return nil
	}
	g := &guard{
		r:   r,
		seq: atomic.AddUint64(&guardSeq, 1),
		// 2 removes the track() and constructor functions
		pcs: gostack.Callers(2),
	}
	live.Lock()
	live.guards[g] = struct{}{}
	live.Unlock()
	return g
}

// resolve marks the guarded handle as resolved. Panics if any copy of the handle was resolved before.
func (g *guard) resolve(op string) {
	if g == nil {
		return
	}
	if !g.resolved.CompareAndSwap(false, true) {
		panic("kerr: " + op + " called on a resolved error handle: " + g.r.describe())
	}
	live.Lock()
	delete(live.guards, g)
	live.Unlock()
}

func liveLeaks() []Leak {
	live.Lock()
	guards := make([]*guard, 0, len(live.guards))
	for g := range live.guards {
		guards = append(guards, g)
	}
	live.Unlock()

	sort.Slice(guards, func(i, j int) bool {
		return guards[i].seq < guards[j].seq
	})

	res := make([]Leak, len(guards))
	for i, g := range guards {
		res[i] = Leak{
			Text:   g.r.describe(),
			TypeID: g.r.typeID(),
			Stack:  g.stack(),
		}
	}
	return res
}

func clearLeaks() {
	live.Lock()
	live.guards = make(map[*guard]struct{})
	live.Unlock()
}

// stack formats the creation stack of the guarded handle, one call per line.
func (g *guard) stack() string {
	trace := gostack.TraceFrom(g.pcs).TrimRuntime()
	b := new(bytes.Buffer)
	if PrintStackPretty {
		filenames := make([]string, len(trace))
		max := 0
		for i, call := range trace {
			filenames[i] = fmt.Sprintf("%+v", call)
			if fl := len(filenames[i]); max < fl {
				max = fl
			}
		}
		for i, call := range trace {
			fmt.Fprintf(b, "\t%-*s %n()\n", max, filenames[i], call)
		}
		return b.String()
	}
	for _, call := range trace {
		fmt.Fprintf(b, "\t%+v\t%[1]n()\n", call)
	}
	return b.String()
}
