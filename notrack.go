//go:build kerrnotrack

package kerr

// guard is a noop implementation that disables handle tracking when the kerrnotrack build tag is set. See track.go for
// further information.
type guard struct{}

func SetTrackHandles(bool)      {}
func TrackHandles() bool        { return false }
func track(repr) *guard         { return nil }
func (g *guard) resolve(string) {}
func liveLeaks() []Leak         { return nil }
func clearLeaks()               {}
