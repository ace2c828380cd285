package kerr

import (
	"strconv"
	"strings"
)

// PrintCreationStack controls whether leak reports include the stack at which each unresolved handle was created.
var PrintCreationStack = true

// PrintStackPretty enables additional formatting of creation stacks by aligning functions to the longest source
// filename.
var PrintStackPretty = true

// Leak describes an error handle that was created while handle tracking was enabled and has not been resolved.
type Leak struct {
	Text   string // the rendered error
	TypeID uint32
	Stack  string // the formatted creation stack
}

// LeakList is a collection of unresolved handles. It is the panic value of Checkpoint.
type LeakList struct {
	Leaks []Leak
}

// Error returns the list as a formatted, multi-line string.
func (l *LeakList) Error() string {
	if l == nil || len(l.Leaks) == 0 {
		return ""
	}
	sb := strings.Builder{}
	sb.WriteString("unresolved-errors ")
	sb.WriteString("count [")
	sb.WriteString(strconv.Itoa(len(l.Leaks)))
	sb.WriteString("]\n")
	for idx, leak := range l.Leaks {
		sb.WriteString("\t")
		sb.WriteString(strconv.Itoa(idx))
		sb.WriteString(": ")
		sb.WriteString(leak.Text)
		sb.WriteString("\n")
		if PrintCreationStack && leak.Stack != "" {
			for _, line := range strings.Split(strings.TrimRight(leak.Stack, "\n"), "\n") {
				sb.WriteString("\t")
				sb.WriteString(line)
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// ErrorOrNil returns the list as error if it is not empty, nil otherwise.
func (l *LeakList) ErrorOrNil() error {
	if l == nil || len(l.Leaks) == 0 {
		return nil
	}
	return l
}

// Leaks returns the tracked handles that are still unresolved, in creation order. The list is always empty if handle
// tracking is disabled.
func Leaks() *LeakList {
	return &LeakList{Leaks: liveLeaks()}
}

// Checkpoint panics with a *LeakList if any tracked handle is still unresolved. Call it at points where all errors
// created so far must have been propagated or discarded, e.g. at the end of a request or in test teardown.
func Checkpoint() {
	if err := Leaks().ErrorOrNil(); err != nil {
		panic(err)
	}
}

// ClearLeaks stops tracking all handles that are currently unresolved. Resolving them later is still allowed.
func ClearLeaks() {
	clearLeaks()
}

// TB is the subset of testing.TB used by VerifyResolved.
type TB interface {
	Helper()
	Errorf(format string, args ...interface{})
}

// VerifyResolved reports a test failure listing every tracked handle that is still unresolved, then stops tracking
// them so that subsequent tests start clean.
//
//	func TestSomething(t *testing.T) {
//		kerr.SetTrackHandles(true)
//		defer kerr.VerifyResolved(t)
//		...
//	}
func VerifyResolved(t TB) {
	t.Helper()
	if err := Leaks().ErrorOrNil(); err != nil {
		t.Errorf("%s", err)
	}
	ClearLeaks()
}
