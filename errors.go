package kerr

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
)

// Error is an error handle: a module identity, a kind and an optional message in a compact representation. Errors
// without a message are allocation-free.
//
// An Error must be resolved exactly once, either by propagating it with Into (or IntoResult) or by dropping it with
// Discard. Both take a pointer and leave the handle empty. Handles that are never resolved are reported by Checkpoint
// when handle tracking is enabled, see SetTrackHandles.
//
// An Error is owned by whoever holds it. Passing it by value transfers ownership, including to another goroutine. The
// previous holder must not use or resolve its copy afterwards: copies share one resolution, so with handle tracking
// enabled, resolving a second copy panics, and a copy that is never resolved goes unnoticed once another copy was
// resolved.
type Error struct {
	r repr
	// g is the leak-tracking guard; nil unless handle tracking was enabled at construction time.
	g *guard
}

// NewSimple creates an error of the given module and kind without message. It does not allocate unless handle tracking
// is enabled.
func NewSimple(m Module, k Kind) Error {
	e := Error{r: newSimple(m, k)}
	e.g = track(e.r)
	return e
}

// NewSimpleMsg creates an error with a static message, usually a string constant.
func NewSimpleMsg(m Module, k Kind, msg string) Error {
	e := Error{r: newSimpleMsg(m, k, msg)}
	e.g = track(e.r)
	return e
}

// NewCustomMsg creates an error with a message that was built at runtime.
func NewCustomMsg(m Module, k Kind, msg string) Error {
	e := Error{r: newCustomMsg(m, k, msg)}
	e.g = track(e.r)
	return e
}

// Newf creates an error with a message formatted according to the given format specifier.
func Newf(m Module, k Kind, format string, args ...interface{}) Error {
	e := Error{r: newCustomMsg(m, k, fmt.Sprintf(format, args...))}
	e.g = track(e.r)
	return e
}

// Into resolves the handle by moving the error into a returned error value, leaving e empty. This is the normal way to
// propagate an error:
//
//	e := kerr.NewSimple(module, kerr.K.NotFound)
//	return e.Into()
//
// Panics if e was already resolved.
func (e *Error) Into() error {
	e.mustBeUnresolved("into")
	moved := &Error{r: e.r}
	e.g.resolve("into")
	e.g = nil
	e.r = repr{}
	return moved
}

// IntoResult resolves the handle like Into and returns it as the error branch of a (T, error) result. The T value is
// always the zero value.
//
//	func open(name string) (*File, error) {
//		...
//		e := kerr.NewSimpleMsg(module, kerr.K.NotFound, "no such file")
//		return kerr.IntoResult[*File](&e)
//	}
func IntoResult[T any](e *Error) (T, error) {
	var zero T
	return zero, e.Into()
}

// Discard resolves the handle by dropping the error without propagating it. Panics if e was already resolved.
func (e *Error) Discard() {
	e.mustBeUnresolved("discard")
	e.g.resolve("discard")
	e.g = nil
	e.r.release()
}

func (e *Error) mustBeUnresolved(op string) {
	if e.r.isZero() {
		panic("kerr: " + op + " called on a resolved error handle")
	}
}

// Resolved returns true if the handle is empty, i.e. after Into or Discard, or if it is the zero Error.
func (e *Error) Resolved() bool {
	return e.r.isZero()
}

// Error returns the rendered error "<kind>. <message or Null>. FROM '<module>'", e.g.
//
//	NOT FOUND (1). Null. FROM 'net'
//
// Returns the empty string for a resolved handle.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.r.render()
}

// TypeID returns the 32-bit type id: the module identity in the upper and the packed kind in the lower 16 bits.
func (e *Error) TypeID() uint32 {
	return e.r.typeID()
}

// Module returns the identity of the module that created the error.
func (e *Error) Module() Module {
	return e.r.module()
}

// Kind returns the error's kind.
func (e *Error) Kind() Kind {
	return e.r.kind()
}

// Message returns the error's message or the empty string if it has none.
func (e *Error) Message() string {
	msg, _ := e.r.message()
	return msg
}

// HasMessage returns true if the error carries a message (and was therefore allocated).
func (e *Error) HasMessage() bool {
	_, ok := e.r.message()
	return ok
}

// Immediate returns true if the error is held in the allocation-free representation.
func (e *Error) Immediate() bool {
	return !e.r.isZero() && e.r.isImmediate()
}

// Equal reports whether both errors have the same type id, i.e. the same module and kind. Messages are ignored. A
// resolved handle only equals another resolved handle.
func (e *Error) Equal(other *Error) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.r.isZero() || other.r.isZero() {
		return e.r.isZero() && other.r.isZero()
	}
	return e.r.equal(&other.r)
}

// Is implements the interface used by errors.Is: it reports whether target is an *Error with the same type id.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e.r.isZero() || t.r.isZero() {
		return false
	}
	return e.r.equal(&t.r)
}

// LogValue implements slog.LogValuer, so an error can be logged directly as a structured value.
func (e *Error) LogValue() slog.Value {
	if e.r.isZero() {
		return slog.StringValue("")
	}
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("kind", e.Kind().String()),
		slog.String("module", e.Module().String()),
	)
	if msg, ok := e.r.message(); ok {
		attrs = append(attrs, slog.String("msg", msg))
	}
	attrs = append(attrs, slog.String("type_id", fmt.Sprintf("%#08x", e.TypeID())))
	return slog.GroupValue(attrs...)
}

var _ slog.LogValuer = (*Error)(nil)

// Match compares two errors by classification.
//
// If both arguments are *Error, Match returns true iff their type ids are equal. Otherwise it returns
// reflect.DeepEqual(err1, err2).
func Match(err1, err2 error) bool {
	if err1 == nil {
		return err2 == nil
	}
	if err2 == nil {
		return false
	}
	e1, ok1 := err1.(*Error)
	e2, ok2 := err2.(*Error)
	if ok1 && ok2 {
		return e1.Equal(e2)
	}
	if ok1 != ok2 {
		return false
	}
	return reflect.DeepEqual(err1, err2)
}

// IsKind reports whether err is an *Error of the given Kind, regardless of the module. Returns false if err is nil.
func IsKind(expected Kind, err error) bool {
	k, ok := KindOf(err)
	return ok && k == expected
}

// KindOf returns the kind of err and true if err is a non-empty *Error, or 0 and false otherwise.
func KindOf(err error) (Kind, bool) {
	e, ok := err.(*Error)
	if !ok || e == nil || e.r.isZero() {
		return 0, false
	}
	return e.Kind(), true
}

// FromContext creates an error for the given module from the context's state. It returns
//   - false if ctx.Err() returns nil
//   - an error of kind TimedOut if the ctx timed out
//   - an error of kind Interrupted if the ctx was cancelled
//   - an error of kind Interrupted with ctx.Err() as message otherwise.
func FromContext(ctx context.Context, m Module) (Error, bool) {
	if ctx == nil {
		return Error{}, false
	}
	err := ctx.Err()
	switch err {
	case nil:
		return Error{}, false
	case context.DeadlineExceeded:
		return NewSimple(m, K.TimedOut), true
	case context.Canceled:
		return NewSimple(m, K.Interrupted), true
	}
	return NewCustomMsg(m, K.Interrupted, err.Error()), true
}

// Log calls the given function and logs the error if any. Prints errors to stdout if logFn is nil.
//
// Useful in defer statements where the deferred function returns an error, i.e.
//
//	defer writer.Close()
//
// can be written as
//
//	defer kerr.Log(writer.Close, logFn)
func Log(f func() error, logFn func(msg string, fields ...interface{})) {
	if f == nil {
		return
	}

	err := f()
	if err == nil {
		return
	}

	msg := "kerr.Log function call returned error"
	fnName := "unknown"
	if ffp := runtime.FuncForPC(reflect.ValueOf(f).Pointer()); ffp != nil {
		fnName = ffp.Name()
	}

	if logFn == nil {
		fmt.Printf("%s: function=%s error=%s\n", msg, fnName, err)
		return
	}
	fields := []interface{}{"function", fnName, "error", err}
	if k, ok := KindOf(err); ok {
		fields = append(fields, "kind", k)
	}
	logFn(msg, fields...)
}
