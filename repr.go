package kerr

import "fmt"

const (
	tagMask      = 0b11
	tagImmediate = 0b11
	tagHeap      = 0b00
)

// repr is the compact representation of an error. It is either
//
//   - immediate: bits holds the type id with the low two bits set to tagImmediate and rec is nil. No allocation.
//   - heap: bits is zero (tagHeap) and rec points to a record exclusively owned by this repr.
//
// The zero repr is the "absent" value; a constructed repr is never zero.
type repr struct {
	bits uint32
	rec  *record
}

// record is the heap part of a repr carrying a message.
type record struct {
	typeID uint32
	msg    string
	// owned records that msg was built at runtime rather than passed as static text.
	owned bool
}

// makeTypeID combines module and kind into a type id. Panics if the kind has bits set outside of its encoding, since
// those would either collide with the tag bits or be lost when decoding.
func makeTypeID(m Module, k Kind) uint32 {
	if _, ok := KindFromPacked(uint16(k)); !ok {
		panic(fmt.Sprintf("kerr: invalid packed kind %#04x", uint16(k)))
	}
	return uint32(m)<<16 | uint32(k)
}

func newSimple(m Module, k Kind) repr {
	return repr{bits: makeTypeID(m, k) | tagImmediate}
}

func newSimpleMsg(m Module, k Kind, msg string) repr {
	return repr{rec: &record{typeID: makeTypeID(m, k), msg: msg}}
}

func newCustomMsg(m Module, k Kind, msg string) repr {
	return repr{rec: &record{typeID: makeTypeID(m, k), msg: msg, owned: true}}
}

func (r *repr) isZero() bool {
	return r.bits == 0 && r.rec == nil
}

func (r *repr) isImmediate() bool {
	return r.bits&tagMask == tagImmediate
}

func (r *repr) isHeap() bool {
	return r.bits&tagMask == tagHeap && r.rec != nil
}

func (r *repr) typeID() uint32 {
	if r.isHeap() {
		return r.rec.typeID
	}
	return r.bits &^ tagMask
}

func (r *repr) module() Module {
	return Module(r.typeID() >> 16)
}

func (r *repr) kind() Kind {
	return Kind(uint16(r.typeID()) & kindValidMask)
}

// message returns the message and true for the heap variant, or "" and false otherwise.
func (r *repr) message() (string, bool) {
	if !r.isHeap() {
		return "", false
	}
	return r.rec.msg, true
}

func (r *repr) equal(o *repr) bool {
	return r.typeID() == o.typeID()
}

// render formats the error as "<kind>. <message or Null>. FROM '<module>'". Panics if the module is not registered.
func (r *repr) render() string {
	if r.isZero() {
		return ""
	}
	return r.format(modules().resolve(r.module()))
}

// describe is like render, but never panics: unregistered modules are printed by identity.
func (r *repr) describe() string {
	if r.isZero() {
		return ""
	}
	return r.format(r.module().String())
}

func (r *repr) format(name string) string {
	msg, ok := r.message()
	if !ok {
		msg = "Null"
	}
	b := make([]byte, 0, 32+len(msg)+len(name))
	b = append(b, r.kind().String()...)
	b = append(b, ". "...)
	b = append(b, msg...)
	b = append(b, ". FROM '"...)
	b = append(b, name...)
	b = append(b, '\'')
	return string(b)
}

// release drops the representation. The heap record becomes unreachable exactly once: the repr is zeroed, so a second
// release is a no-op.
func (r *repr) release() {
	r.bits = 0
	r.rec = nil
}
