package kerr

import "strconv"

// Kind is the classification of an error, packed into 16 bits: bit 15 marks a module-custom kind, bits 4-11 hold the
// 8-bit code and all other bits are zero. Use the pre-defined kinds in kerr.K, or Custom() for module-private codes.
type Kind uint16

const (
	kindCustomBit = 0x8000
	kindCodeShift = 4
	kindCodeMask  = 0x0ff0
	// kindValidMask covers every bit a packed kind may have set.
	kindValidMask = kindCustomBit | kindCodeMask
)

// NumBuiltinKinds is the size of the built-in taxonomy. Built-in codes at or above this value render as unknown.
const NumBuiltinKinds = 22

// K defines the built-in kinds of errors.
var K = struct {
	NotAllowed   Kind // The operation is not allowed.
	NotFound     Kind // Item cannot be found.
	NotReady     Kind // Item or service is not ready.
	AccessDenied Kind // Permission denied.
	InternalErr  Kind // Generic internal error.
	AlreadyExist Kind // Item already exists.
	InvalidValue Kind // Invalid argument or value.
	NotAvailable Kind // Item or service is not available.
	InUse        Kind // Item is already in use.
	Unreachable  Kind // Target cannot be reached.
	NoMemory     Kind // Out of memory or capacity.
	Deficiency   Kind // Insufficient resources.
	TimedOut     Kind // The operation timed out.
	Interrupted  Kind // The operation was interrupted.
	TooMany      Kind // Too many or too much of something.
	Changed      Kind // Something changed underneath the operation.
	NetErr       Kind // Network error.
	IOErr        Kind // I/O error.
	DeviceErr    Kind // Device error.
	OSErr        Kind // Operating system error.
	FFIErr       Kind // Foreign function interface error.
	RemoteErr    Kind // Error reported by a remote node.
}{
	NotAllowed:   Builtin(0),
	NotFound:     Builtin(1),
	NotReady:     Builtin(2),
	AccessDenied: Builtin(3),
	InternalErr:  Builtin(4),
	AlreadyExist: Builtin(5),
	InvalidValue: Builtin(6),
	NotAvailable: Builtin(7),
	InUse:        Builtin(8),
	Unreachable:  Builtin(9),
	NoMemory:     Builtin(10),
	Deficiency:   Builtin(11),
	TimedOut:     Builtin(12),
	Interrupted:  Builtin(13),
	TooMany:      Builtin(14),
	Changed:      Builtin(15),
	NetErr:       Builtin(16),
	IOErr:        Builtin(17),
	DeviceErr:    Builtin(18),
	OSErr:        Builtin(19),
	FFIErr:       Builtin(20),
	RemoteErr:    Builtin(21),
}

// descriptions is indexed by built-in code.
var descriptions = [NumBuiltinKinds]string{
	"NOT ALLOWED",
	"NOT FOUND",
	"NOT READY",
	"ACCESS DENIED",
	"INTERNAL ERROR",
	"ALREADY EXIST",
	"INVALID ARGUMENT",
	"NOT AVAILABLE",
	"IN USE",
	"UNREACHABLE",
	"NO MEMORY",
	"DEFICIENCY",
	"TIME OUT",
	"INTERRUPTED",
	"TOO MANY/MUCH",
	"SOMETHING CHANGED",
	"NETWORK ERROR",
	"IO ERROR",
	"DEVICE ERROR",
	"OS ERROR",
	"FFI ERROR",
	"REMOTE ERROR",
}

// EncodeKind packs the given code and custom flag into the 16-bit kind encoding.
func EncodeKind(code uint8, custom bool) uint16 {
	packed := uint16(code) << kindCodeShift
	if custom {
		packed |= kindCustomBit
	}
	return packed
}

// DecodeKind is the inverse of EncodeKind.
func DecodeKind(packed uint16) (code uint8, custom bool) {
	return uint8(packed >> kindCodeShift), packed&kindCustomBit != 0
}

// Builtin returns the built-in kind with the given code. Codes outside of the built-in taxonomy are valid kinds, but
// render as "UNKNOWN ERROR (code)".
func Builtin(code uint8) Kind {
	return Kind(EncodeKind(code, false))
}

// Custom returns a module-private kind with the given code. Its meaning is defined by the module that uses it.
func Custom(code uint8) Kind {
	return Kind(EncodeKind(code, true))
}

// KindFromPacked converts a packed encoding back to a Kind. Returns false if any bit outside of the custom flag and the
// code range is set.
func KindFromPacked(packed uint16) (Kind, bool) {
	if packed&^kindValidMask != 0 {
		return 0, false
	}
	return Kind(packed), true
}

// BuiltinKinds returns all built-in kinds in code order.
func BuiltinKinds() []Kind {
	res := make([]Kind, NumBuiltinKinds)
	for i := range res {
		res[i] = Builtin(uint8(i))
	}
	return res
}

// Code returns the kind's 8-bit code.
func (k Kind) Code() uint8 {
	code, _ := DecodeKind(uint16(k))
	return code
}

// IsCustom returns true if this is a module-custom kind.
func (k Kind) IsCustom() bool {
	return uint16(k)&kindCustomBit != 0
}

// IsBuiltin returns true if this is a non-custom kind that is part of the built-in taxonomy.
func (k Kind) IsBuiltin() bool {
	return !k.IsCustom() && int(k.Code()) < NumBuiltinKinds
}

// Packed returns the 16-bit encoding of the kind.
func (k Kind) Packed() uint16 {
	return uint16(k)
}

// Description returns the fixed description of a built-in kind, "MODULE ERROR" for custom kinds and "UNKNOWN ERROR"
// for codes beyond the built-in taxonomy.
func (k Kind) Description() string {
	code, custom := DecodeKind(uint16(k))
	switch {
	case custom:
		return "MODULE ERROR"
	case int(code) >= NumBuiltinKinds:
		return "UNKNOWN ERROR"
	}
	return descriptions[code]
}

// String renders the kind as "<description> (<code>)", e.g. "NOT FOUND (1)" or "MODULE ERROR (5)".
func (k Kind) String() string {
	b := make([]byte, 0, 24)
	b = append(b, k.Description()...)
	b = append(b, " ("...)
	b = strconv.AppendUint(b, uint64(k.Code()), 10)
	b = append(b, ')')
	return string(b)
}
