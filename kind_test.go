package kerr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/kerr-go"
)

func TestEncodeDecodeKind(t *testing.T) {
	for code := 0; code < 256; code++ {
		for _, custom := range []bool{false, true} {
			packed := kerr.EncodeKind(uint8(code), custom)
			require.Zero(t, packed&0x000f, "low 4 bits must be zero")
			require.Zero(t, packed&0x7000, "bits 12-14 must be zero")

			gotCode, gotCustom := kerr.DecodeKind(packed)
			require.Equal(t, uint8(code), gotCode)
			require.Equal(t, custom, gotCustom)
		}
	}
}

func TestEncodeKind(t *testing.T) {
	assert.Equal(t, uint16(0x0000), kerr.EncodeKind(0, false))
	assert.Equal(t, uint16(0x0010), kerr.EncodeKind(1, false))
	assert.Equal(t, uint16(0x8050), kerr.EncodeKind(5, true))
	assert.Equal(t, uint16(0x8ff0), kerr.EncodeKind(255, true))
	assert.Equal(t, uint16(0x0ff0), kerr.EncodeKind(255, false))
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind kerr.Kind
		want string
	}{
		{kerr.K.NotAllowed, "NOT ALLOWED (0)"},
		{kerr.K.NotFound, "NOT FOUND (1)"},
		{kerr.K.NotReady, "NOT READY (2)"},
		{kerr.K.AccessDenied, "ACCESS DENIED (3)"},
		{kerr.K.InternalErr, "INTERNAL ERROR (4)"},
		{kerr.K.AlreadyExist, "ALREADY EXIST (5)"},
		{kerr.K.InvalidValue, "INVALID ARGUMENT (6)"},
		{kerr.K.NotAvailable, "NOT AVAILABLE (7)"},
		{kerr.K.InUse, "IN USE (8)"},
		{kerr.K.Unreachable, "UNREACHABLE (9)"},
		{kerr.K.NoMemory, "NO MEMORY (10)"},
		{kerr.K.Deficiency, "DEFICIENCY (11)"},
		{kerr.K.TimedOut, "TIME OUT (12)"},
		{kerr.K.Interrupted, "INTERRUPTED (13)"},
		{kerr.K.TooMany, "TOO MANY/MUCH (14)"},
		{kerr.K.Changed, "SOMETHING CHANGED (15)"},
		{kerr.K.NetErr, "NETWORK ERROR (16)"},
		{kerr.K.IOErr, "IO ERROR (17)"},
		{kerr.K.DeviceErr, "DEVICE ERROR (18)"},
		{kerr.K.OSErr, "OS ERROR (19)"},
		{kerr.K.FFIErr, "FFI ERROR (20)"},
		{kerr.K.RemoteErr, "REMOTE ERROR (21)"},
		{kerr.Builtin(22), "UNKNOWN ERROR (22)"},
		{kerr.Builtin(255), "UNKNOWN ERROR (255)"},
		{kerr.Custom(0), "MODULE ERROR (0)"},
		{kerr.Custom(1), "MODULE ERROR (1)"},
		{kerr.Custom(5), "MODULE ERROR (5)"},
		{kerr.Custom(255), "MODULE ERROR (255)"},
	}
	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			require.Equal(t, test.want, test.kind.String())
			require.Equal(t, test.want, fmt.Sprint(test.kind))
		})
	}
}

func TestKind_CustomNeverUsesBuiltinTable(t *testing.T) {
	for code := 0; code < 256; code++ {
		k := kerr.Custom(uint8(code))
		require.True(t, k.IsCustom())
		require.False(t, k.IsBuiltin())
		require.Equal(t, "MODULE ERROR", k.Description())
		require.Equal(t, fmt.Sprintf("MODULE ERROR (%d)", code), k.String())
	}
}

func TestBuiltinKinds(t *testing.T) {
	kinds := kerr.BuiltinKinds()
	require.Len(t, kinds, kerr.NumBuiltinKinds)
	for i, k := range kinds {
		require.Equal(t, uint8(i), k.Code())
		require.False(t, k.IsCustom())
		require.True(t, k.IsBuiltin())
		require.NotContains(t, k.String(), "UNKNOWN")
	}
	require.Equal(t, kerr.K.NotAllowed, kinds[0])
	require.Equal(t, kerr.K.RemoteErr, kinds[kerr.NumBuiltinKinds-1])
	require.False(t, kerr.Builtin(kerr.NumBuiltinKinds).IsBuiltin())
}

func TestKindFromPacked(t *testing.T) {
	k, ok := kerr.KindFromPacked(kerr.K.TimedOut.Packed())
	require.True(t, ok)
	require.Equal(t, kerr.K.TimedOut, k)

	k, ok = kerr.KindFromPacked(0x8050)
	require.True(t, ok)
	require.Equal(t, kerr.Custom(5), k)

	for _, packed := range []uint16{0x0001, 0x0002, 0x0008, 0x1000, 0x2000, 0x4000, 0x7fff, 0xffff} {
		_, ok = kerr.KindFromPacked(packed)
		require.False(t, ok, "%#04x", packed)
	}
}
