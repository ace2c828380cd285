// Package grpcstatus maps kerr errors to and from gRPC statuses.
package grpcstatus

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/eluv-io/kerr-go"
)

// ToGRPCCode maps a kerr.Kind to a gRPC codes.Code.
// Custom kinds and codes outside of the built-in taxonomy map to codes.Unknown.
func ToGRPCCode(k kerr.Kind) codes.Code {
	if gc, ok := kindToGRPC[k]; ok {
		return gc
	}
	return codes.Unknown
}

// ToKind maps a gRPC codes.Code to a built-in kerr.Kind.
// Returns false for codes.OK and codes without a corresponding kind.
func ToKind(c codes.Code) (kerr.Kind, bool) {
	k, ok := grpcToKind[c]
	return k, ok
}

// ToStatus converts an error to a *status.Status.
// If the error is a *kerr.Error, its kind is mapped to a gRPC code and the rendered error is used as the status
// message. Any other error maps to codes.Unknown.
func ToStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	var e *kerr.Error
	if errors.As(err, &e) && !e.Resolved() {
		return status.New(ToGRPCCode(e.Kind()), err.Error())
	}
	return status.New(codes.Unknown, err.Error())
}

// FromStatus creates an error of the given module from a *status.Status, using the status message as error message.
// Returns false if the status code is OK. Codes without a corresponding kind map to kerr.K.RemoteErr.
func FromStatus(m kerr.Module, st *status.Status) (kerr.Error, bool) {
	if st.Code() == codes.OK {
		return kerr.Error{}, false
	}
	k, ok := ToKind(st.Code())
	if !ok {
		k = kerr.K.RemoteErr
	}
	if st.Message() == "" {
		return kerr.NewSimple(m, k), true
	}
	return kerr.NewCustomMsg(m, k, st.Message()), true
}

var kindToGRPC = map[kerr.Kind]codes.Code{
	kerr.K.NotAllowed:   codes.FailedPrecondition,
	kerr.K.NotFound:     codes.NotFound,
	kerr.K.NotReady:     codes.Unavailable,
	kerr.K.AccessDenied: codes.PermissionDenied,
	kerr.K.InternalErr:  codes.Internal,
	kerr.K.AlreadyExist: codes.AlreadyExists,
	kerr.K.InvalidValue: codes.InvalidArgument,
	kerr.K.NotAvailable: codes.Unavailable,
	kerr.K.InUse:        codes.Aborted,
	kerr.K.Unreachable:  codes.Unavailable,
	kerr.K.NoMemory:     codes.ResourceExhausted,
	kerr.K.Deficiency:   codes.ResourceExhausted,
	kerr.K.TimedOut:     codes.DeadlineExceeded,
	kerr.K.Interrupted:  codes.Canceled,
	kerr.K.TooMany:      codes.ResourceExhausted,
	kerr.K.Changed:      codes.Aborted,
	kerr.K.NetErr:       codes.Unavailable,
	kerr.K.IOErr:        codes.Internal,
	kerr.K.DeviceErr:    codes.Internal,
	kerr.K.OSErr:        codes.Internal,
	kerr.K.FFIErr:       codes.Internal,
	kerr.K.RemoteErr:    codes.Unknown,
}

var grpcToKind = map[codes.Code]kerr.Kind{
	codes.Canceled:           kerr.K.Interrupted,
	codes.Unknown:            kerr.K.RemoteErr,
	codes.InvalidArgument:    kerr.K.InvalidValue,
	codes.DeadlineExceeded:   kerr.K.TimedOut,
	codes.NotFound:           kerr.K.NotFound,
	codes.AlreadyExists:      kerr.K.AlreadyExist,
	codes.PermissionDenied:   kerr.K.AccessDenied,
	codes.ResourceExhausted:  kerr.K.TooMany,
	codes.FailedPrecondition: kerr.K.NotAllowed,
	codes.Aborted:            kerr.K.Changed,
	codes.OutOfRange:         kerr.K.InvalidValue,
	codes.Unimplemented:      kerr.K.NotAvailable,
	codes.Internal:           kerr.K.InternalErr,
	codes.Unavailable:        kerr.K.NotAvailable,
	codes.DataLoss:           kerr.K.IOErr,
	codes.Unauthenticated:    kerr.K.AccessDenied,
}
