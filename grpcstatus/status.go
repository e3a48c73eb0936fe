// Package grpcstatus translates fallible errors to gRPC statuses and back.
//
// The category travels as an errdetails.ErrorInfo reason, and the message as
// ErrorInfo metadata only when one was supplied, so a round trip preserves
// the difference between no message and an empty one.
package grpcstatus

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	fallible "github.com/xgx-io/xgx-fallible"
)

// Domain is the ErrorInfo domain used for statuses produced by ToStatus.
const Domain = "fallible"

const messageKey = "message"

// Code returns the gRPC code used for category c. Categories without a
// mapping report codes.Unknown.
func Code(c fallible.Category) codes.Code {
	switch c {
	case fallible.FFI, fallible.FailedFunction, fallible.FailedMap, fallible.RelationDebug:
		return codes.Internal
	case fallible.TypeParse, fallible.FailedCast,
		fallible.MakeDomain, fallible.MakeTransformation, fallible.MakeMeasurement:
		return codes.InvalidArgument
	case fallible.DomainMismatch, fallible.MetricMismatch, fallible.MeasureMismatch:
		return codes.FailedPrecondition
	case fallible.InvalidDistance:
		return codes.OutOfRange
	case fallible.NotImplemented:
		return codes.Unimplemented
	default:
		return codes.Unknown
	}
}

// ToStatus converts err to a status. A nil err is codes.OK. Errors that are
// not a fallible.Error anywhere in their chain are carried as FFI.
func ToStatus(err error) *status.Status {
	e, ok := fallible.From(err, fallible.FFI)
	if !ok {
		return status.New(codes.OK, "")
	}

	msg, hasMsg := e.Message()
	text := string(e.Category())
	info := &errdetails.ErrorInfo{Reason: string(e.Category()), Domain: Domain}
	if hasMsg {
		text = msg
		info.Metadata = map[string]string{messageKey: msg}
	}

	st := status.New(Code(e.Category()), text)
	withInfo, detailErr := st.WithDetails(info)
	if detailErr != nil {
		return st
	}
	return withInfo
}

// ToError is ToStatus(err).Err(), nil for a nil err.
func ToError(err error) error {
	return ToStatus(err).Err()
}

// FromStatus converts st back into an Error. It reports false for a nil or
// OK status. Statuses without a fallible ErrorInfo become FFI errors whose
// message is the status message.
func FromStatus(st *status.Status) (fallible.Error, bool) {
	if st == nil || st.Code() == codes.OK {
		return fallible.Error{}, false
	}
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != Domain {
			continue
		}
		c := fallible.Category(info.GetReason())
		if msg, ok := info.GetMetadata()[messageKey]; ok {
			return fallible.NewMessage(c, msg), true
		}
		return fallible.New(c), true
	}
	return fallible.NewMessage(fallible.FFI, st.Message()), true
}

// FromError extracts a status from err with status.FromError and converts it.
// Errors that carry no status are treated like ToStatus treats them.
func FromError(err error) (fallible.Error, bool) {
	if err == nil {
		return fallible.Error{}, false
	}
	st, ok := status.FromError(err)
	if !ok {
		return fallible.From(err, fallible.FFI)
	}
	return FromStatus(st)
}
