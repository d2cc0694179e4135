package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) > 0 {
		if withDetails, detailErr := st.WithDetails(metaToStruct(customErr.Meta)); detailErr == nil {
			st = withDetails
		}
	}

	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    codeFromGRPC(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			customErr.Meta = meta.AsMap()
			break
		}
	}

	return customErr
}

// metaToStruct converts error metadata into a protobuf Struct. Values that
// have no JSON-like representation are sent as their string form.
func metaToStruct(meta map[string]interface{}) *structpb.Struct {
	fields := make(map[string]*structpb.Value, len(meta))
	for k, v := range meta {
		value, err := structpb.NewValue(v)
		if err != nil {
			value = structpb.NewStringValue(fmt.Sprint(v))
		}
		fields[k] = value
	}
	return &structpb.Struct{Fields: fields}
}
