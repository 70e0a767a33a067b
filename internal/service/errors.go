package service

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/mmynk/scribe/internal/auth"
)

// authError converts an authenticator error into a Connect error carrying
// the provider code in its metadata. Errors without a code become internal.
func authError(err error) *connect.Error {
	var ae *auth.Error
	if !errors.As(err, &ae) {
		ae = auth.NewError(auth.CodeInternal, "internal error")
	}

	cerr := connect.NewError(connectCode(ae.Code), ae)
	cerr.Meta().Set(auth.MetadataKey, string(ae.Code))
	return cerr
}

func connectCode(code auth.Code) connect.Code {
	switch code {
	case auth.CodeInvalidCredential, auth.CodeWrongPassword, auth.CodeUnauthenticated:
		return connect.CodeUnauthenticated
	case auth.CodeUserNotFound:
		return connect.CodeNotFound
	case auth.CodeUserDisabled:
		return connect.CodePermissionDenied
	case auth.CodeTooManyRequests:
		return connect.CodeResourceExhausted
	case auth.CodeEmailInUse:
		return connect.CodeAlreadyExists
	case auth.CodeWeakPassword, auth.CodeInvalidEmail, auth.CodeMissingFields, auth.CodeInvalidToken:
		return connect.CodeInvalidArgument
	default:
		return connect.CodeInternal
	}
}
