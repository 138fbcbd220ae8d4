package webrpc

import (
	"fmt"
)

type Kind string

const (
	KindWebrpcEndpoint           Kind = "WebrpcEndpoint"
	KindWebrpcRequestFailed      Kind = "WebrpcRequestFailed"
	KindWebrpcBadRoute           Kind = "WebrpcBadRoute"
	KindWebrpcBadMethod          Kind = "WebrpcBadMethod"
	KindWebrpcBadRequest         Kind = "WebrpcBadRequest"
	KindWebrpcBadResponse        Kind = "WebrpcBadResponse"
	KindWebrpcServerPanic        Kind = "WebrpcServerPanic"
	KindWebrpcInternalError      Kind = "WebrpcInternalError"
	KindWebrpcClientDisconnected Kind = "WebrpcClientDisconnected"
	KindWebrpcStreamLost         Kind = "WebrpcStreamLost"
	KindWebrpcStreamFinished     Kind = "WebrpcStreamFinished"
	KindUnauthorized             Kind = "Unauthorized"
	KindPermissionDenied         Kind = "PermissionDenied"
	KindSessionExpired           Kind = "SessionExpired"
	KindMethodNotFound           Kind = "MethodNotFound"
	KindRequestConflict          Kind = "RequestConflict"
	KindServiceDisabled          Kind = "ServiceDisabled"
	KindTimeout                  Kind = "Timeout"
	KindInvalidArgument          Kind = "InvalidArgument"
	KindNotFound                 Kind = "NotFound"
	KindUserNotFound             Kind = "UserNotFound"
	KindProjectNotFound          Kind = "ProjectNotFound"
	KindInvalidTier              Kind = "InvalidTier"
	KindProjectLimitReached      Kind = "ProjectLimitReached"
	KindSubscriptionLimit        Kind = "SubscriptionLimit"
	KindFeatureNotIncluded       Kind = "FeatureNotIncluded"
	KindInvalidNetwork           Kind = "InvalidNetwork"
	KindInvitationExpired        Kind = "InvitationExpired"
	KindAlreadyCollaborator      Kind = "AlreadyCollaborator"

	// KindWebrpcError is the fallback for codes outside the table.
	KindWebrpcError Kind = "WebrpcError"
)

// Error is every failure surfaced by a webrpc call. Kind is selected from
// Code, Err holds the underlying Go error when there is one.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Status  int
	Cause   string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %d: %s", e.Kind, e.Code, e.Message)
	if e.Cause != "" {
		msg += ": " + e.Cause
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the sentinels below can be used
// with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrWebrpcEndpoint           = &Error{Kind: KindWebrpcEndpoint, Code: 0, Message: "endpoint error"}
	ErrWebrpcRequestFailed      = &Error{Kind: KindWebrpcRequestFailed, Code: -1, Message: "request failed"}
	ErrWebrpcBadRoute           = &Error{Kind: KindWebrpcBadRoute, Code: -2, Message: "bad route"}
	ErrWebrpcBadMethod          = &Error{Kind: KindWebrpcBadMethod, Code: -3, Message: "bad method"}
	ErrWebrpcBadRequest         = &Error{Kind: KindWebrpcBadRequest, Code: -4, Message: "bad request"}
	ErrWebrpcBadResponse        = &Error{Kind: KindWebrpcBadResponse, Code: -5, Message: "bad response"}
	ErrWebrpcServerPanic        = &Error{Kind: KindWebrpcServerPanic, Code: -6, Message: "server panic"}
	ErrWebrpcInternalError      = &Error{Kind: KindWebrpcInternalError, Code: -7, Message: "internal error"}
	ErrWebrpcClientDisconnected = &Error{Kind: KindWebrpcClientDisconnected, Code: -8, Message: "client disconnected"}
	ErrWebrpcStreamLost         = &Error{Kind: KindWebrpcStreamLost, Code: -9, Message: "stream lost"}
	ErrWebrpcStreamFinished     = &Error{Kind: KindWebrpcStreamFinished, Code: -10, Message: "stream finished"}
	ErrUnauthorized             = &Error{Kind: KindUnauthorized, Code: 1000, Message: "Unauthorized access"}
	ErrPermissionDenied         = &Error{Kind: KindPermissionDenied, Code: 1001, Message: "Permission denied"}
	ErrSessionExpired           = &Error{Kind: KindSessionExpired, Code: 1002, Message: "Session expired"}
	ErrMethodNotFound           = &Error{Kind: KindMethodNotFound, Code: 1003, Message: "Method not found"}
	ErrRequestConflict          = &Error{Kind: KindRequestConflict, Code: 1004, Message: "Conflict with target resource"}
	ErrServiceDisabled          = &Error{Kind: KindServiceDisabled, Code: 1005, Message: "Service disabled"}
	ErrTimeout                  = &Error{Kind: KindTimeout, Code: 2000, Message: "Request timed out"}
	ErrInvalidArgument          = &Error{Kind: KindInvalidArgument, Code: 2001, Message: "Invalid argument"}
	ErrNotFound                 = &Error{Kind: KindNotFound, Code: 3000, Message: "Resource not found"}
	ErrUserNotFound             = &Error{Kind: KindUserNotFound, Code: 3001, Message: "User not found"}
	ErrProjectNotFound          = &Error{Kind: KindProjectNotFound, Code: 3002, Message: "Project not found"}
	ErrInvalidTier              = &Error{Kind: KindInvalidTier, Code: 3003, Message: "Invalid subscription tier"}
	ErrProjectLimitReached      = &Error{Kind: KindProjectLimitReached, Code: 3004, Message: "Project limit reached"}
	ErrSubscriptionLimit        = &Error{Kind: KindSubscriptionLimit, Code: 3005, Message: "Subscription limit reached"}
	ErrFeatureNotIncluded       = &Error{Kind: KindFeatureNotIncluded, Code: 3006, Message: "Feature not included"}
	ErrInvalidNetwork           = &Error{Kind: KindInvalidNetwork, Code: 3007, Message: "Invalid network"}
	ErrInvitationExpired        = &Error{Kind: KindInvitationExpired, Code: 4000, Message: "Invitation code is expired"}
	ErrAlreadyCollaborator      = &Error{Kind: KindAlreadyCollaborator, Code: 4001, Message: "Already a collaborator"}

	ErrWebrpc = &Error{Kind: KindWebrpcError, Message: "webrpc error"}
)

var errorsByCode = func() map[int]*Error {
	table := []*Error{
		ErrWebrpcEndpoint, ErrWebrpcRequestFailed, ErrWebrpcBadRoute, ErrWebrpcBadMethod,
		ErrWebrpcBadRequest, ErrWebrpcBadResponse, ErrWebrpcServerPanic, ErrWebrpcInternalError,
		ErrWebrpcClientDisconnected, ErrWebrpcStreamLost, ErrWebrpcStreamFinished,
		ErrUnauthorized, ErrPermissionDenied, ErrSessionExpired, ErrMethodNotFound,
		ErrRequestConflict, ErrServiceDisabled, ErrTimeout, ErrInvalidArgument,
		ErrNotFound, ErrUserNotFound, ErrProjectNotFound, ErrInvalidTier,
		ErrProjectLimitReached, ErrSubscriptionLimit, ErrFeatureNotIncluded, ErrInvalidNetwork,
		ErrInvitationExpired, ErrAlreadyCollaborator,
	}
	m := make(map[int]*Error, len(table))
	for _, e := range table {
		m[e.Code] = e
	}
	return m
}()

// ErrorPayload is the error body written by webrpc servers.
type ErrorPayload struct {
	Error   string `json:"error,omitempty"`
	Code    *int   `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Msg     string `json:"msg,omitempty"`
	Status  int    `json:"status,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// Lookup returns the table entry for code, or ErrWebrpc when the code is
// unknown.
func Lookup(code int) *Error {
	if e, ok := errorsByCode[code]; ok {
		return e
	}
	return ErrWebrpc
}

// NewError builds a typed error from a server payload. A missing code is
// read as 0. The payload's message, msg and cause override the table
// defaults, and its status wins over the HTTP status when set.
func NewError(p ErrorPayload, httpStatus int) *Error {
	code := 0
	if p.Code != nil {
		code = *p.Code
	}

	base := Lookup(code)
	e := &Error{
		Kind:    base.Kind,
		Code:    code,
		Message: base.Message,
		Status:  httpStatus,
		Cause:   p.Cause,
	}

	switch {
	case p.Message != "":
		e.Message = p.Message
	case p.Msg != "":
		e.Message = p.Msg
	}
	if p.Status != 0 {
		e.Status = p.Status
	}

	return e
}

func newKindError(base *Error, status int, cause string, err error) *Error {
	return &Error{
		Kind:    base.Kind,
		Code:    base.Code,
		Message: base.Message,
		Status:  status,
		Cause:   cause,
		Err:     err,
	}
}

// WithCause returns a copy of e carrying cause and wrapping err.
func (e *Error) WithCause(cause string, err error) *Error {
	c := *e
	c.Cause = cause
	c.Err = err
	return &c
}
