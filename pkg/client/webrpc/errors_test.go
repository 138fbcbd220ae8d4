package webrpc_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladislavprovich/marketplace-sdk/pkg/client/webrpc"
)

func intPtr(v int) *int { return &v }

func TestNewError_CodeTable(t *testing.T) {
	tests := []struct {
		code    int
		kind    webrpc.Kind
		message string
	}{
		{0, webrpc.KindWebrpcEndpoint, "endpoint error"},
		{-1, webrpc.KindWebrpcRequestFailed, "request failed"},
		{-2, webrpc.KindWebrpcBadRoute, "bad route"},
		{-3, webrpc.KindWebrpcBadMethod, "bad method"},
		{-4, webrpc.KindWebrpcBadRequest, "bad request"},
		{-5, webrpc.KindWebrpcBadResponse, "bad response"},
		{-6, webrpc.KindWebrpcServerPanic, "server panic"},
		{-7, webrpc.KindWebrpcInternalError, "internal error"},
		{-8, webrpc.KindWebrpcClientDisconnected, "client disconnected"},
		{-9, webrpc.KindWebrpcStreamLost, "stream lost"},
		{-10, webrpc.KindWebrpcStreamFinished, "stream finished"},
		{1000, webrpc.KindUnauthorized, "Unauthorized access"},
		{1001, webrpc.KindPermissionDenied, "Permission denied"},
		{1002, webrpc.KindSessionExpired, "Session expired"},
		{1003, webrpc.KindMethodNotFound, "Method not found"},
		{1004, webrpc.KindRequestConflict, "Conflict with target resource"},
		{1005, webrpc.KindServiceDisabled, "Service disabled"},
		{2000, webrpc.KindTimeout, "Request timed out"},
		{2001, webrpc.KindInvalidArgument, "Invalid argument"},
		{3000, webrpc.KindNotFound, "Resource not found"},
		{3001, webrpc.KindUserNotFound, "User not found"},
		{3002, webrpc.KindProjectNotFound, "Project not found"},
		{3003, webrpc.KindInvalidTier, "Invalid subscription tier"},
		{3004, webrpc.KindProjectLimitReached, "Project limit reached"},
		{3005, webrpc.KindSubscriptionLimit, "Subscription limit reached"},
		{3006, webrpc.KindFeatureNotIncluded, "Feature not included"},
		{3007, webrpc.KindInvalidNetwork, "Invalid network"},
		{4000, webrpc.KindInvitationExpired, "Invitation code is expired"},
		{4001, webrpc.KindAlreadyCollaborator, "Already a collaborator"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := webrpc.NewError(webrpc.ErrorPayload{Code: intPtr(tt.code)}, 400)

			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, 400, err.Status)
			assert.True(t, errors.Is(err, webrpc.Lookup(tt.code)))
		})
	}
}

func TestNewError_UnknownCodeFallsBack(t *testing.T) {
	err := webrpc.NewError(webrpc.ErrorPayload{Code: intPtr(7777)}, 500)

	assert.Equal(t, webrpc.KindWebrpcError, err.Kind)
	assert.Equal(t, 7777, err.Code)
	assert.Equal(t, "webrpc error", err.Message)
	assert.ErrorIs(t, err, webrpc.ErrWebrpc)
}

func TestNewError_MissingCodeIsEndpoint(t *testing.T) {
	err := webrpc.NewError(webrpc.ErrorPayload{}, 500)
	assert.Equal(t, webrpc.KindWebrpcEndpoint, err.Kind)
}

func TestNewError_PayloadOverrides(t *testing.T) {
	tests := []struct {
		name    string
		payload webrpc.ErrorPayload
		message string
		status  int
	}{
		{
			name:    "message",
			payload: webrpc.ErrorPayload{Code: intPtr(1000), Message: "key revoked", Msg: "ignored"},
			message: "key revoked",
			status:  401,
		},
		{
			name:    "deprecated_msg",
			payload: webrpc.ErrorPayload{Code: intPtr(1000), Msg: "legacy"},
			message: "legacy",
			status:  401,
		},
		{
			name:    "payload_status",
			payload: webrpc.ErrorPayload{Code: intPtr(1000), Status: 403},
			message: "Unauthorized access",
			status:  403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := webrpc.NewError(tt.payload, 401)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.status, err.Status)
			assert.ErrorIs(t, err, webrpc.ErrUnauthorized)
			assert.NotErrorIs(t, err, webrpc.ErrPermissionDenied)
		})
	}
}

func TestError_ErrorString(t *testing.T) {
	err := webrpc.NewError(webrpc.ErrorPayload{Code: intPtr(3000), Cause: "collectible 7"}, 404)
	assert.Equal(t, "NotFound 3000: Resource not found: collectible 7", err.Error())
}
