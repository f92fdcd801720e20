package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
		wantMsg  string
	}{
		{
			name:     "not found",
			err:      NotFoundError("user octocat not found"),
			wantKind: ErrorKindNotFound,
			wantMsg:  MessageNotFound,
		},
		{
			name:     "wrapped not found",
			err:      fmt.Errorf("fetching user: %w", NotFoundError("x")),
			wantKind: ErrorKindNotFound,
			wantMsg:  MessageNotFound,
		},
		{
			name:     "upstream",
			err:      fmt.Errorf("fetching user: %w", UpstreamError{StatusCode: 500}),
			wantKind: ErrorKindUpstream,
			wantMsg:  MessageUpstream,
		},
		{
			name:     "transport",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: ErrorKindTransport,
			wantMsg:  "dial tcp: connection refused",
		},
		{
			name: "transport cause inside wrapping chain",
			err: fmt.Errorf(
				"making http request: %w",
				fmt.Errorf("doing http request: %w", TransportError{Err: errors.New("network unreachable")}),
			),
			wantKind: ErrorKindTransport,
			wantMsg:  "network unreachable",
		},
		{
			name:     "transport without message",
			err:      errors.New(""),
			wantKind: ErrorKindTransport,
			wantMsg:  MessageUnknown,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, msg := Classify(tt.err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestTypedErrorsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", UnknownViewerError("abc"))
	assert.True(t, IsUnknownViewerError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Equal(t, "unknown viewer: abc", UnknownViewerError("abc").Error())

	assert.True(t, IsTooManyRequestsError(fmt.Errorf("x: %w", TooManyRequestsError("slow down"))))
	assert.Equal(t, "got invalid http status code: 502", UpstreamError{StatusCode: 502}.Error())
}
