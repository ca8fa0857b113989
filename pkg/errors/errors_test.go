package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromErrorPassesThroughTypedErrors(t *testing.T) {
	err := Clone(ErrNotFound, "report not found")
	wrapped := fmt.Errorf("handler: %w", err)

	resolved := FromError(wrapped)
	require.Equal(t, ErrNotFound.Code, resolved.Code)
	require.Equal(t, "report not found", resolved.Message)
	require.Equal(t, http.StatusNotFound, resolved.Status)
}

func TestFromErrorWrapsUnknownErrors(t *testing.T) {
	resolved := FromError(fmt.Errorf("connection refused"))
	require.Equal(t, ErrInternal.Code, resolved.Code)
	require.Equal(t, http.StatusInternalServerError, resolved.Status)
}

func TestCloneDoesNotMutateOriginal(t *testing.T) {
	clone := Clone(ErrForbidden, "only the owner may delete this report")
	require.Equal(t, "only the owner may delete this report", clone.Message)
	require.Equal(t, "forbidden", ErrForbidden.Message)
}

func TestWrapUnwrapsToCause(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrap(cause, ErrInternal.Code, ErrInternal.Status, "failed")
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "boom")
}
