package keytopics_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/keytopics"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := keytopics.Errorf(keytopics.ERETRIEVAL, "unable to get the content from the url: %s", "https://example.com")

	assert.Equal(t, keytopics.ERETRIEVAL, keytopics.ErrorCode(err))
	assert.Equal(t, "unable to get the content from the url: https://example.com", keytopics.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("analyze: %w", keytopics.Errorf(keytopics.EPARSE, "bad markup"))

	assert.Equal(t, keytopics.EPARSE, keytopics.ErrorCode(err))
	assert.Equal(t, "bad markup", keytopics.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, keytopics.EINTERNAL, keytopics.ErrorCode(err))
	assert.Equal(t, "Internal error.", keytopics.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, keytopics.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, keytopics.ErrorMessage(nil))
}
