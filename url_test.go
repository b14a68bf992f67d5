package keytopics_test

import (
	"testing"

	"github.com/fwojciec/keytopics"
	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com",
		"http://example.com/recipes?page=2",
		"http://127.0.0.1:8080/",
	}
	for _, raw := range valid {
		assert.NoError(t, keytopics.ValidateURL(raw), raw)
		assert.True(t, keytopics.IsValidURL(raw), raw)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com/file",
		"https://",
		"https://exa mple.com",
		"javascript:alert(1)",
		"http://.example.com",
	}
	for _, raw := range invalid {
		err := keytopics.ValidateURL(raw)
		assert.Equal(t, keytopics.EINVALID, keytopics.ErrorCode(err), raw)
		assert.False(t, keytopics.IsValidURL(raw), raw)
	}
}
