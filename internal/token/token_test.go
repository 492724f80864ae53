package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndValidate(t *testing.T) {
	issuer, err := NewIssuer(time.Hour)
	require.NoError(t, err)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	subject, err := issuer.Validate(tok)
	assert.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestIssuer_Validate_Expired(t *testing.T) {
	issuer, err := NewIssuer(-time.Minute)
	require.NoError(t, err)

	tok, err := issuer.Issue("alice")
	require.NoError(t, err)

	_, err = issuer.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Validate_Garbage(t *testing.T) {
	issuer, err := NewIssuer(time.Hour)
	require.NoError(t, err)

	_, err = issuer.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_Validate_ForeignKey(t *testing.T) {
	first, err := NewIssuer(time.Hour)
	require.NoError(t, err)
	second, err := NewIssuer(time.Hour)
	require.NoError(t, err)

	tok, err := first.Issue("alice")
	require.NoError(t, err)

	// A token signed by another process must be rejected.
	_, err = second.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
