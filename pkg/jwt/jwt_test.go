package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/iamungmonita/plants-box-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "plants-box-test"
	testExpMin = 60
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Mona", []string{"DISCOUNT"}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "Mona", claims.FirstName)
	assert.Equal(t, []string{"DISCOUNT"}, claims.Codes)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "Mona", nil, testIssuer, testExpMin)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	// Expiration of -1 minute produces an already expired token.
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Mona", nil, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "expired token must be rejected")
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "Mona", nil, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("another-secret-entirely", tok)
	assert.Error(t, err, "wrong secret must invalidate the token")
}

func TestParse_Malformed(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}
