package auth_test

import (
	"strings"
	"testing"

	auth "app/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
)

func TestPBKDF2_HashFormat(t *testing.T) {
	hashed, err := auth.NewPBKDF2PasswordHasher().Hash("some password")
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(hashed, "pbkdf2:sha256:"))
	assert.Len(t, strings.Split(hashed, "$"), 3)
	assert.NotContains(t, hashed, "some password")
}

func TestPBKDF2_RoundTrip(t *testing.T) {
	hasher := auth.NewPBKDF2PasswordHasher()
	verifier := auth.NewPBKDF2PasswordVerifier()

	hashed, err := hasher.Hash("some password")
	assert.NoError(t, err)

	assert.True(t, verifier.Verify("some password", hashed))
	assert.False(t, verifier.Verify("other password", hashed))
}

func TestPBKDF2_SaltIsRandom(t *testing.T) {
	hasher := auth.NewPBKDF2PasswordHasher()

	h1, err := hasher.Hash("some password")
	assert.NoError(t, err)
	h2, err := hasher.Hash("some password")
	assert.NoError(t, err)

	//ソルトが違うので同じ平文でもハッシュは違う
	assert.NotEqual(t, h1, h2)
}

func TestPBKDF2_VerifyRejectsGarbage(t *testing.T) {
	verifier := auth.NewPBKDF2PasswordVerifier()

	for _, hashed := range []string{
		"",
		"plaintext",
		"bcrypt$abc$def",
		"pbkdf2:sha256:abc$00$00",
		"pbkdf2:sha256:0$00$00",
		"pbkdf2:md5:1000$00$00",
		"pbkdf2:sha256:1000$zz$00",
		"pbkdf2:sha256:1000$00$zz",
	} {
		assert.False(t, verifier.Verify("some password", hashed), "hashed=%q", hashed)
	}
}
