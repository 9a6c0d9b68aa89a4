package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)
	password := "P@ssw0rd"

	hash, err := svc.HashPassword(password)
	require.NoError(t, err)

	assert.NotEqual(t, password, hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, svc.VerifyPassword(hash, password))
	assert.Error(t, svc.VerifyPassword(hash, "p@ssw0rd"))
	assert.Error(t, svc.VerifyPassword(hash, ""))
}

func TestPasswordService_SaltsEveryHash(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	first, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)
	second, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordService_LongPasswordsDifferAfterByte72(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)
	base := "Apassword123*" + strings.Repeat("a", 100)

	hash, err := svc.HashPassword(base + "X")
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyPassword(hash, base+"X"))
	assert.Error(t, svc.VerifyPassword(hash, base+"Y"))
}

func TestPasswordService_InvalidCostFallsBack(t *testing.T) {
	svc := NewPasswordService(99)

	hash, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultBcryptCost, cost)
}

func TestPasswordService_GarbageHash(t *testing.T) {
	svc := NewPasswordService(bcrypt.MinCost)

	assert.Error(t, svc.VerifyPassword("not-a-hash", "P@ssw0rd"))
}

func TestArgon2PasswordService_HashAndVerify(t *testing.T) {
	svc := NewArgon2PasswordService(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1})

	hash, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))
	assert.NoError(t, svc.VerifyPassword(hash, "P@ssw0rd"))
	assert.ErrorIs(t, svc.VerifyPassword(hash, "wrongpassword"), ErrMismatchedHashAndPassword)
}

func TestArgon2PasswordService_SaltsEveryHash(t *testing.T) {
	svc := NewArgon2PasswordService(Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1})

	first, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)
	second, err := svc.HashPassword("P@ssw0rd")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestArgon2PasswordService_InvalidHash(t *testing.T) {
	svc := NewArgon2PasswordService(Argon2Params{})

	tests := []string{
		"",
		"$2a$10$abcdefghijklmnopqrstuv",
		"$argon2id$v=18$m=8192,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=x,t=1,p=1$c2FsdA$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$!!!$a2V5",
		"$argon2id$v=19$m=8192,t=1,p=1$c2FsdA$",
	}
	for _, encoded := range tests {
		assert.ErrorIs(t, svc.VerifyPassword(encoded, "P@ssw0rd"), ErrInvalidHash, encoded)
	}
}
