// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/defend-your-code/form/internal/application/adapter"
)

// Argon2id defaults.
const (
	DefaultArgon2Time    = 1
	DefaultArgon2Memory  = 64 * 1024
	DefaultArgon2Threads = 4

	argon2SaltLen = 16
	argon2KeyLen  = 32
)

var (
	// ErrInvalidHash is returned when an encoded argon2id hash cannot be parsed.
	ErrInvalidHash = errors.New("invalid argon2id hash")

	// ErrMismatchedHashAndPassword is returned when a password does not match the hash.
	ErrMismatchedHashAndPassword = errors.New("hash and password do not match")
)

// Argon2Params holds the argon2id cost parameters.
type Argon2Params struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

// argon2PasswordService implements the adapter.PasswordService interface with argon2id.
// Hashes are encoded in the PHC string format so parameters travel with the hash.
type argon2PasswordService struct {
	params Argon2Params
}

// NewArgon2PasswordService creates a new argon2id password service.
// Zero parameters are replaced by the defaults.
func NewArgon2PasswordService(params Argon2Params) adapter.PasswordService {
	if params.Time == 0 {
		params.Time = DefaultArgon2Time
	}
	if params.Memory == 0 {
		params.Memory = DefaultArgon2Memory
	}
	if params.Threads == 0 {
		params.Threads = DefaultArgon2Threads
	}
	return &argon2PasswordService{params: params}
}

// HashPassword hashes a password with a new random salt.
func (s *argon2PasswordService) HashPassword(password string) (string, error) {
	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, s.params.Time, s.params.Memory, s.params.Threads, argon2KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		s.params.Memory,
		s.params.Time,
		s.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword recomputes the key with the parameters and salt stored in
// the hash and compares in constant time.
func (s *argon2PasswordService) VerifyPassword(hashedPassword, password string) error {
	params, salt, key, err := decodeArgon2Hash(hashedPassword)
	if err != nil {
		return err
	}

	computed := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, uint32(len(key)))
	if subtle.ConstantTimeCompare(computed, key) != 1 {
		return ErrMismatchedHashAndPassword
	}
	return nil
}

func decodeArgon2Hash(encoded string) (Argon2Params, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return Argon2Params{}, nil, nil, ErrInvalidHash
	}

	return params, salt, key, nil
}
