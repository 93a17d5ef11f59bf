// Package cryptox implements the credential hashing primitives: random salt
// generation, salted argon2id password hashing, and constant-time verification.
//
// Hashes are stored in PHC string form,
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt>$<hash>
//
// so records stay verifiable after the cost parameters are changed.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hotelres/internal/common"
	"golang.org/x/crypto/argon2"
)

var (
	// ErrorEmptySalt is returned by Hash when called without a salt.
	ErrorEmptySalt = errors.New("salt must not be empty")
	// ErrorMalformedHash is returned by HashParams for anything that is not
	// an argon2id PHC string.
	ErrorMalformedHash = errors.New("malformed password hash")
)

// Params holds the argon2id cost parameters and output sizes.
type Params struct {
	Time      uint32 // iterations
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32 // hash length, bytes
	SaltLen   int    // salt length, bytes
}

// DefaultParams returns the production parameters (OWASP argon2id profile).
func DefaultParams() Params {
	return Params{
		Time:      3,
		MemoryKiB: 64 * 1024,
		Threads:   1,
		KeyLen:    32,
		SaltLen:   16,
	}
}

// PasswordHasher is stateless apart from its parameters and is safe for
// concurrent use.
type PasswordHasher struct {
	params Params
}

// NewPasswordHasher returns a hasher using p. Zero fields fall back to
// DefaultParams.
func NewPasswordHasher(p Params) *PasswordHasher {
	d := DefaultParams()
	if p.Time == 0 {
		p.Time = d.Time
	}
	if p.MemoryKiB == 0 {
		p.MemoryKiB = d.MemoryKiB
	}
	if p.Threads == 0 {
		p.Threads = d.Threads
	}
	if p.KeyLen == 0 {
		p.KeyLen = d.KeyLen
	}
	if p.SaltLen <= 0 {
		p.SaltLen = d.SaltLen
	}
	return &PasswordHasher{params: p}
}

// GenerateSalt returns a fresh hex-encoded salt read from crypto/rand.
func (h *PasswordHasher) GenerateSalt() string {
	return hex.EncodeToString(common.GenerateRandByteArray(h.params.SaltLen))
}

// Hash derives the argon2id hash of password under salt with the hasher's
// current parameters and returns it as a PHC string. The same inputs always
// produce the same output. An empty password is accepted; rejecting it is
// the caller's job.
func (h *PasswordHasher) Hash(password, salt string) (string, error) {
	if salt == "" {
		return "", ErrorEmptySalt
	}
	p := phc{
		time:    h.params.Time,
		memory:  h.params.MemoryKiB,
		threads: h.params.Threads,
		salt:    []byte(salt),
	}
	p.key = p.derive(password, []byte(salt), h.params.KeyLen)
	return p.String(), nil
}

// Verify recomputes the hash of password under salt using the parameters
// recorded in expectedHash and compares the keys in constant time. The salt
// argument is authoritative; the copy inside the PHC string is not consulted.
func (h *PasswordHasher) Verify(password, salt, expectedHash string) bool {
	if salt == "" {
		return false
	}
	p, err := parseHash(expectedHash)
	if err != nil {
		// malformed rows cost one derivation too
		_ = argon2.IDKey([]byte(password), []byte(salt), h.params.Time, h.params.MemoryKiB, h.params.Threads, h.params.KeyLen)
		return false
	}
	candidate := p.derive(password, []byte(salt), uint32(len(p.key)))
	return subtle.ConstantTimeCompare(p.key, candidate) == 1
}

// phc is a decoded argon2id PHC string.
type phc struct {
	time    uint32
	memory  uint32
	threads uint8
	salt    []byte
	key     []byte
}

func (p phc) derive(password string, salt []byte, keyLen uint32) []byte {
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, keyLen)
}

func (p phc) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(p.salt),
		base64.RawStdEncoding.EncodeToString(p.key),
	)
}

// HashParams reports the cost parameters recorded in an encoded hash.
func HashParams(encoded string) (Params, error) {
	p, err := parseHash(encoded)
	if err != nil {
		return Params{}, err
	}
	return Params{
		Time:      p.time,
		MemoryKiB: p.memory,
		Threads:   p.threads,
		KeyLen:    uint32(len(p.key)),
		SaltLen:   len(p.salt),
	}, nil
}

// parseHash decodes an argon2id PHC string.
func parseHash(encoded string) (phc, error) {
	var p phc

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return p, fmt.Errorf("%w: want 6 $-separated fields", ErrorMalformedHash)
	}
	if parts[1] != "argon2id" {
		return p, fmt.Errorf("%w: unsupported algorithm %q", ErrorMalformedHash, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, fmt.Errorf("%w: version %q", ErrorMalformedHash, parts[2])
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, fmt.Errorf("%w: parameters: %v", ErrorMalformedHash, err)
	}
	if p.memory == 0 || p.time == 0 || p.threads == 0 {
		return p, fmt.Errorf("%w: zero parameter", ErrorMalformedHash)
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return p, fmt.Errorf("%w: salt: %v", ErrorMalformedHash, err)
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return p, fmt.Errorf("%w: key: %v", ErrorMalformedHash, err)
	}
	if len(p.key) == 0 {
		return p, fmt.Errorf("%w: empty key", ErrorMalformedHash)
	}

	return p, nil
}
