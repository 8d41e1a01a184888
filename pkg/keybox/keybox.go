// Package keybox seals upstream API keys before they are written to storage.
package keybox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	keyLen        = 32
	nonceLen      = 24
	prefix        = "sb1"
)

var (
	ErrMalformed = errors.New("keybox: malformed sealed value")
	ErrOpen      = errors.New("keybox: cannot open sealed value")
)

type Keybox struct {
	key [keyLen]byte
}

// New derives the sealing key from secret. The salt scopes keys per deployment.
func New(secret, salt string) (*Keybox, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("keybox: empty secret")
	}

	derived := argon2.IDKey([]byte(secret), []byte(salt), argon2Time, argon2Memory, argon2Threads, keyLen)

	kb := &Keybox{}
	copy(kb.key[:], derived)
	return kb, nil
}

// Seal returns "sb1$<base64(nonce|box)>".
func (k *Keybox) Seal(plain string) (string, error) {
	var nonce [nonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("keybox: nonce: %w", err)
	}

	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &k.key)
	return prefix + "$" + base64.RawStdEncoding.EncodeToString(out), nil
}

func (k *Keybox) Open(sealed string) (string, error) {
	parts := strings.SplitN(sealed, "$", 2)
	if len(parts) != 2 || parts[0] != prefix {
		return "", ErrMalformed
	}

	raw, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(raw) < nonceLen+secretbox.Overhead {
		return "", ErrMalformed
	}

	var nonce [nonceLen]byte
	copy(nonce[:], raw[:nonceLen])

	plain, ok := secretbox.Open(nil, raw[nonceLen:], &nonce, &k.key)
	if !ok {
		return "", ErrOpen
	}

	return string(plain), nil
}
