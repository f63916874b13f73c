package session

import (
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// seal encrypts plaintext with a fresh random nonce prepended to the box.
func seal(key [32]byte, plaintext []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &key), nil
}

// open decrypts a box produced by seal.
func open(key [32]byte, box []byte) ([]byte, error) {
	if len(box) < nonceSize {
		return nil, errors.New("sealed token too short")
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &key)
	if !ok {
		return nil, errors.New("sealed token failed to open")
	}
	return plain, nil
}
