package randsrc

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"golang.org/x/crypto/chacha20"
)

// CSPRNGSource draws uniform [0,1) values from a ChaCha20 keystream
// seeded from the operating system's entropy source. Its output is not
// reproducible; the svpcli command does not use it and draws from a
// SeededSource instead.
type CSPRNGSource struct {
	cipher *chacha20.Cipher
	zero   [8]byte
}

// NewCSPRNG seeds a fresh ChaCha20 stream from crypto/rand.
func NewCSPRNG() (*CSPRNGSource, error) {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	if _, err := io.ReadFull(rand.Reader, key[:]); err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &CSPRNGSource{cipher: c}, nil
}

// Uniform returns a uniform draw in [0,1), built from the top 53 bits of
// the next 8 keystream bytes (the mantissa width of a float64).
func (c *CSPRNGSource) Uniform() float64 {
	var buf [8]byte
	c.cipher.XORKeyStream(buf[:], c.zero[:])
	bits := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(bits) / float64(uint64(1)<<53)
}
