package dspf

import (
	"encoding/binary"
	"fmt"

	"github.com/ariane-crypt/dpf/dpf"
)

// Encode serializes a batch key to a fixed-layout byte slice: a 4-byte
// domain width, a 4-byte point count, and then each inner key back-to-back
// in package dpf's own fixed layout. Every inner key shares k's domain
// width, so each one decodes to exactly dpf's keyLen(n) bytes.
func (k Key) Encode() []byte {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:4], uint32(k.n))
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(k.dpfKeys)))

	buf := header
	for _, inner := range k.dpfKeys {
		buf = append(buf, inner.Encode()...)
	}
	return buf
}

// DecodeKey parses a batch key previously produced by Key.Encode.
func DecodeKey(buf []byte) (Key, error) {
	if len(buf) < 8 {
		return Key{}, fmt.Errorf("%w: batch key buffer too short", dpf.ErrInvalidParameter)
	}
	n := int(binary.LittleEndian.Uint32(buf[0:4]))
	count := int(binary.LittleEndian.Uint32(buf[4:8]))

	innerLen, err := dpf.KeyLen(n)
	if err != nil {
		return Key{}, err
	}
	want := 8 + count*innerLen
	if len(buf) != want {
		return Key{}, fmt.Errorf("%w: batch key buffer has length %d, want %d", dpf.ErrInvalidParameter, len(buf), want)
	}

	keys := make([]dpf.Key, count)
	for i := 0; i < count; i++ {
		off := 8 + i*innerLen
		inner, decodeErr := dpf.DecodeKey(n, buf[off:off+innerLen])
		if decodeErr != nil {
			return Key{}, decodeErr
		}
		keys[i] = inner
	}
	return Key{n: n, dpfKeys: keys}, nil
}
