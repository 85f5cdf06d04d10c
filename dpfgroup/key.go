package dpfgroup

import (
	"bytes"
	"encoding/gob"
)

// CorrectionWord is the per-level public data embedded in both keys.
type CorrectionWord struct {
	S      []byte
	TLeft  byte
	TRight byte
}

// Key is one party's share of a group-field DPF. Unlike package dpf's fixed
// 18n+34 byte layout, this variant's field elements are not a constant
// width across lambda choices, so keys serialize through encoding/gob
// instead of a hand-packed buffer.
type Key struct {
	Party byte
	Seed  []byte
	CW    []CorrectionWord
}

// Serialize gob-encodes the key for storage or transmission.
func (k Key) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(k); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeKey decodes a key previously produced by Key.Serialize.
func DeserializeKey(data []byte) (Key, error) {
	var k Key
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&k); err != nil {
		return Key{}, err
	}
	return k, nil
}
