// Package arc4 implements the RC4 stream cipher used to obfuscate
// Counterparty payloads inside OP_RETURN outputs. The key is the raw bytes
// of the spending transaction's first previous-txid, so the ciphertext is
// deterministic per transaction and anyone holding the transaction can
// decrypt without extra key material.
//
// The cipher state is a local fixed-size array per call; nothing is shared
// between invocations. XOR keystreaming makes Apply its own inverse.
package arc4

// stateLen is the size of the RC4 permutation.
const stateLen = 256

// Apply runs data through RC4 keyed by key and returns the result. The same
// call both encrypts and decrypts. An empty key or empty input returns a
// copy of the input unchanged.
func Apply(key, data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	if len(key) == 0 || len(data) == 0 {
		return out
	}

	// Key schedule: identity permutation scrambled by the cycled key bytes.
	var s [stateLen]byte
	for i := 0; i < stateLen; i++ {
		s[i] = byte(i)
	}
	j := 0
	for i := 0; i < stateLen; i++ {
		j = (j + int(s[i]) + int(key[i%len(key)])) % stateLen
		s[i], s[j] = s[j], s[i]
	}

	// Keystream generation, XORed into the output.
	var x, y int
	for k := range out {
		x = (x + 1) % stateLen
		y = (y + int(s[x])) % stateLen
		s[x], s[y] = s[y], s[x]
		out[k] ^= s[(int(s[x])+int(s[y]))%stateLen]
	}
	return out
}
