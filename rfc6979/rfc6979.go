// Package rfc6979 generates deterministic per-signature nonces (spec.md
// §4.5) for an arbitrary prime group order, following RFC 6979 §3.2 using
// HMAC-SHA256. The teacher codebase's hash.go carries a fixed 32-byte-V/K
// RFC6979HMACSHA256 generator tuned to secp256k1's 256-bit order; this
// package keeps its HMAC-SHA256-over-minio/sha256-simd construction but
// generalizes the bit-length bookkeeping (bits2int/bits2octets, the qlen
// truncation, the retry-on-out-of-range loop) to work for both DSA's
// 256-bit Q and Curve25519's 253-bit Order, matching original_source's
// DSA_generate_nonce / ECDSA_generate_nonce.
package rfc6979

import (
	"crypto/hmac"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"github.com/cryptoballot/evote-core/modarith"
)

func hmacSum(key, data []byte) []byte {
	h := hmac.New(sha256simd.New, key)
	h.Write(data)
	return h.Sum(nil)
}

// bits2int converts a big-endian byte string to an integer, truncating it to
// the top qlen bits if it carries more.
func bits2int(bits []byte, qlen int) *big.Int {
	n := new(big.Int).SetBytes(bits)
	bitLen := len(bits) * 8
	if bitLen > qlen {
		n.Rsh(n, uint(bitLen-qlen))
	}
	return n
}

// GenerateNonce derives a deterministic nonce k in (0, order) from a private
// scalar and a message, per RFC 6979 §3.2, generalized over the group order
// the way original_source's DSA_generate_nonce / ECDSA_generate_nonce are
// (both share this exact structure, differing only in which order they
// pass in).
func GenerateNonce(privateKey *big.Int, message []byte, order *big.Int) (*big.Int, error) {
	h1 := sha256simd.Sum256(message)

	qlen := order.BitLen()
	rolen := (qlen + 7) / 8

	// int2octets(x): x as a big-endian string left-padded to rolen bytes.
	xBytes, err := modarith.IntToBytes(privateKey)
	if err != nil {
		return nil, err
	}
	if len(xBytes) < rolen {
		xBytes = append(make([]byte, rolen-len(xBytes)), xBytes...)
	}
	// bits2octets(h1): bits2int(h1) reduced modulo order, then int2octets.
	z := bits2int(h1[:], qlen)
	z.Mod(z, order)
	h1Bytes, err := modarith.IntToBytes(z)
	if err != nil {
		return nil, err
	}
	if len(h1Bytes) < rolen {
		h1Bytes = append(make([]byte, rolen-len(h1Bytes)), h1Bytes...)
	}

	v := bytesOf(0x01)
	k := bytesOf(0x00)

	k = hmacSum(k, concat(v, []byte{0x00}, xBytes, h1Bytes))
	v = hmacSum(k, v)
	k = hmacSum(k, concat(v, []byte{0x01}, xBytes, h1Bytes))
	v = hmacSum(k, v)

	for {
		var t []byte
		for len(t)*8 < qlen {
			v = hmacSum(k, v)
			t = append(t, v...)
		}

		nonce := bits2int(t, qlen)
		if nonce.Sign() > 0 && nonce.Cmp(order) < 0 {
			return nonce, nil
		}

		k = hmacSum(k, concat(v, []byte{0x00}))
		v = hmacSum(k, v)
	}
}

func bytesOf(b byte) []byte {
	out := make([]byte, 32)
	for i := range out {
		out[i] = b
	}
	return out
}

func concat(parts ...[]byte) []byte {
	var total int
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
