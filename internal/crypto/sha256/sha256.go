// Package sha256 computes SHA-256 over a bit sequence per FIPS 180-4.
// Unlike the stdlib digest it consumes individual bits, so messages need
// not be whole bytes. The arithmetic core is touched only through
// modmath.Modsub, used to size the padding.
package sha256

import "github.com/barnden/crypto/pkg/modmath"

var k = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var initial = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

func rotr(x uint32, n uint) uint32 {
	return x>>n | x<<(32-n)
}

// Hash returns the SHA-256 digest of the message bits as eight 32-bit words.
func Hash(message []bool) [8]uint32 {
	l := len(message)

	// Pad to a multiple of 512 bits: a single 1 bit, K zeros, and the
	// 64-bit big-endian message length.
	kzeros := int(modmath.Modsub(512, uint64(l+65), 512))
	padded := make([]bool, l+1+kzeros+64)
	copy(padded, message)
	padded[l] = true
	for i := 0; i < 64; i++ {
		padded[l+1+kzeros+i] = (uint64(l)>>(63-uint(i)))&1 == 1
	}

	h := initial
	for block := 0; block < len(padded); block += 512 {
		var w [64]uint32
		for j := 0; j < 16; j++ {
			for b := 0; b < 32; b++ {
				if padded[block+j*32+b] {
					w[j] |= 1 << (31 - uint(b))
				}
			}
		}
		for j := 16; j < 64; j++ {
			s0 := rotr(w[j-15], 7) ^ rotr(w[j-15], 18) ^ w[j-15]>>3
			s1 := rotr(w[j-2], 17) ^ rotr(w[j-2], 19) ^ w[j-2]>>10
			w[j] = w[j-16] + s0 + w[j-7] + s1
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for j := 0; j < 64; j++ {
			s1 := rotr(e, 6) ^ rotr(e, 11) ^ rotr(e, 25)
			ch := (e & f) ^ (^e & g)
			temp1 := hh + s1 + ch + k[j] + w[j]
			s0 := rotr(a, 2) ^ rotr(a, 13) ^ rotr(a, 22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			temp2 := s0 + maj

			hh = g
			g = f
			f = e
			e = d + temp1
			d = c
			c = b
			b = a
			a = temp1 + temp2
		}

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}
	return h
}

// HashBytes hashes a whole-byte message, bits taken most significant first
// within each byte.
func HashBytes(message []byte) [8]uint32 {
	bits := make([]bool, 0, len(message)*8)
	for _, by := range message {
		for i := 7; i >= 0; i-- {
			bits = append(bits, by>>uint(i)&1 == 1)
		}
	}
	return Hash(bits)
}
