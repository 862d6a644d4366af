// Package hash implements the "MD5F" content digest used to bind a
// blueprint's envelope to its payload.
//
// MD5F is a permuted variant of the classic MD5 compression function: the
// message schedule (RFC 1321 §3.4 word selection, across all 64 steps
// including round 1) and the per-step additive constant table are both
// run in reverse order relative to standard MD5. The block padding, initialization vector, per-round
// auxiliary functions (F/G/H/I), and left-rotation amounts are unchanged —
// only the schedule and constant ordering are permuted, which is enough to
// make the digest diverge from crypto/md5 while keeping the same strength
// and block structure.
//
// This is not a cryptographic hash in any meaningful sense and must
// never be used for anything security-sensitive; treat it purely as a
// content fingerprint.
package hash

import "encoding/binary"

// standardK is RFC 1321's additive constant table, K[i] = floor(abs(sin(i+1)) * 2^32).
var standardK = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the per-round left-rotation amount, grouped the same way as
// standard MD5 (4 groups of 4, repeated across each group of 16 rounds).
var shifts = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

// permutedK and schedule are computed once: permutedK[i] = standardK[63-i],
// and schedule[i] is the message-word index used at round i, computed from
// the standard MD5 word-selection function g(63-i) instead of g(i).
var (
	permutedK [64]uint32
	schedule  [64]int
)

func init() {
	for i := 0; i < 64; i++ {
		permutedK[i] = standardK[63-i]
		schedule[i] = standardG(63 - i)
	}
}

// standardG is RFC 1321's word-selection function g(i) for round i.
func standardG(i int) int {
	switch {
	case i < 16:
		return i
	case i < 32:
		return (5*i + 1) % 16
	case i < 48:
		return (3*i + 5) % 16
	default:
		return (7 * i) % 16
	}
}

func leftRotate(x uint32, c uint32) uint32 {
	return (x << c) | (x >> (32 - c))
}

// Sum computes the 128-bit MD5F digest of data.
func Sum(data []byte) [16]byte {
	a0, b0, c0, d0 := uint32(0x67452301), uint32(0xefcdab89), uint32(0x98badcfe), uint32(0x10325476)

	for _, block := range blocks(data) {
		var m [16]uint32
		for i := range m {
			m[i] = binary.LittleEndian.Uint32(block[i*4 : i*4+4])
		}

		a, b, c, d := a0, b0, c0, d0

		for i := 0; i < 64; i++ {
			var f uint32

			switch {
			case i < 16:
				f = (b & c) | (^b & d)
			case i < 32:
				f = (d & b) | (^d & c)
			case i < 48:
				f = b ^ c ^ d
			default:
				f = c ^ (b | ^d)
			}

			f = f + a + permutedK[i] + m[schedule[i]]
			a, d, c = d, c, b
			b = b + leftRotate(f, shifts[i])
		}

		a0 += a
		b0 += b
		c0 += c
		d0 += d
	}

	var out [16]byte
	binary.LittleEndian.PutUint32(out[0:4], a0)
	binary.LittleEndian.PutUint32(out[4:8], b0)
	binary.LittleEndian.PutUint32(out[8:12], c0)
	binary.LittleEndian.PutUint32(out[12:16], d0)

	return out
}

// blocks pads data per RFC 1321 §3.1–3.2 and splits it into 64-byte blocks.
func blocks(data []byte) [][]byte {
	bitLen := uint64(len(data)) * 8

	padded := make([]byte, len(data), len(data)+72)
	copy(padded, data)
	padded = append(padded, 0x80)

	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}

	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], bitLen)
	padded = append(padded, lenBytes[:]...)

	out := make([][]byte, 0, len(padded)/64)
	for i := 0; i < len(padded); i += 64 {
		out = append(out, padded[i:i+64])
	}

	return out
}
