// Package reversedbinary reverses the binary digits of a positive integer.
//
// Leading zeros are not digits: 11 (1011b) becomes 13 (1101b), and
// 47 (101111b) becomes 61 (111101b). The input domain is
// 1 ≤ x ≤ 1_000_000_000, which fits 30 bits.
package reversedbinary
