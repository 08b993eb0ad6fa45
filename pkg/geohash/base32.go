package geohash

import (
	"github.com/hankgalt/geocell/pkg/errors"
)

// Base32Alphabet is the standard geohash alphabet. It excludes
// a, i, l and o to avoid confusion with digits.
const Base32Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const bitsPerChar = 5

var base32Lookup [256]int8

func init() {
	for i := range base32Lookup {
		base32Lookup[i] = -1
	}
	for i := 0; i < len(Base32Alphabet); i++ {
		base32Lookup[Base32Alphabet[i]] = int8(i)
	}
}

// hashToBits expands a geohash string into its flat bit sequence,
// 5 bits per symbol, most significant bit first.
func hashToBits(hash string) ([]byte, error) {
	bits := make([]byte, 0, len(hash)*bitsPerChar)
	for i := 0; i < len(hash); i++ {
		v := base32Lookup[hash[i]]
		if v < 0 {
			return nil, errors.WrapError(errors.ErrInvalidCharacter, errors.ERROR_INVALID_CHARACTER, string(hash[i]), i)
		}
		for shift := bitsPerChar - 1; shift >= 0; shift-- {
			bits = append(bits, byte(v>>shift)&1)
		}
	}
	return bits, nil
}

// bitsToHash packs a flat bit sequence into geohash symbols. The
// sequence length must be a multiple of 5.
func bitsToHash(bits []byte) (string, error) {
	if len(bits)%bitsPerChar != 0 {
		return "", errors.WrapError(errors.ErrInvalidLength, "")
	}
	hash := make([]byte, 0, len(bits)/bitsPerChar)
	var acc byte
	count := 0
	for _, b := range bits {
		acc = acc<<1 | b
		count++
		if count == bitsPerChar {
			hash = append(hash, Base32Alphabet[acc])
			acc = 0
			count = 0
		}
	}
	return string(hash), nil
}

// interleave alternates longitude and latitude bits, longitude first.
// The longitude sequence may be exactly one bit longer, its remainder
// lands at the tail.
func interleave(lonBits, latBits []byte) []byte {
	bits := make([]byte, 0, len(lonBits)+len(latBits))
	for i := 0; i < len(lonBits); i++ {
		bits = append(bits, lonBits[i])
		if i < len(latBits) {
			bits = append(bits, latBits[i])
		}
	}
	return bits
}

// deinterleave splits a combined bit sequence back into its axis
// streams, even indices to longitude, odd to latitude.
func deinterleave(bits []byte) (lonBits, latBits []byte) {
	lonBits = make([]byte, 0, (len(bits)+1)/2)
	latBits = make([]byte, 0, len(bits)/2)
	for i, b := range bits {
		if i%2 == 0 {
			lonBits = append(lonBits, b)
		} else {
			latBits = append(latBits, b)
		}
	}
	return lonBits, latBits
}
