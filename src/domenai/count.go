// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domenai

import "math/big"

// EstimateBrute computes the exact number of DNS-valid names the brute
// generator will produce for an alphabet of n hyphen-free characters and
// lengths in [minLen, maxLen] under the given hyphen mode.
//
// The result is exact, not sampled: hyphen placement is counted with a
// two-state recurrence over string positions instead of a probabilistic
// correction factor. Counts can exceed 64 bits (37^63 for the full
// alphanumeric range), so the total is returned as a [big.Int].
func EstimateBrute(n, minLen, maxLen int, mode HyphenMode) *big.Int {
	total := new(big.Int)
	if n <= 0 || minLen < 1 || maxLen < minLen {
		return total
	}

	for length := minLen; length <= maxLen; length++ {
		total.Add(total, countAtLength(n, length, mode))
	}
	return total
}

// countAtLength counts valid names of exactly the given length.
func countAtLength(n, length int, mode HyphenMode) *big.Int {
	switch mode {
	case HyphenWithout:
		return pow(n, length)
	case HyphenWith:
		return countHyphenated(n, length)
	case HyphenOnly:
		// Valid hyphen placements minus the hyphen-free names; below
		// two characters no valid placement exists.
		if length < 2 {
			return new(big.Int)
		}
		count := countHyphenated(n, length)
		return count.Sub(count, pow(n, length))
	default:
		return new(big.Int)
	}
}

// countHyphenated counts strings of the given length over n non-hyphen
// characters plus '-', where hyphens never lead, trail, or repeat.
//
// Tracked per position: endsHyphen(i) = endsNonHyphen(i-1), and
// endsNonHyphen(i) = (endsHyphen(i-1) + endsNonHyphen(i-1)) * n, with
// position 1 restricted to non-hyphen characters. The last character
// must not be a hyphen, so the count at the full length is
// endsNonHyphen(length).
func countHyphenated(n, length int) *big.Int {
	bigN := big.NewInt(int64(n))

	endsHyphen := new(big.Int)
	endsNonHyphen := big.NewInt(int64(n))

	for i := 2; i <= length; i++ {
		nextNonHyphen := new(big.Int).Add(endsHyphen, endsNonHyphen)
		nextNonHyphen.Mul(nextNonHyphen, bigN)

		endsHyphen = endsNonHyphen
		endsNonHyphen = nextNonHyphen
	}
	return endsNonHyphen
}

// pow returns n**exp as a big integer.
func pow(n, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(exp)), nil)
}
