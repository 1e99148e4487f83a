package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"
)

func EnsureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0777)
}

// GatherAllMidiPaths walks path for .mid and .midi files. A maxNum of 0
// means no limit.
func GatherAllMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	err := filepath.WalkDir(path, walk)
	return res, err
}

func Abs[A constraints.Signed](n A) A {
	if n < 0 {
		return -n
	}
	return n
}

// Gcd is always non-negative. Gcd(0, 0) is 0.
func Gcd[A constraints.Integer](a, b A) A {
	a, b = absAny(a), absAny(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Lcm is 0 when either argument is 0.
func Lcm[A constraints.Integer](a, b A) A {
	if a == 0 || b == 0 {
		return 0
	}
	return absAny(a / Gcd(a, b) * b)
}

func IsPowerOf2[A constraints.Integer](n A) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the exponent of a power of two. Callers check IsPowerOf2 first.
func Log2[A constraints.Integer](n A) int {
	var res int
	for n > 1 {
		n >>= 1
		res++
	}
	return res
}

// SplitPowerOf2 splits a non-zero n into 2^k * odd.
func SplitPowerOf2[A constraints.Integer](n A) (k int, odd A) {
	odd = n
	for odd != 0 && odd%2 == 0 {
		odd /= 2
		k++
	}
	return k, odd
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// absAny works for unsigned types too, where it is the identity.
func absAny[A constraints.Integer](n A) A {
	if n < 0 {
		return -n
	}
	return n
}
