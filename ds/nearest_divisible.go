package ds

// NearestDivisibleByM returns the smallest value not below n that is a
// multiple of m. m must be positive.
func NearestDivisibleByM(n int, m int) int {
	if remainder := n % m; remainder != 0 {
		return n + m - remainder
	}
	return n
}
