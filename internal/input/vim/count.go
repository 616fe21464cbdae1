package vim

// MaxCount caps a repeat count.
const MaxCount = 99999

// IsCountStart returns true if the character could start a count.
// Note: '0' cannot start a count (it's a motion to line start).
func IsCountStart(c byte) bool {
	return c >= '1' && c <= '9'
}

// IsCountDigit returns true if the character is a digit valid in a count.
func IsCountDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// SplitCount parses a leading count from seq.
// It returns the count (0 when absent) and the remaining keys.
func SplitCount(seq string) (count int, rest string) {
	if seq == "" || !IsCountStart(seq[0]) {
		return 0, seq
	}
	i := 0
	for ; i < len(seq) && IsCountDigit(seq[i]); i++ {
		if count <= MaxCount {
			count = count*10 + int(seq[i]-'0')
		}
	}
	return min(count, MaxCount), seq[i:]
}
