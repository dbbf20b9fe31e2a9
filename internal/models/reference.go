package models

import "strconv"

// SplitReference splits a combined capsule reference like "12A" into its
// numeric part and string suffix: the leading digit run becomes the
// reference (0 when there are no leading digits) and the remainder the
// sub-reference.
func SplitReference(full string) (int, string) {
	i := 0
	for i < len(full) && full[i] >= '0' && full[i] <= '9' {
		i++
	}
	ref, _ := strconv.Atoi(full[:i])
	return ref, full[i:]
}

// JoinReference rebuilds the combined display form of a reference pair.
func JoinReference(ref int, sub string) string {
	return strconv.Itoa(ref) + sub
}
