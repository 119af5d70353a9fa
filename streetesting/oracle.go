package streetesting

import "slices"

// Occurs reports whether sub is a contiguous run of template, by brute force.
func Occurs[S comparable](template, sub []S) bool {
	if len(sub) == 0 {
		return true
	}
	for i := 0; i+len(sub) <= len(template); i++ {
		if slices.Equal(template[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}

// LongestSuffixIn returns the longest suffix of pattern occurring in
// template, by brute force.
func LongestSuffixIn[S comparable](template, pattern []S) []S {
	for start := 0; start < len(pattern); start++ {
		if Occurs(template, pattern[start:]) {
			return pattern[start:]
		}
	}
	return pattern[len(pattern):]
}

// Suffixes returns template[i:] for every i, indexed by i.
func Suffixes[S comparable](template []S) [][]S {
	out := make([][]S, len(template))
	for i := range template {
		out[i] = template[i:]
	}
	return out
}

// OpenSuffixes returns the suffixes that are not a prefix of any other
// suffix. These are the suffixes an online suffix tree keeps at leaves.
func OpenSuffixes[S comparable](template []S) [][]S {
	var out [][]S
	for i := range template {
		suffix := template[i:]
		nested := false
		for j := 0; j < i && !nested; j++ {
			nested = slices.Equal(template[j:j+len(suffix)], suffix)
		}
		if !nested {
			out = append(out, suffix)
		}
	}
	return out
}
