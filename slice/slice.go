package slice

import "strings"

// FindIndex returns the first index of the ref that matches ref t
func FindIndex(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if the string exists in the slice and false otherwise
func Contains(vs []string, t string) bool {
	return FindIndex(vs, t) > -1
}

// ContainsSubAt returns the index of the string in the slice if it contains the substring, otherwise -1
func ContainsSubAt(vs []string, sub string) int {
	for i, v := range vs {
		if strings.Contains(v, sub) {
			return i
		}
	}

	return -1
}

// Unique returns a copy of the slice with duplicate entries removed,
// preserving first-seen order.
func Unique(slice []string) []string {
	uniqMap := make(map[string]struct{})

	var uniqSlice []string

	for _, v := range slice {
		if _, ok := uniqMap[v]; !ok {
			uniqSlice = append(uniqSlice, v)
			uniqMap[v] = struct{}{}
		}
	}

	return uniqSlice
}
