package slice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFindIndex tests the FindIndex function
func TestFindIndex(t *testing.T) {
	var findIndexPayloads = []struct {
		slice    []string
		item     string
		expected int
	}{
		{[]string{"a", "b", "c"}, "a", 0},
		{[]string{"a", "b", "c"}, "b", 1},
		{[]string{"a", "b", "c"}, "d", -1},
	}

	for _, p := range findIndexPayloads {
		assert.Equal(t, p.expected, FindIndex(p.slice, p.item))
	}
}

// TestContains tests the Contains function
func TestContains(t *testing.T) {
	var containsPayloads = []struct {
		slice    []string
		item     string
		expected bool
	}{
		{[]string{"a", "b", "c"}, "a", true},
		{[]string{"a", "b", "c"}, "b", true},
		{[]string{"a", "b", "c"}, "d", false},
	}

	for _, p := range containsPayloads {
		assert.Equal(t, p.expected, Contains(p.slice, p.item))
	}
}

// TestContainsSubAt tests the ContainsSubAt function
func TestContainsSubAt(t *testing.T) {
	var payloads = []struct {
		slice    []string
		sub      string
		expected int
	}{
		{[]string{"roofing", "siding"}, "roof", 0},
		{[]string{"roofing", "siding"}, "sid", 1},
		{[]string{"roofing", "siding"}, "gutters", -1},
	}

	for _, p := range payloads {
		assert.Equal(t, p.expected, ContainsSubAt(p.slice, p.sub))
	}
}

func TestUnique(t *testing.T) {
	var payloads = []struct {
		slice    []string
		expected []string
	}{
		{[]string{"roofing", "roofing", "siding"}, []string{"roofing", "siding"}},
		{[]string{"a"}, []string{"a"}},
		{nil, nil},
	}

	for _, p := range payloads {
		assert.Equal(t, p.expected, Unique(p.slice))
	}
}
