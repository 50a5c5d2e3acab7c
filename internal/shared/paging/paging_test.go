package paging_test

import (
	"testing"

	"go-recruit/internal/shared/paging"

	"github.com/stretchr/testify/assert"
)

func TestSlice_Basic(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, paging.Slice(items, 1, 3))
	assert.Equal(t, []int{4, 5, 6}, paging.Slice(items, 2, 3))
	assert.Equal(t, []int{7}, paging.Slice(items, 3, 3))
}

func TestSlice_OutOfRangeClampsToLastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	// Page 99 of a 2-page result lands on page 2.
	assert.Equal(t, []int{4, 5}, paging.Slice(items, 99, 3))
	assert.Equal(t, []int{1, 2, 3}, paging.Slice(items, 0, 3))
	assert.Equal(t, []int{1, 2, 3}, paging.Slice(items, -4, 3))
}

func TestSlice_EmptyCollection(t *testing.T) {
	assert.Empty(t, paging.Slice([]string{}, 1, 10))
	assert.Empty(t, paging.Slice([]string{}, 99, 10))
}

func TestSlice_PartitionProperty(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}

		size := 4
		pages := (n + size - 1) / size
		rebuilt := []int{}
		for p := 1; p <= pages; p++ {
			rebuilt = append(rebuilt, paging.Slice(items, p, size)...)
		}
		assert.Equal(t, items, rebuilt, "n=%d", n)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, paging.Clamp(1, 10, 0))
	assert.Equal(t, 1, paging.Clamp(7, 10, 0))
	assert.Equal(t, 2, paging.Clamp(5, 10, 20))
	assert.Equal(t, 3, paging.Clamp(3, 10, 100))
}
