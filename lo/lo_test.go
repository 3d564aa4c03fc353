package lo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Cond(t *testing.T) {
	require.Equal(t, "head", Cond(true, "head", "tail"))
	require.Equal(t, "tail", Cond(false, "head", "tail"))
}

func Test_CopySlice(t *testing.T) {
	base := []int{1, 2, 3}
	copied := CopySlice(base)
	copied[0] = 42

	require.Equal(t, []int{1, 2, 3}, base, "should not alias the base slice")
	require.Equal(t, []int{42, 2, 3}, copied)
}

func Test_Comparator(t *testing.T) {
	require.Equal(t, -1, Comparator(1, 2))
	require.Equal(t, 1, Comparator("b", "a"))
	require.Equal(t, 0, Comparator(3.5, 3.5))

	require.Equal(t, -1, IntComparator(-4, 4))
	require.Equal(t, 1, ReverseComparator(IntComparator)(-4, 4))

	require.Equal(t, -1, BytesComparator([]byte{0x01}, []byte{0x01, 0x00}))
	require.Equal(t, 0, BytesComparator([]byte("abc"), []byte("abc")))
}

type version int

func (v version) Compare(other version) int {
	return Comparator(v, other)
}

func Test_CompareWith(t *testing.T) {
	compare := CompareWith[version]()

	require.Equal(t, -1, compare(1, 2))
	require.Equal(t, 0, compare(2, 2))
	require.Equal(t, 1, compare(3, 2))
}
