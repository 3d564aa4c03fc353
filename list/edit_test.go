package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dll/lo"
)

func TestList_Extend(t *testing.T) {
	first := newIntList(t, sequence(1, testListSize/2)...)
	second := newIntList(t, sequence(testListSize/2+1, testListSize)...)
	secondHead := second.head

	require.NoError(t, first.Extend(second))
	requireValues(t, first, sequence(1, testListSize))

	// the elements were relinked, not copied
	require.Same(t, secondHead, first.seek(testListSize/2))

	require.Equal(t, 0, second.Count())
	requireIntegrity(t, second)

	// the drained list is reusable
	require.NoError(t, second.AppendValue(1))
	requireValues(t, second, []int{1})
}

func TestList_ExtendEmpty(t *testing.T) {
	l := newIntList(t, 1, 2, 3)

	require.NoError(t, l.Extend(New[int]()))
	requireValues(t, l, []int{1, 2, 3})

	empty := New[int]()
	require.NoError(t, empty.Extend(l))
	requireValues(t, empty, []int{1, 2, 3})
	require.Equal(t, 0, l.Count())

	require.ErrorIs(t, empty.Extend(empty), ErrInvalidArgument)
	requireValues(t, empty, []int{1, 2, 3})
}

func TestList_Reverse(t *testing.T) {
	for _, count := range []int{0, 1, 2, 3, 4, 5, 1000, 1001} {
		l := newIntList(t, sequence(1, count)...)

		require.NoError(t, l.Reverse())

		expected := make([]int, 0, count)
		for i := count; i >= 1; i-- {
			expected = append(expected, i)
		}
		requireValues(t, l, expected)

		require.NoError(t, l.Reverse())
		requireValues(t, l, sequence(1, count))
	}
}

func TestList_DeepCopy(t *testing.T) {
	source := newIntList(t, randomValues(1, testListSize, 1000)...)
	copied := New[int]()

	require.NoError(t, source.DeepCopy(copied))
	requireIntegrity(t, copied)
	require.Equal(t, source.Values(), copied.Values())

	// mutating the source does not affect the copy
	expected := copied.Values()
	require.NoError(t, source.Sort(lo.IntComparator))
	require.NoError(t, source.Remove(0))
	payload, err := source.Get(0)
	require.NoError(t, err)
	*payload = -1
	require.Equal(t, expected, copied.Values())

	// the destination must be empty
	require.ErrorIs(t, source.DeepCopy(copied), ErrInvalidArgument)
	require.Equal(t, expected, copied.Values())

	empty := New[int]()
	require.NoError(t, New[int]().DeepCopy(empty))
	require.Equal(t, 0, empty.Count())
}

type record struct {
	tags []string
}

func (r record) Clone() record {
	return record{tags: lo.CopySlice(r.tags)}
}

func TestList_DeepCopyCloneable(t *testing.T) {
	source := New[record]()
	require.NoError(t, source.AppendValue(record{tags: []string{"a", "b"}}))

	copied := New[record]()
	require.NoError(t, source.DeepCopy(copied))

	original, err := source.Get(0)
	require.NoError(t, err)
	original.tags[0] = "changed"

	duplicate, err := copied.Get(0)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, duplicate.tags)
	require.NotSame(t, original, duplicate)
}

func TestList_IndexOf(t *testing.T) {
	l := newIntList(t, sequence(1, testListSize)...)

	position, err := l.IndexOf(lo.IntComparator, testListSize/2)
	require.NoError(t, err)
	require.Equal(t, testListSize/2-1, position)

	position, err = l.IndexOf(lo.IntComparator, 1)
	require.NoError(t, err)
	require.Equal(t, 0, position)

	position, err = l.IndexOf(lo.IntComparator, testListSize)
	require.NoError(t, err)
	require.Equal(t, testListSize-1, position)

	position, err = l.IndexOf(lo.IntComparator, testListSize+1)
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, StatusNotFound, StatusOf(err))
	require.Equal(t, -1, position)

	_, err = New[int]().IndexOf(lo.IntComparator, 1)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = l.IndexOf(nil, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestList_IndexOfFirstMatch(t *testing.T) {
	l := newIntList(t, 4, 2, 7, 2, 7)

	position, err := l.IndexOf(lo.IntComparator, 7)
	require.NoError(t, err)
	require.Equal(t, 2, position)
}
