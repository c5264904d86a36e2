package lptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrom(t *testing.T) {
	t.Parallel()
	message := []byte("Hello, world!")
	p := From(message)

	require.Equal(t, len(message), p.Len())
	require.True(t, p.Valid())
	require.Equal(t, message, p.Raw())

	// The view borrows, it does not copy.
	p.Raw()[0] = 'J'
	require.Equal(t, byte('J'), message[0])
}

func TestCalloc(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		p := Calloc[int](4)
		require.True(t, p.Allocated())
		require.Equal(t, 4, p.Len())
		for i := 0; i < 4; i++ {
			require.Equal(t, 0, p.Raw()[i])
		}

		p = p.Free()
		require.False(t, p.Allocated())
	})

	t.Run("negative length fails", func(t *testing.T) {
		p := Calloc[int](-1)
		require.False(t, p.Allocated())
	})
}

func TestRealloc(t *testing.T) {
	t.Parallel()
	p := Calloc[int](4)
	require.True(t, p.Allocated())
	require.Equal(t, 4, p.Len())

	for i := 0; i < 4; i++ {
		p.Raw()[i] = i + 1
	}

	p = p.Realloc(8)
	require.True(t, p.Allocated())
	require.Equal(t, 8, p.Len())
	for i := 0; i < 4; i++ {
		require.Equal(t, i+1, p.Raw()[i])
	}

	p = p.Realloc(2)
	require.Equal(t, 2, p.Len())
	require.Equal(t, []int{1, 2}, p.Raw())

	// A bad request keeps the old view.
	p = p.Realloc(-1)
	require.Equal(t, 2, p.Len())
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	p := Calloc[int](4)

	require.Equal(t, 2, p.Truncate(2).Len())

	// Truncate never extends.
	require.Equal(t, 4, p.Truncate(8).Len())
	require.Equal(t, 4, p.Truncate(-1).Len())
}

func TestIndex(t *testing.T) {
	t.Parallel()
	p := From([]int{10, 20, 30, 40})

	second := p.Index(1)
	require.True(t, second.InBounds())
	require.Equal(t, 3, second.Len())
	require.Equal(t, 20, second.Raw()[0])

	end := p.Index(4)
	require.False(t, end.InBounds())
	require.False(t, end.Valid())

	past := p.Index(5)
	require.False(t, past.Allocated())

	// Walking a view one member at a time, the C-loop way.
	count := 0
	for it := p; it.InBounds(); it = it.Index(1) {
		count++
	}
	require.Equal(t, 4, count)
}

func TestCopy(t *testing.T) {
	t.Parallel()

	t.Run("src smaller", func(t *testing.T) {
		dst := Calloc[byte](4)
		n := Copy(dst, From([]byte{1, 2}))
		require.Equal(t, 2, n)
		require.Equal(t, []byte{1, 2, 0, 0}, dst.Raw())
	})

	t.Run("dst smaller", func(t *testing.T) {
		dst := Calloc[byte](2)
		n := Copy(dst, From([]byte{1, 2, 3, 4}))
		require.Equal(t, 2, n)
		require.Equal(t, []byte{1, 2}, dst.Raw())
	})

	t.Run("overlapping", func(t *testing.T) {
		base := From([]byte{1, 2, 3, 4, 5})
		Copy(base.Index(1), base.Truncate(4))
		require.Equal(t, []byte{1, 1, 2, 3, 4}, base.Raw())
	})
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := From([]int{1, 2, 3})
	b := From([]int{1, 2, 3})
	c := From([]int{1, 2, 4})

	require.True(t, Equal(a, b))
	require.False(t, Equal(a, c))
	require.False(t, Equal(a, a.Truncate(2)))
}
