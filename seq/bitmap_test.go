package seq_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skelred/seq"
)

func newBitmapFromBits(t *testing.T, bits []bool) *seq.Bitmap {
	t.Helper()
	b, err := seq.NewBitmap(0, false, nil)
	require.NoError(t, err)
	for _, v := range bits {
		require.NoError(t, b.Append(v))
	}

	return b
}

func bitmapBits(t *testing.T, b *seq.Bitmap) []bool {
	t.Helper()
	out := make([]bool, b.Len())
	for i := range out {
		v, err := b.At(i)
		require.NoError(t, err)
		out[i] = v
	}

	return out
}

// patternBits builds a deterministic irregular pattern of n bits.
func patternBits(n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = i%3 == 0 || i%7 == 2
	}

	return out
}

// TestBitmap_Fill verifies the filled constructor across a word
// boundary.
func TestBitmap_Fill(t *testing.T) {
	b, err := seq.NewBitmap(70, true, nil)
	require.NoError(t, err)
	require.Equal(t, 70, b.Len())
	require.Equal(t, 70, b.PopCount())

	z, err := seq.NewBitmap(70, false, nil)
	require.NoError(t, err)
	require.Equal(t, 0, z.PopCount())
}

// TestBitmap_ReplaceRoundTrip checks displaced-bit semantics.
func TestBitmap_ReplaceRoundTrip(t *testing.T) {
	b, err := seq.NewBitmap(3, false, nil)
	require.NoError(t, err)

	old, err := b.Replace(1, true)
	require.NoError(t, err)
	require.False(t, old)

	old, err = b.Replace(1, false)
	require.NoError(t, err)
	require.True(t, old)
}

// TestBitmap_PopCountIdentity: set + unset == size, on sizes straddling
// word boundaries.
func TestBitmap_PopCountIdentity(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 127, 128, 200} {
		bits := patternBits(n)
		b := newBitmapFromBits(t, bits)

		set := b.PopCount()
		unset := 0
		for i := 0; i < b.Len(); i++ {
			v, err := b.At(i)
			require.NoError(t, err)
			if !v {
				unset++
			}
		}
		require.Equalf(t, n, set+unset, "size %d", n)
	}
}

// TestBitmap_InsertShifts inserts mid-word and verifies the whole
// suffix moved one place right, across word boundaries.
func TestBitmap_InsertShifts(t *testing.T) {
	bits := patternBits(130)
	b := newBitmapFromBits(t, bits)

	require.NoError(t, b.Insert(5, true))

	want := append(append(append([]bool{}, bits[:5]...), true), bits[5:]...)
	require.Equal(t, want, bitmapBits(t, b))
	require.Equal(t, 131, b.Len())
}

// TestBitmap_RemoveShifts removes mid-word and verifies the suffix
// moved one place left.
func TestBitmap_RemoveShifts(t *testing.T) {
	bits := patternBits(130)
	b := newBitmapFromBits(t, bits)

	got, err := b.Remove(70)
	require.NoError(t, err)
	require.Equal(t, bits[70], got)

	want := append(append([]bool{}, bits[:70]...), bits[71:]...)
	require.Equal(t, want, bitmapBits(t, b))
}

// TestBitmap_InsertRemoveInverse: remove(i) after insert(i, v) yields v
// and restores the bitmap.
func TestBitmap_InsertRemoveInverse(t *testing.T) {
	bits := patternBits(100)
	b := newBitmapFromBits(t, bits)

	for _, pos := range []int{0, 1, 63, 64, 65, 99, 100} {
		for _, v := range []bool{false, true} {
			require.NoError(t, b.Insert(pos, v))
			got, err := b.Remove(pos)
			require.NoError(t, err)
			require.Equalf(t, v, got, "pos %d v %v", pos, v)
			require.Equalf(t, bits, bitmapBits(t, b), "pos %d v %v", pos, v)
		}
	}
}

// TestBitmap_BoundaryGrowth grows across the word boundary and shrinks
// back, releasing the extra word.
func TestBitmap_BoundaryGrowth(t *testing.T) {
	b := newBitmapFromBits(t, patternBits(64))
	require.Equal(t, 64, b.Cap())

	require.NoError(t, b.Append(true))
	require.Equal(t, 65, b.Len())
	require.Equal(t, 128, b.Cap())

	got, err := b.Remove(64)
	require.NoError(t, err)
	require.True(t, got)
	require.Equal(t, 64, b.Len())
	require.Equal(t, 64, b.Cap())
}

// TestBitmap_NextSet scans set positions across words.
func TestBitmap_NextSet(t *testing.T) {
	b, err := seq.NewBitmap(150, false, nil)
	require.NoError(t, err)
	for _, i := range []int{3, 64, 149} {
		require.NoError(t, b.Set(i, true))
	}

	require.Equal(t, 3, b.NextSet(0))
	require.Equal(t, 3, b.NextSet(3))
	require.Equal(t, 64, b.NextSet(4))
	require.Equal(t, 149, b.NextSet(65))
	require.Equal(t, -1, b.NextSet(150))

	var positions []int
	for i := b.NextSet(0); i >= 0; i = b.NextSet(i + 1) {
		positions = append(positions, i)
	}
	require.Equal(t, []int{3, 64, 149}, positions)
}

// TestBitmap_Errors sweeps the sentinel boundaries.
func TestBitmap_Errors(t *testing.T) {
	b, err := seq.NewBitmap(2, false, nil)
	require.NoError(t, err)

	if _, err = b.At(2); !errors.Is(err, seq.ErrInvalidIndex) {
		t.Errorf("At(2) error = %v; want ErrInvalidIndex", err)
	}
	if err = b.Insert(3, true); !errors.Is(err, seq.ErrInvalidIndex) {
		t.Errorf("Insert(3) error = %v; want ErrInvalidIndex", err)
	}
	if _, err = b.Remove(2); !errors.Is(err, seq.ErrInvalidIndex) {
		t.Errorf("Remove(2) error = %v; want ErrInvalidIndex", err)
	}
	if _, err = seq.NewBitmap(-1, false, nil); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Errorf("NewBitmap(-1) error = %v; want ErrInvalidArgument", err)
	}
	if err = b.Resize(1); !errors.Is(err, seq.ErrInvalidArgument) {
		t.Errorf("Resize below len error = %v; want ErrInvalidArgument", err)
	}
}
