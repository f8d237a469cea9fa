package samples_test

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/degreeplot/samples"
	"github.com/katalvlaran/degreeplot/textio"
)

func TestReadInts(t *testing.T) {
	got, err := samples.ReadInts(strings.NewReader("2\n 3 \n10\r\n"))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 10}, got)
}

func TestReadInts_Empty(t *testing.T) {
	got, err := samples.ReadInts(strings.NewReader(""))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestReadInts_Malformed(t *testing.T) {
	tests := []string{"1\n2.5\n", "1\nabc\n", "1\n\n2\n"}
	for _, input := range tests {
		got, err := samples.ReadInts(strings.NewReader(input))
		require.Nil(t, got)
		require.ErrorIs(t, err, textio.ErrFormat, "input %q", input)
		require.ErrorIs(t, err, samples.ErrNotNumber, "input %q", input)

		var fe *textio.FormatError
		require.ErrorAs(t, err, &fe)
		require.Equal(t, 2, fe.Line)
	}
}

func TestReadFloats(t *testing.T) {
	got, err := samples.ReadFloats(strings.NewReader("0.5\n1\n6.25e-1\n"))
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.5, 1, 0.625}, got, 1e-12)

	_, err = samples.ReadFloats(strings.NewReader("0.5\nhalf\n"))
	require.ErrorIs(t, err, textio.ErrFormat)
}

func TestReadFloats_NonFinite(t *testing.T) {
	for _, word := range []string{"NaN", "nan", "inf", "+Inf", "-Inf", "1e400"} {
		got, err := samples.ReadFloats(strings.NewReader("0.1\n" + word + "\n0.5\n"))
		require.Nil(t, got, word)
		require.ErrorIs(t, err, textio.ErrFormat, word)

		var fe *textio.FormatError
		require.ErrorAs(t, err, &fe, word)
		require.Equal(t, 2, fe.Line, word)
	}

	_, err := samples.ReadFloats(strings.NewReader("inf\n"))
	require.ErrorIs(t, err, samples.ErrNotFinite)
}

func TestFiles_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph_degrees.txt")
	want := []int{2, 2, 1, 7}

	require.NoError(t, samples.WriteIntsFile(path, want))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "2\n2\n1\n7\n", string(data))

	got, err := samples.ReadIntsFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	floats, err := samples.ReadFloatsFile(path)
	require.NoError(t, err)
	require.Equal(t, samples.Float64s(want), floats)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := samples.ReadFloatsFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, fs.ErrNotExist)

	_, err = samples.ReadIntsFile(filepath.Join(t.TempDir(), "missing.txt"))
	var ioErr *textio.IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestWriteInts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samples.WriteInts(&buf, []int{0, -3, 12}))
	require.Equal(t, "0\n-3\n12\n", buf.String())
}

func TestWriteLabeledInts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, samples.WriteLabeledInts(&buf, []string{"X", "ctg.7"}, []int{2, 1}))
	require.Equal(t, "X\t2\nctg.7\t1\n", buf.String())

	buf.Reset()
	require.ErrorIs(t, samples.WriteLabeledInts(&buf, []string{"X"}, nil), samples.ErrLengthMismatch)
	require.Zero(t, buf.Len())

	path := filepath.Join(t.TempDir(), "g_degrees_by_vertex.txt")
	require.ErrorIs(t, samples.WriteLabeledIntsFile(path, nil, []int{1}), samples.ErrLengthMismatch)
	require.NoFileExists(t, path)

	require.NoError(t, samples.WriteLabeledIntsFile(path, []string{"A", "B"}, []int{1, 1}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "A\t1\nB\t1\n", string(data))
}
