package data

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "id,score,label\n0,0.5,a\n1,,b\n2,0.9,c\n")
	fr, err := LoadCSV(path)
	require.NoError(t, err)

	require.Equal(t, []string{"id", "score", "label"}, fr.Header)
	require.Equal(t, 3, fr.Rows())
	require.True(t, fr.HasColumn("score"))
	require.False(t, fr.HasColumn("absent"))

	ids, err := fr.IntColumn("id")
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, ids)

	scores, err := fr.FloatColumn("score")
	require.NoError(t, err)
	require.Equal(t, 0.5, scores[0])
	require.True(t, math.IsNaN(scores[1]), "empty cell must load as NaN")
	require.Equal(t, 0.9, scores[2])

	labels, err := fr.StringColumn("label")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, labels)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	fr, err := LoadCSV(writeTemp(t, "a,b\nx,1\n"))
	require.NoError(t, err)
	_, err = fr.FloatColumn("a")
	require.Error(t, err, "non-numeric non-empty cell")
	_, err = fr.IntColumn("a")
	require.Error(t, err)
	_, err = fr.FloatColumn("missing")
	require.Error(t, err)
}

func TestMatrix(t *testing.T) {
	fr, err := LoadCSV(writeTemp(t, "x,y\n1,2\n3,4\n"))
	require.NoError(t, err)
	X, err := fr.Matrix([]string{"y", "x"})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {4, 3}}, X)
}
