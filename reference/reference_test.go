package reference_test

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/posematch/pose"
	"github.com/katalvlaran/posematch/reference"
	"github.com/katalvlaran/posematch/reference/reftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canonicalCSV renders rows frames of a constant demonstration as CSV.
func canonicalCSV(rows int, x, y float64) string {
	var b strings.Builder
	b.WriteString(strings.Join(reference.CanonicalColumns(), ","))
	b.WriteString("\n")
	for r := 0; r < rows; r++ {
		cells := make([]string, 0, 3*pose.JointCount)
		for range pose.Joints() {
			cells = append(cells, ftoa(x), ftoa(y), "0.9")
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return b.String()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// TestNewTable_Basics covers row count, lookup and immutability.
func TestNewTable_Basics(t *testing.T) {
	src := map[string][]float64{"a": {1, 2, 3}, "b": {4, 5, 6}}
	tbl, err := reference.NewTable(src)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, []string{"a", "b"}, tbl.Columns())

	col, err := tbl.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, col)

	src["a"][0] = 100
	col, _ = tbl.Column("a")
	assert.Equal(t, 1.0, col[0], "table must copy its input")

	_, err = tbl.Column("missing")
	assert.ErrorIs(t, err, reference.ErrColumnNotFound)
}

// TestNewTable_Rejects covers ragged and non-finite input.
func TestNewTable_Rejects(t *testing.T) {
	_, err := reference.NewTable(map[string][]float64{"a": {1, 2}, "b": {1}})
	assert.ErrorIs(t, err, reference.ErrRaggedColumns)

	_, err = reference.NewTable(map[string][]float64{"a": {1, math.NaN()}})
	assert.ErrorIs(t, err, reference.ErrBadValue)

	empty, err := reference.NewTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.RowCount())
}

// TestPrefix clips to available rows.
func TestPrefix(t *testing.T) {
	tbl, err := reference.NewTable(map[string][]float64{"a": {1, 2, 3}})
	require.NoError(t, err)

	got, err := reference.Prefix(tbl, "a", 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got, err = reference.Prefix(tbl, "a", 10)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	got, err = reference.Prefix(tbl, "a", -1)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = reference.Prefix(tbl, "zzz", 1)
	assert.ErrorIs(t, err, reference.ErrColumnNotFound)
}

// TestLoadCSV parses a canonical file and keeps header order.
func TestLoadCSV(t *testing.T) {
	tbl, err := reference.LoadCSV(strings.NewReader(canonicalCSV(4, 0.25, 0.5)))
	require.NoError(t, err)

	assert.Equal(t, 4, tbl.RowCount())
	assert.Equal(t, reference.CanonicalColumns(), tbl.Columns())
	assert.NoError(t, reference.ValidateSchema(tbl))

	col, err := tbl.Column("right_wrist_y")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 0.5, 0.5}, col)
}

// TestLoadCSV_Errors covers malformed input.
func TestLoadCSV_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty":     {"", reference.ErrEmptyHeader},
		"blank":     {"a,,c\n1,2,3\n", reference.ErrEmptyHeader},
		"duplicate": {"a,a\n1,2\n", reference.ErrDuplicateColumn},
		"text cell": {"a,b\n1,x\n", reference.ErrBadValue},
		"nan cell":  {"a\nNaN\n", reference.ErrBadValue},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := reference.LoadCSV(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := reference.LoadCSV(strings.NewReader("a,b\n1,2,3\n"))
	assert.Error(t, err, "record with extra field must fail")
}

// TestValidateSchema reports the first missing canonical column.
func TestValidateSchema(t *testing.T) {
	full := reftest.Constant(2, 0.5, 0.5, 1).Table()
	assert.NoError(t, reference.ValidateSchema(full))

	partial := reftest.Constant(2, 0.5, 0.5, 1).Drop("left_knee_confidence").Table()
	err := reference.ValidateSchema(partial)
	assert.ErrorIs(t, err, reference.ErrColumnNotFound)
	assert.Contains(t, err.Error(), "left_knee_confidence")

	for _, bad := range []float64{-1, 5, 1.01} {
		ds := reftest.Constant(3, 0.5, 0.5, 1).SetConfidence(pose.RightWrist, 1, bad, 1).Table()
		err := reference.ValidateSchema(ds)
		assert.ErrorIs(t, err, reference.ErrBadConfidence, "confidence %v", bad)
		assert.Contains(t, err.Error(), `"right_wrist_confidence" row 1`)
	}

	edges := reftest.Constant(2, 0.5, 0.5, 1).SetConfidence(pose.Nose, 0, 1).Table()
	assert.NoError(t, reference.ValidateSchema(edges), "0 and 1 are inclusive bounds")
}

// TestLibrary_RejectsBadConfidence keeps out-of-range confidences out of the cache.
func TestLibrary_RejectsBadConfidence(t *testing.T) {
	dir := t.TempDir()
	raw := strings.Replace(canonicalCSV(2, 0.4, 0.6), "0.9", "5", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "overconfident.csv"), []byte(raw), 0o600))

	lib := reference.NewLibrary(dir, time.Hour)
	_, err := lib.Get("overconfident")
	assert.ErrorIs(t, err, reference.ErrBadConfidence)
	assert.Zero(t, lib.Cached())
}

// TestLibrary_LoadCacheAndList exercises the directory-backed library.
func TestLibrary_LoadCacheAndList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoulder_raise.csv"), []byte(canonicalCSV(3, 0.4, 0.6)), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.csv"), []byte("a,b\n1,2\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	lib := reference.NewLibrary(dir, time.Hour)

	ds, err := lib.Get("shoulder_raise")
	require.NoError(t, err)
	assert.Equal(t, 3, ds.RowCount())
	assert.Equal(t, 1, lib.Cached())

	again, err := lib.Get("shoulder_raise")
	require.NoError(t, err)
	assert.Same(t, ds, again, "second Get must hit the cache")

	_, err = lib.Get("missing")
	assert.ErrorIs(t, err, reference.ErrExerciseNotFound)

	_, err = lib.Get("broken")
	assert.ErrorIs(t, err, reference.ErrColumnNotFound)

	for _, bad := range []string{"", "..", "../etc/passwd", `a\b`} {
		_, err = lib.Get(bad)
		assert.ErrorIs(t, err, reference.ErrBadExerciseID, "id %q", bad)
	}

	require.NoError(t, lib.Put("in_memory", reftest.Constant(1, 0, 0, 1).Table()))
	ids, err := lib.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "in_memory", "shoulder_raise"}, ids)

	lib.Forget("shoulder_raise")
	assert.Equal(t, 1, lib.Cached())
}
