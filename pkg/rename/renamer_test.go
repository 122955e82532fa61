package rename_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nomerrors "github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/rename"
)

func targets(p *rename.Plan) []string {
	var out []string
	for _, rn := range p.Renames() {
		out = append(out, rn.Target)
	}
	return out
}

func TestPlanEmpty(t *testing.T) {
	plan, err := rename.NewRenamer().Plan()
	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
	assert.Equal(t, 0, plan.Len())
}

func TestPlanDropsNoops(t *testing.T) {
	r := rename.NewRenamer(rename.WithCapacity(3))
	r.Add("same.txt", "same.txt")
	r.Add("old.txt", "new.txt")
	r.Add("dir/x", "dir/x")
	assert.Equal(t, 3, r.Len())

	plan, err := r.Plan()
	require.NoError(t, err)
	assert.Equal(t, []rename.Rename{rename.New("old.txt", "new.txt")}, plan.Renames())
}

func TestPlanNoopUsesTextualEquality(t *testing.T) {
	// No normalization: these name the same file but are not equal strings.
	plan, err := rename.FromRenames([]rename.Rename{rename.New("a/b", "a/./b")}).Plan()
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Len())
}

func TestPlanSortsByTarget(t *testing.T) {
	r := rename.NewRenamer()
	r.Add("1", "b")
	r.Add("2", "a")
	r.Add("3", "c")

	plan, err := r.Plan()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, targets(plan))
}

func TestPlanKeepsInsertionOrderForEqualTargets(t *testing.T) {
	r := rename.FromRenames([]rename.Rename{
		rename.New("z-first", "dup"),
		rename.New("other", "b"),
		rename.New("a-second", "dup"),
	})

	plan, err := r.Plan()
	require.NoError(t, err)
	assert.Equal(t, []rename.Rename{
		rename.New("other", "b"),
		rename.New("z-first", "dup"),
		rename.New("a-second", "dup"),
	}, plan.Renames())
}

func TestPlanCollation(t *testing.T) {
	input := []rename.Rename{
		rename.New("s10", "file10"),
		rename.New("s2", "file2"),
		rename.New("s1", "file1"),
	}

	tests := []struct {
		name      string
		collation rename.Collation
		want      []string
	}{
		{"byte order", rename.ByteOrder{}, []string{"file1", "file10", "file2"}},
		{"natural order", rename.NaturalOrder{}, []string{"file1", "file2", "file10"}},
		{"natural order with locale", rename.NaturalOrder{Locale: "en"}, []string{"file1", "file2", "file10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := rename.FromRenames(input, rename.WithCollation(tt.collation)).Plan()
			require.NoError(t, err)
			assert.Equal(t, tt.want, targets(plan))
		})
	}
}

func TestPlanCollatorFailure(t *testing.T) {
	r := rename.NewRenamer(rename.WithCollation(rename.NaturalOrder{Locale: "!!not a tag"}))
	r.Add("a", "b")

	plan, err := r.Plan()
	assert.Nil(t, plan)

	var planErr *rename.PlanError
	require.ErrorAs(t, err, &planErr)
	assert.Contains(t, err.Error(), "could not create collator")
	assert.True(t, nomerrors.IsErrorCode(err, nomerrors.ErrCollator))
}

func TestCollationFor(t *testing.T) {
	assert.Equal(t, rename.ByteOrder{}, rename.CollationFor(false, "fr"))
	assert.Equal(t, rename.NaturalOrder{Locale: "fr"}, rename.CollationFor(true, "fr"))
}

func TestRenamerConsumed(t *testing.T) {
	r := rename.NewRenamer()
	r.Add("a", "b")

	_, err := r.Plan()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())

	_, err = r.Plan()
	assert.ErrorIs(t, err, rename.ErrRenamerConsumed)

	assert.Panics(t, func() { r.Add("c", "d") })
}

func TestExtendMatchesAdd(t *testing.T) {
	added := rename.NewRenamer()
	added.Add("x", "3")
	added.Add("y", "1")

	extended := rename.NewRenamer()
	extended.Extend(rename.New("x", "3"), rename.New("y", "1"))

	p1, err := added.Plan()
	require.NoError(t, err)
	p2, err := extended.Plan()
	require.NoError(t, err)
	assert.Equal(t, p1.Renames(), p2.Renames())
}
