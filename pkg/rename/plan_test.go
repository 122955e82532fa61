package rename_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	nomerrors "github.com/vivienm/nominal/pkg/errors"
	"github.com/vivienm/nominal/pkg/filesystem"
	"github.com/vivienm/nominal/pkg/rename"
)

type mockConfirmer struct {
	mock.Mock
}

func (m *mockConfirmer) Confirm(prompt string) (bool, error) {
	args := m.Called(prompt)
	return args.Bool(0), args.Error(1)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func planFor(t *testing.T, renames ...rename.Rename) *rename.Plan {
	t.Helper()
	plan, err := rename.FromRenames(renames).Plan()
	require.NoError(t, err)
	return plan
}

func TestPlanWriteTo(t *testing.T) {
	plan := planFor(t,
		rename.New("/music/b.mp3", "/music/02.mp3"),
		rename.New("/music/a.mp3", "/music/01.mp3"),
		rename.New("draft.txt", "final.txt"),
	)

	var buf bytes.Buffer
	n, err := plan.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, "/music/{a.mp3 => 01.mp3}\n/music/{b.mp3 => 02.mp3}\ndraft.txt => final.txt\n", buf.String())

	// Rendering does not consume the plan.
	buf.Reset()
	_, err = plan.WriteStyledTo(&buf, bracketStyler{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[/music|/music]/{[/music/a.mp3|a.mp3] => [/music/01.mp3|01.mp3]}")
	assert.Equal(t, 3, plan.Len())
}

func TestPlanConfirm(t *testing.T) {
	t.Run("empty plan needs no decision", func(t *testing.T) {
		c := &mockConfirmer{}
		decision, err := planFor(t).Confirm(c)
		require.NoError(t, err)
		assert.Equal(t, rename.DecisionNone, decision)
		c.AssertNotCalled(t, "Confirm", mock.Anything)

		decision, err = planFor(t).Confirm(nil)
		require.NoError(t, err)
		assert.Equal(t, rename.DecisionNone, decision)
	})

	t.Run("accepted", func(t *testing.T) {
		c := &mockConfirmer{}
		c.On("Confirm", "Proceed?").Return(true, nil).Once()

		decision, err := planFor(t, rename.New("a", "b")).Confirm(c)
		require.NoError(t, err)
		assert.Equal(t, rename.DecisionYes, decision)
		c.AssertExpectations(t)
	})

	t.Run("declined", func(t *testing.T) {
		c := &mockConfirmer{}
		c.On("Confirm", "Proceed?").Return(false, nil).Once()

		decision, err := planFor(t, rename.New("a", "b")).Confirm(c)
		require.NoError(t, err)
		assert.Equal(t, rename.DecisionNo, decision)
	})

	t.Run("prompt failure", func(t *testing.T) {
		c := &mockConfirmer{}
		c.On("Confirm", "Proceed?").Return(false, errors.New("tty closed"))

		_, err := planFor(t, rename.New("a", "b")).Confirm(c)
		assert.True(t, nomerrors.IsErrorCode(err, nomerrors.ErrPromptFailure))
	})

	t.Run("no confirmer for non-empty plan", func(t *testing.T) {
		_, err := planFor(t, rename.New("a", "b")).Confirm(nil)
		assert.Error(t, err)
	})
}

func TestPlanApply(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	writeFile(t, oldPath, "content")

	plan := planFor(t, rename.New(oldPath, newPath))
	require.NoError(t, plan.Apply())
	assert.Equal(t, 1, plan.Completed())

	assert.NoFileExists(t, oldPath)
	got, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))
}

func TestPlanApplyTargetExists(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	writeFile(t, oldPath, "old")
	writeFile(t, newPath, "new")

	err := planFor(t, rename.New(oldPath, newPath)).Apply()

	var applyErr *rename.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, rename.KindTargetExists, applyErr.Kind)
	assert.Equal(t, oldPath, applyErr.Source)
	assert.Equal(t, newPath, applyErr.Target)
	assert.ErrorIs(t, err, rename.ErrTargetExists)
	assert.True(t, nomerrors.IsErrorCode(err, nomerrors.ErrTargetExists))

	assert.FileExists(t, oldPath)
	got, err := os.ReadFile(newPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestPlanApplyDanglingSymlinkTarget(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	link := filepath.Join(dir, "link.txt")
	writeFile(t, oldPath, "old")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

	err := planFor(t, rename.New(oldPath, link)).Apply()
	assert.ErrorIs(t, err, rename.ErrTargetExists)
	assert.FileExists(t, oldPath)
}

func TestPlanApplyPartialFailure(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	first := filepath.Join(dir, "1.txt")
	second := filepath.Join(dir, "2.txt")
	writeFile(t, a, "a")
	writeFile(t, b, "b")
	writeFile(t, second, "taken")

	plan := planFor(t, rename.New(b, second), rename.New(a, first))
	require.Equal(t, []string{first, second}, targets(plan))

	err := plan.Apply()
	var applyErr *rename.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, b, applyErr.Source)
	assert.Equal(t, 1, plan.Completed())

	// The first rename stays applied, the second never happened.
	assert.NoFileExists(t, a)
	assert.FileExists(t, first)
	assert.FileExists(t, b)
}

func TestPlanApplyCreatesParents(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "x", "y", "new.txt")
	writeFile(t, oldPath, "content")

	require.NoError(t, planFor(t, rename.New(oldPath, newPath)).Apply())
	assert.FileExists(t, newPath)
}

func TestPlanApplyTrailingSeparatorTarget(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "f.txt")
	writeFile(t, oldPath, "content")

	// Renaming a file onto "g/" fails, and must not leave g behind.
	err := planFor(t, rename.New(oldPath, filepath.Join(dir, "g")+string(filepath.Separator))).Apply()

	var applyErr *rename.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, rename.KindIO, applyErr.Kind)
	assert.NoFileExists(t, filepath.Join(dir, "g"))
	assert.NoDirExists(t, filepath.Join(dir, "g"))
	assert.FileExists(t, oldPath)
}

func TestPlanApplyTrailingSeparatorCreatesParents(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "d")
	require.NoError(t, os.Mkdir(oldPath, 0755))

	newPath := filepath.Join(dir, "x", "d") + string(filepath.Separator)
	require.NoError(t, planFor(t, rename.New(oldPath, newPath)).Apply())
	assert.DirExists(t, filepath.Join(dir, "x", "d"))
}

func TestPlanApplyMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := planFor(t, rename.New(filepath.Join(dir, "nope"), filepath.Join(dir, "new"))).Apply()

	var applyErr *rename.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, rename.KindIO, applyErr.Kind)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, nomerrors.IsErrorCode(err, nomerrors.ErrRenameIO))
	assert.Contains(t, err.Error(), "failed to rename")
}

func TestPlanApplyOnce(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	writeFile(t, oldPath, "content")

	plan := planFor(t, rename.New(oldPath, newPath))
	require.NoError(t, plan.Apply())

	writeFile(t, oldPath, "again")
	assert.ErrorIs(t, plan.Apply(), rename.ErrPlanConsumed)
	assert.FileExists(t, oldPath)
}

func TestPlanApplySwapFails(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	writeFile(t, a, "a")
	writeFile(t, b, "b")

	err := planFor(t, rename.New(a, b), rename.New(b, a)).Apply()
	assert.ErrorIs(t, err, rename.ErrTargetExists)

	got, err := os.ReadFile(a)
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))
}

func TestPlanApplyMemoryFS(t *testing.T) {
	fsys := filesystem.NewMemoryFS()
	require.NoError(t, fsys.MkdirAll("/in", 0755))
	require.NoError(t, fsys.WriteFile("/in/a", []byte("a"), 0644))

	r := rename.NewRenamer(rename.WithFS(fsys))
	r.Add("/in/a", "/out/deep/a")
	plan, err := r.Plan()
	require.NoError(t, err)
	require.NoError(t, plan.Apply())

	got, err := fsys.ReadFile("/out/deep/a")
	require.NoError(t, err)
	assert.Equal(t, []byte("a"), got)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "none", rename.DecisionNone.String())
	assert.Equal(t, "yes", rename.DecisionYes.String())
	assert.Equal(t, "no", rename.DecisionNo.String())
}
