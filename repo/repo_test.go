package repo_test

import (
	"testing"

	"github.com/akerr/qit/ginternals"
	"github.com/akerr/qit/repo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a repo in an empty dir", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		r, err := repo.Create(fs, "/project")
		require.NoError(t, err)
		assert.Equal(t, "/project", r.Root())

		exists, err := afero.DirExists(fs, "/project/.git/objects")
		require.NoError(t, err)
		assert.True(t, exists)

		head, err := afero.ReadFile(fs, "/project/.git/HEAD")
		require.NoError(t, err)
		assert.Equal(t, "ref: refs/heads/main\n", string(head))
	})

	t.Run("fails on a non-empty .git directory", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/project/.git/objects", 0o755))

		_, err := repo.Create(fs, "/project")
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrNotEmpty)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("opens a repo created by Create", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		_, err := repo.Create(fs, "/project")
		require.NoError(t, err)

		r, err := repo.Open(fs, "/project", false)
		require.NoError(t, err)
		assert.Equal(t, "/project/.git", r.GitDir())
	})

	t.Run("fails when .git is missing", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/project", 0o755))

		_, err := repo.Open(fs, "/project", false)
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrNotARepository)
	})

	t.Run("force skips all checks", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/project", 0o755))

		_, err := repo.Open(fs, "/project", true)
		require.NoError(t, err)
	})
}

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("walks up to find the repo", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		_, err := repo.Create(fs, "/project")
		require.NoError(t, err)
		require.NoError(t, fs.MkdirAll("/project/src/pkg", 0o755))

		r, err := repo.Find(fs, "/project/src/pkg", true)
		require.NoError(t, err)
		assert.Equal(t, "/project", r.Root())
	})

	t.Run("not required returns nil without error", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/tmp/nowhere", 0o755))

		r, err := repo.Find(fs, "/tmp/nowhere", false)
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("required fails when no repo exists", func(t *testing.T) {
		t.Parallel()

		fs := afero.NewMemMapFs()
		require.NoError(t, fs.MkdirAll("/tmp/nowhere", 0o755))

		_, err := repo.Find(fs, "/tmp/nowhere", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ginternals.ErrNotARepository)
	})
}
