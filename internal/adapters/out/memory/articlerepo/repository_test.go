package articlerepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/memory/articlerepo"
	"ordering/internal/core/domain/model/article"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedArticle(t *testing.T, id kernel.ArticleID, description string) *article.Article {
	t.Helper()
	a, err := article.NewArticle(id, description)
	require.NoError(t, err)
	return a
}

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should store and retrieve articles", func(t *testing.T) {
		repo := articlerepo.NewRepository()
		a := storedArticle(t, "SKU-458362", "Tasse")

		require.NoError(t, repo.Add(ctx, a))

		got, err := repo.Get(ctx, "SKU-458362")
		require.NoError(t, err)
		assert.Same(t, a, got)

		_, err = repo.Get(ctx, "SKU-000001")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject nil articles and duplicate ids", func(t *testing.T) {
		repo := articlerepo.NewRepository()
		require.Error(t, repo.Add(ctx, nil))

		require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-458362", "Tasse")))
		err := repo.Add(ctx, storedArticle(t, "SKU-458362", "Becher"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should preserve insertion order", func(t *testing.T) {
		repo := articlerepo.NewRepository()
		require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-458362", "Tasse")))
		require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-693856", "Becher")))

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Tasse", all[0].Description())
		assert.Equal(t, "Becher", all[1].Description())
	})
}

func TestRepository_FindBySpec(t *testing.T) {
	ctx := context.Background()
	repo := articlerepo.NewRepository()
	require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-458362", "Tasse")))
	require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-693856", "Buch 'Java'")))
	require.NoError(t, repo.Add(ctx, storedArticle(t, "SKU-518957", "Buch 'UML'")))

	t.Run("should prefer an exact id match", func(t *testing.T) {
		a, err := repo.FindBySpec(ctx, "SKU-693856")

		require.NoError(t, err)
		assert.Equal(t, "Buch 'Java'", a.Description())
	})

	t.Run("should match a description fragment, first insertion wins", func(t *testing.T) {
		a, err := repo.FindBySpec(ctx, "Tasse")
		require.NoError(t, err)
		assert.Equal(t, kernel.ArticleID("SKU-458362"), a.ID())

		a, err = repo.FindBySpec(ctx, "Buch")
		require.NoError(t, err)
		assert.Equal(t, kernel.ArticleID("SKU-693856"), a.ID())
	})

	t.Run("should report specs with no match", func(t *testing.T) {
		_, err := repo.FindBySpec(ctx, "Kanne")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject an empty spec", func(t *testing.T) {
		_, err := repo.FindBySpec(ctx, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
