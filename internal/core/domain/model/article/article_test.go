package article_test

import (
	"testing"

	"ordering/internal/core/domain/model/article"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	t.Run("should create article with valid id and description", func(t *testing.T) {
		a, err := article.NewArticle("SKU-458362", "Tasse")

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "SKU-458362", a.ID().String())
		assert.Equal(t, "Tasse", a.Description())
	})

	t.Run("should fail with malformed id", func(t *testing.T) {
		a, err := article.NewArticle("458362", "Tasse")

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		a, err := article.NewArticle("SKU-458362", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, a)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := article.NewArticle("", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "articleId")
		assert.Contains(t, err.Error(), "description")
	})
}

func TestArticle_Validate(t *testing.T) {
	t.Run("nil article fails validation", func(t *testing.T) {
		var a *article.Article

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, article.ErrArticleIsNotConstructed, err)
	})
}

func TestArticle_IsEqual(t *testing.T) {
	a, _ := article.NewArticle("SKU-458362", "Tasse")
	b, _ := article.NewArticle("SKU-458362", "Becher")
	c, _ := article.NewArticle("SKU-693856", "Tasse")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
