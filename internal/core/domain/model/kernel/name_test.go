package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	t.Run("should split last-name-first input on comma", func(t *testing.T) {
		name, err := kernel.ParseName("Meyer, Eric")

		require.NoError(t, err)
		assert.Equal(t, "Eric", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should split last-name-first input on semicolon", func(t *testing.T) {
		name, err := kernel.ParseName("Meyer; Anne")

		require.NoError(t, err)
		assert.Equal(t, "Anne", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should take final token as last name without separator", func(t *testing.T) {
		name, err := kernel.ParseName("Eric Meyer")

		require.NoError(t, err)
		assert.Equal(t, "Eric", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should collapse surrounding and interior white space", func(t *testing.T) {
		name, err := kernel.ParseName("  Eric   Meyer  ")

		require.NoError(t, err)
		assert.Equal(t, "Eric", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should join multiple leading tokens into first name", func(t *testing.T) {
		name, err := kernel.ParseName("Nadine     Ulla     Blumenfeld")

		require.NoError(t, err)
		assert.Equal(t, "Nadine Ulla", name.First())
		assert.Equal(t, "Blumenfeld", name.Last())
	})

	t.Run("should keep hyphenated tokens intact", func(t *testing.T) {
		name, err := kernel.ParseName("Schulz-Mueller, Tim Anton")

		require.NoError(t, err)
		assert.Equal(t, "Tim Anton", name.First())
		assert.Equal(t, "Schulz-Mueller", name.Last())
	})

	t.Run("should yield empty first name for single token", func(t *testing.T) {
		name, err := kernel.ParseName("Meyer")

		require.NoError(t, err)
		assert.Equal(t, "", name.First())
		assert.Equal(t, "Meyer", name.Last())
		assert.Equal(t, "Meyer", name.Full())
	})

	t.Run("should trim quotes around the whole name", func(t *testing.T) {
		name, err := kernel.ParseName(" 'Eric Meyer'  ")

		require.NoError(t, err)
		assert.Equal(t, "Eric", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should fail on empty input", func(t *testing.T) {
		_, err := kernel.ParseName("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail on blank input", func(t *testing.T) {
		_, err := kernel.ParseName("   ")

		require.Error(t, err)
	})

	t.Run("should fail when last name contains digits", func(t *testing.T) {
		_, err := kernel.ParseName("Eric M3yer")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewName(t *testing.T) {
	t.Run("should accept empty first name", func(t *testing.T) {
		name, err := kernel.NewName("", "Meyer")

		require.NoError(t, err)
		assert.Equal(t, "", name.First())
		assert.Equal(t, "Meyer", name.Last())
	})

	t.Run("should reject empty last name", func(t *testing.T) {
		_, err := kernel.NewName("Eric", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lastName")
	})

	t.Run("should accept short and dotted name parts", func(t *testing.T) {
		for _, last := range []string{"E", "E.", "von-A", "Ulla-Nadine"} {
			name, err := kernel.NewName("", last)

			require.NoError(t, err, "last name %q", last)
			assert.Equal(t, last, name.Last())
		}
	})

	t.Run("should normalize quoted parts", func(t *testing.T) {
		name, err := kernel.NewName("  'Anne'  ", "  Bayer ")

		require.NoError(t, err)
		assert.Equal(t, "Anne", name.First())
		assert.Equal(t, "Bayer", name.Last())
	})
}

func TestName_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var name kernel.Name

		err := name.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrNameIsNotConstructed, err)
	})

	t.Run("constructed name passes validation", func(t *testing.T) {
		name, _ := kernel.ParseName("Eric Meyer")

		require.NoError(t, name.Validate())
	})
}

func TestName_IsEqual(t *testing.T) {
	a, _ := kernel.ParseName("Meyer, Eric")
	b, _ := kernel.ParseName("Eric Meyer")
	c, _ := kernel.ParseName("Anne Bayer")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
