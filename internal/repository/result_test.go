package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/apologies/internal/entity"
	"github.com/rocketscienceinc/apologies/testing/suite"
)

func TestResultRepository(t *testing.T) {
	t.Run("Tally is empty before any win", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// When: the tally is read
		tally, err := resultRepo.Tally(ctx)

		// Then: both maps are empty
		require.NoError(t, err)
		assert.Empty(t, tally.ByColor)
		assert.Empty(t, tally.ByCharacter)
	})

	t.Run("RecordWin counts by color and character", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)

		// Given: three recorded wins
		require.NoError(t, resultRepo.RecordWin(ctx, entity.Red, "reward"))
		require.NoError(t, resultRepo.RecordWin(ctx, entity.Red, "random"))
		require.NoError(t, resultRepo.RecordWin(ctx, entity.Blue, "reward"))

		// When: the tally is read
		tally, err := resultRepo.Tally(ctx)

		// Then: every win is counted once per key
		require.NoError(t, err)
		assert.Equal(t, map[entity.Color]int64{entity.Red: 2, entity.Blue: 1}, tally.ByColor)
		assert.Equal(t, map[string]int64{"reward": 2, "random": 1}, tally.ByCharacter)
	})

	t.Run("Reset clears the tally", func(t *testing.T) {
		ctx, st := suite.New(t)

		resultRepo := NewResultRepository(st.Storage)
		require.NoError(t, resultRepo.RecordWin(ctx, entity.Green, "random"))

		// When: the results are reset
		err := resultRepo.Reset(ctx)
		require.NoError(t, err)

		// Then: nothing is counted
		tally, err := resultRepo.Tally(ctx)
		require.NoError(t, err)
		assert.Empty(t, tally.ByColor)
		assert.Empty(t, tally.ByCharacter)
	})
}
