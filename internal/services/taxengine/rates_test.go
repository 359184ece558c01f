package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateTable(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := NewRateTable(nil)
		assert.ErrorIs(t, err, ErrEmptyRateTable)
	})

	t.Run("duplicate canton code", func(t *testing.T) {
		_, err := NewRateTable([]CantonRates{
			{Code: "ZH", Name: "Zurich"},
			{Code: "ZH", Name: "Zurich again"},
		})
		assert.ErrorIs(t, err, ErrDuplicateCanton)
	})

	t.Run("input slice is not retained", func(t *testing.T) {
		input := []CantonRates{{Code: "ZH", Name: "Zurich", CorporateIncomeTaxRate: 6.5}}
		table, err := NewRateTable(input)
		require.NoError(t, err)

		input[0].CorporateIncomeTaxRate = 99

		canton, err := table.Canton("ZH")
		require.NoError(t, err)
		assert.Equal(t, 6.5, canton.CorporateIncomeTaxRate)
	})
}

func TestDefaultRateTable(t *testing.T) {
	table := DefaultRateTable()

	assert.Equal(t, 26, table.Len(), "all 26 cantons are bundled")

	zh, err := table.Canton("ZH")
	require.NoError(t, err)
	assert.Equal(t, "Zurich", zh.Name)
	assert.Equal(t, "Zürich", zh.Names.DE)
	assert.Equal(t, 1.19, zh.MunicipalMultiplier)
	assert.Equal(t, 8.5, zh.FederalTaxRate)

	zg, err := table.Canton("ZG")
	require.NoError(t, err)
	assert.Equal(t, 0.76, zg.MunicipalMultiplier)

	assert.True(t, table.Has("TI"))
	assert.False(t, table.Has("XX"))

	_, err = table.Canton("XX")
	assert.ErrorIs(t, err, ErrCantonNotFound)
}

func TestRateTable_CantonsReturnsCopy(t *testing.T) {
	table := DefaultRateTable()

	cantons := table.Cantons()
	original := cantons[0].CorporateIncomeTaxRate
	cantons[0].CorporateIncomeTaxRate = 99

	assert.Equal(t, original, table.Cantons()[0].CorporateIncomeTaxRate)
}
