package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeExpenditure_SubsidyEnabled_HandComputed(t *testing.T) {
	// GIVEN Z=0, TC=7
	e := ComputeExpenditure(testParameters(), 0, 7)

	// THEN gasoline = (10·7 − 50)·100, diesel = (8·7 − 40)·200
	assert.Equal(t, 2000.0, e.GasolineSubsidy)
	assert.Equal(t, 3200.0, e.DieselSubsidy)
	assert.Equal(t, 5200.0, e.FuelSubsidy)
	assert.Equal(t, 50_000.0, e.Current)
	assert.Equal(t, 500.0, e.FoodSubsidy)
	assert.Equal(t, 55_700.0, e.Total)
}

func TestComputeExpenditure_SubsidyDisabled_AllFuelFiguresZero(t *testing.T) {
	p := testParameters()
	p.FuelSubsidy.Enabled = false

	for _, z := range []float64{-2, -0.5, 0, 0.7, 3} {
		e := ComputeExpenditure(p, z, 7)

		assert.Zero(t, e.GasolineImportPrice)
		assert.Zero(t, e.DieselImportPrice)
		assert.Zero(t, e.GasolineImportVolume)
		assert.Zero(t, e.DieselImportVolume)
		assert.Zero(t, e.GasolineSubsidy)
		assert.Zero(t, e.DieselSubsidy)
		assert.Zero(t, e.FuelSubsidy)
		assert.Equal(t, e.Current+e.FoodSubsidy, e.Total)
	}
}

func TestComputeExpenditure_TotalIsSumOfLines(t *testing.T) {
	p := testParameters()
	for _, z := range []float64{-1.5, 0.25, 2} {
		e := ComputeExpenditure(p, z, 6.5)
		assert.Equal(t, e.Current+e.FuelSubsidy+e.FoodSubsidy, e.Total)
	}
}

func TestComputeExpenditure_NegativeSubsidyWhenSalePriceAboveImportCost(t *testing.T) {
	// GIVEN a domestic price above import cost
	p := testParameters()
	p.FuelSubsidy.Gasoline.SalePrice = 1000

	e := ComputeExpenditure(p, 0, 7)

	// THEN the line goes negative (a net gain) rather than being clamped
	assert.Equal(t, (70.0-1000)*100, e.GasolineSubsidy)
}
