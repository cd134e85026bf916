package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiscal-sim/fiscal-sim/sim/internal/testutil"
)

func TestComputeRevenue_ZeroDraw_HandComputedLines(t *testing.T) {
	// GIVEN the test calibration and Z=0 with no shocks
	p := testParameters()

	// WHEN revenue is computed
	r := ComputeRevenue(p, 0)

	// THEN TC=7 and gas gross = 100·5·7 = 3500
	assert.Equal(t, 7.0, r.ExchangeRate)
	assert.Equal(t, 3500.0, r.Gas.Gross)
	assert.InDelta(t, 1120.0, r.Gas.IDH, 1e-9)
	assert.InDelta(t, 630.0, r.Gas.Royalties, 1e-9)
	assert.InDelta(t, 1750.0, r.Gas.Total, 1e-9)

	// AND each mineral pays volume·price·TC·10%
	assert.InDelta(t, 10*100*7*0.10, r.Gold.Revenue, 1e-9)
	assert.InDelta(t, 20*50*7*0.10, r.Silver.Revenue, 1e-9)
	assert.InDelta(t, 30*20*7*0.10, r.Zinc.Revenue, 1e-9)
	assert.InDelta(t, 5*200*7*0.10, r.Tin.Revenue, 1e-9)
	assert.InDelta(t, 40*10*7*0.10, r.Lead.Revenue, 1e-9)

	// AND the tax lines are their bases
	assert.Equal(t, 13000.0, r.Taxes.Lines)
	assert.InDelta(t, 13000.0+1120.0, r.Taxes.Total, 1e-9)
}

func TestComputeRevenue_ExportsIncludeRoyaltiesButNotIDH(t *testing.T) {
	r := ComputeRevenue(testParameters(), 0.3)

	minerals := r.Gold.Revenue + r.Silver.Revenue + r.Zinc.Revenue + r.Tin.Revenue + r.Lead.Revenue
	assert.InDelta(t, minerals+r.Gas.Royalties, r.Exports, 1e-9)
	assert.Equal(t, r.Gas.IDH, r.Taxes.IDH)
}

func TestComputeRevenue_TotalAddsIDHOnTopOfTaxTotal(t *testing.T) {
	// GIVEN a tax total that already includes IDH as its fifteenth line
	r := ComputeRevenue(testParameters(), -0.8)

	// THEN total revenue adds gas IDH again on top of exports and the tax total
	assert.InDelta(t, r.Exports+r.Taxes.Total+r.Gas.IDH, r.Total, 1e-9)
	assert.InDelta(t, r.Exports+r.Taxes.Lines+2*r.Gas.IDH, r.Total, 1e-9)
}

func TestComputeRevenue_ZeroDraw_Total(t *testing.T) {
	// exports 3430 + tax lines 13000 + IDH line 1120 + gas IDH 1120
	r := ComputeRevenue(testParameters(), 0)

	assert.InDelta(t, 18670.0, r.Total, 1e-9)
}

func TestComputeRevenue_ReferenceCalibration_Total(t *testing.T) {
	// GIVEN the reference calibration at Z=0
	d, err := LoadDefaults(testutil.DefaultsPath(t))
	require.NoError(t, err)

	// WHEN revenue is computed
	r := ComputeRevenue(&d.Parameters, 0)

	// THEN the total carries gas IDH on top of the tax total
	assert.Greater(t, r.Gas.IDH, 0.0)
	testutil.AssertFloat64Equal(t, "ingresos totales", r.Exports+r.Taxes.Total+r.Gas.IDH, r.Total, 1e-12)
	testutil.AssertFloat64Equal(t, "idh sobre total tributario", r.Gas.IDH, r.Total-(r.Exports+r.Taxes.Total), 1e-9)
}

func TestComputeRevenue_AffineInZ(t *testing.T) {
	// GIVEN Z=1: TC=8, gas volume=110, gas price=6
	r := ComputeRevenue(testParameters(), 1)

	assert.Equal(t, 8.0, r.ExchangeRate)
	assert.Equal(t, 110.0, r.Gas.Volume)
	assert.Equal(t, 6.0, r.Gas.PriceUSD)
	assert.InDelta(t, 110*6*8.0, r.Gas.Gross, 1e-9)
	assert.Equal(t, 1100.0, r.Taxes.VATDomestic)
	assert.Equal(t, 1.0, r.Z)
}

func TestComputeRevenue_PriceShocksScalePricesOnly(t *testing.T) {
	// GIVEN a +10% gas shock and a -50% gold shock
	base := testParameters()
	shocked := base.WithShocks(Shocks{Gas: 10, Gold: -50})

	r0 := ComputeRevenue(base, 0)
	r1 := ComputeRevenue(shocked, 0)

	// THEN prices move by the shock and volumes do not
	assert.InDelta(t, 5.5, r1.Gas.PriceUSD, 1e-12)
	assert.Equal(t, r0.Gas.Volume, r1.Gas.Volume)
	assert.InDelta(t, r0.Gold.Revenue/2, r1.Gold.Revenue, 1e-9)
	// AND untouched commodities and tax lines are unchanged
	assert.Equal(t, r0.Silver.Revenue, r1.Silver.Revenue)
	assert.Equal(t, r0.Taxes.Lines, r1.Taxes.Lines)
	// AND the receiver of WithShocks was not mutated
	assert.Equal(t, Shocks{}, base.Shocks)
}

func TestComputeRevenue_ExchangeRateShock(t *testing.T) {
	p := testParameters().WithShocks(Shocks{ExchangeRate: 10})
	r := ComputeRevenue(p, 0)

	assert.InDelta(t, 7.7, r.ExchangeRate, 1e-12)
	assert.InDelta(t, 100*5*7.7, r.Gas.Gross, 1e-9)
	assert.InDelta(t, 7.7, ExchangeRateAt(p, 0), 1e-12)
}
