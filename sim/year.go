package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fiscal-sim/fiscal-sim/sim/trace"
)

const (
	// importShareOfSpending estimates imports as a share of total expenditure.
	importShareOfSpending = 0.25
	// NoInterestCapacity is reported as debt-service capacity when no interest is due.
	NoInterestCapacity = 999.0
)

// YearState is the complete fiscal position of one simulated year.
// It is built once by NextYear and never mutated afterwards; the next year
// only reads it.
type YearState struct {
	Year         int     `json:"ano"`
	Z            float64 `json:"z"`
	ExchangeRate float64 `json:"tipo_cambio"`

	Revenue     RevenueLines     `json:"ingresos"`
	Expenditure ExpenditureLines `json:"gastos"`
	Financing   Financing        `json:"financiamiento"`

	// Revenue report
	GasRevenue         float64 `json:"ing_gas"`
	ZincRevenue        float64 `json:"ing_zinc"`
	TinRevenue         float64 `json:"ing_estano"`
	GoldRevenue        float64 `json:"ing_oro"`
	SilverRevenue      float64 `json:"ing_plata"`
	LeadRevenue        float64 `json:"ing_plomo"`
	HydrocarbonRevenue float64 `json:"ing_hidrocarburos_total"`
	MiningRevenue      float64 `json:"ing_mineria_total"`
	VATRevenue         float64 `json:"ing_iva"`
	IUERevenue         float64 `json:"ing_iue"`
	ITRevenue          float64 `json:"ing_it"`
	ITFRevenue         float64 `json:"ing_itf"`
	RCIVARevenue       float64 `json:"ing_rc_iva"`
	ICERevenue         float64 `json:"ing_ice"`
	CustomsRevenue     float64 `json:"ing_ga"`
	TaxRevenue         float64 `json:"ing_impuestos_total"`
	TotalRevenue       float64 `json:"ingresos_totales"`

	// Expenditure report
	CurrentSpending  float64 `json:"gasto_corriente"`
	FuelSubsidy      float64 `json:"gasto_subsidio_combustibles"`
	FoodSubsidy      float64 `json:"gasto_subsidio_alimentos"`
	ExternalInterest float64 `json:"intereses_deuda_externa"`
	InternalInterest float64 `json:"intereses_deuda_interna"`
	TotalInterest    float64 `json:"intereses_totales"`
	TotalExpenditure float64 `json:"gastos_totales"`

	// Fiscal balance; positive Deficit means deficit.
	Deficit       float64 `json:"deficit_superavit"`
	PrimaryResult float64 `json:"resultado_primario"`

	// Debt
	TotalDebt           float64 `json:"deuda_total"`
	ExternalDebt        float64 `json:"deuda_externa"`
	InternalDebt        float64 `json:"deuda_interna"`
	DebtToGDP           float64 `json:"deuda_pib_ratio"`
	ExternalDebtDelta   float64 `json:"delta_deuda_externa"`
	InternalDebtDelta   float64 `json:"delta_deuda_interna"`
	ExternalDebtToGDP   float64 `json:"deuda_externa_pib"`
	InternalDebtToGDP   float64 `json:"deuda_interna_pib"`
	ExternalShareOfDebt float64 `json:"ratio_externa_total"`
	InternalShareOfDebt float64 `json:"ratio_interna_total"`
	InterestToRevenue   float64 `json:"intereses_ingresos_ratio"`

	// External sector
	Exports       float64 `json:"exportaciones"`
	Imports       float64 `json:"importaciones"`
	TradeBalance  float64 `json:"saldo_comercial"`
	Reserves      float64 `json:"rin"`
	ReserveMonths float64 `json:"rin_meses_importacion"`

	// Output
	GDP             float64 `json:"pib"`
	RealGDP         float64 `json:"pib_real"`
	EffectiveGrowth float64 `json:"crecimiento_pib_efectivo"`

	// Sustainability ratios
	DeficitToGDP        float64 `json:"deficit_pib_ratio"`
	TaxPressure         float64 `json:"presion_tributaria"`
	DebtServiceCapacity float64 `json:"capacidad_pago"`

	Alerts []string `json:"cambios"`
}

// priorStocks are the stocks a year starts from.
type priorStocks struct {
	externalDebt float64
	internalDebt float64
	reserves     float64
	gdp          float64
}

func resolvePrior(p *SimulationParameters, prior *YearState) priorStocks {
	if prior == nil {
		return priorStocks{
			externalDebt: p.InitialExternalDebt,
			internalDebt: p.InitialInternalDebt,
			reserves:     p.InitialReserves,
			gdp:          p.InitialGDP,
		}
	}
	return priorStocks{
		externalDebt: prior.ExternalDebt,
		internalDebt: prior.InternalDebt,
		reserves:     prior.Reserves,
		gdp:          prior.GDP,
	}
}

// NextYear produces year number index (0-based) from the previous year's state,
// or from the initial parameters when prior is nil. It draws exactly one Z from
// sampler and appends one step to log (log may be nil).
func NextYear(p *SimulationParameters, index int, prior *YearState, sampler Sampler, log *trace.StepLog) YearState {
	year := p.BaseYear + index

	// 1. revenue, 2. expenditure: same Z, same exchange rate
	z := sampler.Sample()
	rev := ComputeRevenue(p, z)
	exp := ComputeExpenditure(p, z, rev.ExchangeRate)

	// 3. prior stocks, 4. GDP
	stocks := resolvePrior(p, prior)
	gdp := stocks.gdp * (1 + p.GDPGrowth/100)

	// 5. debt and reserves
	// reserves accrue on all export earnings, gas gross revenue included
	exports := rev.Gas.Gross + rev.Exports
	fin := UpdateDebt(DebtInputs{
		Revenue:              rev.Total,
		Expenditure:          exp.Total,
		PriorExternalDebt:    stocks.externalDebt,
		PriorInternalDebt:    stocks.internalDebt,
		ExternalInterestRate: p.ExternalInterestRate / 100,
		InternalInterestRate: p.InternalInterestRate / 100,
		Exports:              exports,
		PriorReserves:        stocks.reserves,
		ExchangeRate:         rev.ExchangeRate,
		GDP:                  gdp,
	})

	// 6. ratios
	imports := exp.Total * importShareOfSpending
	ys := YearState{
		Year:         year,
		Z:            z,
		ExchangeRate: rev.ExchangeRate,
		Revenue:      rev,
		Expenditure:  exp,
		Financing:    fin,

		GasRevenue:         rev.Gas.Total,
		ZincRevenue:        rev.Zinc.Revenue,
		TinRevenue:         rev.Tin.Revenue,
		GoldRevenue:        rev.Gold.Revenue,
		SilverRevenue:      rev.Silver.Revenue,
		LeadRevenue:        rev.Lead.Revenue,
		HydrocarbonRevenue: rev.Gas.Total,
		MiningRevenue:      rev.Exports - rev.Gas.Royalties,
		VATRevenue:         rev.Taxes.VATDomestic + rev.Taxes.VATImports,
		IUERevenue:         rev.Taxes.CorporateIncome,
		ITRevenue:          rev.Taxes.Transactions,
		ITFRevenue:         rev.Taxes.FinancialTransactions,
		RCIVARevenue:       rev.Taxes.VATComplementary,
		ICERevenue:         rev.Taxes.ExciseDomestic + rev.Taxes.ExciseImports,
		CustomsRevenue:     rev.Taxes.Customs,
		TaxRevenue:         rev.Taxes.Total,
		TotalRevenue:       rev.Total,

		CurrentSpending:  exp.Current,
		FuelSubsidy:      exp.FuelSubsidy,
		FoodSubsidy:      exp.FoodSubsidy,
		ExternalInterest: fin.ExternalInterest,
		InternalInterest: fin.InternalInterest,
		TotalInterest:    fin.Interest,
		TotalExpenditure: exp.Total,

		Deficit:       fin.Deficit,
		PrimaryResult: fin.Deficit - fin.Interest,

		TotalDebt:         fin.TotalDebt,
		ExternalDebt:      fin.ExternalDebt,
		InternalDebt:      fin.InternalDebt,
		ExternalDebtDelta: fin.ExternalDebt - stocks.externalDebt,
		InternalDebtDelta: fin.InternalDebt - stocks.internalDebt,
		ExternalDebtToGDP: fin.ExternalDebtToGDP,
		InternalDebtToGDP: fin.InternalDebtToGDP,

		Exports:      exports,
		Imports:      imports,
		TradeBalance: exports - imports,
		Reserves:     fin.Reserves,

		GDP:             gdp,
		RealGDP:         gdp,
		EffectiveGrowth: p.GDPGrowth,

		DebtServiceCapacity: NoInterestCapacity,
	}

	if gdp > 0 {
		ys.DebtToGDP = fin.TotalDebt / gdp * 100
		ys.DeficitToGDP = fin.Deficit / gdp * 100
		ys.TaxPressure = rev.Taxes.Total / gdp * 100
	}
	if rev.ExchangeRate > 0 {
		if monthlyImportsUSD := imports / rev.ExchangeRate / 12; monthlyImportsUSD > 0 {
			ys.ReserveMonths = fin.Reserves / monthlyImportsUSD
		}
	}
	if fin.TotalDebt != 0 {
		ys.ExternalShareOfDebt = fin.ExternalDebt / fin.TotalDebt * 100
		ys.InternalShareOfDebt = fin.InternalDebt / fin.TotalDebt * 100
	}
	if fin.Interest > 0 {
		ys.DebtServiceCapacity = rev.Total / fin.Interest
	}
	if rev.Total > 0 {
		ys.InterestToRevenue = fin.Interest / rev.Total * 100
	}

	// 7. alerts
	alerts := evaluateAlerts(alertInputs{
		DebtToGDP:     ys.DebtToGDP,
		DeficitToGDP:  ys.DeficitToGDP,
		FuelSubsidy:   exp.FuelSubsidy,
		GasRevenue:    rev.Gas.Total,
		ReserveMonths: ys.ReserveMonths,
	})
	ys.Alerts = make([]string, 0, len(alerts))
	variables := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ys.Alerts = append(ys.Alerts, a.Message)
		variables = append(variables, string(a.Kind))
	}

	// 8. step record
	if log.Enabled() {
		log.Record(trace.SimulationStep{
			Description: fmt.Sprintf("Año %d: Z=%.3f, TC=%.2f, Déficit=%.0fM, RIN=%.0fM USD",
				year, z, rev.ExchangeRate, fin.Deficit, fin.Reserves),
			Year:      year,
			Variables: variables,
			Impacts:   ys.Alerts,
		})
	}
	logrus.Debugf("[year %d] z=%.4f tc=%.4f revenue=%.0f expenditure=%.0f debt/gdp=%.2f rin=%.0f alerts=%d",
		year, z, rev.ExchangeRate, rev.Total, exp.Total, ys.DebtToGDP, fin.Reserves, len(alerts))

	return ys
}
