package montecarlo

import "github.com/fiscal-sim/fiscal-sim/sim"

// trackedVariable is one YearState figure sampled across trials.
type trackedVariable struct {
	name string
	// distribution marks variables whose raw samples are kept for histograms.
	distribution bool
	extract      func(ys *sim.YearState) float64
}

// trackedVariables is the fixed set of figures summarised per year.
// The names match the YearState JSON fields they read.
var trackedVariables = []trackedVariable{
	{name: "ingresos_totales", extract: func(ys *sim.YearState) float64 { return ys.TotalRevenue }},
	{name: "gastos_totales", extract: func(ys *sim.YearState) float64 { return ys.TotalExpenditure }},
	{name: "deficit_superavit", distribution: true, extract: func(ys *sim.YearState) float64 { return ys.Deficit }},
	{name: "deuda_total", extract: func(ys *sim.YearState) float64 { return ys.TotalDebt }},
	{name: "deuda_externa", extract: func(ys *sim.YearState) float64 { return ys.ExternalDebt }},
	{name: "deuda_interna", extract: func(ys *sim.YearState) float64 { return ys.InternalDebt }},
	{name: "delta_deuda_externa", extract: func(ys *sim.YearState) float64 { return ys.ExternalDebtDelta }},
	{name: "delta_deuda_interna", extract: func(ys *sim.YearState) float64 { return ys.InternalDebtDelta }},
	{name: "deuda_pib_ratio", distribution: true, extract: func(ys *sim.YearState) float64 { return ys.DebtToGDP }},
	{name: "intereses_totales", extract: func(ys *sim.YearState) float64 { return ys.TotalInterest }},
	{name: "capacidad_pago", extract: func(ys *sim.YearState) float64 { return ys.DebtServiceCapacity }},
	{name: "rin", distribution: true, extract: func(ys *sim.YearState) float64 { return ys.Reserves }},
	{name: "rin_meses_importacion", extract: func(ys *sim.YearState) float64 { return ys.ReserveMonths }},
	{name: "deficit_pib_ratio", extract: func(ys *sim.YearState) float64 { return ys.DeficitToGDP }},
	{name: "presion_tributaria", extract: func(ys *sim.YearState) float64 { return ys.TaxPressure }},
	{name: "tipo_cambio", extract: func(ys *sim.YearState) float64 { return ys.ExchangeRate }},
	{name: "ing_gas", extract: func(ys *sim.YearState) float64 { return ys.GasRevenue }},
	{name: "ing_mineria_total", extract: func(ys *sim.YearState) float64 { return ys.MiningRevenue }},
	{name: "ing_iva", extract: func(ys *sim.YearState) float64 { return ys.VATRevenue }},
	{name: "ing_iue", extract: func(ys *sim.YearState) float64 { return ys.IUERevenue }},
	{name: "gasto_subsidio_combustibles", extract: func(ys *sim.YearState) float64 { return ys.FuelSubsidy }},
}

// TrackedVariableNames returns the names of the summarised variables in
// their fixed order.
func TrackedVariableNames() []string {
	names := make([]string, len(trackedVariables))
	for i, v := range trackedVariables {
		names[i] = v.name
	}
	return names
}

// sampleMatrix holds values[variable][year][trial]. Each trial writes only its
// own trial column, so concurrent trials never touch the same element.
type sampleMatrix struct {
	values [][][]float64
}

func newSampleMatrix(years, trials int) *sampleMatrix {
	m := &sampleMatrix{values: make([][][]float64, len(trackedVariables))}
	for v := range m.values {
		m.values[v] = make([][]float64, years)
		for y := range m.values[v] {
			m.values[v][y] = make([]float64, trials)
		}
	}
	return m
}

func (m *sampleMatrix) record(trial int, states []sim.YearState) {
	for y := range states {
		for v, tv := range trackedVariables {
			m.values[v][y][trial] = tv.extract(&states[y])
		}
	}
}
