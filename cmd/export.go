package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fiscal-sim/fiscal-sim/sim"
	"github.com/fiscal-sim/fiscal-sim/sim/montecarlo"
)

// csvDecimals is the number of decimal places written to CSV cells.
const csvDecimals = 2

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// csvNumber rounds half away from zero to csvDecimals places using exact
// decimal arithmetic, so 0.125 is written as 0.13.
func csvNumber(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(csvDecimals)
}

// yearColumn is one CSV column of the year-by-year export.
type yearColumn struct {
	header string
	value  func(ys *sim.YearState) float64
}

var yearColumns = []yearColumn{
	{"z", func(ys *sim.YearState) float64 { return ys.Z }},
	{"tipo_cambio", func(ys *sim.YearState) float64 { return ys.ExchangeRate }},
	{"ing_gas", func(ys *sim.YearState) float64 { return ys.GasRevenue }},
	{"ing_mineria_total", func(ys *sim.YearState) float64 { return ys.MiningRevenue }},
	{"ing_impuestos_total", func(ys *sim.YearState) float64 { return ys.TaxRevenue }},
	{"ingresos_totales", func(ys *sim.YearState) float64 { return ys.TotalRevenue }},
	{"gasto_corriente", func(ys *sim.YearState) float64 { return ys.CurrentSpending }},
	{"gasto_subsidio_combustibles", func(ys *sim.YearState) float64 { return ys.FuelSubsidy }},
	{"gasto_subsidio_alimentos", func(ys *sim.YearState) float64 { return ys.FoodSubsidy }},
	{"gastos_totales", func(ys *sim.YearState) float64 { return ys.TotalExpenditure }},
	{"deficit_superavit", func(ys *sim.YearState) float64 { return ys.Deficit }},
	{"resultado_primario", func(ys *sim.YearState) float64 { return ys.PrimaryResult }},
	{"intereses_totales", func(ys *sim.YearState) float64 { return ys.TotalInterest }},
	{"deuda_externa", func(ys *sim.YearState) float64 { return ys.ExternalDebt }},
	{"deuda_interna", func(ys *sim.YearState) float64 { return ys.InternalDebt }},
	{"deuda_total", func(ys *sim.YearState) float64 { return ys.TotalDebt }},
	{"deuda_pib_ratio", func(ys *sim.YearState) float64 { return ys.DebtToGDP }},
	{"deficit_pib_ratio", func(ys *sim.YearState) float64 { return ys.DeficitToGDP }},
	{"presion_tributaria", func(ys *sim.YearState) float64 { return ys.TaxPressure }},
	{"capacidad_pago", func(ys *sim.YearState) float64 { return ys.DebtServiceCapacity }},
	{"exportaciones", func(ys *sim.YearState) float64 { return ys.Exports }},
	{"importaciones", func(ys *sim.YearState) float64 { return ys.Imports }},
	{"rin", func(ys *sim.YearState) float64 { return ys.Reserves }},
	{"rin_meses_importacion", func(ys *sim.YearState) float64 { return ys.ReserveMonths }},
	{"pib", func(ys *sim.YearState) float64 { return ys.GDP }},
}

// writeYearsCSV writes one row per simulated year. Alerts are joined with "; ".
func writeYearsCSV(w io.Writer, years []sim.YearState) error {
	cw := csv.NewWriter(w)
	header := []string{"ano"}
	for _, c := range yearColumns {
		header = append(header, c.header)
	}
	header = append(header, "alertas")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for i := range years {
		ys := &years[i]
		row := []string{strconv.Itoa(ys.Year)}
		for _, c := range yearColumns {
			row = append(row, csvNumber(c.value(ys)))
		}
		row = append(row, strings.Join(ys.Alerts, "; "))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %d: %w", ys.Year, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeMonteCarloCSV writes the statistics in long form: one row per year and
// tracked variable.
func writeMonteCarloCSV(w io.Writer, res *montecarlo.Result) error {
	cw := csv.NewWriter(w)
	header := []string{
		"ano", "variable", "promedio", "mediana", "desviacion_estandar",
		"percentil_5", "percentil_25", "percentil_75", "percentil_95", "minimo", "maximo",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	names := montecarlo.TrackedVariableNames()
	for _, ys := range res.Years {
		for _, name := range names {
			s := ys.Statistics[name]
			row := []string{
				strconv.Itoa(ys.Year), name,
				csvNumber(s.Mean), csvNumber(s.Median), csvNumber(s.StdDev),
				csvNumber(s.P5), csvNumber(s.P25), csvNumber(s.P75), csvNumber(s.P95),
				csvNumber(s.Min), csvNumber(s.Max),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row for %d/%s: %w", ys.Year, name, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
