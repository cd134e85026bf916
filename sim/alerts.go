package sim

import "fmt"

// AlertKind names one of the sustainability thresholds checked every year.
type AlertKind string

const (
	AlertDebtCeiling     AlertKind = "deuda_pib"
	AlertHighDeficit     AlertKind = "deficit_pib"
	AlertSubsidyVsGas    AlertKind = "subsidio_gas"
	AlertLowReserveCover AlertKind = "rin_meses"
)

// Alert thresholds.
const (
	DebtToGDPCeiling      = 70.0 // percent
	DeficitToGDPCeiling   = 5.0  // percent
	MinReserveMonthsCover = 3.0  // months of imports
)

// Alert is an informational threshold breach. Alerts never stop a run.
type Alert struct {
	Kind    AlertKind
	Message string
}

// alertInputs is the subset of a year's figures the thresholds look at.
type alertInputs struct {
	DebtToGDP     float64
	DeficitToGDP  float64
	FuelSubsidy   float64
	GasRevenue    float64
	ReserveMonths float64
}

// evaluateAlerts checks each threshold independently, in a fixed order.
func evaluateAlerts(in alertInputs) []Alert {
	var alerts []Alert
	if in.DebtToGDP > DebtToGDPCeiling {
		alerts = append(alerts, Alert{
			Kind:    AlertDebtCeiling,
			Message: fmt.Sprintf("⚠️ Deuda/PIB %.1f%% supera límite prudencial", in.DebtToGDP),
		})
	}
	if in.DeficitToGDP > DeficitToGDPCeiling {
		alerts = append(alerts, Alert{
			Kind:    AlertHighDeficit,
			Message: fmt.Sprintf("⚠️ Déficit/PIB %.1f%% elevado", in.DeficitToGDP),
		})
	}
	if in.FuelSubsidy > in.GasRevenue {
		alerts = append(alerts, Alert{
			Kind:    AlertSubsidyVsGas,
			Message: fmt.Sprintf("⚠️ Subsidios (%.0fM) superan ingresos gas", in.FuelSubsidy),
		})
	}
	if in.ReserveMonths < MinReserveMonthsCover {
		alerts = append(alerts, Alert{
			Kind:    AlertLowReserveCover,
			Message: fmt.Sprintf("⚠️ RIN (%.1f meses) por debajo del mínimo recomendado", in.ReserveMonths),
		})
	}
	return alerts
}
