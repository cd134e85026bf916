package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alertKinds(alerts []Alert) []AlertKind {
	kinds := make([]AlertKind, len(alerts))
	for i, a := range alerts {
		kinds[i] = a.Kind
	}
	return kinds
}

func TestEvaluateAlerts_AllBreaches_FixedOrder(t *testing.T) {
	alerts := evaluateAlerts(alertInputs{
		DebtToGDP:     85,
		DeficitToGDP:  7.3,
		FuelSubsidy:   2000,
		GasRevenue:    1000,
		ReserveMonths: 1.5,
	})

	require.Len(t, alerts, 4)
	assert.Equal(t, []AlertKind{AlertDebtCeiling, AlertHighDeficit, AlertSubsidyVsGas, AlertLowReserveCover}, alertKinds(alerts))
	assert.Equal(t, "⚠️ Deuda/PIB 85.0% supera límite prudencial", alerts[0].Message)
	assert.Equal(t, "⚠️ Déficit/PIB 7.3% elevado", alerts[1].Message)
	assert.Equal(t, "⚠️ Subsidios (2000M) superan ingresos gas", alerts[2].Message)
	assert.Equal(t, "⚠️ RIN (1.5 meses) por debajo del mínimo recomendado", alerts[3].Message)
}

func TestEvaluateAlerts_ThresholdsAreStrict(t *testing.T) {
	// GIVEN every indicator exactly at its threshold
	alerts := evaluateAlerts(alertInputs{
		DebtToGDP:     DebtToGDPCeiling,
		DeficitToGDP:  DeficitToGDPCeiling,
		FuelSubsidy:   1000,
		GasRevenue:    1000,
		ReserveMonths: MinReserveMonthsCover,
	})

	// THEN nothing fires
	assert.Empty(t, alerts)
}

func TestEvaluateAlerts_Independent(t *testing.T) {
	tests := []struct {
		name string
		in   alertInputs
		want AlertKind
	}{
		{"debt", alertInputs{DebtToGDP: 70.1, ReserveMonths: 10}, AlertDebtCeiling},
		{"deficit", alertInputs{DeficitToGDP: 5.01, ReserveMonths: 10}, AlertHighDeficit},
		{"subsidy", alertInputs{FuelSubsidy: 1, ReserveMonths: 10}, AlertSubsidyVsGas},
		{"reserves", alertInputs{ReserveMonths: 2.99}, AlertLowReserveCover},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := evaluateAlerts(tt.in)
			assert.Equal(t, []AlertKind{tt.want}, alertKinds(alerts))
		})
	}
}
