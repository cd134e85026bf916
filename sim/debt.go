package sim

const (
	// externalFinancingShare of each year's balance is absorbed by external
	// debt; the remainder goes to internal debt.
	externalFinancingShare = 0.7
	// reserveExportRetention is the share of USD export earnings that accrues to RIN.
	reserveExportRetention = 0.30
	// reserveDeficitDrawdown is the share of a deficit (in USD) financed out of RIN.
	reserveDeficitDrawdown = 0.50
)

// DebtInputs are the flows and prior stocks the updater folds together.
// Interest rates are fractions (0.043), not percentages.
type DebtInputs struct {
	Revenue              float64
	Expenditure          float64
	PriorExternalDebt    float64
	PriorInternalDebt    float64
	ExternalInterestRate float64
	InternalInterestRate float64
	Exports              float64 // Bs
	PriorReserves        float64 // USD
	ExchangeRate         float64
	GDP                  float64
}

// Financing is the updated debt and reserve position of one year.
type Financing struct {
	// Deficit is expenditure minus revenue: positive means deficit.
	Deficit float64 `json:"deficit"`
	Surplus float64 `json:"superavit"`

	ExternalDebt float64 `json:"deuda_externa"`
	InternalDebt float64 `json:"deuda_interna"`
	TotalDebt    float64 `json:"deuda_total"`

	ExternalInterest float64 `json:"intereses_externa"`
	InternalInterest float64 `json:"intereses_interna"`
	Interest         float64 `json:"intereses"`

	ExternalDebtToGDP float64 `json:"deuda_externa_pib"`
	InternalDebtToGDP float64 `json:"deuda_interna_pib"`

	// Reserves is never negative.
	Reserves float64 `json:"rin"`
}

// UpdateDebt rolls debt stocks and reserves forward by one year.
func UpdateDebt(in DebtInputs) Financing {
	// positive = surplus in this internal convention
	balance := in.Revenue - in.Expenditure

	extInterest := in.PriorExternalDebt * in.ExternalInterestRate
	intInterest := in.PriorInternalDebt * in.InternalInterestRate

	// A deficit (negative balance) adds to both stocks, a surplus retires them.
	external := in.PriorExternalDebt*(1+in.ExternalInterestRate) - balance*externalFinancingShare
	internal := in.PriorInternalDebt*(1+in.InternalInterestRate) - balance*(1-externalFinancingShare)

	var adjustment float64
	if in.ExchangeRate > 0 {
		adjustment = in.Exports / in.ExchangeRate * reserveExportRetention
		if balance < 0 {
			adjustment -= -balance / in.ExchangeRate * reserveDeficitDrawdown
		}
	}

	f := Financing{
		Deficit:          -balance,
		Surplus:          max(balance, 0),
		ExternalDebt:     external,
		InternalDebt:     internal,
		TotalDebt:        external + internal,
		ExternalInterest: extInterest,
		InternalInterest: intInterest,
		Interest:         extInterest + intInterest,
		Reserves:         max(0, in.PriorReserves+adjustment),
	}
	if in.GDP > 0 {
		f.ExternalDebtToGDP = external / in.GDP * 100
		f.InternalDebtToGDP = internal / in.GDP * 100
	}
	return f
}
