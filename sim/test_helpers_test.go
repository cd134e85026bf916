package sim

// testParameters returns a small calibration whose figures can be checked by
// hand. At Z=0 with no shocks: TC=7, gas gross=3500, every tax line=1000.
func testParameters() *SimulationParameters {
	mineral := func(volume, price float64) MineralParams {
		return MineralParams{
			Volume:      Affine{Base: volume, CoefZ: volume / 10},
			Price:       Affine{Base: price, CoefZ: price / 10},
			RoyaltyRate: 10,
		}
	}
	tax := Affine{Base: 1000, CoefZ: 100}
	return &SimulationParameters{
		Years:                4,
		BaseYear:             2020,
		InitialGDP:           1_000_000,
		GDPGrowth:            3,
		InitialExternalDebt:  100_000,
		InitialInternalDebt:  50_000,
		ExternalInterestRate: 4,
		InternalInterestRate: 2,
		InitialReserves:      5_000,

		ExchangeRate: Affine{Base: 7, CoefZ: 1},
		Gas: GasParams{
			Volume:      Affine{Base: 100, CoefZ: 10},
			Price:       Affine{Base: 5, CoefZ: 1},
			IDHRate:     32,
			RoyaltyRate: 18,
		},
		Gold:   mineral(10, 100),
		Silver: mineral(20, 50),
		Zinc:   mineral(30, 20),
		Tin:    mineral(5, 200),
		Lead:   mineral(40, 10),
		Taxes: TaxParams{
			VATDomestic:               tax,
			VATImports:                tax,
			CorporateIncome:           tax,
			Transactions:              tax,
			ExciseDomestic:            tax,
			ExciseImports:             tax,
			VATComplementary:          tax,
			FinancialTransactions:     tax,
			Judicial:                  tax,
			Miscellaneous:             tax,
			Customs:                   tax,
			HydrocarbonExciseDomestic: tax,
			HydrocarbonExciseImports:  tax,
		},
		CurrentSpending: Affine{Base: 50_000, CoefZ: 1_000},
		FoodSubsidy:     Affine{Base: 500, CoefZ: 50},
		FuelSubsidy: FuelSubsidyParams{
			Enabled: true,
			Gasoline: FuelParams{
				ImportPrice:  Affine{Base: 10, CoefZ: 1},
				ImportVolume: Affine{Base: 100, CoefZ: 10},
				SalePrice:    50,
			},
			Diesel: FuelParams{
				ImportPrice:  Affine{Base: 8, CoefZ: 1},
				ImportVolume: Affine{Base: 200, CoefZ: 20},
				SalePrice:    40,
			},
		},
	}
}

// constSampler returns the same Z on every draw.
type constSampler float64

func (c constSampler) Sample() float64 { return float64(c) }

// seqSource replays a fixed sequence of uniform draws.
type seqSource struct {
	values []float64
	pos    int
}

func (s *seqSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}
