package sim

// ExpenditureLines is the full expenditure breakdown of one year.
// When the fuel subsidy is disabled the import quantities and subsidies are
// present and zero, so aggregation never branches on the toggle.
type ExpenditureLines struct {
	Current float64 `json:"corriente"`

	GasolineImportPrice  float64 `json:"precio_importacion_gasolina"`
	DieselImportPrice    float64 `json:"precio_importacion_diesel"`
	GasolineImportVolume float64 `json:"volumen_importacion_gasolina"`
	DieselImportVolume   float64 `json:"volumen_importacion_diesel"`
	GasolineSubsidy      float64 `json:"subsidio_gasolina"`
	DieselSubsidy        float64 `json:"subsidio_diesel"`
	FuelSubsidy          float64 `json:"subsidio_hidrocarburos"`

	FoodSubsidy float64 `json:"subsidio_alimentos"`
	Total       float64 `json:"total"`
}

// ComputeExpenditure evaluates the expenditure model for draw z at exchange rate tc.
func ComputeExpenditure(p *SimulationParameters, z, tc float64) ExpenditureLines {
	e := ExpenditureLines{
		Current:     p.CurrentSpending.At(z),
		FoodSubsidy: p.FoodSubsidy.At(z),
	}

	if fs := p.FuelSubsidy; fs.Enabled {
		e.GasolineImportPrice = fs.Gasoline.ImportPrice.At(z)
		e.DieselImportPrice = fs.Diesel.ImportPrice.At(z)
		e.GasolineImportVolume = fs.Gasoline.ImportVolume.At(z)
		e.DieselImportVolume = fs.Diesel.ImportVolume.At(z)
		// the state pays the gap between import cost and the regulated sale price
		e.GasolineSubsidy = (e.GasolineImportPrice*tc - fs.Gasoline.SalePrice) * e.GasolineImportVolume
		e.DieselSubsidy = (e.DieselImportPrice*tc - fs.Diesel.SalePrice) * e.DieselImportVolume
		e.FuelSubsidy = e.GasolineSubsidy + e.DieselSubsidy
	}

	e.Total = e.Current + e.FuelSubsidy + e.FoodSubsidy
	return e
}
