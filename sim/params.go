package sim

// Affine is a quantity that moves linearly with the year's shock draw:
// value = Base + CoefZ·Z.
type Affine struct {
	Base  float64 `yaml:"base" json:"base"`
	CoefZ float64 `yaml:"coef_z" json:"coef_z"`
}

// At evaluates the affine pair at shock draw z.
func (a Affine) At(z float64) float64 {
	return a.Base + a.CoefZ*z
}

// Shocks holds the seven scenario shock percentages (e.g. -30 for a 30% fall).
type Shocks struct {
	ExchangeRate float64 `yaml:"shock_tc" json:"shock_tc"`
	Gas          float64 `yaml:"shock_precio_gas" json:"shock_precio_gas"`
	Gold         float64 `yaml:"shock_precio_oro" json:"shock_precio_oro"`
	Silver       float64 `yaml:"shock_precio_plata" json:"shock_precio_plata"`
	Zinc         float64 `yaml:"shock_precio_zinc" json:"shock_precio_zinc"`
	Tin          float64 `yaml:"shock_precio_estano" json:"shock_precio_estano"`
	Lead         float64 `yaml:"shock_precio_plomo" json:"shock_precio_plomo"`
}

// GasParams configures natural gas export revenue.
type GasParams struct {
	Volume      Affine  `yaml:"volumen" json:"volumen"`
	Price       Affine  `yaml:"precio" json:"precio"`
	IDHRate     float64 `yaml:"tasa_idh" json:"tasa_idh"`           // percent of gross revenue
	RoyaltyRate float64 `yaml:"tasa_regalias" json:"tasa_regalias"` // percent of gross revenue
}

// MineralParams configures royalty revenue for one mineral export.
type MineralParams struct {
	Volume      Affine  `yaml:"volumen" json:"volumen"`
	Price       Affine  `yaml:"precio" json:"precio"`
	RoyaltyRate float64 `yaml:"tasa_regalias" json:"tasa_regalias"` // percent
}

// TaxParams holds the affine tax collection lines. IDH is not listed here:
// it is derived from gross gas revenue.
type TaxParams struct {
	VATDomestic               Affine `yaml:"iva_mi" json:"iva_mi"`
	VATImports                Affine `yaml:"iva_i" json:"iva_i"`
	CorporateIncome           Affine `yaml:"iue" json:"iue"`
	Transactions              Affine `yaml:"it" json:"it"`
	ExciseDomestic            Affine `yaml:"ice_mi" json:"ice_mi"`
	ExciseImports             Affine `yaml:"ice_i" json:"ice_i"`
	VATComplementary          Affine `yaml:"rc_iva" json:"rc_iva"`
	FinancialTransactions     Affine `yaml:"itf" json:"itf"`
	Judicial                  Affine `yaml:"ij" json:"ij"`
	Miscellaneous             Affine `yaml:"conceptos_varios" json:"conceptos_varios"`
	Customs                   Affine `yaml:"ga" json:"ga"`
	HydrocarbonExciseDomestic Affine `yaml:"iehd_mi" json:"iehd_mi"`
	HydrocarbonExciseImports  Affine `yaml:"iehd_i" json:"iehd_i"`
}

// FuelParams configures the import side of one subsidised fuel.
type FuelParams struct {
	ImportPrice  Affine  `yaml:"precio_importacion" json:"precio_importacion"`   // USD per tonne
	ImportVolume Affine  `yaml:"volumen_importacion" json:"volumen_importacion"` // tonnes
	SalePrice    float64 `yaml:"precio_venta" json:"precio_venta"`               // Bs per tonne, domestic
}

// FuelSubsidyParams toggles and configures the hydrocarbon subsidy.
type FuelSubsidyParams struct {
	Enabled  bool       `yaml:"activo" json:"activo"`
	Gasoline FuelParams `yaml:"gasolina" json:"gasolina"`
	Diesel   FuelParams `yaml:"diesel" json:"diesel"`
}

// SimulationParameters is the complete, already-validated input of one run.
// It is shared read-only by every trial of a Monte Carlo run and must not be
// mutated while a run is in progress.
type SimulationParameters struct {
	Years    int `yaml:"anos" json:"anos"`
	BaseYear int `yaml:"ano_base" json:"ano_base"`

	InitialGDP float64 `yaml:"pib_inicial" json:"pib_inicial"`
	GDPGrowth  float64 `yaml:"crecimiento_pib" json:"crecimiento_pib"` // percent per year

	InitialExternalDebt  float64 `yaml:"deuda_externa_inicial" json:"deuda_externa_inicial"`
	InitialInternalDebt  float64 `yaml:"deuda_interna_inicial" json:"deuda_interna_inicial"`
	ExternalInterestRate float64 `yaml:"tasa_interes_externa" json:"tasa_interes_externa"` // percent
	InternalInterestRate float64 `yaml:"tasa_interes_interna" json:"tasa_interes_interna"` // percent
	InitialReserves      float64 `yaml:"rin_inicial" json:"rin_inicial"`                   // millions of USD

	Shocks Shocks `yaml:"shocks" json:"shocks"`

	ExchangeRate Affine        `yaml:"tipo_cambio" json:"tipo_cambio"`
	Gas          GasParams     `yaml:"gas" json:"gas"`
	Gold         MineralParams `yaml:"oro" json:"oro"`
	Silver       MineralParams `yaml:"plata" json:"plata"`
	Zinc         MineralParams `yaml:"zinc" json:"zinc"`
	Tin          MineralParams `yaml:"estano" json:"estano"`
	Lead         MineralParams `yaml:"plomo" json:"plomo"`
	Taxes        TaxParams     `yaml:"impuestos" json:"impuestos"`

	CurrentSpending Affine            `yaml:"gasto_corriente" json:"gasto_corriente"`
	FoodSubsidy     Affine            `yaml:"subsidio_alimentos" json:"subsidio_alimentos"`
	FuelSubsidy     FuelSubsidyParams `yaml:"subsidio_combustibles" json:"subsidio_combustibles"`
}

// WithShocks returns a copy of p whose shock percentages are replaced by s.
// The receiver is left untouched.
func (p *SimulationParameters) WithShocks(s Shocks) *SimulationParameters {
	out := *p
	out.Shocks = s
	return &out
}

// applyShock scales value by (1 + pct/100).
func applyShock(value, pct float64) float64 {
	return value * (1 + pct/100)
}
