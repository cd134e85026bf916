package sim

// CommodityRevenue is the outcome for one mineral export line.
type CommodityRevenue struct {
	Volume   float64 `json:"volumen"`
	PriceUSD float64 `json:"precio_usd"` // after scenario shock
	Revenue  float64 `json:"total"`      // Bs, royalty share only
}

// GasRevenue is the outcome for natural gas exports.
type GasRevenue struct {
	Volume    float64 `json:"volumen"`
	PriceUSD  float64 `json:"precio_usd"`
	Gross     float64 `json:"ingresos_brutos"`
	IDH       float64 `json:"idh"`
	Royalties float64 `json:"regalias"`
	// Total is IDH + royalties, the fiscal take from gas.
	Total float64 `json:"total"`
}

// TaxRevenue holds every tax collection line. IDH duplicates GasRevenue.IDH so
// the tax aggregate is complete on its own.
type TaxRevenue struct {
	VATDomestic               float64 `json:"iva_mi"`
	VATImports                float64 `json:"iva_i"`
	CorporateIncome           float64 `json:"iue"`
	Transactions              float64 `json:"it"`
	ExciseDomestic            float64 `json:"ice_mi"`
	ExciseImports             float64 `json:"ice_i"`
	VATComplementary          float64 `json:"rc_iva"`
	FinancialTransactions     float64 `json:"itf"`
	Judicial                  float64 `json:"ij"`
	Miscellaneous             float64 `json:"conceptos_varios"`
	Customs                   float64 `json:"ga"`
	HydrocarbonExciseDomestic float64 `json:"iehd_mi"`
	HydrocarbonExciseImports  float64 `json:"iehd_i"`
	IDH                       float64 `json:"idh"`

	// Lines is the sum of the affine lines, IDH excluded.
	Lines float64 `json:"lineas"`
	// Total is Lines + IDH.
	Total float64 `json:"total"`
}

// RevenueLines is the full revenue breakdown of one year. It is the only place
// revenue sub-totals are computed; downstream code reads them from here.
type RevenueLines struct {
	Z            float64 `json:"z"`
	ExchangeRate float64 `json:"tipo_cambio"`

	Gas    GasRevenue       `json:"gas"`
	Gold   CommodityRevenue `json:"oro"`
	Silver CommodityRevenue `json:"plata"`
	Zinc   CommodityRevenue `json:"zinc"`
	Tin    CommodityRevenue `json:"estano"`
	Lead   CommodityRevenue `json:"plomo"`

	// Exports counts gas royalties but not gas IDH, which belongs to Taxes.
	Exports float64    `json:"exportaciones_total"`
	Taxes   TaxRevenue `json:"tributarios"`
	// Total is Exports + Taxes.Total + Gas.IDH. Taxes.Total already carries
	// IDH as its last line, so IDH enters the total twice.
	Total float64 `json:"total"`
}

// ExchangeRateAt returns the shocked exchange rate for draw z.
func ExchangeRateAt(p *SimulationParameters, z float64) float64 {
	return applyShock(p.ExchangeRate.At(z), p.Shocks.ExchangeRate)
}

// ComputeRevenue evaluates the revenue model for one shock draw.
func ComputeRevenue(p *SimulationParameters, z float64) RevenueLines {
	tc := ExchangeRateAt(p, z)

	gas := gasRevenue(p.Gas, z, tc, p.Shocks.Gas)
	gold := mineralRevenue(p.Gold, z, tc, p.Shocks.Gold)
	silver := mineralRevenue(p.Silver, z, tc, p.Shocks.Silver)
	zinc := mineralRevenue(p.Zinc, z, tc, p.Shocks.Zinc)
	tin := mineralRevenue(p.Tin, z, tc, p.Shocks.Tin)
	lead := mineralRevenue(p.Lead, z, tc, p.Shocks.Lead)

	exports := silver.Revenue + gold.Revenue + gas.Royalties + zinc.Revenue + tin.Revenue + lead.Revenue
	taxes := taxRevenue(p.Taxes, z, gas.IDH)

	return RevenueLines{
		Z:            z,
		ExchangeRate: tc,
		Gas:          gas,
		Gold:         gold,
		Silver:       silver,
		Zinc:         zinc,
		Tin:          tin,
		Lead:         lead,
		Exports:      exports,
		Taxes:        taxes,
		Total:        exports + taxes.Total + gas.IDH,
	}
}

func gasRevenue(g GasParams, z, tc, shockPct float64) GasRevenue {
	volume := g.Volume.At(z)
	price := applyShock(g.Price.At(z), shockPct)
	gross := volume * price * tc
	idh := gross * g.IDHRate / 100
	royalties := gross * g.RoyaltyRate / 100
	return GasRevenue{
		Volume:    volume,
		PriceUSD:  price,
		Gross:     gross,
		IDH:       idh,
		Royalties: royalties,
		Total:     idh + royalties,
	}
}

func mineralRevenue(m MineralParams, z, tc, shockPct float64) CommodityRevenue {
	volume := m.Volume.At(z)
	price := applyShock(m.Price.At(z), shockPct)
	return CommodityRevenue{
		Volume:   volume,
		PriceUSD: price,
		Revenue:  volume * price * tc * m.RoyaltyRate / 100,
	}
}

func taxRevenue(t TaxParams, z, idh float64) TaxRevenue {
	r := TaxRevenue{
		VATDomestic:               t.VATDomestic.At(z),
		VATImports:                t.VATImports.At(z),
		CorporateIncome:           t.CorporateIncome.At(z),
		Transactions:              t.Transactions.At(z),
		ExciseDomestic:            t.ExciseDomestic.At(z),
		ExciseImports:             t.ExciseImports.At(z),
		VATComplementary:          t.VATComplementary.At(z),
		FinancialTransactions:     t.FinancialTransactions.At(z),
		Judicial:                  t.Judicial.At(z),
		Miscellaneous:             t.Miscellaneous.At(z),
		Customs:                   t.Customs.At(z),
		HydrocarbonExciseDomestic: t.HydrocarbonExciseDomestic.At(z),
		HydrocarbonExciseImports:  t.HydrocarbonExciseImports.At(z),
		IDH:                       idh,
	}
	r.Lines = r.VATDomestic + r.VATImports + r.CorporateIncome + r.Transactions +
		r.ExciseDomestic + r.ExciseImports + r.VATComplementary + r.FinancialTransactions +
		r.Judicial + r.Miscellaneous + r.Customs + r.HydrocarbonExciseDomestic +
		r.HydrocarbonExciseImports
	r.Total = r.Lines + idh
	return r
}
