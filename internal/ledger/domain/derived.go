package domain

import "github.com/shopspring/decimal"

// Derived invoice fields arrive pre-computed from the client and are stored
// as given. FillDerived backfills any derived field the client left at zero
// so that records posted by other API consumers still carry usable numbers.
// A submitted non-zero value always wins.

var (
	fortyKG = decimal.NewFromInt(40)
	hundred = decimal.NewFromInt(100)
)

// FillDerived computes the weight chain of a purchase invoice:
// vehicle-weight difference, bag deduction, moisture adjustment, net weight,
// the 40kg unit conversion and the resulting amount.
func (p *PurchaseInvoice) FillDerived() {
	if p.SubtractWeight.IsZero() && !p.FilledVehicleWeight.IsZero() && !p.EmptyVehicleWeight.IsZero() {
		p.SubtractWeight = p.FilledVehicleWeight.Sub(p.EmptyVehicleWeight)
	}
	if p.FinalWeight.IsZero() {
		p.FinalWeight = p.SubtractWeight.Sub(p.BagWeight)
	}
	if p.MoistureAdjCal.IsZero() && !p.MoisturePercent.IsZero() {
		p.MoistureAdjCal = p.FinalWeight.Mul(p.MoisturePercent).Div(hundred)
	}
	if p.MoistureAdjustment.IsZero() {
		p.MoistureAdjustment = p.MoistureAdjCal
	}
	if p.NetWeight.IsZero() {
		p.NetWeight = p.FinalWeight.Sub(p.MoistureAdjCal)
	}
	if p.NetWeight40KG.IsZero() && !p.NetWeight.IsZero() {
		p.NetWeight40KG = p.NetWeight.Div(fortyKG)
	}
	if p.AmountCal.IsZero() && !p.Rate40KG.IsZero() {
		p.AmountCal = p.NetWeight40KG.Mul(p.Rate40KG).Round(AmountPlaces)
	}
	if p.Amount.IsZero() {
		p.Amount = p.AmountCal
	}
}

// FillDerived computes the sale chain: net weight, 40kg conversion, amount,
// sutli-silai total and brokery deduction. Intermediate money values round to
// two places at each step, matching how the records have always been kept.
func (s *SalesInvoice) FillDerived() {
	if s.NetWeight.IsZero() && !s.Weight.IsZero() {
		s.NetWeight = s.Weight.Sub(s.BagWeight)
	}
	if s.NetWeight40.IsZero() && !s.NetWeight.IsZero() {
		s.NetWeight40 = s.NetWeight.Div(fortyKG).Round(AmountPlaces)
	}
	if s.Amount.IsZero() && !s.Rate40.IsZero() {
		s.Amount = s.NetWeight40.Mul(s.Rate40).Round(AmountPlaces)
	}
	if s.SutliSilaiAmount.IsZero() && !s.SutliSilaiRate.IsZero() {
		s.SutliSilaiAmount = s.SutliSilaiRate.Mul(s.Quantity).Round(AmountPlaces)
	}
	if s.TotalAmount.IsZero() {
		s.TotalAmount = s.Amount.Add(s.SutliSilaiAmount)
	}
	if s.Brokery.IsZero() && !s.BrokeryRate.IsZero() {
		s.Brokery = s.TotalAmount.Mul(s.BrokeryRate).Div(hundred).Round(AmountPlaces)
	}
	if s.TotalAmount2.IsZero() {
		s.TotalAmount2 = s.TotalAmount.Sub(s.Brokery)
	}
}
