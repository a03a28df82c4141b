package domain

import "github.com/shopspring/decimal"

// ReportTotals holds the per-collection sums and the combined net for a
// filtered view. Net = Collected - Expenditures + Assistance + Donations.
type ReportTotals struct {
	Collected    decimal.Decimal `json:"collected"`
	Expenditures decimal.Decimal `json:"expenditures"`
	Donations    decimal.Decimal `json:"donations"`
	Assistance   decimal.Decimal `json:"assistance"`
	Net          decimal.Decimal `json:"net"`
}

// Report is a fully materialized filtered view over the four dated record
// collections for one period.
type Report struct {
	Period       Period        `json:"period"`
	Payments     []Payment     `json:"payments"`
	Expenditures []Expenditure `json:"expenditures"`
	Donations    []Donation    `json:"donations"`
	Assistance   []Assistance  `json:"assistance"`
	Totals       ReportTotals  `json:"totals"`
}

// SumPayments adds up payment amounts. An empty slice sums to zero.
func SumPayments(ps []Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Amount)
	}
	return total
}

// SumExpenditures adds up expenditure amounts.
func SumExpenditures(es []Expenditure) decimal.Decimal {
	total := decimal.Zero
	for _, e := range es {
		total = total.Add(e.Amount)
	}
	return total
}

// SumDonations adds up donation amounts.
func SumDonations(ds []Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d.Amount)
	}
	return total
}

// SumAssistance adds up assistance amounts.
func SumAssistance(as []Assistance) decimal.Decimal {
	total := decimal.Zero
	for _, a := range as {
		total = total.Add(a.Amount)
	}
	return total
}

// ComputeTotals derives the totals block from already-filtered collections.
func ComputeTotals(ps []Payment, es []Expenditure, ds []Donation, as []Assistance) ReportTotals {
	collected := SumPayments(ps)
	spent := SumExpenditures(es)
	donated := SumDonations(ds)
	assisted := SumAssistance(as)
	return ReportTotals{
		Collected:    collected,
		Expenditures: spent,
		Donations:    donated,
		Assistance:   assisted,
		Net:          collected.Sub(spent).Add(assisted).Add(donated),
	}
}
