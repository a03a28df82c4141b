package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kabitalok/kabitalok-payments/internal/core/domain"
)

func payment(date string, amount int64) domain.Payment {
	return domain.Payment{Date: date, Amount: decimal.NewFromInt(amount)}
}

func TestPeriodMatches(t *testing.T) {
	// Friday 20 June 2024
	now := time.Date(2024, 6, 20, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		period domain.Period
		date   string
		want   bool
	}{
		{"today exact string", domain.Period{Kind: domain.PeriodToday}, "20-06-2024", true},
		{"today same calendar day unpadded form misses", domain.Period{Kind: domain.PeriodToday}, "20-6-2024", false},
		{"today other day", domain.Period{Kind: domain.PeriodToday}, "19-06-2024", false},

		// week of Sunday 16 June through Saturday 22 June
		{"week sunday start", domain.Period{Kind: domain.PeriodWeek}, "16-06-2024", true},
		{"week saturday end", domain.Period{Kind: domain.PeriodWeek}, "22-06-2024", true},
		{"week before start", domain.Period{Kind: domain.PeriodWeek}, "15-06-2024", false},
		{"week after end", domain.Period{Kind: domain.PeriodWeek}, "23-06-2024", false},

		{"month inside", domain.Period{Kind: domain.PeriodMonth}, "15-06-2024", true},
		{"month other month", domain.Period{Kind: domain.PeriodMonth}, "15-05-2024", false},
		{"month same month other year", domain.Period{Kind: domain.PeriodMonth}, "15-06-2023", false},

		{"year inside", domain.Period{Kind: domain.PeriodYear}, "01-01-2024", true},
		{"year other year", domain.Period{Kind: domain.PeriodYear}, "31-12-2023", false},

		{"all", domain.Period{Kind: domain.PeriodAll}, "01-01-1999", true},

		// byMonth uses a 0-based month index: 5 is June
		{"byMonth hit", domain.Period{Kind: domain.PeriodByMonth, Month: 5, Year: 2024}, "15-06-2024", true},
		{"byMonth 1-based would miss", domain.Period{Kind: domain.PeriodByMonth, Month: 6, Year: 2024}, "15-06-2024", false},
		{"byMonth wrong year", domain.Period{Kind: domain.PeriodByMonth, Month: 5, Year: 2023}, "15-06-2024", false},

		{"garbage date fails today", domain.Period{Kind: domain.PeriodToday}, "not-a-date", false},
		{"garbage date fails all", domain.Period{Kind: domain.PeriodAll}, "not-a-date", false},
		{"empty date fails all", domain.Period{Kind: domain.PeriodAll}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.period.Matches(tt.date, now))
		})
	}
}

func TestFilterByPeriodMonthInclusion(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local)
	payments := []domain.Payment{payment("15-06-2024", 100)}

	got := domain.FilterByPeriod(payments, domain.Period{Kind: domain.PeriodMonth}, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "100.00", domain.SumPayments(got).StringFixed(2))
}

func TestFilterByPeriodYearExclusion(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	payments := []domain.Payment{payment("15-06-2024", 100)}

	got := domain.FilterByPeriod(payments, domain.Period{Kind: domain.PeriodYear}, now)
	assert.Empty(t, got)
	assert.Equal(t, "0.00", domain.SumPayments(got).StringFixed(2))
}

func TestFilterByPeriodPreservesOrderAndInput(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local)
	payments := []domain.Payment{
		payment("01-06-2024", 1),
		payment("01-01-2020", 2),
		payment("15-06-2024", 3),
		payment("20-06-2024", 4),
	}
	original := append([]domain.Payment(nil), payments...)

	got := domain.FilterByPeriod(payments, domain.Period{Kind: domain.PeriodMonth}, now)

	// subset, input order preserved, input untouched
	assert.Equal(t, []int64{1, 3, 4}, []int64{
		got[0].Amount.IntPart(), got[1].Amount.IntPart(), got[2].Amount.IntPart(),
	})
	assert.Equal(t, original, payments)

	// filtering the filtered set again changes nothing
	again := domain.FilterByPeriod(got, domain.Period{Kind: domain.PeriodMonth}, now)
	assert.Equal(t, got, again)
}

func TestFilterByPeriodDropsUnparseableDatesEverywhere(t *testing.T) {
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.Local)
	payments := []domain.Payment{
		payment("15-06-2024", 100),
		payment("not-a-date", 999),
	}

	for _, p := range []domain.Period{
		{Kind: domain.PeriodToday},
		{Kind: domain.PeriodWeek},
		{Kind: domain.PeriodMonth},
		{Kind: domain.PeriodYear},
		{Kind: domain.PeriodAll},
		{Kind: domain.PeriodByMonth, Month: 5, Year: 2024},
	} {
		got := domain.FilterByPeriod(payments, p, now)
		for _, g := range got {
			assert.NotEqual(t, int64(999), g.Amount.IntPart(), "period %s leaked the undated record", p.Kind)
		}
	}
}

func TestComputeTotalsNet(t *testing.T) {
	payments := []domain.Payment{payment("15-06-2024", 100)}
	expenditures := []domain.Expenditure{{Date: "15-06-2024", Amount: decimal.NewFromInt(50)}}
	donations := []domain.Donation{{Date: "15-06-2024", Amount: decimal.NewFromInt(20)}}
	assistance := []domain.Assistance{{Date: "15-06-2024", Amount: decimal.NewFromInt(5)}}

	totals := domain.ComputeTotals(payments, expenditures, donations, assistance)

	assert.Equal(t, "100.00", totals.Collected.StringFixed(2))
	assert.Equal(t, "50.00", totals.Expenditures.StringFixed(2))
	assert.Equal(t, "20.00", totals.Donations.StringFixed(2))
	assert.Equal(t, "5.00", totals.Assistance.StringFixed(2))
	assert.Equal(t, "75.00", totals.Net.StringFixed(2))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Today", domain.Period{Kind: domain.PeriodToday}.Label())
	assert.Equal(t, "All Time", domain.Period{Kind: domain.PeriodAll}.Label())
	assert.Equal(t, "June 2024", domain.Period{Kind: domain.PeriodByMonth, Month: 5, Year: 2024}.Label())
}
