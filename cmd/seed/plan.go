package main

import (
	"time"

	"github.com/brianvoe/gofakeit"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mydays/internal/isodate"
	"github.com/MrJamesThe3rd/mydays/internal/payment"
)

type dayPlan struct {
	Date         string
	Worked       bool
	CustomAmount *decimal.Decimal
}

type employeePlan struct {
	Name      string
	DailyWage decimal.Decimal
	// RaiseOn and Raise describe a wage change half way through, if any.
	RaiseOn *string
	Raise   decimal.Decimal
	Days    []dayPlan
	// PaidUntil settles every worked day up to and including that date.
	PaidUntil   string
	PaymentType payment.Type
}

// plan builds n employees with the days ending at today. The same seed
// gives the same plan.
func plan(seed int64, n, days int, today time.Time) []employeePlan {
	gofakeit.Seed(seed)

	types := payment.Types()
	out := make([]employeePlan, 0, n)

	for range n {
		p := employeePlan{
			Name:        gofakeit.Name(),
			DailyWage:   decimal.NewFromInt(int64(gofakeit.Number(40, 120))),
			PaymentType: types[gofakeit.Number(0, len(types)-1)],
		}

		for i := days - 1; i >= 0; i-- {
			d := dayPlan{
				Date:   isodate.Format(today.AddDate(0, 0, -i)),
				Worked: gofakeit.Number(1, 10) <= 7,
			}

			if d.Worked && gofakeit.Number(1, 10) == 1 {
				d.CustomAmount = new(decimal.NewFromInt(int64(gofakeit.Number(20, 200))))
			}

			p.Days = append(p.Days, d)
		}

		if days > 1 && gofakeit.Number(0, 1) == 1 {
			p.RaiseOn = new(p.Days[days/2].Date)
			p.Raise = p.DailyWage.Add(decimal.NewFromInt(int64(gofakeit.Number(5, 20))))
		}

		if days > 0 {
			p.PaidUntil = p.Days[gofakeit.Number(0, days-1)].Date
		}

		out = append(out, p)
	}

	return out
}
