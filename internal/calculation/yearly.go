package calculation

import (
	"github.com/bajramiymer-oss/earncalc/internal/domain"
)

// AggregateByYear rolls monthly rows into yearly sums, year 1 covering
// months 1-12 and so on, ascending. A horizon that is not a multiple of
// twelve yields a partial final year summed over the months it has.
func AggregateByYear(rows []domain.MonthlyRow) []domain.YearlyTotal {
	if len(rows) == 0 {
		return nil
	}

	totals := make([]domain.YearlyTotal, 0, (len(rows)+11)/12)
	for _, row := range rows {
		year := row.Year()
		if len(totals) == 0 || totals[len(totals)-1].Year != year {
			totals = append(totals, domain.YearlyTotal{Year: year})
		}
		yt := &totals[len(totals)-1]
		yt.GrossClientPayments = yt.GrossClientPayments.Add(row.GrossClientPayments)
		yt.NewSaleIncome = yt.NewSaleIncome.Add(row.NewSaleIncome)
		yt.CommissionFromClients = yt.CommissionFromClients.Add(row.CommissionFromClients)
		yt.TotalEarnings = yt.TotalEarnings.Add(row.TotalEarnings)
	}
	return totals
}
