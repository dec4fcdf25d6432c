package budget

import "time"

// BalanceSeries builds the day-by-day running balance over a category's
// period, the balance decreasing by each day's summed expenses. Both slices
// have one entry per day of the period, in order.
func BalanceSeries(c *Category, ts Transactions) ([]time.Time, []float64) {
	total := c.Period.TotalDays()
	balance := c.Limit
	days := make([]time.Time, 0, total)
	balances := make([]float64, 0, total)
	for i := 0; i < total; i++ {
		day := c.Period.Start.Add(i)
		balance = balance.Sub(ts.SumOn(day))
		days = append(days, day.Time())
		balances = append(balances, balance.AsFloat())
	}
	return days, balances
}
