// Package renderer draws budget balance charts as PNG files.
package renderer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
)

// Chart draws the day-by-day balance series, with a dashed guide line
// falling evenly from the starting balance to zero over the period. A
// balance curve above the guide means spending slower than the budget pace.
func Chart(name string, days []time.Time, balances []float64, w io.Writer) error {
	if len(days) == 0 || len(days) != len(balances) {
		return fmt.Errorf("cannot chart %q: %d days for %d balances", name, len(days), len(balances))
	}

	linear := make([]float64, len(balances))
	start := balances[0]
	for i := range linear {
		linear[i] = start * (1 - float64(i)/float64(len(linear)))
	}

	graph := chart.Chart{
		Title:  name,
		Width:  600,
		Height: 250,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("02/Jan"),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "balance",
				XValues: days,
				YValues: balances,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2},
			},
			chart.TimeSeries{
				Name:    "even spend",
				XValues: days,
				YValues: linear,
				Style: chart.Style{
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5, 5},
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}

// WriteTempChart renders the chart into a fresh file under the system temp
// directory and returns its path. The caller owns the file.
func WriteTempChart(name string, days []time.Time, balances []float64) (string, error) {
	path := filepath.Join(os.TempDir(), "budgetbot-"+uuid.NewString()+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := Chart(name, days, balances, f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
