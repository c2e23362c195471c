package util

import (
	"errors"
	"fmt"
	"io"

	"booking-widget/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ErrNothingToPlot is returned when there is no search result to chart.
var ErrNothingToPlot = errors.New("no search result to plot")

// PlotOfferPrices renders an HTML bar chart comparing each offer's base
// nightly price with its price for the whole stay.
func PlotOfferPrices(result *models.SearchResult, period string, w io.Writer) error {
	if result == nil {
		return ErrNothingToPlot
	}

	names := make([]string, 0, len(result.Offers))
	base := make([]opts.BarData, 0, len(result.Offers))
	total := make([]opts.BarData, 0, len(result.Offers))
	for _, o := range result.Offers {
		names = append(names, o.Name)
		base = append(base, opts.BarData{Name: o.ID, Value: o.BasePrice})
		total = append(total, opts.BarData{Name: o.ID, Value: o.EffectivePrice()})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Room prices",
			Width:     "900px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Room prices",
			Subtitle: period,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(names).
		AddSeries("Base price / night", base).
		AddSeries("Stay total", total)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
