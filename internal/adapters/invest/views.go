package invest

import (
	"fmt"

	"github.com/vegorov/pubgen/internal/model"
)

// textView produces two paragraphs of 2000 characters each.
func (g *Generator) textView() model.TextView {
	return model.TextView{
		Type:    "text",
		Content: fmt.Sprintf("<p>%s</p><p>%s</p>", g.text(2000), g.text(2000)),
	}
}

func (g *Generator) imageView(index, base64Multiplier int) model.ImageView {
	return model.ImageView{
		Type:      "image",
		Content:   "Chart showing " + g.text(100),
		MediaType: "image/png",
		Base64:    Base64Filler(base64Multiplier),
		Alt:       fmt.Sprintf("Investment chart %d", index),
		Caption:   fmt.Sprintf("Figure %d: %s", index, g.text(150)),
	}
}

// chartView produces a line chart with 12 monthly points. The value and
// benchmark ranges are part of the output contract.
func (g *Generator) chartView() model.ChartView {
	values := make([]model.ChartPoint, 0, 12)
	for month := 1; month <= 12; month++ {
		values = append(values, model.ChartPoint{
			Date:      fmt.Sprintf("2024-%02d", month),
			Value:     g.uniform(100, 200),
			Benchmark: g.uniform(95, 195),
		})
	}
	return model.ChartView{
		Type: "chart",
		Spec: model.ChartSpec{
			Type: "line",
			Data: model.ChartData{Values: values},
			Encoding: model.ChartEncoding{
				X:     model.ChartChannel{Field: "date", Type: "temporal"},
				Y:     model.ChartChannel{Field: "value", Type: "quantitative"},
				Color: model.ChartChannel{Field: "series", Type: "nominal"},
			},
		},
	}
}

// tableView produces the fixed three-metric quarterly table. Each metric has
// its own value range.
func (g *Generator) tableView() model.TableView {
	return model.TableView{
		Type: "table",
		Columns: []model.TableColumn{
			{Key: "metric", Title: "Metric", Type: "string"},
			{Key: "q1", Title: "Q1 2024", Type: "number", Format: ".2f"},
			{Key: "q2", Title: "Q2 2024", Type: "number", Format: ".2f"},
			{Key: "q3", Title: "Q3 2024", Type: "number", Format: ".2f"},
			{Key: "q4", Title: "Q4 2024", Type: "number", Format: ".2f"},
		},
		Rows: []model.TableRow{
			g.tableRow("Revenue Growth", -5, 15),
			g.tableRow("Profit Margin", 5, 25),
			g.tableRow("ROE", 8, 20),
		},
	}
}

func (g *Generator) tableRow(metric string, lo, hi float64) model.TableRow {
	return model.TableRow{
		Metric: metric,
		Q1:     g.uniform(lo, hi),
		Q2:     g.uniform(lo, hi),
		Q3:     g.uniform(lo, hi),
		Q4:     g.uniform(lo, hi),
	}
}
