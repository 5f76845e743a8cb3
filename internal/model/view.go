package model

// View is the tagged union of leaf content units inside a block. Exactly one
// of TextView, ImageView, ChartView or TableView sits behind it; the Type
// field of the concrete struct carries the tag on the wire.
type View interface {
	isView()
}

// TextView holds an HTML-ish text fragment.
type TextView struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// ImageView holds an embedded image with its base64 payload.
type ImageView struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	MediaType string `json:"mediaType"`
	Base64    string `json:"base64"`
	Alt       string `json:"alt"`
	Caption   string `json:"caption"`
}

// ChartView holds a vega-lite-like chart specification.
type ChartView struct {
	Type string    `json:"type"`
	Spec ChartSpec `json:"spec"`
}

// ChartSpec is the nested chart description: a line series of monthly points
// plus the encoding channels.
type ChartSpec struct {
	Type     string        `json:"type"`
	Data     ChartData     `json:"data"`
	Encoding ChartEncoding `json:"encoding"`
}

type ChartData struct {
	Values []ChartPoint `json:"values"`
}

type ChartPoint struct {
	Date      string  `json:"date"`
	Value     float64 `json:"value"`
	Benchmark float64 `json:"benchmark"`
}

type ChartEncoding struct {
	X     ChartChannel `json:"x"`
	Y     ChartChannel `json:"y"`
	Color ChartChannel `json:"color"`
}

type ChartChannel struct {
	Field string `json:"field"`
	Type  string `json:"type"`
}

// TableView holds a fixed-schema metrics table with quarterly values.
type TableView struct {
	Type    string        `json:"type"`
	Columns []TableColumn `json:"columns"`
	Rows    []TableRow    `json:"rows"`
}

type TableColumn struct {
	Key    string `json:"key"`
	Title  string `json:"title"`
	Type   string `json:"type"`
	Format string `json:"format,omitempty"`
}

type TableRow struct {
	Metric string  `json:"metric"`
	Q1     float64 `json:"q1"`
	Q2     float64 `json:"q2"`
	Q3     float64 `json:"q3"`
	Q4     float64 `json:"q4"`
}

func (TextView) isView()  {}
func (ImageView) isView() {}
func (ChartView) isView() {}
func (TableView) isView() {}
