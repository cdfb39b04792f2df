package domain

// ChartPoint é uma entrada de série para consumo direto por gráficos.
// Color é opcional e só é preenchido em séries categóricas.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

type ChartSeries []ChartPoint
