package chart

// Theme carries the styling and sizing constants the renderers use.
// Injected rather than hard-coded so charts can be rendered and tested
// against varied configurations.
type Theme struct {
	Width       int
	Height      int
	Stroke      string
	Fill        string
	Grid        string
	Accent      string
	Background  string
	GaugeRadius float64
	Placeholder string
}

// DefaultTheme returns the dashboard's standard dark theme.
func DefaultTheme() Theme {
	return Theme{
		Width:       600,
		Height:      300,
		Stroke:      "#22c55e",
		Fill:        "#166534",
		Grid:        "#334155",
		Accent:      "#f59e0b",
		Background:  "#0f172a",
		GaugeRadius: 45,
		Placeholder: "—",
	}
}
