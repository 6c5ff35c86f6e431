package chart

// Color pairs a translucent bar fill with its opaque border.
type Color struct {
	Background string `koanf:"background" json:"background"`
	Border     string `koanf:"border" json:"border"`
}

// DefaultPalette returns the standard seven-color cycle used by the ranking
// chart. A fresh slice is returned so callers can append without aliasing.
func DefaultPalette() []Color {
	return []Color{
		{Background: "rgba(255, 99, 132, 0.2)", Border: "rgb(255, 99, 132)"},
		{Background: "rgba(255, 159, 64, 0.2)", Border: "rgb(255, 159, 64)"},
		{Background: "rgba(255, 205, 86, 0.2)", Border: "rgb(255, 205, 86)"},
		{Background: "rgba(75, 192, 192, 0.2)", Border: "rgb(75, 192, 192)"},
		{Background: "rgba(54, 162, 235, 0.2)", Border: "rgb(54, 162, 235)"},
		{Background: "rgba(153, 102, 255, 0.2)", Border: "rgb(153, 102, 255)"},
		{Background: "rgba(201, 203, 207, 0.2)", Border: "rgb(201, 203, 207)"},
	}
}
