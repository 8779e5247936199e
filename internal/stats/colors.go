package stats

// fallbackColor is used for languages without a known display color.
const fallbackColor = "#ccc"

var languageColors = map[string]string{
	"TypeScript": "#3178c6",
	"JavaScript": "#f1e05a",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"Go":         "#00ADD8",
	"Rust":       "#dea584",
	"HTML":       "#e34c26",
	"CSS":        "#563d7c",
	"Vue":        "#41b883",
	"React":      "#61dafb",
	"C++":        "#f34b7d",
	"C":          "#555555",
	"C#":         "#178600",
	"PHP":        "#4F5D95",
	"Ruby":       "#701516",
	"Swift":      "#ffac45",
	"Kotlin":     "#F18E33",
	"Dart":       "#00B4AB",
}

// * ColorForLanguage returns the display hex color for a language name,
// * falling back to a neutral gray for anything unrecognized
func ColorForLanguage(language string) string {
	if color, ok := languageColors[language]; ok {
		return color
	}
	return fallbackColor
}
