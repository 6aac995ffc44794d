package config

import "sort"

var themes = map[string]map[string]string{
	"default": {
		"primary": "213", // Purple
		"marked":  "196", // Red
		"kept":    "245", // Grey
		"kind":    "120", // Light green
		"path":    "159", // Light cyan
		"muted":   "242", // Dark grey
		"error":   "203", // Pink-red
		"border":  "213", // Purple
	},
	"dark": {
		"primary": "105",
		"marked":  "160",
		"kept":    "240",
		"kind":    "78",
		"path":    "117",
		"muted":   "238",
		"error":   "160",
		"border":  "105",
	},
	"light": {
		"primary": "135",
		"marked":  "124",
		"kept":    "246",
		"kind":    "28",
		"path":    "25",
		"muted":   "248",
		"error":   "160",
		"border":  "135",
	},
	"monochrome": {
		"primary": "255",
		"marked":  "255",
		"kept":    "244",
		"kind":    "250",
		"path":    "252",
		"muted":   "241",
		"error":   "255",
		"border":  "245",
	},
}

// GetTheme returns a predefined theme by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) map[string]string {
	if theme, exists := themes[name]; exists {
		return theme
	}
	return themes["default"]
}

// ListThemes returns the available theme names, sorted.
func ListThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
