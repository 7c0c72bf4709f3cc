package models

// TypePalette colors the three pie slices, indexed in TypeColumns order.
var TypePalette = []string{"#FAD5A5", "#7E0202", "#A36A00"}

// FemalePalette and MalePalette color the cross-tabulation bars by race.
var FemalePalette = map[string]string{
	"Hispanic":   "#B30000",
	"White":      "#7E0202",
	"Indigenous": "#ffbfbf",
	"Asian":      "#DA7070",
	"Black":      "#ce8686",
}

var MalePalette = map[string]string{
	"Hispanic":   "#D18700",
	"White":      "#754C00",
	"Indigenous": "#FFE5B4",
	"Asian":      "#FFB52E",
	"Black":      "#A36A00",
}

// BarColor returns the bar color for a (gender, race) pair.
func BarColor(gender, race string) string {
	if gender == "Male" {
		return MalePalette[race]
	}
	return FemalePalette[race]
}
