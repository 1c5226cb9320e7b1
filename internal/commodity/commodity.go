// Package commodity holds the static commodity configuration: the canonical
// popular-commodity list, the alias table mapping canonical names to the raw
// label variants found in the mandi dataset, and the base prices used by the
// synthetic fallback generator. All tables are immutable after process start.
package commodity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// aliases maps a canonical commodity name to the raw dataset labels it also
// appears under. The canonical name itself is implied and always resolves
// first.
var aliases = map[string][]string{
	"Rice":         {"Rice", "Paddy (Dhan)(Common)", "Paddy (Dhan)"},
	"Gram":         {"Gram", "Bengal Gram (Gram)(Whole)"},
	"Arhar":        {"Arhar", "Arhar (Tur)(Whole)", "Tur (Arhar)"},
	"Bajra":        {"Bajra", "Bajra (Pearl Millet/Cumbu)"},
	"Jowar":        {"Jowar", "Jowar (Sorghum)"},
	"Lentil":       {"Lentil", "Lentil (Masur)(Whole)"},
	"Moong":        {"Moong", "Green Gram (Moong)(Whole)"},
	"Urad":         {"Urad", "Black Gram (Urd Beans)(Whole)"},
	"Soybean":      {"Soybean", "Soyabean"},
	"Cardamom":     {"Cardamom", "Cardamoms"},
	"Black Pepper": {"Black Pepper", "Pepper garbled", "Pepper ungarbled"},
	"Ginger":       {"Ginger", "Ginger (Green)"},
	"Coriander":    {"Coriander", "Coriander (Leaves)", "Corriander seed"},
}

// popular is the list of commodities with one trained model each. Keep in
// sync with the frontend dropdowns.
var popular = []string{
	"Onion", "Tomato", "Potato", "Rice", "Wheat", "Maize", "Bajra", "Jowar",
	"Gram", "Lentil", "Moong", "Urad", "Arhar", "Mustard", "Groundnut",
	"Soybean", "Cotton", "Sugarcane", "Banana", "Mango", "Apple", "Coconut",
	"Cardamom", "Black Pepper", "Ginger", "Garlic", "Coriander", "Cabbage",
	"Cauliflower", "Brinjal",
}

// basePrices seeds the synthetic fallback generator, in Rs/quintal.
var basePrices = map[string]float64{
	"Rice": 2200, "Wheat": 1950, "Maize": 1800, "Bajra": 2100, "Jowar": 2350,
	"Gram": 5500, "Lentil": 6200, "Moong": 7200, "Urad": 8500, "Arhar": 11500,
	"Onion": 1800, "Tomato": 2800, "Potato": 1200, "Mustard": 5200,
	"Groundnut": 5900, "Soybean": 4200, "Cotton": 6500, "Sugarcane": 350,
	"Banana": 450, "Mango": 3500, "Apple": 12000, "Coconut": 28,
	"Cardamom": 12000, "Black Pepper": 55000, "Ginger": 2200, "Garlic": 4500,
	"Coriander": 6500, "Cabbage": 800, "Cauliflower": 1200, "Brinjal": 2200,
}

// defaultBasePrice is used for commodities without a configured base price.
const defaultBasePrice = 2000

var titleCaser = cases.Title(language.English)

// Normalize trims a raw commodity name and title-cases it so that user input
// like "rice" or " black pepper " matches the canonical tables.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(name))
}

// Resolve maps a canonical commodity name to the ordered list of raw labels
// to query for. The canonical name is always first, configured synonyms
// follow, duplicates removed preserving first-seen order. Unknown commodities
// resolve to themselves.
func Resolve(name string) []string {
	out := []string{name}
	seen := map[string]bool{name: true}
	for _, alias := range aliases[name] {
		if seen[alias] {
			continue
		}
		seen[alias] = true
		out = append(out, alias)
	}
	return out
}

// Popular returns the popular-commodity list in display order.
func Popular() []string {
	out := make([]string, len(popular))
	copy(out, popular)
	return out
}

// BasePrice returns the synthetic base price for a commodity, falling back
// to a generic default for unknown names.
func BasePrice(name string) float64 {
	if p, ok := basePrices[name]; ok {
		return p
	}
	return defaultBasePrice
}
