package models

// DefaultOptions seeds every new user's taxonomy.
var DefaultOptions = map[CategoryKey][]string{
	"color:top":          {"white", "black", "gray", "khaki", "blue"},
	"material:top":       {"shirt", "overshirt", "regular", "fleece", "turtleneck", "knit"},
	"subtype:top":        {"long-sleeve", "short-sleeve"},
	"color:bottom":       {"white", "black"},
	"material:bottom":    {"regular", "fleece", "denim", "tailored"},
	"subtype:bottom":     {"trousers", "shorts"},
	"color:outerwear":    {"white", "black"},
	"material:outerwear": {"shell", "casual", "formal", "down", "leather"},
	"color:socks":        {"white", "black"},
	"subtype:socks":      {"knee-high", "crew", "ankle"},
	OccasionKey:          {"formal", "sport", "casual"},
}

// DefaultLocations seeds every new user's city list. The first entry is the
// default weather city.
var DefaultLocations = []string{"Taishan", "Banqiao"}

// Option is one (key, value) pair.
type Option struct {
	Key   CategoryKey
	Value string
}

// DefaultOptionList flattens DefaultOptions.
func DefaultOptionList() []Option {
	var out []Option
	for key, values := range DefaultOptions {
		for _, v := range values {
			out = append(out, Option{Key: key, Value: v})
		}
	}
	return out
}
