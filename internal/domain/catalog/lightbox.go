package catalog

// DefaultFormulaText is the built-in lightbox surface-area formula: front
// face plus two sides plus top and bottom, cm² converted to m². The back
// face sits against the mount and is not printed.
const DefaultFormulaText = "(w * h + 2 * d * h + 2 * w * d) / 10000"

// Dimensions is a width/height/depth triple in centimeters.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// PresetSize is a fixed fabricable size for a lightbox style.
type PresetSize struct {
	Dimensions
	Label string `json:"label"`
}

// LightboxStyle is one of the nine fixed lightbox form factors.
type LightboxStyle struct {
	ID        int                   `json:"id"`
	Name      string                `json:"name"`
	PrintFace string                `json:"print_face"`
	Sizes     map[string]PresetSize `json:"sizes"`
}

func size(w, h, d float64, label string) PresetSize {
	return PresetSize{Dimensions: Dimensions{Width: w, Height: h, Depth: d}, Label: label}
}

func presets(s, m, l PresetSize) map[string]PresetSize {
	return map[string]PresetSize{"S": s, "M": m, "L": l}
}

// LightboxStyles is the fixed style table keyed by style ID.
var LightboxStyles = map[int]LightboxStyle{
	1: {
		ID: 1, Name: "Style 1 - Flat Lightbox (Wall)", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(100, 20, 8, "S: 100×20×8cm"),
			size(120, 24, 8, "M: 120×24×8cm"),
			size(150, 30, 8, "L: 150×30×8cm"),
		),
	},
	2: {
		ID: 2, Name: "Style 2 - Horizontal Bar Lightbox (Top install)", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(100, 20, 12, "S: 100×20×12cm"),
			size(120, 24, 12, "M: 120×24×12cm"),
			size(150, 30, 12, "L: 150×30×12cm"),
		),
	},
	3: {
		ID: 3, Name: "Style 3 - Hanging Bar Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(100, 20, 12, "S: 100×20×12cm"),
			size(120, 24, 12, "M: 120×24×12cm"),
			size(150, 30, 12, "L: 150×30×12cm"),
		),
	},
	4: {
		ID: 4, Name: "Style 4 - Cube Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(20, 20, 20, "S: 20×20×20cm"),
			size(30, 30, 30, "M: 30×30×30cm"),
			size(40, 40, 40, "L: 40×40×40cm"),
		),
	},
	5: {
		ID: 5, Name: "Style 5 - Corner Lightbox (Logo + Text)", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(45, 15, 15, "S: Logo 15×15 + Text 30cm"),
			size(60, 20, 20, "M: Logo 20×20 + Text 40cm"),
			size(75, 25, 25, "L: Logo 25×25 + Text 50cm"),
		),
	},
	6: {
		ID: 6, Name: "Style 6 - Double-sided Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(30, 30, 10, "S: 30×30×10cm"),
			size(40, 40, 10, "M: 40×40×10cm"),
			size(50, 50, 10, "L: 50×50×10cm"),
		),
	},
	7: {
		ID: 7, Name: "Style 7 - Projecting Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(40, 32, 10, "S: 40×32×10cm"),
			size(50, 40, 10, "M: 50×40×10cm"),
			size(60, 48, 10, "L: 60×48×10cm"),
		),
	},
	8: {
		ID: 8, Name: "Style 8 - Letter Box Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(15, 20, 15, "S: 20×15×15cm"),
			size(30, 40, 30, "M: 40×30×30cm"),
			size(40, 55, 40, "L: 55×40×40cm"),
		),
	},
	9: {
		ID: 9, Name: "Style 9 - Horizontal Double-sided Lightbox", PrintFace: "5 luminous faces",
		Sizes: presets(
			size(30, 30, 8, "S: 30×30×8cm"),
			size(40, 40, 10, "M: 40×40×10cm"),
			size(50, 50, 12, "L: 50×50×12cm"),
		),
	},
}

// StyleByID looks up a lightbox style by ID.
func StyleByID(id int) (LightboxStyle, bool) {
	s, ok := LightboxStyles[id]
	return s, ok
}

// StyleIDs returns all style IDs in ascending order.
func StyleIDs() []int {
	ids := make([]int, 0, len(LightboxStyles))
	for i := 1; i <= len(LightboxStyles); i++ {
		if _, ok := LightboxStyles[i]; ok {
			ids = append(ids, i)
		}
	}
	return ids
}
