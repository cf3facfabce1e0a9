package qr

// Preset is a named color scheme, in the string form accepted by ParseColor.
type Preset struct {
	Dark      string
	Light     string
	QuietZone string
}

var Classic = Preset{
	Dark:      "#000000",
	Light:     "#FFFFFF",
	QuietZone: "#FFFFFF",
}

var Night = Preset{
	Dark:      "#E6E6E6",
	Light:     "#141414",
	QuietZone: "#141414",
}

var Presets = map[string]Preset{
	"classic": Classic,
	"night":   Night,
}
