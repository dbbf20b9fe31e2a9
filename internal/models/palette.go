package models

// Colors is the fixed capsule color palette. Capsule color fields store an
// index into this list; the names are product data and must not be reordered,
// existing rows depend on the positions.
var Colors = []string{
	"Polychrome",
	"Blanc",
	"Crème",
	"Or",
	"Rose",
	"Rouge",
	"Bordeau",
	"Violet",
	"Vert",
	"Bleu",
	"Marron",
	"Gris",
	"Noir",
	"Jaune",
	"Orange",
}

// Diameters is the fixed list of capsule sizes, indexed like Colors.
var Diameters = []string{
	"Huitième (24mm)",
	"Quart (26mm)",
	"Cuvée spéciale (28mm)",
	"Default (30mm)",
	"Jéroboam (33mm)",
	"Nabuchodonosor (40mm)",
}

// ValidColor reports whether i is an index into Colors.
func ValidColor(i int) bool {
	return i >= 0 && i < len(Colors)
}

// ValidDiameter reports whether i is an index into Diameters.
func ValidDiameter(i int) bool {
	return i >= 0 && i < len(Diameters)
}
