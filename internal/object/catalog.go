package object

// Kind identifies a row of the entity catalog.
type Kind int

const (
	KindStocks Kind = iota
	KindEducation
	KindFamilyHome
	KindCommercialPlaza
	KindMaintenance
	KindInterestHike
	KindMarketCrash

	NumKinds = int(KindMarketCrash) + 1
)

// EntityDef describes a spawnable kind. Rows are fixed at compile time.
type EntityDef struct {
	Kind     Kind
	Category Category
	Points   int     // Signed; liabilities are negative
	Speed    float64 // Base fall speed in px/frame
	Size     float64 // Side of the square bounding box in px
	Weight   float64 // Relative spawn probability mass
	Flags    Flags
	Visual   Visual
	Label    string // Label key for the display name
}

// IsTerminal reports whether touching this kind ends the run immediately.
func (d EntityDef) IsTerminal() bool {
	return d.Flags.Has(FlagTerminal)
}

var catalog = [NumKinds]EntityDef{
	KindStocks: {
		Kind: KindStocks, Category: Asset, Points: 100,
		Speed: 2.6, Size: 44, Weight: 30,
		Visual: VisualStocks, Label: "stocksLabel",
	},
	KindEducation: {
		Kind: KindEducation, Category: Asset, Points: 150,
		Speed: 2.2, Size: 46, Weight: 22,
		Visual: VisualSchool, Label: "educationLabel",
	},
	KindFamilyHome: {
		Kind: KindFamilyHome, Category: Asset, Points: 200,
		Speed: 2.0, Size: 50, Weight: 18,
		Visual: VisualHouse, Label: "familyHome",
	},
	KindCommercialPlaza: {
		Kind: KindCommercialPlaza, Category: Asset, Points: 350,
		Speed: 1.8, Size: 56, Weight: 8,
		Visual: VisualPlaza, Label: "commPlaza",
	},
	KindMaintenance: {
		Kind: KindMaintenance, Category: Liability, Points: -50,
		Speed: 2.4, Size: 44, Weight: 18,
		Visual: VisualWrench, Label: "maintenance",
	},
	KindInterestHike: {
		Kind: KindInterestHike, Category: Liability, Points: -100,
		Speed: 3.0, Size: 46, Weight: 12,
		Visual: VisualPercent, Label: "interestHike",
	},
	KindMarketCrash: {
		Kind: KindMarketCrash, Category: Liability, Points: -1000,
		Speed: 3.6, Size: 58, Weight: 2,
		Flags:  FlagFlashing | FlagTerminal,
		Visual: VisualCrash, Label: "marketCrashLabel",
	},
}

// Def returns the catalog row for kind.
func Def(kind Kind) EntityDef {
	return catalog[kind]
}

// Kinds lists every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, NumKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "unknown"
	}
	return catalog[k].Label
}
