// Package services contains the pure pricing engine and supporting
// calculation, formatting, import and export functions. Engine functions
// take plain data in and return plain data out; nothing here touches the
// database or the network.
package services

// Discipline identifies one independently priced BIM modeling scope.
type Discipline string

const (
	DisciplineArchitecture Discipline = "architecture"
	DisciplineMEPF         Discipline = "mepf"
	DisciplineStructure    Discipline = "structure"
	DisciplineSite         Discipline = "site"
)

// AllDisciplines is the canonical pricing order. Line items for an area are
// always emitted in this order regardless of the order on the input.
var AllDisciplines = []Discipline{
	DisciplineArchitecture,
	DisciplineMEPF,
	DisciplineStructure,
	DisciplineSite,
}

// DisciplineLabels maps discipline ids to display labels.
var DisciplineLabels = map[Discipline]string{
	DisciplineArchitecture: "Architecture",
	DisciplineMEPF:         "MEP/F",
	DisciplineStructure:    "Structure",
	DisciplineSite:         "Site",
}

// Scope identifies the interior/exterior coverage of a modeling engagement.
type Scope string

const (
	ScopeFull     Scope = "full"
	ScopeInterior Scope = "interior"
	ScopeExterior Scope = "exterior"
	ScopeRoof     Scope = "roof"
	ScopeFacade   Scope = "facade"
)

// BuildingKind is the canonical kind resolved once at the data boundary.
// The rest of the engine switches on this, never on raw building type codes.
type BuildingKind string

const (
	KindStandard         BuildingKind = "standard"
	KindLandscapeBuilt   BuildingKind = "landscapeBuilt"
	KindLandscapeNatural BuildingKind = "landscapeNatural"
	KindLandscapeMixed   BuildingKind = "landscapeMixed"
	KindACT              BuildingKind = "act"
)

// legacyKindAliases maps pre-migration building type tokens still present in
// old CRM records to their canonical kind.
var legacyKindAliases = map[string]BuildingKind{
	"landscapeBuilt":   KindLandscapeBuilt,
	"landscapeNatural": KindLandscapeNatural,
	"landscapeMixed":   KindLandscapeMixed,
	"landscape":        KindLandscapeMixed,
	"act":              KindACT,
	"ceilingTile":      KindACT,
}

// ResolveBuildingKind normalizes a building type code (numeric category or
// legacy alias) to its canonical kind. Unknown codes degrade to a standard
// building, never to an error.
func ResolveBuildingKind(buildingType string) BuildingKind {
	switch buildingType {
	case "14":
		return KindLandscapeBuilt
	case "15":
		return KindLandscapeNatural
	case "16":
		return KindACT
	}
	if kind, ok := legacyKindAliases[buildingType]; ok {
		return kind
	}
	return KindStandard
}

// IsLandscapeKind reports whether the kind is priced per acre.
func IsLandscapeKind(kind BuildingKind) bool {
	return kind == KindLandscapeBuilt || kind == KindLandscapeNatural || kind == KindLandscapeMixed
}

// BuildingTypeLabels maps category codes 1-16 to display labels.
var BuildingTypeLabels = map[string]string{
	"1":  "Office",
	"2":  "Single-Family Residential",
	"3":  "Multifamily Residential",
	"4":  "Retail",
	"5":  "Warehouse / Industrial",
	"6":  "Healthcare",
	"7":  "Education",
	"8":  "Hospitality",
	"9":  "Religious",
	"10": "Civic / Government",
	"11": "Parking Structure",
	"12": "Mixed Use",
	"13": "Historic",
	"14": "Landscape (Built)",
	"15": "Landscape (Natural)",
	"16": "ACT Ceiling",
}

// baseRates holds per-sqft base rates at LOD 200 for each standard building
// category. Landscape and ACT categories are priced elsewhere and have no row.
var baseRates = map[string]map[Discipline]float64{
	"1":  {DisciplineArchitecture: 0.17, DisciplineMEPF: 0.14, DisciplineStructure: 0.12, DisciplineSite: 0.08},
	"2":  {DisciplineArchitecture: 0.15, DisciplineMEPF: 0.11, DisciplineStructure: 0.10, DisciplineSite: 0.07},
	"3":  {DisciplineArchitecture: 0.16, DisciplineMEPF: 0.13, DisciplineStructure: 0.11, DisciplineSite: 0.08},
	"4":  {DisciplineArchitecture: 0.16, DisciplineMEPF: 0.13, DisciplineStructure: 0.11, DisciplineSite: 0.08},
	"5":  {DisciplineArchitecture: 0.12, DisciplineMEPF: 0.10, DisciplineStructure: 0.09, DisciplineSite: 0.07},
	"6":  {DisciplineArchitecture: 0.22, DisciplineMEPF: 0.19, DisciplineStructure: 0.15, DisciplineSite: 0.09},
	"7":  {DisciplineArchitecture: 0.18, DisciplineMEPF: 0.15, DisciplineStructure: 0.12, DisciplineSite: 0.08},
	"8":  {DisciplineArchitecture: 0.19, DisciplineMEPF: 0.15, DisciplineStructure: 0.13, DisciplineSite: 0.08},
	"9":  {DisciplineArchitecture: 0.20, DisciplineMEPF: 0.14, DisciplineStructure: 0.13, DisciplineSite: 0.08},
	"10": {DisciplineArchitecture: 0.18, DisciplineMEPF: 0.14, DisciplineStructure: 0.12, DisciplineSite: 0.08},
	"11": {DisciplineArchitecture: 0.10, DisciplineMEPF: 0.08, DisciplineStructure: 0.08, DisciplineSite: 0.06},
	"12": {DisciplineArchitecture: 0.17, DisciplineMEPF: 0.14, DisciplineStructure: 0.12, DisciplineSite: 0.08},
	"13": {DisciplineArchitecture: 0.25, DisciplineMEPF: 0.16, DisciplineStructure: 0.15, DisciplineSite: 0.09},
}

const (
	// fallbackBuildingType is used when a building type code has no rate row.
	fallbackBuildingType = "1"
	// fallbackDisciplineRate is used when a discipline has no rate in the row.
	fallbackDisciplineRate = 0.25
)

// lodMultipliers scales base rates by level of detail. LOD 200 is nominal.
var lodMultipliers = map[string]float64{
	"100": 0.85,
	"200": 1.0,
	"250": 1.15,
	"300": 1.3,
	"350": 1.5,
	"400": 1.75,
}

// DefaultLOD applies when neither the area nor a discipline override sets one.
const DefaultLOD = "200"

// areaTier is one half-open [Min, Max) sqft band with a volume discount
// multiplier. A sqft value exactly on a boundary belongs to the upper band.
type areaTier struct {
	Min        float64
	Max        float64 // 0 means unbounded
	Multiplier float64
}

var areaTiers = []areaTier{
	{0, 5000, 1.0},
	{5000, 10000, 0.95},
	{10000, 20000, 0.92},
	{20000, 30000, 0.88},
	{30000, 40000, 0.85},
	{40000, 50000, 0.82},
	{50000, 75000, 0.78},
	{75000, 100000, 0.75},
	{100000, 0, 0.72},
}

// AreaTierMultiplier returns the volume discount multiplier for the band
// containing sqft.
func AreaTierMultiplier(sqft float64) float64 {
	for _, tier := range areaTiers {
		if sqft >= tier.Min && (tier.Max == 0 || sqft < tier.Max) {
			return tier.Multiplier
		}
	}
	return 1.0
}

// GetPricingRate resolves the client per-sqft rate for one building type,
// discipline and LOD combination at the given lookup sqft.
func GetPricingRate(buildingType string, sqft float64, discipline Discipline, lod string) float64 {
	row, ok := baseRates[buildingType]
	if !ok {
		row = baseRates[fallbackBuildingType]
	}
	rate, ok := row[discipline]
	if !ok {
		rate = fallbackDisciplineRate
	}
	lodMult, ok := lodMultipliers[lod]
	if !ok {
		lodMult = 1.0
	}
	return rate * lodMult * AreaTierMultiplier(sqft)
}

// UpteamRateRatio is the fixed vendor-cost share of the client rate.
const UpteamRateRatio = 0.65

// GetUpteamPricingRate resolves the internal vendor per-sqft rate.
func GetUpteamPricingRate(buildingType string, sqft float64, discipline Discipline, lod string) float64 {
	return GetPricingRate(buildingType, sqft, discipline, lod) * UpteamRateRatio
}

// landscapeAcreTier is one half-open [Min, Max) acreage band with per-acre
// rates for built and natural parcels.
type landscapeAcreTier struct {
	Min     float64
	Max     float64 // 0 means unbounded
	Built   float64
	Natural float64
}

var landscapeAcreTiers = []landscapeAcreTier{
	{0, 2, 1800, 1200},
	{2, 10, 1500, 950},
	{10, 0, 1200, 750},
}

// LandscapePerAcreRate returns the per-acre rate for the given kind and
// acreage, before the LOD multiplier. Mixed parcels average built and natural.
func LandscapePerAcreRate(kind BuildingKind, acres float64) float64 {
	for _, tier := range landscapeAcreTiers {
		if acres >= tier.Min && (tier.Max == 0 || acres < tier.Max) {
			switch kind {
			case KindLandscapeBuilt:
				return tier.Built
			case KindLandscapeNatural:
				return tier.Natural
			default:
				return (tier.Built + tier.Natural) / 2
			}
		}
	}
	return 0
}

// SquareFeetPerAcre converts landscape acreage into project square footage.
const SquareFeetPerAcre = 43560.0

// ACTRatePerSqft is the flat rate for ceiling-tile pseudo-areas.
const ACTRatePerSqft = 2.00

// RateLookupFloorSqft is the minimum sqft used for rate lookup and line cost
// on standard and ACT areas. It never applies to total-project sqft.
const RateLookupFloorSqft = 3000.0

// MinimumProjectCharge is the floor applied to any nonzero subtotal.
const MinimumProjectCharge = 3000.0

// cadPackageRates holds per-sqft CAD deliverable rates by package.
var cadPackageRates = map[string]float64{
	"basic":    0.03,
	"standard": 0.05,
	"premium":  0.07,
}

// CadDeliverableMinimum is the floor for a CAD deliverable line.
const CadDeliverableMinimum = 250.0

// GetCadPackageType selects the CAD package by how many disciplines the
// area carries.
func GetCadPackageType(disciplineCount int) string {
	switch {
	case disciplineCount >= 3:
		return "premium"
	case disciplineCount == 2:
		return "standard"
	default:
		return "basic"
	}
}

// elevationTier is one inclusive [From, To] band of per-unit pricing.
// Elevations are priced marginally: each unit is billed at the rate of the
// band it falls in.
type elevationTier struct {
	From int
	To   int // 0 means unbounded
	Rate float64
}

var elevationTiers = []elevationTier{
	{1, 10, 25},
	{11, 20, 20},
	{21, 100, 15},
	{101, 300, 10},
	{301, 0, 5},
}

// FacadeRateOfArchBase is each facade's share of the area's architecture
// base total.
const FacadeRateOfArchBase = 0.10

// serviceRates holds per-unit prices for additional services.
var serviceRates = map[string]float64{
	"matterport":     450,
	"georeferencing": 375,
	"scanningBlock":  600,
}

// ServiceLabels maps service ids to display labels.
var ServiceLabels = map[string]string{
	"matterport":     "Matterport Virtual Tour",
	"georeferencing": "Georeferencing",
	"scanningBlock":  "Additional Scanning Block",
}

// RiskFactor describes one named risk surcharge. Premiums apply to the
// architecture discipline subtotal only and never compound.
type RiskFactor struct {
	ID      string
	Label   string
	Premium float64
}

var riskFactors = map[string]RiskFactor{
	"hazardous": {ID: "hazardous", Label: "Hazardous Site", Premium: 0.25},
	"noPower":   {ID: "noPower", Label: "No Site Power", Premium: 0.20},
	"occupied":  {ID: "occupied", Label: "Occupied Building", Premium: 0.15},
}

// paymentTermRates maps payment term ids to their subtotal adjustment rate.
/// Terms absent from this map adjust nothing: 50/50, net15 and standard are
// recognized zero-adjustment terms, and anything else degrades to zero the
// same way rather than guessing a rate.
var paymentTermRates = map[string]float64{
	"partner": -0.10,
	"prepaid": -0.05,
	"net30":   0.05,
	"net45":   0.07,
	"net60":   0.10,
	"net90":   0.15,
}

// PaymentTermAdjustmentRate returns the adjustment rate for a term id,
// or 0 for zero-adjustment and unrecognized terms.
func PaymentTermAdjustmentRate(term string) float64 {
	return paymentTermRates[term]
}
