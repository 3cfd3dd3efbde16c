package constants

// OtherCategory is the catch-all category for unmatched item descriptions.
// A row with this name always exists after seeding.
const OtherCategory = "Other"

// SeedCategory is one default category with its subcategories, used to seed a
// fresh database. Order is significant: category matching walks the taxonomy
// in this order and the first claim wins.
type SeedCategory struct {
	Name          string
	Subcategories []string
}

// DefaultTaxonomy is the starter taxonomy for a grocery/trading business.
var DefaultTaxonomy = []SeedCategory{
	{Name: "Grains", Subcategories: []string{"Rice (Basmati)", "Sugar", "Wheat Flour"}},
	{Name: "Oils", Subcategories: []string{"Cooking Oil", "Mustard Oil"}},
	{Name: "Packaging", Subcategories: []string{"Cardboard Boxes (12x12)", "Plastic Bags"}},
	{Name: "Dairy", Subcategories: []string{"Milk", "Butter"}},
	{Name: "Vegetables", Subcategories: []string{"Onion", "Potato"}},
	{Name: OtherCategory},
}

// DefaultUnit is assumed for item rows that carry no unit of measure.
const DefaultUnit = "pcs"
