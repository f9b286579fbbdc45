package models

// Category is one of a fixed set of labels used to classify expenses and
// budget lines.
type Category string

const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEntertainment  Category = "Entertainment"
	CategoryEducation      Category = "Education"
	CategoryBusiness       Category = "Business"
	CategoryTravel         Category = "Travel"
	CategoryUtilities      Category = "Utilities"
	CategoryClothing       Category = "Clothing"
	CategoryGifts          Category = "Gifts"
	CategoryOther          Category = "Other"
)

// CategoryInfo describes a category for pickers.
type CategoryInfo struct {
	Name        Category `json:"name"`
	Description string   `json:"description"`
}

// categories is ordered for display.
var categories = []CategoryInfo{
	{CategoryFoodDining, "Restaurants, groceries, beverages"},
	{CategoryTransportation, "Gas, public transport, parking"},
	{CategoryHousing, "Rent, utilities, maintenance"},
	{CategoryShopping, "Clothing, electronics, general purchases"},
	{CategoryHealthcare, "Medical bills, pharmacy, insurance"},
	{CategoryEntertainment, "Movies, games, subscriptions"},
	{CategoryEducation, "Books, courses, tuition"},
	{CategoryBusiness, "Office supplies, professional services"},
	{CategoryTravel, "Flights, hotels, vacation expenses"},
	{CategoryUtilities, "Electricity, water, internet, phone"},
	{CategoryClothing, "Apparel, shoes, accessories"},
	{CategoryGifts, "Presents, donations, charity"},
	{CategoryOther, "Miscellaneous expenses"},
}

var categorySet = func() map[Category]struct{} {
	set := make(map[Category]struct{}, len(categories))
	for _, c := range categories {
		set[c.Name] = struct{}{}
	}
	return set
}()

// AllCategories returns every category in display order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = c.Name
	}
	return out
}

// CategoryCatalog returns every category with its description.
func CategoryCatalog() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

// ParseCategory returns the Category for s, or false if s is not a known label.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	return c, c.Valid()
}
