package catalog

// Default Aarka menu, used to seed an empty catalog so a kiosk can run
// standalone before any admin has loaded a menu.

var defaultCategories = []string{
	"Appetizers",
	"Mains",
	"Bread",
	"Rice",
	"Accompaniments",
	"Desserts",
	"Beverages",
}

var spiceLevels = []string{"mild", "medium", "spicy"}

var defaultItems = []Item{
	{
		ID:           "samosas",
		Name:         "Samosas",
		Price:        6.50,
		Category:     "Appetizers",
		Image:        "/static/items/samosas.jpg",
		Description:  "Crispy pastry filled with spiced potatoes and peas",
		Ingredients:  []string{"potato", "peas", "flour", "cumin", "coriander"},
		Allergens:    []string{"gluten"},
		IsVegetarian: true,
		Customizations: &Customizations{
			Other:  []string{"Extra Chutney", "No Onion"},
			AddOns: []string{"Extra Sauce", "Side Salad"},
		},
	},
	{
		ID:           "paneer-tikka",
		Name:         "Paneer Tikka",
		Price:        9.00,
		Category:     "Appetizers",
		Image:        "/static/items/paneer-tikka.jpg",
		Description:  "Char-grilled cottage cheese with peppers and onion",
		Ingredients:  []string{"paneer", "bell pepper", "onion", "yogurt"},
		Allergens:    []string{"dairy"},
		IsVegetarian: true,
		IsGlutenFree: true,
		Customizations: &Customizations{
			SpiceLevels: spiceLevels,
			AddOns:      []string{"Extra Sauce", "Side Salad"},
		},
	},
	{
		ID:          "butter-chicken",
		Name:        "Butter Chicken",
		Price:       15.50,
		Category:    "Mains",
		Image:       "/static/items/butter-chicken.jpg",
		Description: "Tandoori chicken simmered in a buttery tomato gravy",
		Ingredients: []string{"chicken", "tomato", "butter", "cream", "garam masala"},
		Allergens:   []string{"dairy"},
		Customizations: &Customizations{
			SpiceLevels: spiceLevels,
			Other:       []string{"Boneless"},
			AddOns:      []string{"Extra Sauce", "Extra Rice"},
		},
	},
	{
		ID:           "chana-masala",
		Name:         "Chana Masala",
		Price:        12.00,
		Category:     "Mains",
		Image:        "/static/items/chana-masala.jpg",
		Description:  "Chickpeas in a tangy onion-tomato masala",
		Ingredients:  []string{"chickpeas", "onion", "tomato", "ginger", "garlic"},
		IsVegan:      true,
		IsVegetarian: true,
		IsGlutenFree: true,
		Customizations: &Customizations{
			SpiceLevels: spiceLevels,
			AddOns:      []string{"Extra Rice"},
		},
	},
	{
		ID:           "dal-makhani",
		Name:         "Dal Makhani",
		Price:        11.50,
		Category:     "Mains",
		Image:        "/static/items/dal-makhani.jpg",
		Description:  "Black lentils slow-cooked with butter and cream",
		Ingredients:  []string{"black lentils", "kidney beans", "butter", "cream"},
		Allergens:    []string{"dairy"},
		IsVegetarian: true,
		IsGlutenFree: true,
		Customizations: &Customizations{
			SpiceLevels: spiceLevels,
		},
	},
	{
		ID:          "chicken-biryani",
		Name:        "Chicken Biryani",
		Price:       14.00,
		Category:    "Rice",
		Image:       "/static/items/chicken-biryani.jpg",
		Description: "Fragrant basmati rice layered with spiced chicken",
		Ingredients: []string{"chicken", "basmati rice", "saffron", "fried onion"},
		Customizations: &Customizations{
			SpiceLevels: spiceLevels,
			Other:       []string{"Extra Raita"},
		},
	},
	{
		ID:           "basmati-rice",
		Name:         "Steamed Basmati Rice",
		Price:        4.00,
		Category:     "Rice",
		Image:        "/static/items/basmati-rice.jpg",
		Ingredients:  []string{"basmati rice"},
		IsVegan:      true,
		IsVegetarian: true,
		IsGlutenFree: true,
	},
	{
		ID:           "garlic-naan",
		Name:         "Garlic Naan",
		Price:        3.50,
		Category:     "Bread",
		Image:        "/static/items/garlic-naan.jpg",
		Ingredients:  []string{"flour", "garlic", "butter", "yogurt"},
		Allergens:    []string{"gluten", "dairy"},
		IsVegetarian: true,
	},
	{
		ID:           "tandoori-roti",
		Name:         "Tandoori Roti",
		Price:        2.50,
		Category:     "Bread",
		Image:        "/static/items/tandoori-roti.jpg",
		Ingredients:  []string{"whole wheat flour"},
		Allergens:    []string{"gluten"},
		IsVegan:      true,
		IsVegetarian: true,
	},
	{
		ID:           "raita",
		Name:         "Cucumber Raita",
		Price:        3.00,
		Category:     "Accompaniments",
		Image:        "/static/items/raita.jpg",
		Ingredients:  []string{"yogurt", "cucumber", "mint"},
		Allergens:    []string{"dairy"},
		IsVegetarian: true,
		IsGlutenFree: true,
	},
	{
		ID:           "papadum",
		Name:         "Papadum",
		Price:        2.00,
		Category:     "Accompaniments",
		Image:        "/static/items/papadum.jpg",
		Ingredients:  []string{"lentil flour"},
		IsVegan:      true,
		IsVegetarian: true,
		IsGlutenFree: true,
	},
	{
		ID:           "gulab-jamun",
		Name:         "Gulab Jamun",
		Price:        5.00,
		Category:     "Desserts",
		Image:        "/static/items/gulab-jamun.jpg",
		Description:  "Milk dumplings soaked in cardamom syrup",
		Ingredients:  []string{"milk solids", "flour", "sugar", "cardamom"},
		Allergens:    []string{"gluten", "dairy"},
		IsVegetarian: true,
	},
	{
		ID:           "mango-lassi",
		Name:         "Mango Lassi",
		Price:        4.50,
		Category:     "Beverages",
		Image:        "/static/items/mango-lassi.jpg",
		Ingredients:  []string{"mango", "yogurt", "sugar"},
		Allergens:    []string{"dairy"},
		IsVegetarian: true,
		IsGlutenFree: true,
	},
	{
		ID:           "masala-chai",
		Name:         "Masala Chai",
		Price:        3.00,
		Category:     "Beverages",
		Image:        "/static/items/masala-chai.jpg",
		Ingredients:  []string{"black tea", "milk", "ginger", "cardamom"},
		Allergens:    []string{"dairy"},
		IsVegetarian: true,
		IsGlutenFree: true,
	},
}

// DefaultItems returns a copy of the built-in menu.
func DefaultItems() []Item {
	items := make([]Item, len(defaultItems))
	copy(items, defaultItems)
	return items
}

// DefaultCategories returns a copy of the built-in category list.
func DefaultCategories() []string {
	categories := make([]string, len(defaultCategories))
	copy(categories, defaultCategories)
	return categories
}
