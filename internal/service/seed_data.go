package service

type unitTypeSeed struct {
	name, abbreviation, description string
}

var seedUnitTypes = []unitTypeSeed{
	{"Kilogram", "KG", "Weight in kilograms"},
	{"Gram", "G", "Weight in grams"},
	{"500 Grams", "500G", "500 grams pack"},
	{"250 Grams", "250G", "250 grams pack"},
	{"100 Grams", "100G", "100 grams pack"},
	{"Box", "BOX", "Quantity in boxes"},
	{"Piece", "PC", "Individual pieces"},
	{"Pack of 6", "PK6", "Pack containing 6 pieces"},
	{"Bunch", "BUNCH", "Bunches or bundles"},
	{"Liter", "L", "Volume in liters"},
	{"500ml", "500ML", "500 milliliters"},
	{"Packet", "PKT", "Packaged items"},
	{"Small Pack", "SPKT", "Small packaged items"},
	{"Large Pack", "LPKT", "Large packaged items"},
	{"Bottle", "BTL", "Bottled items"},
	{"Can", "CAN", "Canned items"},
	{"Sachet", "SCH", "Small sachets or packets"},
	{"Jar", "JAR", "Jarred items"},
	{"Tube", "TUBE", "Tubed items"},
	{"Carton", "CTN", "Carton packaging"},
	{"Bundle", "BDL", "Bundled items"},
}

type productSeed struct {
	name  string
	price string
	unit  string
	stock int
	// packQty is how many units one weekly pack carries; 0 keeps the
	// product out of the packs.
	packQty int
}

type categorySeed struct {
	name        string
	description string
	image       string
	// packPrefix names the category's packs, e.g. "Vegetables Weekly Pack".
	packPrefix string
	products   []productSeed
}

var seedCategories = []categorySeed{
	{"Fruits Pack", "Fresh fruits and seasonal produce", "fruits-pack.jpg", "Fruits", []productSeed{
		{"Bananas", "55.00", "KG", 200, 6},
		{"Apples", "200.00", "KG", 100, 4},
		{"Oranges", "70.00", "KG", 150, 4},
		{"Mangoes", "150.00", "KG", 80, 2},
		{"Grapes", "160.00", "KG", 90, 3},
		{"Strawberries", "200.00", "BOX", 60, 0},
		{"Pineapple", "80.00", "PC", 70, 0},
		{"Watermelon", "40.00", "PC", 50, 0},
		{"Papaya", "60.00", "KG", 85, 0},
		{"Kiwi", "180.00", "KG", 65, 0},
	}},
	{"Vegetables Pack", "Fresh vegetables and greens", "vegetables-pack.jpg", "Vegetables", []productSeed{
		{"Spinach", "50.00", "KG", 100, 2},
		{"Tomatoes", "30.00", "KG", 150, 3},
		{"Potatoes", "25.00", "KG", 200, 2},
		{"Carrots", "60.00", "KG", 120, 2},
		{"Onions", "60.00", "KG", 180, 2},
		{"Bell Peppers", "90.00", "KG", 80, 0},
		{"Broccoli", "120.00", "KG", 70, 0},
		{"Cauliflower", "60.00", "PC", 90, 0},
		{"Green Beans", "70.00", "KG", 110, 0},
		{"Cabbage", "45.00", "PC", 130, 0},
	}},
	{"Grocery Pack", "Essential grocery items and staples", "grocery-pack.jpg", "Groceries", []productSeed{
		{"Rice 5kg", "300.00", "PC", 50, 2},
		{"Rice 10kg", "600.00", "PC", 30, 0},
		{"Rice 25kg", "1500.00", "PC", 20, 0},
		{"Flour", "340.00", "KG", 120, 1},
		{"Oil", "850.00", "500ML", 80, 1},
		{"Sugar", "50.00", "KG", 150, 1},
		{"Salt", "30.00", "KG", 200, 1},
		{"Tea", "325.00", "500G", 60, 0},
		{"Coffee", "5750.00", "500G", 45, 0},
		{"Masala", "120.00", "PKT", 90, 0},
		{"Dal", "180.00", "KG", 110, 0},
		{"Pasta", "85.00", "PKT", 75, 0},
		{"Ketchup", "95.00", "BTL", 130, 0},
		{"Biscuits", "65.00", "SPKT", 150, 0},
		{"Cornflakes", "180.00", "BOX", 85, 0},
		{"Milk Powder", "250.00", "250G", 70, 0},
		{"Honey", "220.00", "BTL", 55, 0},
	}},
	{"Juices Pack", "Fresh fruit juices and beverages", "juices-pack.jpg", "Juices", []productSeed{
		{"Orange Juice", "120.00", "BTL", 100, 2},
		{"Apple Juice", "110.00", "BTL", 90, 2},
		{"Mango Juice", "130.00", "BTL", 80, 2},
		{"Mixed Fruit Juice", "140.00", "BTL", 70, 1},
		{"Pineapple Juice", "125.00", "BTL", 85, 1},
	}},
	{"Millets Pack", "Healthy millets and grains", "millets-pack.jpg", "Millets", []productSeed{
		{"Foxtail Millet", "410.00", "KG", 60, 1},
		{"Bajra", "330.00", "KG", 70, 1},
		{"Ragi", "350.00", "KG", 65, 1},
		{"Jowar", "300.00", "KG", 75, 1},
		{"Barley", "380.00", "KG", 55, 1},
	}},
	{"Raw Powder Pack", "Raw spices and powder ingredients", "raw-powder-pack.jpg", "Raw Powder", []productSeed{
		{"Turmeric", "450.00", "500G", 100, 1},
		{"Red Chili", "500.00", "500G", 90, 1},
		{"Coriander", "400.00", "500G", 110, 1},
		{"Cardamom", "600.00", "500G", 85, 1},
		{"Cloves", "550.00", "500G", 75, 1},
	}},
	{"Nutrition Pack", "Nutritional supplements and health products", "nutrition-pack.jpg", "Nutrition", []productSeed{
		{"Whey Protein", "2500.00", "KG", 30, 1},
		{"Multivitamin", "800.00", "SPKT", 50, 1},
		{"Omega 3", "1200.00", "SPKT", 40, 1},
		{"Vitamin D", "600.00", "SPKT", 60, 1},
		{"Calcium", "500.00", "SPKT", 45, 1},
	}},
	{"Dry Fruit Pack", "Dried fruits and nuts", "dry-fruit-pack.jpg", "Dry Fruit", []productSeed{
		{"Almonds", "530.00", "500G", 80, 1},
		{"Cashews", "460.00", "500G", 70, 1},
		{"Walnuts", "590.00", "500G", 60, 1},
		{"Raisins", "260.00", "500G", 90, 1},
		{"Pistachios", "660.00", "500G", 50, 1},
	}},
	{"Festival Pack", "Festival special items and sweets", "festival-pack.jpg", "Festival", []productSeed{
		{"Sweets Mix", "750.00", "KG", 40, 1},
		{"Festival Snacks", "625.00", "KG", 50, 1},
		{"Decorative Items", "375.00", "SPKT", 30, 1},
		{"Incense Sticks", "250.00", "SPKT", 60, 1},
		{"Festival Fruits", "500.00", "KG", 45, 1},
	}},
	{"Flower Pack", "Fresh flowers and bouquets", "flower-pack.jpg", "Flower", []productSeed{
		{"Rose Bouquet", "500.00", "BUNCH", 25, 1},
		{"Lily Bouquet", "420.00", "BUNCH", 30, 1},
		{"Tulip Mix", "580.00", "BUNCH", 20, 1},
		{"Orchid Plant", "670.00", "PC", 15, 1},
		{"Mixed Flowers", "330.00", "BUNCH", 35, 1},
	}},
	{"Sprouts Pack", "Fresh sprouts and microgreens", "sprouts-pack.jpg", "Sprouts", []productSeed{
		{"Mung Sprouts", "60.00", "500G", 80, 2},
		{"Chickpea Sprouts", "70.00", "500G", 70, 2},
		{"Alfalfa Sprouts", "80.00", "500G", 60, 1},
		{"Radish Sprouts", "65.00", "500G", 75, 1},
		{"Mixed Sprouts", "75.00", "500G", 65, 1},
	}},
}

type packTypeSeed struct {
	name      string
	label     string
	duration  string
	basePrice string
	// multiplier scales the weekly pack quantities.
	multiplier int
	period     string
}

var seedPackTypes = []packTypeSeed{
	{"Weekly Pack", "Weekly", "weekly", "2500.00", 1, "one week"},
	{"Bi-Weekly Pack", "Bi-Weekly", "bi-weekly", "5000.00", 2, "two weeks"},
	{"Monthly Pack", "Monthly", "monthly", "10000.00", 4, "one month"},
}

type userSeed struct {
	name, email, phone, password, role string
}

var seedUsers = []userSeed{
	{"John Doe", "john@example.com", "+1234567890", "password123", "customer"},
	{"Admin User", "admin@freshgrupo.com", "+1234567891", "Welcome@919", "admin"},
	{"Delivery Person", "delivery@Freshgrupo.com", "+1234567892", "delivery123", "delivery"},
}
