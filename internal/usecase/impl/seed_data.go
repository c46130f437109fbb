package impl

// Default catalog loaded by the one-shot data initialization endpoint.
// Prices are INR list prices for the Indian organic produce market.

const (
	seedAdminEmail    = "admin@organicfood.com"
	seedAdminName     = "System Admin"
	seedAdminPassword = "admin123"
)

type seedCategory struct {
	Name        string
	Description string
	ImageURL    string
}

type seedProduct struct {
	Name          string
	Description   string
	Price         float64
	Category      string
	ImageURL      string
	StockQuantity int
	FarmOrigin    string
}

var seedCategories = []seedCategory{
	{
		Name:        "Fresh Vegetables",
		Description: "Organic vegetables freshly harvested from local farms",
		ImageURL:    "https://images.unsplash.com/photo-1540420773420-3366772f4999",
	},
	{
		Name:        "Fresh Fruits",
		Description: "Seasonal organic fruits packed with natural goodness",
		ImageURL:    "https://images.unsplash.com/photo-1598471338675-f3c09a43cda1",
	},
	{
		Name:        "Dairy Products",
		Description: "Fresh dairy products from grass-fed organic farms",
		ImageURL:    "https://images.unsplash.com/photo-1634141510639-d691d86f47de",
	},
	{
		Name:        "Grains & Cereals",
		Description: "Wholesome organic grains and cereals",
		ImageURL:    "https://images.unsplash.com/photo-1562437243-4117943e59b8",
	},
}

var seedProducts = []seedProduct{
	{
		Name:          "Organic Spinach (Palak)",
		Description:   "Fresh organic spinach leaves rich in iron and vitamins",
		Price:         80.0,
		Category:      "Fresh Vegetables",
		ImageURL:      "https://images.unsplash.com/photo-1576045057995-568f588f82fb",
		StockQuantity: 50,
		FarmOrigin:    "Green Valley Farm, Punjab",
	},
	{
		Name:          "Organic Carrots (Gajar)",
		Description:   "Sweet and crunchy organic carrots",
		Price:         120.0,
		Category:      "Fresh Vegetables",
		ImageURL:      "https://images.unsplash.com/photo-1582515073490-39981397c445",
		StockQuantity: 75,
		FarmOrigin:    "Himalayan Organic Farm",
	},
	{
		Name:          "Organic Tomatoes",
		Description:   "Fresh organic tomatoes perfect for cooking",
		Price:         90.0,
		Category:      "Fresh Vegetables",
		ImageURL:      "https://images.unsplash.com/photo-1546470427-e212b9d65c8c",
		StockQuantity: 60,
		FarmOrigin:    "Nashik Organic Valley",
	},
	{
		Name:          "Organic Onions (Pyaaz)",
		Description:   "Chemical-free red onions from certified organic farms",
		Price:         70.0,
		Category:      "Fresh Vegetables",
		ImageURL:      "https://images.unsplash.com/photo-1518977822534-7049a61b1936",
		StockQuantity: 100,
		FarmOrigin:    "Maharashtra Organic Farms",
	},
	{
		Name:          "Organic Cauliflower (Gobhi)",
		Description:   "Fresh organic cauliflower grown without pesticides",
		Price:         85.0,
		Category:      "Fresh Vegetables",
		ImageURL:      "https://images.unsplash.com/photo-1568584711271-95c67199f895",
		StockQuantity: 40,
		FarmOrigin:    "Punjab Natural Farms",
	},
	{
		Name:          "Organic Strawberries",
		Description:   "Juicy organic strawberries picked at peak ripeness",
		Price:         450.0,
		Category:      "Fresh Fruits",
		ImageURL:      "https://images.unsplash.com/photo-1598471338675-f3c09a43cda1",
		StockQuantity: 30,
		FarmOrigin:    "Himachal Berry Farms",
	},
	{
		Name:          "Organic Apples (Seb)",
		Description:   "Crisp organic apples from Kashmir valley",
		Price:         280.0,
		Category:      "Fresh Fruits",
		ImageURL:      "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6",
		StockQuantity: 80,
		FarmOrigin:    "Kashmir Organic Orchards",
	},
	{
		Name:          "Organic Bananas (Kela)",
		Description:   "Sweet organic bananas rich in potassium",
		Price:         60.0,
		Category:      "Fresh Fruits",
		ImageURL:      "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e",
		StockQuantity: 120,
		FarmOrigin:    "Kerala Organic Plantations",
	},
	{
		Name:          "Organic Mangoes (Aam)",
		Description:   "King of fruits - organic Alphonso mangoes",
		Price:         320.0,
		Category:      "Fresh Fruits",
		ImageURL:      "https://images.unsplash.com/photo-1605664515728-4e747d50c4c9",
		StockQuantity: 45,
		FarmOrigin:    "Ratnagiri Organic Farms",
	},
	{
		Name:          "Organic Milk (Doodh)",
		Description:   "Fresh organic whole milk from grass-fed desi cows",
		Price:         80.0,
		Category:      "Dairy Products",
		ImageURL:      "https://images.unsplash.com/photo-1634141510639-d691d86f47de",
		StockQuantity: 25,
		FarmOrigin:    "Gir Cow Dairy, Gujarat",
	},
	{
		Name:          "Organic Ghee",
		Description:   "Pure organic cow ghee made using traditional methods",
		Price:         650.0,
		Category:      "Dairy Products",
		ImageURL:      "https://images.unsplash.com/photo-1628088062854-d1870b4553da",
		StockQuantity: 35,
		FarmOrigin:    "Vrindavan Organic Dairy",
	},
	{
		Name:          "Organic Paneer",
		Description:   "Fresh organic cottage cheese made from pure milk",
		Price:         180.0,
		Category:      "Dairy Products",
		ImageURL:      "https://images.unsplash.com/photo-1631452180519-c014fe946bc7",
		StockQuantity: 20,
		FarmOrigin:    "Amul Organic",
	},
	{
		Name:          "Organic Basmati Rice",
		Description:   "Premium organic basmati rice with authentic aroma",
		Price:         220.0,
		Category:      "Grains & Cereals",
		ImageURL:      "https://images.unsplash.com/photo-1586201375761-83865001e31c",
		StockQuantity: 100,
		FarmOrigin:    "Haryana Organic Mills",
	},
	{
		Name:          "Organic Wheat Flour (Atta)",
		Description:   "Stone-ground organic wheat flour for healthy rotis",
		Price:         85.0,
		Category:      "Grains & Cereals",
		ImageURL:      "https://images.unsplash.com/photo-1574323347407-f5e1ad6d020b",
		StockQuantity: 150,
		FarmOrigin:    "Punjab Organic Farms",
	},
	{
		Name:          "Organic Toor Dal",
		Description:   "Premium organic yellow lentils rich in protein",
		Price:         140.0,
		Category:      "Grains & Cereals",
		ImageURL:      "https://images.unsplash.com/photo-1596797038530-2c107229654b",
		StockQuantity: 80,
		FarmOrigin:    "Rajasthan Organic Co-op",
	},
	{
		Name:          "Organic Moong Dal",
		Description:   "Organic green gram dal perfect for daily meals",
		Price:         160.0,
		Category:      "Grains & Cereals",
		ImageURL:      "https://images.unsplash.com/photo-1596797038530-2c107229654b",
		StockQuantity: 70,
		FarmOrigin:    "Maharashtra Organic Mills",
	},
	{
		Name:          "Organic Quinoa",
		Description:   "Superfood organic quinoa rich in protein and fiber",
		Price:         380.0,
		Category:      "Grains & Cereals",
		ImageURL:      "https://images.unsplash.com/photo-1586444248902-2f64eddc13df",
		StockQuantity: 40,
		FarmOrigin:    "Himalayan Organic Farms",
	},
}
