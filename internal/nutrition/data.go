package nutrition

// Daily recommended values used for %DV serving math.
var dailyValues = map[string]float64{
	"calories":      2000,
	"carbohydrates": 300,
	"fiber":         25,
	"sugar":         50,
	"protein":       50,
	"fat":           65,
}

// database holds per-100g nutrition data for the supported fruit
// classes. Static, loaded once, never mutated.
var database = map[string]Info{
	"Apple": {
		Calories: 52, Carbohydrates: 14, Fiber: 2.4, Sugar: 10, Protein: 0.3, Fat: 0.2,
		Vitamins: map[string]string{
			"Vitamin C":  "4.6mg (8% DV)",
			"Vitamin K":  "2.2μg (3% DV)",
			"Vitamin B6": "0.04mg (2% DV)",
		},
		Minerals: map[string]string{
			"Potassium":  "107mg (3% DV)",
			"Manganese":  "0.04mg (2% DV)",
			"Phosphorus": "11mg (1% DV)",
		},
		HealthBenefits: []string{
			"Rich in antioxidants and polyphenols",
			"Supports heart health and lowers cholesterol",
			"High fiber promotes digestive health",
			"May help regulate blood sugar levels",
		},
		GlycemicIndex: 36, GlycemicLoad: 5, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"September", "October", "November"},
			Available:   "Year-round (stored)",
			BestQuality: "Fall",
		},
		Storage: StorageInfo{
			RoomTemp:     "1-2 weeks",
			Refrigerated: "4-6 weeks",
			Tips:         "Store in crisper drawer. Keep away from strong-smelling foods as apples absorb odors.",
			Ripening:     "Store at room temperature to ripen faster",
		},
		Recipes: []Recipe{
			{Name: "Apple Cinnamon Smoothie", Ingredients: []string{"1 apple", "1 banana", "cinnamon", "almond milk", "honey"}, Type: "smoothie"},
			{Name: "Waldorf Salad", Ingredients: []string{"apples", "celery", "walnuts", "grapes", "yogurt"}, Type: "salad"},
			{Name: "Baked Apple Chips", Ingredients: []string{"apples", "cinnamon", "sugar (optional)"}, Type: "snack"},
		},
	},
	"Banana": {
		Calories: 89, Carbohydrates: 23, Fiber: 2.6, Sugar: 12, Protein: 1.1, Fat: 0.3,
		Vitamins: map[string]string{
			"Vitamin B6": "0.37mg (22% DV)",
			"Vitamin C":  "8.7mg (15% DV)",
			"Folate":     "20μg (5% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "358mg (10% DV)",
			"Magnesium": "27mg (7% DV)",
			"Manganese": "0.27mg (13% DV)",
		},
		HealthBenefits: []string{
			"Excellent source of potassium for heart health",
			"Natural energy booster for athletes",
			"Contains resistant starch for gut health",
			"Supports muscle recovery after exercise",
		},
		GlycemicIndex: 51, GlycemicLoad: 13, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"Year-round"},
			Available:   "Year-round",
			BestQuality: "All seasons",
		},
		Storage: StorageInfo{
			RoomTemp:     "2-7 days (depending on ripeness)",
			Refrigerated: "1-2 weeks (skin darkens but fruit stays fresh)",
			Tips:         "Separate from other fruits to prevent over-ripening. Freeze overripe bananas for smoothies.",
			Ripening:     "Place in paper bag with apple to speed ripening",
		},
		Recipes: []Recipe{
			{Name: "Banana Peanut Butter Smoothie", Ingredients: []string{"2 bananas", "peanut butter", "milk", "honey", "ice"}, Type: "smoothie"},
			{Name: "Banana Oat Pancakes", Ingredients: []string{"bananas", "oats", "eggs", "cinnamon"}, Type: "breakfast"},
			{Name: "Frozen Banana Bites", Ingredients: []string{"bananas", "dark chocolate", "nuts"}, Type: "snack"},
		},
	},
	"Orange": {
		Calories: 47, Carbohydrates: 12, Fiber: 2.4, Sugar: 9, Protein: 0.9, Fat: 0.1,
		Vitamins: map[string]string{
			"Vitamin C": "53.2mg (89% DV)",
			"Thiamin":   "0.09mg (6% DV)",
			"Folate":    "30μg (8% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "181mg (5% DV)",
			"Calcium":   "40mg (4% DV)",
			"Magnesium": "10mg (3% DV)",
		},
		HealthBenefits: []string{
			"Exceptional vitamin C for immune support",
			"Contains flavonoids that reduce inflammation",
			"Supports skin health and collagen production",
			"May help prevent kidney stones",
		},
		GlycemicIndex: 43, GlycemicLoad: 5, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"December", "January", "February", "March"},
			Available:   "Year-round",
			BestQuality: "Winter",
		},
		Storage: StorageInfo{
			RoomTemp:     "1 week",
			Refrigerated: "2-3 weeks",
			Tips:         "Store in mesh bag for air circulation. Bring to room temperature before eating for best flavor.",
			Ripening:     "Oranges do not ripen after picking",
		},
		Recipes: []Recipe{
			{Name: "Orange Creamsicle Smoothie", Ingredients: []string{"2 oranges", "vanilla yogurt", "honey", "ice"}, Type: "smoothie"},
			{Name: "Citrus Salad", Ingredients: []string{"oranges", "grapefruit", "mint", "honey", "almonds"}, Type: "salad"},
			{Name: "Orange Glazed Chicken", Ingredients: []string{"orange juice", "chicken", "garlic", "soy sauce"}, Type: "main"},
		},
	},
	"Mango": {
		Calories: 60, Carbohydrates: 15, Fiber: 1.6, Sugar: 14, Protein: 0.8, Fat: 0.4,
		Vitamins: map[string]string{
			"Vitamin C": "36.4mg (61% DV)",
			"Vitamin A": "54μg (6% DV)",
			"Folate":    "43μg (11% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "168mg (5% DV)",
			"Copper":    "0.11mg (5% DV)",
			"Magnesium": "10mg (3% DV)",
		},
		HealthBenefits: []string{
			"Rich in beta-carotene for eye health",
			"Contains enzymes that aid digestion",
			"High in antioxidants like mangiferin",
			"Supports immune system function",
		},
		GlycemicIndex: 51, GlycemicLoad: 8, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"May", "June", "July", "August"},
			Available:   "Spring to Fall",
			BestQuality: "Summer",
		},
		Storage: StorageInfo{
			RoomTemp:     "2-5 days until ripe",
			Refrigerated: "5-7 days (once ripe)",
			Tips:         "Store unripe mangos at room temperature. Refrigerate only after fully ripe.",
			Ripening:     "Place in paper bag at room temperature",
		},
		Recipes: []Recipe{
			{Name: "Tropical Mango Smoothie", Ingredients: []string{"1 mango", "pineapple", "coconut milk", "lime"}, Type: "smoothie"},
			{Name: "Mango Salsa", Ingredients: []string{"mango", "red onion", "cilantro", "jalapeño", "lime"}, Type: "sauce"},
			{Name: "Mango Sticky Rice", Ingredients: []string{"mango", "sticky rice", "coconut milk", "sugar"}, Type: "dessert"},
		},
	},
	"Strawberry": {
		Calories: 32, Carbohydrates: 8, Fiber: 2, Sugar: 5, Protein: 0.7, Fat: 0.3,
		Vitamins: map[string]string{
			"Vitamin C": "58.8mg (98% DV)",
			"Folate":    "24μg (6% DV)",
			"Vitamin K": "2.2μg (3% DV)",
		},
		Minerals: map[string]string{
			"Manganese": "0.39mg (19% DV)",
			"Potassium": "153mg (4% DV)",
			"Magnesium": "13mg (3% DV)",
		},
		HealthBenefits: []string{
			"Very high in vitamin C and antioxidants",
			"Low glycemic index, suitable for diabetics",
			"Contains anthocyanins for heart health",
			"Supports brain health and memory",
		},
		GlycemicIndex: 41, GlycemicLoad: 3, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"April", "May", "June"},
			Available:   "Spring to Summer",
			BestQuality: "Late Spring",
		},
		Storage: StorageInfo{
			RoomTemp:     "1-2 days",
			Refrigerated: "3-7 days",
			Tips:         "Do not wash until ready to eat. Store in single layer with paper towel to absorb moisture.",
			Ripening:     "Strawberries do not ripen after picking",
		},
		Recipes: []Recipe{
			{Name: "Strawberry Banana Smoothie", Ingredients: []string{"strawberries", "banana", "yogurt", "honey"}, Type: "smoothie"},
			{Name: "Strawberry Spinach Salad", Ingredients: []string{"strawberries", "spinach", "feta", "pecans", "balsamic"}, Type: "salad"},
			{Name: "Chocolate Dipped Strawberries", Ingredients: []string{"strawberries", "dark chocolate", "coconut oil"}, Type: "dessert"},
		},
	},
	"Grape": {
		Calories: 69, Carbohydrates: 18, Fiber: 0.9, Sugar: 16, Protein: 0.7, Fat: 0.2,
		Vitamins: map[string]string{
			"Vitamin K":  "14.6μg (18% DV)",
			"Vitamin C":  "3.2mg (5% DV)",
			"Vitamin B6": "0.09mg (5% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "191mg (5% DV)",
			"Copper":    "0.13mg (6% DV)",
			"Manganese": "0.07mg (4% DV)",
		},
		HealthBenefits: []string{
			"Contains resveratrol for heart health",
			"Rich in polyphenols and antioxidants",
			"May support healthy blood pressure",
			"Supports healthy aging",
		},
		GlycemicIndex: 59, GlycemicLoad: 11, GICategory: "medium",
		Season: Season{
			PeakMonths:  []string{"August", "September", "October"},
			Available:   "Summer to Fall",
			BestQuality: "Early Fall",
		},
		Storage: StorageInfo{
			RoomTemp:     "1-2 days",
			Refrigerated: "1-2 weeks",
			Tips:         "Store unwashed in perforated bag. Wash just before eating.",
			Ripening:     "Grapes do not ripen after picking",
		},
		Recipes: []Recipe{
			{Name: "Green Grape Smoothie", Ingredients: []string{"green grapes", "spinach", "banana", "almond milk"}, Type: "smoothie"},
			{Name: "Chicken Salad with Grapes", Ingredients: []string{"chicken", "grapes", "celery", "mayo", "walnuts"}, Type: "salad"},
			{Name: "Frozen Grape Popsicles", Ingredients: []string{"grapes", "yogurt", "honey"}, Type: "snack"},
		},
	},
	"Watermelon": {
		Calories: 30, Carbohydrates: 8, Fiber: 0.4, Sugar: 6, Protein: 0.6, Fat: 0.2,
		Vitamins: map[string]string{
			"Vitamin C":  "8.1mg (14% DV)",
			"Vitamin A":  "28μg (3% DV)",
			"Vitamin B6": "0.05mg (3% DV)",
		},
		Minerals: map[string]string{
			"Potassium":  "112mg (3% DV)",
			"Magnesium":  "10mg (3% DV)",
			"Phosphorus": "11mg (1% DV)",
		},
		HealthBenefits: []string{
			"Excellent hydration (92% water content)",
			"Contains lycopene for heart and prostate health",
			"May reduce muscle soreness after exercise",
			"Low calorie option for weight management",
		},
		GlycemicIndex: 76, GlycemicLoad: 4, GICategory: "high",
		Season: Season{
			PeakMonths:  []string{"June", "July", "August"},
			Available:   "Summer",
			BestQuality: "Mid-Summer",
		},
		Storage: StorageInfo{
			RoomTemp:     "7-10 days (whole)",
			Refrigerated: "3-5 days (cut)",
			Tips:         "Store whole watermelon at room temperature. Once cut, wrap tightly and refrigerate.",
			Ripening:     "Watermelons do not ripen after picking",
		},
		Recipes: []Recipe{
			{Name: "Watermelon Mint Cooler", Ingredients: []string{"watermelon", "mint", "lime", "sparkling water"}, Type: "drink"},
			{Name: "Watermelon Feta Salad", Ingredients: []string{"watermelon", "feta cheese", "mint", "olive oil", "balsamic"}, Type: "salad"},
			{Name: "Frozen Watermelon Pops", Ingredients: []string{"watermelon", "lime juice", "honey"}, Type: "snack"},
		},
	},
	"Pineapple": {
		Calories: 50, Carbohydrates: 13, Fiber: 1.4, Sugar: 10, Protein: 0.5, Fat: 0.1,
		Vitamins: map[string]string{
			"Vitamin C":  "47.8mg (80% DV)",
			"Vitamin B6": "0.11mg (6% DV)",
			"Thiamin":    "0.08mg (5% DV)",
		},
		Minerals: map[string]string{
			"Manganese": "0.93mg (46% DV)",
			"Copper":    "0.11mg (5% DV)",
			"Potassium": "109mg (3% DV)",
		},
		HealthBenefits: []string{
			"Contains bromelain enzyme for digestion",
			"Anti-inflammatory properties",
			"Very high in manganese for bone health",
			"May boost immune system",
		},
		GlycemicIndex: 59, GlycemicLoad: 7, GICategory: "medium",
		Season: Season{
			PeakMonths:  []string{"March", "April", "May", "June", "July"},
			Available:   "Year-round",
			BestQuality: "Spring to Summer",
		},
		Storage: StorageInfo{
			RoomTemp:     "1-2 days (whole, ripe)",
			Refrigerated: "3-5 days (cut)",
			Tips:         "A ripe pineapple should smell sweet at the base. Store upside down to distribute sugars.",
			Ripening:     "Let sit at room temperature to soften",
		},
		Recipes: []Recipe{
			{Name: "Piña Colada Smoothie", Ingredients: []string{"pineapple", "coconut milk", "banana", "ice"}, Type: "smoothie"},
			{Name: "Grilled Pineapple", Ingredients: []string{"pineapple", "brown sugar", "cinnamon", "butter"}, Type: "dessert"},
			{Name: "Hawaiian Poke Bowl", Ingredients: []string{"pineapple", "rice", "fish", "avocado", "soy sauce"}, Type: "main"},
		},
	},
	"Cherry": {
		Calories: 63, Carbohydrates: 16, Fiber: 2.1, Sugar: 13, Protein: 1.1, Fat: 0.2,
		Vitamins: map[string]string{
			"Vitamin C": "7mg (12% DV)",
			"Vitamin A": "3μg (0% DV)",
			"Vitamin K": "2.1μg (3% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "222mg (6% DV)",
			"Copper":    "0.06mg (3% DV)",
			"Manganese": "0.07mg (4% DV)",
		},
		HealthBenefits: []string{
			"Rich in anthocyanins for inflammation",
			"May improve sleep quality (natural melatonin)",
			"Contains compounds that reduce gout attacks",
			"Supports post-workout muscle recovery",
		},
		GlycemicIndex: 22, GlycemicLoad: 4, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"May", "June", "July", "August"},
			Available:   "Late Spring to Summer",
			BestQuality: "Early Summer",
		},
		Storage: StorageInfo{
			RoomTemp:     "1-2 days",
			Refrigerated: "5-10 days",
			Tips:         "Store unwashed with stems attached. Keep in shallow container to prevent crushing.",
			Ripening:     "Cherries do not ripen after picking",
		},
		Recipes: []Recipe{
			{Name: "Cherry Almond Smoothie", Ingredients: []string{"cherries", "almond milk", "vanilla", "honey"}, Type: "smoothie"},
			{Name: "Cherry Compote", Ingredients: []string{"cherries", "sugar", "lemon zest", "vanilla"}, Type: "sauce"},
			{Name: "Black Forest Parfait", Ingredients: []string{"cherries", "chocolate", "whipped cream", "cake"}, Type: "dessert"},
		},
	},
	"Kiwi": {
		Calories: 61, Carbohydrates: 15, Fiber: 3, Sugar: 9, Protein: 1.1, Fat: 0.5,
		Vitamins: map[string]string{
			"Vitamin C": "92.7mg (155% DV)",
			"Vitamin K": "40.3μg (50% DV)",
			"Vitamin E": "1.5mg (7% DV)",
		},
		Minerals: map[string]string{
			"Potassium": "312mg (9% DV)",
			"Copper":    "0.13mg (6% DV)",
			"Magnesium": "17mg (4% DV)",
		},
		HealthBenefits: []string{
			"Exceptionally high in Vitamin C",
			"Contains actinidin enzyme for protein digestion",
			"May improve sleep quality",
			"High fiber for digestive health",
		},
		GlycemicIndex: 50, GlycemicLoad: 7, GICategory: "low",
		Season: Season{
			PeakMonths:  []string{"November", "December", "January", "February", "March"},
			Available:   "Year-round",
			BestQuality: "Winter",
		},
		Storage: StorageInfo{
			RoomTemp:     "3-5 days (until ripe)",
			Refrigerated: "1-2 weeks (once ripe)",
			Tips:         "Firm kiwis can be ripened at room temperature. Ripe kiwis yield to gentle pressure.",
			Ripening:     "Place in paper bag with banana or apple",
		},
		Recipes: []Recipe{
			{Name: "Kiwi Green Smoothie", Ingredients: []string{"2 kiwis", "spinach", "banana", "coconut water"}, Type: "smoothie"},
			{Name: "Tropical Fruit Salad", Ingredients: []string{"kiwi", "mango", "pineapple", "coconut", "lime"}, Type: "salad"},
			{Name: "Kiwi Pavlova", Ingredients: []string{"kiwi", "meringue", "whipped cream", "passion fruit"}, Type: "dessert"},
		},
	},
}
