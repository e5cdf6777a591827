package services

import "github.com/rnp2860/boleh-makan-vo-sub000/models"

// curatedDishes is the dietitian-audited dish table. Nutrients are per typical
// serving; components sum to roughly the dish totals. Ratings are baseline
// per-condition ratings the advisory generator may tighten but not relax.
//
// Values reviewed against MyFitnessPal/Nutritionix figures for Malaysian
// hawker portions; micros are best-effort estimates.
var curatedDishes = []models.DishEntry{
	{
		Name:     "nasi lemak",
		Keywords: []string{"coconut rice", "nasi lemak ayam", "nasi lemak biasa"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 644, Protein: 18, Carbs: 80, Fat: 28, SatFat: 14,
			Sodium: 890, Sugar: 6, Cholesterol: 190, Phosphorus: 250, Potassium: 420, Fiber: 4,
		},
		Serving: "1 plate with egg, sambal, anchovies",
		Components: []models.MealComponent{
			{Name: "coconut rice", Scalable: true, Nutrients: models.Nutrients{Calories: 400, Protein: 7, Carbs: 68, Fat: 11, SatFat: 9, Sodium: 320, Sugar: 1, Phosphorus: 100, Potassium: 120, Fiber: 2}},
			{Name: "sambal", Scalable: true, Nutrients: models.Nutrients{Calories: 90, Protein: 1, Carbs: 8, Fat: 6, SatFat: 1, Sodium: 380, Sugar: 5, Phosphorus: 20, Potassium: 90, Fiber: 1}},
			{Name: "fried anchovies and peanuts", Scalable: true, Nutrients: models.Nutrients{Calories: 80, Protein: 4, Carbs: 3, Fat: 6, SatFat: 1, Sodium: 160, Sugar: 0, Cholesterol: 10, Phosphorus: 60, Potassium: 110, Fiber: 1}},
			{Name: "boiled egg", Scalable: true, Nutrients: models.Nutrients{Calories: 74, Protein: 6, Carbs: 1, Fat: 5, SatFat: 3, Sodium: 30, Sugar: 0, Cholesterol: 180, Phosphorus: 70, Potassium: 100}},
		},
		Ratings: map[string]string{"diabetes": "caution", "hypertension": "caution", "dyslipidemia": "limit"},
	},
	{
		Name:     "chicken rice",
		Keywords: []string{"nasi ayam", "hainanese chicken rice", "roasted chicken rice"},
		Category: "chinese",
		Nutrients: models.Nutrients{
			Calories: 607, Protein: 32, Carbs: 76, Fat: 19, SatFat: 6,
			Sodium: 1280, Sugar: 3, Cholesterol: 105, Phosphorus: 300, Potassium: 480, Fiber: 2,
		},
		Serving: "1 plate",
		Components: []models.MealComponent{
			{Name: "seasoned rice", Scalable: true, Nutrients: models.Nutrients{Calories: 340, Protein: 6, Carbs: 68, Fat: 5, SatFat: 2, Sodium: 520, Sugar: 1, Phosphorus: 90, Potassium: 100, Fiber: 1}},
			{Name: "poached chicken", Scalable: true, Nutrients: models.Nutrients{Calories: 220, Protein: 25, Carbs: 0, Fat: 13, SatFat: 4, Sodium: 420, Sugar: 0, Cholesterol: 100, Phosphorus: 190, Potassium: 310}},
			{Name: "chilli-ginger sauce and soup", Scalable: true, Nutrients: models.Nutrients{Calories: 47, Protein: 1, Carbs: 8, Fat: 1, Sodium: 340, Sugar: 2, Phosphorus: 20, Potassium: 70, Fiber: 1}},
		},
		Ratings: map[string]string{"hypertension": "limit", "ckd": "caution"},
	},
	{
		Name:     "roti canai",
		Keywords: []string{"roti prata", "roti kosong"},
		Category: "indian",
		Nutrients: models.Nutrients{
			Calories: 420, Protein: 8, Carbs: 52, Fat: 20, SatFat: 10,
			Sodium: 540, Sugar: 4, Cholesterol: 5, Phosphorus: 110, Potassium: 160, Fiber: 2,
		},
		Serving: "1 piece with dhal",
		Components: []models.MealComponent{
			{Name: "roti", Scalable: true, Nutrients: models.Nutrients{Calories: 300, Protein: 5, Carbs: 42, Fat: 12, SatFat: 7, Sodium: 240, Sugar: 3, Phosphorus: 60, Potassium: 80, Fiber: 1}},
			{Name: "dhal curry", Scalable: true, Nutrients: models.Nutrients{Calories: 120, Protein: 3, Carbs: 10, Fat: 8, SatFat: 3, Sodium: 300, Sugar: 1, Cholesterol: 5, Phosphorus: 50, Potassium: 80, Fiber: 1}},
		},
		Ratings: map[string]string{"diabetes": "caution", "dyslipidemia": "caution"},
	},
	{
		Name:     "char kway teow",
		Keywords: []string{"char kuey teow", "ckt", "fried flat noodles"},
		Category: "chinese",
		Nutrients: models.Nutrients{
			Calories: 744, Protein: 23, Carbs: 76, Fat: 38, SatFat: 13,
			Sodium: 1460, Sugar: 7, Cholesterol: 235, Phosphorus: 280, Potassium: 400, Fiber: 3,
		},
		Serving: "1 plate",
		Components: []models.MealComponent{
			{Name: "fried flat noodles", Scalable: true, Nutrients: models.Nutrients{Calories: 520, Protein: 9, Carbs: 70, Fat: 24, SatFat: 8, Sodium: 980, Sugar: 5, Phosphorus: 110, Potassium: 150, Fiber: 2}},
			{Name: "prawns and cockles", Scalable: true, Nutrients: models.Nutrients{Calories: 120, Protein: 12, Carbs: 2, Fat: 6, SatFat: 2, Sodium: 320, Sugar: 0, Cholesterol: 160, Phosphorus: 130, Potassium: 160}},
			{Name: "egg", Scalable: true, Nutrients: models.Nutrients{Calories: 104, Protein: 2, Carbs: 4, Fat: 8, SatFat: 3, Sodium: 160, Sugar: 2, Cholesterol: 75, Phosphorus: 40, Potassium: 90, Fiber: 1}},
		},
		Ratings: map[string]string{"diabetes": "limit", "hypertension": "limit", "dyslipidemia": "limit"},
	},
	{
		Name:     "mee goreng mamak",
		Keywords: []string{"mee goreng", "mamak fried noodles"},
		Category: "mamak",
		Nutrients: models.Nutrients{
			Calories: 660, Protein: 20, Carbs: 88, Fat: 25, SatFat: 8,
			Sodium: 1390, Sugar: 12, Cholesterol: 120, Phosphorus: 230, Potassium: 380, Fiber: 5,
		},
		Serving: "1 plate",
		Ratings: map[string]string{"diabetes": "limit", "hypertension": "limit"},
	},
	{
		Name:     "laksa",
		Keywords: []string{"asam laksa", "curry laksa", "laksa penang"},
		Category: "nyonya",
		Nutrients: models.Nutrients{
			Calories: 432, Protein: 19, Carbs: 58, Fat: 14, SatFat: 8,
			Sodium: 1590, Sugar: 9, Cholesterol: 45, Phosphorus: 220, Potassium: 410, Fiber: 4,
		},
		Serving: "1 bowl",
		Components: []models.MealComponent{
			{Name: "rice noodles", Scalable: true, Nutrients: models.Nutrients{Calories: 220, Protein: 4, Carbs: 48, Fat: 1, Sodium: 180, Sugar: 1, Phosphorus: 60, Potassium: 60, Fiber: 2}},
			{Name: "spicy broth", Scalable: true, Nutrients: models.Nutrients{Calories: 132, Protein: 4, Carbs: 8, Fat: 10, SatFat: 7, Sodium: 1200, Sugar: 7, Phosphorus: 60, Potassium: 200, Fiber: 2}},
			{Name: "fish flakes", Scalable: true, Nutrients: models.Nutrients{Calories: 80, Protein: 11, Carbs: 2, Fat: 3, SatFat: 1, Sodium: 210, Sugar: 1, Cholesterol: 45, Phosphorus: 100, Potassium: 150}},
		},
		Ratings: map[string]string{"hypertension": "limit", "ckd": "caution"},
	},
	{
		Name:     "nasi goreng kampung",
		Keywords: []string{"nasi goreng", "village fried rice"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 590, Protein: 18, Carbs: 72, Fat: 25, SatFat: 7,
			Sodium: 1240, Sugar: 4, Cholesterol: 185, Phosphorus: 220, Potassium: 350, Fiber: 3,
		},
		Serving: "1 plate with fried egg",
		Ratings: map[string]string{"hypertension": "caution", "diabetes": "caution"},
	},
	{
		Name:     "satay ayam",
		Keywords: []string{"chicken satay", "satay"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 460, Protein: 34, Carbs: 26, Fat: 24, SatFat: 8,
			Sodium: 720, Sugar: 16, Cholesterol: 110, Phosphorus: 300, Potassium: 480, Fiber: 3,
		},
		Serving: "10 sticks with peanut sauce and ketupat",
		Components: []models.MealComponent{
			{Name: "chicken skewers", Scalable: true, Nutrients: models.Nutrients{Calories: 250, Protein: 30, Carbs: 4, Fat: 12, SatFat: 4, Sodium: 380, Sugar: 3, Cholesterol: 110, Phosphorus: 220, Potassium: 330}},
			{Name: "peanut sauce", Scalable: true, Nutrients: models.Nutrients{Calories: 150, Protein: 4, Carbs: 10, Fat: 11, SatFat: 3, Sodium: 280, Sugar: 8, Phosphorus: 60, Potassium: 120, Fiber: 2}},
			{Name: "ketupat", Scalable: true, Nutrients: models.Nutrients{Calories: 60, Protein: 0, Carbs: 12, Fat: 1, Sodium: 60, Sugar: 5, Phosphorus: 20, Potassium: 30, Fiber: 1}},
		},
		Ratings: map[string]string{"diabetes": "caution"},
	},
	{
		Name:     "teh tarik",
		Keywords: []string{"pulled tea", "milk tea"},
		Category: "beverage",
		Nutrients: models.Nutrients{
			Calories: 180, Protein: 4, Carbs: 28, Fat: 6, SatFat: 4,
			Sodium: 70, Sugar: 26, Cholesterol: 15, Phosphorus: 100, Potassium: 180,
		},
		Serving: "1 glass (250 ml)",
		Components: []models.MealComponent{
			{Name: "teh tarik", Scalable: false, Nutrients: models.Nutrients{Calories: 180, Protein: 4, Carbs: 28, Fat: 6, SatFat: 4, Sodium: 70, Sugar: 26, Cholesterol: 15, Phosphorus: 100, Potassium: 180}},
		},
		Ratings: map[string]string{"diabetes": "limit"},
	},
	{
		Name:     "milo ais",
		Keywords: []string{"iced milo", "milo dinosaur"},
		Category: "beverage",
		Nutrients: models.Nutrients{
			Calories: 190, Protein: 5, Carbs: 33, Fat: 5, SatFat: 3,
			Sodium: 95, Sugar: 28, Cholesterol: 10, Phosphorus: 120, Potassium: 260,
		},
		Serving: "1 glass (300 ml)",
		Components: []models.MealComponent{
			{Name: "milo ais", Scalable: false, Nutrients: models.Nutrients{Calories: 190, Protein: 5, Carbs: 33, Fat: 5, SatFat: 3, Sodium: 95, Sugar: 28, Cholesterol: 10, Phosphorus: 120, Potassium: 260}},
		},
		Ratings: map[string]string{"diabetes": "limit"},
	},
	{
		Name:     "cendol",
		Keywords: []string{"chendol", "ice kacang"},
		Category: "dessert",
		Nutrients: models.Nutrients{
			Calories: 386, Protein: 5, Carbs: 61, Fat: 14, SatFat: 12,
			Sodium: 120, Sugar: 45, Phosphorus: 90, Potassium: 220, Fiber: 3,
		},
		Serving: "1 bowl",
		Ratings: map[string]string{"diabetes": "limit"},
	},
	{
		Name:     "nasi kandar ayam",
		Keywords: []string{"nasi kandar", "kandar rice"},
		Category: "mamak",
		Nutrients: models.Nutrients{
			Calories: 780, Protein: 35, Carbs: 92, Fat: 30, SatFat: 11,
			Sodium: 1680, Sugar: 6, Cholesterol: 130, Phosphorus: 340, Potassium: 520, Fiber: 4,
		},
		Serving: "1 plate, mixed curries",
		Ratings: map[string]string{"hypertension": "limit", "ckd": "limit", "diabetes": "caution"},
	},
	{
		Name:     "roti telur",
		Keywords: []string{"egg roti"},
		Category: "indian",
		Nutrients: models.Nutrients{
			Calories: 500, Protein: 14, Carbs: 54, Fat: 25, SatFat: 12,
			Sodium: 680, Sugar: 4, Cholesterol: 190, Phosphorus: 160, Potassium: 200, Fiber: 2,
		},
		Serving: "1 piece with dhal",
		Ratings: map[string]string{"dyslipidemia": "caution"},
	},
	{
		Name:     "maggi goreng",
		Keywords: []string{"fried instant noodles", "maggi"},
		Category: "mamak",
		Nutrients: models.Nutrients{
			Calories: 620, Protein: 16, Carbs: 78, Fat: 27, SatFat: 12,
			Sodium: 1750, Sugar: 6, Cholesterol: 95, Phosphorus: 190, Potassium: 280, Fiber: 4,
		},
		Serving: "1 plate",
		Ratings: map[string]string{"hypertension": "limit"},
	},
	{
		Name:     "nasi ayam penyet",
		Keywords: []string{"ayam penyet", "smashed fried chicken rice"},
		Category: "indonesian",
		Nutrients: models.Nutrients{
			Calories: 720, Protein: 38, Carbs: 74, Fat: 30, SatFat: 9,
			Sodium: 1180, Sugar: 5, Cholesterol: 150, Phosphorus: 360, Potassium: 540, Fiber: 3,
		},
		Serving: "1 plate",
		Ratings: map[string]string{"dyslipidemia": "caution", "ckd": "caution"},
	},
	{
		Name:     "tom yam seafood",
		Keywords: []string{"tom yam", "tomyam"},
		Category: "thai",
		Nutrients: models.Nutrients{
			Calories: 300, Protein: 28, Carbs: 18, Fat: 12, SatFat: 5,
			Sodium: 1820, Sugar: 9, Cholesterol: 160, Phosphorus: 280, Potassium: 560, Fiber: 3,
		},
		Serving: "1 bowl",
		Ratings: map[string]string{"hypertension": "limit", "ckd": "caution"},
	},
	{
		Name:     "nasi dagang",
		Keywords: []string{"dagang rice"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 620, Protein: 24, Carbs: 78, Fat: 24, SatFat: 14,
			Sodium: 760, Sugar: 8, Cholesterol: 60, Phosphorus: 270, Potassium: 430, Fiber: 3,
		},
		Serving: "1 packet with fish curry",
		Ratings: map[string]string{"dyslipidemia": "caution"},
	},
	{
		Name:     "mee rebus",
		Keywords: []string{"boiled noodles in gravy"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 540, Protein: 20, Carbs: 76, Fat: 17, SatFat: 6,
			Sodium: 1350, Sugar: 12, Cholesterol: 190, Phosphorus: 220, Potassium: 390, Fiber: 5,
		},
		Serving: "1 bowl",
		Ratings: map[string]string{"hypertension": "limit"},
	},
	{
		Name:     "kuih lapis",
		Keywords: []string{"kuih", "layer cake kuih"},
		Category: "dessert",
		Nutrients: models.Nutrients{
			Calories: 190, Protein: 2, Carbs: 32, Fat: 6, SatFat: 5,
			Sodium: 60, Sugar: 18, Phosphorus: 40, Potassium: 60, Fiber: 1,
		},
		Serving: "2 pieces",
		Ratings: map[string]string{"diabetes": "caution"},
	},
	{
		Name:     "ikan bakar",
		Keywords: []string{"grilled fish", "grilled stingray"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 320, Protein: 40, Carbs: 8, Fat: 14, SatFat: 4,
			Sodium: 880, Sugar: 4, Cholesterol: 90, Phosphorus: 380, Potassium: 680, Fiber: 1,
		},
		Serving: "1 portion with sambal",
		Ratings: map[string]string{"ckd": "caution"},
	},
	{
		Name:     "sup kambing",
		Keywords: []string{"mutton soup"},
		Category: "mamak",
		Nutrients: models.Nutrients{
			Calories: 360, Protein: 30, Carbs: 12, Fat: 21, SatFat: 10,
			Sodium: 1450, Sugar: 3, Cholesterol: 105, Phosphorus: 290, Potassium: 470, Fiber: 2,
		},
		Serving: "1 bowl with bread",
		Ratings: map[string]string{"hypertension": "limit", "dyslipidemia": "limit"},
	},
	{
		Name:     "popiah",
		Keywords: []string{"fresh spring roll"},
		Category: "chinese",
		Nutrients: models.Nutrients{
			Calories: 280, Protein: 9, Carbs: 38, Fat: 10, SatFat: 3,
			Sodium: 620, Sugar: 8, Cholesterol: 35, Phosphorus: 110, Potassium: 260, Fiber: 4,
		},
		Serving: "2 rolls",
		Ratings: map[string]string{},
	},
	{
		Name:     "thosai",
		Keywords: []string{"dosa", "dosai"},
		Category: "indian",
		Nutrients: models.Nutrients{
			Calories: 330, Protein: 9, Carbs: 56, Fat: 8, SatFat: 2,
			Sodium: 520, Sugar: 3, Phosphorus: 140, Potassium: 240, Fiber: 4,
		},
		Serving: "2 pieces with chutney and dhal",
		Ratings: map[string]string{},
	},
	{
		Name:     "nasi kerabu",
		Keywords: []string{"blue rice", "kerabu"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 560, Protein: 26, Carbs: 70, Fat: 19, SatFat: 7,
			Sodium: 740, Sugar: 7, Cholesterol: 85, Phosphorus: 260, Potassium: 460, Fiber: 5,
		},
		Serving: "1 plate with ayam percik",
		Ratings: map[string]string{},
	},
	{
		Name:     "wantan mee",
		Keywords: []string{"wonton noodles", "wantan noodles"},
		Category: "chinese",
		Nutrients: models.Nutrients{
			Calories: 550, Protein: 22, Carbs: 70, Fat: 19, SatFat: 6,
			Sodium: 1520, Sugar: 6, Cholesterol: 70, Phosphorus: 220, Potassium: 340, Fiber: 3,
		},
		Serving: "1 plate (char siu omitted)",
		Ratings: map[string]string{"hypertension": "limit"},
	},
	{
		Name:     "bubur ayam",
		Keywords: []string{"chicken porridge", "chicken congee"},
		Category: "chinese",
		Nutrients: models.Nutrients{
			Calories: 280, Protein: 18, Carbs: 40, Fat: 6, SatFat: 2,
			Sodium: 860, Sugar: 1, Cholesterol: 55, Phosphorus: 170, Potassium: 300, Fiber: 1,
		},
		Serving: "1 bowl",
		Ratings: map[string]string{},
	},
	{
		Name:     "rojak buah",
		Keywords: []string{"fruit rojak", "rojak"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 310, Protein: 7, Carbs: 48, Fat: 11, SatFat: 2,
			Sodium: 540, Sugar: 32, Phosphorus: 100, Potassium: 420, Fiber: 6,
		},
		Serving: "1 plate",
		Ratings: map[string]string{"diabetes": "caution"},
	},
	{
		Name:     "ayam masak merah",
		Keywords: []string{"red cooked chicken"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 340, Protein: 28, Carbs: 14, Fat: 19, SatFat: 6,
			Sodium: 820, Sugar: 10, Cholesterol: 110, Phosphorus: 240, Potassium: 380, Fiber: 2,
		},
		Serving: "1 portion (no rice)",
		Ratings: map[string]string{},
	},
	{
		Name:     "kaya toast",
		Keywords: []string{"roti bakar", "kaya butter toast"},
		Category: "kopitiam",
		Nutrients: models.Nutrients{
			Calories: 340, Protein: 6, Carbs: 44, Fat: 16, SatFat: 9,
			Sodium: 320, Sugar: 20, Cholesterol: 40, Phosphorus: 80, Potassium: 110, Fiber: 1,
		},
		Serving: "2 slices",
		Ratings: map[string]string{"diabetes": "caution", "dyslipidemia": "caution"},
	},
	{
		Name:     "nasi minyak",
		Keywords: []string{"ghee rice"},
		Category: "malay",
		Nutrients: models.Nutrients{
			Calories: 470, Protein: 8, Carbs: 72, Fat: 16, SatFat: 9,
			Sodium: 620, Sugar: 2, Cholesterol: 30, Phosphorus: 120, Potassium: 150, Fiber: 2,
		},
		Serving: "1 plate (rice only)",
		Ratings: map[string]string{"dyslipidemia": "caution"},
	},
}
