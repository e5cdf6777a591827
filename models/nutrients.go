package models

// Nutrients is the full per-meal nutrient vector used across the pipeline.
// Units: grams except Sodium/Cholesterol/Phosphorus/Potassium (mg) and Calories (kcal).
type Nutrients struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	SatFat      float64 `json:"saturated_fat"`
	Sodium      float64 `json:"sodium"`
	Sugar       float64 `json:"sugar"`
	Cholesterol float64 `json:"cholesterol"`
	Phosphorus  float64 `json:"phosphorus"`
	Potassium   float64 `json:"potassium"`
	Fiber       float64 `json:"fiber"`
}

func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories:    n.Calories + o.Calories,
		Protein:     n.Protein + o.Protein,
		Carbs:       n.Carbs + o.Carbs,
		Fat:         n.Fat + o.Fat,
		SatFat:      n.SatFat + o.SatFat,
		Sodium:      n.Sodium + o.Sodium,
		Sugar:       n.Sugar + o.Sugar,
		Cholesterol: n.Cholesterol + o.Cholesterol,
		Phosphorus:  n.Phosphorus + o.Phosphorus,
		Potassium:   n.Potassium + o.Potassium,
		Fiber:       n.Fiber + o.Fiber,
	}
}

func (n Nutrients) Scale(f float64) Nutrients {
	return Nutrients{
		Calories:    n.Calories * f,
		Protein:     n.Protein * f,
		Carbs:       n.Carbs * f,
		Fat:         n.Fat * f,
		SatFat:      n.SatFat * f,
		Sodium:      n.Sodium * f,
		Sugar:       n.Sugar * f,
		Cholesterol: n.Cholesterol * f,
		Phosphorus:  n.Phosphorus * f,
		Potassium:   n.Potassium * f,
		Fiber:       n.Fiber * f,
	}
}

func (n Nutrients) IsZero() bool {
	return n == Nutrients{}
}
