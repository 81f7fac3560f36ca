package models

// FoodItem is a normalized food search result. Nutrients are per serving.
// swagger:model FoodItem
type FoodItem struct {
	FdcID       string  `json:"fdcId"`
	Description string  `json:"description"`
	BrandName   string  `json:"brandName"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Sugar       float64 `json:"sugar"`
	Sodium      float64 `json:"sodium"`
}
