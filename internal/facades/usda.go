package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sbilibin2017/fittracker/internal/logger"
	"github.com/sbilibin2017/fittracker/internal/models"
)

// Data types requested from the search endpoint.
var searchDataTypes = []string{"Branded", "Foundation", "SR Legacy"}

const searchPageSize = 20

// Nutrient names as reported by FoodData Central.
const (
	nutrientEnergy  = "Energy"
	nutrientProtein = "Protein"
	nutrientCarbs   = "Carbohydrate, by difference"
	nutrientFat     = "Total lipid (fat)"
	nutrientFiber   = "Fiber, total dietary"
	nutrientSugar   = "Sugars, total including NLEA"
	nutrientSodium  = "Sodium, Na"
)

type usdaSearchResponse struct {
	Foods []usdaFood `json:"foods"`
}

type usdaFood struct {
	FdcID           json.Number    `json:"fdcId"`
	Description     string         `json:"description"`
	BrandName       *string        `json:"brandName"`
	ServingSize     *float64       `json:"servingSize"`
	ServingSizeUnit *string        `json:"servingSizeUnit"`
	FoodNutrients   []usdaNutrient `json:"foodNutrients"`
}

type usdaNutrient struct {
	NutrientName string  `json:"nutrientName"`
	Value        float64 `json:"value"`
}

// USDAFacade searches the USDA FoodData Central API.
type USDAFacade struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewUSDAFacade creates a facade for baseURL (e.g. https://api.nal.usda.gov/fdc/v1).
func NewUSDAFacade(client *http.Client, baseURL, apiKey string) *USDAFacade {
	return &USDAFacade{client: client, baseURL: baseURL, apiKey: apiKey}
}

// Search queries /foods/search and normalizes every result.
func (f *USDAFacade) Search(ctx context.Context, query string) ([]models.FoodItem, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("api_key", f.apiKey)
	for _, dt := range searchDataTypes {
		params.Add("dataType", dt)
	}
	params.Set("pageSize", strconv.Itoa(searchPageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/foods/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("food data api request failed", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("food data api returned unexpected status", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("food data api: %w %d", models.ErrUpstreamStatus, resp.StatusCode)
	}

	var body usdaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode food data api response", "query", query, "error", err)
		return nil, fmt.Errorf("decode food data response: %w", err)
	}

	foods := make([]models.FoodItem, 0, len(body.Foods))
	for _, food := range body.Foods {
		foods = append(foods, normalize(food))
	}
	return foods, nil
}

// normalize flattens the nutrient list. Missing nutrients are 0; a missing
// serving is 100 g.
func normalize(food usdaFood) models.FoodItem {
	nutrients := make(map[string]float64, len(food.FoodNutrients))
	for _, n := range food.FoodNutrients {
		nutrients[n.NutrientName] = n.Value
	}

	item := models.FoodItem{
		FdcID:       food.FdcID.String(),
		Description: food.Description,
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    nutrients[nutrientEnergy],
		Protein:     nutrients[nutrientProtein],
		Carbs:       nutrients[nutrientCarbs],
		Fat:         nutrients[nutrientFat],
		Fiber:       nutrients[nutrientFiber],
		Sugar:       nutrients[nutrientSugar],
		Sodium:      nutrients[nutrientSodium],
	}
	if food.BrandName != nil {
		item.BrandName = *food.BrandName
	}
	if food.ServingSize != nil {
		item.ServingSize = *food.ServingSize
	}
	if food.ServingSizeUnit != nil {
		item.ServingUnit = *food.ServingSizeUnit
	}
	return item
}
