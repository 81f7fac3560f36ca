package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fittracker/internal/models"
)

const searchBody = `{
  "totalHits": 2,
  "foods": [
    {
      "fdcId": 1102653,
      "description": "BANANA",
      "brandName": "Chiquita",
      "servingSize": 126,
      "servingSizeUnit": "GRM",
      "foodNutrients": [
        {"nutrientName": "Energy", "value": 112},
        {"nutrientName": "Protein", "value": 1.3},
        {"nutrientName": "Carbohydrate, by difference", "value": 29},
        {"nutrientName": "Total lipid (fat)", "value": 0.4},
        {"nutrientName": "Fiber, total dietary", "value": 3.3},
        {"nutrientName": "Sugars, total including NLEA", "value": 15},
        {"nutrientName": "Sodium, Na", "value": 1},
        {"nutrientName": "Potassium, K", "value": 450}
      ]
    },
    {
      "fdcId": 173944,
      "description": "Bananas, raw",
      "foodNutrients": [
        {"nutrientName": "Energy", "value": 89},
        {"nutrientName": "Protein", "value": 1.09}
      ]
    }
  ]
}`

func TestUSDAFacade_Search(t *testing.T) {
	var gotQuery map[string][]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/foods/search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchBody))
	}))
	defer srv.Close()

	facade := NewUSDAFacade(srv.Client(), srv.URL, "test-key")

	foods, err := facade.Search(context.Background(), "banana")
	require.NoError(t, err)

	assert.Equal(t, []string{"banana"}, gotQuery["query"])
	assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
	assert.Equal(t, []string{"Branded", "Foundation", "SR Legacy"}, gotQuery["dataType"])
	assert.Equal(t, []string{"20"}, gotQuery["pageSize"])

	require.Len(t, foods, 2)
	assert.Equal(t, models.FoodItem{
		FdcID:       "1102653",
		Description: "BANANA",
		BrandName:   "Chiquita",
		ServingSize: 126,
		ServingUnit: "GRM",
		Calories:    112,
		Protein:     1.3,
		Carbs:       29,
		Fat:         0.4,
		Fiber:       3.3,
		Sugar:       15,
		Sodium:      1,
	}, foods[0])

	assert.Equal(t, models.FoodItem{
		FdcID:       "173944",
		Description: "Bananas, raw",
		ServingSize: 100,
		ServingUnit: "g",
		Calories:    89,
		Protein:     1.09,
	}, foods[1])
}

func TestUSDAFacade_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"foods": []}`))
	}))
	defer srv.Close()

	foods, err := NewUSDAFacade(srv.Client(), srv.URL, "k").Search(context.Background(), "xyz")
	require.NoError(t, err)
	assert.NotNil(t, foods)
	assert.Empty(t, foods)
}

func TestUSDAFacade_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"code": "API_KEY_INVALID"}}`))
	}))
	defer srv.Close()

	foods, err := NewUSDAFacade(srv.Client(), srv.URL, "bad").Search(context.Background(), "banana")
	assert.ErrorIs(t, err, models.ErrUpstreamStatus)
	assert.Nil(t, foods)
}

func TestUSDAFacade_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewUSDAFacade(srv.Client(), srv.URL, "k").Search(context.Background(), "banana")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUpstreamStatus)
}

func TestUSDAFacade_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: 20 * time.Millisecond}
	_, err := NewUSDAFacade(client, srv.URL, "k").Search(context.Background(), "banana")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrUpstreamStatus)
}
