package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/fittracker/internal/config"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

type apiClient struct {
	t    *testing.T
	base string
}

func (c apiClient) do(method, path, token string, body any, out any) int {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestMountSwagger(t *testing.T) {
	r := chi.NewRouter()
	mountSwagger(r)

	tests := []struct {
		name         string
		target       string
		expectedCode int
	}{
		{name: "doc json", target: "/swagger/doc.json", expectedCode: http.StatusOK},
		{name: "ui index", target: "/swagger/index.html", expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}

	t.Run("doc json describes the API", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var doc struct {
			Info struct {
				Title string `json:"title"`
			} `json:"info"`
			BasePath string                    `json:"basePath"`
			Paths    map[string]map[string]any `json:"paths"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc))
		assert.Equal(t, "FitTracker API", doc.Info.Title)
		assert.Equal(t, "/api", doc.BasePath)
		assert.Contains(t, doc.Paths, "/register")
		assert.Contains(t, doc.Paths["/food-entries/{entry_id}"], "delete")
	})
}

func TestRun_API(t *testing.T) {
	ctx := context.Background()

	mongoContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7.0",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	defer mongoContainer.Terminate(ctx)

	host, err := mongoContainer.Host(ctx)
	require.NoError(t, err)
	port, err := mongoContainer.MappedPort(ctx, "27017")
	require.NoError(t, err)

	cfg := &config.Config{
		AppHost:             "127.0.0.1",
		AppPort:             "8093",
		LogLevel:            "debug",
		ReadTimeout:         5 * time.Second,
		WriteTimeout:        5 * time.Second,
		IdleTimeout:         5 * time.Second,
		MongoURL:            fmt.Sprintf("mongodb://%s:%s/fittracker_test", host, port.Port()),
		MongoConnectTimeout: 10 * time.Second,
		JWTSecretKey:        "testsecret",
		JWTAlgorithm:        "HS256",
		JWTExp:              30 * time.Minute,
		AllowedOrigins:      config.DefaultAllowedOrigins,
	}

	runCtx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- run(runCtx, cfg) }()

	api := apiClient{t: t, base: "http://" + cfg.Addr() + "/api"}

	require.Eventually(t, func() bool {
		resp, err := http.Get(api.base + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 20*time.Second, 200*time.Millisecond)

	type token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	var alice token
	status := api.do(http.MethodPost, "/register", "", map[string]any{
		"username": "alice", "email": "alice@example.com", "password": "secret",
		"age": 30, "gender": "male", "height": 180, "weight": 80,
	}, &alice)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "bearer", alice.TokenType)

	var detail map[string]string
	status = api.do(http.MethodPost, "/register", "", map[string]any{
		"username": "alice", "email": "other@example.com", "password": "secret",
	}, &detail)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "Username already registered", detail["detail"])

	var login token
	status = api.do(http.MethodPost, "/login", "", map[string]any{"username": "alice", "password": "secret"}, &login)
	require.Equal(t, http.StatusOK, status)

	var profile map[string]any
	status = api.do(http.MethodGet, "/profile", login.AccessToken, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2136.0, profile["daily_calorie_goal"])

	var weights struct {
		Entries []map[string]any `json:"entries"`
	}
	status = api.do(http.MethodGet, "/weight-entries", alice.AccessToken, nil, &weights)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, weights.Entries, 1)

	var created map[string]string
	status = api.do(http.MethodPost, "/food-entries", alice.AccessToken, map[string]any{
		"food_id": "123456", "food_name": "Banana, raw", "meal_type": "breakfast",
		"servings": 1, "calories": 89, "protein": 1.1, "carbs": 22.8, "fat": 0.3, "date": "2024-05-01",
	}, &created)
	require.Equal(t, http.StatusOK, status)
	entryID := created["entry_id"]
	require.NotEmpty(t, entryID)

	var bob token
	status = api.do(http.MethodPost, "/register", "", map[string]any{
		"username": "bob", "email": "bob@example.com", "password": "secret",
	}, &bob)
	require.Equal(t, http.StatusOK, status)

	status = api.do(http.MethodDelete, "/food-entries/"+entryID, bob.AccessToken, nil, &detail)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Food entry not found", detail["detail"])

	var dashboard map[string]any
	status = api.do(http.MethodGet, "/dashboard?date=2024-05-01", alice.AccessToken, nil, &dashboard)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, dashboard["entries_count"])
	assert.NotNil(t, dashboard["latest_weight"])

	status = api.do(http.MethodDelete, "/food-entries/"+entryID, alice.AccessToken, nil, nil)
	assert.Equal(t, http.StatusOK, status)

	status = api.do(http.MethodGet, "/profile", "", nil, &detail)
	assert.Equal(t, http.StatusUnauthorized, status)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}
