package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gigboard/internal/auth"
	bids "gigboard/internal/bidService"
	"gigboard/internal/eventbus"
	gigs "gigboard/internal/gigService"
	hiring "gigboard/internal/hiringService"
	"gigboard/internal/notify"
	"gigboard/internal/repository"
	"gigboard/internal/server"
	users "gigboard/internal/userService"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// TestApp bundles the wired application for end-to-end tests
type TestApp struct {
	Router   *gin.Engine
	Repo     *repository.MemoryRepo
	Bus      *eventbus.MemoryBus
	Registry *notify.Router
	Tokens   *auth.TokenManager
}

// SetupTestApp wires the full application against an in-memory store
func SetupTestApp() *TestApp {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenManager("integration-test-secret", time.Hour)
	bus := eventbus.NewMemoryBus()
	registry := notify.NewRouter()
	registry.Start(bus)

	router := server.SetupRouter(server.Services{
		Users:    users.NewUserService(repo, tokens),
		Gigs:     gigs.NewGigService(repo),
		Bids:     bids.NewBidService(repo),
		Hiring:   hiring.NewHiringService(repo, bus),
		Verifier: tokens,
		Registry: registry,
	})

	return &TestApp{
		Router:   router,
		Repo:     repo,
		Bus:      bus,
		Registry: registry,
		Tokens:   tokens,
	}
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, app *TestApp, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes a request and parses the data field of
// the response envelope
func ExecuteRequestAndParse(t *testing.T, app *TestApp, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	w := ExecuteRequest(t, app, method, url, token, body)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
		if data, ok := resp["data"].(map[string]any); ok {
			return data, w
		}
	}
	return resp, w
}

// newLiveServer starts a real HTTP server for streaming endpoints that the
// recorder cannot exercise
func newLiveServer(t *testing.T, app *TestApp) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

// waitForSessions polls the registry until the user has the wanted number
// of live sessions
func waitForSessions(t *testing.T, app *TestApp, userID string, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if app.Registry.Sessions(userID) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("user %s never reached %d live sessions", userID, want)
}

// RegisterUser registers an account and returns its user id and token
func RegisterUser(t *testing.T, app *TestApp, name, email string) (userID, token string) {
	t.Helper()

	data, w := ExecuteRequestAndParse(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	token = data["token"].(string)
	user := data["user"].(map[string]any)
	return user["user_id"].(string), token
}

// CreateGig posts a gig and returns its id
func CreateGig(t *testing.T, app *TestApp, ownerToken, title string, budget float64) string {
	t.Helper()

	data, w := ExecuteRequestAndParse(t, app, http.MethodPost, "/api/gigs", ownerToken, map[string]any{
		"title":       title,
		"description": title + " description",
		"budget":      budget,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data["gig_id"].(string)
}

// PlaceBid places a bid and returns its id
func PlaceBid(t *testing.T, app *TestApp, freelancerToken, gigID, message string) string {
	t.Helper()

	data, w := ExecuteRequestAndParse(t, app, http.MethodPost, "/api/bids", freelancerToken, map[string]any{
		"gig_id":  gigID,
		"message": message,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data["bid_id"].(string)
}
