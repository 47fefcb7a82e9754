package integrationtests

import (
	"bufio"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Registration and login flow
func TestAuthFlow(t *testing.T) {
	app := SetupTestApp()

	userID, token := RegisterUser(t, app, "Alice", "alice@example.com")
	require.NotEmpty(t, userID)
	require.NotEmpty(t, token)

	// duplicate email rejected
	w := ExecuteRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// wrong password rejected
	w = ExecuteRequest(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// correct login issues a usable token
	data, w := ExecuteRequestAndParse(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusOK, w.Code)
	loginToken := data["token"].(string)

	me, w := ExecuteRequestAndParse(t, app, http.MethodGet, "/api/auth/me", loginToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, userID, me["user_id"])

	// /me without a token is rejected
	w = ExecuteRequest(t, app, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

// Gig posting and browsing
func TestGigFlow(t *testing.T) {
	app := SetupTestApp()

	_, ownerToken := RegisterUser(t, app, "Owner", "owner@example.com")

	// creating a gig requires authentication
	w := ExecuteRequest(t, app, http.MethodPost, "/api/gigs", "", map[string]any{
		"title": "Build landing page", "description": "x", "budget": 800,
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	gigID := CreateGig(t, app, ownerToken, "Build landing page", 800)
	CreateGig(t, app, ownerToken, "Fix backend bug", 300)

	// listing is public and filterable
	w = ExecuteRequest(t, app, http.MethodGet, "/api/gigs?title=landing", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), gigID)
	require.NotContains(t, w.Body.String(), "Fix backend bug")

	gig, w := ExecuteRequestAndParse(t, app, http.MethodGet, "/api/gigs/"+gigID, ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "open", gig["status"])

	// non-positive budget rejected at binding
	w = ExecuteRequest(t, app, http.MethodPost, "/api/gigs", ownerToken, map[string]any{
		"title": "Free work", "description": "x", "budget": -5,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// Bid placement and owner-only listing
func TestBidFlow(t *testing.T) {
	app := SetupTestApp()

	_, ownerToken := RegisterUser(t, app, "Owner", "owner@example.com")
	_, f1Token := RegisterUser(t, app, "Freya", "freya@example.com")
	_, f2Token := RegisterUser(t, app, "Fred", "fred@example.com")

	gigID := CreateGig(t, app, ownerToken, "Build landing page", 800)

	PlaceBid(t, app, f1Token, gigID, "I can do this")
	PlaceBid(t, app, f2Token, gigID, "Pick me instead")

	// one bid per freelancer per gig
	w := ExecuteRequest(t, app, http.MethodPost, "/api/bids", f1Token, map[string]any{
		"gig_id": gigID, "message": "second try",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// unknown gig
	w = ExecuteRequest(t, app, http.MethodPost, "/api/bids", f1Token, map[string]any{
		"gig_id": "no-such-gig", "message": "hello",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// only the owner may list bids
	w = ExecuteRequest(t, app, http.MethodGet, "/api/gigs/"+gigID+"/bids", f1Token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = ExecuteRequest(t, app, http.MethodGet, "/api/gigs/"+gigID+"/bids", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "I can do this")
	require.Contains(t, w.Body.String(), "Pick me instead")
}

// The hire scenario: b1 wins, b2 is rejected, the gig closes, and a second
// hire attempt fails
func TestHireFlow(t *testing.T) {
	app := SetupTestApp()

	_, ownerToken := RegisterUser(t, app, "Owner", "owner@example.com")
	f1ID, f1Token := RegisterUser(t, app, "Freya", "freya@example.com")
	_, f2Token := RegisterUser(t, app, "Fred", "fred@example.com")
	_, strangerToken := RegisterUser(t, app, "Sam", "sam@example.com")

	gigID := CreateGig(t, app, ownerToken, "Build landing page", 800)
	b1 := PlaceBid(t, app, f1Token, gigID, "I can do this")
	b2 := PlaceBid(t, app, f2Token, gigID, "Pick me instead")

	// a stranger cannot hire
	w := ExecuteRequest(t, app, http.MethodPatch, "/api/bids/"+b1+"/hire", strangerToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// unknown bid
	w = ExecuteRequest(t, app, http.MethodPatch, "/api/bids/no-such-bid/hire", ownerToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// the owner hires b1
	data, w := ExecuteRequestAndParse(t, app, http.MethodPatch, "/api/bids/"+b1+"/hire", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hired", data["bid_status"])
	require.Equal(t, "assigned", data["gig_status"])
	require.Equal(t, f1ID, data["freelancer_id"])

	// b2 flipped to rejected in the same transition
	bidsBody := ExecuteRequest(t, app, http.MethodGet, "/api/gigs/"+gigID+"/bids", ownerToken, nil)
	require.Equal(t, http.StatusOK, bidsBody.Code)
	require.Contains(t, bidsBody.Body.String(), `"rejected"`)
	require.NotContains(t, bidsBody.Body.String(), `"pending"`)

	// hiring b2 afterwards fails: the gig is no longer open
	w = ExecuteRequest(t, app, http.MethodPatch, "/api/bids/"+b2+"/hire", ownerToken, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "gig is not open")

	// the assigned gig left the public feed
	w = ExecuteRequest(t, app, http.MethodGet, "/api/gigs", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotContains(t, w.Body.String(), gigID)

	// bids are closed on the assigned gig
	w = ExecuteRequest(t, app, http.MethodPost, "/api/bids", strangerToken, map[string]any{
		"gig_id": gigID, "message": "too late",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

// sseEvents reads SSE event names and data lines from the stream into a channel
func sseEvents(t *testing.T, body *bufio.Scanner) <-chan string {
	t.Helper()
	lines := make(chan string, 32)
	go func() {
		defer close(lines)
		for body.Scan() {
			line := strings.TrimSpace(body.Text())
			if line != "" {
				lines <- line
			}
		}
	}()
	return lines
}

func waitForLine(t *testing.T, lines <-chan string, want string) string {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatalf("stream closed before %q", want)
			}
			if strings.HasPrefix(line, want) {
				return line
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

// The hired freelancer's live SSE session receives the hire event; nobody
// else's does, and the hire succeeds with no listener at all
func TestRealtimeHireNotification(t *testing.T) {
	app := SetupTestApp()
	srv := newLiveServer(t, app)

	_, ownerToken := RegisterUser(t, app, "Owner", "owner@example.com")
	f1ID, f1Token := RegisterUser(t, app, "Freya", "freya@example.com")
	f2ID, f2Token := RegisterUser(t, app, "Fred", "fred@example.com")

	gigID := CreateGig(t, app, ownerToken, "Build landing page", 800)
	b1 := PlaceBid(t, app, f1Token, gigID, "I can do this")

	// connect the winner over SSE, credential in the query string the way
	// a browser EventSource would send it
	resp, err := http.Get(srv.URL + "/api/events?access_token=" + f1Token)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// connect a bystander too
	bystander, err := http.Get(srv.URL + "/api/events?access_token=" + f2Token)
	require.NoError(t, err)
	defer bystander.Body.Close()

	waitForSessions(t, app, f1ID, 1)
	waitForSessions(t, app, f2ID, 1)

	// owner hires; winner must receive the event
	w := ExecuteRequest(t, app, http.MethodPatch, "/api/bids/"+b1+"/hire", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	lines := sseEvents(t, bufio.NewScanner(resp.Body))
	waitForLine(t, lines, "event:hire")
	payload := waitForLine(t, lines, "data:")
	require.Contains(t, payload, gigID)
	require.Contains(t, payload, f1ID)

	// the bystander's stream stays silent: the event goes only to the
	// hired freelancer's sessions
	bystanderLines := sseEvents(t, bufio.NewScanner(bystander.Body))
	select {
	case line, ok := <-bystanderLines:
		if ok {
			require.False(t, strings.HasPrefix(line, "event:hire"),
				"bystander received %q", line)
		}
	case <-time.After(500 * time.Millisecond):
	}
}

// An invalid realtime credential gets the unauthorized event and a closed
// stream, and never registers a session
func TestRealtimeUnauthorized(t *testing.T) {
	app := SetupTestApp()
	srv := newLiveServer(t, app)

	resp, err := http.Get(srv.URL + "/api/events?access_token=not-a-token")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	lines := sseEvents(t, bufio.NewScanner(resp.Body))
	waitForLine(t, lines, "event:unauthorized")
}

// A hire with zero live sessions still succeeds; the notification is
// simply dropped
func TestHireWithoutListeners(t *testing.T) {
	app := SetupTestApp()

	_, ownerToken := RegisterUser(t, app, "Owner", "owner@example.com")
	f1ID, f1Token := RegisterUser(t, app, "Freya", "freya@example.com")

	gigID := CreateGig(t, app, ownerToken, "Build landing page", 800)
	b1 := PlaceBid(t, app, f1Token, gigID, "I can do this")

	require.Zero(t, app.Registry.Sessions(f1ID))

	w := ExecuteRequest(t, app, http.MethodPatch, "/api/bids/"+b1+"/hire", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	gig, err := app.Repo.GetGig(gigID)
	require.NoError(t, err)
	require.Equal(t, "assigned", string(gig.Status))
}
