package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/dto"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/handler"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/repository"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/response"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/router"
	"github.com/grossvaternick/skills-getting-started-with-github-copilot/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupE2ETest builds a server over a fresh seeded catalog. Every test gets
// its own state, so mutations never leak between tests.
func setupE2ETest(t *testing.T) *httptest.Server {
	t.Helper()

	seed, err := repository.SeedActivities()
	require.NoError(t, err)

	catalogRepo := repository.NewCatalogRepository(seed)
	activityService := service.NewActivityService(catalogRepo)

	validate := validator.New()

	activityHandler := handler.NewActivityHandler(activityService, validate)
	healthHandler := handler.NewHealthHandler()

	r := router.SetupRouter(activityHandler, healthHandler)

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	return server
}

func getCatalog(t *testing.T, serverURL string) dto.CatalogDTO {
	t.Helper()

	resp, err := http.Get(serverURL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var catalog dto.CatalogDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&catalog))
	return catalog
}

func postSignup(t *testing.T, serverURL, activity, email string) *http.Response {
	t.Helper()

	encoded := strings.ReplaceAll(activity, " ", "%20")
	resp, err := http.Post(serverURL+"/activities/"+encoded+"/signup?email="+email, "application/json", nil)
	require.NoError(t, err)
	return resp
}

func postUnregister(t *testing.T, serverURL, activity, email string) *http.Response {
	t.Helper()

	encoded := strings.ReplaceAll(activity, " ", "%20")
	resp, err := http.Post(serverURL+"/activities/"+encoded+"/unregister?email="+email, "application/json", nil)
	require.NoError(t, err)
	return resp
}

func decodeMessage(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	var msg response.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	return msg.Message
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp.Detail
}

func TestGetActivities(t *testing.T) {
	server := setupE2ETest(t)

	catalog := getCatalog(t, server.URL)

	expected := []string{
		"Chess Club",
		"Programming Class",
		"Gym Class",
		"Basketball Team",
		"Tennis Club",
		"Art Studio",
		"Music Band",
		"Debate Team",
		"Science Club",
	}
	for _, name := range expected {
		assert.Contains(t, catalog, name)
	}
	assert.Len(t, catalog, len(expected))

	for name, activity := range catalog {
		assert.NotEmpty(t, activity.Description, "activity %s has no description", name)
		assert.NotEmpty(t, activity.Schedule, "activity %s has no schedule", name)
		assert.Positive(t, activity.MaxParticipants, "activity %s has no capacity", name)
		assert.NotNil(t, activity.Participants, "activity %s roster is null", name)
	}

	assert.Contains(t, catalog["Chess Club"].Participants, "michael@mergington.edu")
}

func TestGetActivitiesIdempotent(t *testing.T) {
	server := setupE2ETest(t)

	first, err := http.Get(server.URL + "/activities")
	require.NoError(t, err)
	firstBody, err := io.ReadAll(first.Body)
	require.NoError(t, err)
	first.Body.Close()

	second, err := http.Get(server.URL + "/activities")
	require.NoError(t, err)
	secondBody, err := io.ReadAll(second.Body)
	require.NoError(t, err)
	second.Body.Close()

	assert.Equal(t, string(firstBody), string(secondBody))
}

func TestSignup(t *testing.T) {
	t.Run("valid email", func(t *testing.T) {
		server := setupE2ETest(t)

		resp := postSignup(t, server.URL, "Chess Club", "test@mergington.edu")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		message := decodeMessage(t, resp)
		assert.Contains(t, message, "test@mergington.edu")
		assert.Contains(t, message, "Chess Club")

		catalog := getCatalog(t, server.URL)
		assert.Contains(t, catalog["Chess Club"].Participants, "test@mergington.edu")
	})

	t.Run("nonexistent activity", func(t *testing.T) {
		server := setupE2ETest(t)

		resp := postSignup(t, server.URL, "NonExistent Activity", "test@mergington.edu")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Activity not found", decodeDetail(t, resp))
	})

	t.Run("duplicate email", func(t *testing.T) {
		server := setupE2ETest(t)

		resp1 := postSignup(t, server.URL, "Chess Club", "duplicate@mergington.edu")
		require.Equal(t, http.StatusOK, resp1.StatusCode)
		resp1.Body.Close()

		countAfterFirst := len(getCatalog(t, server.URL)["Chess Club"].Participants)

		resp2 := postSignup(t, server.URL, "Chess Club", "duplicate@mergington.edu")
		require.Equal(t, http.StatusBadRequest, resp2.StatusCode)
		assert.Contains(t, decodeDetail(t, resp2), "already signed up")

		assert.Len(t, getCatalog(t, server.URL)["Chess Club"].Participants, countAfterFirst)
	})

	t.Run("adds participant preserving order", func(t *testing.T) {
		server := setupE2ETest(t)

		before := getCatalog(t, server.URL)["Programming Class"].Participants

		resp := postSignup(t, server.URL, "Programming Class", "newstudent@mergington.edu")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		after := getCatalog(t, server.URL)["Programming Class"].Participants
		require.Len(t, after, len(before)+1)
		assert.Equal(t, before, after[:len(before)])
		assert.Equal(t, "newstudent@mergington.edu", after[len(after)-1])
	})

	t.Run("missing email", func(t *testing.T) {
		server := setupE2ETest(t)

		resp, err := http.Post(server.URL+"/activities/Chess%20Club/signup", "application/json", nil)
		require.NoError(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeDetail(t, resp), "email query parameter is required")
	})
}

func TestUnregister(t *testing.T) {
	t.Run("existing participant", func(t *testing.T) {
		server := setupE2ETest(t)

		require.Contains(t, getCatalog(t, server.URL)["Chess Club"].Participants, "michael@mergington.edu")

		resp := postUnregister(t, server.URL, "Chess Club", "michael@mergington.edu")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, decodeMessage(t, resp), "Unregistered")

		assert.NotContains(t, getCatalog(t, server.URL)["Chess Club"].Participants, "michael@mergington.edu")
	})

	t.Run("nonexistent activity", func(t *testing.T) {
		server := setupE2ETest(t)

		resp := postUnregister(t, server.URL, "NonExistent Activity", "test@mergington.edu")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Activity not found", decodeDetail(t, resp))
	})

	t.Run("not registered", func(t *testing.T) {
		server := setupE2ETest(t)

		resp := postUnregister(t, server.URL, "Chess Club", "notregistered@mergington.edu")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeDetail(t, resp), "not signed up")
	})

	t.Run("empty roster serializes as empty list", func(t *testing.T) {
		server := setupE2ETest(t)

		for _, email := range getCatalog(t, server.URL)["Tennis Club"].Participants {
			resp := postUnregister(t, server.URL, "Tennis Club", email)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}

		resp, err := http.Get(server.URL + "/activities")
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Contains(t, string(body), `"participants":[]`)
	})
}

func TestSignupAndUnregisterFlow(t *testing.T) {
	server := setupE2ETest(t)

	email := "integration@mergington.edu"
	activity := "Gym Class"

	before := getCatalog(t, server.URL)[activity].Participants

	resp := postSignup(t, server.URL, activity, email)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Contains(t, getCatalog(t, server.URL)[activity].Participants, email)

	resp = postUnregister(t, server.URL, activity, email)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	after := getCatalog(t, server.URL)[activity].Participants
	assert.Equal(t, before, after)
}

func TestHealth(t *testing.T) {
	server := setupE2ETest(t)

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMetricsExposed(t *testing.T) {
	server := setupE2ETest(t)

	resp := postSignup(t, server.URL, "Chess Club", "metrics@mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	metricsResp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	metricsResp.Body.Close()

	assert.Equal(t, http.StatusOK, metricsResp.StatusCode)
	assert.Contains(t, string(body), "activities_service_catalog_signups_total")
}

func TestRootRedirectsToFrontend(t *testing.T) {
	server := setupE2ETest(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	resp, err := client.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}
