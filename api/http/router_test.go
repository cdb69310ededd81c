package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/careerpilot/backend/api/http"
	"github.com/careerpilot/backend/api/http/handlers"
	"github.com/careerpilot/backend/pkg/auth"
	"github.com/careerpilot/backend/pkg/catalog"
	"github.com/careerpilot/backend/pkg/health"
	"github.com/careerpilot/backend/pkg/health/checkers"
	"github.com/careerpilot/backend/pkg/recommend"
	filerepo "github.com/careerpilot/backend/pkg/repository/jsonfile"
	"github.com/careerpilot/backend/pkg/security/jwt"
	"github.com/careerpilot/backend/pkg/storage/jsonfile"
	"github.com/careerpilot/backend/pkg/user"
)

const testSecret = "test-secret"

// newTestApp wires the full application against a temp file store, the same
// way cmd/server does.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	userRepo := filerepo.NewUserRepository(store)
	cat := catalog.New()
	jwtGen := jwt.NewGenerator(testSecret, "careerpilot", 7*24*time.Hour)

	authUC := auth.NewAuthService(userRepo, jwtGen)
	profileUC := user.NewProfileService(userRepo, cat)
	engine := recommend.NewService(cat)
	readiness := health.NewService(checkers.NewStoreChecker(store))

	authMW := jwt.NewAuthMiddleware(jwtGen, jwt.SubjectCheckerFunc(func(ctx context.Context, email string) (bool, error) {
		if _, err := userRepo.GetByEmail(ctx, email); err != nil {
			return false, nil
		}
		return true, nil
	}))

	app := fiber.New()
	api.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewCatalogHandler(cat),
		handlers.NewProfileHandler(profileUC),
		handlers.NewRecommendationHandler(profileUC, engine),
		handlers.NewDemoHandler(userRepo),
		handlers.NewHealthHandler(readiness),
		authMW,
	)
	return app
}

func sendRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp, parsed
}

func signup(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()
	resp, body := sendRequest(t, app, "POST", "/api/signup", "", map[string]any{
		"name": name, "email": email, "password": password,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %v", body)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestPingAndRoles(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "GET", "/api/ping", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["pong"])
	assert.NotZero(t, body["time"])

	resp, body = sendRequest(t, app, "GET", "/api/roles", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	roles, _ := body["roles"].([]any)
	require.Len(t, roles, 3)
}

func TestSignupLoginFlow(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	// Email is normalized to lowercase on signup.
	signup(t, app, "Alice", "Alice@Test.com", "secret123")

	resp, body := sendRequest(t, app, "POST", "/api/login", "", map[string]any{
		"email": "alice@test.com", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["message"])
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, body = sendRequest(t, app, "GET", "/api/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	u, _ := body["user"].(map[string]any)
	require.NotNil(t, u)
	assert.Equal(t, "alice@test.com", u["email"])
	assert.Equal(t, "Alice", u["name"])
	assert.Equal(t, float64(0), u["progress"])

	resp, body = sendRequest(t, app, "POST", "/api/login", "", map[string]any{
		"email": "alice@test.com", "password": "wrong-pass",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid credentials", body["error"])
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "POST", "/api/signup", "", map[string]any{
		"name": "  ", "email": "a@test.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name, email, password required", body["error"])

	resp, body = sendRequest(t, app, "POST", "/api/signup", "", map[string]any{
		"name": "A", "email": "a@test.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "password length min 6", body["error"])
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	signup(t, app, "One", "dup@test.com", "secret123")

	// Same email with different case is still a duplicate, answered with
	// 400 rather than 409 to keep the public contract.
	resp, body := sendRequest(t, app, "POST", "/api/signup", "", map[string]any{
		"name": "Two", "email": "DUP@test.com", "password": "secret456",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "user exists", body["error"])
}

func TestAuthRequired(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "GET", "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Missing or invalid auth token", body["error"])

	resp, body = sendRequest(t, app, "GET", "/api/me", "garbage.token.here", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", body["error"])
}

func TestAuthExpiredToken(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	signup(t, app, "Alice", "alice@test.com", "secret123")

	// Valid signature, already expired.
	expiredGen := jwt.NewGenerator(testSecret, "careerpilot", -time.Hour)
	tok, err := expiredGen.Generate(context.Background(), "alice@test.com")
	require.NoError(t, err)

	resp, body := sendRequest(t, app, "GET", "/api/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Token expired", body["error"])
}

func TestAuthUnknownSubject(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	// Structurally valid token for a user that was never created.
	gen := jwt.NewGenerator(testSecret, "careerpilot", time.Hour)
	tok, err := gen.Generate(context.Background(), "ghost@test.com")
	require.NoError(t, err)

	resp, body := sendRequest(t, app, "GET", "/api/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found", body["error"])
}

func TestSaveRoleAndHistory(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := signup(t, app, "Alice", "alice@test.com", "secret123")

	resp, body := sendRequest(t, app, "POST", "/api/role/save", token, map[string]any{"role_id": "r1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "saved", body["message"])

	resp, body = sendRequest(t, app, "POST", "/api/role/save", token, map[string]any{"role_id": "r1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "already saved", body["message"])

	resp, body = sendRequest(t, app, "POST", "/api/role/save", token, map[string]any{"role_id": "r2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"r2", "r1"}, body["savedRoles"])

	resp, body = sendRequest(t, app, "POST", "/api/role/save", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "role_id required", body["error"])

	resp, body = sendRequest(t, app, "POST", "/api/role/save", token, map[string]any{"role_id": "r99"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown role_id", body["error"])

	// signup snapshot + two successful saves; the duplicate added nothing
	resp, body = sendRequest(t, app, "GET", "/api/progress/history", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history, _ := body["history"].([]any)
	assert.Len(t, history, 3)
}

func TestProgressUpdateClamps(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := signup(t, app, "Alice", "alice@test.com", "secret123")

	resp, body := sendRequest(t, app, "POST", "/api/progress/update", token, map[string]any{"progress": -5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), body["progress"])

	resp, body = sendRequest(t, app, "POST", "/api/progress/update", token, map[string]any{"progress": 150})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(100), body["progress"])

	resp, body = sendRequest(t, app, "POST", "/api/progress/update", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "progress required", body["error"])
}

func TestRecommendationRequiresSavedRoles(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := signup(t, app, "Alice", "alice@test.com", "secret123")

	resp, body := sendRequest(t, app, "GET", "/api/recommendation", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no saved roles, save a role first", body["error"])
}

func TestRecommendationForDemoUser(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "POST", "/api/setup-demo", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "demo user created", body["message"])

	resp, body = sendRequest(t, app, "POST", "/api/login", "", map[string]any{
		"email": "demo@careercraft.test", "password": "password",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	resp, body = sendRequest(t, app, "GET", "/api/recommendation", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	scored, _ := body["scored"].([]any)
	assert.Len(t, scored, 3)

	// Demo user has progress 46 => learned 2; the gap dominates equally for
	// all roles, so the highest baseline wins regardless of jitter.
	best, _ := body["best"].(map[string]any)
	require.NotNil(t, best)
	role, _ := best["role"].(map[string]any)
	require.NotNil(t, role)
	assert.Equal(t, "Software Developer", role["title"])

	gap, _ := body["skill_gap"].([]any)
	assert.Equal(t, []any{"JavaScript", "React", "Backend", "Projects"}, gap)

	resources, _ := body["resources"].([]any)
	assert.LessOrEqual(t, len(resources), 8)
}

func TestSetupDemoIdempotent(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "POST", "/api/setup-demo", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "demo user created", body["message"])

	resp, body = sendRequest(t, app, "POST", "/api/setup-demo", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "demo already present", body["message"])
}

func TestResources(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)
	token := signup(t, app, "Alice", "alice@test.com", "secret123")

	resp, body := sendRequest(t, app, "GET", "/api/resources", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	available, _ := body["available"].([]any)
	assert.Len(t, available, 4)
	table, _ := body["resources"].(map[string]any)
	assert.Contains(t, table, "DSA")

	resp, body = sendRequest(t, app, "GET", "/api/resources?skills=DSA,Python", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list, _ := body["resources"].([]any)
	require.Len(t, list, 2)

	resp, body = sendRequest(t, app, "GET", "/api/resources?skills=NoSuchSkill", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list, _ = body["resources"].([]any)
	assert.Empty(t, list)

	// Resources require auth like the other user-facing reads.
	resp, _ = sendRequest(t, app, "GET", "/api/resources", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHealthAndReady(t *testing.T) {
	t.Parallel()
	app := newTestApp(t)

	resp, body := sendRequest(t, app, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = sendRequest(t, app, "GET", "/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])
}
