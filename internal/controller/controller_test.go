package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-counsellor-be/internal/dto"
	"ai-counsellor-be/internal/pkg/logger"
	"ai-counsellor-be/internal/pkg/serverutils"
	"ai-counsellor-be/internal/repository/memory"
	"ai-counsellor-be/internal/service"
	"ai-counsellor-be/pkg/advising/advisingtest"
	"ai-counsellor-be/pkg/advising/executor"
	"ai-counsellor-be/pkg/advising/recommend"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T, f *advisingtest.Fixture) *fiber.App {
	t.Helper()
	log := logger.NewNopLogger()
	exec := executor.New(f.Factory, nil, log)

	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler})
	api := app.Group("/api")
	auth := serverutils.NewJwtMiddleware(testSecret)

	NewDashboardController(service.NewDashboardService(f.Factory)).RegisterRoutes(api, auth)
	NewProfileController(service.NewProfileService(f.Factory, log)).RegisterRoutes(api, auth)
	NewUniversityController(service.NewUniversityService(f.Factory, memory.NewCatalogCache(time.Minute), recommend.NewScorer(), exec)).RegisterRoutes(api, auth)
	return app
}

func token(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": userId.String()}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func do[T any](t *testing.T, app *fiber.App, method, path, auth string) (int, serverutils.Response[T]) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out serverutils.Response[T]
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return resp.StatusCode, out
}

func TestStage_RequiresToken(t *testing.T) {
	app := newTestApp(t, advisingtest.New(t, true))

	status, res := do[any](t, app, http.MethodGet, "/api/stage", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", res.Code)

	status, _ = do[any](t, app, http.MethodGet, "/api/stage", "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUniversityFlow_OverHTTP(t *testing.T) {
	f := advisingtest.New(t, true)
	app := newTestApp(t, f)
	auth := token(t, f.Student)
	u := f.Universities[0].Id.String()

	status, stage := do[dto.StageResponse](t, app, http.MethodGet, "/api/stage", auth)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, stage.Data.Stage)

	status, res := do[any](t, app, http.MethodPost, "/api/universities/"+u+"/lock", auth)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "NOT_SHORTLISTED", res.Code)
	assert.False(t, res.Success)

	status, _ = do[dto.ShortlistActionResponse](t, app, http.MethodPost, "/api/universities/"+u+"/shortlist", auth)
	require.Equal(t, http.StatusOK, status)

	status, locked := do[dto.ShortlistActionResponse](t, app, http.MethodPost, "/api/universities/"+u+"/lock", auth)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 4, locked.Data.Snapshot.Stage)
	assert.Len(t, locked.Data.Snapshot.Tasks, 4)
}

func TestUniversityFlow_BadID(t *testing.T) {
	f := advisingtest.New(t, true)
	app := newTestApp(t, f)

	status, res := do[any](t, app, http.MethodPost, "/api/universities/nope/shortlist", token(t, f.Student))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "HTTP_ERROR", res.Code)
}
