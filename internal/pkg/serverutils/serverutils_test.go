package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ai-counsellor-be/pkg/advising"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/me", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		id, err := StudentID(ctx)
		if err != nil {
			return err
		}
		return ctx.JSON(SuccessResponse("ok", id.String()))
	})
	app.Get("/fail/:kind", func(ctx *fiber.Ctx) error {
		switch ctx.Params("kind") {
		case "generation":
			return advising.Wrap(advising.ErrGenerationUnavailable, "test", io.EOF)
		case "locked":
			return advising.Newf(advising.ErrNotShortlisted, "test", "not on your shortlist")
		default:
			return io.ErrUnexpectedEOF
		}
	})
	return app
}

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func decode(t *testing.T, body io.Reader) Response[any] {
	t.Helper()
	var res Response[any]
	require.NoError(t, json.NewDecoder(body).Decode(&res))
	return res
}

func TestJwtMiddleware(t *testing.T) {
	app := newApp()
	student := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.MapClaims{
			"user_id": student.String(),
			"exp":     time.Now().Add(time.Hour).Unix(),
		}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, student.String(), decode(t, resp.Body).Data)
	})

	t.Run("missing token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
		assert.Equal(t, "UNAUTHORIZED", decode(t, resp.Body).Code)
	})

	t.Run("missing claim", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+sign(t, jwt.MapClaims{"sub": "x"}))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})
}

func TestErrorHandler(t *testing.T) {
	app := newApp()

	cases := []struct {
		path   string
		status int
		code   string
	}{
		{"/fail/generation", 503, "GENERATION_UNAVAILABLE"},
		{"/fail/locked", 409, "NOT_SHORTLISTED"},
		{"/fail/other", 500, "INTERNAL"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.path)
		res := decode(t, resp.Body)
		assert.False(t, res.Success)
		assert.Equal(t, tc.code, res.Code, tc.path)
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Message string `validate:"required,max=5"`
	}
	assert.NoError(t, ValidateRequest(req{Message: "hi"}))

	err := ValidateRequest(req{Message: "too long"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "max", ve.Fields["Message"])
}
