package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/painel/internal/domain"
	appsession "github.com/nfrund/painel/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!!"

func setupSessionTest(svc *appsession.Service) *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(appsession.NewCookieStore(testSessionSecret, time.Hour, false)))

	e.POST("/login", func(c echo.Context) error {
		name := "Ana"
		_, err := svc.Create(c, &domain.User{ID: "user:1", Email: "ana@example.com", Name: &name})
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.POST("/logout", func(c echo.Context) error {
		if err := svc.Destroy(c); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/whoami", func(c echo.Context) error {
		s, err := svc.Get(c)
		if err != nil {
			return c.String(http.StatusInternalServerError, err.Error())
		}
		if s == nil {
			return c.String(http.StatusOK, "anonymous")
		}
		return c.String(http.StatusOK, s.UserID+" "+s.Email+" "+s.Name)
	})
	return e
}

func do(e *echo.Echo, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestService(t *testing.T) {
	svc := appsession.NewService(time.Hour, false)
	e := setupSessionTest(svc)

	t.Run("no cookie means no session", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/whoami", nil)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("create then get", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/login", nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, appsession.Name, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)

		rec = do(e, http.MethodGet, "/whoami", cookies)
		assert.Equal(t, "user:1 ana@example.com Ana", rec.Body.String())
	})

	t.Run("destroy expires the cookie", func(t *testing.T) {
		rec := do(e, http.MethodPost, "/login", nil)
		login := rec.Result().Cookies()

		rec = do(e, http.MethodPost, "/logout", login)
		require.Equal(t, http.StatusNoContent, rec.Code)
		cleared := rec.Result().Cookies()
		require.NotEmpty(t, cleared)
		assert.True(t, cleared[0].MaxAge < 0)
	})

	t.Run("tampered cookie is not a session", func(t *testing.T) {
		rec := do(e, http.MethodGet, "/whoami", []*http.Cookie{{Name: appsession.Name, Value: "garbage"}})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestService_Expired(t *testing.T) {
	issuer := setupSessionTest(appsession.NewService(time.Hour, false))
	rec := do(issuer, http.MethodPost, "/login", nil)
	cookies := rec.Result().Cookies()

	later := func() time.Time { return time.Now().Add(2 * time.Hour) }
	reader := setupSessionTest(appsession.NewService(time.Hour, false).WithClock(later))

	rec = do(reader, http.MethodGet, "/whoami", cookies)
	assert.Equal(t, "anonymous", rec.Body.String())
}
