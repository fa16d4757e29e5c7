package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/config"
	apimiddleware "bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	"bookstore/internal/delivery/api/router"
	"bookstore/internal/delivery/api/router/handler"
	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	"bookstore/internal/infra/auth"
	"bookstore/internal/infra/cache"
	"bookstore/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testApp struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.SecretKey.Access = "scenario-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: config.DefaultTokenTTL}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newMemStore()

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accounts := impl.NewAccountService(impl.AccountServiceParams{
		TxManager:    store,
		AccountRepo:  store.AccountRepo(),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})
	books := impl.NewBookService(impl.BookServiceParams{
		TxManager: store,
		BookRepo:  store.BookRepo(),
		Cache:     cache.NewBookCache(nil, cfg),
		Logger:    logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		AccountHandler: handler.NewAccountHandler(accounts, logger),
		BookHandler:    handler.NewBookHandler(books),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.NewAuthenticator(tokenSvc)),
	})

	return &testApp{t: t, echo: e}
}

func (a *testApp) do(method, path, body, token string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func (a *testApp) signin(email, password string) string {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/auth/signin", `{"email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestSignupAndSignin(t *testing.T) {
	app := newTestApp(t)
	credentials := `{"email":"a@b.com","password":"pw123"}`

	rec := app.do(http.MethodPost, "/api/auth/signup", credentials, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "User registered successfully!", decode[response.MessageResponse](t, rec).Message)

	rec = app.do(http.MethodPost, "/api/auth/signup", credentials, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user already exists", decode[response.ErrorResponse](t, rec).Message)

	rec = app.do(http.MethodPost, "/api/auth/signin", `{"email":"x@y.com","password":"pw123"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User not found!", decode[response.ErrorResponse](t, rec).Message)

	rec = app.do(http.MethodPost, "/api/auth/signin", `{"email":"a@b.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decode[response.ErrorResponse](t, rec).Message)

	token := app.signin("a@b.com", "pw123")
	assert.Len(t, strings.Split(token, "."), 3)
}

func TestSignup_InvalidInput(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"email":"not-an-email","password":"pw123"}`,
		`{"email":"a@b.com"}`,
		`{"email":"a@b.com","password":"` + strings.Repeat("x", 73) + `"}`,
		`{not json`,
		``,
	} {
		rec := app.do(http.MethodPost, "/api/auth/signup", body, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "VALIDATION_FAILED", decode[response.ErrorResponse](t, rec).Code, body)
	}
}

func TestBooks_RequireAuthentication(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/api/books", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no token", decode[response.ErrorResponse](t, rec).Message)

	rec = app.do(http.MethodGet, "/api/books", "", "garbage")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid token", decode[response.ErrorResponse](t, rec).Message)
}

func TestBooks_CRUD(t *testing.T) {
	app := newTestApp(t)
	require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/api/auth/signup", `{"email":"a@b.com","password":"pw123"}`, "").Code)
	token := app.signin("a@b.com", "pw123")

	rec := app.do(http.MethodPost, "/api/books", `{"title":"Dune","author":"Frank Herbert","price":9.99,"description":"Spice"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[entity.Book](t, rec)
	assert.Equal(t, "Dune", created.Title)

	rec = app.do(http.MethodPost, "/api/books", `{"title":"No author"}`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodGet, "/api/books/"+created.ID.String(), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, decode[entity.Book](t, rec).ID)

	rec = app.do(http.MethodGet, "/api/books", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]entity.Book](t, rec), 1)

	rec = app.do(http.MethodPut, "/api/books/"+created.ID.String(), `{"price":12.5}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[entity.Book](t, rec)
	assert.Equal(t, "Dune", updated.Title)
	assert.InDelta(t, 12.5, updated.Price, 0.0001)

	rec = app.do(http.MethodDelete, "/api/books/"+created.ID.String(), "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Book deleted successfully!", decode[response.MessageResponse](t, rec).Message)

	rec = app.do(http.MethodGet, "/api/books/"+created.ID.String(), "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", decode[response.ErrorResponse](t, rec).Message)

	rec = app.do(http.MethodGet, "/api/books/not-a-uuid", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid book ID", decode[response.ErrorResponse](t, rec).Message)
}
