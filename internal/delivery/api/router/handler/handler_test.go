package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/delivery/api/middleware"
	"bookstore/internal/delivery/api/response"
	"bookstore/internal/delivery/api/validator"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/entity"
	mockusecase "bookstore/internal/mocks/usecase"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAccountHandler_Signup(t *testing.T) {
	uc := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.Default())
	e := newTestEcho()
	e.POST("/signup", h.Signup)

	uc.EXPECT().
		Signup(mock.Anything, &usecase.SignupInput{Email: "a@b.com", Password: "pw123"}).
		Return(&usecase.SignupOutput{Account: &entity.Account{ID: uuid.New(), Email: "a@b.com"}}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/signup", `{"email":"a@b.com","password":"pw123"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User registered successfully!"}`, rec.Body.String())
}

func TestAccountHandler_SignupRejectsBadInput(t *testing.T) {
	uc := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.Default())
	e := newTestEcho()
	e.POST("/signup", h.Signup)

	for name, body := range map[string]string{
		"not json":       `{"email":`,
		"missing email":  `{"password":"pw123"}`,
		"bad email":      `{"email":"nope","password":"pw123"}`,
		"empty password": `{"email":"a@b.com","password":""}`,
		"long password":  `{"email":"a@b.com","password":"` + strings.Repeat("p", 73) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := serve(e, http.MethodPost, "/signup", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), decodeError(t, rec).Code)
		})
	}
}

func TestAccountHandler_SignupExisting(t *testing.T) {
	uc := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.Default())
	e := newTestEcho()
	e.POST("/signup", h.Signup)

	uc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrAccountExists).Once()

	rec := serve(e, http.MethodPost, "/signup", `{"email":"a@b.com","password":"pw123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "user already exists", decodeError(t, rec).Message)
}

func TestAccountHandler_Signin(t *testing.T) {
	uc := mockusecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.Default())
	e := newTestEcho()
	e.POST("/signin", h.Signin)

	uc.EXPECT().
		Signin(mock.Anything, &usecase.SigninInput{Email: "a@b.com", Password: "pw123"}).
		Return(&usecase.SigninOutput{Token: "h.p.s"}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/signin", `{"email":"a@b.com","password":"pw123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"h.p.s"}`, rec.Body.String())
}

func TestAccountHandler_SigninFailures(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unknown account", domainerrors.ErrAccountNotFound, http.StatusBadRequest, "User not found!"},
		{"wrong password", domainerrors.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{"issue failure", domainerrors.ErrTokenIssueFailed, http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockusecase.NewMockAccountUsecase(t)
			h := NewAccountHandler(uc, slog.Default())
			e := newTestEcho()
			e.POST("/signin", h.Signin)

			uc.EXPECT().Signin(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			rec := serve(e, http.MethodPost, "/signin", `{"email":"a@b.com","password":"pw123"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Message)
		})
	}
}

func newBookRoutes(uc usecase.BookUsecase) *echo.Echo {
	h := NewBookHandler(uc)
	e := newTestEcho()
	e.GET("/books", h.List)
	e.GET("/books/:id", h.Get)
	e.POST("/books", h.Create)
	e.PUT("/books/:id", h.Update)
	e.DELETE("/books/:id", h.Delete)

	return e
}

func TestBookHandler_List(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	books := []*entity.Book{{ID: uuid.New(), Title: "Dune", Author: "Herbert"}}
	uc.EXPECT().List(mock.Anything).Return(books, nil).Once()

	rec := serve(e, http.MethodGet, "/books", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entity.Book
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0].Title)
}

func TestBookHandler_GetMalformedID(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := serve(e, method, "/books/not-a-uuid", `{"title":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code, method)
		assert.Equal(t, "Invalid book ID", decodeError(t, rec).Message, method)
	}
}

func TestBookHandler_GetNotFound(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	id := uuid.New()
	uc.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrBookNotFound).Once()

	rec := serve(e, http.MethodGet, "/books/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", decodeError(t, rec).Message)
}

func TestBookHandler_Create(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	uc.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.CreateBookInput) bool {
			return in.Title == "Dune" && in.Author == "Herbert" && in.Price == 9.5
		})).
		Return(&entity.Book{ID: uuid.New(), Title: "Dune", Author: "Herbert", Price: 9.5}, nil).
		Once()

	rec := serve(e, http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","price":9.5}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(e, http.MethodPost, "/books", `{"title":"","author":"Herbert","price":-1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decodeError(t, rec).Details)

	rec = serve(e, http.MethodPost, "/books", `{"title":"Dune","author":"Herbert","price":1000000000000}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "price: must be less than or equal to 99999999.99", decodeError(t, rec).Details)
}

func TestBookHandler_UpdateCarriesPathID(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	id := uuid.New()
	uc.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateBookInput) bool {
			return in.ID == id && in.Title != nil && *in.Title == "Children of Dune" && in.Author == nil
		})).
		Return(&entity.Book{ID: id, Title: "Children of Dune"}, nil).
		Once()

	rec := serve(e, http.MethodPut, "/books/"+id.String(), `{"title":"Children of Dune"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookHandler_Delete(t *testing.T) {
	uc := mockusecase.NewMockBookUsecase(t)
	e := newBookRoutes(uc)

	id := uuid.New()
	uc.EXPECT().Delete(mock.Anything, id).Return(nil).Once()

	rec := serve(e, http.MethodDelete, "/books/"+id.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Book deleted successfully!"}`, rec.Body.String())
}
