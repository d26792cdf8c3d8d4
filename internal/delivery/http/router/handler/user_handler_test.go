package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func registerUserRoutes(e *echo.Echo, uc usecase.UserUsecase) {
	h := NewUserHandler(uc, slog.Default())

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.PUT("/users/:id", h.UpdateUser)
	e.DELETE("/users/:id", h.DeleteUser)
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("returns a page with the pagination summary", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("ListUsers", mock.Anything, &usecase.ListUsersInput{
			Name:  "al",
			Page:  2,
			Limit: 5,
		}).Return(&usecase.ListUsersOutput{
			TotalUsers:  7,
			TotalPages:  2,
			CurrentPage: 2,
			Users: []*entity.User{
				{ID: uuid.New(), Name: "Alice", Email: "alice@example.com"},
				{ID: uuid.New(), Name: "Alicia", Email: "alicia@example.com"},
			},
		}, nil).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodGet, "/users?name=al&page=2&limit=5", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"totalUsers":7`)
		assert.Contains(t, rec.Body.String(), `"totalPages":2`)
		assert.Contains(t, rec.Body.String(), `"currentPage":2`)
		assert.Contains(t, rec.Body.String(), "alicia@example.com")

		uc.AssertExpectations(t)
	})

	t.Run("returns 404 when no users match", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("ListUsers", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrNoUsersFound).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "No users found")
	})
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Run("returns 201 with the created user", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("CreateUser", mock.Anything, &usecase.CreateUserInput{
			Name:  "Bob",
			Email: "bob@example.com",
		}).Return(&entity.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com"}, nil).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"name":"Bob","email":"bob@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "bob@example.com")
	})

	t.Run("returns 400 for a taken email", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("CreateUser", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserAlreadyExists).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodPost, "/users",
			strings.NewReader(`{"name":"Bob","email":"bob@example.com"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User already exists")
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("returns 200 with the updated user", func(t *testing.T) {
		id := uuid.New()
		uc := new(mockUserUsecase)
		uc.On("UpdateUser", mock.Anything, &usecase.UpdateUserInput{
			ID:   id,
			Name: "Robert",
		}).Return(&entity.User{ID: id, Name: "Robert", Email: "bob@example.com"}, nil).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/users/%s", id),
			strings.NewReader(`{"name":"Robert"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Robert")
	})

	t.Run("returns 404 for a missing user", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("UpdateUser", mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrUserNotFound).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/users/%s", uuid.New()),
			strings.NewReader(`{"name":"Robert"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		uc := new(mockUserUsecase)

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodPut, "/users/not-a-uuid",
			strings.NewReader(`{"name":"Robert"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("returns 200 with a confirmation message", func(t *testing.T) {
		id := uuid.New()
		uc := new(mockUserUsecase)
		uc.On("DeleteUser", mock.Anything, id).Return(nil).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%s", id), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "User deleted successfully")
	})

	t.Run("returns 404 for a missing user", func(t *testing.T) {
		uc := new(mockUserUsecase)
		uc.On("DeleteUser", mock.Anything, mock.Anything).
			Return(domainerrors.ErrUserNotFound).Once()

		e := newTestServer()
		registerUserRoutes(e, uc)

		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/users/%s", uuid.New()), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer()
	e.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
