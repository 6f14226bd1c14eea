package todo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tick/infras/jwt"
	jwtMocks "tick/infras/jwt/mocks"
	"tick/infras/otel/mocks"
	"tick/internal/domains/todo/model/dto"
	serviceMocks "tick/internal/domains/todo/service/mocks"
	"tick/internal/handlers/todo"
	"tick/shared/constant"
	"tick/shared/failure"
	"tick/transport/http/middleware"
)

func setupRouter(t *testing.T) (*chi.Mux, *serviceMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockService := serviceMocks.NewMockTodo(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	mockJWT.EXPECT().
		ValidateToken(gomock.Any(), "good-token", jwt.AccessToken).
		Return(&jwt.Claims{
			UserID:  "user-1",
			Email:   "user@example.com",
			TokenID: "token-1",
		}, nil).
		AnyTimes()

	mockJWT.EXPECT().
		ValidateToken(gomock.Any(), gomock.Not("good-token"), jwt.AccessToken).
		Return(nil, jwt.ErrInvalidToken).
		AnyTimes()

	handler := todo.New(mockService, mockOtel)
	authMiddleware := middleware.NewAuthMiddleware(mockJWT, mockOtel)

	router := chi.NewRouter()
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(protected chi.Router) {
			protected.Use(authMiddleware.Auth)

			handler.Router(protected)
		})
	})

	return router, mockService
}

func doRequest(router *chi.Mux, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestTodoHandler_RequiresToken(t *testing.T) {
	router, _ := setupRouter(t)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "list without token", method: http.MethodGet, target: "/v1/todos/"},
		{name: "create without token", method: http.MethodPost, target: "/v1/todos/"},
		{name: "update without token", method: http.MethodPut, target: "/v1/todos/some-id"},
		{name: "delete without token", method: http.MethodDelete, target: "/v1/todos/some-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, tt.method, tt.target, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestTodoHandler_RejectsInvalidToken(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/v1/todos/", "forged-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTodoHandler_CreateTodo(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error) {
			user, _ := ctx.Value(constant.ContextKeyUserID).(string)

			return dto.TodoResponse{
				ID:     "created-id",
				UserID: user,
				Title:  req.Title,
			}, nil
		})

	rec := doRequest(router, http.MethodPost, "/v1/todos/", "good-token", `{"title":"Buy milk"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data dto.TodoResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "created-id", body.Data.ID)
	assert.Equal(t, "user-1", body.Data.UserID)
	assert.Equal(t, "Buy milk", body.Data.Title)
}

func TestTodoHandler_CreateTodoValidation(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(router, http.MethodPost, "/v1/todos/", "good-token", `{"description":"no title"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTodoHandler_GetTodoByID(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		Get(gomock.Any(), "missing-id").
		Return(dto.TodoResponse{}, failure.NotFound("Todo not found"))

	rec := doRequest(router, http.MethodGet, "/v1/todos/missing-id", "good-token", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Todo not found", body.Error)
}

func TestTodoHandler_UpdateTodo(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		Update(gomock.Any(), gomock.Any(), "test-id").
		Return(dto.TodoResponse{
			ID:        "test-id",
			Title:     "Updated",
			Completed: true,
		}, nil)

	rec := doRequest(router, http.MethodPut, "/v1/todos/test-id", "good-token", `{"completed":true}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.TodoResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Completed)
}

func TestTodoHandler_UpdateTodoNotOwned(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		Update(gomock.Any(), gomock.Any(), "foreign-id").
		Return(dto.TodoResponse{}, failure.NotAuthorized("Not authorized to update this todo"))

	rec := doRequest(router, http.MethodPut, "/v1/todos/foreign-id", "good-token", `{"title":"hijack"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTodoHandler_DeleteTodo(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		Delete(gomock.Any(), "test-id").
		Return(nil)

	rec := doRequest(router, http.MethodDelete, "/v1/todos/test-id", "good-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Todo removed", body.Message)
}

func TestTodoHandler_GetTodos(t *testing.T) {
	router, mockService := setupRouter(t)

	mockService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(dto.GetTodosResponse{
			Todos: []dto.TodoResponse{
				{ID: "todo-1", UserID: "user-1", Title: "First"},
			},
			TotalPage: 1,
			TotalData: 1,
		}, nil)

	rec := doRequest(router, http.MethodGet, "/v1/todos/?completed=false", "good-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.GetTodosResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data.Todos, 1)
	assert.Equal(t, 1, body.Data.TotalData)
}
