package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/users/mocks"
)

func TestCreateUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	userID := uuid.New()
	requestBody := `{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"password": "secret123",
		"role": "user"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, reg *models.RegisterRequest) (*models.User, error) {
			assert.Equal(t, "Jane Doe", reg.Name)
			assert.Equal(t, "jane@example.com", reg.Email)
			return &models.User{
				ID:    userID,
				Name:  reg.Name,
				Email: reg.Email,
				Role:  models.RoleUser,
			}, nil
		})

	err := userHandler.CreateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "User created successfully", response["message"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, userID.String(), data["id"])
	assert.Equal(t, "jane@example.com", data["email"])
	assert.NotContains(t, data, "password")
}

func TestCreateUser_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := userHandler.CreateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["message"])
}

func TestCreateUser_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(`{"name":"Jane"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidation("Invalid Input",
			apperrors.Source{Path: "email", Message: "email is required"}))

	err := userHandler.CreateUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])

	sources, ok := response["errorSources"].([]interface{})
	require.True(t, ok)
	require.Len(t, sources, 1)
	source := sources[0].(map[string]interface{})
	assert.Equal(t, "email", source["path"])
}

func TestGetUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	mockUserUC.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(&models.User{ID: userID, Name: "Jane Doe", Email: "jane@example.com", Role: models.RoleUser}, nil)

	err := userHandler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUser_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := userHandler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	mockUserUC.EXPECT().
		GetUserByID(gomock.Any(), userID).
		Return(nil, apperrors.NewNotFound("user not found"))

	err := userHandler.GetUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListUsers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users?page=2&limit=5&role=driver", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUserUC.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, q models.ListQuery) ([]*models.User, models.Meta, error) {
			assert.Equal(t, 2, q.Page)
			assert.Equal(t, 5, q.Limit)
			assert.Equal(t, "driver", q.Filters["role"])
			return []*models.User{{ID: uuid.New(), Role: models.RoleDriver}}, models.NewMeta(q, 6), nil
		})

	err := userHandler.ListUsers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	meta, ok := response["meta"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(6), meta["total"])
	assert.Equal(t, float64(2), meta["totalPage"])
}

func TestDeleteUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserUC := mocks.NewMockUserUC(ctrl)
	userHandler := NewUserHandler(mockUserUC)

	e := echo.New()
	userID := uuid.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID.String())

	mockUserUC.EXPECT().
		DeleteUser(gomock.Any(), userID).
		Return(nil)

	err := userHandler.DeleteUser(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
