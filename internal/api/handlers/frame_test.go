package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"design-canvas-backend/internal/api/handlers"
	"design-canvas-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// FrameHandlerTestSuite covers request parsing and validation paths
type FrameHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *FrameHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewFrameHandler(service.NewFrameService(nil, nil, validator.New()))

	suite.router = gin.New()
	suite.router.POST("/api/frames", handler.CreateFrame)
	suite.router.GET("/api/frames", handler.ListFrames)
	suite.router.GET("/api/frames/:id", handler.GetFrame)
	suite.router.PUT("/api/frames/:id", handler.UpdateFrame)
	suite.router.DELETE("/api/frames/:id", handler.DeleteFrame)
}

func (suite *FrameHandlerTestSuite) perform(method, url string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FrameHandlerTestSuite) TestCreateFrame_MalformedBody() {
	w := suite.perform(http.MethodPost, "/api/frames", []byte(`{`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FrameHandlerTestSuite) TestCreateFrame_MissingProjectID() {
	w := suite.perform(http.MethodPost, "/api/frames", []byte(`{"name": "floor-1"}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ProjectID")
}

func (suite *FrameHandlerTestSuite) TestListFrames_InvalidProjectFilter() {
	w := suite.perform(http.MethodGet, "/api/frames?project_id=abc", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid project_id filter")
}

func (suite *FrameHandlerTestSuite) TestGetFrame_InvalidID() {
	w := suite.perform(http.MethodGet, "/api/frames/abc", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid frame ID")
}

func (suite *FrameHandlerTestSuite) TestUpdateFrame_EmptyName() {
	w := suite.perform(http.MethodPut, "/api/frames/1", []byte(`{"name": ""}`))

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *FrameHandlerTestSuite) TestDeleteFrame_InvalidID() {
	w := suite.perform(http.MethodDelete, "/api/frames/abc", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestFrameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FrameHandlerTestSuite))
}
