package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-operations-backend/internal/api/handlers"
	"fleet-operations-backend/internal/mocks"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// VesselDocumentHandlerTestSuite exercises the document endpoints against a mocked service
type VesselDocumentHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockVesselDocumentServiceInterface
	router  *gin.Engine
}

func (suite *VesselDocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockVesselDocumentServiceInterface(suite.ctrl)

	handler := handlers.NewVesselDocumentHandler(suite.mockSvc)
	suite.router = gin.New()
	suite.router.GET("/vessel-documents/expiring", handler.ListExpiring)
}

func (suite *VesselDocumentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *VesselDocumentHandlerTestSuite) TestListExpiringWithinParam() {
	suite.mockSvc.EXPECT().ListExpiring(45, 1, 20).Return(&service.VesselDocumentListResponse{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vessel-documents/expiring?within=45", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *VesselDocumentHandlerTestSuite) TestListExpiringDefaultHorizon() {
	suite.mockSvc.EXPECT().ListExpiring(60, 1, 20).Return(&service.VesselDocumentListResponse{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vessel-documents/expiring", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func TestVesselDocumentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(VesselDocumentHandlerTestSuite))
}
