package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/mocks"
	"bizhub-backend/internal/service"
	"bizhub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MenuHandlerTestSuite defines the test suite for MenuHandler and SupplierHandler
type MenuHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockMenu      *mocks.MockMenuServiceInterface
	mockSuppliers *mocks.MockSupplierServiceInterface
	httpSuite     *testutils.HTTPTestSuite
	factories     *testutils.FactorySet
	tenantID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MenuHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMenu = mocks.NewMockMenuServiceInterface(suite.ctrl)
	suite.mockSuppliers = mocks.NewMockSupplierServiceInterface(suite.ctrl)
	suite.factories = testutils.NewFactorySet()
	suite.tenantID = uuid.New()

	menuHandler := NewMenuHandler(suite.mockMenu)
	supplierHandler := NewSupplierHandler(suite.mockSuppliers)

	suite.httpSuite = testutils.SetupHTTPTest()
	api := suite.httpSuite.Router.Group("/api", authenticateAs(suite.ctrl, &auth.Principal{UserID: uuid.New(), TenantID: &suite.tenantID}))
	menu := api.Group("/menu/items")
	{
		menu.GET("", menuHandler.ListMenuItems)
		menu.POST("", menuHandler.CreateMenuItem)
		menu.GET("/:id", menuHandler.GetMenuItem)
		menu.PUT("/:id", menuHandler.UpdateMenuItem)
		menu.DELETE("/:id", menuHandler.DeleteMenuItem)
	}
	suppliers := api.Group("/suppliers")
	{
		suppliers.GET("", supplierHandler.ListSuppliers)
		suppliers.POST("", supplierHandler.CreateSupplier)
		suppliers.GET("/:id", supplierHandler.GetSupplier)
		suppliers.DELETE("/:id", supplierHandler.DeleteSupplier)
	}
}

// TearDownTest cleans up after each test
func (suite *MenuHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MenuHandlerTestSuite) menuItem() *models.MenuItem {
	item := suite.factories.MenuItem.Create()
	item.ID = uuid.New()
	item.TenantID = suite.tenantID
	return item
}

func (suite *MenuHandlerTestSuite) TestCreateMenuItem() {
	item := suite.menuItem()
	suite.mockMenu.EXPECT().
		Create(gomock.Any(), &service.CreateMenuItemRequest{Name: "Espresso", PriceCents: 300, Category: "drinks"}).
		Return(item, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/menu/items", map[string]interface{}{
		"name":        "Espresso",
		"price_cents": 300,
		"category":    "drinks",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	var response models.MenuItem
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), item.ID, response.ID)
	assert.Equal(suite.T(), suite.tenantID, response.TenantID)
}

func (suite *MenuHandlerTestSuite) TestCreateMenuItemConflict() {
	suite.mockMenu.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrMenuItemExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/menu/items", map[string]interface{}{"name": "Espresso"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "menu item already exists")
}

func (suite *MenuHandlerTestSuite) TestCreateMenuItemWithoutTenant() {
	suite.mockMenu.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrTenantContextMissing)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/menu/items", map[string]interface{}{"name": "Espresso"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
}

func (suite *MenuHandlerTestSuite) TestGetMenuItem() {
	item := suite.menuItem()
	suite.mockMenu.EXPECT().GetByID(gomock.Any(), item.ID).Return(item, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/menu/items/%s", item.ID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MenuHandlerTestSuite) TestGetMenuItemInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/menu/items/invalid-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid UUID")
}

func (suite *MenuHandlerTestSuite) TestGetMenuItemOfAnotherTenant() {
	id := uuid.New()
	suite.mockMenu.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrMenuItemNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/menu/items/%s", id), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "menu item not found")
}

func (suite *MenuHandlerTestSuite) TestListMenuItems() {
	item := suite.menuItem()
	suite.mockMenu.EXPECT().
		List(gomock.Any(), "drinks", 2, 10).
		Return(&service.MenuItemListResponse{Items: []models.MenuItem{*item}, Total: 11, Page: 2, PageSize: 10}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/menu/items?category=drinks&page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response service.MenuItemListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response.Items, 1)
	assert.Equal(suite.T(), int64(11), response.Total)
}

func (suite *MenuHandlerTestSuite) TestUpdateMenuItem() {
	item := suite.menuItem()
	item.PriceCents = 350
	price := int64(350)
	suite.mockMenu.EXPECT().
		Update(gomock.Any(), item.ID, &service.UpdateMenuItemRequest{PriceCents: &price}).
		Return(item, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, fmt.Sprintf("/api/menu/items/%s", item.ID), map[string]interface{}{"price_cents": 350})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	var response models.MenuItem
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(350), response.PriceCents)
}

func (suite *MenuHandlerTestSuite) TestDeleteMenuItem() {
	id := uuid.New()
	suite.mockMenu.EXPECT().Delete(gomock.Any(), id).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/menu/items/%s", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

func (suite *MenuHandlerTestSuite) TestCreateSupplier() {
	supplier := suite.factories.Supplier.Create()
	supplier.ID = uuid.New()
	supplier.TenantID = suite.tenantID
	suite.mockSuppliers.EXPECT().
		Create(gomock.Any(), &service.CreateSupplierRequest{Name: "Beans Co", ContactEmail: "orders@beans.example.com"}).
		Return(supplier, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/suppliers", map[string]interface{}{
		"name":          "Beans Co",
		"contact_email": "orders@beans.example.com",
	})

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

func (suite *MenuHandlerTestSuite) TestListSuppliers() {
	suite.mockSuppliers.EXPECT().List(gomock.Any(), 1, 20).Return(&service.SupplierListResponse{Suppliers: []models.ProductSupplier{}, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/suppliers", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *MenuHandlerTestSuite) TestGetAndDeleteSupplierNotFound() {
	id := uuid.New()
	suite.mockSuppliers.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrSupplierNotFound)
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, fmt.Sprintf("/api/suppliers/%s", id), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "supplier not found")

	suite.mockSuppliers.EXPECT().Delete(gomock.Any(), id).Return(apperrors.ErrSupplierNotFound)
	recorder = suite.httpSuite.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/suppliers/%s", id), nil)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "supplier not found")
}

func TestMenuHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}
