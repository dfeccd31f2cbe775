package http

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/middleware"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/services/identity/mocks"
)

func TestMe_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/users/me", "")
	c.Set(middleware.ContextKeyUID, "uabc123")

	mockUC.EXPECT().
		GetAccount(gomock.Any(), "uabc123").
		Return(&models.Account{
			ID:          "uabc123",
			PhoneNumber: "+918123456789",
			Role:        models.RoleCustomer,
			IsActive:    true,
		}, nil)

	// Act
	err := accountHandler.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "uabc123", data["uid"])
}

func TestMe_NoIdentity(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/users/me", "")

	// Act
	err := accountHandler.Me(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSetAvailability_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	body := `{"isAvailable": true}`
	c, rec := newJSONContext(http.MethodPatch, "/drivers/me/availability", body)
	c.Set(middleware.ContextKeyUID, "udrv456")

	mockUC.EXPECT().
		SetDriverAvailability(gomock.Any(), "udrv456", true).
		Return(&models.Account{
			ID:   "udrv456",
			Role: models.RoleDriver,
		}, nil)

	// Act
	err := accountHandler.SetAvailability(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSetAvailability_NonDriver(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	body := `{"isAvailable": true}`
	c, rec := newJSONContext(http.MethodPatch, "/drivers/me/availability", body)
	c.Set(middleware.ContextKeyUID, "ucust123")

	mockUC.EXPECT().
		SetDriverAvailability(gomock.Any(), "ucust123", true).
		Return(nil, apperrors.Forbidden())

	// Act
	err := accountHandler.SetAvailability(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminGetAccount_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	c, rec := newJSONContext(http.MethodGet, "/admin/accounts/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	mockUC.EXPECT().
		GetAccount(gomock.Any(), "missing").
		Return(nil, apperrors.AccountNotFound())

	// Act
	err := accountHandler.GetAccount(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	response := decodeEnvelope(t, rec)
	errBody := response["error"].(map[string]interface{})
	assert.Equal(t, apperrors.CodeAccountNotFound, errBody["code"])
}

func TestDeactivate_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockIdentityUC(ctrl)
	accountHandler := NewAccountHandler(mockUC)

	c, rec := newJSONContext(http.MethodPost, "/admin/accounts/uabc123/deactivate", "")
	c.SetParamNames("id")
	c.SetParamValues("uabc123")

	mockUC.EXPECT().
		SetAccountActive(gomock.Any(), "uabc123", false).
		Return(&models.Account{ID: "uabc123", IsActive: false}, nil)

	// Act
	err := accountHandler.Deactivate(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	response := decodeEnvelope(t, rec)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, false, data["is_active"])
}
