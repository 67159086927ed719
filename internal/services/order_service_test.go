package services

import (
	"testing"

	"dealer_manager/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderServiceForTest() (OrderService, *fakeOrderRepo, *fakeVehicleRepo) {
	orderRepo := newFakeOrderRepo()
	vehicleRepo := newFakeVehicleRepo()
	return NewOrderService(orderRepo, vehicleRepo), orderRepo, vehicleRepo
}

func TestCreateOrderStandard(t *testing.T) {
	svc, orderRepo, vehicleRepo := newOrderServiceForTest()
	vehicleRepo.CreateVariant(&models.VehicleVariant{ID: 5, ModelID: 2, VersionName: "GT", Price: 30000, IsActive: true})

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		VariantID:  5,
		Quantity:   "2",
	})
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order := orderRepo.orders[orderID]
	require.NotNil(t, order)
	assert.False(t, order.IsCustom)
	assert.Equal(t, string(models.OrderPending), order.Status)

	details := orderRepo.details[orderID]
	require.Len(t, details, 1)
	require.NotNil(t, details[0].SerialID)
	assert.Equal(t, "2", details[0].Quantity)
	assert.Equal(t, 30000.0, details[0].UnitPrice)

	require.Len(t, orderRepo.serials, 1)
	assert.Equal(t, *details[0].SerialID, orderRepo.serials[0].SerialNumber)
	assert.Equal(t, uint(5), orderRepo.serials[0].VariantID)
}

func TestCreateOrderStandardRequiresVariant(t *testing.T) {
	svc, _, vehicleRepo := newOrderServiceForTest()
	vehicleRepo.CreateModel(&models.VehicleModel{ID: 2, Name: "Falcon X", ListPrice: 25000, IsActive: true})

	_, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
	})
	assert.ErrorIs(t, err, ErrVariantRequired)
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	svc, _, _ := newOrderServiceForTest()

	for _, quantity := range []string{"", "abc", "0", "-3", "1.5"} {
		_, err := svc.CreateOrder(CreateOrderInput{
			CustomerID: 1,
			StaffID:    7,
			ModelID:    2,
			VariantID:  5,
			Quantity:   quantity,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %q", quantity)
	}
}

func TestCreateOrderCustom(t *testing.T) {
	svc, orderRepo, _ := newOrderServiceForTest()

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
		UnitPrice:  40000,
		IsCustom:   true,
	})
	require.NoError(t, err)

	details := orderRepo.details[orderID]
	require.Len(t, details, 1)
	assert.Nil(t, details[0].SerialID)

	confirmation, err := orderRepo.GetConfirmationByDetailID(details[0].ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.AgreementPending), confirmation.Agreement)
}

func TestApproveCustomOrderAgree(t *testing.T) {
	svc, orderRepo, _ := newOrderServiceForTest()

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
		UnitPrice:  40000,
		IsCustom:   true,
	})
	require.NoError(t, err)

	err = svc.ApproveCustomOrder(orderID, true, 45000)
	require.NoError(t, err)

	details := orderRepo.details[orderID]
	require.Len(t, details, 1)
	require.NotNil(t, details[0].SerialID)

	confirmation, err := orderRepo.GetConfirmationByDetailID(details[0].ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.AgreementAgree), confirmation.Agreement)

	require.Len(t, orderRepo.variants, 1)
	assert.Equal(t, uint(2), orderRepo.variants[0].ModelID)
	assert.Equal(t, 45000.0, orderRepo.variants[0].Price)
	assert.True(t, orderRepo.variants[0].IsActive)

	require.Len(t, orderRepo.serials, 1)
	assert.Equal(t, orderRepo.variants[0].ID, orderRepo.serials[0].VariantID)
	assert.Equal(t, *details[0].SerialID, orderRepo.serials[0].SerialNumber)
}

func TestApproveCustomOrderDisagree(t *testing.T) {
	svc, orderRepo, _ := newOrderServiceForTest()

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
		UnitPrice:  40000,
		IsCustom:   true,
	})
	require.NoError(t, err)

	err = svc.ApproveCustomOrder(orderID, false, 0)
	require.NoError(t, err)

	details := orderRepo.details[orderID]
	require.Len(t, details, 1)
	assert.Nil(t, details[0].SerialID)

	confirmation, err := orderRepo.GetConfirmationByDetailID(details[0].ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.AgreementDisagree), confirmation.Agreement)

	assert.Empty(t, orderRepo.variants)
	assert.Empty(t, orderRepo.serials)
}

func TestApproveCustomOrderNotCustom(t *testing.T) {
	svc, orderRepo, _ := newOrderServiceForTest()
	orderID := orderRepo.seedOrder(models.Order{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		OrderDate:  "2026-01-10 09:00:00",
		Status:     string(models.OrderPending),
	})

	err := svc.ApproveCustomOrder(orderID, true, 45000)
	assert.ErrorIs(t, err, ErrNotCustomOrder)
}

func TestApproveCustomOrderNotFound(t *testing.T) {
	svc, _, _ := newOrderServiceForTest()

	err := svc.ApproveCustomOrder(99, true, 45000)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestApproveCustomOrderAlreadyResolved(t *testing.T) {
	svc, _, _ := newOrderServiceForTest()

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
		UnitPrice:  40000,
		IsCustom:   true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveCustomOrder(orderID, true, 45000))

	// The detail now has a serial, so there is nothing left to approve.
	err = svc.ApproveCustomOrder(orderID, true, 45000)
	assert.ErrorIs(t, err, ErrNoPendingDetail)
}

func TestResolveUnitPriceFallsBackToModelListPrice(t *testing.T) {
	svc, orderRepo, vehicleRepo := newOrderServiceForTest()
	vehicleRepo.CreateModel(&models.VehicleModel{ID: 2, Name: "Falcon X", ListPrice: 25000, IsActive: true})

	orderID, err := svc.CreateOrder(CreateOrderInput{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		Quantity:   "1",
		IsCustom:   true,
	})
	require.NoError(t, err)

	details := orderRepo.details[orderID]
	require.Len(t, details, 1)
	assert.Equal(t, 25000.0, details[0].UnitPrice)
}

func TestCancelOrder(t *testing.T) {
	svc, orderRepo, _ := newOrderServiceForTest()
	orderID := orderRepo.seedOrder(models.Order{
		CustomerID: 1,
		StaffID:    7,
		ModelID:    2,
		OrderDate:  "2026-01-10 09:00:00",
		Status:     string(models.OrderPending),
	})

	require.NoError(t, svc.CancelOrder(orderID))
	assert.Equal(t, string(models.OrderCancelled), orderRepo.orders[orderID].Status)

	assert.ErrorIs(t, svc.CancelOrder(999), ErrOrderNotFound)
}
