package order_test

import (
	"testing"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		100, decimal.NewFromInt(12))
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createReadyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	require.NoError(t, o.ConfirmCapacity())
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validStockID := kernel.NewUUID()
	validBuyerID := kernel.NewUUID()

	t.Run("should create order with valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validStockID, validBuyerID, 100, decimal.NewFromFloat(25.50))

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.StockID().IsEqual(validStockID))
		assert.True(t, o.BuyerID().IsEqual(validBuyerID))
		assert.Equal(t, 100, o.QtyKg())
		assert.Equal(t, order.PendingCapacity, o.Status())
		assert.Nil(t, o.CapacityOK())
		assert.Nil(t, o.Logistics())
		assert.Zero(t, o.Version())
		assert.True(t, decimal.NewFromInt(2550).Equal(o.Total()))
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validStockID, validBuyerID, 100, decimal.NewFromInt(12))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		testCases := []struct {
			name  string
			qtyKg int
		}{
			{"zero quantity", 0},
			{"negative quantity", -5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(validID, validStockID, validBuyerID, tc.qtyKg, decimal.NewFromInt(12))

				require.Error(t, err)
				assert.Nil(t, o)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})

	t.Run("should return error for negative price", func(t *testing.T) {
		o, err := order.NewOrder(validID, validStockID, validBuyerID, 100, decimal.NewFromInt(-1))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		o, err := order.NewOrder(validID, validStockID, validBuyerID, 100, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, o.Total().IsZero())
	})
}

func TestOrderConfirmCapacity(t *testing.T) {
	t.Run("should transition to ready for logistics", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.ConfirmCapacity()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForLogistics, o.Status())
		require.NotNil(t, o.CapacityOK())
		assert.True(t, *o.CapacityOK())
	})

	t.Run("should be idempotent when already confirmed", func(t *testing.T) {
		o := createReadyOrder(t)

		err := o.ConfirmCapacity()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForLogistics, o.Status())
	})

	t.Run("should reject confirmation past logistics stage", func(t *testing.T) {
		o := createReadyOrder(t)
		require.NoError(t, o.AttachLogistics(kernel.NewUUID()))

		err := o.ConfirmCapacity()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrderDenyCapacity(t *testing.T) {
	t.Run("should record negative verdict and stay pending", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.DenyCapacity()

		require.NoError(t, err)
		assert.Equal(t, order.PendingCapacity, o.Status())
		require.NotNil(t, o.CapacityOK())
		assert.False(t, *o.CapacityOK())
	})

	t.Run("should allow re-evaluation after denial", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.DenyCapacity())

		err := o.ConfirmCapacity()

		require.NoError(t, err)
		assert.Equal(t, order.ReadyForLogistics, o.Status())
		assert.True(t, *o.CapacityOK())
	})

	t.Run("should reject denial once confirmed", func(t *testing.T) {
		o := createReadyOrder(t)

		err := o.DenyCapacity()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrderAttachLogistics(t *testing.T) {
	t.Run("should attach logistics and transition to in transit", func(t *testing.T) {
		o := createReadyOrder(t)
		logisticsID := kernel.NewUUID()

		err := o.AttachLogistics(logisticsID)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.Logistics())
		assert.True(t, o.Logistics().IsEqual(logisticsID))
	})

	t.Run("should reject attachment while capacity is pending", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.AttachLogistics(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.PendingCapacity, o.Status())
		assert.Nil(t, o.Logistics())
	})

	t.Run("should reject second attachment", func(t *testing.T) {
		o := createReadyOrder(t)
		firstID := kernel.NewUUID()
		require.NoError(t, o.AttachLogistics(firstID))

		err := o.AttachLogistics(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.True(t, o.Logistics().IsEqual(firstID))
	})

	t.Run("should reject invalid logistics id", func(t *testing.T) {
		o := createReadyOrder(t)
		var invalidID kernel.UUID

		err := o.AttachLogistics(invalidID)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, order.ReadyForLogistics, o.Status())
	})
}

func TestOrderConfirmDelivery(t *testing.T) {
	t.Run("should complete an in-transit order", func(t *testing.T) {
		o := createReadyOrder(t)
		require.NoError(t, o.AttachLogistics(kernel.NewUUID()))

		err := o.ConfirmDelivery()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject completion before transit", func(t *testing.T) {
		o := createReadyOrder(t)

		err := o.ConfirmDelivery()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject repeated completion", func(t *testing.T) {
		o := createReadyOrder(t)
		require.NoError(t, o.AttachLogistics(kernel.NewUUID()))
		require.NoError(t, o.ConfirmDelivery())

		err := o.ConfirmDelivery()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrderTotalIsFrozen(t *testing.T) {
	o := createValidOrder(t)
	total := o.Total()

	require.NoError(t, o.ConfirmCapacity())
	require.NoError(t, o.AttachLogistics(kernel.NewUUID()))
	require.NoError(t, o.ConfirmDelivery())

	assert.True(t, total.Equal(o.Total()))
}

func TestRestoreOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validStockID := kernel.NewUUID()
	validBuyerID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-time.Hour)

	t.Run("should restore order without recomputing total", func(t *testing.T) {
		confirmed := true
		logisticsID := kernel.NewUUID()
		// Stored total deliberately differs from qty × price.
		storedTotal := decimal.NewFromInt(999)

		o, err := order.RestoreOrder(
			validID, validStockID, validBuyerID,
			100, decimal.NewFromInt(12), storedTotal,
			order.InTransit, &confirmed, &logisticsID, createdAt, 3)

		require.NoError(t, err)
		assert.True(t, storedTotal.Equal(o.Total()))
		assert.Equal(t, order.InTransit, o.Status())
		assert.Equal(t, 3, o.Version())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.Logistics())
		assert.True(t, o.Logistics().IsEqual(logisticsID))
	})

	t.Run("should reject in-transit order without logistics reference", func(t *testing.T) {
		confirmed := true

		o, err := order.RestoreOrder(
			validID, validStockID, validBuyerID,
			100, decimal.NewFromInt(12), decimal.NewFromInt(1200),
			order.InTransit, &confirmed, nil, createdAt, 1)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject pending order carrying logistics reference", func(t *testing.T) {
		logisticsID := kernel.NewUUID()

		o, err := order.RestoreOrder(
			validID, validStockID, validBuyerID,
			100, decimal.NewFromInt(12), decimal.NewFromInt(1200),
			order.PendingCapacity, nil, &logisticsID, createdAt, 0)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			validID, validStockID, validBuyerID,
			100, decimal.NewFromInt(12), decimal.NewFromInt(1200),
			order.Unknown, nil, nil, createdAt, 0)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("should fail for order not created via constructor", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}
