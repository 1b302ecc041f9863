package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/millbooks/backend/internal/ledger/domain"
)

func TestInvoiceServicePurchase(t *testing.T) {
	env := newTestEnv(t)
	svc := NewInvoiceService(env.purchases, env.sales)
	ctx := context.Background()

	t.Run("rejects missing identifying fields", func(t *testing.T) {
		_, err := svc.CreatePurchaseInvoice(ctx, &domain.PurchaseInvoice{Date: "2026-03-01"})
		assertDomainCode(t, err, domain.CodeValidation)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := svc.CreatePurchaseInvoice(ctx, &domain.PurchaseInvoice{
			Date:          "01/03/2026",
			VehicleNumber: "LRM-1",
			BuiltyNumber:  "B-1",
			VendorName:    "Vendor",
		})
		assertDomainCode(t, err, domain.CodeValidation)
	})

	t.Run("stores submitted derived values unchanged", func(t *testing.T) {
		created, err := svc.CreatePurchaseInvoice(ctx, &domain.PurchaseInvoice{
			Date:          "2026-03-01",
			VehicleNumber: "LRM-1",
			BuiltyNumber:  "B-1",
			VendorName:    "Vendor",
			NetWeight:     decimal.RequireFromString("5782"),
			Amount:        decimal.RequireFromString("144550"),
		})
		require.NoError(t, err)
		assert.True(t, created.NetWeight.Equal(decimal.RequireFromString("5782")))
		assert.True(t, created.Amount.Equal(decimal.RequireFromString("144550")))
	})

	t.Run("backfills derived fields left empty", func(t *testing.T) {
		created, err := svc.CreatePurchaseInvoice(ctx, &domain.PurchaseInvoice{
			Date:                "2026-03-02",
			VehicleNumber:       "LRM-2",
			BuiltyNumber:        "B-2",
			VendorName:          "Vendor",
			FilledVehicleWeight: decimal.RequireFromString("10000"),
			EmptyVehicleWeight:  decimal.RequireFromString("4000"),
			BagWeight:           decimal.RequireFromString("100"),
			Rate40KG:            decimal.RequireFromString("1000"),
		})
		require.NoError(t, err)
		assert.True(t, created.FinalWeight.Equal(decimal.RequireFromString("5900")))
		assert.False(t, created.Amount.IsZero())
	})

	t.Run("update and delete", func(t *testing.T) {
		created, err := svc.CreatePurchaseInvoice(ctx, &domain.PurchaseInvoice{
			Date:          "2026-03-03",
			VehicleNumber: "LRM-3",
			BuiltyNumber:  "B-3",
			VendorName:    "Old Vendor",
		})
		require.NoError(t, err)

		updated, err := svc.UpdatePurchaseInvoice(ctx, created.ID, &domain.PurchaseInvoice{
			Date:          "2026-03-03",
			VehicleNumber: "LRM-3",
			BuiltyNumber:  "B-3",
			VendorName:    "New Vendor",
		})
		require.NoError(t, err)
		assert.Equal(t, "New Vendor", updated.VendorName)

		_, err = svc.UpdatePurchaseInvoice(ctx, "missing", &domain.PurchaseInvoice{})
		assertDomainCode(t, err, domain.CodeNotFound)

		require.NoError(t, svc.DeletePurchaseInvoice(ctx, created.ID))
		err = svc.DeletePurchaseInvoice(ctx, created.ID)
		assertDomainCode(t, err, domain.CodeNotFound)
	})
}

func TestInvoiceServiceSales(t *testing.T) {
	env := newTestEnv(t)
	svc := NewInvoiceService(env.purchases, env.sales)
	ctx := context.Background()

	t.Run("creates with derived backfill", func(t *testing.T) {
		created, err := svc.CreateSalesInvoice(ctx, &domain.SalesInvoice{
			Date:      "2026-03-05",
			Weight:    decimal.RequireFromString("4100"),
			BagWeight: decimal.RequireFromString("100"),
			Rate40:    decimal.RequireFromString("1000"),
		})
		require.NoError(t, err)
		assert.True(t, created.NetWeight.Equal(decimal.RequireFromString("4000")))
		assert.True(t, created.Amount.Equal(decimal.RequireFromString("100000")))
		assert.True(t, created.TotalAmount2.Equal(decimal.RequireFromString("100000")))
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := svc.CreateSalesInvoice(ctx, &domain.SalesInvoice{Date: "yesterday"})
		assertDomainCode(t, err, domain.CodeValidation)
	})

	t.Run("get and delete", func(t *testing.T) {
		created, err := svc.CreateSalesInvoice(ctx, &domain.SalesInvoice{Date: "2026-03-06"})
		require.NoError(t, err)

		got, err := svc.GetSalesInvoice(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = svc.GetSalesInvoice(ctx, "missing")
		assertDomainCode(t, err, domain.CodeNotFound)

		require.NoError(t, svc.DeleteSalesInvoice(ctx, created.ID))
	})
}
