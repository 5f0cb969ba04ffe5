package service_test

import (
	"context"
	"testing"

	"showroom/internal/dto"
	"showroom/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSupplier_MintsCode(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, true)

	resp, err := svc.Create(context.Background(), dto.CreateSupplierRequest{
		Name: "Mr. Rahim", CompanyName: "Fashion Hub Ltd.",
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP-001", resp.Code)
	assert.True(t, resp.DueBalance.IsZero())
	assert.Nil(t, resp.LastPaymentDate)
}

func TestRecordPayment_ReducesDueAndStampsDate(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, true)
	seedSupplier(suppliers, "SUP-001", "Fashion Hub", 15000)

	resp, err := svc.RecordPayment(context.Background(), "SUP-001", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, "10000", resp.DueBalance.String())
	assert.NotNil(t, resp.LastPaymentDate)
}

func TestRecordPayment_OverpaymentRejectedStrict(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, true)
	seedSupplier(suppliers, "SUP-001", "Fashion Hub", 3000)

	_, err := svc.RecordPayment(context.Background(), "SUP-001", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	s, _ := suppliers.FindByCode(context.Background(), "SUP-001")
	assert.Equal(t, "3000", s.DueBalance.String())
}

func TestRecordPayment_OverpaymentAllowedPermissive(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, false)
	seedSupplier(suppliers, "SUP-001", "Fashion Hub", 3000)

	resp, err := svc.RecordPayment(context.Background(), "SUP-001", dto.RecordPaymentRequest{
		Amount: decimal.NewFromInt(5000),
	})
	require.NoError(t, err)
	assert.Equal(t, "-2000", resp.DueBalance.String())
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, true)
	seedSupplier(suppliers, "SUP-001", "Fashion Hub", 3000)

	_, err := svc.RecordPayment(context.Background(), "SUP-001", dto.RecordPaymentRequest{
		Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestUpdateSupplier_PreservesBalance(t *testing.T) {
	suppliers := newStubSupplierRepo()
	svc := service.NewSupplierService(suppliers, stubTx{}, true)
	seedSupplier(suppliers, "SUP-001", "Fashion Hub", 15000)

	resp, err := svc.Update(context.Background(), "SUP-001", dto.UpdateSupplierRequest{
		Name: "Mr. Rahim Jr.", CompanyName: "Fashion Hub International",
		Mobile: "01711-000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fashion Hub International", resp.CompanyName)
	assert.Equal(t, "15000", resp.DueBalance.String())
}
