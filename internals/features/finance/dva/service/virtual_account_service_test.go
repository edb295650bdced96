package service

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/stretchr/testify/assert"

	"github.com/google/uuid"

	"school360_backend/internals/features/finance/dva/model"
)

type fakeCharger struct {
	resp    *coreapi.ChargeResponse
	err     *midtrans.Error
	lastReq *coreapi.ChargeReq
}

func (f *fakeCharger) ChargeTransaction(req *coreapi.ChargeReq) (*coreapi.ChargeResponse, *midtrans.Error) {
	f.lastReq = req
	return f.resp, f.err
}

func newVA(bank string, amount float64) *model.VirtualAccountModel {
	return &model.VirtualAccountModel{
		VirtualAccountID:     uuid.New(),
		VirtualAccountBank:   bank,
		VirtualAccountAmount: amount,
		VirtualAccountStatus: model.VAStatusPending,
	}
}

func TestOpenVAFillsNumberFromGateway(t *testing.T) {
	charger := &fakeCharger{resp: &coreapi.ChargeResponse{
		TransactionID: "trx-1",
		VaNumbers:     []coreapi.VANumber{{Bank: "bca", VANumber: "9888123456"}},
	}}
	svc := &VirtualAccountService{Core: charger, ServerKey: "sk"}

	va := newVA("bca", 50000)
	err := svc.OpenVA(va)

	assert.NoError(t, err)
	assert.Equal(t, "9888123456", va.VirtualAccountNumber)
	assert.Equal(t, model.VAStatusActive, va.VirtualAccountStatus)
	assert.Equal(t, "trx-1", *va.VirtualAccountExternalRef)
	assert.Equal(t, va.VirtualAccountID.String(), charger.lastReq.TransactionDetails.OrderID)
	assert.Equal(t, coreapi.PaymentTypeBankTransfer, charger.lastReq.PaymentType)
}

func TestOpenVAPermataFallback(t *testing.T) {
	charger := &fakeCharger{resp: &coreapi.ChargeResponse{
		TransactionID:   "trx-2",
		PermataVaNumber: "8778001122",
	}}
	svc := &VirtualAccountService{Core: charger, ServerKey: "sk"}

	va := newVA("permata", 75000)
	assert.NoError(t, svc.OpenVA(va))
	assert.Equal(t, "8778001122", va.VirtualAccountNumber)
}

func TestOpenVARejectsBadInput(t *testing.T) {
	svc := &VirtualAccountService{Core: &fakeCharger{}, ServerKey: "sk"}

	assert.Error(t, svc.OpenVA(newVA("monzo", 1000)))
	assert.Error(t, svc.OpenVA(newVA("bca", 0)))
}

func TestOpenVAWithoutNumberFails(t *testing.T) {
	charger := &fakeCharger{resp: &coreapi.ChargeResponse{TransactionID: "trx-3"}}
	svc := &VirtualAccountService{Core: charger, ServerKey: "sk"}

	err := svc.OpenVA(newVA("bni", 1000))
	assert.ErrorContains(t, err, "no virtual account number")
}

func TestVerifySignature(t *testing.T) {
	svc := &VirtualAccountService{ServerKey: "server-key"}
	sum := sha512.Sum512([]byte("order-1" + "200" + "50000.00" + "server-key"))
	good := hex.EncodeToString(sum[:])

	assert.True(t, svc.VerifySignature("order-1", "200", "50000.00", good))
	assert.True(t, svc.VerifySignature("order-1", "200", "50000.00", "  "+good+" "), "whitespace tolerated")
	assert.False(t, svc.VerifySignature("order-1", "200", "50000.00", "deadbeef"))
	assert.False(t, svc.VerifySignature("order-2", "200", "50000.00", good))
}

func TestStatusForNotification(t *testing.T) {
	tests := []struct {
		name        string
		txStatus    string
		fraudStatus string
		want        model.VAStatus
		apply       bool
	}{
		{name: "settlement", txStatus: "settlement", want: model.VAStatusPaid, apply: true},
		{name: "capture accepted", txStatus: "capture", fraudStatus: "accept", want: model.VAStatusPaid, apply: true},
		{name: "capture challenged", txStatus: "capture", fraudStatus: "challenge", apply: false},
		{name: "deny", txStatus: "deny", want: model.VAStatusClosed, apply: true},
		{name: "cancel", txStatus: "cancel", want: model.VAStatusClosed, apply: true},
		{name: "expire", txStatus: "expire", want: model.VAStatusExpired, apply: true},
		{name: "pending carries no change", txStatus: "pending", apply: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, apply := StatusForNotification(tt.txStatus, tt.fraudStatus)
			assert.Equal(t, tt.apply, apply)
			if tt.apply {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
