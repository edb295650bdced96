package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"

	"school360_backend/internals/features/finance/dva/model"
)

// Charger is the slice of the Midtrans Core API this service needs.
// *coreapi.Client satisfies it; tests swap in a fake.
type Charger interface {
	ChargeTransaction(req *coreapi.ChargeReq) (*coreapi.ChargeResponse, *midtrans.Error)
}

type VirtualAccountService struct {
	Core      Charger
	ServerKey string
}

// NewVirtualAccountService wires a fresh Core API client. The client is
// injected into the service rather than held as a package global so
// two schools on different keys never race over shared state.
func NewVirtualAccountService(serverKey string, useProduction bool) *VirtualAccountService {
	env := midtrans.Sandbox
	if useProduction {
		env = midtrans.Production
	}
	var core coreapi.Client
	core.New(serverKey, env)
	return &VirtualAccountService{Core: &core, ServerKey: serverKey}
}

var supportedBanks = map[string]midtrans.Bank{
	"bca":     midtrans.BankBca,
	"bni":     midtrans.BankBni,
	"bri":     midtrans.BankBri,
	"cimb":    midtrans.BankCimb,
	"permata": midtrans.BankPermata,
}

// OpenVA charges a bank-transfer transaction and fills the VA number
// reported by the gateway into the model.
func (s *VirtualAccountService) OpenVA(va *model.VirtualAccountModel) error {
	bank, ok := supportedBanks[strings.ToLower(va.VirtualAccountBank)]
	if !ok {
		return fmt.Errorf("unsupported bank %q", va.VirtualAccountBank)
	}
	if va.VirtualAccountAmount <= 0 {
		return errors.New("virtual account amount must be positive")
	}

	req := &coreapi.ChargeReq{
		PaymentType: coreapi.PaymentTypeBankTransfer,
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  va.VirtualAccountID.String(),
			GrossAmt: int64(va.VirtualAccountAmount),
		},
		BankTransfer: &coreapi.BankTransferDetails{Bank: bank},
	}

	resp, mErr := s.Core.ChargeTransaction(req)
	if mErr != nil {
		return fmt.Errorf("midtrans charge: %w", mErr)
	}

	va.VirtualAccountExternalRef = &resp.TransactionID
	va.VirtualAccountStatus = model.VAStatusActive
	switch {
	case len(resp.VaNumbers) > 0:
		va.VirtualAccountNumber = resp.VaNumbers[0].VANumber
	case resp.PermataVaNumber != "":
		va.VirtualAccountNumber = resp.PermataVaNumber
	default:
		return errors.New("midtrans charge returned no virtual account number")
	}
	return nil
}

// VerifySignature checks the SHA512 signature Midtrans attaches to every
// HTTP notification: sha512(order_id + status_code + gross_amount + server_key).
func (s *VirtualAccountService) VerifySignature(orderID, statusCode, grossAmount, signature string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + s.ServerKey))
	return hex.EncodeToString(sum[:]) == strings.ToLower(strings.TrimSpace(signature))
}

// StatusForNotification maps a gateway transaction_status onto the VA
// lifecycle. The second return is false when the status carries no
// state change we track (e.g. "pending").
func StatusForNotification(transactionStatus, fraudStatus string) (model.VAStatus, bool) {
	switch transactionStatus {
	case "capture", "settlement":
		if fraudStatus == "challenge" {
			return "", false
		}
		return model.VAStatusPaid, true
	case "deny", "cancel":
		return model.VAStatusClosed, true
	case "expire":
		return model.VAStatusExpired, true
	default:
		return "", false
	}
}
