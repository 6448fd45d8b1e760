package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"modulus_backend/internals/features/academia/payments/model"
)

var SnapClient snap.Client

// InitMidtrans é chamado no bootstrap do app.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken cria o token de checkout para um pagamento pendente.
func GenerateSnapToken(p model.PaymentModel, name, email string) (string, string, error) {
	orderID := ""
	if p.PaymentOrderID != nil {
		orderID = *p.PaymentOrderID
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(p.PaymentValor),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
