package return_payment

import (
	"context"

	returnPayment "github.com/m04kA/SMC-RentalService/internal/usecase/return_payment"
)

type ReturnPaymentUseCase interface {
	Execute(ctx context.Context, req *returnPayment.Request) (*returnPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
