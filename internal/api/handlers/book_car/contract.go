package book_car

import (
	"context"

	bookCar "github.com/m04kA/SMC-RentalService/internal/usecase/book_car"
)

type BookCarUseCase interface {
	Execute(ctx context.Context, req *bookCar.Request) (*bookCar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
