package components

import (
	"peershare/internal/pkg/clock"
	"peershare/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewUserUseCase,
		usecase.NewItemUseCase,
		usecase.NewBookingUseCase,
		usecase.NewRequestUseCase,
	),
)
