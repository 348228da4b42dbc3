package components

import (
	"carwash-booking/internal/handler"
	"carwash-booking/internal/handler/api"
	"carwash-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCarWashHandler,
		api.NewServiceHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	carWash *api.CarWashHandler,
	service *api.ServiceHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:    auth,
		CarWash: carWash,
		Service: service,
		Booking: booking,
		Review:  review,
	}
}
