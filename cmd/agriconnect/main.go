package main

import (
	"context"
	"log/slog"
	"os"

	"agriconnect/config"
	"agriconnect/internal/delivery"
	"agriconnect/internal/delivery/http"
	"agriconnect/internal/delivery/http/middleware"
	"agriconnect/internal/delivery/http/router/handler"
	"agriconnect/internal/infra/firebase"
	"agriconnect/internal/infra/geocoding"
	"agriconnect/internal/infra/identity"
	logs "agriconnect/internal/infra/log"
	"agriconnect/internal/infra/media"
	"agriconnect/internal/infra/persistence/firestoredb"
	"agriconnect/internal/infra/pubsub"
	"agriconnect/internal/infra/push"
	"agriconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestoredb.NewUserRepository,
			firestoredb.NewStoreRepository,
			firestoredb.NewProductRepository,
			firestoredb.NewOrderRepository,
			firestoredb.NewDeliveryAddressRepository,
			firestoredb.NewRiderLocationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewFirebaseIdentity,
			media.NewGCSMediaStorage,
			geocoding.NewGoogleGeocoder,
			push.NewExpoService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRegistrationService,
			impl.NewOrderService,
			impl.NewStoreService,
			impl.NewProductService,
			impl.NewAddressService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewOrderHandler,
			handler.NewStoreHandler,
			handler.NewProductHandler,
			handler.NewAddressHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
