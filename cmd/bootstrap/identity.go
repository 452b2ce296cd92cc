package bootstrap

import (
	"context"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/idtoken"
	"foodshare/internal/usecase"

	"go.uber.org/fx"
)

var IdentityModule = fx.Module("identity",
	fx.Provide(
		fx.Annotate(
			NewTokenVerifier,
			fx.As(new(usecase.TokenVerifier)),
		),
	),
)

// NewTokenVerifier stops the background key set refresh when the app stops.
func NewTokenVerifier(lc fx.Lifecycle, cfg config.Config) (*idtoken.Verifier, error) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})

	v, err := idtoken.NewVerifier(ctx, idtoken.Options{
		HMACSecret:    cfg.Identity.HMACSecret,
		PublicKeysPEM: cfg.Identity.PublicKeys,
		JWKSURL:       cfg.Identity.JWKSURL,
		Issuer:        cfg.Identity.Issuer,
		Audience:      cfg.Identity.Audience,
	})
	if err != nil {
		cancel()
		return nil, err
	}
	return v, nil
}
