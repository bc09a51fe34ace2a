package service

import (
	"github.com/MKhiriev/go-account-keeper/internal/adapter"
	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/crypto"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	TokenService   TokenService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages and adapters. The auth
// service is wrapped with input validation.
func NewServices(storages *store.Storages, adapters *adapter.Adapters, hasher crypto.PasswordHasher, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokens, err := NewTokenService(cfg.Auth)
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	auth := NewAuthService(storages.UserRepository, hasher, tokens, adapters.ImageHost, adapters.Events, logger)

	return &Services{
		AuthService:    NewAuthValidationService().Wrap(auth),
		AccountService: NewAccountService(storages.UserRepository, adapters.ImageHost, adapters.Events, logger),
		TokenService:   tokens,
		AppInfoService: appInfo,
	}, nil
}
