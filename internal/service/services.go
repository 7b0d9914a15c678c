package service

import (
	"fmt"

	"github.com/MKhiriev/go-customer-service/internal/config"
	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/internal/store"
	"github.com/MKhiriev/go-customer-service/internal/utils"
	"github.com/MKhiriev/go-customer-service/internal/validators"
	"github.com/MKhiriev/go-customer-service/models"
)

type Services struct {
	CustomerService CustomerService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

// NewServices wires the service layer. RSA keys are loaded from cfg, or
// generated for the lifetime of the process when no paths are configured.
// A linked-in build version takes precedence over cfg.Version.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	if cfg.PrivateKeyPath == "" && cfg.PublicKeyPath == "" {
		logger.Warn().Msg("no RSA key paths configured, generating an ephemeral key pair")
	}
	keys, err := utils.LoadRSAKeyPair(cfg.PrivateKeyPath, cfg.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	tokens, err := NewTokenService(cfg, keys, logger)
	if err != nil {
		return nil, err
	}

	if (buildInfo.Version == "" || buildInfo.Version == "N/A") && cfg.Version != "" {
		buildInfo.Version = cfg.Version
	}
	appInfo, err := NewAppInfoService(buildInfo, storages, logger)
	if err != nil {
		return nil, err
	}

	hasher := NewPasswordHasher(cfg.PasswordHashCost)
	customers := NewCustomerValidationService(validators.NewCustomerValidator(), logger).
		Wrap(NewCustomerService(storages.CustomerRepository, hasher, logger))

	return &Services{
		CustomerService: customers,
		AuthService:     NewAuthService(storages.CustomerRepository, hasher, tokens, logger),
		AppInfoService:  appInfo,
	}, nil
}
