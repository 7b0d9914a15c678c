package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-customer-service/internal/logger"
	"github.com/MKhiriev/go-customer-service/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	// storage is pinged by CheckHealth.
	storage HealthChecker

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, storage HealthChecker, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		storage:   storage,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// CheckHealth reports ErrStorageUnavailable when the storage ping fails.
func (s *appInfoService) CheckHealth(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*appInfoService.CheckHealth").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
