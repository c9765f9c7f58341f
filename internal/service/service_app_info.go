package service

import (
	"context"

	"github.com/MKhiriev/customer-service/internal/config"
	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/models"
)

// ServiceName identifies the service in the index payload.
const ServiceName = "Customer Service"

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}
}

func (s *appInfoService) GetServiceInfo(ctx context.Context) models.ServiceInfo {
	return models.ServiceInfo{
		Name:    ServiceName,
		Version: s.appVersion,
	}
}
