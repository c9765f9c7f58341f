package service

import (
	"github.com/MKhiriev/customer-service/internal/config"
	"github.com/MKhiriev/customer-service/internal/logger"
	"github.com/MKhiriev/customer-service/internal/store"
)

type Services struct {
	CustomerService CustomerService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		CustomerService: NewCustomerService(storages.CustomerRepository, logger),
		AppInfoService:  NewAppInfoService(cfg.App, logger),
	}
}
