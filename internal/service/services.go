package service

import (
	"github.com/backmeup/credstore/internal/logger"
	"github.com/backmeup/credstore/internal/store"
)

type Services struct {
	AuthService       AuthService
	PermissionService PermissionService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, logger),
		PermissionService: NewPermissionService(storages.PermissionRepository, logger),
	}
}
