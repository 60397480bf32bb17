package service

import (
	"context"

	"mywallet/internal/models"
	"mywallet/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (int, error)
	GenerateToken(ctx context.Context, email, password string) (string, error)
	Authorize(ctx context.Context, token string) (*models.User, error)
}

// Records exposes the per-user financial entries.
type Records interface {
	List(ctx context.Context, userID int) ([]models.Record, error)
	Create(ctx context.Context, owner models.User, p RecordParams) ([]models.Record, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Records
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, repos.Sessions),
		Records:       NewRecordService(repos.Records),
	}
}
