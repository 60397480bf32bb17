package service

import (
	"context"
	"time"

	"mywallet/internal/models"
	"mywallet/internal/repository"
)

type RecordService struct {
	recordRepo repository.RecordRepo
	now        func() time.Time
}

func NewRecordService(recordRepo repository.RecordRepo) *RecordService {
	return &RecordService{recordRepo: recordRepo, now: time.Now}
}

func (s *RecordService) List(ctx context.Context, userID int) ([]models.Record, error) {
	return s.recordRepo.ListByUser(ctx, userID)
}

// Create stamps the record with today's DD/MM and the owner's display name,
// stores it and returns the owner's full record list.
func (s *RecordService) Create(ctx context.Context, owner models.User, p RecordParams) ([]models.Record, error) {
	rec := models.Record{
		UserID:      owner.ID,
		OwnerName:   owner.Name,
		Amount:      p.Amount,
		Description: p.Description,
		Date:        s.now().Format(recordDateLayout),
	}
	if err := s.recordRepo.Append(ctx, rec); err != nil {
		return nil, err
	}
	return s.recordRepo.ListByUser(ctx, owner.ID)
}
