package logbook

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
	"github.com/iamungmonita/plants-box-api/internal/domain/repository"
)

// LogUseCase cash-drawer count logging.
type LogUseCase struct {
	countRepo repository.CashCountRepository
}

// NewLogUseCase builds the usecase.
func NewLogUseCase(countRepo repository.CashCountRepository) *LogUseCase {
	return &LogUseCase{countRepo: countRepo}
}

// CreateCount records one drawer count attributed to the principal.
func (uc *LogUseCase) CreateCount(principalID string, in dto.CreateCashCountRequest) (*dto.CashCountResponse, error) {
	if len(in.Riels) == 0 || len(in.Dollars) == 0 {
		return nil, fmt.Errorf("%w: riels and dollars are required", domain.ErrBadRequest)
	}
	c := &entity.CashCount{
		ID:        uuid.New().String(),
		Riels:     in.Riels,
		Dollars:   in.Dollars,
		CreatedBy: principalID,
		CreatedAt: time.Now(),
	}
	if err := uc.countRepo.Create(c); err != nil {
		return nil, err
	}
	return toCashCountResponse(c), nil
}

// Counts lists every drawer count.
func (uc *LogUseCase) Counts() ([]dto.CashCountResponse, error) {
	counts, err := uc.countRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashCountResponse, 0, len(counts))
	for _, c := range counts {
		out = append(out, *toCashCountResponse(c))
	}
	return out, nil
}

func toCashCountResponse(c *entity.CashCount) *dto.CashCountResponse {
	return &dto.CashCountResponse{
		ID:        c.ID,
		Riels:     c.Riels,
		Dollars:   c.Dollars,
		CreatedBy: c.CreatedBy,
		CreatedAt: c.CreatedAt,
	}
}
