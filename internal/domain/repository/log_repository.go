package repository

import (
	"time"

	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

// CashCountRepository port for drawer count logs.
type CashCountRepository interface {
	Create(c *entity.CashCount) error
	List() ([]*entity.CashCount, error)
}

// LoginLogRepository port for the sign-in audit used by firstLoginToday.
type LoginLogRepository interface {
	Create(l *entity.LoginLog) error
	CountSince(t time.Time) (int, error)
}
