package logbook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamungmonita/plants-box-api/internal/application/dto"
	"github.com/iamungmonita/plants-box-api/internal/domain"
	"github.com/iamungmonita/plants-box-api/internal/domain/entity"
)

type fakeCashCountRepo struct {
	counts []*entity.CashCount
}

func (r *fakeCashCountRepo) Create(c *entity.CashCount) error {
	cp := *c
	r.counts = append(r.counts, &cp)
	return nil
}

func (r *fakeCashCountRepo) List() ([]*entity.CashCount, error) {
	return r.counts, nil
}

func TestCreateCount_RequiresBothBreakdowns(t *testing.T) {
	uc := NewLogUseCase(&fakeCashCountRepo{})

	_, err := uc.CreateCount("cashier-1", dto.CreateCashCountRequest{
		Riels: json.RawMessage(`{"1000": 4}`),
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	_, err = uc.CreateCount("cashier-1", dto.CreateCashCountRequest{
		Dollars: json.RawMessage(`{"1": 10}`),
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestCreateCount_PersistsAndLists(t *testing.T) {
	repo := &fakeCashCountRepo{}
	uc := NewLogUseCase(repo)

	out, err := uc.CreateCount("cashier-1", dto.CreateCashCountRequest{
		Riels:   json.RawMessage(`{"1000": 4, "500": 2}`),
		Dollars: json.RawMessage(`{"1": 10}`),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "cashier-1", out.CreatedBy)

	counts, err := uc.Counts()
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.JSONEq(t, `{"1000": 4, "500": 2}`, string(counts[0].Riels))
}
