package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medlight/clinic-api/internal/model"
	"github.com/medlight/clinic-api/internal/repository/memory"
	apperr "github.com/medlight/clinic-api/pkg/errors"
)

func TestCreateServicePriceDefaultsToZero(t *testing.T) {
	svc := NewService(memory.NewServiceRepository())

	created, err := svc.Create(context.Background(), &model.CreateServiceRequest{Name: "x-ray"})
	require.NoError(t, err)
	assert.Equal(t, 0, created.Price)
}

func TestCreateServiceNegativePrice(t *testing.T) {
	repo := memory.NewServiceRepository()
	svc := NewService(repo)

	price := -10
	_, err := svc.Create(context.Background(), &model.CreateServiceRequest{Name: "x-ray", Price: &price})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Equal(t, 0, repo.Len())
}

func TestUpdateServicePartial(t *testing.T) {
	svc := NewService(memory.NewServiceRepository())

	price := 200
	created, err := svc.Create(context.Background(), &model.CreateServiceRequest{Name: "x-ray", Price: &price})
	require.NoError(t, err)

	name := "MRI"
	require.NoError(t, svc.Update(context.Background(), created.ID, &model.UpdateServiceRequest{Name: &name}))

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MRI", got.Name)
	assert.Equal(t, 200, got.Price, "unmentioned fields must not change")
}
