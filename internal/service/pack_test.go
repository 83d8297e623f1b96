package service

import (
	"context"
	"testing"
	"time"

	"freshpack-backend/internal/dto"
	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePackValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	existing := e.createPack(t, "100.00")
	now := time.Now()

	_, err := e.packSvc.CreatePack(ctx, &dto.PackRequest{
		Name:       "Backwards",
		CategoryID: existing.CategoryID,
		PackTypeID: existing.PackTypeID,
		ValidFrom:  now,
		ValidUntil: now.Add(-time.Hour),
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.packSvc.CreatePack(ctx, &dto.PackRequest{
		Name:       "Orphan",
		CategoryID: 999,
		PackTypeID: existing.PackTypeID,
		ValidFrom:  now,
		ValidUntil: now.Add(time.Hour),
	})
	require.ErrorIs(t, err, ErrValidation)

	pack, err := e.packSvc.CreatePack(ctx, &dto.PackRequest{
		Name:       "Fruit Weekly Pack",
		CategoryID: existing.CategoryID,
		PackTypeID: existing.PackTypeID,
		BasePrice:  dec("80.00"),
		ValidFrom:  now,
		ValidUntil: now.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, pack.FinalPrice.Equal(dec("80")))
	assert.True(t, pack.IsActive)
	require.NotNil(t, pack.PackType)
}

func TestReplacePackProductsReprices(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	pack := e.createPack(t, "100.00")

	items, err := e.packSvc.GetPackProducts(ctx, pack.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	tomato := items[0].ProductID

	onion := &model.Product{Name: "Onion", Price: dec("30"), CategoryID: pack.CategoryID, Quantity: dec("1"), IsAvailable: true}
	require.NoError(t, e.db.Create(onion).Error)

	_, err = e.packSvc.ReplacePackProducts(ctx, &dto.BulkPackProductsRequest{
		PackID: pack.ID,
		Products: []dto.PackProductItem{
			{ProductID: tomato, Quantity: 1, UnitPrice: dec("10")},
			{ProductID: tomato, Quantity: 2, UnitPrice: dec("10")},
		},
	})
	require.ErrorIs(t, err, ErrValidation)

	_, err = e.packSvc.ReplacePackProducts(ctx, &dto.BulkPackProductsRequest{
		PackID:   pack.ID,
		Products: []dto.PackProductItem{{ProductID: 999, Quantity: 1, UnitPrice: dec("10")}},
	})
	require.ErrorIs(t, err, ErrValidation)

	// failed replacements leave the old composition alone
	items, err = e.packSvc.GetPackProducts(ctx, pack.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = e.packSvc.ReplacePackProducts(ctx, &dto.BulkPackProductsRequest{
		PackID: pack.ID,
		Products: []dto.PackProductItem{
			{ProductID: tomato, Quantity: 2, UnitPrice: dec("45.50")},
			{ProductID: onion.ID, Quantity: 3, UnitPrice: dec("30.00")},
		},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Product)
	require.NotNil(t, items[0].Product.Category)

	stored, err := e.packSvc.GetPack(ctx, pack.ID)
	require.NoError(t, err)
	assert.True(t, stored.BasePrice.Equal(dec("181")))
	assert.True(t, stored.FinalPrice.Equal(dec("181")))
	assert.Len(t, stored.Products, 2)

	deleted, err := e.packSvc.ClearPackProducts(ctx, pack.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	stored, err = e.packSvc.GetPack(ctx, pack.ID)
	require.NoError(t, err)
	assert.True(t, stored.FinalPrice.IsZero())
	assert.Empty(t, stored.Products)
}

func TestListPurchasablePacks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	live := e.createPack(t, "100.00")
	stale := e.createPack(t, "200.00")
	hidden := e.createPack(t, "300.00")

	require.NoError(t, e.db.Model(&model.Pack{}).Where("id = ?", stale.ID).Update("valid_until", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, e.db.Model(&model.Pack{}).Where("id = ?", hidden.ID).Update("is_active", false).Error)

	packs, err := e.packSvc.ListPurchasable(ctx, nil)
	require.NoError(t, err)
	require.Len(t, packs, 1)
	assert.Equal(t, live.ID, packs[0].ID)

	packs, err = e.packSvc.ListPurchasable(ctx, &stale.CategoryID)
	require.NoError(t, err)
	assert.Empty(t, packs)

	all, err := e.packSvc.ListPacks(ctx, repository.PackFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
