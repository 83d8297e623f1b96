package service

import (
	"context"
	"testing"

	"freshpack-backend/internal/model"
	"freshpack-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	result, err := e.seedSvc.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, len(seedUsers), result.Users)
	assert.Equal(t, len(seedCategories), result.Categories)
	assert.Equal(t, len(seedCategories)*len(seedPackTypes), result.Packs)

	assert.Equal(t, int64(result.Products), e.count(t, &model.Product{}))
	assert.Equal(t, int64(result.PackProducts), e.count(t, &model.PackProduct{}))

	again, err := e.seedSvc.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, again.Skipped)
	assert.Equal(t, int64(result.Users), e.count(t, &model.User{}))
	assert.Equal(t, int64(result.Packs), e.count(t, &model.Pack{}))
}

func TestSeedPackPricesMatchComposition(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.seedSvc.Seed(ctx)
	require.NoError(t, err)

	packs, err := e.packs.List(ctx, repository.PackFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, packs)

	for _, pack := range packs {
		require.NotEmpty(t, pack.Products, pack.Name)
		assert.True(t, pack.FinalPrice.Equal(model.PackPrice(pack.Products)), pack.Name)
		assert.True(t, pack.Purchasable(pack.ValidFrom), pack.Name)
	}
}

func TestSeededAccountsCanLogIn(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.seedSvc.Seed(ctx)
	require.NoError(t, err)

	for _, u := range seedUsers {
		_, err := e.authSvc.Login(ctx, loginRequest(u.email, u.password))
		assert.NoError(t, err, u.email)
	}
}

func TestForceSyncRebuilds(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	e.createUser(t, "stray@example.com", model.RoleCustomer)

	result, err := e.seedSvc.ForceSync(ctx)
	require.NoError(t, err)
	assert.False(t, result.Skipped)

	_, err = e.users.FindByEmail(ctx, "stray@example.com")
	require.Error(t, err)
	assert.Equal(t, int64(len(seedUsers)), e.count(t, &model.User{}))
}

func TestEnsureAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	admin, created, err := e.seedSvc.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	again, created, err := e.seedSvc.EnsureAdmin(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)
}
