package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
)

func TestUserRepo_UsernameUnico(t *testing.T) {
	ctx := context.Background()
	users := memory.NewStore().Users()

	require.NoError(t, users.Create(ctx, &entity.User{ID: "u1", Username: "ana@example.com"}))
	err := users.Create(ctx, &entity.User{ID: "u2", Username: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicatedUsername)

	require.NoError(t, users.Create(ctx, &entity.User{ID: "u3", Username: "bia@example.com"}))
	err = users.Update(ctx, &entity.User{ID: "u3", Username: "ana@example.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicatedUsername)

	got, err := users.GetByUsername(ctx, "bia@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u3", got.ID)

	missing, err := users.GetByUsername(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCompanyRepo_CreateConcurrenteSinDuplicados(t *testing.T) {
	ctx := context.Background()
	companies := memory.NewStore().Companies()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, dup int
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := companies.Create(ctx, &entity.Company{UserID: "u1", Name: "ACME", CNPJ: "11222333000181"})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if errors.Is(err, domain.ErrDuplicatedCnpj) {
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, 19, dup)
}

func TestRunOrder_RevierteContadorSiFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("falla")

	err := store.RunOrder(ctx, func(_ repository.OrderRepository, seq repository.OrderSequence) error {
		code, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), code)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.RunOrder(ctx, func(orders repository.OrderRepository, seq repository.OrderSequence) error {
		code, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), code, "el código de la transacción fallida no se consume")
		return orders.Create(ctx, &entity.Order{Code: code, UserID: "u1", CNPJ: "11222333000181", Active: true})
	})
	require.NoError(t, err)
}

func TestOrderRepo_DeactivateYConteo(t *testing.T) {
	ctx := context.Background()
	orders := memory.NewStore().Orders()

	require.NoError(t, orders.Create(ctx, &entity.Order{Code: 1, UserID: "u1", CNPJ: "A", Active: true}))
	require.NoError(t, orders.Create(ctx, &entity.Order{Code: 2, UserID: "u1", CNPJ: "A", Active: true}))
	require.NoError(t, orders.Create(ctx, &entity.Order{Code: 3, UserID: "u2", CNPJ: "A", Active: true}))

	done, err := orders.Deactivate(ctx, "u1", 3)
	require.NoError(t, err)
	assert.False(t, done, "pedido ajeno")

	done, err = orders.Deactivate(ctx, "u1", 2)
	require.NoError(t, err)
	assert.True(t, done)

	done, err = orders.Deactivate(ctx, "u1", 2)
	require.NoError(t, err)
	assert.False(t, done, "ya dado de baja")

	counts, err := orders.CountActiveByCNPJ(ctx, "u1", []string{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, 1, counts["A"])
	assert.Equal(t, 0, counts["B"])

	o, ok := orders.Get(2)
	require.True(t, ok)
	assert.False(t, o.Active, "la baja es lógica: el pedido se conserva")
}
