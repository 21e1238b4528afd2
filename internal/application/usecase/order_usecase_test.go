package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

func TestOrderCreate_CodigosGlobalesDesdeUno(t *testing.T) {
	f := newFixture(t)
	f.company(t, userAna, "ACME", cnpjA)
	f.company(t, userBia, "Initech", cnpjB)

	assert.Equal(t, int64(1), f.order(t, userAna, cnpjA))
	assert.Equal(t, int64(2), f.order(t, userBia, cnpjB), "la secuencia no es por usuario ni por empresa")
	assert.Equal(t, int64(3), f.order(t, userAna, cnpjA))
}

func TestOrderCreate_PersisteActivoConItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.company(t, userAna, "ACME", cnpjA)

	in := dto.CreateOrderRequest{CNPJ: cnpjA, Products: []dto.OrderItemRequest{
		{Name: "Caneta", Quantity: decimal.NewFromInt(3)},
		{Name: "Caderno", Quantity: decimal.RequireFromString("1.5")},
	}}
	out, err := f.orders.Create(ctx, userAna, in)
	require.NoError(t, err)

	order, ok := f.store.Orders().Get(out.Code)
	require.True(t, ok)
	assert.True(t, order.Active)
	assert.Equal(t, userAna, order.UserID)
	assert.Equal(t, cnpjA, order.CNPJ)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Caderno", order.Items[1].Name)
	assert.True(t, order.Items[1].Quantity.Equal(decimal.RequireFromString("1.5")))
}

func TestOrderCreate_CnpjNoRegistradoParaElUsuario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.company(t, userBia, "Initech", cnpjA)

	_, err := f.orders.Create(ctx, userAna, orderRequest(cnpjA, "Caneta"))
	assert.ErrorIs(t, err, domain.ErrInexistentCnpj, "el CNPJ de otro usuario no cuenta")
	assert.Equal(t, cnpjA, domain.DetailOf(err))
}

func TestOrderCreate_PrimerProductoInexistente(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.company(t, userAna, "ACME", cnpjA)

	_, err := f.orders.Create(ctx, userAna, orderRequest(cnpjA, "Caneta", "Monitor", "Teclado"))
	assert.ErrorIs(t, err, domain.ErrInexistentProduct)
	assert.Equal(t, "Monitor", domain.DetailOf(err))

	assert.Equal(t, int64(1), f.order(t, userAna, cnpjA), "un pedido rechazado no consume código")
}

func TestOrderCreate_CnpjSeValidaAntesQueProductos(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(context.Background(), userAna, orderRequest(cnpjA, "Monitor"))
	assert.ErrorIs(t, err, domain.ErrInexistentCnpj)
}

func TestOrderCreate_ConcurrenteSinColisiones(t *testing.T) {
	f := newFixture(t)
	f.company(t, userAna, "ACME", cnpjA)

	const n = 25
	codes := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := f.orders.Create(context.Background(), userAna, orderRequest(cnpjA, "Caneta"))
			if err == nil {
				codes <- out.Code
			}
		}()
	}
	wg.Wait()
	close(codes)

	seen := make(map[int64]bool)
	for c := range codes {
		assert.False(t, seen[c], "código repetido %d", c)
		seen[c] = true
	}
	assert.Len(t, seen, n)
	for c := int64(1); c <= n; c++ {
		assert.True(t, seen[c], "falta el código %d", c)
	}
}

func TestOrderExclude(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.company(t, userAna, "ACME", cnpjA)
	f.company(t, userBia, "Initech", cnpjB)
	anaCode := f.order(t, userAna, cnpjA)
	biaCode := f.order(t, userBia, cnpjB)

	require.NoError(t, f.orders.Exclude(ctx, userAna, anaCode))

	order, ok := f.store.Orders().Get(anaCode)
	require.True(t, ok, "la baja es lógica")
	assert.False(t, order.Active)

	errAgain := f.orders.Exclude(ctx, userAna, anaCode)
	errMissing := f.orders.Exclude(ctx, userAna, 999)
	errForeign := f.orders.Exclude(ctx, userAna, biaCode)
	for _, err := range []error{errAgain, errMissing, errForeign} {
		assert.ErrorIs(t, err, domain.ErrInexistentOrder)
	}

	assert.Equal(t, int64(3), f.order(t, userAna, cnpjA), "el código dado de baja no se reutiliza")
}
