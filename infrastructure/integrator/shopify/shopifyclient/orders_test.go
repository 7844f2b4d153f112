package shopifyclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	shopifydomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/domain"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

func newTestClient(baseURL string) *ShopifyClient {
	return &ShopifyClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		config: &config.Config{
			Shopify: config.Shopify{
				BaseURL:     baseURL,
				AccessToken: "test-token",
			},
		},
	}
}

func makeOrders(count int, prefix int64) []shopifydomain.Order {
	orders := make([]shopifydomain.Order, count)
	for i := range orders {
		orders[i] = shopifydomain.Order{
			ID:              prefix*1000 + int64(i),
			FinancialStatus: "paid",
			TotalPrice:      "10.00",
		}
	}
	return orders
}

func TestListOrders_FollowsNextLinkUntilShortPage(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "test-token", r.Header.Get("X-Shopify-Access-Token"))

		switch requests {
		case 1:
			// Primeira página cheia, com ponteiro para a próxima
			assert.Equal(t, "any", r.URL.Query().Get("status"))
			w.Header().Set("Link", fmt.Sprintf(`<http://%s/page2>; rel="next"`, r.Host))
			json.NewEncoder(w).Encode(ordersResponse{Orders: makeOrders(pageSize, 1)})
		case 2:
			// Segunda página curta encerra a paginação
			json.NewEncoder(w).Encode(ordersResponse{Orders: makeOrders(3, 2)})
		default:
			t.Error("requisição além da última página")
		}
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orders, err := client.ListOrders(context.Background(), OrdersParams{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Len(t, orders, pageSize+3)
}

func TestListOrders_StopsWhenLinkHeaderAbsent(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		// Página cheia porém sem header Link: fim dos dados
		json.NewEncoder(w).Encode(ordersResponse{Orders: makeOrders(pageSize, 1)})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orders, err := client.ListOrders(context.Background(), OrdersParams{Start: time.Now().Add(-time.Hour), End: time.Now()})

	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Len(t, orders, pageSize)
}

func TestListOrders_ExcludesRefundedAndVoided(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ordersResponse{Orders: []shopifydomain.Order{
			{ID: 1, FinancialStatus: "paid", TotalPrice: "50.00"},
			{ID: 2, FinancialStatus: "refunded", TotalPrice: "50.00"},
			{ID: 3, FinancialStatus: "voided", TotalPrice: "50.00"},
			{ID: 4, FinancialStatus: "partially_paid", TotalPrice: "20.00"},
		}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orders, err := client.ListOrders(context.Background(), OrdersParams{Start: time.Now().Add(-time.Hour), End: time.Now()})

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, int64(4), orders[1].ID)
}

func TestListOrders_NonOKStatusAbortsWithoutPartialResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	orders, err := client.ListOrders(context.Background(), OrdersParams{Start: time.Now().Add(-time.Hour), End: time.Now()})

	assert.Error(t, err)
	assert.Nil(t, orders)
}

func TestParseNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "header com previous e next",
			header: `<https://x.myshopify.com/prev>; rel="previous", <https://x.myshopify.com/next>; rel="next"`,
			want:   "https://x.myshopify.com/next",
		},
		{
			name:   "header apenas com next",
			header: `<https://x.myshopify.com/next>; rel="next"`,
			want:   "https://x.myshopify.com/next",
		},
		{
			name:   "header apenas com previous",
			header: `<https://x.myshopify.com/prev>; rel="previous"`,
			want:   "",
		},
		{
			name:   "header vazio",
			header: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNextLink(tt.header))
		})
	}
}
