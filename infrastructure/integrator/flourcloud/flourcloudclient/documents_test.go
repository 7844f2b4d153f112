package flourcloudclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	flourclouddomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/domain"
	"github.com/svfproducts/sales-insights-bot/internal/config"
)

func newTestClient(baseURL string, pageSize int) *FlourCloudClient {
	return &FlourCloudClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		limiter:    rate.NewLimiter(rate.Inf, 1),
		config: &config.Config{
			FlourCloud: config.FlourCloud{
				URL:         baseURL,
				AccessToken: "test-token",
				PageSize:    pageSize,
			},
		},
	}
}

func doc(id, date string) flourclouddomain.Document {
	return flourclouddomain.Document{ID: id, Date: date}
}

func civil(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListDocuments_StopsOncePageOldestPredatesWindow(t *testing.T) {
	// Páginas em ordem decrescente de data (sort=-date), tamanho 2
	pages := [][]flourclouddomain.Document{
		{doc("a", "2025-01-16"), doc("b", "2025-01-15")},
		{doc("c", "2025-01-14"), doc("d", "2025-01-09")},
		{doc("e", "2025-01-08"), doc("f", "2025-01-07")},
	}

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "-date", r.URL.Query().Get("sort"))
		assert.Equal(t, "R", r.URL.Query().Get("type"))

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		json.NewEncoder(w).Encode(pages[skip/2])
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	docs, err := client.ListDocuments(context.Background(), DocumentsParams{
		Start: civil(2025, time.January, 10),
		End:   civil(2025, time.January, 16),
	})

	require.NoError(t, err)
	// O mais antigo da segunda página (09/01) antecede a janela: nenhuma
	// requisição além dela pode ter sido feita
	assert.Equal(t, 2, requests)

	// E o filtro civil mantém apenas os documentos dentro da janela fechada
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestListDocuments_ShortPageEndsPagination(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode([]flourclouddomain.Document{doc("a", "2025-01-15")})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 2)
	docs, err := client.ListDocuments(context.Background(), DocumentsParams{
		Start: civil(2025, time.January, 15),
		End:   civil(2025, time.January, 15),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, requests)
	assert.Len(t, docs, 1)
}

func TestListDocuments_MalformedDateSkipsOnlyThatDocument(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]flourclouddomain.Document{
			doc("good", "2025-01-15"),
			doc("bad", "15/01/2025"),
			doc("also-good", "2025-01-15T10:00:00+01:00"),
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL, 10)
	docs, err := client.ListDocuments(context.Background(), DocumentsParams{
		Start: civil(2025, time.January, 15),
		End:   civil(2025, time.January, 15),
	})

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "good", docs[0].ID)
	assert.Equal(t, "also-good", docs[1].ID)
}

func TestListDocuments_NonOKStatusAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL, 10)
	docs, err := client.ListDocuments(context.Background(), DocumentsParams{
		Start: civil(2025, time.January, 15),
		End:   civil(2025, time.January, 15),
	})

	assert.Error(t, err)
	assert.Nil(t, docs)
}

func TestExtractDocuments(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantIDs []string
		wantErr bool
	}{
		{
			name:    "array puro",
			body:    `[{"id":"a","date":"2025-01-15"}]`,
			wantIDs: []string{"a"},
		},
		{
			name:    "coleção sob docs",
			body:    `{"docs":[{"id":"a","date":"2025-01-15"}],"total":1}`,
			wantIDs: []string{"a"},
		},
		{
			name:    "coleção sob documents",
			body:    `{"documents":[{"id":"b","date":"2025-01-15"}]}`,
			wantIDs: []string{"b"},
		},
		{
			name:    "coleção sob data",
			body:    `{"data":[{"id":"c","date":"2025-01-15"}]}`,
			wantIDs: []string{"c"},
		},
		{
			// O comportamento mais surpreendente do cliente: um envelope
			// sem nenhuma chave conhecida degrada silenciosamente para
			// página vazia em vez de falhar
			name:    "envelope sem chave conhecida vira página vazia",
			body:    `{"results":[{"id":"d","date":"2025-01-15"}],"total":1}`,
			wantIDs: []string{},
		},
		{
			name:    "docs tem precedência sobre data",
			body:    `{"data":[{"id":"x","date":"2025-01-15"}],"docs":[{"id":"y","date":"2025-01-15"}]}`,
			wantIDs: []string{"y"},
		},
		{
			name:    "json inválido é erro",
			body:    `not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := extractDocuments([]byte(tt.body))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			ids := make([]string, 0, len(docs))
			for _, d := range docs {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
