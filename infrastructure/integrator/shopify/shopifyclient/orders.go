package shopifyclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	shopifydomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/shopify/domain"
)

// pageSize é o máximo aceito pela Admin API por página
const pageSize = 250

// OrdersParams delimita a janela de criação dos pedidos, em instantes UTC
type OrdersParams struct {
	Start time.Time
	End   time.Time
}

type ordersResponse struct {
	Orders []shopifydomain.Order `json:"orders"`
}

// ListOrders busca todos os pedidos criados dentro da janela, seguindo a
// paginação por cursor do Shopify: o header Link da resposta aponta a
// próxima página até que uma página venha curta ou sem ponteiro. Pedidos
// refunded/voided são descartados aqui, como pós-filtro, porque o filtro de
// status do servidor não é totalmente confiável.
func (c *ShopifyClient) ListOrders(ctx context.Context, params OrdersParams) ([]shopifydomain.Order, error) {
	endpoint, err := url.Parse(c.config.Shopify.BaseURL + "/orders.json")
	if err != nil {
		return nil, errors.Wrap(err, "url base do Shopify inválida")
	}

	query := endpoint.Query()
	query.Set("status", "any")
	query.Set("created_at_min", params.Start.Format(time.RFC3339))
	query.Set("created_at_max", params.End.Format(time.RFC3339))
	query.Set("limit", strconv.Itoa(pageSize))
	endpoint.RawQuery = query.Encode()

	requestURL := endpoint.String()
	all := make([]shopifydomain.Order, 0, pageSize)

	for {
		page, linkHeader, err := c.fetchPage(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if len(page) < pageSize {
			break
		}

		next := parseNextLink(linkHeader)
		if next == "" {
			break
		}
		// A URL do cursor já carrega todos os parâmetros da consulta
		requestURL = next
	}

	included := make([]shopifydomain.Order, 0, len(all))
	for _, order := range all {
		if order.IsExcluded() {
			continue
		}
		included = append(included, order)
	}

	logrus.WithFields(logrus.Fields{
		"fetched":  len(all),
		"included": len(included),
		"start":    params.Start.Format(time.RFC3339),
		"end":      params.End.Format(time.RFC3339),
	}).Debug("Pedidos do Shopify carregados")

	return included, nil
}

func (c *ShopifyClient) fetchPage(ctx context.Context, requestURL string) ([]shopifydomain.Order, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("X-Shopify-Access-Token", c.config.Shopify.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.Errorf("requisição ao Shopify falhou com status: %s", resp.Status)
	}

	var response ordersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, "", errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response.Orders, resp.Header.Get("Link"), nil
}

// parseNextLink extrai a URL com rel="next" de um header Link no estilo
// RFC 5988. Retorna vazio quando não há próxima página.
func parseNextLink(linkHeader string) string {
	for _, part := range strings.Split(linkHeader, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}
		segment := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		return strings.Trim(segment, "<>")
	}
	return ""
}
