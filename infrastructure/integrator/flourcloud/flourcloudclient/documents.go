package flourcloudclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	flourclouddomain "github.com/svfproducts/sales-insights-bot/infrastructure/integrator/flourcloud/domain"
	"github.com/svfproducts/sales-insights-bot/internal/period"
)

// documentType R filtra apenas recibos de venda
const documentType = "R"

// collectionKeys são as chaves alternativas sob as quais a API pode colocar
// a coleção de documentos, na ordem em que devem ser tentadas
var collectionKeys = []string{"docs", "documents", "data"}

// DocumentsParams delimita a janela como datas civis fechadas [Start, End]
type DocumentsParams struct {
	Start time.Time
	End   time.Time
}

// ListDocuments busca os documentos da janela. A API não filtra por data,
// então o cliente pagina por offset em ordem decrescente de data e para
// assim que a página vem vazia, curta, ou o documento mais antigo da página
// já é anterior ao início da janela. O corte antecipado confia na ordenação
// estrita de sort=-date; um documento inserido no meio da paginação pode
// ser perdido sem sinal de erro (janela de inconsistência aceita).
// Depois da busca, todos os documentos são filtrados contra a janela civil.
func (c *FlourCloudClient) ListDocuments(ctx context.Context, params DocumentsParams) ([]flourclouddomain.Document, error) {
	pageSize := c.config.FlourCloud.PageSize
	all := make([]flourclouddomain.Document, 0, pageSize)
	skip := 0

	for {
		page, err := c.fetchPage(ctx, pageSize, skip)
		if err != nil {
			return nil, err
		}

		if len(page) == 0 {
			break
		}

		all = append(all, page...)

		if oldestBeforeWindow(page, params.Start) {
			break
		}

		if len(page) < pageSize {
			break
		}

		skip += pageSize
	}

	filtered := make([]flourclouddomain.Document, 0, len(all))
	for _, doc := range all {
		date, err := period.ParseDate(doc.Date)
		if err != nil {
			// Data malformada descarta apenas este documento
			logrus.WithFields(logrus.Fields{
				"document_id": doc.ID,
				"date":        doc.Date,
			}).Warn("Documento do Flour Cloud com data malformada, ignorando")
			continue
		}
		if date.Before(params.Start) || date.After(params.End) {
			continue
		}
		filtered = append(filtered, doc)
	}

	logrus.WithFields(logrus.Fields{
		"fetched":  len(all),
		"filtered": len(filtered),
		"start":    params.Start.Format(time.DateOnly),
		"end":      params.End.Format(time.DateOnly),
	}).Debug("Documentos do Flour Cloud carregados")

	return filtered, nil
}

func (c *FlourCloudClient) fetchPage(ctx context.Context, pageSize, skip int) ([]flourclouddomain.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint, err := url.Parse(c.config.FlourCloud.URL + "/documents")
	if err != nil {
		return nil, errors.Wrap(err, "url base do Flour Cloud inválida")
	}

	query := endpoint.Query()
	query.Set("limit", strconv.Itoa(pageSize))
	query.Set("type", documentType)
	query.Set("sort", "-date")
	query.Set("skip", strconv.Itoa(skip))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.FlourCloud.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("requisição ao Flour Cloud falhou com status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	return extractDocuments(body)
}

// extractDocuments localiza a coleção de documentos no corpo da resposta.
// A API ora devolve um array puro, ora um objeto com a coleção sob uma de
// várias chaves conhecidas; as regras de extração são tentadas em ordem e,
// quando nenhuma serve, o resultado é uma página explicitamente vazia em
// vez de erro.
func extractDocuments(body []byte) ([]flourclouddomain.Document, error) {
	var docs []flourclouddomain.Document
	if err := json.Unmarshal(body, &docs); err == nil {
		return docs, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	for _, key := range collectionKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, errors.Wrapf(err, "erro ao decodificar a coleção %q", key)
		}
		return docs, nil
	}

	logrus.Warn("Resposta do Flour Cloud sem coleção reconhecível, tratando como página vazia")
	return []flourclouddomain.Document{}, nil
}

// oldestBeforeWindow informa se o documento mais antigo da página (o último,
// dado sort=-date) já é anterior ao início da janela. Uma data ilegível não
// autoriza o corte.
func oldestBeforeWindow(page []flourclouddomain.Document, start time.Time) bool {
	oldest, err := period.ParseDate(page[len(page)-1].Date)
	if err != nil {
		return false
	}
	return oldest.Before(start)
}
