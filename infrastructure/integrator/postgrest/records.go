package postgrest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/domain"
)

// integrityViolationClass é a classe SQLSTATE de violações de restrição
const integrityViolationClass = "23"

// APIError é o corpo de erro devolvido pelo PostgREST
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("postgrest: status %d", e.StatusCode)
	}
	return fmt.Sprintf("postgrest: status %d: %s (código: %s)", e.StatusCode, e.Message, e.Code)
}

// FetchAll pagina com limit/offset. O PostgREST corta respostas em max-rows
// sem sinalizar erro; o total de Content-Range (Prefer: count=exact) diz
// quando parar, e na falta dele para na primeira página curta.
func (c *Client) FetchAll(ctx context.Context, entity domain.Entity) ([]domain.Record, error) {
	if !entity.Valid() {
		return nil, errors.Wrapf(repository.ErrUnknownEntity, "%q", entity)
	}

	records := make([]domain.Record, 0)
	for {
		page, total, err := c.fetchPage(ctx, entity, len(records))
		if err != nil {
			return nil, err
		}
		records = append(records, page...)

		if total < 0 {
			if len(page) < c.pageSize {
				return records, nil
			}
			continue
		}
		if len(records) >= total {
			return records, nil
		}
		if len(page) == 0 {
			return nil, domain.NewStoreUnavailableError(repository.OpFetch, entity,
				errors.Errorf("resposta truncada: %d de %d linhas", len(records), total))
		}
	}
}

// fetchPage devolve a página e o total informado pelo servidor (-1 se ausente)
func (c *Client) fetchPage(ctx context.Context, entity domain.Entity, offset int) ([]domain.Record, int, error) {
	query := url.Values{}
	query.Set("select", "*")
	if order := pagingOrder(entity); order != "" {
		query.Set("order", order)
	}
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))

	req, err := c.newRequest(ctx, http.MethodGet, entity, query, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Prefer", "count=exact")

	body, header, err := c.do(req, repository.OpFetch, entity)
	if err != nil {
		return nil, 0, err
	}

	page := make([]domain.Record, 0)
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, 0, domain.NewStoreUnavailableError(repository.OpFetch, entity, errors.Wrap(err, "erro ao decodificar a resposta"))
	}

	return page, contentRangeTotal(header.Get("Content-Range")), nil
}

// contentRangeTotal lê o total de "0-999/2500"; "*" ou cabeçalho ausente vira -1
func contentRangeTotal(contentRange string) int {
	_, total, found := strings.Cut(contentRange, "/")
	if !found {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimSpace(total))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (c *Client) Insert(ctx context.Context, entity domain.Entity, record domain.Record) error {
	payload, err := writablePayload(entity, record)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, entity, nil, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	_, _, err = c.do(req, repository.OpInsert, entity)
	return err
}

func (c *Client) Upsert(ctx context.Context, entity domain.Entity, record domain.Record, conflictColumns ...string) error {
	payload, err := writablePayload(entity, record)
	if err != nil {
		return err
	}

	if len(conflictColumns) == 0 {
		return errors.Wrapf(repository.ErrInvalidConflict, "%s: nenhuma coluna informada", entity)
	}
	for _, column := range conflictColumns {
		if _, ok := payload[column]; !ok {
			return errors.Wrapf(repository.ErrInvalidConflict, "%s: coluna %q", entity, column)
		}
	}

	query := url.Values{}
	query.Set("on_conflict", strings.Join(conflictColumns, ","))

	req, err := c.newRequest(ctx, http.MethodPost, entity, query, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=minimal")

	_, _, err = c.do(req, repository.OpUpsert, entity)
	return err
}

func (c *Client) newRequest(ctx context.Context, method string, entity domain.Entity, query url.Values, payload map[string]any) (*http.Request, error) {
	endpoint, err := url.Parse(c.baseURL + "/" + entity.String())
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao serializar o registro")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return req, nil
}

// do executa a requisição. Conflito (409) ou violação de integridade
// (SQLSTATE classe 23, que o PostgREST devolve como 400) é erro do chamador;
// qualquer outra falha, inclusive de rede, indica store indisponível.
func (c *Client) do(req *http.Request, op string, entity domain.Entity) ([]byte, http.Header, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, domain.NewStoreUnavailableError(op, entity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, domain.NewStoreUnavailableError(op, entity, errors.Wrap(err, "erro ao ler a resposta"))
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, resp.Header, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	_ = json.Unmarshal(body, apiErr)

	if resp.StatusCode == http.StatusConflict || strings.HasPrefix(apiErr.Code, integrityViolationClass) {
		return nil, nil, errors.Wrapf(repository.ErrConstraintViolation, "%s %s: %s", op, entity, apiErr.Message)
	}

	return nil, nil, domain.NewStoreUnavailableError(op, entity, apiErr)
}

func writablePayload(entity domain.Entity, record domain.Record) (map[string]any, error) {
	if !entity.Valid() {
		return nil, errors.Wrapf(repository.ErrUnknownEntity, "%q", entity)
	}

	payload := make(map[string]any, len(record))
	for column, value := range record {
		if entity.HasColumn(column) {
			payload[column] = value
		}
	}
	if len(payload) == 0 {
		return nil, errors.Wrapf(repository.ErrEmptyRecord, "%s", entity)
	}

	return payload, nil
}

// pagingOrder desempata pela chave primária para que a paginação não pule
// nem repita linhas com o mesmo valor de ordenação
func pagingOrder(entity domain.Entity) string {
	order := orderParam(entity.OrderBy())
	if order == "" || !entity.HasColumn("id") || strings.HasPrefix(order, "id.") {
		return order
	}
	return order + ",id.asc"
}

// orderParam converte "sold_at ASC" para a sintaxe do PostgREST, "sold_at.asc"
func orderParam(orderBy string) string {
	fields := strings.Fields(orderBy)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	}
	return fields[0] + "." + strings.ToLower(fields[1])
}
