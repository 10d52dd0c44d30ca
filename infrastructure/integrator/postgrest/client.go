package postgrest

import (
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/dropos-api/infrastructure/repository"
	"github.com/vfg2006/dropos-api/internal/config"
)

// json decodifica números como json.Number para não perder centavos em float
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

const (
	defaultTimeout  = 15 * time.Second
	defaultPageSize = 1000 // max-rows padrão do PostgREST
)

// Client é um RecordStore sobre a API REST do PostgREST (Supabase expõe a mesma)
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
}

var _ repository.RecordStore = (*Client)(nil)

func NewClient(cfg config.PostgREST) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		apiKey:   cfg.APIKey,
		pageSize: pageSize,
	}
}
