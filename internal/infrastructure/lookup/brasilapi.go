package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	applookup "github.com/LucasFelipeJesus/portal-chamados/internal/application/lookup"
	sharedConfig "github.com/LucasFelipeJesus/portal-chamados/internal/shared/config"
	"github.com/LucasFelipeJesus/portal-chamados/internal/shared/logger"
)

// brasilAPIResponse is the subset of the BrasilAPI CNPJ payload the portal
// uses.
type brasilAPIResponse struct {
	CNPJ                    string `json:"cnpj"`
	RazaoSocial             string `json:"razao_social"`
	NomeFantasia            string `json:"nome_fantasia"`
	DescricaoTipoLogradouro string `json:"descricao_tipo_de_logradouro"`
	Logradouro              string `json:"logradouro"`
	Numero                  string `json:"numero"`
	Complemento             string `json:"complemento"`
	Bairro                  string `json:"bairro"`
	Municipio               string `json:"municipio"`
	UF                      string `json:"uf"`
	CEP                     string `json:"cep"`
}

// BrasilAPIClient implements lookup.CompanyClient against the public
// BrasilAPI CNPJ registry.
type BrasilAPIClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	logger     logger.Interface
}

// NewBrasilAPIClient creates a new BrasilAPIClient.
func NewBrasilAPIClient(cfg *sharedConfig.LookupConfig, log logger.Interface) applookup.CompanyClient {
	return &BrasilAPIClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    strings.TrimRight(cfg.CNPJBaseURL, "/"),
		cb:         newBreaker("brasilapi-cnpj"),
		logger:     log,
	}
}

func (c *BrasilAPIClient) FetchCompany(ctx context.Context, cnpjDigits string) (*applookup.CompanyInfo, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, cnpjDigits)
	})
	if err != nil {
		c.logger.Warnw("CNPJ registry lookup failed", "cnpj", cnpjDigits, "error", err)
		return nil, breakerErr(err)
	}

	info, ok := result.(*applookup.CompanyInfo)
	if !ok || info == nil {
		return nil, applookup.ErrNotFound
	}
	return info, nil
}

// fetch returns a nil info without error on a 404 so a missing record does
// not trip the breaker.
func (c *BrasilAPIClient) fetch(ctx context.Context, cnpjDigits string) (*applookup.CompanyInfo, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, cnpjDigits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create registry request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", applookup.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: registry returned %d", applookup.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("registry returned unexpected status %d", resp.StatusCode)
	}

	var payload brasilAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}

	street := strings.TrimSpace(payload.DescricaoTipoLogradouro + " " + payload.Logradouro)
	return &applookup.CompanyInfo{
		CNPJ:         payload.CNPJ,
		LegalName:    payload.RazaoSocial,
		TradeName:    payload.NomeFantasia,
		Street:       street,
		Number:       payload.Numero,
		Complement:   payload.Complemento,
		Neighborhood: payload.Bairro,
		City:         payload.Municipio,
		State:        payload.UF,
		CEP:          payload.CEP,
	}, nil
}
