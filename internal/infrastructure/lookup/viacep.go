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

// viaCEPResponse is the ViaCEP payload. Erro comes back as the string
// "true" when the CEP does not exist.
type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro"`
}

func (r viaCEPResponse) notFound() bool {
	return len(r.Erro) > 0
}

// ViaCEPClient implements lookup.AddressClient against the public ViaCEP
// postal registry.
type ViaCEPClient struct {
	httpClient *http.Client
	baseURL    string
	cb         *gobreaker.CircuitBreaker
	logger     logger.Interface
}

// NewViaCEPClient creates a new ViaCEPClient.
func NewViaCEPClient(cfg *sharedConfig.LookupConfig, log logger.Interface) applookup.AddressClient {
	return &ViaCEPClient{
		httpClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL:    strings.TrimRight(cfg.CEPBaseURL, "/"),
		cb:         newBreaker("viacep"),
		logger:     log,
	}
}

func (c *ViaCEPClient) FetchAddress(ctx context.Context, cep string) (*applookup.AddressInfo, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.fetch(ctx, cep)
	})
	if err != nil {
		c.logger.Warnw("CEP registry lookup failed", "cep", cep, "error", err)
		return nil, breakerErr(err)
	}

	info, ok := result.(*applookup.AddressInfo)
	if !ok || info == nil {
		return nil, applookup.ErrNotFound
	}
	return info, nil
}

// fetch returns a nil info without error for an unknown CEP so a missing
// record does not trip the breaker.
func (c *ViaCEPClient) fetch(ctx context.Context, cep string) (*applookup.AddressInfo, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)
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
	// ViaCEP answers a malformed CEP with 400 and an unknown one with an
	// erro flag in the 200 body.
	case resp.StatusCode == http.StatusBadRequest:
		return nil, nil
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: registry returned %d", applookup.ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("registry returned unexpected status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode registry response: %w", err)
	}
	if payload.notFound() {
		return nil, nil
	}

	return &applookup.AddressInfo{
		CEP:          payload.CEP,
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		State:        payload.UF,
	}, nil
}
