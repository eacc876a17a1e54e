package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	renderBaseURL   = "https://api.render.com/v1"
	renderPageLimit = 100
)

type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

// RenderClient lê os secret files do serviço no Render. O nome do arquivo é a
// chave de configuração e o conteúdo é o valor.
type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:     config.Render.APIKey,
		BaseURL:    renderBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListSecrets percorre todas as páginas da listagem seguindo o cursor
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secrets := make(map[string]string)
	cursor := ""

	for {
		page, err := c.fetchPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}

		items := gjson.ParseBytes(page).Array()
		for _, item := range items {
			name := strings.TrimSpace(item.Get("secretFile.name").String())
			if name == "" {
				continue
			}
			secrets[strings.ToLower(name)] = strings.TrimSpace(item.Get("secretFile.content").String())
		}

		if len(items) < renderPageLimit {
			return secrets, nil
		}

		next := items[len(items)-1].Get("cursor").String()
		if next == "" || next == cursor {
			return secrets, nil
		}
		cursor = next
	}
}

func (c *RenderClient) fetchPage(ctx context.Context, serviceID, cursor string) ([]byte, error) {
	query := url.Values{}
	query.Set("limit", fmt.Sprint(renderPageLimit))
	if cursor != "" {
		query.Set("cursor", cursor)
	}

	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config: error list secrets (%d): %s", resp.StatusCode, body)
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("config: invalid secrets response")
	}

	return body, nil
}
