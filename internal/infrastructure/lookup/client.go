// Package lookup contém os adaptadores HTTP dos serviços públicos de consulta de CEP e CNPJ.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/webytehub/ploutosledger-api/internal/application/ports"
)

// maxBodyBytes limita a leitura das respostas dos provedores.
const maxBodyBytes = 1 << 20

// NewHTTPClient cliente compartilhado pelos adaptadores.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON faz GET em url e decodifica o corpo em out.
// Status fora da faixa 2xx devolve ports.ErrProviderUnavailable.
func getJSON(ctx context.Context, client *http.Client, provider, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: criar request: %w", provider, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s: timeout ou cancelamento: %w", provider, ctx.Err())
		}
		return fmt.Errorf("%s: chamada HTTP falhou: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return fmt.Errorf("%s: HTTP %d: %w", provider, resp.StatusCode, ports.ErrProviderUnavailable)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%s: ler resposta: %w", provider, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decodificar resposta: %w", provider, err)
	}
	return nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
