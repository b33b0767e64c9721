package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pricebook/catalog"
)

const defaultStatus = "Ativo"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient httpDoer
}

// RESTClient talks to a Supabase-style data API: table endpoints under
// /rest/v1, filters as query parameters, apikey plus bearer authentication.
type RESTClient struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
}

func NewRESTClient(cfg ClientConfig) (*RESTClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("store base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid store base URL %q", cfg.BaseURL)
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("store API key is required")
	}

	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}

	return &RESTClient{baseURL: baseURL, apiKey: apiKey, httpClient: doer}, nil
}

type customerRecord struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ContractNumber string `json:"contract_number,omitempty"`
	Status         string `json:"status,omitempty"`
}

func (c *RESTClient) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.doJSON(ctx, http.MethodGet, "/rest/v1/products?select=id,name", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, name string) (int64, error) {
	payload := map[string]string{"name": name}
	var created []catalog.Product
	if err := c.doJSON(ctx, http.MethodPost, "/rest/v1/products", payload, &created); err != nil {
		return 0, err
	}
	if len(created) == 0 || created[0].ID == 0 {
		return 0, fmt.Errorf("create product %q: response carried no id", name)
	}
	return created[0].ID, nil
}

func (c *RESTClient) FindCustomer(ctx context.Context, name string) (int64, bool, error) {
	endpoint := "/rest/v1/customers?name=eq." + url.QueryEscape(name) + "&select=id"
	var found []customerRecord
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &found); err != nil {
		return 0, false, err
	}
	if len(found) == 0 {
		return 0, false, nil
	}
	return found[0].ID, true, nil
}

func (c *RESTClient) CreateCustomer(ctx context.Context, name, contract string) (int64, error) {
	payload := customerRecord{Name: name, ContractNumber: contract, Status: defaultStatus}
	var created []customerRecord
	if err := c.doJSON(ctx, http.MethodPost, "/rest/v1/customers", payload, &created); err != nil {
		return 0, err
	}
	if len(created) == 0 || created[0].ID == 0 {
		return 0, fmt.Errorf("create customer %q: response carried no id", name)
	}
	return created[0].ID, nil
}

// ReplaceCustomerProducts clears the customer's current associations and
// inserts the new set. The service exposes no single replace operation, so
// this is a delete followed by an insert; a failed insert after a successful
// delete leaves the customer without associations for this run.
func (c *RESTClient) ReplaceCustomerProducts(ctx context.Context, customerID int64, associations []catalog.Association) error {
	endpoint := fmt.Sprintf("/rest/v1/customer_products?customer_id=eq.%d", customerID)
	if err := c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return fmt.Errorf("clear associations for customer %d: %w", customerID, err)
	}
	if len(associations) == 0 {
		return nil
	}
	if err := c.doJSON(ctx, http.MethodPost, "/rest/v1/customer_products", associations, nil); err != nil {
		return fmt.Errorf("insert associations for customer %d: %w", customerID, err)
	}
	return nil
}

func (c *RESTClient) doJSON(ctx context.Context, method, endpointPath string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpointPath, bodyReader)
	if err != nil {
		return fmt.Errorf("create request %s %s: %w", method, endpointPath, err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method == http.MethodPost {
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, endpointPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf(
			"request %s %s failed with status %d: %s",
			method,
			endpointPath,
			resp.StatusCode,
			strings.TrimSpace(string(responseBody)),
		)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response %s %s: %w", method, endpointPath, err)
	}
	return nil
}
