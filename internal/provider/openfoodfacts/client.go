// Package openfoodfacts looks up packaged foods in the Open Food Facts
// database and turns them into custom-food records.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/saadjs/lifelog/internal/model"
)

const (
	defaultBaseURL = "https://world.openfoodfacts.org"
	userAgent      = "lifelog/1.0 (+https://github.com/saadjs/lifelog)"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// LookupBarcode returns the product as a Food without an ID.
func (c *Client) LookupBarcode(ctx context.Context, barcode string) (model.Food, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return model.Food{}, fmt.Errorf("barcode is required")
	}
	var parsed offResponse
	if err := c.get(ctx, "/api/v2/product/"+url.PathEscape(barcode)+".json", &parsed); err != nil {
		return model.Food{}, err
	}
	if parsed.Status != 1 || strings.TrimSpace(parsed.Product.ProductName) == "" {
		return model.Food{}, fmt.Errorf("no openfoodfacts product found for barcode %q", barcode)
	}
	return toFood(parsed.Product), nil
}

// SearchFoods returns up to limit named products matching query.
func (c *Client) SearchFoods(ctx context.Context, query string, limit int) ([]model.Food, error) {
	if limit <= 0 {
		limit = 10
	}
	path := fmt.Sprintf("/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		url.QueryEscape(strings.TrimSpace(query)), limit)
	var parsed offSearchResponse
	if err := c.get(ctx, path, &parsed); err != nil {
		return nil, err
	}
	out := make([]model.Food, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if strings.TrimSpace(p.ProductName) == "" {
			continue
		}
		out = append(out, toFood(p))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no openfoodfacts product found for query %q", query)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, dst any) error {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return fmt.Errorf("create openfoodfacts request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	return nil
}

// toFood prefers per-serving values when the product has both a serving
// quantity and per-serving energy; otherwise it reports per 100 g.
func toFood(p offProduct) model.Food {
	name := strings.TrimSpace(p.ProductName)
	if brand := strings.TrimSpace(p.Brands); brand != "" {
		name = name + " (" + brand + ")"
	}
	suffix, size, unit := "_100g", 100.0, "g"
	if amount, u, ok := parseServing(p); ok {
		if _, has := parseFloatAny(p.Nutriments["energy-kcal_serving"]); has {
			suffix, size, unit = "_serving", amount, u
		}
	}
	value := func(base string) float64 {
		v, _ := parseFloatAny(p.Nutriments[base+suffix])
		return v
	}
	return model.Food{
		Name:        name,
		Calories:    value("energy-kcal"),
		Protein:     value("proteins"),
		Carbs:       value("carbohydrates"),
		Fat:         value("fat"),
		ServingSize: size,
		ServingUnit: unit,
	}
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func parseServing(p offProduct) (float64, string, bool) {
	if p.ServingQuantity > 0 {
		unit := strings.TrimSpace(p.ServingQuantityUnit)
		if unit == "" {
			unit = "g"
		}
		return p.ServingQuantity, unit, true
	}
	parts := strings.Fields(strings.TrimSpace(p.ServingSize))
	if len(parts) >= 2 {
		if val, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", ""), 64); err == nil && val > 0 {
			return val, parts[1], true
		}
	}
	return 0, "", false
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName         string         `json:"product_name"`
	Brands              string         `json:"brands"`
	ServingSize         string         `json:"serving_size"`
	ServingQuantity     float64        `json:"serving_quantity"`
	ServingQuantityUnit string         `json:"serving_quantity_unit"`
	Nutriments          map[string]any `json:"nutriments"`
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}
