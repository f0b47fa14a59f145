package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Edamam food database endpoint the remote provider
// talks to unless configured otherwise.
const DefaultBaseURL = "https://api.edamam.com"

// RemoteProvider queries the Edamam food database parser API. Nutrient
// values in parser responses are per 100 g.
type RemoteProvider struct {
	baseURL string
	appID   string
	appKey  string
	client  *http.Client
}

// NewRemoteProvider builds a provider for the given credentials. An empty
// baseURL falls back to the public API.
func NewRemoteProvider(baseURL, appID, appKey string) *RemoteProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &RemoteProvider{
		baseURL: baseURL,
		appID:   appID,
		appKey:  appKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured reports whether API credentials are present. The composition
// root leaves the remote provider out of the chain when they are not.
func (p *RemoteProvider) Configured() bool {
	return p.appID != "" && p.appKey != ""
}

type parserResponse struct {
	Hints []struct {
		Food struct {
			Label     string `json:"label"`
			Category  string `json:"category"`
			Nutrients struct {
				Energy  float64 `json:"ENERC_KCAL"`
				Protein float64 `json:"PROCNT"`
				Fat     float64 `json:"FAT"`
				Carbs   float64 `json:"CHOCDF"`
				Fiber   float64 `json:"FIBTG"`
			} `json:"nutrients"`
		} `json:"food"`
	} `json:"hints"`
}

func (p *RemoteProvider) Lookup(ctx context.Context, name string) (*FoodFacts, error) {
	u := fmt.Sprintf(
		"%s/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		p.baseURL, url.QueryEscape(name), p.appID, p.appKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call food database API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read food database response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food database API error %d: %s", resp.StatusCode, string(body))
	}

	var pr parserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food database JSON: %w", err)
	}
	if len(pr.Hints) == 0 {
		return nil, ErrNoMatch
	}

	f := pr.Hints[0].Food
	return &FoodFacts{
		Name:        f.Label,
		Calories:    f.Nutrients.Energy,
		Protein:     f.Nutrients.Protein,
		Carbs:       f.Nutrients.Carbs,
		Fat:         f.Nutrients.Fat,
		Fiber:       f.Nutrients.Fiber,
		ServingSize: "100 g",
	}, nil
}
