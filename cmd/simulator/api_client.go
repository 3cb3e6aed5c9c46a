package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/battle",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type Participant struct {
	Name  string `json:"name"`
	Power int    `json:"power"`
}

type Battle struct {
	ID           string      `json:"id"`
	Participant1 Participant `json:"participant1"`
	Participant2 Participant `json:"participant2"`
	Winner       string      `json:"winner"`
	WinnerPower  int         `json:"winner_power"`
	CreatedAt    time.Time   `json:"created_at"`
	Completed    bool        `json:"completed"`
}

type ServiceInfo struct {
	Message      string            `json:"message"`
	Endpoints    map[string]string `json:"endpoints"`
	TotalBattles int               `json:"total_battles"`
}

// StartBattle creates a battle and returns its id
func (c *APIClient) StartBattle(p1, p2 Participant) (string, error) {
	body := map[string]Participant{
		"participant1": p1,
		"participant2": p2,
	}

	resp, err := c.post("/start", body)
	if err != nil {
		return "", fmt.Errorf("start battle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("start battle failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		BattleID string `json:"battle_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return result.BattleID, nil
}

// GetBattle fetches a battle result
func (c *APIClient) GetBattle(id string) (*Battle, error) {
	var battle Battle
	if err := c.get("/"+id, &battle); err != nil {
		return nil, fmt.Errorf("get battle %s: %w", id, err)
	}
	return &battle, nil
}

// Info fetches the service info
func (c *APIClient) Info() (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.get("/", &info); err != nil {
		return nil, fmt.Errorf("get service info: %w", err)
	}
	return &info, nil
}

func (c *APIClient) get(path string, v interface{}) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

func (c *APIClient) post(path string, body interface{}) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
