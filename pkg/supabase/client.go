package supabase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client represents a Supabase PostgREST client.
// All requests authenticate with the service key; the API has no
// per-user tokens since users are anonymous.
type Client struct {
	URL        string
	ServiceKey string
	HTTPClient *http.Client
}

// NewClient creates a new Supabase client
func NewClient(url, serviceKey string) *Client {
	return &Client{
		URL:        url,
		ServiceKey: serviceKey,
		HTTPClient: &http.Client{},
	}
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("apikey", c.ServiceKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.ServiceKey))
}

// Query executes a filtered query on a table
func (c *Client) Query(table string, query map[string]interface{}) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()

	c.setAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(body))
	}

	return body, nil
}

// Insert inserts a record into a table
func (c *Client) Insert(table string, data interface{}) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(body))
	}

	return body, nil
}

// Upsert inserts or updates a record in a table.
// onConflict specifies the columns to detect conflicts (e.g., "anonymous_id")
func (c *Client) Upsert(table string, data interface{}, onConflict string) ([]byte, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	// resolution=merge-duplicates updates existing rows on conflict
	req.Header.Set("Prefer", "return=representation,resolution=merge-duplicates")

	q := req.URL.Query()
	q.Add("on_conflict", onConflict)
	req.URL.RawQuery = q.Encode()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supabase error: %s", string(body))
	}

	return body, nil
}

// DeleteWhere deletes records matching a query
func (c *Client) DeleteWhere(table string, query map[string]interface{}) error {
	url := fmt.Sprintf("%s/rest/v1/%s", c.URL, table)

	req, err := http.NewRequest("DELETE", url, nil)
	if err != nil {
		return err
	}

	q := req.URL.Query()
	for key, value := range query {
		q.Add(key, fmt.Sprintf("%v", value))
	}
	req.URL.RawQuery = q.Encode()

	c.setAuthHeaders(req)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("supabase error: %s", string(body))
	}

	return nil
}
