// Package web is the server-rendered UI: a separate process that consumes
// the API over HTTP and renders forms and tables against it.
package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
)

// ErrUnauthorized signals that the API rejected the stored token and the
// user needs to log in again.
var ErrUnauthorized = errors.New("not authorized")

// Client is a thin typed wrapper over the API's HTTP surface.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Register(req dto.RegisterRequestDto) error {
	resp, err := c.do(http.MethodPost, "/api/auth/register", "", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registration failed (%s)", resp.Status)
	}
	return nil
}

func (c *Client) Login(username, password string) (string, error) {
	resp, err := c.do(http.MethodPost, "/api/auth/login", "", dto.LoginRequestDto{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.New("incorrect username or password")
	}

	var body dto.LoginResponseDto
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	return body.JwtToken, nil
}

func (c *Client) ListRegions(token string) ([]dto.RegionDto, error) {
	var regions []dto.RegionDto
	if err := c.getJSON("/api/regions", token, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (c *Client) GetRegion(token string, id uuid.UUID) (*dto.RegionDto, error) {
	var region dto.RegionDto
	if err := c.getJSON(fmt.Sprintf("/api/regions/%s", id), token, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (c *Client) CreateRegion(token string, req dto.AddRegionRequestDto) error {
	resp, err := c.do(http.MethodPost, "/api/regions", token, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkStatus(resp, http.StatusCreated)
}

func (c *Client) UpdateRegion(token string, id uuid.UUID, req dto.UpdateRegionRequestDto) error {
	resp, err := c.do(http.MethodPut, fmt.Sprintf("/api/regions/%s", id), token, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkStatus(resp, http.StatusOK)
}

func (c *Client) DeleteRegion(token string, id uuid.UUID) error {
	resp, err := c.do(http.MethodDelete, fmt.Sprintf("/api/regions/%s", id), token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkStatus(resp, http.StatusOK)
}

func (c *Client) ListWalks(token string) ([]dto.WalkDto, error) {
	var walks []dto.WalkDto
	if err := c.getJSON("/api/walks", token, &walks); err != nil {
		return nil, err
	}
	return walks, nil
}

func (c *Client) do(method, path, token string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) getJSON(path, token string, out any) error {
	resp, err := c.do(http.MethodGet, path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp, http.StatusOK); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}

func (c *Client) checkStatus(resp *http.Response, want int) error {
	switch resp.StatusCode {
	case want:
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("unexpected API response %s", resp.Status)
	}
}
