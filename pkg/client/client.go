package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

// ErrRejected is returned when the server answers a request with a non 200 status.
var ErrRejected = errors.New("request rejected by scheduler service")

// Client talks to the scheduler service HTTP API.
type Client struct {
	BaseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Schedule runs a single policy remotely. A nil quantum lets the server use its configured default;
// any other value is sent as is and validated by the server.
func (c *Client) Schedule(processes []core.Process, policy schedulers.Policy, quantum *int) (responses.ScheduleResponse, error) {
	var response responses.ScheduleResponse
	err := c.post("/api/v1/schedule", newRequest(processes, policy.String(), quantum), &response)
	return response, err
}

// All runs every policy remotely over the same processes.
func (c *Client) All(processes []core.Process, quantum *int) ([]responses.ScheduleResponse, error) {
	var response []responses.ScheduleResponse
	err := c.post("/api/v1/all", newRequest(processes, "", quantum), &response)
	return response, err
}

func newRequest(processes []core.Process, algorithm string, quantum *int) requests.ScheduleRequests {
	request := requests.ScheduleRequests{
		Algorithm: algorithm,
		Jobs:      make([]requests.Job, 0, len(processes)),
	}
	if quantum != nil {
		request.TimeQuantum = json.Number(fmt.Sprint(*quantum))
	}
	for _, p := range processes {
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   json.Number(fmt.Sprint(p.ProcessId)),
			ArrivalTime: json.Number(fmt.Sprint(p.ArrivalTime)),
			BurstTime:   json.Number(fmt.Sprint(p.BurstTime)),
		})
	}
	return request
}

func (c *Client) post(path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.client.Post(c.BaseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		var failure responses.ErrorResponse
		if json.Unmarshal(payload, &failure) == nil && failure.Error != "" {
			return fmt.Errorf("%w (%d): %s", ErrRejected, resp.StatusCode, failure.Error)
		}
		return fmt.Errorf("%w (%d)", ErrRejected, resp.StatusCode)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
