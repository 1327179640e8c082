// Package mirror posts finalized match records to a remote backup service.
// Mirroring is strictly best-effort: it runs after the local durable save,
// never blocks it, and its failures are logged, not propagated.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/user/tagging-football-cli/event"
	"github.com/user/tagging-football-cli/log"
	"github.com/user/tagging-football-cli/match"
)

// requestTimeout bounds one mirror attempt. There are no retries; a missed
// backup is acceptable, a stuck goroutine is not.
const requestTimeout = 15 * time.Second

// Client posts match backups to a remote endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a mirror client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// matchPayload is the mirrored match header.
type matchPayload struct {
	ID        string         `json:"id"`
	Date      time.Time      `json:"date"`
	HomeTeam  string         `json:"home_team"`
	AwayTeam  string         `json:"away_team"`
	HomeScore int            `json:"home_score"`
	AwayScore int            `json:"away_score"`
	Notes     match.Notes    `json:"notes"`
	Events    []eventPayload `json:"events"`
}

// eventPayload is the flattened view of one event: enough to rebuild a
// timeline remotely without the full union shape.
type eventPayload struct {
	Team    string `json:"team"`
	TimeMs  int64  `json:"time_ms"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	SubType string `json:"sub_type,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// MirrorMatch posts the finalized record. Callers run it detached from the
// save path; any error return is for logging only.
func (c *Client) MirrorMatch(rec match.Record) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	payload := matchPayload{
		ID:        rec.ID,
		Date:      rec.Date,
		HomeTeam:  rec.HomeTeam,
		AwayTeam:  rec.AwayTeam,
		HomeScore: rec.Score.Home,
		AwayScore: rec.Score.Away,
		Notes:     rec.Notes,
		Events:    flattenEvents(rec.Events),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal mirror payload: %w", err)
	}

	url := fmt.Sprintf("%s/matches", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create mirror request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post mirror request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Error("failed to close mirror response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusAccepted {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("mirror returned status %d and failed to read body", resp.StatusCode)
		}
		return fmt.Errorf("mirror returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// flattenEvents projects the union down to the mirror's flat event rows.
func flattenEvents(events []event.MatchEvent) []eventPayload {
	out := make([]eventPayload, 0, len(events))
	for _, ev := range events {
		p := eventPayload{
			Team:   string(ev.Side()),
			TimeMs: ev.EventTime(),
		}
		switch e := ev.(type) {
		case *event.PlayerEvent:
			p.Player = e.PlayerNumber
			p.Type = e.Type
			p.SubType = e.SubType
			p.Comment = e.Comment
		case *event.SubstitutionEvent:
			p.Type = event.TypeSubstitution
			p.Comment = e.Comment
		case *event.FormationChangeEvent:
			p.Type = event.TypeFormationChange
			p.SubType = e.ToFormation
		case *event.TeamEvent:
			p.Type = event.TypeTeam
			p.SubType = e.Stamp
			p.Comment = e.Comment
		}
		out = append(out, p)
	}
	return out
}
