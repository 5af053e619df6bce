package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ScriptStore talks to the spreadsheet-backed Apps Script service, normally
// through this server's own relay route. All persistence lives upstream.
type ScriptStore struct {
	base string
	http *http.Client
}

func NewScriptStore(base string) *ScriptStore {
	return &ScriptStore{base: base, http: &http.Client{}}
}

var ErrInvalidResponse = errors.New("invalid JSON response from server")

type SubmitStatusError struct {
	Status int
}

func (e *SubmitStatusError) Error() string {
	return "submit rejected with status " + strconv.Itoa(e.Status)
}

// Export fetches the full registration sheet. The raw body is returned next
// to the parsed rows so callers that care about column order (CSV) can keep
// the first row's key order.
func (s *ScriptStore) Export(ctx context.Context) (json.RawMessage, []Row, error) {
	// Deployed script URLs often carry a query string already.
	sep := "?"
	if strings.Contains(s.base, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+sep+"action=export", nil)
	if err != nil {
		return nil, nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("export failed %d: %s", resp.StatusCode, body)
	}

	var rows []Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, nil, errors.New("invalid JSON from export")
	}
	return body, rows, nil
}

// TeamCount counts export rows belonging to one team. Slots already stored
// upstream count against the cap, not just this session's.
func (s *ScriptStore) TeamCount(ctx context.Context, team int) (int, error) {
	_, rows, err := s.Export(ctx)
	if err != nil {
		return 0, err
	}
	want := strconv.Itoa(team)
	n := 0
	for _, r := range rows {
		if teamKey(r) == want {
			n++
		}
	}
	return n, nil
}

// teamKey extracts the digits-only team identifier from a row, falling back
// to the raw value when no digits are present.
func teamKey(r Row) string {
	v := asString(r["teamNumber"])
	if v == "" {
		v = asString(r["team"])
	}
	if d := digitsOnly(v); d != "" {
		return d
	}
	return v
}

// Submit posts one roster. A non-success status is logged in full but only
// reported generically; a success body that is not the expected JSON shape
// yields ErrInvalidResponse (the submission may still have landed upstream).
func (s *ScriptStore) Submit(ctx context.Context, p SubmitPayload) (string, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithField("status", resp.StatusCode).Errorf("submit failed: %s", respBody)
		return "", &SubmitStatusError{Status: resp.StatusCode}
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		logrus.Errorf("submit: bad response body: %s", respBody)
		return "", ErrInvalidResponse
	}
	return out.Message, nil
}
