// Package skautis talks to the membership system owning units, events and
// camps over its JSON API.
package skautis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

const codeAmountMustBeGreaterThanZero = "amount_must_be_greater_than_zero"

// OwnerResolver tells which event, camp or unit a cashbook belongs to.
type OwnerResolver interface {
	OwnerOf(ctx context.Context, id cashbook.CashbookID) (cashbook.Owner, error)
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	limiter *rate.Limiter
	owners  OwnerResolver
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithRateLimit caps requests per second sent to the membership system.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(cl *Client) { cl.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

func NewClient(baseURL, token string, owners OwnerResolver, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 0),
		owners:  owners,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type member struct {
	DisplayName string `json:"display_name"`
}

// MemberNames lists display names of the unit's members.
func (c *Client) MemberNames(ctx context.Context, unitID int, limit int) ([]string, error) {
	path := fmt.Sprintf("/units/%d/members?%s", unitID, url.Values{"limit": {strconv.Itoa(limit)}}.Encode())

	var members []member
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, fmt.Errorf("listing members of unit %d: %w", unitID, err)
	}

	names := make([]string, 0, len(members))

	for _, m := range members {
		if m.DisplayName != "" {
			names = append(names, m.DisplayName)
		}
	}

	return names, nil
}

type statement struct {
	Amount     decimal.Decimal `json:"amount"`
	IsEstimate bool            `json:"is_estimate"`
}

// UpdateCategoryTotals writes the real (not estimated) total of every
// category to the camp budget of the cashbook's camp.
func (c *Client) UpdateCategoryTotals(ctx context.Context, id cashbook.CashbookID, totals map[int]decimal.Decimal) error {
	if len(totals) == 0 {
		return nil
	}

	owner, err := c.owners.OwnerOf(ctx, id)
	if err != nil {
		return err
	}

	if owner.Type != cashbook.TypeCamp {
		return fmt.Errorf("%w: cashbook %s belongs to %s, not a camp", cashbook.ErrInvalidArgument, id, owner)
	}

	for _, categoryID := range slices.Sorted(maps.Keys(totals)) {
		path := fmt.Sprintf("/camps/%d/statements/%d", owner.ID, categoryID)
		body := statement{Amount: totals[categoryID].Round(2)}

		if err := c.do(ctx, http.MethodPut, path, body, nil); err != nil {
			return fmt.Errorf("updating category %d of camp %d: %w", categoryID, owner.ID, err)
		}
	}

	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("waiting for rate limiter: %w", err)
	}

	var body io.Reader

	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", cashbook.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500, resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", cashbook.ErrExternalUnavailable, resp.StatusCode)
	}

	var e errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity && e.Code == codeAmountMustBeGreaterThanZero {
		return cashbook.ErrAmountMustBeGreaterThanZero
	}

	return fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, e.Message)
}

var _ cashbook.CategoryTotalsUpdater = (*Client)(nil)
