// Package client is a typed HTTP client for the points API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const clientTimeout = 5 * time.Second

var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type User struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
}

type Balance struct {
	UserID         int `json:"user_id"`
	CurrentPoints  int `json:"current_points"`
	ExpiringPoints int `json:"expiring_points"`
}

type HistoryEntry struct {
	ID          int       `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Points      int       `json:"points"`
	Remarks     *string   `json:"remarks"`
}

type Item struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	PointsRequired int    `json:"points_required"`
}

type RedeemResult struct {
	Message    string `json:"message"`
	NewBalance int    `json:"new_balance"`
}

type UsePointsResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RemainingPoints int    `json:"remaining_points"`
}

type errorBody struct {
	Detail string `json:"detail"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	c := resty.New()
	c.
		SetTimeout(clientTimeout).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// redemptions are not idempotent
			if r != nil && r.Request != nil &&
				r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		}).
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetError(&errorBody{})

	return &Client{http: c}
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	err := c.get(ctx, "/users", nil, &users)
	return users, err
}

func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var u User
	if err := c.get(ctx, "/users/"+strconv.Itoa(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) GetBalance(ctx context.Context, userID int) (*Balance, error) {
	var b Balance
	path := "/users/" + strconv.Itoa(userID) + "/balance"
	if err := c.get(ctx, path, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// PointHistory lists entries newest first. filter may be empty, "all",
// "earned" or "used"; limit 0 asks for every entry.
func (c *Client) PointHistory(
	ctx context.Context,
	userID int,
	limit int,
	filter string,
) ([]HistoryEntry, error) {
	params := map[string]string{"limit": strconv.Itoa(limit)}
	if filter != "" {
		params["filter_type"] = filter
	}

	var history []HistoryEntry
	path := "/users/" + strconv.Itoa(userID) + "/point-history"
	err := c.get(ctx, path, params, &history)
	return history, err
}

func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := c.get(ctx, "/redeemable-items", nil, &items)
	return items, err
}

func (c *Client) RedeemItem(
	ctx context.Context,
	userID, itemID int,
) (*RedeemResult, error) {
	var res RedeemResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"userID": strconv.Itoa(userID),
			"itemID": strconv.Itoa(itemID),
		}).
		SetResult(&res).
		Post("/users/{userID}/redeem/{itemID}")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UsePoints(
	ctx context.Context,
	userID, itemID, points int,
) (*UsePointsResult, error) {
	var res UsePointsResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]int{
			"user_id": userID,
			"item_id": itemID,
			"points":  points,
		}).
		SetResult(&res).
		Post("/use-points")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(
	ctx context.Context,
	path string,
	params map[string]string,
	result any,
) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(result).
		Get(path)
	return checkResponse(resp, err)
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if !resp.IsError() {
		return nil
	}

	detail := resp.Status()
	if body, ok := resp.Error().(*errorBody); ok && body.Detail != "" {
		detail = body.Detail
	}
	return &APIError{StatusCode: resp.StatusCode(), Detail: detail}
}
