package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/freshai/laundryfront/internal/models"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// LaundryAPI - операции бекенда прачечной. Каждая операция - один HTTP запрос,
// без ретраев и переподключений: сетевая ошибка уходит вызывающему как есть.
type LaundryAPI interface {
	Signup(ctx context.Context, profile models.SignupRequest) (*models.UserData, error)
	Login(ctx context.Context, email string, password string) (string, error)
	CurrentUser(ctx context.Context, token string) (*models.UserData, error)
	CreateOrder(ctx context.Context, token string, draft models.OrderDraft) (*models.OrderData, error)
	ListOrders(ctx context.Context, token string) ([]models.OrderData, error)
	GetOrder(ctx context.Context, token string, orderID string) (*models.OrderData, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) (*models.OrderData, error)
	ListAllOrders(ctx context.Context, token string) ([]models.OrderData, error)
}

type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string, client HTTPClient) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// tokenResponse - ответ бекенда на аутентификацию
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) Signup(ctx context.Context, profile models.SignupRequest) (*models.UserData, error) {
	var user models.UserData
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", "", profile, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login - аутентификация на бекенде. Единственная операция
// с form-encoded телом, бекенд ждёт поля username/password.
func (c *Client) Login(ctx context.Context, email string, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", HandleErrorResponse(resp)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*models.UserData, error) {
	var user models.UserData
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, draft models.OrderDraft) (*models.OrderData, error) {
	var order models.OrderData
	if err := c.doJSON(ctx, http.MethodPost, "/orders/", token, draft, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, token string) ([]models.OrderData, error) {
	var orders []models.OrderData
	if err := c.doJSON(ctx, http.MethodGet, "/orders/", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, orderID string) (*models.OrderData, error) {
	var order models.OrderData
	if err := c.doJSON(ctx, http.MethodGet, "/orders/"+orderID, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID string, status string) (*models.OrderData, error) {
	path := fmt.Sprintf("/orders/%s/status?status=%s", orderID, url.QueryEscape(status))
	var order models.OrderData
	if err := c.doJSON(ctx, http.MethodPatch, path, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListAllOrders(ctx context.Context, token string) ([]models.OrderData, error) {
	var orders []models.OrderData
	if err := c.doJSON(ctx, http.MethodGet, "/orders/admin/all", token, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// doJSON - сборка и выполнение одного JSON запроса к бекенду.
// Токен добавляется в Authorization только если он есть, без токена
// запрос уходит неавторизованным - отказ остаётся за бекендом.
func (c *Client) doJSON(ctx context.Context, method string, path string, token string, in any, out any) error {
	var body *bytes.Buffer = bytes.NewBuffer(nil)
	if in != nil {
		if err := json.NewEncoder(body).Encode(in); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return HandleErrorResponse(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
