// Package client is the data layer of the browsing and admin frontends: it
// fetches catalog data, normalizes the payload shapes, and drives the
// catalog mutations with the session's bearer token.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// ErrServerDown marks a network-class failure (timeout, refused connection,
// DNS) as opposed to an HTTP error response. UIs route it to the
// service-unavailable screen with manual retry.
var ErrServerDown = errors.New("server unreachable")

// APIError is a non-2xx response from a reachable server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

const requestTimeout = 10 * time.Second

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *SessionStore
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: requestTimeout},
		Session:    NewSessionStore(),
	}
}

func (c *Client) do(req *http.Request, out any) error {
	if token := c.Session.Current().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerDown, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&body)
		if body.Error == "" {
			body.Error = res.Status
		}
		return &APIError{StatusCode: res.StatusCode, Message: body.Error}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *Client) get(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(path string, in, out any) error {
	buf, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.BaseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Items fetches and normalizes every item of a kind ("food", "drink",
// "sweet").
func (c *Client) Items(kind string) ([]Item, error) {
	var raw []map[string]any
	if err := c.get("/api/"+kind, &raw); err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, NormalizeItem(r))
	}
	return items, nil
}

// Categories fetches and normalizes every category of a kind.
func (c *Client) Categories(kind string) ([]Category, error) {
	var raw []map[string]any
	if err := c.get("/api/"+categoryMount(kind), &raw); err != nil {
		return nil, err
	}
	categories := make([]Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, NormalizeCategory(r))
	}
	return categories, nil
}

func categoryMount(kind string) string {
	if kind == "food" {
		return "category"
	}
	return kind + "category"
}

// Login authenticates and stores the resulting session, notifying
// subscribers.
func (c *Client) Login(username, password string) (Session, error) {
	var out struct {
		Token    string `json:"token"`
		Username string `json:"username"`
		Role     string `json:"role"`
	}
	err := c.postJSON("/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return Session{}, err
	}

	session := Session{Token: out.Token, Username: out.Username, Role: out.Role}
	c.Session.Set(session)
	return session, nil
}

func (c *Client) Register(username, password, role string) error {
	return c.postJSON("/api/auth/register", map[string]string{
		"username": username,
		"password": password,
		"role":     role,
	}, nil)
}

func (c *Client) Logout() {
	c.Session.Clear()
}

// CreateCategory adds a category of the kind. Requires an admin session.
func (c *Client) CreateCategory(kind, name string) (Category, error) {
	var raw map[string]any
	err := c.postJSON("/api/"+categoryMount(kind), map[string]string{"name": name}, &raw)
	if err != nil {
		return Category{}, err
	}
	return NormalizeCategory(raw), nil
}

func (c *Client) DeleteCategory(kind string, id uint) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/%s/%d", c.BaseURL, categoryMount(kind), id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// ItemForm is the multipart payload of an item create or update. Image may
// be nil.
type ItemForm struct {
	Name        string
	CategoryID  uint
	Price       float64
	Size        float64
	TypeOfMoney string
	Image       io.Reader
	ImageName   string
}

func (f *ItemForm) encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fields := map[string]string{
		"Name":        f.Name,
		"CategoryId":  fmt.Sprint(f.CategoryID),
		"Price":       fmt.Sprint(f.Price),
		"Size":        fmt.Sprint(f.Size),
		"TypeOfMoney": f.TypeOfMoney,
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}
	if f.Image != nil {
		name := f.ImageName
		if name == "" {
			name = "image"
		}
		part, err := w.CreateFormFile("Image", name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Image); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// CreateItem adds an item of the kind. Requires an admin session.
func (c *Client) CreateItem(kind string, form ItemForm) (Item, error) {
	return c.sendItem(http.MethodPost, "/api/"+kind, form)
}

// UpdateItem overwrites an item of the kind. Requires an admin session.
func (c *Client) UpdateItem(kind string, id uint, form ItemForm) (Item, error) {
	return c.sendItem(http.MethodPut, fmt.Sprintf("/api/%s/%d", kind, id), form)
}

func (c *Client) sendItem(method, path string, form ItemForm) (Item, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return Item{}, err
	}
	req, err := http.NewRequest(method, c.BaseURL+path, body)
	if err != nil {
		return Item{}, err
	}
	req.Header.Set("Content-Type", contentType)

	var raw map[string]any
	if err := c.do(req, &raw); err != nil {
		return Item{}, err
	}
	return NormalizeItem(raw), nil
}

func (c *Client) DeleteItem(kind string, id uint) error {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/%s/%d", c.BaseURL, kind, id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}
