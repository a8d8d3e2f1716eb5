package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/internal/utils"
	"github.com/MKhiriev/fretboard-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// cfg.ServerURL is the API root including its prefix, e.g.
// "http://localhost:8000/api". A missing scheme defaults to http.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs to /auth/login and keeps the
// returned token for later calls.
func (h *httpServerAdapter) Login(ctx context.Context, username string) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username}).
		SetResult(&result).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("username", result.Username).Bool("new_user", result.IsNewUser).Msg("logged in")
	return result, nil
}

// Verify implements [ServerAdapter].
func (h *httpServerAdapter) Verify(ctx context.Context) (models.VerifyResponse, error) {
	var result models.VerifyResponse
	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/auth/verify")
	if err != nil {
		return models.VerifyResponse{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerifyResponse{}, err
	}
	return result, nil
}

// Save implements [ServerAdapter].
func (h *httpServerAdapter) Save(ctx context.Context, req models.ReplaceRequest) (models.SaveResponse, error) {
	if req.Directories == nil {
		req.Directories = []models.Directory{}
	}
	if req.States == nil {
		req.States = []models.State{}
	}

	var result models.SaveResponse
	resp, err := h.authedRequest(ctx).SetBody(req).SetResult(&result).Post("/data/save")
	if err != nil {
		return models.SaveResponse{}, fmt.Errorf("save request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveResponse{}, err
	}
	return result, nil
}

// Load implements [ServerAdapter].
func (h *httpServerAdapter) Load(ctx context.Context) (models.LoadResponse, error) {
	var result models.LoadResponse
	resp, err := h.authedRequest(ctx).SetResult(&result).Get("/data/load")
	if err != nil {
		return models.LoadResponse{}, fmt.Errorf("load request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoadResponse{}, err
	}
	return result, nil
}

func (h *httpServerAdapter) ListDirectories(ctx context.Context) ([]models.Directory, error) {
	var dirs []models.Directory
	resp, err := h.authedRequest(ctx).SetResult(&dirs).Get("/directories")
	if err != nil {
		return nil, fmt.Errorf("list directories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return dirs, nil
}

func (h *httpServerAdapter) CreateDirectory(ctx context.Context, dir models.Directory) (models.Directory, error) {
	var created models.Directory
	resp, err := h.authedRequest(ctx).SetBody(dir).SetResult(&created).Post("/directories")
	if err != nil {
		return models.Directory{}, fmt.Errorf("create directory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Directory{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) UpdateDirectory(ctx context.Context, directoryID string, patch models.DirectoryPatch) (models.Directory, error) {
	var updated models.Directory
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", directoryID).
		SetBody(patch).
		SetResult(&updated).
		Put("/directories/{id}")
	if err != nil {
		return models.Directory{}, fmt.Errorf("update directory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Directory{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteDirectory(ctx context.Context, directoryID string) error {
	resp, err := h.authedRequest(ctx).SetPathParam("id", directoryID).Delete("/directories/{id}")
	if err != nil {
		return fmt.Errorf("delete directory request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListStates(ctx context.Context, directoryID string) ([]models.State, error) {
	var states []models.State
	req := h.authedRequest(ctx).SetResult(&states)
	if directoryID != "" {
		req.SetQueryParam("directoryId", directoryID)
	}

	resp, err := req.Get("/states")
	if err != nil {
		return nil, fmt.Errorf("list states request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return states, nil
}

func (h *httpServerAdapter) CreateState(ctx context.Context, state models.State) (models.State, error) {
	var created models.State
	resp, err := h.authedRequest(ctx).SetBody(state).SetResult(&created).Post("/states")
	if err != nil {
		return models.State{}, fmt.Errorf("create state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.State{}, err
	}
	return created, nil
}

func (h *httpServerAdapter) GetState(ctx context.Context, stateID string) (models.State, error) {
	var state models.State
	resp, err := h.authedRequest(ctx).SetPathParam("id", stateID).SetResult(&state).Get("/states/{id}")
	if err != nil {
		return models.State{}, fmt.Errorf("get state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.State{}, err
	}
	return state, nil
}

func (h *httpServerAdapter) UpdateState(ctx context.Context, stateID string, patch models.StatePatch) (models.State, error) {
	var updated models.State
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", stateID).
		SetBody(patch).
		SetResult(&updated).
		Put("/states/{id}")
	if err != nil {
		return models.State{}, fmt.Errorf("update state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.State{}, err
	}
	return updated, nil
}

func (h *httpServerAdapter) DeleteState(ctx context.Context, stateID string) error {
	resp, err := h.authedRequest(ctx).SetPathParam("id", stateID).Delete("/states/{id}")
	if err != nil {
		return fmt.Errorf("delete state request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
