// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/fretboard-keeper/internal/config"
	"github.com/MKhiriev/fretboard-keeper/internal/logger"
	"github.com/MKhiriev/fretboard-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter returns an adapter pointed at srv with "/api" as prefix.
func newTestAdapter(t *testing.T, srv *httptest.Server) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Client{ServerURL: srv.URL + "/api", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8000/api/", want: "http://localhost:8000/api"},
		{raw: "localhost:8000/api", want: "http://localhost:8000/api"},
		{raw: "  https://example.com  ", want: "https://example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		writeJSON(t, w, http.StatusOK, models.LoginResponse{
			Success: true, Token: "tok-1", Username: "alice", Message: "Registration successful", IsNewUser: true,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	resp, err := a.Login(context.Background(), "alice")

	require.NoError(t, err)
	assert.True(t, resp.IsNewUser)
	assert.Equal(t, "tok-1", a.Token())
}

func TestLogin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Detail: "user limit reached"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Login(context.Background(), "late")

	require.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "user limit reached")
	assert.Empty(t, a.Token())
}

func TestVerify_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/verify", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: "invalid or missing token"})
			return
		}
		writeJSON(t, w, http.StatusOK, models.VerifyResponse{Valid: true, Username: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)

	_, err := a.Verify(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" tok-1 ")
	resp, err := a.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
}

func TestSave_SendsEmptyArrays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/data/save", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"directories":[],"states":[]}`, string(body))

		writeJSON(t, w, http.StatusOK, models.SaveResponse{Success: true, Message: "Saved 0 directories and 0 states"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	a.SetToken("tok")
	resp, err := a.Save(context.Background(), models.ReplaceRequest{})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestSave_LimitExceeded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, models.ErrorResponse{Detail: "limit exceeded: too many directories"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Save(context.Background(), models.ReplaceRequest{})

	assert.ErrorIs(t, err, ErrLimitExceeded)
}

func TestLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/data/load", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoadResponse{
			Success:     true,
			Directories: []models.Directory{{ID: "d1", Name: "Rock"}},
			States: []models.State{
				{ID: "s1", DirectoryID: "d1", Name: "riff", Payload: json.RawMessage(`{"frets":[0,2,2]}`)},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	resp, err := a.Load(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.States, 1)
	assert.JSONEq(t, `{"frets":[0,2,2]}`, string(resp.States[0].Payload))
}

func TestDirectoryCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/directories":
			writeJSON(t, w, http.StatusOK, []models.Directory{{ID: "d1", Name: "Rock"}})
		case r.Method == http.MethodPost && r.URL.Path == "/api/directories":
			var dir models.Directory
			require.NoError(t, json.NewDecoder(r.Body).Decode(&dir))
			writeJSON(t, w, http.StatusCreated, dir)
		case r.Method == http.MethodPut && r.URL.Path == "/api/directories/d1":
			writeJSON(t, w, http.StatusOK, models.Directory{ID: "d1", Name: "Blues"})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/directories/d1":
			writeJSON(t, w, http.StatusOK, models.AckResponse{Success: true})
		case r.Method == http.MethodDelete:
			writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Detail: "directory not found"})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv)

	dirs, err := a.ListDirectories(ctx)
	require.NoError(t, err)
	assert.Len(t, dirs, 1)

	created, err := a.CreateDirectory(ctx, models.Directory{ID: "d2", Name: "Jazz"})
	require.NoError(t, err)
	assert.Equal(t, "d2", created.ID)

	name := "Blues"
	updated, err := a.UpdateDirectory(ctx, "d1", models.DirectoryPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Blues", updated.Name)

	require.NoError(t, a.DeleteDirectory(ctx, "d1"))
	assert.ErrorIs(t, a.DeleteDirectory(ctx, "missing"), ErrNotFound)
}

func TestStateCalls(t *testing.T) {
	state := models.State{ID: "s1", DirectoryID: "d1", Name: "riff", Payload: json.RawMessage(`{}`)}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/states":
			assert.Equal(t, "d1", r.URL.Query().Get("directoryId"))
			writeJSON(t, w, http.StatusOK, []models.State{state})
		case r.Method == http.MethodPost && r.URL.Path == "/api/states":
			writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Detail: "state already exists"})
		case r.Method == http.MethodGet && r.URL.Path == "/api/states/s1":
			writeJSON(t, w, http.StatusOK, state)
		case r.Method == http.MethodPut && r.URL.Path == "/api/states/s1":
			writeJSON(t, w, http.StatusOK, state)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/states/s1":
			writeJSON(t, w, http.StatusOK, models.AckResponse{Success: true})
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv)

	states, err := a.ListStates(ctx, "d1")
	require.NoError(t, err)
	require.Len(t, states, 1)

	_, err = a.CreateState(ctx, state)
	assert.ErrorIs(t, err, ErrConflict)

	got, err := a.GetState(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "riff", got.Name)

	name := "solo"
	_, err = a.UpdateState(ctx, "s1", models.StatePatch{Name: &name})
	require.NoError(t, err)

	assert.NoError(t, a.DeleteState(ctx, "s1"))
}

func TestMapHTTPError_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv)
	_, err := a.Load(context.Background())

	require.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream down")
}
