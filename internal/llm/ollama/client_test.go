package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())
	assert.Equal(t, "http://example.com:11434", New("http://example.com:11434/").BaseURL())
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.Equal(t, "explain this", req.Prompt)
		assert.False(t, req.Stream)

		json.NewEncoder(w).Encode(map[string]any{"response": "an explanation", "done": true})
	}))
	defer srv.Close()

	out, err := New(srv.URL).Generate(context.Background(), "llama3", "explain this")
	require.NoError(t, err)
	assert.Equal(t, "an explanation", out)
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "model not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), "nope", "x")
	require.Error(t, err)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, "nope", genErr.Model)
	assert.Contains(t, genErr.Error(), "HTTP 500")
	assert.Contains(t, genErr.Error(), "model not found")
}

func TestGenerateTransportError(t *testing.T) {
	// closed server: connection refused
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), "llama3", "x")
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.NotNil(t, genErr.Unwrap())
}

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)

		var req struct {
			Messages []Message `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]string{"role": "assistant", "content": "hi there"},
			"done":    true,
		})
	}))
	defer srv.Close()

	out, err := New(srv.URL).Chat(context.Background(), "llama3", []Message{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "hi there", out)
}

func TestListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{
				{"name": "llama3:latest", "size": 42},
				{"name": "mistral:latest", "size": 7},
			},
		})
	}))
	defer srv.Close()

	models, err := New(srv.URL).ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "llama3:latest", models[0].Name)
}

func TestVersionAndIsRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/version", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"version": "0.5.1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.5.1", v)
	assert.True(t, c.IsRunning(context.Background()))

	srv.Close()
	assert.False(t, c.IsRunning(context.Background()))
}
