package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordLimits(t *testing.T) {
	r := NewKeywordResponder()
	reply, err := r.Respond(context.Background(), Message{Content: "explícame los límites laterales"})
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "límites")
	assert.Len(t, reply.Sources, 3)
	assert.Contains(t, reply.SuggestedTopics, "Límites laterales")
}

func TestKeywordDerivatives(t *testing.T) {
	r := NewKeywordResponder()
	reply, err := r.Respond(context.Background(), Message{Content: "qué es una derivada"})
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "derivadas")
	assert.Contains(t, reply.Content, "f'(a)")
}

func TestKeywordChemistryAndProgramming(t *testing.T) {
	r := NewKeywordResponder()

	reply, err := r.Respond(context.Background(), Message{Content: "ayuda con estequiometría"})
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "mol")

	reply, err = r.Respond(context.Background(), Message{Content: "quiero aprender Python"})
	require.NoError(t, err)
	assert.Contains(t, reply.SuggestedTopics, "Funciones")
}

func TestKeywordCaseInsensitive(t *testing.T) {
	r := NewKeywordResponder()
	reply, err := r.Respond(context.Background(), Message{Content: "INTEGRAL por partes"})
	require.NoError(t, err)
	assert.Contains(t, reply.Content, "integración")
}

func TestKeywordDefault(t *testing.T) {
	r := NewKeywordResponder()
	reply, err := r.Respond(context.Background(), Message{Content: "hola"})
	require.NoError(t, err)

	assert.Contains(t, reply.Content, "hola")
	assert.Empty(t, reply.Sources)
	assert.Equal(t, []string{"Cálculo - Límites", "Química - Estequiometría", "Programación - Python"}, reply.SuggestedTopics)
}

func TestRemoteResponder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/chat", req.URL.Path)
		assert.Equal(t, "Bearer test-key", req.Header.Get("Authorization"))

		var body remoteRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "resume límites", body.Message)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(remoteResponse{
			Content:         "Resumen de límites",
			SuggestedTopics: []string{"Continuidad"},
		})
	}))
	defer server.Close()

	r := NewRemoteResponder(server.URL, "test-key")
	reply, err := r.Respond(context.Background(), Message{Content: "resume límites"})
	require.NoError(t, err)
	assert.Equal(t, "Resumen de límites", reply.Content)
	assert.Equal(t, []string{"Continuidad"}, reply.SuggestedTopics)
}

func TestRemoteResponderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewRemoteResponder(server.URL, "test-key")
	_, err := r.Respond(context.Background(), Message{Content: "hola"})
	assert.Error(t, err)
}
