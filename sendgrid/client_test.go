package sendgrid_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsarma/mailgate/sendgrid"
)

func TestAPIClient_Send(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := sendgrid.NewAPIClient("secret-key", sendgrid.WithBaseURL(srv.URL))
	msg := &sendgrid.Message{
		To:      "b@y.com",
		From:    sendgrid.Address{Email: "a@x.com", Name: "App"},
		Subject: "S",
		HTML:    "<p>B</p>",
	}

	require.NoError(t, client.Send(context.Background(), msg))
	assert.Equal(t, "/v3/mail/send", gotPath)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)

	want, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(gotBody))
}

func TestAPIClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := sendgrid.NewAPIClient("bad-key", sendgrid.WithBaseURL(srv.URL))
	err := client.Send(context.Background(), &sendgrid.Message{To: "b@y.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestAPIClient_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := sendgrid.NewAPIClient("k", sendgrid.WithBaseURL(srv.URL))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Send(ctx, &sendgrid.Message{To: "b@y.com"})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAPIClient_CustomHTTPClient(t *testing.T) {
	var used bool
	rt := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		return &http.Response{StatusCode: http.StatusAccepted, Header: make(http.Header), Body: http.NoBody}, nil
	})

	client := sendgrid.NewAPIClient("k", sendgrid.WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, client.Send(context.Background(), &sendgrid.Message{To: "b@y.com"}))
	assert.True(t, used)
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
