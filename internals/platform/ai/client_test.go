package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"school360_backend/internals/configs"
)

func testClient(baseURL string, maxRetry int) *Client {
	return NewClient(configs.Settings{
		AIBaseURL:  baseURL,
		AIAPIKey:   "test-key",
		AIModel:    "test-model",
		AIMaxRetry: maxRetry,
	})
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":"` + content + `"}}]}`
}

func TestCompleteHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(completionBody("  hello  ")))
	}))
	defer srv.Close()

	out, err := testClient(srv.URL, 1).Complete(context.Background(), "sys", "usr")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestCompleteRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&calls, 1) {
		case 1:
			w.WriteHeader(http.StatusServiceUnavailable)
		case 2:
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.Write([]byte(completionBody("ok")))
		}
	}))
	defer srv.Close()

	out, err := testClient(srv.URL, 3).Complete(context.Background(), "sys", "usr")
	assert.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestCompleteGivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 2).Complete(context.Background(), "sys", "usr")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestCompleteDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 3).Complete(context.Background(), "sys", "usr")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "4xx answers are final")
}

type fixedCompleter struct{ out string }

func (f fixedCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	return f.out, nil
}

func TestClassifySentimentNormalizesAnswers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "clean positive", raw: "Positive", want: "Positive"},
		{name: "chatty negative", raw: "negative. The report mentions a fight.", want: "Negative"},
		{name: "neutral", raw: "Neutral", want: "Neutral"},
		{name: "off-script answer degrades to neutral", raw: "I cannot tell", want: "Neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifySentiment(context.Background(), fixedCompleter{out: tt.raw}, "text")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
