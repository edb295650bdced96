package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"school360_backend/internals/configs"
)

func TestSendPostsVendorPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sms/send", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message_id":"vendor-123","message":"queued"}`))
	}))
	defer srv.Close()

	c := NewClient(configs.Settings{SMSBaseURL: srv.URL, SMSAPIKey: "key", SMSSender: "School360"})
	id, err := c.Send(context.Background(), "2348031234567", "PTA meets Friday", ChannelSMS)

	assert.NoError(t, err)
	assert.Equal(t, "vendor-123", id)
	assert.Equal(t, "2348031234567", got["to"])
	assert.Equal(t, "School360", got["from"])
	assert.Equal(t, "PTA meets Friday", got["sms"])
	assert.Equal(t, "generic", got["channel"], "plain SMS goes out on the generic channel")
}

func TestSendWhatsAppChannelPassesThrough(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"message_id":"vendor-456"}`))
	}))
	defer srv.Close()

	c := NewClient(configs.Settings{SMSBaseURL: srv.URL})
	_, err := c.Send(context.Background(), "234", "hi", ChannelWhatsApp)

	assert.NoError(t, err)
	assert.Equal(t, "whatsapp", got["channel"])
}

func TestSendSurfacesVendorErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"message":"insufficient balance"}`))
	}))
	defer srv.Close()

	c := NewClient(configs.Settings{SMSBaseURL: srv.URL})
	_, err := c.Send(context.Background(), "234", "hi", ChannelSMS)

	assert.ErrorContains(t, err, "402")
	assert.ErrorContains(t, err, "insufficient balance")
}
