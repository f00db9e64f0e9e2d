package http

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/zikky0001-droid/YT-DL/config"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/dto"
	"github.com/zikky0001-droid/YT-DL/internal/domain/relay/entities"
	"github.com/zikky0001-droid/YT-DL/internal/infrastructure/metrics"
	pkgerrors "github.com/zikky0001-droid/YT-DL/pkg/errors"
)

// fakeUseCase implements deps.RelayUseCase recording calls
type fakeUseCase struct {
	outcome *entities.DeliveryOutcome
	err     error
	calls   int
	chatID  string
	url     string
	quality string
}

func (f *fakeUseCase) HandleDownload(_ context.Context, chatID, sourceURL, quality string) (*entities.DeliveryOutcome, error) {
	f.calls++
	f.chatID = chatID
	f.url = sourceURL
	f.quality = quality
	if f.err != nil {
		return nil, f.err
	}
	return f.outcome, nil
}

func newTestHandler(uc *fakeUseCase) *Handler {
	return NewHandler(
		uc,
		&config.TelegramConfig{Token: "test-token", Timeout: time.Minute},
		&config.ResolverConfig{APIKey: "test-key", Timeout: time.Minute},
		metrics.GetDefaultMetrics(),
		zerolog.Nop(),
	)
}

func doRequest(h *Handler, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/api/ytdl")
	ctx.Request.SetBodyString(body)
	h.Handle(ctx)
	return ctx
}

func decodeError(t *testing.T, ctx *fasthttp.RequestCtx) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func TestHandle_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Empty body", ``},
		{"Empty object", `{}`},
		{"Missing url", `{"chat_id":123}`},
		{"Missing chat_id", `{"url":"https://youtube.com/watch?v=abc"}`},
		{"Empty url", `{"chat_id":"123","url":""}`},
		{"Invalid JSON", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := newTestHandler(uc)

			ctx := doRequest(h, tt.body)

			if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
				t.Errorf("Expected 400, got %d", ctx.Response.StatusCode())
			}
			if resp := decodeError(t, ctx); resp.Error != "Missing chat_id or url" {
				t.Errorf("Unexpected error message: %q", resp.Error)
			}
			if uc.calls != 0 {
				t.Error("Expected no pipeline calls on invalid input")
			}
		})
	}
}

func TestHandle_ChatIDNumberOrString(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantChatID string
	}{
		{"Numeric chat_id", `{"chat_id":123,"url":"https://youtube.com/watch?v=abc"}`, "123"},
		{"String chat_id", `{"chat_id":"@channel","url":"https://youtube.com/watch?v=abc"}`, "@channel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{outcome: &entities.DeliveryOutcome{Mode: entities.DeliveryModeRemoteURL, Result: map[string]interface{}{"message_id": 1}}}
			h := newTestHandler(uc)

			ctx := doRequest(h, tt.body)

			if ctx.Response.StatusCode() != fasthttp.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", ctx.Response.StatusCode(), ctx.Response.Body())
			}
			if uc.chatID != tt.wantChatID {
				t.Errorf("Expected chat_id %q, got %q", tt.wantChatID, uc.chatID)
			}
		})
	}
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{outcome: &entities.DeliveryOutcome{
		Mode:   entities.DeliveryModeRemoteURL,
		Result: map[string]interface{}{"message_id": float64(42)},
	}}
	h := newTestHandler(uc)

	ctx := doRequest(h, `{"chat_id":123,"url":"https://youtube.com/watch?v=abc","quality":"best"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("Expected 200, got %d", ctx.Response.StatusCode())
	}

	var resp struct {
		OK     bool                   `json:"ok"`
		Result map[string]interface{} `json:"result"`
	}
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !resp.OK {
		t.Error("Expected ok:true")
	}
	if resp.Result["message_id"] != float64(42) {
		t.Errorf("Expected platform result echoed, got %v", resp.Result)
	}
	if uc.quality != "best" {
		t.Errorf("Expected quality forwarded, got %q", uc.quality)
	}
}

func TestHandle_MissingConfiguration(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(
		uc,
		&config.TelegramConfig{},
		&config.ResolverConfig{},
		metrics.GetDefaultMetrics(),
		zerolog.Nop(),
	)

	ctx := doRequest(h, `{"chat_id":123,"url":"https://youtube.com/watch?v=abc"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", ctx.Response.StatusCode())
	}
	if uc.calls != 0 {
		t.Error("Expected no pipeline calls without configuration")
	}
}

func TestHandle_UpstreamErrorIncludesDetails(t *testing.T) {
	uc := &fakeUseCase{err: pkgerrors.NewUpstreamError(502, `{"message":"quota exceeded"}`)}
	h := newTestHandler(uc)

	ctx := doRequest(h, `{"chat_id":123,"url":"https://youtube.com/watch?v=abc"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", ctx.Response.StatusCode())
	}
	resp := decodeError(t, ctx)
	if resp.Details != `{"message":"quota exceeded"}` {
		t.Errorf("Expected upstream body in details, got %q", resp.Details)
	}
}

func TestHandle_NoMediaFoundIncludesRawPayload(t *testing.T) {
	uc := &fakeUseCase{err: pkgerrors.NewNoMediaFoundError(`{"data":{"title":"x"}}`)}
	h := newTestHandler(uc)

	ctx := doRequest(h, `{"chat_id":123,"url":"https://youtube.com/watch?v=abc"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", ctx.Response.StatusCode())
	}
	resp := decodeError(t, ctx)
	if resp.Raw != `{"data":{"title":"x"}}` {
		t.Errorf("Expected raw payload for diagnosis, got %q", resp.Raw)
	}
	if resp.Error == "" {
		t.Error("Expected error message")
	}
}

func TestHandle_DownloadError(t *testing.T) {
	uc := &fakeUseCase{err: pkgerrors.NewDownloadError("media download failed with status 403")}
	h := newTestHandler(uc)

	ctx := doRequest(h, `{"chat_id":123,"url":"https://youtube.com/watch?v=abc"}`)

	if ctx.Response.StatusCode() != fasthttp.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", ctx.Response.StatusCode())
	}
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&fakeUseCase{})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/")
	h.Health(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Errorf("Expected 200, got %d", ctx.Response.StatusCode())
	}

	var resp dto.HealthResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("Expected status ok, got %q", resp.Status)
	}
}
