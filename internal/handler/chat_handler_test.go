package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibescout/vibescout/internal/model"
)

type fakeChat struct {
	reply *model.ChatReply
	err   error
}

func (f *fakeChat) Chat(_ context.Context, _ []model.ChatMessage, _ []model.Venue) (*model.ChatReply, error) {
	return f.reply, f.err
}

type fakeSpeaker struct {
	audio string
	err   error
}

func (f *fakeSpeaker) Speak(_ context.Context, _ string) (string, error) {
	return f.audio, f.err
}

func chatRouter(svc ChatService, speaker Speaker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewChatHandler(svc, speaker, zap.NewNop())
	router.POST("/chat", h.Chat)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const chatBody = `{"messages":[{"role":"user","content":"photos of The Loft"}],"currentVenues":[]}`

func TestChat_ReturnsReply(t *testing.T) {
	router := chatRouter(&fakeChat{reply: &model.ChatReply{
		Text: "Here you go!",
		Data: []string{"https://img.example/1.jpg"},
		Type: model.ReplyImages,
	}}, nil)

	w := postChat(t, router, chatBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var reply model.ChatReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if reply.Type != model.ReplyImages || reply.Text != "Here you go!" {
		t.Errorf("unexpected reply: %+v", reply)
	}
}

func TestChat_PipelineErrorIs500(t *testing.T) {
	router := chatRouter(&fakeChat{err: errors.New("all models down")}, nil)

	w := postChat(t, router, chatBody)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestChat_EmptyMessagesRejected(t *testing.T) {
	router := chatRouter(&fakeChat{reply: &model.ChatReply{Text: "hi"}}, nil)

	w := postChat(t, router, `{"messages":[],"currentVenues":[]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestChat_VoiceAttachesAudio(t *testing.T) {
	router := chatRouter(
		&fakeChat{reply: &model.ChatReply{Text: "spoken reply", Type: model.ReplyText}},
		&fakeSpeaker{audio: "bW9jay1hdWRpbw=="},
	)

	body := `{"messages":[{"role":"user","content":"hi"}],"currentVenues":[],"voice":true}`
	w := postChat(t, router, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var reply model.ChatReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if reply.Audio != "bW9jay1hdWRpbw==" {
		t.Errorf("expected audio attached, got %q", reply.Audio)
	}
}

func TestChat_SpeechFailureIsNotFatal(t *testing.T) {
	router := chatRouter(
		&fakeChat{reply: &model.ChatReply{Text: "spoken reply", Type: model.ReplyText}},
		&fakeSpeaker{err: errors.New("tts down")},
	)

	body := `{"messages":[{"role":"user","content":"hi"}],"currentVenues":[],"voice":true}`
	w := postChat(t, router, body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 despite speech failure, got %d", w.Code)
	}

	var reply model.ChatReply
	if err := json.Unmarshal(w.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if reply.Audio != "" {
		t.Errorf("expected no audio on synthesis failure, got %q", reply.Audio)
	}
	if reply.Text != "spoken reply" {
		t.Errorf("text reply should survive speech failure, got %q", reply.Text)
	}
}
