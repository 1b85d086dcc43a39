package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"smart-task-input/internal/smartinput"
	pkgLog "smart-task-input/pkg/log"
	pkgResponse "smart-task-input/pkg/response"
	pkgTelegram "smart-task-input/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and replies to the chat from a
// background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	requestID := pkgLog.RequestIDFromContext(ctx)

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := pkgLog.WithRequestID(context.Background(), requestID)
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			// Best-effort error notification to user
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, genericErrorMessage)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch command(text) {
	case "":
	case "/start":
		return h.bot.SendMarkdown(ctx, msg.Chat.ID, startMessage)
	case "/help":
		return h.bot.SendMarkdown(ctx, msg.Chat.ID, helpMessage)
	case "/add":
		text = strings.TrimSpace(strings.TrimPrefix(text, strings.Fields(text)[0]))
	default:
		return h.bot.SendMarkdown(ctx, msg.Chat.ID, helpMessage)
	}

	output, err := h.uc.Draft(ctx, smartinput.ParseInput{
		Text:          text,
		ReferenceTime: msg.SentAt(),
	})
	if err != nil {
		if errors.Is(err, smartinput.ErrMissingTitle) {
			return h.bot.SendMarkdown(ctx, msg.Chat.ID, formatMissingTitle(output.Parsed.Result))
		}
		if reply := errorMessage(err); reply != "" {
			h.l.Warnf(ctx, "telegram handler: Draft rejected: %v", err)
			return h.bot.SendMessage(ctx, msg.Chat.ID, reply)
		}
		return err
	}

	h.l.Infof(ctx, "telegram handler: chat %d draft %s", msg.Chat.ID, output.Draft.ID)
	return h.bot.Send(ctx, pkgTelegram.SendMessageRequest{
		ChatID:           msg.Chat.ID,
		Text:             formatDraft(output),
		ParseMode:        pkgTelegram.ParseModeMarkdown,
		ReplyToMessageID: msg.MessageID,
	})
}

// command returns the bot command a message starts with, without any
// "@botname" suffix, or "" for plain text.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.IndexByte(cmd, '@'); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
