package telegram

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Route define os destinatários de uma mensagem: o chat do projeto e/ou o
// chat administrativo do bot.
type Route struct {
	ChatID      *int64
	SendToChat  bool
	SendToAdmin bool
}

// DispatchResult registra quais destinatários receberam a mensagem.
type DispatchResult struct {
	DeliveredChat  bool
	DeliveredAdmin bool
}

type Dispatcher interface {
	Dispatch(ctx context.Context, route Route, text string) (*DispatchResult, error)
}

type botDispatcher struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewDispatcher(cfg *config.Config) Dispatcher {
	return &botDispatcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// Dispatch envia o texto aos destinatários da rota. A falha em um
// destinatário não impede a entrega aos demais; o erro devolvido é o do
// último destinatário que falhou. Rota sem destinatários é sucesso silencioso.
func (d *botDispatcher) Dispatch(ctx context.Context, route Route, text string) (*DispatchResult, error) {
	result := &DispatchResult{}
	var lastErr error

	if route.SendToChat {
		if route.ChatID == nil {
			logrus.Warn("telegram: route has send_to_chat but no chat bound, skipping")
		} else if err := d.sendMessage(ctx, *route.ChatID, text); err != nil {
			logrus.WithFields(logrus.Fields{
				"chat_id": *route.ChatID,
				"error":   err.Error(),
			}).Error("telegram: failed to deliver message to project chat")
			lastErr = err
		} else {
			result.DeliveredChat = true
		}
	}

	if route.SendToAdmin {
		if d.cfg.Telegram.AdminChatID == 0 {
			logrus.Warn("telegram: route has send_to_admin but no admin chat configured, skipping")
		} else if err := d.sendMessage(ctx, d.cfg.Telegram.AdminChatID, text); err != nil {
			logrus.WithFields(logrus.Fields{
				"chat_id": d.cfg.Telegram.AdminChatID,
				"error":   err.Error(),
			}).Error("telegram: failed to deliver message to admin chat")
			lastErr = err
		} else {
			result.DeliveredAdmin = true
		}
	}

	if !result.DeliveredChat && !result.DeliveredAdmin && lastErr != nil {
		return result, lastErr
	}

	return result, nil
}

func (d *botDispatcher) sendMessage(ctx context.Context, chatID int64, text string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", d.cfg.Telegram.APIURL, d.cfg.Telegram.BotToken)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	var response sendMessageResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if !response.OK {
		return fmt.Errorf("sendMessage falhou. Código: %d, Descrição: %s", response.ErrorCode, response.Description)
	}

	return nil
}
