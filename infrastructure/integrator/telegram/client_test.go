package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
)

func newTestDispatcher(apiURL string) Dispatcher {
	cfg := &config.Config{
		Telegram: config.Telegram{
			APIURL:      apiURL,
			BotToken:    "bot-token",
			AdminChatID: 900,
		},
	}

	return NewDispatcher(cfg)
}

func TestDispatch(t *testing.T) {
	chatID := int64(42)

	t.Run("Entrega ao chat do projeto e ao chat administrativo", func(t *testing.T) {
		var received []sendMessageRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/botbot-token/sendMessage", r.URL.Path)

			var req sendMessageRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			received = append(received, req)

			w.Header().Set("Content-Type", "application/json")
			assert.NoError(t, json.NewEncoder(w).Encode(sendMessageResponse{OK: true}))
		}))
		defer server.Close()

		dispatcher := newTestDispatcher(server.URL)

		result, err := dispatcher.Dispatch(context.Background(), Route{
			ChatID:      &chatID,
			SendToChat:  true,
			SendToAdmin: true,
		}, "<b>Relatório</b>")

		assert.NoError(t, err)
		assert.True(t, result.DeliveredChat)
		assert.True(t, result.DeliveredAdmin)

		assert.Len(t, received, 2)
		assert.Equal(t, int64(42), received[0].ChatID)
		assert.Equal(t, int64(900), received[1].ChatID)
		assert.Equal(t, "<b>Relatório</b>", received[0].Text)
		assert.Equal(t, "HTML", received[0].ParseMode)
	})

	t.Run("Falha em um destinatário não impede os demais", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req sendMessageRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			response := sendMessageResponse{OK: true}
			if req.ChatID == 42 {
				response = sendMessageResponse{OK: false, ErrorCode: 403, Description: "bot was blocked"}
			}

			w.Header().Set("Content-Type", "application/json")
			assert.NoError(t, json.NewEncoder(w).Encode(response))
		}))
		defer server.Close()

		dispatcher := newTestDispatcher(server.URL)

		result, err := dispatcher.Dispatch(context.Background(), Route{
			ChatID:      &chatID,
			SendToChat:  true,
			SendToAdmin: true,
		}, "alerta")

		assert.NoError(t, err)
		assert.False(t, result.DeliveredChat)
		assert.True(t, result.DeliveredAdmin)
	})

	t.Run("Falha em todos os destinatários devolve o erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			assert.NoError(t, json.NewEncoder(w).Encode(sendMessageResponse{
				OK:          false,
				ErrorCode:   429,
				Description: "Too Many Requests",
			}))
		}))
		defer server.Close()

		dispatcher := newTestDispatcher(server.URL)

		result, err := dispatcher.Dispatch(context.Background(), Route{
			ChatID:     &chatID,
			SendToChat: true,
		}, "alerta")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.False(t, result.DeliveredChat)
	})

	t.Run("Rota sem destinatários é sucesso silencioso", func(t *testing.T) {
		dispatcher := newTestDispatcher("http://127.0.0.1:0")

		result, err := dispatcher.Dispatch(context.Background(), Route{}, "nada")

		assert.NoError(t, err)
		assert.False(t, result.DeliveredChat)
		assert.False(t, result.DeliveredAdmin)
	})

	t.Run("Rota para o chat sem chat vinculado é ignorada", func(t *testing.T) {
		dispatcher := newTestDispatcher("http://127.0.0.1:0")

		result, err := dispatcher.Dispatch(context.Background(), Route{SendToChat: true}, "nada")

		assert.NoError(t, err)
		assert.False(t, result.DeliveredChat)
	})
}
