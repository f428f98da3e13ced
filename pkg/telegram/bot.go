package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(webhookURL string) error {
	payload := map[string]string{"url": webhookURL}
	return b.call("setWebhook", payload)
}

// SetMyCommands publishes the bot's command menu.
func (b *Bot) SetMyCommands(commands []BotCommand) error {
	payload := map[string]any{"commands": commands}
	return b.call("setMyCommands", payload)
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.SendMessageWithKeyboard(chatID, text, nil)
}

// SendMessageWithKeyboard sends a message with an optional inline keyboard.
func (b *Bot) SendMessageWithKeyboard(chatID int64, text string, keyboard *InlineKeyboardMarkup) error {
	payload := SendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: keyboard,
	}
	return b.call("sendMessage", payload)
}

// EditMessageText replaces the text (and drops the keyboard) of a sent
// message, typically after a button press.
func (b *Bot) EditMessageText(chatID, messageID int64, text string) error {
	payload := EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
	}
	return b.call("editMessageText", payload)
}

// AnswerCallbackQuery acknowledges a button press so the client stops the
// loading spinner.
func (b *Bot) AnswerCallbackQuery(callbackID string) error {
	payload := map[string]string{"callback_query_id": callbackID}
	return b.call("answerCallbackQuery", payload)
}

// call posts payload to one Bot API method and checks the ok flag.
func (b *Bot) call(method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: failed to marshal payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/%s", b.apiURL, method)
	resp, err := b.httpClient.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("telegram %s: request failed: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram %s: API error %d: %s", method, resp.StatusCode, string(raw))
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: failed to decode response: %w", method, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram %s failed: %s", method, apiResp.Description)
	}
	return nil
}
