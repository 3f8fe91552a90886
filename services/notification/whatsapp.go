// File: services/notification/whatsapp.go
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"miagenda/config"
	"miagenda/utils"
)

// WhatsAppClient sends text messages through the Meta cloud API.
type WhatsAppClient struct {
	BaseURL string
	PhoneID string
	Token   string
	HTTP    *http.Client
}

// NewWhatsAppClient builds a client from the application config.
func NewWhatsAppClient() *WhatsAppClient {
	return &WhatsAppClient{
		BaseURL: config.AppConfig.WhatsAppBaseURL,
		PhoneID: config.AppConfig.WhatsAppPhoneID,
		Token:   config.AppConfig.WhatsAppToken,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

// Send posts a text message to the recipient's phone number (E.164).
func (c *WhatsAppClient) Send(ctx context.Context, toPhone, message string) error {
	logger := utils.GetLogger()

	if c.Token == "" || c.PhoneID == "" {
		logger.Warn("whatsapp not configured, skipping message", zap.String("to", toPhone))
		return nil
	}

	body, err := json.Marshal(whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               toPhone,
		Type:             "text",
		Text:             whatsAppText{Body: message},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.BaseURL, c.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Error("whatsapp API rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", toPhone),
			zap.ByteString("response", detail),
		)
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}
	return nil
}
