package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// TelegramGateAPI resolves group/channel membership through the Bot API
// getChatMember method, outside the long-polling connection.
type TelegramGateAPI struct {
	token  string
	client *http.Client
}

func NewTelegramGateAPI(token string) *TelegramGateAPI {
	return &TelegramGateAPI{
		token:  token,
		client: http.DefaultClient,
	}
}

type chatMemberResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		Status string `json:"status"`
	} `json:"result"`
	Description string `json:"description"`
}

// IsChatMember reports whether the user currently belongs to the chat.
// The chat may be a numeric id or an @channel username.
func (t *TelegramGateAPI) IsChatMember(ctx context.Context, chat string, userID int64) (bool, error) {
	endpoint := fmt.Sprintf("https://api.telegram.org/bot%s/getChatMember?chat_id=%s&user_id=%d",
		t.token, url.QueryEscape(chat), userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var member chatMemberResponse
	if err = json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return false, fmt.Errorf("failed to decode getChatMember response: %w", err)
	}

	if !member.OK {
		return false, fmt.Errorf("getChatMember rejected: %s", member.Description)
	}

	switch member.Result.Status {
	case "left", "kicked":
		return false, nil
	default:
		return true, nil
	}
}
