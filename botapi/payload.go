package botapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Message is the payload shape used for every non-JSON or locally produced body.
type Message struct {
	Message string `json:"message"`
}

// MessagePayload encodes text as {"message": text}.
func MessagePayload(text string) json.RawMessage {
	payload, _ := json.Marshal(Message{Message: text})
	return payload
}

// ReadPayload drains and closes the response body and always returns a JSON
// value: the body itself when it is valid JSON, otherwise the text wrapped as
// {"message": ...}, falling back to a status-keyed message for empty bodies.
func ReadPayload(resp *http.Response) json.RawMessage {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err == nil && isJSONContentType(resp.Header.Get("Content-Type")) && json.Valid(body) {
		return body
	}

	text := strings.TrimSpace(string(body))
	if err != nil || text == "" {
		text = fmt.Sprintf("Bot API request failed with status %d", resp.StatusCode)
	}
	return MessagePayload(text)
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == contentTypeJSON || strings.HasSuffix(mediaType, "+json")
}
