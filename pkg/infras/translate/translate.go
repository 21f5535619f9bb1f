// Package translate 外部翻译服务客户端（LibreTranslate 协议），
// 供展示层按界面语言翻译元素简介，目标语言由调用方显式传入
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"elementarium/pkg/envs"
)

// ErrTranslate 翻译服务调用失败
var ErrTranslate = errors.New("translate service call failed")

const defaultTimeout = 30 * time.Second

// 简介为英文，源语言固定
const sourceLang = "en"

type translateRequest struct {
	Query  string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// Client 翻译服务客户端
type Client struct {
	apiURL string
	apiKey string
	client *http.Client
}

// NewClient ...
func NewClient() *Client {
	return &Client{
		apiURL: envs.TranslateAPIURL,
		apiKey: envs.TranslateAPIKey,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Translate 将文本翻译为目标语言
func (c *Client) Translate(ctx context.Context, text, targetLang string) (string, error) {
	reqBody, err := json.Marshal(translateRequest{
		Query:  text,
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", errors.Wrapf(ErrTranslate, "marshal request failed: %s", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrapf(ErrTranslate, "build request failed: %s", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Wrapf(ErrTranslate, "request failed: %s", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrapf(ErrTranslate, "read response failed: %s", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(ErrTranslate, "unexpected status %d", resp.StatusCode)
	}

	var translateResp translateResponse
	if err = json.Unmarshal(body, &translateResp); err != nil {
		return "", errors.Wrapf(ErrTranslate, "parse response failed: %s", err)
	}
	if translateResp.Error != "" {
		return "", errors.Wrapf(ErrTranslate, "service error: %s", translateResp.Error)
	}
	return translateResp.TranslatedText, nil
}
