/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-19 11:34:05
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-24 09:18:27
 * @FilePath: \go-fishpi\request.go
 * @Description: HTTP 请求核心，凭据与请求通道由全部子客户端共享
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package fishpi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/kamalyes/go-toolbox/pkg/errorx"
	"github.com/kamalyes/go-toolbox/pkg/syncx"
)

// maxUploadBytes 单文件上传上限，与站点限制保持一致
const maxUploadBytes = 20 << 20

// core 请求核心
// 持有 apiKey、配置、HTTP 客户端与日志器，所有子客户端共享同一实例，
// 因此 SetAPIKey 对全部子客户端同时生效
type core struct {
	mu     sync.RWMutex // apiKey 读写锁
	apiKey string       // 登录凭据
	config *Config      // 客户端配置
	client *http.Client // HTTP 客户端
	logger FishPiLogger // 日志器
}

// newCore 创建请求核心，config 为 nil 时使用默认配置
func newCore(apiKey string, config *Config) *core {
	if config == nil {
		config = NewDefaultConfig()
	}
	return &core{
		apiKey: apiKey,
		config: config,
		client: &http.Client{Timeout: config.RequestTimeout},
		logger: DefaultLogger,
	}
}

// APIKey 返回当前凭据
func (c *core) APIKey() string {
	return syncx.WithRLockReturnValue(&c.mu, func() string {
		return c.apiKey
	})
}

// SetAPIKey 更新凭据
func (c *core) SetAPIKey(key string) {
	syncx.WithLock(&c.mu, func() {
		c.apiKey = key
	})
}

// requireKey 需要凭据的操作先行校验
func (c *core) requireKey() error {
	if c.APIKey() == "" {
		return ErrAPIKeyMissing
	}
	return nil
}

// dialer 构建 WebSocket 拨号器，握手超时取自配置
func (c *core) dialer() *websocket.Dialer {
	return &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: c.config.HandshakeTimeout,
	}
}

// apiURL 拼接 HTTP 接口地址
func (c *core) apiURL(path string) string {
	return fmt.Sprintf("%s://%s/%s", c.config.scheme(), c.config.Domain, strings.TrimPrefix(path, "/"))
}

// wsURL 拼接 WebSocket 通道地址
func (c *core) wsURL(path string) string {
	return fmt.Sprintf("%s://%s/%s", c.config.wsScheme(), c.config.Domain, strings.TrimPrefix(path, "/"))
}

// withKey 在查询串上附加 apiKey
func (c *core) withKey(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "apiKey=" + url.QueryEscape(c.APIKey())
}

// do 执行 HTTP 请求并返回原始响应体，非 2xx 状态码视为请求错误
func (c *core) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL(path), body)
	if err != nil {
		return nil, errorx.NewError(ErrTypeRequestFailed, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Referer", fmt.Sprintf("%s://%s/", c.config.scheme(), c.config.Domain))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errorx.NewError(ErrTypeRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errorx.NewError(ErrTypeRequestFailed, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.WarnKV("接口状态码异常", "method", method, "path", path, "status", resp.StatusCode)
		return nil, errorx.NewError(ErrTypeBadStatus, resp.StatusCode)
	}
	return raw, nil
}

// get 执行 GET 请求
func (c *core) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

// post 执行 JSON 体 POST 请求
func (c *core) post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// put 执行 JSON 体 PUT 请求
func (c *core) put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// delete 执行 JSON 体 DELETE 请求
func (c *core) delete(ctx context.Context, path string, body any) ([]byte, error) {
	return c.doJSON(ctx, http.MethodDelete, path, body)
}

// doJSON 序列化请求体后执行请求
func (c *core) doJSON(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errorx.NewError(ErrTypeSerializeFailed, err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, reader, "application/json")
}

// getText 执行 GET 请求并返回纯文本
// 站点在正文末尾附带 "<!--" 起始的注释块，截断后去除首尾空白
func (c *core) getText(ctx context.Context, path string) (string, error) {
	raw, err := c.get(ctx, path)
	if err != nil {
		return "", err
	}
	text := string(raw)
	if i := strings.Index(text, "<!--"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text), nil
}

// uploadFiles 以 multipart 形式上传文件
// 每个文件一个 file[] 分片，apiKey 作为表单字段
func (c *core) uploadFiles(ctx context.Context, path string, files []string) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for _, file := range files {
		if err := appendFilePart(writer, file); err != nil {
			return nil, err
		}
	}
	if err := writer.WriteField("apiKey", c.APIKey()); err != nil {
		return nil, errorx.NewError(ErrTypeRequestFailed, err)
	}
	if err := writer.Close(); err != nil {
		return nil, errorx.NewError(ErrTypeRequestFailed, err)
	}
	return c.do(ctx, http.MethodPost, path, buf, writer.FormDataContentType())
}

// appendFilePart 向 multipart 写入单个文件分片
func appendFilePart(writer *multipart.Writer, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return errorx.NewError(ErrTypeFileNotFound, file)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return errorx.NewError(ErrTypeRequestFailed, err)
	}
	if info.Size() > maxUploadBytes {
		return errorx.NewError(ErrTypeUploadTooLarge, file)
	}

	part, err := writer.CreateFormFile("file[]", filepath.Base(file))
	if err != nil {
		return errorx.NewError(ErrTypeRequestFailed, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return errorx.NewError(ErrTypeRequestFailed, err)
	}
	return nil
}

// apiEnvelope 业务响应外层
// 站点存在 code 和 result 两种状态字段风格，0 表示成功
type apiEnvelope struct {
	Code   *int   `json:"code"`
	Result *int   `json:"result"`
	Msg    string `json:"msg"`
}

// checkCode 校验 code 风格响应外层
func checkCode(raw []byte) error {
	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errorx.NewError(ErrTypeParseFailed, err)
	}
	if env.Code != nil && *env.Code != 0 {
		return errorx.NewError(ErrTypeAPIFailure, env.Msg)
	}
	return nil
}

// checkResult 校验 result 风格响应外层
func checkResult(raw []byte) error {
	var env apiEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errorx.NewError(ErrTypeParseFailed, err)
	}
	if env.Result != nil && *env.Result != 0 {
		return errorx.NewError(ErrTypeAPIFailure, env.Msg)
	}
	return nil
}

// decode JSON 反序列化，失败包装为解析错误
func decode(raw []byte, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return errorx.NewError(ErrTypeParseFailed, err)
	}
	return nil
}
