package pixian

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	nhttp "github.com/chaos-io/pixian-go/util/http"
)

// DefaultEndpoint pixian.ai 抠图接口地址。
const DefaultEndpoint = "https://api.pixian.ai/api/v2/remove-background"

// Client pixian.ai API 客户端，凭证在创建后不可变。
// 单个实例可以并发使用。
type Client struct {
	apiID     string
	apiSecret string

	// Endpoint 请求地址，默认为 DefaultEndpoint，测试时可替换。
	Endpoint string

	cli nhttp.IClient
}

// NewClient 创建客户端，apiID/apiSecret 用于每次请求的 HTTP Basic 认证。
func NewClient(apiID, apiSecret string) *Client {
	return &Client{
		apiID:     apiID,
		apiSecret: apiSecret,
		Endpoint:  DefaultEndpoint,
		cli:       nhttp.NewHTTPClient(),
	}
}

// RemoveBackground 调用 remove-background 接口，成功时返回原始结果字节。
//
// 参数按固定顺序校验，全部通过后才发起网络请求；提供本地路径时
// 以 multipart 上传文件，否则以表单方式提交 base64 或 URL。
// 接口返回非成功状态码时返回 *APIError，网络层错误原样向上传递。
func (c *Client) RemoveBackground(ctx context.Context, params *RemoveBackgroundParams) (*Response, error) {
	if params == nil {
		params = &RemoveBackgroundParams{}
	}
	p := *params
	p.applyDefaults()
	if err := p.validate(); err != nil {
		return nil, err
	}

	data := url.Values{}
	data.Set("max_pixels", strconv.Itoa(p.MaxPixels))
	if p.BackgroundColor != "" {
		data.Set("background.color", p.BackgroundColor)
	}
	data.Set("result.crop_to_foreground", strconv.FormatBool(p.ResultCropToForeground))
	data.Set("result.margin", p.ResultMargin)
	if p.ResultTargetSize != "" {
		data.Set("result.target_size", p.ResultTargetSize)
	}
	data.Set("result.vertical_alignment", p.ResultVerticalAlignment)
	data.Set("output.format", p.OutputFormat)
	data.Set("output.jpeg_quality", strconv.Itoa(p.OutputJpegQuality))

	var body io.Reader
	var contentType string
	switch {
	case p.ImagePath != "":
		buf, ct, err := multipartBody(p.ImagePath, data)
		if err != nil {
			return nil, err
		}
		body, contentType = buf, ct
	case p.ImageBase64 != "":
		data.Set("image.base64", p.ImageBase64)
		body, contentType = strings.NewReader(data.Encode()), "application/x-www-form-urlencoded"
	default:
		data.Set("image.url", p.ImageURL)
		body, contentType = strings.NewReader(data.Encode()), "application/x-www-form-urlencoded"
	}

	var content []byte
	reqParam := &nhttp.RequestParam{
		RequestURI: c.Endpoint,
		Method:     "POST",
		Header:     map[string]string{"Content-Type": contentType},
		Body:       body,
		Response:   &content,
		Username:   c.apiID,
		Password:   c.apiSecret,
	}
	if err := c.cli.DoHTTPRequest(ctx, reqParam); err != nil {
		var statusErr *nhttp.StatusError
		if errors.As(err, &statusErr) {
			return nil, &APIError{StatusCode: statusErr.Code, Body: statusErr.Body}
		}
		return nil, err
	}

	slog.Debug("remove background done", "bytes", len(content))

	return newResponse(content), nil
}

// multipartBody 构造带图片文件的 multipart 请求体。
// 文件句柄只在构造期间持有，写入 buffer 后立即释放。
func multipartBody(imagePath string, data url.Values) (*bytes.Buffer, string, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", filepath.Base(file.Name()))
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("copy form file: %w", err)
	}

	for k := range data {
		_ = writer.WriteField(k, data.Get(k))
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body, writer.FormDataContentType(), nil
}
