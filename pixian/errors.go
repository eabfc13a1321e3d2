package pixian

import "fmt"

// ValidationError 参数校验失败，发请求之前就会返回。
// Field 指出非法参数，Reason 描述违反的约束。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value: %s. %s", e.Field, e.Reason)
}

// APIError pixian.ai 返回了非成功状态码，Body 为原始响应内容。
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return e.Body
}
