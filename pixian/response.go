package pixian

import "os"

// Response remove-background 接口返回的原始结果。
type Response struct {
	content []byte
}

func newResponse(content []byte) *Response {
	return &Response{content: content}
}

// Bytes 返回结果内容。
func (r *Response) Bytes() []byte {
	return r.content
}

// String 把结果内容按 UTF-8 文本解释。
func (r *Response) String() string {
	return string(r.content)
}

// Save 把结果写入文件，文件已存在时覆盖。
func (r *Response) Save(fp string) error {
	return os.WriteFile(fp, r.content, 0o644)
}
