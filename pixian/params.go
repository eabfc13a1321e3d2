package pixian

// 默认值与取值范围与 pixian.ai 接口保持一致。
const (
	DefaultMaxPixels         = 25000000
	DefaultResultMargin      = "0px"
	DefaultVerticalAlignment = "middle"
	DefaultOutputFormat      = "auto"
	DefaultJpegQuality       = 75

	minMaxPixels   = 100
	maxMaxPixels   = 25000000
	minJpegQuality = 1
	maxJpegQuality = 100
)

// RemoveBackgroundParams remove-background 接口的请求参数。
// 零值字段在请求前会被填充为接口默认值。
type RemoveBackgroundParams struct {
	// 图片来源，至少提供一个；同时提供时优先级为 ImagePath > ImageBase64 > ImageURL。
	ImagePath   string
	ImageBase64 string
	ImageURL    string

	// MaxPixels 输入图片的最大像素数，范围 [100, 25000000]，默认 25000000。
	MaxPixels int
	// BackgroundColor 输出背景色，#RRGGBB 形式，空表示透明。
	BackgroundColor string
	// ResultCropToForeground 是否把输出裁剪到前景。
	ResultCropToForeground bool
	// ResultMargin 输出边距，CSS 写法，默认 "0px"。
	ResultMargin string
	// ResultTargetSize 输出目标尺寸，"宽 高"，空表示不指定。
	ResultTargetSize string
	// ResultVerticalAlignment 垂直对齐方式：top/middle/bottom，默认 middle。
	ResultVerticalAlignment string
	// OutputFormat 输出格式：auto/png/jpeg/delta_png，默认 auto。
	OutputFormat string
	// OutputJpegQuality JPEG 编码质量，范围 [1, 100]，默认 75。
	OutputJpegQuality int
}

// applyDefaults 把零值字段填充为接口默认值。
func (p *RemoveBackgroundParams) applyDefaults() {
	if p.MaxPixels == 0 {
		p.MaxPixels = DefaultMaxPixels
	}
	if p.ResultMargin == "" {
		p.ResultMargin = DefaultResultMargin
	}
	if p.ResultVerticalAlignment == "" {
		p.ResultVerticalAlignment = DefaultVerticalAlignment
	}
	if p.OutputFormat == "" {
		p.OutputFormat = DefaultOutputFormat
	}
	if p.OutputJpegQuality == 0 {
		p.OutputJpegQuality = DefaultJpegQuality
	}
}

// validate 按固定顺序执行所有校验，参数类型本身由编译期保证。
func (p *RemoveBackgroundParams) validate() error {
	if err := requireImageSource(
		[]string{"image_path", "image_base64", "image_url"},
		[]string{p.ImagePath, p.ImageBase64, p.ImageURL},
	); err != nil {
		return err
	}
	if err := validateRange("max_pixels", p.MaxPixels, minMaxPixels, maxMaxPixels); err != nil {
		return err
	}
	if p.BackgroundColor != "" {
		if err := validateHexColor("background_color", p.BackgroundColor); err != nil {
			return err
		}
	}
	if err := validateCSSMargin("result_margin", p.ResultMargin); err != nil {
		return err
	}
	if p.ResultTargetSize != "" {
		if err := validateWidthHeight("result_target_size", p.ResultTargetSize); err != nil {
			return err
		}
	}
	if err := validateOption("result_vertical_alignment", p.ResultVerticalAlignment, "top", "middle", "bottom"); err != nil {
		return err
	}
	if err := validateOption("output_format", p.OutputFormat, "auto", "png", "jpeg", "delta_png"); err != nil {
		return err
	}
	return validateRange("output_jpeg_quality", p.OutputJpegQuality, minJpegQuality, maxJpegQuality)
}
