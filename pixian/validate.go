package pixian

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	// 1~4 个 token，每个为 <整数>px 或 <小数>%
	cssMarginPattern   = regexp.MustCompile(`^(\d+\.\d+%|\d+px)(\s+(\d+\.\d+%|\d+px)){0,3}$`)
	widthHeightPattern = regexp.MustCompile(`^\d+(\.\d+)?\s+\d+(\.\d+)?$`)
)

// requireImageSource 检查至少提供了一个图片来源。
// 注意这里只要求"至少一个"，不拒绝同时提供多个，
// 同时提供时由调用方按 path > base64 > url 的优先级取第一个。
func requireImageSource(names []string, values []string) error {
	for _, v := range values {
		if v != "" {
			return nil
		}
	}
	return &ValidationError{Field: strings.Join(names, ", "), Reason: "at least one must be provided"}
}

// validateRange 检查数值落在 [lo, hi] 闭区间内，零值跳过检查。
func validateRange(name string, v, lo, hi int) error {
	if v != 0 && (v < lo || v > hi) {
		return &ValidationError{Field: name, Reason: fmt.Sprintf("valid range is: %d to %d", lo, hi)}
	}
	return nil
}

// validateOption 检查值在允许的字面量集合内。
func validateOption(name, v string, options ...string) error {
	for _, opt := range options {
		if v == opt {
			return nil
		}
	}
	return &ValidationError{Field: name, Reason: "valid options are: " + strings.Join(options, ", ")}
}

// validateHexColor 检查 #RRGGBB 形式的十六进制颜色。
func validateHexColor(name, color string) error {
	if !hexColorPattern.MatchString(color) {
		return &ValidationError{Field: name, Reason: "hex color code provided: " + color}
	}
	return nil
}

// validateCSSMargin 检查 CSS 尺寸写法，例如 "0px"、"1px 2px 3px 4px"、"5.0%"。
func validateCSSMargin(name, css string) error {
	if !cssMarginPattern.MatchString(css) {
		return &ValidationError{Field: name, Reason: "CSS size provided: " + css}
	}
	return nil
}

// validateWidthHeight 检查 "宽 高" 两个十进制数，例如 "1920 1080"。
func validateWidthHeight(name, wh string) error {
	if !widthHeightPattern.MatchString(wh) {
		return &ValidationError{Field: name, Reason: "width height provided: " + wh}
	}
	return nil
}
