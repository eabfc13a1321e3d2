package util

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestImage 生成 w x h 的纯色图片
func newTestImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x7f
	}
	return img
}

func TestFitMaxPixels(t *testing.T) {
	t.Parallel()

	t.Run("超出预算时等比缩小", func(t *testing.T) {
		img := newTestImage(2000, 1000)
		got := FitMaxPixels(img, 500000)

		w := got.Bounds().Dx()
		h := got.Bounds().Dy()
		assert.LessOrEqual(t, w*h, 500000)
		// 宽高比近似保持 2:1
		assert.InDelta(t, 2.0, float64(w)/float64(h), 0.05)
	})

	t.Run("极端宽高比不超预算", func(t *testing.T) {
		// 一边取整到 0 被夹到 1 时，另一边要按预算重算
		tall := FitMaxPixels(newTestImage(1, 100000), 100)
		assert.LessOrEqual(t, tall.Bounds().Dx()*tall.Bounds().Dy(), 100)

		wide := FitMaxPixels(newTestImage(100000, 1), 100)
		assert.LessOrEqual(t, wide.Bounds().Dx()*wide.Bounds().Dy(), 100)
	})

	t.Run("预算内原样返回", func(t *testing.T) {
		img := newTestImage(100, 100)
		got := FitMaxPixels(img, 25000000)
		assert.Equal(t, img, got)
	})

	t.Run("非正预算不处理", func(t *testing.T) {
		img := newTestImage(100, 100)
		assert.Equal(t, img, FitMaxPixels(img, 0))
	})
}

func TestToNRGBA(t *testing.T) {
	t.Parallel()

	// 已是 NRGBA 时直接返回
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, src, ToNRGBA(src))

	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	got := ToNRGBA(gray)
	assert.Equal(t, 4, got.Bounds().Dx())
	r, g, b, _ := got.At(1, 1).RGBA()
	assert.Equal(t, r, g)
	assert.Equal(t, g, b)
}

func TestOpenImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "test.png")
	require.NoError(t, EncodePNG(newTestImage(8, 6), path))

	img, err := OpenImage(path)
	require.NoError(t, err)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())

	_, err = OpenImage(filepath.Join(t.TempDir(), "not-exists.png"))
	assert.Error(t, err)
}

func TestDownloadImage(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, newTestImage(10, 5)))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}))
	defer server.Close()

	img, err := DownloadImage(server.URL + "/test.png")
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, err = DownloadImage(server.URL + "/missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 404")
}

func TestEncodeBase64PNG(t *testing.T) {
	t.Parallel()

	b64, err := EncodeBase64PNG(newTestImage(5, 5))
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
}
