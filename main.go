package main

import (
	"context"
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chaos-io/pixian-go/pixian"
	"github.com/chaos-io/pixian-go/util"
)

func main() {
	input := flag.String("input", "", "本地图片路径或 http(s) 图片地址")
	outputDir := flag.String("output", "./output", "结果输出目录")
	fit := flag.Bool("fit", false, "上传前把图片缩小到接口的最大像素数以内")
	format := flag.String("format", "auto", "输出格式: auto/png/jpeg/delta_png")
	margin := flag.String("margin", "0px", "输出边距, CSS 写法")
	crop := flag.Bool("crop", false, "裁剪到前景")
	flag.Parse()

	apiID := os.Getenv("PIXIAN_API_ID")
	apiSecret := os.Getenv("PIXIAN_API_SECRET")
	if apiID == "" || apiSecret == "" {
		log.Fatal("PIXIAN_API_ID and PIXIAN_API_SECRET must be set")
	}
	if *input == "" {
		log.Fatal("input image is required, use -input")
	}

	_ = os.MkdirAll(*outputDir, os.ModePerm)

	params := &pixian.RemoveBackgroundParams{
		ResultCropToForeground: *crop,
		ResultMargin:           *margin,
		OutputFormat:           *format,
	}

	if err := imageSource(params, *input, *fit); err != nil {
		log.Fatal("Failed to load image:", err)
	}

	client := pixian.NewClient(apiID, apiSecret)
	resp, err := client.RemoveBackground(context.Background(), params)
	if err != nil {
		log.Fatal("Failed to remove background:", err)
	}

	outPath := filepath.Join(*outputDir, resultName(*input))
	if err := resp.Save(outPath); err != nil {
		log.Fatal("Failed to save result:", err)
	}

	log.Println("Done! Result:", outPath)
}

// imageSource 根据输入与 fit 选项填充图片来源字段。
// fit 为真时本地路径和 http(s) 地址都先缩放到接口像素上限以内，
// 再以 base64 上传，避免超限被拒。
func imageSource(params *pixian.RemoveBackgroundParams, input string, fit bool) error {
	remote := strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")

	if !fit {
		if remote {
			params.ImageURL = input
		} else {
			params.ImagePath = input
		}
		return nil
	}

	var img image.Image
	var err error
	if remote {
		img, err = util.DownloadImage(input)
	} else {
		img, err = util.OpenImage(input)
	}
	if err != nil {
		return err
	}

	b64, err := util.EncodeBase64PNG(util.FitMaxPixels(img, pixian.DefaultMaxPixels))
	if err != nil {
		return err
	}
	params.ImageBase64 = b64
	return nil
}

// resultName 用输入名生成结果文件名，扩展名固定为 .png
func resultName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + "_rembg.png"
}
