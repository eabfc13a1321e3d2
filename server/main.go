package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/segmentio/ksuid"

	"github.com/chaos-io/pixian-go/pixian"
)

const (
	outputDir = "./output"
	// 结果文件保留期，过期由定时任务清理
	retention = 24 * time.Hour
)

func main() {
	apiID := os.Getenv("PIXIAN_API_ID")
	apiSecret := os.Getenv("PIXIAN_API_SECRET")
	if apiID == "" || apiSecret == "" {
		log.Fatal("PIXIAN_API_ID and PIXIAN_API_SECRET must be set")
	}

	_ = os.MkdirAll(outputDir, os.ModePerm)

	client := pixian.NewClient(apiID, apiSecret)

	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() { cleanOutput(outputDir, retention) }); err != nil {
		log.Fatal("Failed to register cleanup job:", err)
	}
	c.Start()

	r := gin.Default()
	r.POST("/remove-background", removeBackground(client))
	r.Static("/output", outputDir)

	log.Fatal(r.Run(":8080"))
}

// removeBackground 接收上传文件或 image_url 表单字段，经 SDK 转发到 pixian.ai，
// 结果保存到输出目录并返回可访问路径。
func removeBackground(client *pixian.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		params := &pixian.RemoveBackgroundParams{
			ImageURL:        c.PostForm("image_url"),
			BackgroundColor: c.PostForm("background_color"),
			ResultMargin:    c.PostForm("result_margin"),
			OutputFormat:    c.PostForm("output_format"),
		}

		if file, err := c.FormFile("image"); err == nil {
			// 先落到临时文件，再按本地路径上传
			tmp := filepath.Join(os.TempDir(), ksuid.New().String()+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, tmp); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			defer func() {
				_ = os.Remove(tmp)
			}()
			params.ImagePath = tmp
		}

		resp, err := client.RemoveBackground(c.Request.Context(), params)
		if err != nil {
			var validationErr *pixian.ValidationError
			if errors.As(err, &validationErr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			var apiErr *pixian.APIError
			if errors.As(err, &apiErr) {
				c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Body})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		name := ksuid.New().String() + ".png"
		if err := resp.Save(filepath.Join(outputDir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"file": name, "url": "/output/" + name})
	}
}

// cleanOutput 删除超过保留期的结果文件
func cleanOutput(dir string, maxAge time.Duration) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Println("read output dir:", err)
		return
	}

	now := time.Now()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > maxAge {
			_ = os.Remove(filepath.Join(dir, e.Name()))
		}
	}
}
