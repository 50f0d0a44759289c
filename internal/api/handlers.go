package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/purchasetable/internal/cards"
	"github.com/youruser/purchasetable/internal/format"
	imagepkg "github.com/youruser/purchasetable/internal/image"
	"github.com/youruser/purchasetable/internal/publish"
)

// Generator produces the pages of one purchase table.
type Generator interface {
	Generate(ctx context.Context, items []cards.Item, formatID string, style imagepkg.Style) ([]*imagepkg.Page, error)
}

// Handlers serves the purchase table endpoints.
type Handlers struct {
	generator Generator
	publisher publish.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewHandlers(generator Generator, publisher publish.Publisher, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{generator: generator, publisher: publisher, logger: logger, now: time.Now}
}

type generateRequest struct {
	Title                     string       `json:"title"`
	Format                    string       `json:"format"`
	Color                     string       `json:"color"`
	BackgroundTextColor       string       `json:"background_text_color"`
	CardnameAndPriceTextColor string       `json:"cardname_and_price_text_color"`
	CustomTemplateImageURL    string       `json:"custom_template_image_url"`
	Comment                   string       `json:"comment"`
	Items                     []cards.Item `json:"items"`
	StoreID                   cards.ID     `json:"store_id"`
	StoreName                 string       `json:"store_name"`
	QRText                    string       `json:"qr_text"`
}

func (r generateRequest) style() imagepkg.Style {
	return imagepkg.Style{
		Accent:         r.Color,
		BackgroundText: r.BackgroundTextColor,
		CaptionText:    r.CardnameAndPriceTextColor,
		TemplateURL:    r.CustomTemplateImageURL,
		Comment:        r.Comment,
		Title:          r.Title,
		StoreName:      r.StoreName,
		QRText:         r.QRText,
	}
}

type publishedImage struct {
	OrderNumber int    `json:"order_number"`
	ImageURL    string `json:"image_url"`
}

func (h *Handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handlers) generatePurchaseTable(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := format.Resolve(req.Format); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	pages, err := h.generator.Generate(ctx, req.Items, req.Format, req.style())
	if err != nil {
		if errors.Is(err, format.ErrUnknownFormat) || errors.Is(err, imagepkg.ErrInvalidStyle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("purchase table generation failed",
			zap.String("format", req.Format),
			zap.String("store_id", string(req.StoreID)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "画像生成エラー: " + err.Error()})
		return
	}

	images := make([]publishedImage, 0, len(pages))
	for i, pg := range pages {
		key := publish.ObjectKey(string(req.StoreID), h.now())
		url, err := h.publisher.Publish(ctx, key, pg.Image)
		if err != nil {
			h.logger.Error("page upload failed", zap.String("key", key), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		images = append(images, publishedImage{OrderNumber: i + 1, ImageURL: url})
	}
	h.logger.Info("purchase table published",
		zap.String("store_id", string(req.StoreID)),
		zap.String("format", req.Format),
		zap.Int("images", len(images)),
	)
	c.JSON(http.StatusOK, gin.H{"images": images})
}
