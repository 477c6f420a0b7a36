package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"attendify/backend/pkg/qrcode"
	"attendify/backend/pkg/response"
)

// QRHandler renders scan tokens as PNG images. The token stays opaque; this
// endpoint only encodes whatever string it is given.
type QRHandler struct{}

// NewQRHandler creates a QRHandler.
func NewQRHandler() *QRHandler {
	return &QRHandler{}
}

// Generate renders a scan token as a PNG.
// GET /api/qr/generate?token=
func (h *QRHandler) Generate(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.BadRequest(c, "token required")
		return
	}

	png, err := qrcode.EncodePNG(token, 320)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
