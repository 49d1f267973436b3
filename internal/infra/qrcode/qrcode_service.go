package qrcode

import (
	"encoding/json"
	"strings"

	"giftshop/config"
	"giftshop/internal/domain/service"
	"giftshop/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	trackingType = "order_tracking"
	defaultSize  = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// TrackingPayload is the JSON a scanner reads from an order tracking QR code.
type TrackingPayload struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService falls back to a 256px image at level M for missing or unknown settings.
func NewQRCodeService(cfg *config.QRCodeConfig) service.QRCodeService {
	s := &qrcodeService{size: defaultSize, level: qrcode.Medium}
	if cfg == nil {
		return s
	}

	if cfg.Size > 0 {
		s.size = cfg.Size
	}
	if level, ok := recoveryLevels[strings.ToUpper(cfg.ErrorCorrectionLevel)]; ok {
		s.level = level
	}
	s.baseURL = strings.TrimRight(cfg.BaseURL, "/")

	return s
}

func (s *qrcodeService) GenerateTrackingQR(orderID uuid.UUID) ([]byte, error) {
	payload := TrackingPayload{OrderID: orderID.String(), Type: trackingType}
	if s.baseURL != "" {
		payload.URL = s.baseURL + "/" + payload.OrderID
	}

	content, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code payload")
	}

	png, err := qrcode.Encode(string(content), s.level, s.size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode QR code for order %s", orderID)
	}

	return png, nil
}
