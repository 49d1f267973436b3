package service

import "github.com/google/uuid"

// QRCodeService renders order tracking QR codes.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG encoding the order ID and, when configured, its tracking link.
	GenerateTrackingQR(orderID uuid.UUID) ([]byte, error)
}
