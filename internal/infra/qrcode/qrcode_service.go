// Package qrcode renders the QR labels attached to cabinet bins.
package qrcode

import (
	"encoding/json"
	"strings"

	"cabinet/config"
	"cabinet/internal/domain/entity"
	"cabinet/internal/domain/service"
	"cabinet/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	// LabelTypeItem marks a label that identifies a catalog item.
	LabelTypeItem = "item"

	defaultLabelSize = 256
	minLabelSize     = 64
	maxLabelSize     = 1024
)

type labelService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LabelParams holds dependencies for the label service, injected by Fx
type LabelParams struct {
	fx.In

	Config *config.Config
}

// NewLabelService builds the label service from the qrcode config section.
func NewLabelService(params LabelParams) service.LabelService {
	var size int
	var level string
	if params.Config != nil && params.Config.QRCode != nil {
		size = params.Config.QRCode.Size
		level = params.Config.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(size, level)
}

// NewQRCodeService creates a label service with an explicit size and
// error correction level (L, M, Q or H).
func NewQRCodeService(size int, errorCorrectionLevel string) service.LabelService {
	return &labelService{
		size:                 clampSize(size),
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

// GenerateItemLabel renders a PNG QR code carrying the item ID and SKU.
func (s *labelService) GenerateItemLabel(item *entity.Item) ([]byte, error) {
	if item == nil || item.ID == uuid.Nil {
		return nil, errors.New("item is required")
	}

	content, err := json.Marshal(service.ItemLabelPayload{
		ItemID: item.ID,
		SKU:    item.SKU,
		Type:   LabelTypeItem,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal label payload")
	}

	code, err := qrcode.New(string(content), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseItemLabel decodes the text read by a scanner back into its payload.
func (s *labelService) ParseItemLabel(content string) (*service.ItemLabelPayload, error) {
	var payload service.ItemLabelPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal label content")
	}

	if payload.Type != LabelTypeItem {
		return nil, errors.Errorf("invalid label type: %s", payload.Type)
	}
	if payload.ItemID == uuid.Nil {
		return nil, errors.New("label carries no item id")
	}

	return &payload, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func clampSize(size int) int {
	switch {
	case size <= 0:
		return defaultLabelSize
	case size < minLabelSize:
		return minLabelSize
	case size > maxLabelSize:
		return maxLabelSize
	default:
		return size
	}
}
