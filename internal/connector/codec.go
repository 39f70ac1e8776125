package connector

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/icy/models"
)

func encodeFrame(msg models.Message) ([]byte, error) {
	frame, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeFrame, err)
	}
	return frame, nil
}

func decodeFrame(frame []byte) (models.Message, error) {
	var msg models.Message
	if err := json.Unmarshal(frame, &msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrDecodeFrame, err)
	}
	return msg, nil
}
