package server

import (
	"errors"

	"github.com/MKhiriev/icy/models"
)

var errorCodeMap = map[error]models.ErrorCode{
	ErrAlreadyConnected:   models.ErrCodeHandshake,
	ErrEmptyClientName:    models.ErrCodeHandshake,
	ErrUnsupportedVersion: models.ErrCodeHandshake,
	ErrNotConnected:       models.ErrCodeNotConnected,
	ErrUnknownMessage:     models.ErrCodeUnknownMessage,
	ErrMalformedPayload:   models.ErrCodeMalformed,
}

func codeFromError(err error) models.ErrorCode {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return models.ErrCodeUnknown
}

// errorReply builds the error frame for a failed request. Encoding models.Error
// cannot fail, so the marshal error is dropped.
func errorReply(id uint32, err error) models.Message {
	reply, _ := models.NewMessage(id, models.TypeError, models.Error{
		Code:    codeFromError(err),
		Message: err.Error(),
	})
	return reply
}
