package intake

import (
	"context"
	"errors"
	"strings"

	"github.com/yanqian/risk-intake/internal/domain/riskresult"
)

// ConnectFailedMessage is the last-resort text when a failure carries no message at all.
const ConnectFailedMessage = "Could not connect to server"

// Predictor calls the remote risk-prediction service.
type Predictor interface {
	Predict(ctx context.Context, payload Payload) (riskresult.RiskResult, error)
}

// PredictionError describes a failed prediction call. StatusCode is zero for
// transport failures; Detail holds the service's own explanation when it sent one.
type PredictionError struct {
	StatusCode int
	Detail     string
	Message    string
	Err        error
}

func (e *PredictionError) Error() string {
	switch {
	case e.Detail != "":
		return e.Message + ": " + e.Detail
	case e.Err != nil && e.Message == "":
		return e.Err.Error()
	}
	return e.Message
}

func (e *PredictionError) Unwrap() error {
	return e.Err
}

// FailureMessage picks the most specific user facing text for a failed submit:
// the service detail, then the transport message, then ConnectFailedMessage.
func FailureMessage(err error) string {
	if err == nil {
		return ConnectFailedMessage
	}
	var predErr *PredictionError
	if errors.As(err, &predErr) {
		if strings.TrimSpace(predErr.Detail) != "" {
			return predErr.Detail
		}
		if strings.TrimSpace(predErr.Message) != "" {
			return predErr.Message
		}
		if predErr.Err != nil && strings.TrimSpace(predErr.Err.Error()) != "" {
			return predErr.Err.Error()
		}
		return ConnectFailedMessage
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return ConnectFailedMessage
}
