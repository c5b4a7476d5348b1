package services

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/raktsetu/bloodbank-cli/pkg/core/model"
	"github.com/raktsetu/bloodbank-cli/pkg/ledger"
)

var validate = validator.New()

// notify appends a feed entry as an operation side effect
func notify(sink ledger.NotificationSink, message string, category model.NotificationCategory) {
	sink.AddNotification(model.Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Category:  category,
		Timestamp: time.Now(),
	})
}
