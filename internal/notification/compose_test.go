package notification

import (
	"strings"
	"testing"
	"time"

	"farmmarket/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestPickupMessageIncludesDeliveryCode(t *testing.T) {
	subject, body := PickupMessage(PickupDetails{
		Order: model.Order{
			ID:           42,
			Quantity:     3,
			TotalAmount:  450,
			DeliveryCode: "654321",
		},
		ProductName:  "Tomatoes",
		FarmerName:   "Green Acres",
		CourierName:  "Dev",
		CourierPhone: "9876543210",
	})

	assert.Equal(t, "Your order #42 has been picked up", subject)
	assert.True(t, strings.Contains(body, "654321"))
	assert.True(t, strings.Contains(body, "Tomatoes"))
	assert.True(t, strings.Contains(body, "Dev (9876543210)"))
}

func TestDeliveredMessageOmitsDeliveryCode(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	subject, body := DeliveredMessage(model.Order{
		ID:           42,
		Quantity:     3,
		TotalAmount:  450,
		DeliveryCode: "654321",
	}, "Tomatoes", at)

	assert.Equal(t, "Your order #42 has been delivered", subject)
	//完了通知にコードを載せる理由はない
	assert.False(t, strings.Contains(body, "654321"))
	assert.True(t, strings.Contains(body, at.Format(time.RFC1123)))
}
