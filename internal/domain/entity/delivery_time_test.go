package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestDeliveryTime_Merge_EmptyBase(t *testing.T) {
	base := DeliveryTime{}

	merged := base.Merge(DeliveryTimePatch{
		From: strPtr("08:00"),
		To:   strPtr("20:00"),
		Type: strPtr("minute"),
	})

	assert.Equal(t, DeliveryTime{From: "08:00", To: "20:00", Type: "minute"}, merged)
}

func TestDeliveryTime_Merge_PartialPreservesUnsetFields(t *testing.T) {
	base := DeliveryTime{}

	// Two sequential partial updates must not erase each other's fields.
	afterFrom := base.Merge(DeliveryTimePatch{From: strPtr("08:00")})
	afterTo := afterFrom.Merge(DeliveryTimePatch{To: strPtr("20:00")})

	assert.Equal(t, "08:00", afterTo.From)
	assert.Equal(t, "20:00", afterTo.To)
	assert.Empty(t, afterTo.Type)
}

func TestDeliveryTime_Merge_OverwritesPresentFields(t *testing.T) {
	base := DeliveryTime{From: "08:00", To: "20:00", Type: "minute"}

	merged := base.Merge(DeliveryTimePatch{From: strPtr("10:00")})

	assert.Equal(t, DeliveryTime{From: "10:00", To: "20:00", Type: "minute"}, merged)
}

func TestDeliveryTime_Merge_EmptyPatchIsIdentity(t *testing.T) {
	base := DeliveryTime{From: "08:00", To: "20:00", Type: "hour"}

	assert.Equal(t, base, base.Merge(DeliveryTimePatch{}))
	assert.True(t, DeliveryTimePatch{}.IsZero())
}

func TestDeliveryTime_Merge_DoesNotMutateReceiver(t *testing.T) {
	base := DeliveryTime{From: "08:00"}

	_ = base.Merge(DeliveryTimePatch{From: strPtr("09:00")})

	assert.Equal(t, "08:00", base.From)
}

func TestDeliveryType_IsValid(t *testing.T) {
	assert.True(t, DeliveryTypeInHouse.IsValid())
	assert.True(t, DeliveryTypeExternal.IsValid())
	assert.True(t, DeliveryTypePickup.IsValid())
	assert.False(t, DeliveryType("drone").IsValid())
}
