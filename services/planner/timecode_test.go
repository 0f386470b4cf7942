package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeSlot(t *testing.T) {
	cases := []struct {
		slot int
		want string
	}{
		{0, "12:00 AM"},
		{1, "12:30 AM"},
		{12, "6:00 AM"},
		{18, "9:00 AM"},
		{23, "11:30 AM"},
		{24, "12:00 PM"},
		{25, "12:30 PM"},
		{36, "6:00 PM"},
		{47, "11:30 PM"},
		{48, "12:00 AM"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DecodeSlot(tc.slot), "slot %d", tc.slot)
	}
}

func TestDecodeSlotBeyondMidnight(t *testing.T) {
	// Windows are caller-validated; overflow slots decode by plain arithmetic.
	assert.Equal(t, "12:30 AM", DecodeSlot(49))
	assert.Equal(t, "1:00 AM", DecodeSlot(50))
}

func TestEncodeSlot(t *testing.T) {
	assert.Equal(t, 0, EncodeSlot(0, 0))
	assert.Equal(t, 18, EncodeSlot(9, 0))
	assert.Equal(t, 19, EncodeSlot(9, 30))
	assert.Equal(t, 36, EncodeSlot(18, 0))

	// Encode inverts decode for every slot of the day.
	for slot := 0; slot < 48; slot++ {
		hour := slot / 2
		minute := (slot % 2) * 30
		assert.Equal(t, slot, EncodeSlot(hour, minute))
	}
}

func TestFormatSlotRange(t *testing.T) {
	assert.Equal(t, "9:00 AM - 11:00 AM", FormatSlotRange(18, 22))
	assert.Equal(t, "11:30 AM - 1:00 PM", FormatSlotRange(23, 26))
}
