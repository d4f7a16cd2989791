package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomID(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{3, 7, "3_7"},
		{7, 3, "3_7"},
		{1, 2, "1_2"},
		{5, 5, "5_5"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RoomID(tt.a, tt.b))
	}
}
