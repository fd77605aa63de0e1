package server_test

import (
	"testing"
	"time"

	"econ-cdn/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Timeouts(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    time.Duration
	}{
		{"Positive", 15, 15 * time.Second},
		{"Zero", 0, 0},
		{"Negative", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{ReadTimeoutSeconds: tt.seconds, WriteTimeoutSeconds: tt.seconds}
			assert.Equal(t, tt.want, c.ReadTimeout())
			assert.Equal(t, tt.want, c.WriteTimeout())
		})
	}
}

func TestConfig_Address(t *testing.T) {
	assert.Equal(t, ":8080", server.Config{Port: "8080"}.Address())
}
