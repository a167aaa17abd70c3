package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColors(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{name: "green", color: Green, expected: "\033[32mtext\033[0m"},
		{name: "yellow", color: Yellow, expected: "\033[33mtext\033[0m"},
		{name: "red", color: Red, expected: "\033[31mtext\033[0m"},
		{name: "gray", color: Gray, expected: "\033[90mtext\033[0m"},
		{name: "cyan", color: Cyan, expected: "\033[36mtext\033[0m"},
		{name: "bold", color: Bold, expected: "\033[1mtext\033[0m"},
		{name: "none", color: None, expected: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.color("text"))
		})
	}
}

func TestNewColor(t *testing.T) {
	custom := NewColor("\033[35m")
	assert.Equal(t, "\033[35mx\033[0m", custom("x"))
}
