package scenes

import (
	"testing"

	"github.com/automoto/fruitrang/components"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		end  string
		want string
	}{
		{components.RoundBowlsFilled.String(), "All bowls filled!"},
		{components.RoundTimeUp.String(), "Time's up!"},
		{"", "Round over"},
	}
	for _, tt := range tests {
		if got := Title(tt.end); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.end, got, tt.want)
		}
	}
}
