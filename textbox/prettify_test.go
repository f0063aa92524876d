package textbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"sentences split", "Hello. World", "Hello.\n\nWorld"},
		{"line breaks joined", "Hello\nthere. Bye", "Hello there.\n\nBye"},
		{"runs of punctuation", "Wow!? Really", "Wow!?\n\nReally"},
		{"closing quote kept", `He said "Hi." Then`, "He said \"Hi.\"\n\nThen"},
		{"trailing punctuation", "Bye.", "Bye."},
		{"ellipsis before capital", "Wait… What", "Wait…\n\nWhat"},
		{"ellipsis before pause", "Wait… [PAUSE]What", "Wait… [PAUSE]What"},
		{"ellipsis between words", "Hi…there", "Hi… there"},
		{"ellipsis before lower case", "Wait… what", "Wait… what"},
		{"macro contents ignored", "[PLAYER.] ok", "[PLAYER.] ok"},
		{"double spaces", "A  B", "A B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Prettify(tt.text, nil))
		})
	}
}

func TestIsPunctuation(t *testing.T) {
	for _, r := range ".!?" {
		assert.True(t, IsPunctuation(r), string(r))
	}
	for _, r := range ",…;\"" {
		assert.False(t, IsPunctuation(r), string(r))
	}
}
