package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tyonekura/koibumi/internal/domain"
)

func TestDeriveToneProfile(t *testing.T) {
	tests := []struct {
		name     string
		tone     domain.Tone
		expected domain.ToneProfile
	}{
		{
			name:     "frank chat",
			tone:     domain.Tone{FormalityLevel: 1, FriendlinessLevel: 1, HumorLevel: 1},
			expected: domain.ToneProfile{Type: domain.ToneFrank, Purpose: domain.PurposeChat},
		},
		{
			name:     "normal greeting",
			tone:     domain.Tone{FormalityLevel: 2, FriendlinessLevel: 2, HumorLevel: 1},
			expected: domain.ToneProfile{Type: domain.ToneNormal, Purpose: domain.PurposeGreeting},
		},
		{
			name:     "formal date",
			tone:     domain.Tone{FormalityLevel: 3, FriendlinessLevel: 3, HumorLevel: 1},
			expected: domain.ToneProfile{Type: domain.ToneFormal, Purpose: domain.PurposeDate},
		},
		{
			name:     "humor level 3 overrides frank",
			tone:     domain.Tone{FormalityLevel: 1, FriendlinessLevel: 1, HumorLevel: 3},
			expected: domain.ToneProfile{Type: domain.ToneHumorous, Purpose: domain.PurposeChat},
		},
		{
			name:     "humor level 3 overrides formal",
			tone:     domain.Tone{FormalityLevel: 3, FriendlinessLevel: 2, HumorLevel: 3},
			expected: domain.ToneProfile{Type: domain.ToneHumorous, Purpose: domain.PurposeGreeting},
		},
		{
			name:     "humor level 2 does not override",
			tone:     domain.Tone{FormalityLevel: 2, FriendlinessLevel: 3, HumorLevel: 2},
			expected: domain.ToneProfile{Type: domain.ToneNormal, Purpose: domain.PurposeDate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveToneProfile(tt.tone))
		})
	}
}

func TestDeriveToneProfileDeterministic(t *testing.T) {
	tone := domain.Tone{FormalityLevel: 1, FriendlinessLevel: 3, HumorLevel: 2}
	first := DeriveToneProfile(tone)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveToneProfile(tone))
	}
}

func TestSentenceCount(t *testing.T) {
	assert.Equal(t, 1, SentenceCount(50))
	assert.Equal(t, 2, SentenceCount(100))
	assert.Equal(t, 3, SentenceCount(150))
}
