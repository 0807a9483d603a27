package prompt

import "github.com/tyonekura/koibumi/internal/domain"

// DeriveToneProfile maps the client's three sliders onto a register and a
// purpose. Humor level 3 always wins over the formality-derived register.
func DeriveToneProfile(t domain.Tone) domain.ToneProfile {
	toneType := domain.ToneNormal
	switch t.FormalityLevel {
	case 1:
		toneType = domain.ToneFrank
	case 3:
		toneType = domain.ToneFormal
	}
	if t.HumorLevel == 3 {
		toneType = domain.ToneHumorous
	}

	purpose := domain.PurposeChat
	switch t.FriendlinessLevel {
	case 2:
		purpose = domain.PurposeGreeting
	case 3:
		purpose = domain.PurposeDate
	}

	return domain.ToneProfile{Type: toneType, Purpose: purpose}
}

// SentenceCount maps the client's textLength selector onto the number of
// sentences each candidate should contain.
func SentenceCount(textLength int) int {
	switch textLength {
	case 50:
		return 1
	case 100:
		return 2
	default:
		return 3
	}
}
