package domain

import "time"

// Tone carries the three 1..3 sliders the client exposes.
type Tone struct {
	FormalityLevel    int `json:"formalityLevel"`
	FriendlinessLevel int `json:"friendlinessLevel"`
	HumorLevel        int `json:"humorLevel"`
}

// ToneType is the register the generated messages are written in.
type ToneType string

const (
	ToneFrank    ToneType = "frank"
	ToneNormal   ToneType = "normal"
	ToneFormal   ToneType = "formal"
	ToneHumorous ToneType = "humorous"
)

// Purpose is the conversational intent of a generation request.
type Purpose string

const (
	PurposeChat     Purpose = "chat"
	PurposeGreeting Purpose = "greeting"
	PurposeDate     Purpose = "date"
)

// ToneProfile is the classification derived from Tone.
type ToneProfile struct {
	Type    ToneType
	Purpose Purpose
}

// ScreenType distinguishes a profile screenshot from a conversation screen.
type ScreenType string

const (
	ScreenProfile ScreenType = "profile"
	ScreenDM      ScreenType = "dm"
)

// UnknownPartnerName is the sentinel used when no name could be extracted.
const UnknownPartnerName = "不明さん"

// ClassificationResult is the outcome of the screenshot pipeline. The
// Defaulted flags record which fields fell back to their safe default
// because the model response could not be parsed.
type ClassificationResult struct {
	ScreenType         ScreenType
	ScreenTypeDefault  bool
	PartnerName        string
	PartnerNameDefault bool
}

type Partner struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
}

// Capture is one recognized-text record appended for a partner.
type Capture struct {
	ID             int64
	PartnerID      string
	Kind           ScreenType
	RecognizedText string
	CreatedAt      time.Time
}
