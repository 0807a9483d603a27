package vision

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/tyonekura/koibumi/internal/domain"
)

// Classification bundles the recognized text with the derived metadata.
type Classification struct {
	RecognizedText string
	Result         domain.ClassificationResult
}

// Classify runs the three-step pipeline: text extraction, screen-type
// classification, and partner-name extraction. The extraction step is the
// only one that can fail; both classification steps fall back to a safe
// default when the model's JSON cannot be parsed, so a successful extraction
// always yields a complete Classification.
func Classify(ctx context.Context, model Model, imageBase64 string, logger *slog.Logger) (*Classification, error) {
	recognized, err := model.DescribeImage(ctx, ExtractionPrompt, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	result := domain.ClassificationResult{}

	screenRaw, err := model.Complete(ctx, ScreenTypePrompt, recognized)
	if err != nil {
		screenRaw = ""
	}
	result.ScreenType, result.ScreenTypeDefault = parseScreenType(screenRaw)
	if result.ScreenTypeDefault {
		logger.Warn("screen type classification defaulted", "raw", truncate(screenRaw, 120))
	}

	nameRaw, err := model.Complete(ctx, PartnerNamePrompt, recognized)
	if err != nil {
		nameRaw = ""
	}
	result.PartnerName, result.PartnerNameDefault = parsePartnerName(nameRaw)
	if result.PartnerNameDefault {
		logger.Warn("partner name extraction defaulted", "raw", truncate(nameRaw, 120))
	}

	return &Classification{RecognizedText: recognized, Result: result}, nil
}

// parseScreenType parses the strict-JSON screen-type answer. The second
// return value reports whether the default was used.
func parseScreenType(raw string) (domain.ScreenType, bool) {
	var parsed struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return domain.ScreenDM, true
	}
	switch domain.ScreenType(parsed.Type) {
	case domain.ScreenProfile:
		return domain.ScreenProfile, false
	case domain.ScreenDM:
		return domain.ScreenDM, false
	default:
		return domain.ScreenDM, true
	}
}

// parsePartnerName parses the strict-JSON name answer.
func parsePartnerName(raw string) (string, bool) {
	var parsed struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		return domain.UnknownPartnerName, true
	}
	name := strings.TrimSpace(parsed.Name)
	if name == "" {
		return domain.UnknownPartnerName, true
	}
	return name, false
}

// extractJSON strips markdown code fences and surrounding prose that vision
// models sometimes wrap around the requested JSON object.
func extractJSON(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end < start {
		return raw
	}
	return raw[start : end+1]
}

// truncate shortens s to at most n bytes for logging, cutting on a rune
// boundary so the output stays valid UTF-8.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
