package vision

import "context"

// ExtractionPrompt asks the vision model for a plain-text reading of the
// screenshot. The output is deliberately unconstrained; structure is imposed
// by the follow-up classification calls.
const ExtractionPrompt = `この画像はマッチングアプリのスクリーンショットです。
画面に表示されているテキストをすべて読み取り、そのまま書き出してください。
説明や前置きは不要です。`

// ScreenTypePrompt constrains the model to a single-purpose JSON answer
// identifying the screen kind.
const ScreenTypePrompt = `以下のテキストはマッチングアプリの画面から読み取ったものです。
この画面がプロフィール画面かメッセージ(DM)画面かを判定してください。
必ず {"type":"profile"} または {"type":"dm"} のJSONのみを出力してください。
説明は一切不要です。`

// PartnerNamePrompt constrains the model to a single-purpose JSON answer
// carrying the counterpart's name, with an explicit unknown sentinel.
const PartnerNamePrompt = `以下のテキストはマッチングアプリの画面から読み取ったものです。
会話相手（またはプロフィールの持ち主）の名前を抽出してください。
必ず {"name":"..."} のJSONのみを出力してください。
名前が読み取れない場合は {"name":"不明さん"} と出力してください。
説明は一切不要です。`

// Model is one vision-capable generation provider.
type Model interface {
	// DescribeImage submits a base64-encoded image with an instruction and
	// returns the model's free-text output.
	DescribeImage(ctx context.Context, instruction, imageBase64 string) (string, error)
	// Complete submits an instruction plus input text and returns the
	// model's text output.
	Complete(ctx context.Context, instruction, input string) (string, error)
}
