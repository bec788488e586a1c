// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "LinguaLearn"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "json"
	DefaultPracticeLimit    = 10
	DefaultCandidatePool    = 50
	DefaultGeneratorBaseURL = "https://api.openai.com/v1"
	DefaultGeneratorModel   = "gpt-4o-mini"
)

// 学習ロジックの固定定数
const (
	// MasteredThreshold 以上の mastery_level を持つ単語を「習得済み」として数える
	MasteredThreshold = 5
)
