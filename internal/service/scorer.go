// internal/service/scorer.go
package service

import (
	"strings"
	"unicode"

	"lingualearn/internal/model"
)

const (
	// 正解と判定する類似度の閾値 (呼び出しごとの変更は不可)
	similarityThreshold = 0.6
	// これ以下の長さのトークンはノイズ語として基準側から除外する
	noiseTokenMaxLen = 2
)

// ScoreTranslation は学習者の訳文と正解の訳文を単語の重なりで採点します。
// 両者を正規化 (小文字化・記号除去) してトークン化し、正解側の有意な
// トークン (長さ3以上) のうち回答側にも現れる割合を類似度とします。
// 語順は考慮しません。翻訳品質のNLP評価ではなく、言い換えを許容しつつ
// 内容語を全く共有しない回答を弾くための緩いヒューリスティックです。
func ScoreTranslation(userText, referenceText string) *model.ScoreTranslationResponse {
	refTokens := significantTokens(referenceText)
	if len(refTokens) == 0 {
		// 有意なトークンを持たない基準文は類似度0で常に不正解
		return &model.ScoreTranslationResponse{IsCorrect: false, Similarity: 0}
	}

	userSet := make(map[string]bool)
	for _, token := range tokenize(userText) {
		userSet[token] = true
	}

	matched := 0
	for _, token := range refTokens {
		if userSet[token] {
			matched++
		}
	}

	similarity := float64(matched) / float64(len(refTokens))
	return &model.ScoreTranslationResponse{
		IsCorrect:  similarity >= similarityThreshold,
		Similarity: similarity,
	}
}

// tokenize は文字列を小文字化し、記号を除去して空白で分割します
func tokenize(text string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			// 記号は区切りとして扱う
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}

// significantTokens は基準側のトークンからノイズ語を除いて返します (重複は除去)
func significantTokens(text string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, token := range tokenize(text) {
		if len([]rune(token)) <= noiseTokenMaxLen {
			continue
		}
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}
