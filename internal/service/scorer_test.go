// internal/service/scorer_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ScoreTranslation(t *testing.T) {
	tests := []struct {
		name           string
		userText       string
		referenceText  string
		wantSimilarity float64
		wantCorrect    bool
	}{
		{
			name:           "正常系: 完全一致は類似度1.0で正解",
			userText:       "the cat sat",
			referenceText:  "the cat sat",
			wantSimilarity: 1.0,
			wantCorrect:    true,
		},
		{
			name:           "正常系: 内容語を全く共有しない回答は類似度0で不正解",
			userText:       "dog",
			referenceText:  "the cat sat",
			wantSimilarity: 0.0,
			wantCorrect:    false,
		},
		{
			name: "正常系: 語順が違っても有意トークンが一致すれば正解",
			// 基準側の "the" はノイズ語として除外されるため cat, sat の2語が基準
			userText:       "cat sat there",
			referenceText:  "the cat sat",
			wantSimilarity: 1.0,
			wantCorrect:    true,
		},
		{
			name:           "正常系: 大文字小文字と記号は無視される",
			userText:       "The CAT sat!",
			referenceText:  "the cat, sat.",
			wantSimilarity: 1.0,
			wantCorrect:    true,
		},
		{
			name:           "境界値: 一致率が閾値ちょうど (3語中2語) は正解",
			userText:       "quick brown dog",
			referenceText:  "quick brown fox",
			wantSimilarity: 2.0 / 3.0,
			wantCorrect:    true,
		},
		{
			name:           "境界値: 一致率が閾値未満 (2語中1語) は不正解",
			userText:       "quick dog",
			referenceText:  "quick fox",
			wantSimilarity: 0.5,
			wantCorrect:    false,
		},
		{
			name:           "異常系: 有意なトークンを持たない基準文は常に不正解",
			userText:       "is it",
			referenceText:  "is it",
			wantSimilarity: 0.0,
			wantCorrect:    false,
		},
		{
			name:           "異常系: 空の回答は不正解",
			userText:       "",
			referenceText:  "the cat sat",
			wantSimilarity: 0.0,
			wantCorrect:    false,
		},
		{
			name: "正常系: 基準側の重複トークンは1語として数える",
			// 基準の有意トークンは {very, good} のみ
			userText:       "very good",
			referenceText:  "very very good",
			wantSimilarity: 1.0,
			wantCorrect:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreTranslation(tt.userText, tt.referenceText)
			assert.InDelta(t, tt.wantSimilarity, got.Similarity, 1e-9)
			assert.Equal(t, tt.wantCorrect, got.IsCorrect)
		})
	}
}

func Test_significantTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "ノイズ語 (長さ2以下) を除外する",
			text: "the cat is on a mat",
			want: []string{"cat", "mat"},
		},
		{
			name: "重複を除去する",
			text: "run run run",
			want: []string{"run"},
		},
		{
			name: "すべてノイズ語の場合は空",
			text: "is it on a",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, significantTokens(tt.text))
		})
	}
}
