// internal/handlers/practice_api_integration_test.go
//
// 実DB (postgres) を使った練習フローの結合テスト。
// DATABASE_URL が未設定の場合はスキップされます。
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lingualearn/internal/config"
	"lingualearn/internal/handlers"
	"lingualearn/internal/middleware"
	"lingualearn/internal/model"
	"lingualearn/internal/repository"
	"lingualearn/internal/service"
)

// setupIntegrationServer は本番と同じ配線でテストサーバーを組み立てます。
// 認証はヘッダーベースの開発用ミドルウェアを使います。
func setupIntegrationServer(t *testing.T, db *gorm.DB) *httptest.Server {
	t.Helper()

	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.App.PracticeLimit = 10
	cfg.App.CandidatePool = 50

	userRepo := repository.NewGormUserRepository()
	langRepo := repository.NewGormLanguageRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	sentenceRepo := repository.NewGormSentenceRepository()
	sessionRepo := repository.NewGormSessionRepository()
	practiceRepo := repository.NewGormPracticeRepository()

	userService := service.NewUserService(db, userRepo, langRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo, langRepo)
	sentenceService := service.NewSentenceService(db, sentenceRepo, langRepo, nil, cfg)
	practiceService := service.NewPracticeService(db, vocabRepo, sentenceRepo, practiceRepo, cfg)
	sessionService := service.NewSessionService(db, sessionRepo, langRepo)
	statsService := service.NewStatsService(db, vocabRepo, sessionRepo)

	userHandler := handlers.NewUserHandler(userService, testLogger)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, testLogger)
	practiceHandler := handlers.NewPracticeHandler(practiceService, sentenceService, sessionService, testLogger)
	statsHandler := handlers.NewStatsHandler(statsService, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.CreateUser)
		r.Get("/languages", userHandler.GetLanguages)

		r.Group(func(r chi.Router) {
			r.Use(middleware.DevUserContextMiddleware)

			r.Route("/user-languages", func(r chi.Router) {
				r.Get("/", userHandler.GetUserLanguages)
				r.Post("/", userHandler.AddUserLanguage)
			})

			r.Route("/vocabulary", func(r chi.Router) {
				r.Post("/", vocabHandler.PostVocabulary)
				r.Get("/", vocabHandler.GetVocabularies)
			})

			r.Route("/practice", func(r chi.Router) {
				r.Get("/vocabulary", practiceHandler.GetPracticeVocabulary)
				r.Post("/record", practiceHandler.PostRecordAttempt)
				r.Post("/session/start", practiceHandler.PostStartSession)
				r.Post("/session/{session_id}/end", practiceHandler.PostEndSession)
			})

			r.Get("/stats", statsHandler.GetStats)
		})
	})

	return httptest.NewServer(r)
}

func doJSON(t *testing.T, client *http.Client, method, url, userID string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	fields := map[string]json.RawMessage{}
	// 配列レスポンスの場合はフィールド分解しない
	_ = json.Unmarshal(raw, &fields)
	fields["_raw"] = raw
	return resp, fields
}

func TestPracticeAPI_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	require.NoError(t, repository.SeedLanguages(context.Background(), db))

	server := setupIntegrationServer(t, db)
	defer server.Close()
	client := server.Client()
	base := server.URL + "/api/v1"

	// --- ユーザー作成 (公開エンドポイント) ---
	resp, fields := doJSON(t, client, http.MethodPost, base+"/users", "", &model.CreateUserRequest{
		Name: fmt.Sprintf("integ-%d", time.Now().UnixNano()),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var userID uuid.UUID
	require.NoError(t, json.Unmarshal(fields["user_id"], &userID))
	userIDStr := userID.String()

	// テストで作ったデータを掃除
	t.Cleanup(func() {
		db.Where("user_id = ?", userID).Delete(&model.PracticeRecord{})
		db.Where("user_id = ?", userID).Delete(&model.LearningSession{})
		db.Where("user_id = ?", userID).Delete(&model.Vocabulary{})
		db.Where("user_id = ?", userID).Delete(&model.UserLanguage{})
		db.Where("user_id = ?", userID).Delete(&model.User{})
	})

	// --- 認証なしは拒否される ---
	resp, _ = doJSON(t, client, http.MethodGet, base+"/stats", "", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// --- 学習言語を追加 ---
	resp, _ = doJSON(t, client, http.MethodPost, base+"/user-languages", userIDStr, &model.AddLanguageRequest{LanguageID: 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// 重複追加は409
	resp, _ = doJSON(t, client, http.MethodPost, base+"/user-languages", userIDStr, &model.AddLanguageRequest{LanguageID: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// --- 単語を登録 ---
	resp, fields = doJSON(t, client, http.MethodPost, base+"/vocabulary", userIDStr, &model.PostVocabularyRequest{
		LanguageID:  1,
		Word:        "mariposa",
		Translation: "butterfly",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var vocabID uuid.UUID
	require.NoError(t, json.Unmarshal(fields["id"], &vocabID))

	// --- 出題候補に現れる ---
	resp, fields = doJSON(t, client, http.MethodGet, base+"/practice/vocabulary?language_id=1", userIDStr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(fields["_raw"]), "mariposa")

	// --- セッション開始 ---
	resp, fields = doJSON(t, client, http.MethodPost, base+"/practice/session/start", userIDStr, &model.StartSessionRequest{
		LanguageID:  1,
		SessionType: "vocabulary",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sessionID uuid.UUID
	require.NoError(t, json.Unmarshal(fields["session_id"], &sessionID))

	// --- 解答を記録 (正解) ---
	isCorrect := true
	resp, _ = doJSON(t, client, http.MethodPost, base+"/practice/record", userIDStr, &model.RecordAttemptRequest{
		SessionID:    sessionID,
		VocabularyID: &vocabID,
		IsCorrect:    &isCorrect,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// 習熟度が上がっている
	var vocab model.Vocabulary
	require.NoError(t, db.First(&vocab, "id = ?", vocabID).Error)
	assert.Equal(t, 1, vocab.MasteryLevel)
	assert.Equal(t, 1, vocab.ReviewCount)

	// --- セッション終了 ---
	endURL := fmt.Sprintf("%s/practice/session/%s/end", base, sessionID)
	resp, fields = doJSON(t, client, http.MethodPost, endURL, userIDStr, &model.EndSessionRequest{
		WordsPracticed: 1,
		CorrectAnswers: 1,
		TotalQuestions: 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEqual(t, "null", string(fields["ended_at"]))

	// 再終了は404
	resp, _ = doJSON(t, client, http.MethodPost, endURL, userIDStr, &model.EndSessionRequest{})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// --- 統計 ---
	resp, fields = doJSON(t, client, http.MethodGet, base+"/stats", userIDStr, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw := string(fields["_raw"])
	assert.Contains(t, raw, `"total_words":1`)
	assert.Contains(t, raw, `"total_sessions":1`)
}
