package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lingualearn/internal/handlers"
	"lingualearn/internal/model"

	svc_mocks "lingualearn/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: モックハンドラーのセットアップ ---
func setupTestPracticeHandler(
	mockPractice *svc_mocks.PracticeService,
	mockSentence *svc_mocks.SentenceService,
	mockSession *svc_mocks.SessionService,
) *handlers.PracticeHandler {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil)) // ログ出力を抑制
	return handlers.NewPracticeHandler(mockPractice, mockSentence, mockSession, testLogger)
}

// --- ヘルパー: JSONボディの作成 ---
func newJsonRequestPractice(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext を設定 ---
func contextWithChiURLParamPractice(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// --- Test GetPracticeVocabulary ---
func TestPracticeHandler_GetPracticeVocabulary(t *testing.T) {
	mockPractice := new(svc_mocks.PracticeService)
	mockSentence := new(svc_mocks.SentenceService)
	mockSession := new(svc_mocks.SessionService)
	handler := setupTestPracticeHandler(mockPractice, mockSentence, mockSession)

	testUserID := uuid.New()
	ctxWithUser := context.WithValue(context.Background(), model.UserIDKey, testUserID)
	expectedVocabs := []*model.Vocabulary{
		{ID: uuid.New(), UserID: testUserID, LanguageID: 1, Word: "gato", Translation: "cat", Active: true},
		{ID: uuid.New(), UserID: testUserID, LanguageID: 1, Word: "perro", Translation: "dog", Active: true},
	}

	tests := []struct {
		name           string
		target         string
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 複数件取得",
			target:       "/practice/vocabulary?language_id=1",
			setupContext: func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockPractice.On("SelectPracticeVocabulary", mock.Anything, testUserID, uint(1), (*model.DifficultyLevel)(nil), 0).
					Return(expectedVocabs, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"word":"gato"`,
		},
		{
			name:         "正常系: サービスがnilを返しても空配列",
			target:       "/practice/vocabulary?language_id=1",
			setupContext: func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockPractice.On("SelectPracticeVocabulary", mock.Anything, testUserID, uint(1), (*model.DifficultyLevel)(nil), 0).
					Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "異常系: language_id 未指定",
			target:         "/practice/vocabulary",
			setupContext:   func() context.Context { return ctxWithUser },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: 認証エラー",
			target:         "/practice/vocabulary?language_id=1",
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
		{
			name:         "異常系: サービスエラー",
			target:       "/practice/vocabulary?language_id=1",
			setupContext: func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockPractice.On("SelectPracticeVocabulary", mock.Anything, testUserID, uint(1), (*model.DifficultyLevel)(nil), 0).
					Return(nil, model.ErrInternalServer).Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPractice.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestPractice(t, http.MethodGet, tt.target, nil)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.GetPracticeVocabulary(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockPractice.AssertExpectations(t)
		})
	}
}

// --- Test PostScoreTranslation ---
func TestPracticeHandler_PostScoreTranslation(t *testing.T) {
	mockPractice := new(svc_mocks.PracticeService)
	mockSentence := new(svc_mocks.SentenceService)
	mockSession := new(svc_mocks.SessionService)
	handler := setupTestPracticeHandler(mockPractice, mockSentence, mockSession)

	tests := []struct {
		name           string
		reqBody        interface{}
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 完全一致は正解",
			reqBody: &model.ScoreTranslationRequest{
				UserTranslation:    "The cat sat",
				CorrectTranslation: "the cat sat.",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_correct":true`,
		},
		{
			name: "正常系: 無関係な解答は不正解",
			reqBody: &model.ScoreTranslationRequest{
				UserTranslation:    "completely unrelated words",
				CorrectTranslation: "the cat sat",
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"is_correct":false`,
		},
		{
			name:           "異常系: 必須フィールド欠落",
			reqBody:        &model.ScoreTranslationRequest{UserTranslation: "hola"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:           "異常系: 不正なJSON",
			reqBody:        `{"user_translation": `,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"INVALID_REQUEST_BODY"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJsonRequestPractice(t, http.MethodPost, "/practice/score", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.PostScoreTranslation(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

// --- Test PostRecordAttempt ---
func TestPracticeHandler_PostRecordAttempt(t *testing.T) {
	mockPractice := new(svc_mocks.PracticeService)
	mockSentence := new(svc_mocks.SentenceService)
	mockSession := new(svc_mocks.SessionService)
	handler := setupTestPracticeHandler(mockPractice, mockSentence, mockSession)

	testUserID := uuid.New()
	testVocabID := uuid.New()
	testSessionID := uuid.New()
	testRecordID := uuid.New()
	isCorrect := true
	ctxWithUser := context.WithValue(context.Background(), model.UserIDKey, testUserID)

	validBody := &model.RecordAttemptRequest{
		SessionID:    testSessionID,
		VocabularyID: &testVocabID,
		IsCorrect:    &isCorrect,
	}

	tests := []struct {
		name           string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "正常系: 解答を記録して201",
			reqBody:      validBody,
			setupContext: func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockPractice.On("RecordAttempt", mock.Anything, testUserID, mock.AnythingOfType("*model.RecordAttemptRequest")).
					Return(&model.RecordAttemptResponse{RecordID: testRecordID}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   testRecordID.String(),
		},
		{
			name:           "異常系: is_correct 欠落はバリデーションエラー",
			reqBody:        &model.RecordAttemptRequest{SessionID: testSessionID, VocabularyID: &testVocabID},
			setupContext:   func() context.Context { return ctxWithUser },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"VALIDATION_ERROR"`,
		},
		{
			name:         "異常系: 対象の単語が存在しない",
			reqBody:      validBody,
			setupContext: func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockPractice.On("RecordAttempt", mock.Anything, testUserID, mock.AnythingOfType("*model.RecordAttemptRequest")).
					Return(nil, model.NewAppError("NOT_FOUND", "対象が見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"code":"NOT_FOUND"`,
		},
		{
			name:           "異常系: 認証エラー",
			reqBody:        validBody,
			setupContext:   func() context.Context { return context.Background() },
			setupMock:      func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"code":"UNAUTHORIZED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPractice.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestPractice(t, http.MethodPost, "/practice/record", tt.reqBody)
			req = req.WithContext(tt.setupContext())

			rr := httptest.NewRecorder()
			handler.PostRecordAttempt(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockPractice.AssertExpectations(t)
		})
	}
}

// --- Test PostEndSession ---
func TestPracticeHandler_PostEndSession(t *testing.T) {
	mockPractice := new(svc_mocks.PracticeService)
	mockSentence := new(svc_mocks.SentenceService)
	mockSession := new(svc_mocks.SessionService)
	handler := setupTestPracticeHandler(mockPractice, mockSentence, mockSession)

	testUserID := uuid.New()
	testSessionID := uuid.New()
	ctxWithUser := context.WithValue(context.Background(), model.UserIDKey, testUserID)
	endedAt := time.Now()
	closedSession := &model.LearningSession{
		ID:             testSessionID,
		UserID:         testUserID,
		LanguageID:     1,
		SessionType:    model.SessionTypeVocabulary,
		EndedAt:        &endedAt,
		CorrectAnswers: 3,
		TotalQuestions: 4,
	}

	validBody := &model.EndSessionRequest{
		WordsPracticed: 4,
		CorrectAnswers: 3,
		TotalQuestions: 4,
	}

	tests := []struct {
		name           string
		sessionIDParam string
		reqBody        interface{}
		setupContext   func() context.Context
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "正常系: セッションを終了して最終カウンタを返す",
			sessionIDParam: testSessionID.String(),
			reqBody:        validBody,
			setupContext:   func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockSession.On("EndSession", mock.Anything, testUserID, testSessionID, mock.AnythingOfType("*model.EndSessionRequest")).
					Return(nil).Once()
				mockSession.On("GetSession", mock.Anything, testUserID, testSessionID).
					Return(closedSession, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_questions":4`,
		},
		{
			name:           "異常系: セッションIDの形式が不正",
			sessionIDParam: "not-a-uuid",
			reqBody:        validBody,
			setupContext:   func() context.Context { return ctxWithUser },
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"code":"INVALID_ID_FORMAT"`,
		},
		{
			name:           "異常系: 終了済みセッションの再終了は404",
			sessionIDParam: testSessionID.String(),
			reqBody:        validBody,
			setupContext:   func() context.Context { return ctxWithUser },
			setupMock: func() {
				mockSession.On("EndSession", mock.Anything, testUserID, testSessionID, mock.AnythingOfType("*model.EndSessionRequest")).
					Return(model.NewAppError("SESSION_NOT_FOUND", "終了対象のセッションが見つかりません。", "", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"code":"SESSION_NOT_FOUND"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequestPractice(t, http.MethodPost, "/practice/session/"+tt.sessionIDParam+"/end", tt.reqBody)
			ctx := contextWithChiURLParamPractice(tt.setupContext(), "session_id", tt.sessionIDParam)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.PostEndSession(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
			}

			mockSession.AssertExpectations(t)
		})
	}
}
