package handlers_test // テスト対象とは別のパッケージ名

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go_speak_review/internal/handlers" // テスト対象
	"go_speak_review/internal/model"
	svc_mocks "go_speak_review/internal/service/mocks"
	"go_speak_review/internal/srs"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONボディの作成 ---
func newJSONRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	t.Helper()
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
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func decodeError(t *testing.T, body []byte) model.ErrorDetail {
	t.Helper()
	var resp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), "body: %s", string(body))
	return resp.Error
}

func ratingPtr(r srs.Rating) *srs.Rating {
	return &r
}

// --- Test GetDueItems ---
func TestReviewHandler_GetDueItems(t *testing.T) {
	speakerID := uuid.New()
	ctxWithSpeaker := context.WithValue(context.Background(), model.SpeakerIDKey, speakerID)
	due := []*model.DueItemResponse{
		{
			ItemID:     uuid.New(),
			ItemType:   model.ItemTypeGrammar,
			ItemKey:    "past-simple",
			State:      srs.New,
			NextReview: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC),
			Preview: map[srs.Rating]string{
				srs.Again: "1 minute", srs.Hard: "1 day", srs.Good: "2 days", srs.Easy: "6 days",
			},
		},
	}

	tests := []struct {
		name           string
		query          string
		ctx            context.Context
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "正常系: limit指定なし",
			query: "",
			ctx:   ctxWithSpeaker,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetDueItems", mock.Anything, speakerID, 0).Return(due, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"preview":{"1":"1 minute","2":"1 day","3":"2 days","4":"6 days"}`,
		},
		{
			name:  "正常系: limit指定あり",
			query: "?limit=5",
			ctx:   ctxWithSpeaker,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetDueItems", mock.Anything, speakerID, 5).Return(due, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"state":"New"`,
		},
		{
			name:  "正常系: サービスがnilを返す",
			query: "",
			ctx:   ctxWithSpeaker,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetDueItems", mock.Anything, speakerID, 0).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "異常系: limitが整数でない",
			query:          "?limit=abc",
			ctx:            ctxWithSpeaker,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"field":"limit"`,
		},
		{
			name:           "異常系: コンテキストにスピーカーがない",
			query:          "",
			ctx:            context.Background(),
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   model.CodeInternalServer,
		},
		{
			name:  "異常系: サービスエラー",
			query: "",
			ctx:   ctxWithSpeaker,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("GetDueItems", mock.Anything, speakerID, 0).Return(nil, errors.New("internal service error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "サーバー内部でエラーが発生しました。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewReviewService(t)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			req := newJSONRequest(t, http.MethodGet, "/reviews/due"+tt.query, nil).WithContext(tt.ctx)
			rr := httptest.NewRecorder()
			handler.GetDueItems(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)
		})
	}
}

// --- Test GetReviewStats ---
func TestReviewHandler_GetReviewStats(t *testing.T) {
	speakerID := uuid.New()
	ctxWithSpeaker := context.WithValue(context.Background(), model.SpeakerIDKey, speakerID)
	next := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	t.Run("正常系", func(t *testing.T) {
		mockService := svc_mocks.NewReviewService(t)
		mockService.On("GetReviewStats", mock.Anything, speakerID).
			Return(&model.ReviewStats{DueCount: 0, TotalItems: 3, NextReviewAt: &next}, nil).Once()

		rr := httptest.NewRecorder()
		handlers.NewReviewHandler(mockService).GetReviewStats(rr, newJSONRequest(t, http.MethodGet, "/reviews/stats", nil).WithContext(ctxWithSpeaker))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"due_count":0,"total_items":3,"next_review_at":"2025-06-16T10:00:00Z"}`, rr.Body.String())
	})

	t.Run("正常系: アイテムなしはnull", func(t *testing.T) {
		mockService := svc_mocks.NewReviewService(t)
		mockService.On("GetReviewStats", mock.Anything, speakerID).
			Return(&model.ReviewStats{}, nil).Once()

		rr := httptest.NewRecorder()
		handlers.NewReviewHandler(mockService).GetReviewStats(rr, newJSONRequest(t, http.MethodGet, "/reviews/stats", nil).WithContext(ctxWithSpeaker))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"due_count":0,"total_items":0,"next_review_at":null}`, rr.Body.String())
	})
}

// --- Test SubmitRating ---
func TestReviewHandler_SubmitRating(t *testing.T) {
	speakerID := uuid.New()
	itemID := uuid.New()
	ctxWithSpeaker := context.WithValue(context.Background(), model.SpeakerIDKey, speakerID)
	updated := &model.ReviewItem{ItemID: itemID, SpeakerID: speakerID, ItemType: model.ItemTypeGrammar, ItemKey: "past-simple", State: srs.Review, Reps: 1}

	tests := []struct {
		name           string
		itemIDParam    string
		reqBody        interface{}
		setupMock      func(m *svc_mocks.ReviewService)
		expectedStatus int
		expectedCode   string
		expectedField  string
	}{
		{
			name:        "正常系: Goodを送信",
			itemIDParam: itemID.String(),
			reqBody:     &model.SubmitRatingRequest{Rating: ratingPtr(srs.Good)},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordReview", mock.Anything, speakerID, itemID, srs.Good).Return(updated, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "正常系: 名前形式でHardを送信",
			itemIDParam: itemID.String(),
			reqBody:     `{"rating":"Hard"}`,
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordReview", mock.Anything, speakerID, itemID, srs.Hard).Return(updated, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: 未知の評価名",
			itemIDParam:    itemID.String(),
			reqBody:        `{"rating":"Perfect"}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
			expectedField:  "rating",
		},
		{
			name:           "異常系: 不正なItemID形式",
			itemIDParam:    "invalid-uuid",
			reqBody:        &model.SubmitRatingRequest{Rating: ratingPtr(srs.Good)},
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
			expectedField:  "item_id",
		},
		{
			name:           "異常系: 評価が範囲外 (5)",
			itemIDParam:    itemID.String(),
			reqBody:        `{"rating":5}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
			expectedField:  "rating",
		},
		{
			name:           "異常系: 評価が範囲外 (0)",
			itemIDParam:    itemID.String(),
			reqBody:        `{"rating":0}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
			expectedField:  "rating",
		},
		{
			name:           "異常系: 評価が未指定",
			itemIDParam:    itemID.String(),
			reqBody:        `{}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
			expectedField:  "rating",
		},
		{
			name:           "異常系: 不正なJSON",
			itemIDParam:    itemID.String(),
			reqBody:        `{"rating":`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
		},
		{
			name:           "異常系: 未知のフィールド",
			itemIDParam:    itemID.String(),
			reqBody:        `{"rating":3,"is_correct":true}`,
			setupMock:      func(m *svc_mocks.ReviewService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.CodeValidation,
		},
		{
			name:        "異常系: アイテムが存在しない",
			itemIDParam: itemID.String(),
			reqBody:     &model.SubmitRatingRequest{Rating: ratingPtr(srs.Again)},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordReview", mock.Anything, speakerID, itemID, srs.Again).
					Return(nil, model.NewAppError(model.CodeNotFound, "item not found", "item_id", model.ErrNotFound)).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.CodeNotFound,
			expectedField:  "item_id",
		},
		{
			name:        "異常系: 同時更新の競合",
			itemIDParam: itemID.String(),
			reqBody:     &model.SubmitRatingRequest{Rating: ratingPtr(srs.Easy)},
			setupMock: func(m *svc_mocks.ReviewService) {
				m.On("RecordReview", mock.Anything, speakerID, itemID, srs.Easy).
					Return(nil, model.NewAppError(model.CodeConflict, "conflict", "", model.ErrConflict)).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   model.CodeConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := svc_mocks.NewReviewService(t)
			tt.setupMock(mockService)
			handler := handlers.NewReviewHandler(mockService)

			ctx := contextWithChiURLParam(ctxWithSpeaker, "item_id", tt.itemIDParam)
			req := newJSONRequest(t, http.MethodPost, "/reviews/"+tt.itemIDParam+"/rating", tt.reqBody).WithContext(ctx)
			rr := httptest.NewRecorder()
			handler.SubmitRating(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var got model.ReviewItem
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
				assert.Equal(t, itemID, got.ItemID)
				assert.Equal(t, srs.Review, got.State)
				assert.NotContains(t, rr.Body.String(), "version")
				return
			}
			detail := decodeError(t, rr.Body.Bytes())
			assert.Equal(t, tt.expectedCode, detail.Code)
			if tt.expectedField != "" {
				assert.Equal(t, tt.expectedField, detail.Field)
			}
		})
	}
}
