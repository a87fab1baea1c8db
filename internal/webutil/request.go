package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"go_speak_review/internal/model"
	"go_speak_review/internal/srs"
)

// 評価リクエストは小さいので上限を設ける
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードし、バリデーションまで行います
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError(model.CodeValidation, "リクエストボディが必要です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewAppError(model.CodeValidation, "リクエストボディが必要です。", "", model.ErrInvalidInput)
		}
		if errors.Is(err, srs.ErrInvalidRating) {
			return model.NewAppError(model.CodeValidation, "評価は1〜4またはAgain/Hard/Good/Easyで指定してください。", "rating", model.ErrInvalidInput)
		}
		return model.NewAppError(model.CodeValidation, "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	if err := ValidateStruct(dst); err != nil {
		return err
	}
	return nil
}

// QueryInt はクエリパラメータを整数として取得します。未指定の場合は def を返します
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewAppError(model.CodeValidation, name+"は整数で指定してください。", name, model.ErrInvalidInput)
	}
	return v, nil
}
