package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_speak_review/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"rating":  "評価",
	"limit":   "取得件数",
	"item_id": "アイテムID",
}

func translatedField(fe validator.FieldError) string {
	if name, ok := fieldNameTranslations[fe.Field()]; ok {
		return name
	}
	return fe.Field()
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// タグごとのメッセージを上書き ({0}=フィールド名, {1}=パラメータ)
	overrides := map[string]string{
		"required": "{0}は必須項目です。",
		"min":      "{0}は{1}以上で指定してください。",
		"max":      "{0}は{1}以下で指定してください。",
	}
	for tag, msg := range overrides {
		tag, msg := tag, msg
		err := Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translatedField(fe), fe.Param())
			return t
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}

// ValidateStruct は構造体のバリデーションを行い、失敗時は VALIDATION_ERROR の AppError を返します
func ValidateStruct(s interface{}) error {
	err := Validator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return NewValidationErrorResponse(verrs)
	}
	return model.NewAppError(model.CodeValidation, "入力値が不正です。", "", model.ErrInvalidInput)
}
