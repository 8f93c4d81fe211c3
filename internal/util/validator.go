package util

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/guregu/null.v3"

	"github.com/lotto-stats/backend/internal/pkg/drawstats"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("caseinsensitiveoneof", caseInsensitiveOneOf)
	_ = validate.RegisterValidation("lottonumber", lottoNumber)
	validate.RegisterCustomTypeFunc(nullIntValuer, null.Int{})
	validate.RegisterCustomTypeFunc(nullStringValuer, null.String{})

	return validate
}

func caseInsensitiveOneOf(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	candidates := strings.Split(strings.ToLower(fl.Param()), " ")
	for _, v := range candidates {
		if val == v {
			return true
		}
	}
	return false
}

func lottoNumber(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= drawstats.MinNumber && n <= drawstats.MaxNumber
}

func nullIntValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.Int); ok {
		if !valuer.Valid {
			return nil
		}
		return valuer.Int64
	}

	return nil
}

func nullStringValuer(field reflect.Value) any {
	if valuer, ok := field.Interface().(null.String); ok {
		if !valuer.Valid {
			return nil
		}
		return valuer.String
	}

	return nil
}

// AddSpace separates a run-together camelCase field name in validator
// messages, e.g. "bucketWidth must be" becomes "bucket width must be".
func AddSpace(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
