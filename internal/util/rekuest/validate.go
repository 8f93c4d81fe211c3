package rekuest

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/lotto-stats/backend/internal/pkg/apierr"
	"github.com/lotto-stats/backend/internal/util"
)

var (
	Validate = util.NewValidator()

	translator ut.Translator
)

func init() {
	english := en.New()
	translator, _ = ut.New(english, english).GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	registerAlias := func(tag, as string) {
		err := Validate.RegisterTranslation(tag, translator, func(ut.Translator) error {
			return nil
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(as, fe.Field(), fe.Param())
			return t
		})
		if err != nil {
			log.Warn().Err(err).Str("tag", tag).Msg("could not register translation")
		}
	}
	registerAlias("caseinsensitiveoneof", "oneof")

	err := Validate.RegisterTranslation("lottonumber", translator, func(ut ut.Translator) error {
		return ut.Add("lottonumber", "{0} must be a lottery number between 1 and 45", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("lottonumber", fe.Field())
		return t
	})
	if err != nil {
		log.Warn().Err(err).Str("tag", "lottonumber").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))
	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   util.AddSpace(fe.Translate(translator)),
		})
	}
	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidQuery parses the query string of ctx into dest with fiber#QueryParser
// and validates it using the validator singleton. dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(dest)
}

func ValidStruct(dest any) error {
	if errs := validateStruct(dest); errs != nil {
		return apierr.NewInvalidViolations(errs)
	}

	return nil
}

func ValidVar(field any, tag string) error {
	if err := Validate.Var(field, tag); err != nil {
		return apierr.NewInvalidViolations(translate(err.(validator.ValidationErrors)))
	}

	return nil
}
