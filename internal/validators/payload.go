// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/MKhiriev/rf-checker/models"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the payloads.
const (
	FieldURLs     = "urls"
	FieldGameName = "game_name"
	FieldText     = "text"
	FieldUserID   = "user_id"
	FieldUsername = "username"
	FieldPassword = "password"
)

// Custom tags.
const (
	tagSafeURL  = "safe_url"
	tagSafeGame = "safe_game"
)

// Markers the API rejects in URLs and game names, compared case-insensitively.
var (
	unsafeURLMarkers  = []string{"<script", "javascript:", "onerror="}
	unsafeGameMarkers = []string{"<", ">", "script", "union", "select"}
)

// structFields maps JSON field names to Go field names per supported type.
var structFields = map[reflect.Type]map[string]string{
	reflect.TypeOf(models.CheckPayload{}): {
		FieldURLs:     "URLs",
		FieldGameName: "GameName",
		FieldText:     "Text",
		FieldUserID:   "UserID",
	},
	reflect.TypeOf(models.AuthRequest{}): {
		FieldUsername: "Username",
		FieldPassword: "Password",
	},
}

// PayloadValidator validates models.CheckPayload and models.AuthRequest with
// go-playground/validator and English messages.
type PayloadValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewPayloadValidator builds the validator with the custom tags and
// translations registered.
func NewPayloadValidator() Validator {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer json tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})

	_ = entranslations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterValidation(tagSafeURL, markerFree(unsafeURLMarkers))
	_ = v.RegisterValidation(tagSafeGame, markerFree(unsafeGameMarkers))

	registerMessage(v, trans, "max", "{0} must be at most {1}", true)
	registerMessage(v, trans, "min", "{0} must be at least {1}", true)
	registerMessage(v, trans, tagSafeURL, "{0} has an invalid URL format", false)
	registerMessage(v, trans, tagSafeGame, "{0} contains forbidden characters", false)

	return &PayloadValidator{validate: v, translator: trans}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. fields restricts validation to the named JSON fields;
// when omitted every field is checked.
func (p *PayloadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CheckPayload:
		return p.validateStruct(ctx, value, fields...)
	case *models.CheckPayload:
		return p.validateStruct(ctx, *value, fields...)

	case models.AuthRequest:
		return p.validateStruct(ctx, value, fields...)
	case *models.AuthRequest:
		return p.validateStruct(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (p *PayloadValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = p.validate.StructCtx(ctx, obj)
	} else {
		names, mapErr := goFieldNames(reflect.TypeOf(obj), fields)
		if mapErr != nil {
			return mapErr
		}
		err = p.validate.StructPartialCtx(ctx, obj, names...)
	}

	return p.translate(err)
}

// translate turns validator output into a *ValidationError for the first
// failing field.
func (p *PayloadValidator) translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Message: fe.Translate(p.translator)}
	}

	return err
}

func goFieldNames(t reflect.Type, fields []string) ([]string, error) {
	known := structFields[t]
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		name, ok := known[f]
		if !ok {
			return nil, ErrUnknownField
		}
		out = append(out, name)
	}
	return out, nil
}

func markerFree(markers []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.ToLower(fl.Field().String())
		for _, m := range markers {
			if strings.Contains(s, m) {
				return false
			}
		}
		return true
	}
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string, withParam bool) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			if withParam {
				msg, _ := ut.T(tag, fe.Field(), fe.Param())
				return msg
			}
			msg, _ := ut.T(tag, fe.Field())
			return msg
		},
	)
}
