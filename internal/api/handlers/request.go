package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"reflect"
	"strings"

	"github.com/dom/battle-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// Power is decoded as a float so that 12.0 is accepted and 12.5 is reported
// as a field error instead of a decode failure.
type ParticipantRequest struct {
	Name  *string  `json:"name" validate:"required,min=1,max=100"`
	Power *float64 `json:"power" validate:"required,whole,min=0,max=1000"`
}

type StartBattleRequest struct {
	Participant1 *ParticipantRequest `json:"participant1" validate:"required"`
	Participant2 *ParticipantRequest `json:"participant2" validate:"required"`
}

func (p *ParticipantRequest) toDomain() domain.Participant {
	return domain.Participant{Name: *p.Name, Power: int(*p.Power)}
}

func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("whole", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Float32, reflect.Float64:
			return f.Float() == math.Trunc(f.Float())
		}
		return true
	})
	return v
}

// decodeStartBattleRequest returns the two participants, or a
// *domain.ValidationError naming every field that failed.
func decodeStartBattleRequest(r *http.Request, v *validator.Validate) (domain.Participant, domain.Participant, error) {
	var req StartBattleRequest
	verr := &domain.ValidationError{}

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		verr.Add(decodeErrorField(err), decodeErrorMessage(err))
		return domain.Participant{}, domain.Participant{}, verr
	}

	if err := v.Struct(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Participant{}, domain.Participant{}, fmt.Errorf("validate request: %w", err)
		}
		for _, fe := range fieldErrs {
			verr.Add(fieldPath(fe), fieldMessage(fe))
		}
		return domain.Participant{}, domain.Participant{}, verr
	}

	return req.Participant1.toDomain(), req.Participant2.toDomain(), nil
}

// fieldPath drops the root struct name: "StartBattleRequest.participant1.power" -> "participant1.power".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "field required"
	case "whole":
		return "must be an integer"
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be greater than or equal to " + fe.Param()
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be less than or equal to " + fe.Param()
	}
	return "failed on " + fe.Tag()
}

func decodeErrorField(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field
	}
	return "body"
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return "field required"
	case errors.As(err, &typeErr):
		return "must be " + jsonTypeName(typeErr.Type)
	default:
		return "invalid JSON"
	}
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "a number"
	case reflect.Struct, reflect.Map:
		return "an object"
	}
	return "a " + t.Kind().String()
}
