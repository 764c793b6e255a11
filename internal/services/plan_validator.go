package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tourwise/internal/models/db_models"
	"tourwise/pkg/utils"
)

var planValidate = newPlanValidator()

func newPlanValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidatePlan rejects plans that do not satisfy the persisted itinerary shape.
func ValidatePlan(plan db_models.ItineraryPlan) error {
	return validationError(planValidate.Struct(plan))
}

// ValidateDays applies the day and stop rules to a replacement day list.
func ValidateDays(days []db_models.Day) error {
	if len(days) == 0 {
		return fmt.Errorf("%w: days must contain at least one day", utils.ErrValidation)
	}
	for _, day := range days {
		if err := validationError(planValidate.Struct(day)); err != nil {
			return err
		}
	}
	return nil
}

func ValidateBudget(b *db_models.Budget) error {
	if b == nil {
		return nil
	}
	return validationError(planValidate.Struct(b))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", utils.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Errorf("%w: %s", utils.ErrValidation, strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i != -1 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
