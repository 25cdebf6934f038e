package title

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/altora/backoffice/pkg/constants"
	"github.com/altora/backoffice/pkg/intl"
	"github.com/altora/backoffice/pkg/serrors"
)

type CreateDTO struct {
	Name string `validate:"required,min=2,max=255"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

// Ok validates the DTO and returns localized error messages keyed by field.
func (d *CreateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	d.Normalize()
	return validateTitleFields(d, l)
}

func (d *CreateDTO) ToEntity() Title {
	return New(d.Name)
}

type UpdateDTO struct {
	Name string `validate:"required,min=2,max=255"`
}

func (d *UpdateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

func (d *UpdateDTO) Ok(ctx context.Context) (map[string]string, bool) {
	l := intl.MustUseLocalizer(ctx)
	d.Normalize()
	return validateTitleFields(d, l)
}

// ToEntity applies the update on top of the stored entity.
func (d *UpdateDTO) ToEntity(existing Title) Title {
	return existing.WithName(d.Name)
}

func validateTitleFields(dto any, l *i18n.Localizer) (map[string]string, bool) {
	errs := constants.Validate.Struct(dto)
	if errs == nil {
		return map[string]string{}, true
	}
	validatorErrs := errs.(validator.ValidationErrors)
	fieldErrors := serrors.ProcessValidatorErrors(validatorErrs, func(field string) string {
		switch field {
		case "Name":
			return fmt.Sprintf("Titles.Fields.%s", field)
		default:
			return ""
		}
	})
	return serrors.LocalizeValidationErrors(fieldErrors, l), false
}
