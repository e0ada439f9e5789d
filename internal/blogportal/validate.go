package blogportal

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v
}

// validateStruct runs the struct validation rules and converts the first
// failure into a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	fe := fieldErrors[0]
	return newValidationError(fe.Field(), reason(fe.Tag(), fe.Param()))
}

func validateEmail(email string) error {
	if err := validate.Var(email, "required,email,max=120"); err != nil {
		return newValidationError("email", "must be a valid email address")
	}

	return nil
}

func reason(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	default:
		return "is invalid"
	}
}

func (in *RegisterInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
}

func (in RegisterInput) validate() error {
	if err := validateStruct(in); err != nil {
		return err
	}

	if len(in.Password) > maxPasswordBytes {
		return newValidationError("password", fmt.Sprintf("must be at most %d bytes", maxPasswordBytes))
	}

	return nil
}

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	in.Excerpt = strings.TrimSpace(in.Excerpt)

	names := make([]string, 0, len(in.TagNames))
	for _, name := range in.TagNames {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	in.TagNames = names
}

func (in PostInput) validate() error {
	return validateStruct(in)
}

func (f *PostFilter) normalize() {
	f.Search = strings.TrimSpace(f.Search)
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
	// keeps (Page-1)*PageSize from overflowing; such a page is simply empty
	if maxPage := math.MaxInt / f.PageSize; f.Page > maxPage {
		f.Page = maxPage
	}
}
