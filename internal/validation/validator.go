package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mini-blog-api/internal/models"
)

// FieldErrors maps an input field name to a human-readable failure message.
// An empty map means the input is valid.
type FieldErrors map[string]string

// Validator checks article and comment input before writes
type Validator struct {
	validate *validator.Validate
	labels   map[string]string
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{
		validate: v,
		labels: map[string]string{
			"title":      "Title",
			"content":    "Content",
			"author":     "Author",
			"article_id": "Article ID",
		},
	}
}

// ValidateArticle validates article input. The same rules apply to create and update.
func (v *Validator) ValidateArticle(input *models.ArticleInput) FieldErrors {
	return v.check(input)
}

// ValidateComment validates comment input. Whether article_id or parent_id
// refer to existing rows is not checked here.
func (v *Validator) ValidateComment(input *models.CommentInput) FieldErrors {
	return v.check(input)
}

// check runs the struct rules and collects every violation, one message per field
func (v *Validator) check(input any) FieldErrors {
	errs := FieldErrors{}

	err := v.validate.Struct(input)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range verrs {
		field := fe.Field()
		if _, exists := errs[field]; exists {
			continue
		}
		errs[field] = v.message(fe)
	}
	return errs
}

func (v *Validator) message(fe validator.FieldError) string {
	label, ok := v.labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		if fe.Field() == "author" {
			return fmt.Sprintf("Author name must be less than %s characters", fe.Param())
		}
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
