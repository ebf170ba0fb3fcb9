package validation

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the validator behind gin's ShouldBind*.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register makes v report JSON field names and adds the payload aliases.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("pwd", "min=8,max=72") // bcrypt ignores bytes past 72
	v.RegisterAlias("title", "min=1,max=200")
	v.RegisterAlias("bio", "max=2000")
}

// fixed messages by tag; bounded tags are built in formatFieldError.
var messages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"uuid":     "must be a valid UUID version 4",
	"uuid4":    "must be a valid UUID version 4",
	"url":      "must be a valid URL",
	"dive":     "array validation failed",
	"pwd":      "must be between 8 and 72 characters",
	"title":    "must be between 1 and 200 characters",
	"bio":      "must be at most 2000 characters",
}

// ToDetails maps a bind error to field -> message for the error envelope.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return map[string]string{"payload": "request body is empty"}
	}
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"payload": "invalid payload"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	tag, param := fe.Tag(), fe.Param()
	if msg, ok := messages[tag]; ok {
		return msg
	}
	switch tag {
	case "min":
		return "must be at least " + param + unitOf(fe.Kind())
	case "max":
		return "must be at most " + param + unitOf(fe.Kind())
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "required_without":
		return "is required when " + param + " is not present"
	}
	if param != "" {
		return "failed " + tag + "=" + param
	}
	return "failed " + tag
}

// unitOf names what min/max count for a field of kind k.
func unitOf(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return " characters long"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
