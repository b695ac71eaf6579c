// Package form holds the POST form schemas and their validation rules.
// Validation failures map to the inline messages shown next to each field;
// the submitted input is preserved and re-rendered.
package form

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ImgURLMessage is the inline error for the custom image-URL check, which
// runs in the handler because it needs a network round trip.
const ImgURLMessage = "This is not a valid url for an img."

type Contact struct {
	Name    string `form:"name" validate:"required,min=1"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

type Post struct {
	Title    string `form:"title" validate:"required,min=5"`
	Subtitle string `form:"subtitle" validate:"required,min=10"`
	Body     string `form:"body" validate:"required,min=10"`
	ImgURL   string `form:"img_url"`
}

type Register struct {
	Name           string `form:"name" validate:"required,min=3"`
	Email          string `form:"email" validate:"required,email"`
	Password       string `form:"password" validate:"required,password"`
	RepeatPassword string `form:"repeat_password" validate:"required,eqfield=Password"`
}

type Login struct {
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *Contact) Validate() map[string]string  { return check(f, contactMessages) }
func (f *Post) Validate() map[string]string     { return check(f, postMessages) }
func (f *Register) Validate() map[string]string { return check(f, registerMessages) }
func (f *Login) Validate() map[string]string    { return check(f, loginMessages) }

var contactMessages = map[string]string{
	"Name.required":    "The name should be at least 1 character long.",
	"Name.min":         "The name should be at least 1 character long.",
	"Email.required":   "This is not a valid email address.",
	"Email.email":      "This is not a valid email address.",
	"Message.required": "The message is required.",
}

var postMessages = map[string]string{
	"Title.required":    "The title for the post should be at least 5 characters long.",
	"Title.min":         "The title for the post should be at least 5 characters long.",
	"Subtitle.required": "The subtitle for the post should be at least 10 characters long.",
	"Subtitle.min":      "The subtitle for the post should be at least 10 characters long.",
	"Body.required":     "The body for the post should be at least 10 characters long.",
	"Body.min":          "The body for the post should be at least 10 characters long.",
}

var registerMessages = map[string]string{
	"Name.required":           "Name must be at least 3 characters long.",
	"Name.min":                "Name must be at least 3 characters long.",
	"Email.required":          "This is not a valid email address.",
	"Email.email":             "This is not a valid email address.",
	"Password.required":       "Password must be at least 8 characters long.",
	"Password.password":       "Password must be at least 8 characters long.",
	"RepeatPassword.required": "Passwords must match.",
	"RepeatPassword.eqfield":  "Passwords must match.",
}

var loginMessages = map[string]string{
	"Name.required":     "The name is required.",
	"Password.required": "The password is required.",
}

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("password", passwordRule); err != nil {
		panic(err)
	}
	return v
}

// passwordRule requires at least 8 characters with an upper-case letter,
// a lower-case letter and a digit, and no spaces.
func passwordRule(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 || strings.ContainsRune(s, ' ') {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func check(v any, messages map[string]string) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.StructField()]; seen {
			continue
		}
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = "Invalid value."
		}
		out[fe.StructField()] = msg
	}
	return out
}
