package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Document type letters form the middle of the document code, e.g. OPTX(M)-2026-001.
var docTypeRe = regexp.MustCompile(`^[A-Z]{1,3}$`)

// registerCustomValidators installs request validators shared by the quotation DTOs.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
			return docTypeRe.MatchString(fl.Field().String())
		})
	}
}
