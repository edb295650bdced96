// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Validate runs validator/v10 over a DTO and, on failure, writes the 422
// envelope immediately. Callers: if err := helper.Validate(c, &req); err != nil { return err }
func Validate(c *fiber.Ctx, s any) error {
	if err := validate.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return JsonError(c, fiber.StatusBadRequest, "invalid input")
		}
		fieldErrors := map[string][]string{}
		for _, fe := range ve {
			fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
		}
		return JsonValidationError(c, fieldErrors)
	}
	return nil
}
