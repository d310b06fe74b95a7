package http

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lorebel/inventario-api/internal/application/dto"
)

var validate = validator.New()

// Alfanumérico + guion bajo, sin espacios ni símbolos.
var usernameRegexp = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

func init() {
	// Registrar decimal.Decimal como tipo numérico para que tags como
	// min=0 funcionen sin paniquear ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
}

// bindAndValidate parsea el body JSON y corre las reglas del DTO.
// Devuelve false y escribe la respuesta de error si algo falla: el handler
// debe retornar nil de inmediato sin escribir otra respuesta.
func bindAndValidate(c *fiber.Ctx, req any) bool {
	if err := c.BodyParser(req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
			Success: false,
			Message: "Cuerpo de la petición inválido",
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var detalles []string
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				detalles = append(detalles, fe.Field()+": "+fe.Tag())
			}
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.RespuestaError{
			Success: false,
			Message: "Errores de validación",
			Error:   strings.Join(detalles, ", "),
		})
		return false
	}
	return true
}
