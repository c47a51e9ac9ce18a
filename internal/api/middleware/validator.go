package middleware

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"shiftboard/internal/calendar"
)

// RegisterValidators 注册排班相关的自定义校验规则
//
//   - clock：HH:MM 24 小时制
//   - viewmode：day / week / month / agenda
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("clock", validateClock); err != nil {
		return err
	}
	return v.RegisterValidation("viewmode", validateViewMode)
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func validateViewMode(fl validator.FieldLevel) bool {
	_, ok := calendar.ParseViewMode(fl.Field().String())
	return ok
}
