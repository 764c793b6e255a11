package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"tourwise/internal/services"
	"tourwise/pkg/middleware"
	"tourwise/pkg/utils"
)

// viewerFrom reads the identity placed on the context by the JWT middlewares.
func viewerFrom(c *gin.Context) services.Viewer {
	return services.Viewer{
		ID:      c.GetString(middleware.ContextUserID),
		IsAdmin: c.GetString(middleware.ContextRole) == utils.RoleAdmin,
	}
}

func respondBindError(c *gin.Context, err error) {
	utils.RespondError(c, http.StatusBadRequest, bindErrorMessage(err))
}

// bindErrorMessage turns validator failures into "field: rule" pairs.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s is %s", lowerFirst(fe.Field()), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		parts = append(parts, msg)
	}
	return "Invalid request: " + strings.Join(parts, ", ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
