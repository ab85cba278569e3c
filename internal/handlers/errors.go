package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// writeError maps domain and business errors to a JSON error response.
func writeError(c *gin.Context, err error) {
	var (
		incomplete *domain.IncompleteFieldsError
		invalid    *domain.InvalidFieldError
		conflict   *domain.SlotConflictError
	)

	switch {
	case errors.As(err, &incomplete):
		httperr.WriteDetails(c, http.StatusBadRequest,
			domain.CodeIncompleteFields, incomplete.Error(),
			gin.H{"fields": incomplete.Fields},
		)

	case errors.As(err, &invalid):
		httperr.WriteDetails(c, http.StatusBadRequest,
			domain.CodeInvalidField, invalid.Error(),
			gin.H{"field": invalid.Field, "value": invalid.Value},
		)

	case errors.As(err, &conflict):
		httperr.WriteDetails(c, http.StatusConflict,
			domain.CodeSlotConflict, conflict.Error(),
			gin.H{"doctor": conflict.Doctor, "date": conflict.Date, "time": conflict.Time},
		)

	default:
		if be, ok := httperr.AsBusiness(err); ok {
			status := http.StatusBadRequest
			if be.Code == "doctor_not_found" {
				status = http.StatusNotFound
			}
			httperr.Write(c, status, be.Code, be.Message)
			return
		}
		httperr.Internal(c, "internal_error", "Unexpected error.")
	}
}
