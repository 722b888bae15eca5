package responses

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Message: message,
	})
}

func SendSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// FieldErrors flattens validator errors into field -> message for inline
// rendering next to form inputs.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out[""] = err.Error()
		return out
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			out[fe.Field()] = "This field is required"
		case "max":
			out[fe.Field()] = "Must be at most " + fe.Param() + " characters"
		case "min":
			out[fe.Field()] = "Must be at least " + fe.Param()
		case "gte":
			out[fe.Field()] = "Must be at least " + fe.Param()
		case "lte":
			out[fe.Field()] = "Must be at most " + fe.Param()
		default:
			out[fe.Field()] = "Invalid value"
		}
	}
	return out
}
