package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// FilterToModel re-shapes payload into the response model T. Fields T does
// not declare are dropped.
func FilterToModel[T any](payload interface{}) (T, error) {
	var model T

	raw, err := json.Marshal(payload)
	if err != nil {
		return model, fmt.Errorf("failed to encode response payload: %w", err)
	}
	if err := json.Unmarshal(raw, &model); err != nil {
		return model, fmt.Errorf("failed to decode response payload into model: %w", err)
	}

	return model, nil
}

// RespondWithModel sends payload as JSON after filtering it through the
// response model T.
func RespondWithModel[T any](w http.ResponseWriter, statusCode int, payload interface{}) {
	model, err := FilterToModel[T](payload)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "failed to build response")
		return
	}
	RespondWithJSON(w, statusCode, model)
}
