package laos

import "fmt"

func (e *APIError) Error() string {
	return fmt.Sprintf("laos error code: %s, status: %d, description: %s", e.Code, e.StatusCode, e.Message)
}
