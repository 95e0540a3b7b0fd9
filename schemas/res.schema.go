package schemas

// Res is the generic response body with a user facing message
type Res struct {
	Message string `json:"message"`
}
