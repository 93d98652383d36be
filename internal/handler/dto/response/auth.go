package response

// LoginResponse returns the backend token so the browser can keep it under
// the "token" key as well.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}
