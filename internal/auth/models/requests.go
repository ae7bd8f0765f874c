package models

// RegisterRequest is the POST /register body. Field presence is deliberately
// not validated at the transport layer; the credential store enforces
// required-ness and uniqueness, and any persistence failure surfaces as a
// generic registration error.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}
