package entity

// Identity is the verified caller of a request
type Identity struct {
	UID           string
	Email         string
	EmailVerified bool
}
