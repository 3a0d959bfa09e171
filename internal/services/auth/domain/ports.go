package domain

import "context"

// ServicePort defines the service contract for auth
type ServicePort interface {
	// Signup creates an account or fails with a duplicate key error
	Signup(ctx context.Context, in SignupInput) (User, error)

	// Login verifies credentials and returns a signed bearer token
	Login(ctx context.Context, in LoginInput) (string, error)

	// Identify verifies a bearer token and resolves it to a user id
	Identify(ctx context.Context, raw string) (string, error)
}
