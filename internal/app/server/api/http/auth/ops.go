package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Register a new user",
		Description:   "Creates a user account and returns a bearer token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}
}

func loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Authenticate a user",
		Description: "Verifies credentials and returns a bearer token.",
		Tags:        []string{"Auth"},
	}
}

func profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-profile",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Current user profile",
		Tags:        []string{"Auth"},
		Security: []map[string][]string{
			{"bearer": {}},
		},
	}
}
