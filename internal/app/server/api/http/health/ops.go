package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-status",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Service health",
		Description: "Reports whether the service and its database are reachable.",
		Tags:        []string{"Health"},
	}
}
