package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/empdash/empdash-backend-go/internal/domain/employee"
	appGraphQL "github.com/empdash/empdash-backend-go/internal/handler/graphql"
	"github.com/empdash/empdash-backend-go/internal/handler/http/response"
	graphqlgo "github.com/graph-gophers/graphql-go"
)

type GraphQLHandler interface {
	Query(w http.ResponseWriter, r *http.Request)
}

type GraphQLHandlerImpl struct {
	schema             *graphqlgo.Schema
	employeeRepository employee.EmployeeRepository
}

func NewGraphQLHandler(schema *graphqlgo.Schema, employeeRepository employee.EmployeeRepository) GraphQLHandler {
	return &GraphQLHandlerImpl{
		schema:             schema,
		employeeRepository: employeeRepository,
	}
}

// Query implements GraphQLHandler. Every request gets a fresh employee
// loader; the loader is dropped with the request context.
func (h *GraphQLHandlerImpl) Query(w http.ResponseWriter, r *http.Request) {
	var params struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		slog.Error("GraphQL decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	ctx := appGraphQL.WithLoader(r.Context(), appGraphQL.NewEmployeeLoader(h.employeeRepository))
	resp := h.schema.Exec(ctx, params.Query, params.OperationName, params.Variables)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("GraphQL encode error", "error", err)
	}
}
