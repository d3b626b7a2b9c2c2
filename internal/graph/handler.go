package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/gqlerrors"

	"employee-api/internal/utils"
)

const maxBodyBytes = 1 << 20

type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

// Handler executes GraphQL requests posted as JSON.
type Handler struct {
	schema graphql.Schema
}

func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		badRequest(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		badRequest(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		badRequest(w, http.StatusBadRequest, "query is required")
		return
	}

	res := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})
	utils.JSON(w, http.StatusOK, res)
}

// badRequest writes a GraphQL-shaped error body for requests that never
// reached execution.
func badRequest(w http.ResponseWriter, status int, msg string) {
	utils.JSON(w, status, &graphql.Result{
		Errors: []gqlerrors.FormattedError{{Message: msg}},
	})
}
