package graph

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"employee-api/internal/service"
)

func TestFail_PassesServiceErrors(t *testing.T) {
	err := fail(context.Background(), "employees", service.ErrNotAuthenticated)

	var ge *gqlError
	assert.True(t, errors.As(err, &ge))
	assert.Equal(t, "Not authenticated", ge.Error())
	assert.Equal(t, map[string]interface{}{"code": "UNAUTHENTICATED"}, ge.Extensions())
}

func TestFail_MasksInternalErrors(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).WithContext(context.Background())

	err := fail(ctx, "addEmployee", errors.New("pq: connection reset"))

	assert.Equal(t, "internal server error", err.Error())
	assert.NotContains(t, err.Error(), "connection reset")
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.(*gqlError).Extensions()["code"])
	assert.Contains(t, buf.String(), "connection reset")
	assert.Contains(t, buf.String(), "addEmployee")
}

func TestArgs(t *testing.T) {
	args := map[string]interface{}{
		"name":     "x",
		"age":      float64(7),
		"score":    3,
		"subjects": []interface{}{"a", nil, "b"},
	}
	assert.Equal(t, "x", stringArg(args, "name", "d"))
	assert.Equal(t, "d", stringArg(args, "missing", "d"))
	assert.Equal(t, 7, intArg(args, "age", 0))
	assert.Nil(t, optInt(args, "missing"))
	assert.Equal(t, 3.0, *optFloat(args, "score"))
	assert.Equal(t, []string{"a", "b"}, *optStrings(args, "subjects"))
	assert.Nil(t, optStrings(args, "missing"))
}
