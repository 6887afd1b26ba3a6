package servers_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"freight/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(context.Background()))

	assert.Equal(t, "Freight", swagger.Info.Title)
	for _, p := range []string{
		"/tariffs/quote",
		"/transitions/check",
		"/runs",
		"/runs/{runId}",
		"/runs/{runId}/status",
		"/runs/{runId}/parcels",
		"/runs/{runId}/parcels/{parcelId}",
		"/parcels",
		"/parcels/{parcelId}/status",
		"/parcels/bulk-status",
		"/reconciliations",
	} {
		assert.NotNil(t, swagger.Paths.Find(p), p)
	}
}

func TestGetSwagger_NumbersAreDoubles(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	fields := map[string][]string{
		"TariffQuoteRequest": {"weight", "distance"},
		"NewRun":             {"maxWeight", "distance"},
		"NewParcel":          {"weight"},
	}
	for schema, props := range fields {
		ref := swagger.Components.Schemas[schema]
		require.NotNil(t, ref, schema)
		for _, prop := range props {
			require.Contains(t, ref.Value.Properties, prop, schema)
			assert.Equal(t, "double", ref.Value.Properties[prop].Value.Format, "%s.%s", schema, prop)
		}
	}
}

func TestGenerateDirective_ToolIsDeclared(t *testing.T) {
	directive, err := os.ReadFile("docs.go")
	require.NoError(t, err)
	require.Contains(t, string(directive), "go tool oapi-codegen")

	gomod, err := os.ReadFile("../../../go.mod")
	require.NoError(t, err)
	assert.True(t,
		strings.Contains(string(gomod), "tool github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen"),
		"go.mod must declare the oapi-codegen tool used by go:generate",
	)
}
