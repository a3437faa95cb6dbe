package resolver_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/engine/resolver"
)

func TestResolve(t *testing.T) {
	installs := []domain.Installation{
		{Name: "M2", Home: "/opt/maven2"},
		{Name: "M3", Home: "/opt/maven3"},
	}

	tests := []struct {
		name     string
		lookup   string
		installs []domain.Installation
		want     *domain.Installation
	}{
		{name: "exact match", lookup: "M3", installs: installs, want: &installs[1]},
		{name: "first entry matches", lookup: "M2", installs: installs, want: &installs[0]},
		{name: "unknown name falls back to first", lookup: "M4", installs: installs, want: &installs[0]},
		{name: "empty name falls back to first", lookup: "", installs: installs, want: &installs[0]},
		{name: "empty set", lookup: "M3", installs: nil, want: nil},
		{name: "empty set and empty name", lookup: "", installs: []domain.Installation{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.Resolve(tt.lookup, tt.installs)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestResolve_ReturnsCopy(t *testing.T) {
	installs := []domain.Installation{{Name: "M3", Home: "/opt/maven3"}}

	got := resolver.Resolve("M3", installs)
	require.NotNil(t, got)
	got.Home = "/elsewhere"

	assert.Equal(t, "/opt/maven3", installs[0].Home)
}

func TestResolve_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("unmatched name on non-empty set yields the first entry", prop.ForAll(
		func(n int) bool {
			installs := make([]domain.Installation, n)
			for i := range installs {
				installs[i] = domain.Installation{Name: fmt.Sprintf("maven-%d", i), Home: fmt.Sprintf("/opt/m%d", i)}
			}
			got := resolver.Resolve("not-registered", installs)
			return got != nil && *got == installs[0]
		},
		gen.IntRange(1, 20),
	))

	properties.Property("registered name yields that entry", prop.ForAll(
		func(n, pick int) bool {
			installs := make([]domain.Installation, n)
			for i := range installs {
				installs[i] = domain.Installation{Name: fmt.Sprintf("maven-%d", i), Home: fmt.Sprintf("/opt/m%d", i)}
			}
			idx := pick % n
			got := resolver.Resolve(installs[idx].Name, installs)
			return got != nil && *got == installs[idx]
		},
		gen.IntRange(1, 20),
		gen.IntRange(0, 1000),
	))

	properties.Property("empty set yields nil", prop.ForAll(
		func(name string) bool {
			return resolver.Resolve(name, nil) == nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
