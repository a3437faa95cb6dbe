package cmdline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.trai.ch/maven3/internal/core/domain"
	"go.trai.ch/maven3/internal/engine/cmdline"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "   ", want: nil},
		{in: "clean install", want: []string{"clean", "install"}},
		{in: "  clean\tinstall \n deploy ", want: []string{"clean", "install", "deploy"}},
		{in: `-Xmx512m "-Dfoo=a b"`, want: []string{"-Xmx512m", "-Dfoo=a b"}},
		{in: `-Dmsg='hello world'`, want: []string{"-Dmsg=hello world"}},
		{in: `-Dpath=a\ b`, want: []string{`-Dpath=a\`, "b"}},
		{in: "-Dhome=$HOME", want: []string{"-Dhome=$HOME"}},
		{in: "-Dhome=${JAVA_HOME}/bin", want: []string{"-Dhome=${JAVA_HOME}/bin"}},
		{in: `-Dmsg="it's here"`, want: []string{"-Dmsg=it's here"}},
		{in: `-Dq="say \"hi\""`, want: []string{`-Dq=say "hi"`}},
		{in: `"C:\tmp\x"`, want: []string{`C:\tmp\x`}},
		{in: `a "" b`, want: []string{"a", "", "b"}},
		{in: "clean install -Dtest=FooTest;BarTest", want: []string{"clean", "install", "-Dtest=FooTest;BarTest"}},
		{in: "-Dx=a|b", want: []string{"-Dx=a|b"}},
		{in: "-Dx=a&b", want: []string{"-Dx=a&b"}},
		{in: "-Dx=<in> -Dy=>out", want: []string{"-Dx=<in>", "-Dy=>out"}},
		{in: `-Dmaven.repo.local=C:\repo\m2`, want: []string{`-Dmaven.repo.local=C:\repo\m2`}},
		{in: "-Dq=$((1+2))", want: []string{"-Dq=$((1+2))"}},
		{in: "-Dt=$(date)", want: []string{"-Dt=$(date)"}},
		{in: "clean #comment", want: []string{"clean", "#comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := cmdline.Tokenize(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenize_Unbalanced(t *testing.T) {
	for _, in := range []string{`"-Dfoo=bar`, `-Dfoo='bar`} {
		_, err := cmdline.Tokenize(in)
		require.ErrorIs(t, err, domain.ErrInvalidArguments, in)
		require.True(t, domain.IsConfigurationError(err))
	}
}
