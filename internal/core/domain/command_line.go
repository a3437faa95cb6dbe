package domain

import (
	"slices"
	"strings"
)

// CommandLine is a fully assembled process invocation.
// It is built fresh for every invocation and not modified once handed to a runner.
type CommandLine struct {
	Args []string
	Env  map[string]string
	Dir  string
}

// Environ renders Env as sorted KEY=VALUE entries.
func (c *CommandLine) Environ() []string {
	env := make([]string, 0, len(c.Env))
	for k, v := range c.Env {
		env = append(env, k+"="+v)
	}
	slices.Sort(env)
	return env
}

// String renders the arguments the way a POSIX shell would need them quoted.
func (c *CommandLine) String() string {
	quoted := make([]string, len(c.Args))
	for i, arg := range c.Args {
		quoted[i] = quoteArg(arg)
	}
	return strings.Join(quoted, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n\"'\\$`*?[]{}()<>|&;#~") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}
