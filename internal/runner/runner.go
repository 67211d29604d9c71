// Package runner turns a validated settings document into the concrete
// invocation of the agent process: command-line flags, process environment,
// and tool permission decisions.
package runner

import (
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/agentrig/agentrig/internal/logging"
	"github.com/agentrig/agentrig/pkg/types"
)

// Invocation is everything the host process needs to launch an agent run.
type Invocation struct {
	// ID uniquely identifies this run in logs.
	ID string
	// Args are the command-line flags derived from the settings.
	Args []string
	// Env is the merged process environment for the run.
	Env map[string]string
}

// New builds an Invocation from a validated settings document. baseEnvFile,
// when non-empty, names a dotenv file whose entries seed the environment
// before the settings env block is overlaid.
func New(s *types.Settings, baseEnvFile string) (*Invocation, error) {
	env, err := BuildEnv(s, baseEnvFile)
	if err != nil {
		return nil, err
	}

	inv := &Invocation{
		ID:   ulid.Make().String(),
		Args: BuildArgs(s),
		Env:  env,
	}

	logging.Debug().
		Str("runID", inv.ID).
		Int("args", len(inv.Args)).
		Int("env", len(inv.Env)).
		Msg("built agent invocation")

	return inv, nil
}

// BuildArgs translates a settings document into agent command-line flags.
func BuildArgs(s *types.Settings) []string {
	var args []string

	if s.Model != "" {
		args = append(args, "--model", s.Model)
	}
	if s.Permissions != nil {
		if len(s.Permissions.Allow) > 0 {
			args = append(args, "--allowedTools", strings.Join(s.Permissions.Allow, ","))
		}
		if len(s.Permissions.Deny) > 0 {
			args = append(args, "--disallowedTools", strings.Join(s.Permissions.Deny, ","))
		}
	}
	if s.EnableAllProjectMcpServers != nil && *s.EnableAllProjectMcpServers {
		args = append(args, "--enable-all-project-mcp-servers")
	}
	if s.IncludeCoAuthoredBy != nil && !*s.IncludeCoAuthoredBy {
		args = append(args, "--no-co-authored-by")
	}

	return args
}
