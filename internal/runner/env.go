package runner

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"

	"github.com/agentrig/agentrig/pkg/types"
)

// BuildEnv merges an optional base dotenv file with the settings env block.
// Settings entries win over base entries of the same name.
func BuildEnv(s *types.Settings, baseEnvFile string) (map[string]string, error) {
	env := make(map[string]string)

	if baseEnvFile != "" {
		base, err := godotenv.Read(baseEnvFile)
		if err != nil {
			return nil, fmt.Errorf("reading base env file %s: %w", baseEnvFile, err)
		}
		for k, v := range base {
			env[k] = v
		}
	}

	for k, v := range s.Env {
		env[k] = v
	}

	return env, nil
}

// EnvSlice renders an environment map as sorted KEY=value pairs, the form
// exec.Cmd expects.
func EnvSlice(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
