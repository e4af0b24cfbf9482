package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables passed to extensions, and read as flag defaults.
const (
	EnvHome        = "PESCADOS_HOME"
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "PESCADOS_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external psc-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "psc-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvHome+"="+flagOrEnv(storePath, EnvHome, defaultStore))
	cmd.Env = append(cmd.Env, EnvDatabaseURL+"="+flagOrEnv(databaseURL, EnvDatabaseURL, ""))
	cmd.Env = append(cmd.Env, EnvLogLevel+"="+flagOrEnv(logLevel, EnvLogLevel, defaultLogLevel))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
