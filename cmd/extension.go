package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/inventory/config"
	"github.com/rs/zerolog/log"
)

// ExtensionPrefix is prepended to an unknown subcommand to find its binary in PATH.
const ExtensionPrefix = "inv-"

// Environment variables passed to extensions, resolved from the settings.
var (
	EnvFile     = config.Env(config.KeyFile)
	EnvCurrency = config.Env(config.KeyCurrency)
	EnvLogLevel = config.Env(config.KeyLogLevel)
)

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("external command not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = extensionEnv()

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv is the current environment plus the resolved settings.
func extensionEnv() []string {
	env := os.Environ()
	env = append(env, EnvFile+"="+settings.File)
	env = append(env, EnvCurrency+"="+settings.Currency)
	env = append(env, EnvLogLevel+"="+settings.LogLevel)
	return env
}
