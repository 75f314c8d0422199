package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// Environment variables read as flag defaults, and passed to extensions.
const (
	EnvBookFile   = "MCS_BOOK"
	EnvConfigFile = "MCS_CONFIG"
	EnvCurrency   = "MCS_CURRENCY"
	EnvVerbose    = "MCS_VERBOSE"
	EnvRaw        = "MCS_RAW"

	// EnvFREDKey is the FRED API key used when the config has none.
	EnvFREDKey = "FRED_API_KEY"
)

// RunExtension attempts to find and execute an external mcs-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "mcs-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		Logger().Debug("no extension", zap.String("command", externalCmdName), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// global flags are passed as environment variables.
	cmd.Env = append(os.Environ(),
		EnvBookFile+"="+*bookFile,
		EnvConfigFile+"="+*configFile,
		EnvCurrency+"="+*currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
		EnvRaw+"="+strconv.FormatBool(*raw),
	)

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
