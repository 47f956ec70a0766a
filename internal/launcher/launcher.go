// Package launcher implements the deployment startup wrapper: it verifies
// the required configuration is present, provisions the declared
// dependencies and then replaces itself with the server process.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"calendar-assistant/internal/utils"

	log "github.com/sirupsen/logrus"
)

const (
	defaultPackageManager = "pip"
	defaultServerBinary   = "/app/server"
	bindHost              = "0.0.0.0"
	workerCount           = "1"
)

// requiredVars are checked in order; the first missing one aborts the launch.
var requiredVars = []string{
	utils.GoogleApiKeyEnv,
	utils.GoogleServiceAccountEnv,
}

// Launcher runs the three launch steps. The process hooks are swappable so
// tests can observe the commands without spawning processes.
type Launcher struct {
	Getenv func(string) string
	Out    io.Writer

	// RunCommand runs a provisioning command to completion.
	RunCommand func(name string, args ...string) error

	// ExecProcess replaces the current process image. It only returns on error.
	ExecProcess func(argv0 string, argv []string, envv []string) error
}

// New returns a Launcher wired to the real environment and process table.
func New() *Launcher {
	return &Launcher{
		Getenv:      os.Getenv,
		Out:         os.Stderr,
		RunCommand:  runCommand,
		ExecProcess: syscall.Exec,
	}
}

// Run executes preflight, provisioning and handoff in order and returns the
// process exit code. On a successful handoff it never returns, the process
// image has been replaced.
func (l *Launcher) Run() int {
	if err := l.Preflight(); err != nil {
		fmt.Fprintln(l.Out, "Error: "+err.Error())
		return 1
	}

	if err := l.Provision(); err != nil {
		fmt.Fprintln(l.Out, "Error: "+err.Error())
		return exitStatus(err)
	}

	if err := l.Handoff(); err != nil {
		fmt.Fprintln(l.Out, "Error: "+err.Error())
		return 1
	}

	return 0
}

// Preflight verifies the required environment variables are set and
// non-empty. Missing configuration is fatal, failing here beats failing deep
// inside the server.
func (l *Launcher) Preflight() error {
	for _, name := range requiredVars {
		if l.Getenv(name) == "" {
			return fmt.Errorf("%s is not set", name)
		}
	}

	return nil
}

// Provision upgrades the package manager and installs the dependency
// manifest. Without a configured manifest the step is skipped.
func (l *Launcher) Provision() error {
	manifest := l.Getenv(utils.DepsManifestEnv)
	if manifest == "" {
		log.Info("No dependency manifest configured, skipping provisioning")
		return nil
	}

	packageManager := l.Getenv(utils.PackageManagerEnv)
	if packageManager == "" {
		packageManager = defaultPackageManager
	}

	log.Info("Upgrading package manager")
	if err := l.RunCommand(packageManager, "install", "--upgrade", packageManager); err != nil {
		return fmt.Errorf("upgrading %s: %w", packageManager, err)
	}

	log.Info("Installing dependencies from ", manifest)
	if err := l.RunCommand(packageManager, "install", "-r", manifest); err != nil {
		return fmt.Errorf("installing %s: %w", manifest, err)
	}

	return nil
}

// Handoff replaces the launcher with the server process bound to
// 0.0.0.0:$PORT with a single worker. An unset PORT is reported instead of
// handing an empty bind address to the server.
func (l *Launcher) Handoff() error {
	port := l.Getenv(utils.PortEnv)
	if port == "" {
		return errors.New(utils.PortEnv + " is not set, refusing to bind an empty address")
	}

	target := l.Getenv(utils.ServerBinaryEnv)
	if target == "" {
		target = defaultServerBinary
	}

	argv := []string{target, "--bind", bindHost + ":" + port, "--workers", workerCount}
	log.Info("Handing off to ", target)
	return l.ExecProcess(target, argv, os.Environ())
}

// runCommand runs a command with inherited standard streams.
func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// exitStatus propagates the exit code of a failed provisioning command.
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	return 1
}
