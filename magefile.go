//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target when running mage without arguments.
var Default = Build

const (
	binary          = "bin/payments"
	coverageFile    = "coverage.out"
	wireDir         = "internal/app"
	swagGeneralInfo = "cmd/server/docs.go"
	swagOutput      = "cmd/server/docs"
)

// Build builds the server binary.
func Build() error {
	mg.Deps(Generate)
	fmt.Println("Building server...")
	ldflags := "-X github.com/alurafood/payments/internal/app.Version=" + version()
	return sh.Run("go", "build", "-ldflags", ldflags, "-o", binary, "./cmd/server")
}

func version() string {
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	if out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && out != "" {
		return strings.TrimSpace(out)
	}
	return "dev"
}

// Generate runs all code generation (wire, swagger).
func Generate() error {
	mg.Deps(Wire, Swag)
	return nil
}

// Swag regenerates the OpenAPI documentation served on /swagger.
// The general API info lives in cmd/server/docs.go.
func Swag() error {
	fmt.Println("Running swag...")
	return sh.Run("swag", "init",
		"--generalInfo", swagGeneralInfo,
		"--dir", ".",
		"--output", swagOutput,
		"--parseInternal",
	)
}

// Wire regenerates internal/app/wire_gen.go from the injector in wire.go.
func Wire() error {
	fmt.Println("Running wire...")
	if _, err := os.Stat(filepath.Join(wireDir, "wire.go")); err != nil {
		return fmt.Errorf("wire injector: %w", err)
	}
	return sh.Run("wire", "./"+wireDir)
}

// Test runs all tests with the race detector.
func Test() error {
	fmt.Println("Running tests...")
	return sh.Run("go", "test", "-race", "./...")
}

// TestCover runs tests with coverage.
func TestCover() error {
	fmt.Println("Running tests with coverage...")
	return sh.Run("go", "test", "-cover", "-coverprofile="+coverageFile, "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	fmt.Println("Running linter...")
	return sh.Run("golangci-lint", "run", "./...")
}

// Vet runs go vet.
func Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}

// Clean removes the binary and coverage output. Generated wire and swag
// code is committed and left in place.
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.RemoveAll(filepath.Dir(binary)); err != nil {
		return err
	}
	if err := os.Remove(coverageFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println("Running go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// All runs tidy, generate, vet, lint, test, and build.
func All() error {
	mg.SerialDeps(Tidy, Generate, Vet, Lint, Test, Build)
	return nil
}

// Dev builds and runs the server for development.
func Dev() error {
	mg.Deps(Build)
	fmt.Println("Starting server...")
	cmd := exec.Command("./" + binary)
	cmd.Env = append(os.Environ(), "PAYMENTS_DATABASE_DRIVER=memory", "PAYMENTS_ORDER_SERVICE_TRANSPORT=none")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// CI runs the CI pipeline (tidy, generate, vet, test with coverage).
func CI() error {
	mg.SerialDeps(Tidy, Generate, Vet, TestCover)
	return nil
}

// Install installs development tools.
func Install() error {
	fmt.Println("Installing development tools...")

	tools := []string{
		"github.com/google/wire/cmd/wire@latest",
		"github.com/swaggo/swag/cmd/swag@latest",
		"github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	}

	for _, tool := range tools {
		fmt.Printf("  Installing %s\n", tool)
		if err := sh.Run("go", "install", tool); err != nil {
			return fmt.Errorf("installing %s: %w", tool, err)
		}
	}

	return nil
}
