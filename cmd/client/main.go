// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-account-service/internal/adapter"
	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const (
	tokenEnv    = "ACCOUNT_TOKEN"
	passwordEnv = "ACCOUNT_PASSWORD"
)

var errUsage = errors.New("usage: client [-a address] [-v] <register|login|profile|version> [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one client command. Command output goes to stdout as JSON;
// logs and errors go to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(stderr)
	address := fs.String("a", "", "Account service address")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewLoggerWithWriter("account-client", stderr, level)
	log.Debug().Str("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).BuildVersion()).Msg("client started")

	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	cfg, err := config.GetClientConfig(*address)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create server adapter")
		return 1
	}

	command, commandArgs := fs.Arg(0), fs.Args()[1:]

	var result any
	switch command {
	case "register":
		result, err = register(ctx, serverAdapter, commandArgs, stdin, stderr)
	case "login":
		result, err = login(ctx, serverAdapter, commandArgs, stdin, stderr)
	case "profile":
		result, err = profile(ctx, serverAdapter, commandArgs, stderr)
	case "version":
		result, err = serverAdapter.Version(ctx)
	default:
		fmt.Fprintln(stderr, errUsage)
		return 2
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 2
		}
		fmt.Fprintf(stderr, "%s: %v\n", command, err)
		return 1
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(result); err != nil {
		log.Error().Err(err).Msg("error writing result")
		return 1
	}

	return 0
}

func register(ctx context.Context, a adapter.ServerAdapter, args []string, stdin io.Reader, stderr io.Writer) (models.Account, error) {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fs.SetOutput(stderr)
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password (prefer "+passwordEnv+" or stdin)")
	email := fs.String("e", "", "Email")
	if err := fs.Parse(args); err != nil {
		return models.Account{}, err
	}

	secret, err := resolvePassword(*password, stdin)
	if err != nil {
		return models.Account{}, err
	}

	return a.Register(ctx, models.Credentials{Username: *username, Password: secret, Email: *email})
}

func login(ctx context.Context, a adapter.ServerAdapter, args []string, stdin io.Reader, stderr io.Writer) (models.LoginResponse, error) {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(stderr)
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password (prefer "+passwordEnv+" or stdin)")
	if err := fs.Parse(args); err != nil {
		return models.LoginResponse{}, err
	}

	secret, err := resolvePassword(*password, stdin)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return a.Login(ctx, models.Credentials{Username: *username, Password: secret})
}

func profile(ctx context.Context, a adapter.ServerAdapter, args []string, stderr io.Writer) (models.Account, error) {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(stderr)
	token := fs.String("token", "", "Identity proof (or "+tokenEnv+")")
	if err := fs.Parse(args); err != nil {
		return models.Account{}, err
	}

	if *token == "" {
		*token = os.Getenv(tokenEnv)
	}

	return a.Profile(ctx, *token)
}

// resolvePassword returns the flag value, then ACCOUNT_PASSWORD, then the
// first line of stdin.
func resolvePassword(flagValue string, stdin io.Reader) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if v := os.Getenv(passwordEnv); v != "" {
		return v, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
