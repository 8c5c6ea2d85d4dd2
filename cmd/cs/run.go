package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bikramtuladhar/claude-code-resumer/cli"
	"github.com/bikramtuladhar/claude-code-resumer/config"
	pexec "github.com/bikramtuladhar/claude-code-resumer/exec"
	"github.com/bikramtuladhar/claude-code-resumer/git"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
	"github.com/bikramtuladhar/claude-code-resumer/paths"
	"github.com/bikramtuladhar/claude-code-resumer/process"
	"github.com/bikramtuladhar/claude-code-resumer/registry"
	"github.com/bikramtuladhar/claude-code-resumer/session"
	"github.com/bikramtuladhar/claude-code-resumer/ui"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	outcome := cli.Classify(args)

	log := logger.WithComponent("cmd")
	log.Debug("classified", "kind", outcome.Kind.String(), "args", args)

	switch outcome.Kind {
	case cli.KindError:
		return outcome.Err
	case cli.KindVersion:
		fmt.Fprintln(out, versionString())
		return nil
	case cli.KindHelp:
		return runHelp(out)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.Debug)

	switch outcome.Kind {
	case cli.KindList:
		return runList(out, registry.New(cfg.RegistryPath))
	case cli.KindClear:
		return runClear(out, registry.New(cfg.RegistryPath))
	case cli.KindSelfUpdate:
		return process.Upgrade(ctx, pexec.NewRealExecutor(), cfg.UpgradeArgv(), out)
	case cli.KindPassthrough:
		return launch(ctx, cfg, outcome.Args)
	}
	return runSession(ctx, out, cfg, outcome.Options)
}

// runHelp works with a broken config file so the user can still read about it.
func runHelp(out io.Writer) error {
	binary := "claude"
	loc := cli.Locations{Log: logger.Path(), XDG: !paths.IsLegacyLayout()}
	if cfg, err := config.Load(); err == nil {
		binary = cfg.ClaudeBinary
		loc.Registry = cfg.RegistryPath
		loc.Config = cfg.FilePath()
	}
	cli.WriteHelp(out, loc, cli.CheckAll(cli.DefaultPrerequisites(binary)), ui.ColorEnabled(os.Stdout))
	return nil
}

func runList(out io.Writer, reg *registry.Registry) error {
	set := reg.Load()
	if set.Len() == 0 {
		fmt.Fprintln(out, "No sessions in database.")
		return nil
	}

	fmt.Fprintf(out, "Sessions (%d):\n", set.Len())
	for _, id := range set.Sorted() {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return nil
}

func runClear(out io.Writer, reg *registry.Registry) error {
	result, err := reg.Clear()
	if err != nil {
		return err
	}

	switch result {
	case registry.AlreadyEmpty:
		fmt.Fprintln(out, "Session database already empty.")
	default:
		fmt.Fprintln(out, "Session database cleared.")
	}
	return nil
}

func runSession(ctx context.Context, out io.Writer, cfg *config.Config, opts cli.Options) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("%w: %v", session.ErrNoWorkspace, err)
	}

	workspace, branch, err := session.Locate(ctx, git.NewGitService(), cwd, cfg.RequireBranch)
	if err != nil {
		return err
	}

	reg := registry.New(cfg.RegistryPath)
	resolver := session.NewResolver(reg, cfg.SessionNamespace())
	plan, err := resolver.Plan(session.Input{Workspace: workspace, Branch: branch, Options: opts})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, plan.Status(ui.ColorEnabled(os.Stdout)))
	if opts.DryRun {
		return nil
	}

	// Nothing is recorded for a session claude cannot be started for.
	if err := checkClaude(cfg); err != nil {
		return err
	}
	resolver.Apply(plan)
	logger.WithSession(plan.ID).Info("launching", "name", plan.Name, "action", plan.Action.String())

	fmt.Fprintln(out, plan.Announcement())
	return launch(ctx, cfg, plan.Args)
}

func checkClaude(cfg *config.Config) error {
	if res := cli.Check(cli.ClaudePrerequisite(cfg.ClaudeBinary)); !res.Found {
		return &process.LaunchError{Binary: cfg.ClaudeBinary, Err: process.ErrNotFound}
	}
	return nil
}

func launch(ctx context.Context, cfg *config.Config, args []string) error {
	if err := checkClaude(cfg); err != nil {
		return err
	}

	launcher, err := process.ForMode(cfg.LaunchMode, pexec.NewRealExecutor())
	if err != nil {
		return err
	}

	code, err := launcher.Launch(ctx, cfg.ClaudeBinary, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return exitStatus(code)
	}
	return nil
}
