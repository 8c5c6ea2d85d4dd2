package session

import (
	"fmt"
	"slices"

	"github.com/bikramtuladhar/claude-code-resumer/claude"
	"github.com/bikramtuladhar/claude-code-resumer/cli"
	"github.com/bikramtuladhar/claude-code-resumer/identity"
	"github.com/bikramtuladhar/claude-code-resumer/logger"
	"github.com/bikramtuladhar/claude-code-resumer/ui"
)

// Registry is the subset of the session registry the resolver needs.
type Registry interface {
	Contains(id string) bool
	Save(id string)
	Remove(id string)
}

// Action is what a plan does with the session.
type Action int

const (
	ActionNew Action = iota
	ActionExists
	ActionForceCreate
	ActionResumeWithPicker
)

// String returns the label shown in the status block.
func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionExists:
		return "exists"
	case ActionForceCreate:
		return "force-create"
	case ActionResumeWithPicker:
		return "resume-with-picker"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Input is everything a plan is computed from.
type Input struct {
	Workspace string
	// Branch is empty outside a git repository.
	Branch  string
	Options cli.Options
}

// Plan is a resolved session and the claude command line that opens it.
type Plan struct {
	Name   string
	ID     string
	Action Action
	// Args is the full claude argument vector.
	Args     []string
	NoBranch bool

	remove  bool
	persist bool
}

// Resolver turns an Input into a Plan.
type Resolver struct {
	registry  Registry
	namespace identity.Namespace
}

// NewResolver creates a resolver deriving identifiers under ns.
func NewResolver(reg Registry, ns identity.Namespace) *Resolver {
	return &Resolver{registry: reg, namespace: ns}
}

// Plan resolves in without modifying the registry.
func (r *Resolver) Plan(in Input) (*Plan, error) {
	if in.Workspace == "" {
		return nil, ErrNoWorkspace
	}

	opts := in.Options
	name := identity.SessionName(in.Workspace, in.Branch)
	id := identity.Derive(r.namespace, name)

	// A reset forgets the id before the lookup, so it always plans as absent.
	exists := !opts.Reset && r.registry.Contains(id)

	plan := &Plan{
		Name:     name,
		ID:       id,
		NoBranch: in.Branch == "",
		remove:   opts.Reset,
	}

	mode := claude.ModeCreate
	switch {
	case opts.Resume:
		plan.Action = ActionResumeWithPicker
		mode = claude.ModeResumeWithPicker
	case opts.Force || opts.Reset:
		plan.Action = ActionForceCreate
		plan.persist = !exists
	case !exists:
		plan.Action = ActionNew
		plan.persist = true
	default:
		plan.Action = ActionExists
		mode = claude.ModeResume
	}

	plan.Args = claude.BuildCommandArgs(claude.LaunchConfig{
		SessionID: id,
		Mode:      mode,
		ExtraArgs: slices.Clone(opts.Passthrough),
	})

	logger.WithComponent("session").Debug("planned session",
		"name", name, "id", id, "action", plan.Action.String(), "exists", exists)
	return plan, nil
}

// Apply performs the registry changes plan calls for.
func (r *Resolver) Apply(plan *Plan) {
	if plan.remove {
		r.registry.Remove(plan.ID)
	}
	if plan.persist {
		r.registry.Save(plan.ID)
	}
}

// Creates reports whether claude is asked to create the session.
func (p *Plan) Creates() bool {
	return p.Action == ActionNew || p.Action == ActionForceCreate
}

// Announcement is the line printed just before claude starts.
func (p *Plan) Announcement() string {
	if p.Creates() {
		return "Creating session..."
	}
	return "Resuming session..."
}

// Status renders the status block shown before launching.
func (p *Plan) Status(color bool) string {
	fields := []ui.Field{
		{Label: "Session", Value: p.Name},
		{Label: "UUID", Value: p.ID},
		{Label: "Status", Value: p.Action.String()},
	}
	if p.NoBranch {
		fields = append(fields, ui.Field{Label: "Note", Value: "no git branch found, using folder name only"})
	}
	return ui.Box(fields, color)
}
