package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/agentforge/core/internal/logging"
	"github.com/agentforge/core/internal/registry"
	"github.com/agentforge/core/internal/validation"
	"github.com/agentforge/core/pkg/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "validate":
		os.Exit(runValidate(os.Args[2:]))
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: agentforge validate <workflow.json> [-registry agents.json] [-fail-fast]")
}

func runValidate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	registryPath := fs.String("registry", "", "path to an agent definitions JSON array; enables M1/M2 semantic checks")
	failFast := fs.Bool("fail-fast", false, "stop at the first failing rule instead of accumulating every error")
	fs.Parse(args)

	// Flags may come before or after the workflow path.
	if fs.NArg() < 1 {
		usage()
		return 2
	}
	workflowPath := fs.Arg(0)
	fs.Parse(fs.Args()[1:])
	if fs.NArg() != 0 {
		usage()
		return 2
	}

	logger := slog.New(logging.NewCorrelationHandler(slog.NewTextHandler(os.Stderr, nil)))

	data, err := os.ReadFile(workflowPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read workflow: %s\n", err)
		return 1
	}

	workflow, err := model.DecodeWorkflowJSON(data)
	if err != nil {
		printResultError(err)
		return 1
	}

	ctx := logging.WithExecutionID(context.Background(), string(workflow.Id))
	logger.InfoContext(ctx, "validating workflow", slog.Int("nodes", len(workflow.Nodes)), slog.Int("edges", len(workflow.Edges)))

	var agentRegistry validation.AgentRegistry
	if *registryPath != "" {
		agentRegistry, err = loadRegistry(*registryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load registry: %s\n", err)
			return 1
		}
	}

	orchestrator := validation.NewOrchestrator(agentRegistry)
	orchestrator.FailFast = *failFast

	result := orchestrator.Validate(workflow)
	for _, issue := range result.Errors {
		issueCtx := ctx
		if len(issue.NodeIds) > 0 {
			issueCtx = logging.WithNodeID(ctx, string(issue.NodeIds[0]))
		}
		logger.ErrorContext(issueCtx, "validation issue", slog.String("code", issue.Code), slog.String("message", issue.Message))
	}
	logger.InfoContext(ctx, "validation complete", slog.Bool("valid", result.Valid()), slog.Int("errorCount", len(result.Errors)))

	printResult(result)

	if !result.Valid() {
		return 1
	}
	return 0
}

func loadRegistry(path string) (*registry.MapRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var defs []model.AgentDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	return registry.NewMapRegistry(defs), nil
}

// wireResult is ValidationResult plus the top-level valid flag clients use
// to decide whether to even look at errors.
type wireResult struct {
	Valid bool `json:"valid"`
	*model.ValidationResult
}

func printResult(result *model.ValidationResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(wireResult{Valid: result.Valid(), ValidationResult: result})
}

func printResultError(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
}
