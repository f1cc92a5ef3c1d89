// Package validation runs post-deployment checks against a workspace and
// aggregates their outcomes into a report.
package validation

import (
	"context"
	"fmt"

	"github.com/dbxverify/dbxverify/internal/workspace"
)

// SharedFolder is the fixed subpath every deployment must carry.
const SharedFolder = "shared"

// UseCases are the deployable groupings known to this tool.
var UseCases = []string{"usecase-1", "usecase-2"}

// DeploymentRoot returns the bundle root for an environment.
func DeploymentRoot(env string) string {
	return fmt.Sprintf("/Workspace/Deployments/%s", env)
}

// BasePath returns the source root beneath which shared and use-case
// folders are expected.
func BasePath(env string) string {
	return DeploymentRoot(env) + "/files/src"
}

// Validator drives the checks for one environment and accumulates their
// results in order. It is not safe for concurrent use; checks run strictly
// sequentially.
type Validator struct {
	client   *workspace.Client
	env      string
	basePath string
	results  []Result
	notify   func(Result)
}

// Option configures a Validator.
type Option func(*Validator)

// WithNotify installs a callback invoked for every recorded result, in
// order, before the next check starts. Used for unbuffered console output.
func WithNotify(fn func(Result)) Option {
	return func(v *Validator) { v.notify = fn }
}

// New creates a Validator for the given environment.
func New(client *workspace.Client, env string, opts ...Option) *Validator {
	v := &Validator{
		client:   client,
		env:      env,
		basePath: BasePath(env),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Environment returns the environment under validation.
func (v *Validator) Environment() string { return v.env }

// BasePath returns the environment's source root.
func (v *Validator) BasePath() string { return v.basePath }

// Results returns the results recorded so far, in check order.
func (v *Validator) Results() []Result { return v.results }

// Report builds the report for the results recorded so far.
func (v *Validator) Report() *Report {
	return BuildReport(v.env, v.client.Host(), v.basePath, v.results)
}

func (v *Validator) record(r Result) {
	v.results = append(v.results, r)
	if v.notify != nil {
		v.notify(r)
	}
}

// ValidateSharedFolder checks that the shared folder is deployed and
// contains notebooks. Missing folder is a failure, an empty one a warning.
func (v *Validator) ValidateSharedFolder(ctx context.Context) bool {
	return v.validateFolder(ctx, SharedFolder, v.basePath+"/"+SharedFolder)
}

// ValidateUseCase checks that a use-case folder is deployed and contains
// notebooks.
func (v *Validator) ValidateUseCase(ctx context.Context, useCase string) bool {
	return v.validateFolder(ctx, useCase, v.basePath+"/"+useCase)
}

func (v *Validator) validateFolder(ctx context.Context, component, path string) bool {
	if !v.client.PathExists(ctx, path) {
		v.record(failed(component, "%s folder not found at %s", component, path))
		return false
	}

	notebooks, err := v.client.ListNotebooks(ctx, path)
	if err != nil {
		// The folder exists but could not be listed. Reported distinctly
		// from a genuinely empty folder.
		v.record(warning(component, "%s folder exists but listing failed: %v", component, err))
		return true
	}
	if len(notebooks) == 0 {
		v.record(warning(component, "%s folder exists but contains no notebooks", component))
		return true
	}

	r := passed(component, "Found %d notebooks in %s", len(notebooks), component)
	r.Notebooks = notebooks
	v.record(r)
	return true
}

// ValidateCluster checks that a cluster with the exact given name exists.
// Absence is a warning, not a failure, since clusters may be provisioned
// on demand.
func (v *Validator) ValidateCluster(ctx context.Context, clusterName string) bool {
	component := "cluster-" + clusterName

	clusters, err := v.client.ListClusters(ctx)
	if err != nil {
		v.record(warning(component, "Cluster listing failed: %v", err))
		return false
	}

	for _, cluster := range clusters {
		if cluster.ClusterName == clusterName {
			r := passed(component, "Cluster %s found", clusterName)
			r.ClusterState = cluster.State
			v.record(r)
			return true
		}
	}

	v.record(warning(component, "Cluster %s not found", clusterName))
	return false
}

// SmokeTest probes the deployment root as a fast connectivity check. It
// records no structured result and is meant to run instead of, not before,
// the full check sequence.
func (v *Validator) SmokeTest(ctx context.Context) bool {
	return v.client.PathExists(ctx, DeploymentRoot(v.env))
}
