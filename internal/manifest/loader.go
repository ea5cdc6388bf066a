package manifest

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/oro-core/netplan/internal/catalog"
	"github.com/oro-core/netplan/internal/ctxlog"
	"github.com/oro-core/netplan/internal/fsutil"
)

// Load discovers every ".hcl" file under the given paths (a path may name
// a single file or a directory to walk), decodes each one, and merges the
// resulting models into a fresh catalog.Catalog. A duplicate model name
// across files panics, matching catalog.Catalog's Register* convention.
func Load(ctx context.Context, paths ...string) (*catalog.Catalog, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := discoverManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("manifest: discovered files", "count", len(files))

	cat := catalog.New()
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("manifest: parsing %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("manifest: decoding %s: %w", file, diags)
		}

		for _, s := range root.TaskContexts {
			m, err := translateTaskContext(ctx, file, s)
			if err != nil {
				return nil, fmt.Errorf("manifest: %s: %w", file, err)
			}
			cat.RegisterTaskContext(m)
		}
		for _, s := range root.DataServices {
			m, err := translateDataService(ctx, file, s)
			if err != nil {
				return nil, fmt.Errorf("manifest: %s: %w", file, err)
			}
			cat.RegisterDataService(m)
		}
		for _, s := range root.Compositions {
			m, err := translateComposition(file, s)
			if err != nil {
				return nil, fmt.Errorf("manifest: %s: %w", file, err)
			}
			cat.RegisterComposition(m)
		}
		for _, s := range root.Deployments {
			cat.RegisterDeployment(translateDeployment(file, s))
		}
		for _, s := range root.DeploymentGroups {
			group := translateDeploymentGroup(s)
			cat.RegisterDeploymentGroup(group)
			if s.Default {
				cat.DefaultDeploymentGroupName = group.Name
			}
		}
	}

	logger.Debug("manifest: load complete",
		"task_contexts", len(cat.TaskContexts),
		"data_services", len(cat.DataServices),
		"compositions", len(cat.Compositions),
		"deployments", len(cat.Deployments),
		"deployment_groups", len(cat.DeploymentGroups),
	)
	return cat, nil
}

// discoverManifestFiles walks every given path (file or directory) and
// returns the de-duplicated, flattened set of ".hcl" files found.
func discoverManifestFiles(paths []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("manifest: scanning %s: %w", path, err)
		}
		for _, f := range found {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	return out, nil
}
