// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package catalog

import (
	"github.com/juju/errors"

	"github.com/isabella232/puppetlabs-ibm-installation-manager/core/entity"
	"github.com/isabella232/puppetlabs-ibm-installation-manager/resource/ibmpkg"
)

// Declaration is one package resource as written in the source
// configuration: a catalog-unique name and its raw attribute values.
type Declaration struct {
	Name       string
	Attributes map[string]interface{}
}

// Result is the output of a compilation pass, handed to the external
// scheduler and, at apply time, to the provider.
type Result struct {
	Resources []*ibmpkg.Resource
	Edges     []entity.Edge
}

// Compile runs the single compile-time pass over the declared package
// resources: build each from its raw attributes, declare it in the
// catalog, compute its ordering edges against the already-declared
// entities, and validate it. The first error aborts the whole pass.
// Edges are computed before validation runs, so a failed compile still
// reflects the edge set of the resources built so far.
func Compile(c *Catalog, decls []Declaration) (*Result, error) {
	resources := make([]*ibmpkg.Resource, 0, len(decls))
	for _, decl := range decls {
		r, err := ibmpkg.NewResource(decl.Name, decl.Attributes)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if err := c.Add(r.Reference()); err != nil {
			return nil, errors.Annotatef(err, "declaring package resource %q", decl.Name)
		}
		resources = append(resources, r)
	}
	result := &Result{Resources: resources}
	for _, r := range resources {
		result.Edges = append(result.Edges, c.AutoRequire(r.Reference(), r.AutoRequires())...)
		if err := r.Validate(true); err != nil {
			return nil, errors.Trace(err)
		}
	}
	logger.Debugf("compiled %d package resources, %d ordering edges", len(result.Resources), len(result.Edges))
	return result, nil
}
