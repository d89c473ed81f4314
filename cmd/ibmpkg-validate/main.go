// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

// ibmpkg-validate compiles a YAML catalog manifest of ibm_pkg
// declarations and reports the resulting ordering edges, or the first
// validation failure. It never touches the system: this is the compile
// pass only, with no provider behind it.
package main

import (
	"fmt"
	"os"

	"github.com/juju/errors"
	"github.com/juju/gnuflag"
	"github.com/juju/loggo"
	"gopkg.in/yaml.v3"

	"github.com/isabella232/puppetlabs-ibm-installation-manager/catalog"
	"github.com/isabella232/puppetlabs-ibm-installation-manager/core/entity"
)

// manifest mirrors the on-disk catalog declaration: the entities known
// to the catalog (in kind:name form) and the package resources to
// compile against them.
type manifest struct {
	Entities []string `yaml:"entities"`
	Packages []struct {
		Name       string                 `yaml:"name"`
		Attributes map[string]interface{} `yaml:"attributes"`
	} `yaml:"packages"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := gnuflag.NewFlagSet("ibmpkg-validate", gnuflag.ContinueOnError)
	verbose := flags.Bool("verbose", false, "trace dropped ordering hints")
	flags.SetOutput(os.Stderr)
	if err := flags.Parse(true, args); err != nil {
		return errors.Trace(err)
	}
	if flags.NArg() != 1 {
		return errors.New("usage: ibmpkg-validate [--verbose] <manifest.yaml>")
	}
	if *verbose {
		if err := loggo.ConfigureLoggers("ibmpkg=TRACE"); err != nil {
			return errors.Trace(err)
		}
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		return errors.Trace(err)
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return errors.Annotate(err, "parsing manifest")
	}

	cat := catalog.New()
	for _, s := range m.Entities {
		ref, err := entity.ParseReference(s)
		if err != nil {
			return errors.Trace(err)
		}
		if err := cat.Add(ref); err != nil {
			return errors.Trace(err)
		}
	}
	decls := make([]catalog.Declaration, 0, len(m.Packages))
	for _, p := range m.Packages {
		decls = append(decls, catalog.Declaration{
			Name:       p.Name,
			Attributes: p.Attributes,
		})
	}

	result, err := catalog.Compile(cat, decls)
	if err != nil {
		return errors.Trace(err)
	}
	for _, edge := range result.Edges {
		fmt.Println(edge)
	}
	return nil
}
