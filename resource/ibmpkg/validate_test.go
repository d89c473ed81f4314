// Copyright 2026 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package ibmpkg_test

import (
	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	gc "gopkg.in/check.v1"

	"github.com/isabella232/puppetlabs-ibm-installation-manager/resource/ibmpkg"
)

type validateSuite struct {
	testing.IsolationSuite
}

var _ = gc.Suite(&validateSuite{})

func fullAttrs() map[string]interface{} {
	return map[string]interface{}{
		"package":    "com.ibm.websphere.ND.v90",
		"version":    "9.0.0.20160526_1854",
		"target":     "/opt/IBM/WebSphere/AppServer",
		"repository": "/mnt/repo/was9",
	}
}

func (s *validateSuite) TestFullQuadrupletPasses(c *gc.C) {
	r, err := ibmpkg.NewResource("was9", fullAttrs())
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), jc.ErrorIsNil)
}

func (s *validateSuite) TestMissingQuadrupletFieldFails(c *gc.C) {
	for _, missing := range []string{"target", "package", "version", "repository"} {
		attrs := fullAttrs()
		delete(attrs, missing)
		r, err := ibmpkg.NewResource("was9", attrs)
		c.Assert(err, jc.ErrorIsNil)
		err = r.Validate(true)
		c.Check(err, jc.Satisfies, errors.IsNotValid)
		c.Check(err, gc.ErrorMatches, `package resource "was9" without response file missing `+missing+` not valid`)
	}
}

func (s *validateSuite) TestResponseFileExemptsQuadruplet(c *gc.C) {
	r, err := ibmpkg.NewResource("was9", map[string]interface{}{
		"response": "/opt/resp.xml",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), jc.ErrorIsNil)
}

func (s *validateSuite) TestInvalidUserFails(c *gc.C) {
	for _, user := range []string{"web admin", "web:admin", "web/admin", "*"} {
		attrs := fullAttrs()
		attrs["user"] = user
		r, err := ibmpkg.NewResource("was9", attrs)
		c.Assert(err, jc.ErrorIsNil)
		err = r.Validate(true)
		c.Check(err, jc.Satisfies, errors.IsNotValid, gc.Commentf("user %q", user))
	}
	attrs := fullAttrs()
	attrs["user"] = "web admin"
	r, err := ibmpkg.NewResource("was9", attrs)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), gc.ErrorMatches, `package resource "was9": user "web admin" not valid`)
}

func (s *validateSuite) TestValidUsersPass(c *gc.C) {
	for _, user := range []string{"root", "db2inst1", "web-admin", "WEB_ADMIN"} {
		attrs := fullAttrs()
		attrs["user"] = user
		r, err := ibmpkg.NewResource("was9", attrs)
		c.Assert(err, jc.ErrorIsNil)
		c.Check(r.Validate(true), jc.ErrorIsNil, gc.Commentf("user %q", user))
	}
}

func (s *validateSuite) TestRelativePathsFail(c *gc.C) {
	for attr, value := range map[string]string{
		"imcl_path": "opt/IBM/InstallationManager/eclipse/tools/imcl",
		"target":    "var/lib/db2",
		"response":  "resp.xml",
	} {
		attrs := fullAttrs()
		attrs[attr] = value
		r, err := ibmpkg.NewResource("db2", attrs)
		c.Assert(err, jc.ErrorIsNil)
		err = r.Validate(true)
		c.Check(err, jc.Satisfies, errors.IsNotValid, gc.Commentf("attribute %q", attr))
		c.Check(err, gc.ErrorMatches, `package resource "db2": relative `+attr+` ".*" not valid`)
	}
}

func (s *validateSuite) TestAbsolutePathsPass(c *gc.C) {
	attrs := fullAttrs()
	attrs["imcl_path"] = "/opt/IBM/InstallationManager/eclipse/tools/imcl"
	attrs["response"] = "/opt/resp.xml"
	r, err := ibmpkg.NewResource("db2", attrs)
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), jc.ErrorIsNil)
}

func (s *validateSuite) TestValidationSkippedOutsideCatalog(c *gc.C) {
	// Anything goes when the resource is not compiled as part of a
	// real catalog.
	r, err := ibmpkg.NewResource("broken", map[string]interface{}{
		"target": "var/lib/db2",
		"user":   "not a user",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(false), jc.ErrorIsNil)
}

func (s *validateSuite) TestFailFastOrder(c *gc.C) {
	// Both the quadruplet rule and the user rule are violated; the
	// quadruplet rule is checked first.
	r, err := ibmpkg.NewResource("was9", map[string]interface{}{
		"user": "not a user",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), gc.ErrorMatches, `package resource "was9" without response file missing target not valid`)
}

func (s *validateSuite) TestRelativeTargetExample(c *gc.C) {
	r, err := ibmpkg.NewResource("db2", map[string]interface{}{
		"target":     "var/lib/db2",
		"package":    "p",
		"version":    "v",
		"repository": "/r",
	})
	c.Assert(err, jc.ErrorIsNil)
	c.Check(r.Validate(true), gc.ErrorMatches, `package resource "db2": relative target "var/lib/db2" not valid`)
}
