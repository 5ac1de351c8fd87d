package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/tdransfield/wikipedia-analysis/internal/ignore"
)

var _ = check.Suite(new(ignoreTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type ignoreTestSuite struct{}

func (s *ignoreTestSuite) TestLoadEmptyDirPath(c *check.C) {
	set, err := ignore.Load("")
	c.Assert(err, check.IsNil)
	c.Assert(set.Contains("Beta"), check.Equals, false)
	c.Assert(set.Len(), check.Equals, 0)
}

func (s *ignoreTestSuite) TestLoadCombinesMultipleFilesAndSkipsComments(c *check.C) {
	dir := c.MkDir()

	err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("Beta\n# a comment\n\nGamma\n"), 0o644)
	c.Assert(err, check.IsNil)

	err = os.WriteFile(filepath.Join(dir, "b.txt"), []byte("Delta\n"), 0o644)
	c.Assert(err, check.IsNil)

	set, err := ignore.Load(dir)
	c.Assert(err, check.IsNil)
	c.Assert(set.Len(), check.Equals, 3)
	c.Assert(set.Contains("Beta"), check.Equals, true)
	c.Assert(set.Contains("Gamma"), check.Equals, true)
	c.Assert(set.Contains("Delta"), check.Equals, true)
	c.Assert(set.Contains("Alpha"), check.Equals, false)
}

func (s *ignoreTestSuite) TestLoadMissingDirIsError(c *check.C) {
	_, err := ignore.Load(filepath.Join(c.MkDir(), "does-not-exist"))
	c.Assert(err, check.NotNil)
}
