package commands

import (
	"rzt/internal/config"
	"rzt/internal/discovery"
	"rzt/internal/domain"
	"rzt/internal/paths"
	"rzt/internal/suite"
)

// buildSuite enumerates the cases for the roots in cfg. helper must be open.
func buildSuite(cfg *config.Config, helper *paths.Helper, program string, filter *discovery.Filter) (domain.Suite, error) {
	cases, err := suite.NewBuilder(helper, program, suite.DefaultAxes()).Build()
	if err != nil {
		return nil, err
	}
	return filter.FilterByName(cases, cfg.Flags.NameFilter), nil
}

func newHelper(cfg *config.Config) *paths.Helper {
	return paths.NewHelper(cfg.SourceRoot, cfg.TestsDir)
}
