package mapper

import (
	"github.com/uber/slcore-bridge/src/slbridge/entity"
	"github.com/uber/slcore-bridge/src/slbridge/model"
)

// SolutionToModel maps a Solution entity to its model equivalent.
func SolutionToModel(s *entity.Solution) *model.Solution {
	m := &model.Solution{
		Name:     s.Name,
		RootPath: s.RootPath,
		BaseDir:  s.BaseDir,
	}
	if s.Binding != nil {
		m.BindingConnectionID = s.Binding.ConnectionID
		m.BindingProjectKey = s.Binding.ProjectKey
	}
	return m
}

// ModelToSolution maps a model Solution to its entity equivalent.
func ModelToSolution(m *model.Solution) *entity.Solution {
	s := &entity.Solution{
		Name:     m.Name,
		RootPath: m.RootPath,
		BaseDir:  m.BaseDir,
	}
	if m.BindingConnectionID != "" || m.BindingProjectKey != "" {
		s.Binding = &entity.Binding{
			ConnectionID: m.BindingConnectionID,
			ProjectKey:   m.BindingProjectKey,
		}
	}
	return s
}

// SolutionDidOpenParamsToSolution maps the IDE's open notification to a Solution entity.
func SolutionDidOpenParamsToSolution(p *entity.SolutionDidOpenParams) *entity.Solution {
	s := &entity.Solution{
		Name:     p.Name,
		RootPath: p.RootPath,
		BaseDir:  p.BaseDir,
	}
	if p.Binding != nil {
		binding := *p.Binding
		s.Binding = &binding
	}
	return s
}
