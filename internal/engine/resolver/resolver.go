// Package resolver selects the Maven installation a build step runs with.
package resolver

import "go.trai.ch/maven3/internal/core/domain"

// Resolve returns the installation named name.
// When no installation carries that name, including when name is empty, the first
// installation is returned. It returns nil only when installations is empty.
func Resolve(name string, installations []domain.Installation) *domain.Installation {
	for i := range installations {
		if installations[i].Name == name {
			inst := installations[i]
			return &inst
		}
	}
	if len(installations) == 0 {
		return nil
	}
	inst := installations[0]
	return &inst
}
