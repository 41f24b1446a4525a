package impl

import (
	"github.com/pkg/errors"
)

// errorMapping pairs a repository sentinel with the domain error shown to callers.
type errorMapping struct {
	from error
	to   error
}

// mapRepoError translates known repository sentinels and attaches a stack to everything else.
func mapRepoError(err error, mappings ...errorMapping) error {
	if err == nil {
		return nil
	}
	for _, m := range mappings {
		if errors.Is(err, m.from) {
			return m.to
		}
	}

	return errors.WithStack(err)
}
