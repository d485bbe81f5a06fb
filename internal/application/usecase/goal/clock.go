package goal

import (
	"time"

	"github.com/budget-buddy/backend/internal/domain/entity"
)

// Clock returns the current time. Use cases default to time.Now.
type Clock func() time.Time

func (c Clock) today() time.Time {
	if c == nil {
		return entity.Day(time.Now())
	}
	return entity.Day(c())
}
