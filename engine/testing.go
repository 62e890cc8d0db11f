package engine

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/haven-social/scrubber/cachestore"
	"github.com/haven-social/scrubber/trust"
)

// DigitCountPhoneChecker treats any candidate with ten or more digits as a
// valid number. Deterministic stand-in for the libphonenumber capability in
// tests and fixtures.
type DigitCountPhoneChecker struct{}

func (DigitCountPhoneChecker) IsValid(candidate, region string) (bool, error) {
	digits := 0
	for _, r := range candidate {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10, nil
}

// FailingDict always errors, for exercising capability degradation.
type FailingDict struct{}

func (FailingDict) IsProfane(text string) (bool, error) {
	return false, errors.New("dictionary unavailable")
}

// WordDict flags text containing any of its words. Test stand-in for the
// external dictionary capability.
type WordDict struct {
	Words []string
}

func (d WordDict) IsProfane(text string) (bool, error) {
	lower := strings.ToLower(text)
	for _, w := range d.Words {
		if strings.Contains(lower, w) {
			return true, nil
		}
	}
	return false, nil
}

// EngineTestFixture returns an engine wired with in-process collaborators:
// a memory user store holding one new and one tenured account, a memory
// trust cache, the digit-count phone checker, and no dictionary capability.
// Intentionally exported, for use in other packages.
func EngineTestFixture() Engine {
	users := trust.NewMemUserStore()
	users.Users["user-new"] = trust.UserRecord{
		ID:        "user-new",
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}
	users.Users["user-veteran"] = trust.UserRecord{
		ID:        "user-veteran",
		CreatedAt: time.Now().Add(-120 * 24 * time.Hour),
	}
	return Engine{
		Logger: slog.Default(),
		Trust: &trust.Provider{
			Users: users,
			Cache: cachestore.NewMemCacheStore(100, time.Minute),
		},
		Phones: DigitCountPhoneChecker{},
	}
}
