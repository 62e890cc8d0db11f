package capability

import (
	"github.com/nyaruka/phonenumbers"
)

// LibPhoneChecker is a PhoneChecker backed by the libphonenumber port.
type LibPhoneChecker struct{}

var _ PhoneChecker = LibPhoneChecker{}

func (LibPhoneChecker) IsValid(candidate, region string) (bool, error) {
	num, err := phonenumbers.Parse(candidate, region)
	if err != nil {
		return false, err
	}
	return phonenumbers.IsValidNumber(num), nil
}
