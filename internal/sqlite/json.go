package sqlite

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/mesh-intelligence/vendors/pkg/types"
)

// errCorruptValue marks a stored value that does not decode to a vendor list.
var errCorruptValue = errors.New("stored vendor list is not a JSON array")

// decodeVendors parses the stored value. A blank value, JSON null, or
// anything that is not an array of vendors is reported as errCorruptValue.
func decodeVendors(raw string) ([]types.Vendor, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errCorruptValue
	}
	var vendors []types.Vendor
	if err := json.Unmarshal([]byte(raw), &vendors); err != nil {
		return nil, errors.Join(errCorruptValue, err)
	}
	if vendors == nil {
		return nil, errCorruptValue
	}
	return vendors, nil
}

// encodeVendors renders the list as a JSON array; an empty list encodes
// as [] so that it is not mistaken for a missing value.
func encodeVendors(vendors []types.Vendor) (string, error) {
	if vendors == nil {
		vendors = []types.Vendor{}
	}
	data, err := json.Marshal(vendors)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
