package geoguess

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// InvalidIDError reports an identifier that is not a 24 character hex
// object id.
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %q", e.ID)
}

// NewID returns a fresh object id in its hex form.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// ValidID reports whether id is a well formed object id.
func ValidID(id string) bool {
	_, err := NormalizeID(id)
	return err == nil
}

// NormalizeID returns id in the lowercase hex form ids are stored in.
// Hex digits are accepted in either case.
func NormalizeID(id string) (string, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return "", &InvalidIDError{ID: id}
	}
	return oid.Hex(), nil
}

// NormalizeIDs normalizes ids in place, stopping at the first bad one.
func NormalizeIDs(ids []string) error {
	for i, id := range ids {
		n, err := NormalizeID(id)
		if err != nil {
			return err
		}
		ids[i] = n
	}
	return nil
}

// ValidateIDs checks the format of every id in order and returns an
// *InvalidIDError for the first bad one. It does not check existence.
func ValidateIDs(ids ...string) error {
	for _, id := range ids {
		if _, err := NormalizeID(id); err != nil {
			return err
		}
	}
	return nil
}
