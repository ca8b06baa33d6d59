package migration

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Legacy fields removed by the migration.
const (
	FieldAddress                  = "address"
	FieldBrowsingHistory          = "browsingHistory"
	FieldIsActive                 = "isActive"
	FieldPreferencesNotifications = "preferences.notifications"
)

// Fields added by the migration.
const (
	FieldPassword = "password"
	FieldFullName = "fullName"
)

// Patch is the combined change for one customer.
type Patch struct {
	Set   bson.D
	Unset bson.D
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p.Set) == 0 && len(p.Unset) == 0
}

// Update renders the patch as a single update document.
func (p Patch) Update() bson.D {
	update := bson.D{}
	if len(p.Set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: p.Set})
	}
	if len(p.Unset) > 0 {
		update = append(update, bson.E{Key: "$unset", Value: p.Unset})
	}
	return update
}

// Plan decides what to change on doc. passwordHash is assigned when the customer has no password.
//
// Additions: password when missing; fullName from firstName and lastName when
// missing and both parts are present. Removals: address, browsingHistory and
// preferences.notifications when set, isActive whenever the key exists.
func Plan(doc bson.M, passwordHash string) Patch {
	var p Patch

	if !truthy(doc[FieldPassword]) {
		p.Set = append(p.Set, bson.E{Key: FieldPassword, Value: passwordHash})
	}
	if !truthy(doc[FieldFullName]) && truthy(doc["firstName"]) && truthy(doc["lastName"]) {
		p.Set = append(p.Set, bson.E{Key: FieldFullName, Value: fmt.Sprintf("%v %v", doc["firstName"], doc["lastName"])})
	}

	if truthy(doc[FieldAddress]) {
		p.Unset = append(p.Unset, bson.E{Key: FieldAddress, Value: ""})
	}
	if truthy(doc[FieldBrowsingHistory]) {
		p.Unset = append(p.Unset, bson.E{Key: FieldBrowsingHistory, Value: ""})
	}
	if _, ok := doc[FieldIsActive]; ok {
		p.Unset = append(p.Unset, bson.E{Key: FieldIsActive, Value: ""})
	}
	if prefs := doc["preferences"]; truthy(prefs) {
		if v, ok := lookup(prefs, "notifications"); ok && truthy(v) {
			p.Unset = append(p.Unset, bson.E{Key: FieldPreferencesNotifications, Value: ""})
		}
	}
	return p
}

// truthy treats nil, "", false, zero and NaN as unset. Empty arrays and documents count as set.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0 && !math.IsNaN(x)
	case bson.Null, bson.Undefined:
		return false
	default:
		return true
	}
}

// lookup reads key from an embedded document regardless of its decoded form.
func lookup(doc any, key string) (any, bool) {
	switch d := doc.(type) {
	case bson.M:
		v, ok := d[key]
		return v, ok
	case bson.D:
		for _, e := range d {
			if e.Key == key {
				return e.Value, true
			}
		}
	}
	return nil, false
}
