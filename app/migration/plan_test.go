package migration_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/bookstore/app/migration"
)

const hash = "$2a$10$hash"

func TestPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       bson.M
		wantSet   bson.D
		wantUnset bson.D
	}{
		{
			name: "already migrated",
			doc:  bson.M{"_id": 1, "password": "x", "fullName": "Ada Lovelace", "firstName": "Ada", "lastName": "Lovelace"},
		},
		{
			name:    "missing password",
			doc:     bson.M{"_id": 1, "fullName": "Ada"},
			wantSet: bson.D{{Key: "password", Value: hash}},
		},
		{
			name:    "empty password counts as missing",
			doc:     bson.M{"_id": 1, "password": "", "fullName": "Ada"},
			wantSet: bson.D{{Key: "password", Value: hash}},
		},
		{
			name:    "full name from parts",
			doc:     bson.M{"_id": 1, "password": "x", "firstName": "Ada", "lastName": "Lovelace"},
			wantSet: bson.D{{Key: "fullName", Value: "Ada Lovelace"}},
		},
		{
			name: "full name needs both parts",
			doc:  bson.M{"_id": 1, "password": "x", "firstName": "Ada"},
		},
		{
			name:      "legacy fields removed",
			doc:       bson.M{"_id": 1, "password": "x", "address": "1 Main St", "browsingHistory": bson.A{}, "isActive": false},
			wantUnset: bson.D{{Key: "address", Value: ""}, {Key: "browsingHistory", Value: ""}, {Key: "isActive", Value: ""}},
		},
		{
			name:      "isActive removed even when null",
			doc:       bson.M{"_id": 1, "password": "x", "isActive": nil},
			wantUnset: bson.D{{Key: "isActive", Value: ""}},
		},
		{
			name: "empty address kept",
			doc:  bson.M{"_id": 1, "password": "x", "address": ""},
		},
		{
			name:      "notifications removed from preferences",
			doc:       bson.M{"_id": 1, "password": "x", "preferences": bson.M{"notifications": true, "theme": "dark"}},
			wantUnset: bson.D{{Key: "preferences.notifications", Value: ""}},
		},
		{
			name:      "notifications in ordered preferences",
			doc:       bson.M{"_id": 1, "password": "x", "preferences": bson.D{{Key: "notifications", Value: bson.M{"email": true}}}},
			wantUnset: bson.D{{Key: "preferences.notifications", Value: ""}},
		},
		{
			name: "disabled notifications kept",
			doc:  bson.M{"_id": 1, "password": "x", "preferences": bson.M{"notifications": false}},
		},
		{
			name:      "combined patch",
			doc:       bson.M{"_id": 1, "firstName": "Ada", "lastName": "Lovelace", "address": "1 Main St"},
			wantSet:   bson.D{{Key: "password", Value: hash}, {Key: "fullName", Value: "Ada Lovelace"}},
			wantUnset: bson.D{{Key: "address", Value: ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := migration.Plan(tt.doc, hash)
			assert.Equal(t, tt.wantSet, p.Set)
			assert.Equal(t, tt.wantUnset, p.Unset)
			assert.Equal(t, len(tt.wantSet) == 0 && len(tt.wantUnset) == 0, p.Empty())
		})
	}
}

func TestPlanTruthiness(t *testing.T) {
	t.Parallel()
	for _, v := range []any{nil, "", false, 0, int32(0), int64(0), 0.0, math.NaN(), bson.Null{}} {
		p := migration.Plan(bson.M{"password": "x", "address": v}, hash)
		assert.True(t, p.Empty(), "%#v should count as unset", v)
	}
	for _, v := range []any{"a", true, 1, int64(2), 0.5, bson.A{}, bson.M{}} {
		p := migration.Plan(bson.M{"password": "x", "address": v}, hash)
		assert.False(t, p.Empty(), "%#v should count as set", v)
	}
}

func TestPatchUpdate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bson.D{}, migration.Patch{}.Update())

	p := migration.Patch{
		Set:   bson.D{{Key: "password", Value: hash}},
		Unset: bson.D{{Key: "address", Value: ""}},
	}
	assert.Equal(t, bson.D{
		{Key: "$set", Value: bson.D{{Key: "password", Value: hash}}},
		{Key: "$unset", Value: bson.D{{Key: "address", Value: ""}}},
	}, p.Update())

	onlyUnset := migration.Patch{Unset: bson.D{{Key: "isActive", Value: ""}}}
	assert.Equal(t, bson.D{{Key: "$unset", Value: bson.D{{Key: "isActive", Value: ""}}}}, onlyUnset.Update())
}
