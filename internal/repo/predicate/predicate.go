// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AwarenessMap is the predicate function for awarenessmap builders.
type AwarenessMap func(*sql.Selector)

// ChemicalRecipe is the predicate function for chemicalrecipe builders.
type ChemicalRecipe func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// MechanicalCompound is the predicate function for mechanicalcompound builders.
type MechanicalCompound func(*sql.Selector)

// MentalState is the predicate function for mentalstate builders.
type MentalState func(*sql.Selector)

// MentalStatePreset is the predicate function for mentalstatepreset builders.
type MentalStatePreset func(*sql.Selector)

// NightmareMap is the predicate function for nightmaremap builders.
type NightmareMap func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
