// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/mobiusclinic/clinica_backend/internal/repo/awarenessmap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/chemicalrecipe"
	"github.com/mobiusclinic/clinica_backend/internal/repo/doctor"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mechanicalcompound"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstate"
	"github.com/mobiusclinic/clinica_backend/internal/repo/mentalstatepreset"
	"github.com/mobiusclinic/clinica_backend/internal/repo/nightmaremap"
	"github.com/mobiusclinic/clinica_backend/internal/repo/patient"
	"github.com/mobiusclinic/clinica_backend/internal/repo/user"
	"github.com/mobiusclinic/clinica_backend/internal/repo/usersession"
	"github.com/mobiusclinic/clinica_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	awarenessmapMixin := schema.AwarenessMap{}.Mixin()
	awarenessmapMixinFields0 := awarenessmapMixin[0].Fields()
	_ = awarenessmapMixinFields0
	awarenessmapMixinFields1 := awarenessmapMixin[1].Fields()
	_ = awarenessmapMixinFields1
	awarenessmapFields := schema.AwarenessMap{}.Fields()
	_ = awarenessmapFields
	// awarenessmapDescCreatedAt is the schema descriptor for created_at field.
	awarenessmapDescCreatedAt := awarenessmapMixinFields1[0].Descriptor()
	// awarenessmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	awarenessmap.DefaultCreatedAt = awarenessmapDescCreatedAt.Default.(func() time.Time)
	// awarenessmapDescUpdatedAt is the schema descriptor for updated_at field.
	awarenessmapDescUpdatedAt := awarenessmapMixinFields1[1].Descriptor()
	// awarenessmap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	awarenessmap.DefaultUpdatedAt = awarenessmapDescUpdatedAt.Default.(func() time.Time)
	// awarenessmap.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	awarenessmap.UpdateDefaultUpdatedAt = awarenessmapDescUpdatedAt.UpdateDefault.(func() time.Time)
	// awarenessmapDescProperty1Condition is the schema descriptor for property_1_condition field.
	awarenessmapDescProperty1Condition := awarenessmapFields[1].Descriptor()
	// awarenessmap.DefaultProperty1Condition holds the default value on creation for the property_1_condition field.
	awarenessmap.DefaultProperty1Condition = awarenessmapDescProperty1Condition.Default.(string)
	// awarenessmapDescProperty1Description is the schema descriptor for property_1_description field.
	awarenessmapDescProperty1Description := awarenessmapFields[2].Descriptor()
	// awarenessmap.DefaultProperty1Description holds the default value on creation for the property_1_description field.
	awarenessmap.DefaultProperty1Description = awarenessmapDescProperty1Description.Default.(string)
	// awarenessmapDescProperty2Condition is the schema descriptor for property_2_condition field.
	awarenessmapDescProperty2Condition := awarenessmapFields[3].Descriptor()
	// awarenessmap.DefaultProperty2Condition holds the default value on creation for the property_2_condition field.
	awarenessmap.DefaultProperty2Condition = awarenessmapDescProperty2Condition.Default.(string)
	// awarenessmapDescProperty2Description is the schema descriptor for property_2_description field.
	awarenessmapDescProperty2Description := awarenessmapFields[4].Descriptor()
	// awarenessmap.DefaultProperty2Description holds the default value on creation for the property_2_description field.
	awarenessmap.DefaultProperty2Description = awarenessmapDescProperty2Description.Default.(string)
	// awarenessmapDescProperty3Condition is the schema descriptor for property_3_condition field.
	awarenessmapDescProperty3Condition := awarenessmapFields[5].Descriptor()
	// awarenessmap.DefaultProperty3Condition holds the default value on creation for the property_3_condition field.
	awarenessmap.DefaultProperty3Condition = awarenessmapDescProperty3Condition.Default.(string)
	// awarenessmapDescProperty3Description is the schema descriptor for property_3_description field.
	awarenessmapDescProperty3Description := awarenessmapFields[6].Descriptor()
	// awarenessmap.DefaultProperty3Description holds the default value on creation for the property_3_description field.
	awarenessmap.DefaultProperty3Description = awarenessmapDescProperty3Description.Default.(string)
	// awarenessmapDescProperty4Condition is the schema descriptor for property_4_condition field.
	awarenessmapDescProperty4Condition := awarenessmapFields[7].Descriptor()
	// awarenessmap.DefaultProperty4Condition holds the default value on creation for the property_4_condition field.
	awarenessmap.DefaultProperty4Condition = awarenessmapDescProperty4Condition.Default.(string)
	// awarenessmapDescProperty4Description is the schema descriptor for property_4_description field.
	awarenessmapDescProperty4Description := awarenessmapFields[8].Descriptor()
	// awarenessmap.DefaultProperty4Description holds the default value on creation for the property_4_description field.
	awarenessmap.DefaultProperty4Description = awarenessmapDescProperty4Description.Default.(string)
	// awarenessmapDescExtraProperty1Description is the schema descriptor for extra_property_1_description field.
	awarenessmapDescExtraProperty1Description := awarenessmapFields[9].Descriptor()
	// awarenessmap.DefaultExtraProperty1Description holds the default value on creation for the extra_property_1_description field.
	awarenessmap.DefaultExtraProperty1Description = awarenessmapDescExtraProperty1Description.Default.(string)
	// awarenessmapDescExtraProperty2Description is the schema descriptor for extra_property_2_description field.
	awarenessmapDescExtraProperty2Description := awarenessmapFields[10].Descriptor()
	// awarenessmap.DefaultExtraProperty2Description holds the default value on creation for the extra_property_2_description field.
	awarenessmap.DefaultExtraProperty2Description = awarenessmapDescExtraProperty2Description.Default.(string)
	// awarenessmapDescID is the schema descriptor for id field.
	awarenessmapDescID := awarenessmapMixinFields0[0].Descriptor()
	// awarenessmap.DefaultID holds the default value on creation for the id field.
	awarenessmap.DefaultID = awarenessmapDescID.Default.(func() uuid.UUID)
	chemicalrecipeMixin := schema.ChemicalRecipe{}.Mixin()
	chemicalrecipeMixinFields0 := chemicalrecipeMixin[0].Fields()
	_ = chemicalrecipeMixinFields0
	chemicalrecipeMixinFields1 := chemicalrecipeMixin[1].Fields()
	_ = chemicalrecipeMixinFields1
	chemicalrecipeFields := schema.ChemicalRecipe{}.Fields()
	_ = chemicalrecipeFields
	// chemicalrecipeDescCreatedAt is the schema descriptor for created_at field.
	chemicalrecipeDescCreatedAt := chemicalrecipeMixinFields1[0].Descriptor()
	// chemicalrecipe.DefaultCreatedAt holds the default value on creation for the created_at field.
	chemicalrecipe.DefaultCreatedAt = chemicalrecipeDescCreatedAt.Default.(func() time.Time)
	// chemicalrecipeDescUpdatedAt is the schema descriptor for updated_at field.
	chemicalrecipeDescUpdatedAt := chemicalrecipeMixinFields1[1].Descriptor()
	// chemicalrecipe.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chemicalrecipe.DefaultUpdatedAt = chemicalrecipeDescUpdatedAt.Default.(func() time.Time)
	// chemicalrecipe.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chemicalrecipe.UpdateDefaultUpdatedAt = chemicalrecipeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chemicalrecipeDescProperty1 is the schema descriptor for property_1 field.
	chemicalrecipeDescProperty1 := chemicalrecipeFields[3].Descriptor()
	// chemicalrecipe.Property1Validator is a validator for the "property_1" field. It is called by the builders before save.
	chemicalrecipe.Property1Validator = func() func(string) error {
		validators := chemicalrecipeDescProperty1.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_1 string) error {
			for _, fn := range fns {
				if err := fn(property_1); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chemicalrecipeDescProperty2 is the schema descriptor for property_2 field.
	chemicalrecipeDescProperty2 := chemicalrecipeFields[4].Descriptor()
	// chemicalrecipe.Property2Validator is a validator for the "property_2" field. It is called by the builders before save.
	chemicalrecipe.Property2Validator = func() func(string) error {
		validators := chemicalrecipeDescProperty2.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_2 string) error {
			for _, fn := range fns {
				if err := fn(property_2); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chemicalrecipeDescProperty3 is the schema descriptor for property_3 field.
	chemicalrecipeDescProperty3 := chemicalrecipeFields[5].Descriptor()
	// chemicalrecipe.Property3Validator is a validator for the "property_3" field. It is called by the builders before save.
	chemicalrecipe.Property3Validator = func() func(string) error {
		validators := chemicalrecipeDescProperty3.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_3 string) error {
			for _, fn := range fns {
				if err := fn(property_3); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chemicalrecipeDescDuration is the schema descriptor for duration field.
	chemicalrecipeDescDuration := chemicalrecipeFields[6].Descriptor()
	// chemicalrecipe.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	chemicalrecipe.DurationValidator = chemicalrecipeDescDuration.Validators[0].(func(int64) error)
	// chemicalrecipeDescExtraProperty is the schema descriptor for extra_property field.
	chemicalrecipeDescExtraProperty := chemicalrecipeFields[7].Descriptor()
	// chemicalrecipe.DefaultExtraProperty holds the default value on creation for the extra_property field.
	chemicalrecipe.DefaultExtraProperty = chemicalrecipeDescExtraProperty.Default.(string)
	// chemicalrecipe.ExtraPropertyValidator is a validator for the "extra_property" field. It is called by the builders before save.
	chemicalrecipe.ExtraPropertyValidator = chemicalrecipeDescExtraProperty.Validators[0].(func(string) error)
	// chemicalrecipeDescID is the schema descriptor for id field.
	chemicalrecipeDescID := chemicalrecipeMixinFields0[0].Descriptor()
	// chemicalrecipe.DefaultID holds the default value on creation for the id field.
	chemicalrecipe.DefaultID = chemicalrecipeDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescFullName is the schema descriptor for full_name field.
	doctorDescFullName := doctorFields[1].Descriptor()
	// doctor.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	doctor.FullNameValidator = func() func(string) error {
		validators := doctorDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescNickname is the schema descriptor for nickname field.
	doctorDescNickname := doctorFields[2].Descriptor()
	// doctor.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	doctor.NicknameValidator = func() func(string) error {
		validators := doctorDescNickname.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(nickname string) error {
			for _, fn := range fns {
				if err := fn(nickname); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescTelegram is the schema descriptor for telegram field.
	doctorDescTelegram := doctorFields[3].Descriptor()
	// doctor.TelegramValidator is a validator for the "telegram" field. It is called by the builders before save.
	doctor.TelegramValidator = doctorDescTelegram.Validators[0].(func(string) error)
	// doctorDescAvatarKey is the schema descriptor for avatar_key field.
	doctorDescAvatarKey := doctorFields[4].Descriptor()
	// doctor.AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	doctor.AvatarKeyValidator = doctorDescAvatarKey.Validators[0].(func(string) error)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	mechanicalcompoundMixin := schema.MechanicalCompound{}.Mixin()
	mechanicalcompoundMixinFields0 := mechanicalcompoundMixin[0].Fields()
	_ = mechanicalcompoundMixinFields0
	mechanicalcompoundMixinFields1 := mechanicalcompoundMixin[1].Fields()
	_ = mechanicalcompoundMixinFields1
	mechanicalcompoundFields := schema.MechanicalCompound{}.Fields()
	_ = mechanicalcompoundFields
	// mechanicalcompoundDescCreatedAt is the schema descriptor for created_at field.
	mechanicalcompoundDescCreatedAt := mechanicalcompoundMixinFields1[0].Descriptor()
	// mechanicalcompound.DefaultCreatedAt holds the default value on creation for the created_at field.
	mechanicalcompound.DefaultCreatedAt = mechanicalcompoundDescCreatedAt.Default.(func() time.Time)
	// mechanicalcompoundDescUpdatedAt is the schema descriptor for updated_at field.
	mechanicalcompoundDescUpdatedAt := mechanicalcompoundMixinFields1[1].Descriptor()
	// mechanicalcompound.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mechanicalcompound.DefaultUpdatedAt = mechanicalcompoundDescUpdatedAt.Default.(func() time.Time)
	// mechanicalcompound.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mechanicalcompound.UpdateDefaultUpdatedAt = mechanicalcompoundDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mechanicalcompoundDescProperty1 is the schema descriptor for property_1 field.
	mechanicalcompoundDescProperty1 := mechanicalcompoundFields[3].Descriptor()
	// mechanicalcompound.Property1Validator is a validator for the "property_1" field. It is called by the builders before save.
	mechanicalcompound.Property1Validator = func() func(string) error {
		validators := mechanicalcompoundDescProperty1.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_1 string) error {
			for _, fn := range fns {
				if err := fn(property_1); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mechanicalcompoundDescProperty2 is the schema descriptor for property_2 field.
	mechanicalcompoundDescProperty2 := mechanicalcompoundFields[4].Descriptor()
	// mechanicalcompound.Property2Validator is a validator for the "property_2" field. It is called by the builders before save.
	mechanicalcompound.Property2Validator = func() func(string) error {
		validators := mechanicalcompoundDescProperty2.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_2 string) error {
			for _, fn := range fns {
				if err := fn(property_2); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mechanicalcompoundDescProperty3 is the schema descriptor for property_3 field.
	mechanicalcompoundDescProperty3 := mechanicalcompoundFields[5].Descriptor()
	// mechanicalcompound.Property3Validator is a validator for the "property_3" field. It is called by the builders before save.
	mechanicalcompound.Property3Validator = func() func(string) error {
		validators := mechanicalcompoundDescProperty3.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(property_3 string) error {
			for _, fn := range fns {
				if err := fn(property_3); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// mechanicalcompoundDescDuration is the schema descriptor for duration field.
	mechanicalcompoundDescDuration := mechanicalcompoundFields[6].Descriptor()
	// mechanicalcompound.DurationValidator is a validator for the "duration" field. It is called by the builders before save.
	mechanicalcompound.DurationValidator = mechanicalcompoundDescDuration.Validators[0].(func(int64) error)
	// mechanicalcompoundDescExtraProperty is the schema descriptor for extra_property field.
	mechanicalcompoundDescExtraProperty := mechanicalcompoundFields[7].Descriptor()
	// mechanicalcompound.DefaultExtraProperty holds the default value on creation for the extra_property field.
	mechanicalcompound.DefaultExtraProperty = mechanicalcompoundDescExtraProperty.Default.(string)
	// mechanicalcompound.ExtraPropertyValidator is a validator for the "extra_property" field. It is called by the builders before save.
	mechanicalcompound.ExtraPropertyValidator = mechanicalcompoundDescExtraProperty.Validators[0].(func(string) error)
	// mechanicalcompoundDescID is the schema descriptor for id field.
	mechanicalcompoundDescID := mechanicalcompoundMixinFields0[0].Descriptor()
	// mechanicalcompound.DefaultID holds the default value on creation for the id field.
	mechanicalcompound.DefaultID = mechanicalcompoundDescID.Default.(func() uuid.UUID)
	mentalstateMixin := schema.MentalState{}.Mixin()
	mentalstateMixinFields0 := mentalstateMixin[0].Fields()
	_ = mentalstateMixinFields0
	mentalstateMixinFields1 := mentalstateMixin[1].Fields()
	_ = mentalstateMixinFields1
	mentalstateFields := schema.MentalState{}.Fields()
	_ = mentalstateFields
	// mentalstateDescCreatedAt is the schema descriptor for created_at field.
	mentalstateDescCreatedAt := mentalstateMixinFields1[0].Descriptor()
	// mentalstate.DefaultCreatedAt holds the default value on creation for the created_at field.
	mentalstate.DefaultCreatedAt = mentalstateDescCreatedAt.Default.(func() time.Time)
	// mentalstateDescUpdatedAt is the schema descriptor for updated_at field.
	mentalstateDescUpdatedAt := mentalstateMixinFields1[1].Descriptor()
	// mentalstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mentalstate.DefaultUpdatedAt = mentalstateDescUpdatedAt.Default.(func() time.Time)
	// mentalstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mentalstate.UpdateDefaultUpdatedAt = mentalstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mentalstateDescLevel is the schema descriptor for level field.
	mentalstateDescLevel := mentalstateFields[0].Descriptor()
	// mentalstate.DefaultLevel holds the default value on creation for the level field.
	mentalstate.DefaultLevel = mentalstateDescLevel.Default.(int)
	// mentalstate.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	mentalstate.LevelValidator = mentalstateDescLevel.Validators[0].(func(int) error)
	// mentalstateDescDescription is the schema descriptor for description field.
	mentalstateDescDescription := mentalstateFields[1].Descriptor()
	// mentalstate.DefaultDescription holds the default value on creation for the description field.
	mentalstate.DefaultDescription = mentalstateDescDescription.Default.(string)
	// mentalstateDescID is the schema descriptor for id field.
	mentalstateDescID := mentalstateMixinFields0[0].Descriptor()
	// mentalstate.DefaultID holds the default value on creation for the id field.
	mentalstate.DefaultID = mentalstateDescID.Default.(func() uuid.UUID)
	mentalstatepresetMixin := schema.MentalStatePreset{}.Mixin()
	mentalstatepresetMixinFields0 := mentalstatepresetMixin[0].Fields()
	_ = mentalstatepresetMixinFields0
	mentalstatepresetMixinFields1 := mentalstatepresetMixin[1].Fields()
	_ = mentalstatepresetMixinFields1
	mentalstatepresetFields := schema.MentalStatePreset{}.Fields()
	_ = mentalstatepresetFields
	// mentalstatepresetDescCreatedAt is the schema descriptor for created_at field.
	mentalstatepresetDescCreatedAt := mentalstatepresetMixinFields1[0].Descriptor()
	// mentalstatepreset.DefaultCreatedAt holds the default value on creation for the created_at field.
	mentalstatepreset.DefaultCreatedAt = mentalstatepresetDescCreatedAt.Default.(func() time.Time)
	// mentalstatepresetDescUpdatedAt is the schema descriptor for updated_at field.
	mentalstatepresetDescUpdatedAt := mentalstatepresetMixinFields1[1].Descriptor()
	// mentalstatepreset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mentalstatepreset.DefaultUpdatedAt = mentalstatepresetDescUpdatedAt.Default.(func() time.Time)
	// mentalstatepreset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mentalstatepreset.UpdateDefaultUpdatedAt = mentalstatepresetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mentalstatepresetDescLevel is the schema descriptor for level field.
	mentalstatepresetDescLevel := mentalstatepresetFields[0].Descriptor()
	// mentalstatepreset.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	mentalstatepreset.LevelValidator = mentalstatepresetDescLevel.Validators[0].(func(int) error)
	// mentalstatepresetDescDescription is the schema descriptor for description field.
	mentalstatepresetDescDescription := mentalstatepresetFields[1].Descriptor()
	// mentalstatepreset.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	mentalstatepreset.DescriptionValidator = mentalstatepresetDescDescription.Validators[0].(func(string) error)
	// mentalstatepresetDescID is the schema descriptor for id field.
	mentalstatepresetDescID := mentalstatepresetMixinFields0[0].Descriptor()
	// mentalstatepreset.DefaultID holds the default value on creation for the id field.
	mentalstatepreset.DefaultID = mentalstatepresetDescID.Default.(func() uuid.UUID)
	nightmaremapMixin := schema.NightmareMap{}.Mixin()
	nightmaremapMixinFields0 := nightmaremapMixin[0].Fields()
	_ = nightmaremapMixinFields0
	nightmaremapMixinFields1 := nightmaremapMixin[1].Fields()
	_ = nightmaremapMixinFields1
	nightmaremapFields := schema.NightmareMap{}.Fields()
	_ = nightmaremapFields
	// nightmaremapDescCreatedAt is the schema descriptor for created_at field.
	nightmaremapDescCreatedAt := nightmaremapMixinFields1[0].Descriptor()
	// nightmaremap.DefaultCreatedAt holds the default value on creation for the created_at field.
	nightmaremap.DefaultCreatedAt = nightmaremapDescCreatedAt.Default.(func() time.Time)
	// nightmaremapDescUpdatedAt is the schema descriptor for updated_at field.
	nightmaremapDescUpdatedAt := nightmaremapMixinFields1[1].Descriptor()
	// nightmaremap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	nightmaremap.DefaultUpdatedAt = nightmaremapDescUpdatedAt.Default.(func() time.Time)
	// nightmaremap.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	nightmaremap.UpdateDefaultUpdatedAt = nightmaremapDescUpdatedAt.UpdateDefault.(func() time.Time)
	// nightmaremapDescProperty1Condition is the schema descriptor for property_1_condition field.
	nightmaremapDescProperty1Condition := nightmaremapFields[1].Descriptor()
	// nightmaremap.DefaultProperty1Condition holds the default value on creation for the property_1_condition field.
	nightmaremap.DefaultProperty1Condition = nightmaremapDescProperty1Condition.Default.(string)
	// nightmaremapDescProperty1Description is the schema descriptor for property_1_description field.
	nightmaremapDescProperty1Description := nightmaremapFields[2].Descriptor()
	// nightmaremap.DefaultProperty1Description holds the default value on creation for the property_1_description field.
	nightmaremap.DefaultProperty1Description = nightmaremapDescProperty1Description.Default.(string)
	// nightmaremapDescProperty2Condition is the schema descriptor for property_2_condition field.
	nightmaremapDescProperty2Condition := nightmaremapFields[3].Descriptor()
	// nightmaremap.DefaultProperty2Condition holds the default value on creation for the property_2_condition field.
	nightmaremap.DefaultProperty2Condition = nightmaremapDescProperty2Condition.Default.(string)
	// nightmaremapDescProperty2Description is the schema descriptor for property_2_description field.
	nightmaremapDescProperty2Description := nightmaremapFields[4].Descriptor()
	// nightmaremap.DefaultProperty2Description holds the default value on creation for the property_2_description field.
	nightmaremap.DefaultProperty2Description = nightmaremapDescProperty2Description.Default.(string)
	// nightmaremapDescProperty3Condition is the schema descriptor for property_3_condition field.
	nightmaremapDescProperty3Condition := nightmaremapFields[5].Descriptor()
	// nightmaremap.DefaultProperty3Condition holds the default value on creation for the property_3_condition field.
	nightmaremap.DefaultProperty3Condition = nightmaremapDescProperty3Condition.Default.(string)
	// nightmaremapDescProperty3Description is the schema descriptor for property_3_description field.
	nightmaremapDescProperty3Description := nightmaremapFields[6].Descriptor()
	// nightmaremap.DefaultProperty3Description holds the default value on creation for the property_3_description field.
	nightmaremap.DefaultProperty3Description = nightmaremapDescProperty3Description.Default.(string)
	// nightmaremapDescProperty4Condition is the schema descriptor for property_4_condition field.
	nightmaremapDescProperty4Condition := nightmaremapFields[7].Descriptor()
	// nightmaremap.DefaultProperty4Condition holds the default value on creation for the property_4_condition field.
	nightmaremap.DefaultProperty4Condition = nightmaremapDescProperty4Condition.Default.(string)
	// nightmaremapDescProperty4Description is the schema descriptor for property_4_description field.
	nightmaremapDescProperty4Description := nightmaremapFields[8].Descriptor()
	// nightmaremap.DefaultProperty4Description holds the default value on creation for the property_4_description field.
	nightmaremap.DefaultProperty4Description = nightmaremapDescProperty4Description.Default.(string)
	// nightmaremapDescExtraProperty1Description is the schema descriptor for extra_property_1_description field.
	nightmaremapDescExtraProperty1Description := nightmaremapFields[9].Descriptor()
	// nightmaremap.DefaultExtraProperty1Description holds the default value on creation for the extra_property_1_description field.
	nightmaremap.DefaultExtraProperty1Description = nightmaremapDescExtraProperty1Description.Default.(string)
	// nightmaremapDescExtraProperty2Description is the schema descriptor for extra_property_2_description field.
	nightmaremapDescExtraProperty2Description := nightmaremapFields[10].Descriptor()
	// nightmaremap.DefaultExtraProperty2Description holds the default value on creation for the extra_property_2_description field.
	nightmaremap.DefaultExtraProperty2Description = nightmaremapDescExtraProperty2Description.Default.(string)
	// nightmaremapDescID is the schema descriptor for id field.
	nightmaremapDescID := nightmaremapMixinFields0[0].Descriptor()
	// nightmaremap.DefaultID holds the default value on creation for the id field.
	nightmaremap.DefaultID = nightmaremapDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFullName is the schema descriptor for full_name field.
	patientDescFullName := patientFields[2].Descriptor()
	// patient.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	patient.FullNameValidator = func() func(string) error {
		validators := patientDescFullName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(full_name string) error {
			for _, fn := range fns {
				if err := fn(full_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescNickname is the schema descriptor for nickname field.
	patientDescNickname := patientFields[3].Descriptor()
	// patient.NicknameValidator is a validator for the "nickname" field. It is called by the builders before save.
	patient.NicknameValidator = func() func(string) error {
		validators := patientDescNickname.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(nickname string) error {
			for _, fn := range fns {
				if err := fn(nickname); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescTelegram is the schema descriptor for telegram field.
	patientDescTelegram := patientFields[4].Descriptor()
	// patient.TelegramValidator is a validator for the "telegram" field. It is called by the builders before save.
	patient.TelegramValidator = patientDescTelegram.Validators[0].(func(string) error)
	// patientDescAvatarKey is the schema descriptor for avatar_key field.
	patientDescAvatarKey := patientFields[5].Descriptor()
	// patient.AvatarKeyValidator is a validator for the "avatar_key" field. It is called by the builders before save.
	patient.AvatarKeyValidator = patientDescAvatarKey.Validators[0].(func(string) error)
	// patientDescChemistryLevel is the schema descriptor for chemistry_level field.
	patientDescChemistryLevel := patientFields[6].Descriptor()
	// patient.DefaultChemistryLevel holds the default value on creation for the chemistry_level field.
	patient.DefaultChemistryLevel = patientDescChemistryLevel.Default.(int)
	// patient.ChemistryLevelValidator is a validator for the "chemistry_level" field. It is called by the builders before save.
	patient.ChemistryLevelValidator = patientDescChemistryLevel.Validators[0].(func(int) error)
	// patientDescMechanicsLevel is the schema descriptor for mechanics_level field.
	patientDescMechanicsLevel := patientFields[7].Descriptor()
	// patient.DefaultMechanicsLevel holds the default value on creation for the mechanics_level field.
	patient.DefaultMechanicsLevel = patientDescMechanicsLevel.Default.(int)
	// patient.MechanicsLevelValidator is a validator for the "mechanics_level" field. It is called by the builders before save.
	patient.MechanicsLevelValidator = patientDescMechanicsLevel.Validators[0].(func(int) error)
	// patientDescSocialSkillsLevel is the schema descriptor for social_skills_level field.
	patientDescSocialSkillsLevel := patientFields[8].Descriptor()
	// patient.DefaultSocialSkillsLevel holds the default value on creation for the social_skills_level field.
	patient.DefaultSocialSkillsLevel = patientDescSocialSkillsLevel.Default.(int)
	// patient.SocialSkillsLevelValidator is a validator for the "social_skills_level" field. It is called by the builders before save.
	patient.SocialSkillsLevelValidator = patientDescSocialSkillsLevel.Validators[0].(func(int) error)
	// patientDescPhysicalSkillsLevel is the schema descriptor for physical_skills_level field.
	patientDescPhysicalSkillsLevel := patientFields[9].Descriptor()
	// patient.DefaultPhysicalSkillsLevel holds the default value on creation for the physical_skills_level field.
	patient.DefaultPhysicalSkillsLevel = patientDescPhysicalSkillsLevel.Default.(int)
	// patient.PhysicalSkillsLevelValidator is a validator for the "physical_skills_level" field. It is called by the builders before save.
	patient.PhysicalSkillsLevelValidator = patientDescPhysicalSkillsLevel.Validators[0].(func(int) error)
	// patientDescBonusLevel is the schema descriptor for bonus_level field.
	patientDescBonusLevel := patientFields[10].Descriptor()
	// patient.DefaultBonusLevel holds the default value on creation for the bonus_level field.
	patient.DefaultBonusLevel = patientDescBonusLevel.Default.(string)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[2].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUpdatedAt is the schema descriptor for updated_at field.
	usersessionDescUpdatedAt := usersessionMixinFields1[1].Descriptor()
	// usersession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usersession.DefaultUpdatedAt = usersessionDescUpdatedAt.Default.(func() time.Time)
	// usersession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usersession.UpdateDefaultUpdatedAt = usersessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usersessionDescSessionID is the schema descriptor for session_id field.
	usersessionDescSessionID := usersessionFields[1].Descriptor()
	// usersession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	usersession.SessionIDValidator = func() func(string) error {
		validators := usersessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// usersessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	usersessionDescRefreshTokenHash := usersessionFields[2].Descriptor()
	// usersession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	usersession.RefreshTokenHashValidator = usersessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// usersessionDescIPAddress is the schema descriptor for ip_address field.
	usersessionDescIPAddress := usersessionFields[4].Descriptor()
	// usersession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	usersession.IPAddressValidator = usersessionDescIPAddress.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
