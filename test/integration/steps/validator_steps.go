package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/defend-your-code/form/internal/application/usecase/validation"
	"github.com/defend-your-code/form/internal/domain/valueobject"
)

// registerValidatorSteps registers steps driving a Validator directly.
func registerValidatorSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a new validator$`, aNewValidator)
	ctx.Step(`^a new validator allowing name punctuation$`, aNewValidatorAllowingNamePunctuation)
	ctx.Step(`^the validator is discarded$`, theValidatorIsDiscarded)

	ctx.Step(`^I validate the first name "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateName(s) }))
	ctx.Step(`^I validate the last name "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateLastName(s) }))
	ctx.Step(`^I validate a first name of (\d+) "([^"]*)" characters$`, iValidateARepeatedName)
	ctx.Step(`^I validate the first integer "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateFirstInteger(s) }))
	ctx.Step(`^I validate the second integer "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateSecondInteger(s) }))
	ctx.Step(`^I validate the input file "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateInputFile(s) }))
	ctx.Step(`^I validate the output file "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ValidateOutputFile(s) }))
	ctx.Step(`^I validate the password "([^"]*)"$`, iValidateThePassword)
	ctx.Step(`^I validate a password of (\d+) "([^"]*)" characters followed by "([^"]*)"$`, iValidateALongPassword)
	ctx.Step(`^I confirm the password "([^"]*)"$`, validateWith(func(v *validation.Validator, s string) valueobject.Result { return v.ConfirmPassword(s) }))

	ctx.Step(`^the result should be valid$`, theResultShouldBeValid)
	ctx.Step(`^the result should be invalid with reason "([^"]*)"$`, theResultShouldBeInvalidWithReason)
	ctx.Step(`^the result should be invalid with code "([^"]*)"$`, theResultShouldBeInvalidWithCode)
	ctx.Step(`^the result should be a precondition failure$`, theResultShouldBeAPreconditionFailure)
	ctx.Step(`^the stored password hash should not contain "([^"]*)"$`, theStoredPasswordHashShouldNotContain)
	ctx.Step(`^the stored first integer should be (-?\d+)$`, theStoredFirstIntegerShouldBe)
}

func newValidator(ctx context.Context, allowPunct bool) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.sessionID = uuid.New()
	tc.allowPunct = allowPunct
	tc.validator = validation.NewValidator(validation.Options{
		SessionID:            tc.sessionID,
		OutputDir:            tc.outputDir,
		AllowNamePunctuation: allowPunct,
	}, tc.passwordService, tc.files, tc.observer)
	return nil
}

func aNewValidator(ctx context.Context) error {
	return newValidator(ctx, false)
}

func aNewValidatorAllowingNamePunctuation(ctx context.Context) error {
	return newValidator(ctx, true)
}

func theValidatorIsDiscarded(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.validator == nil {
		return fmt.Errorf("no validator created")
	}
	tc.validator.Discard()
	return nil
}

func validateWith(fn func(*validation.Validator, string) valueobject.Result) func(context.Context, string) error {
	return func(ctx context.Context, input string) error {
		tc, err := testContext(ctx)
		if err != nil {
			return err
		}
		if tc.validator == nil {
			return fmt.Errorf("no validator created")
		}
		tc.result = fn(tc.validator, tc.resolve(input))
		tc.err = nil
		return nil
	}
}

func iValidateARepeatedName(ctx context.Context, count int, char string) error {
	return validateWith(func(v *validation.Validator, s string) valueobject.Result {
		return v.ValidateName(s)
	})(ctx, strings.Repeat(char, count))
}

func iValidateThePassword(ctx context.Context, password string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.validator == nil {
		return fmt.Errorf("no validator created")
	}
	tc.result, tc.err = tc.validator.ValidatePassword(password)
	return tc.err
}

func iValidateALongPassword(ctx context.Context, count int, char, suffix string) error {
	return iValidateThePassword(ctx, strings.Repeat(char, count)+suffix)
}

func theResultShouldBeValid(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !tc.result.Valid() {
		return fmt.Errorf("expected valid result, got %q (%s)", tc.result.Reason(), tc.result.Code())
	}
	return nil
}

func theResultShouldBeInvalidWithReason(ctx context.Context, reason string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.result.Valid() {
		return fmt.Errorf("expected invalid result with reason %q, got valid", reason)
	}
	if tc.result.Reason() != reason {
		return fmt.Errorf("expected reason %q, got %q", reason, tc.result.Reason())
	}
	return nil
}

func theResultShouldBeInvalidWithCode(ctx context.Context, code string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.result.Valid() {
		return fmt.Errorf("expected invalid result with code %s, got valid", code)
	}
	if string(tc.result.Code()) != code {
		return fmt.Errorf("expected code %s, got %s (%q)", code, tc.result.Code(), tc.result.Reason())
	}
	return nil
}

func theResultShouldBeAPreconditionFailure(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !tc.result.IsPrecondition() {
		return fmt.Errorf("expected precondition failure, got %q (%s)", tc.result.Reason(), tc.result.Code())
	}
	return nil
}

func theStoredPasswordHashShouldNotContain(ctx context.Context, password string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	hash, ok := tc.validator.PasswordHash()
	if !ok {
		return fmt.Errorf("no password hash stored")
	}
	if strings.Contains(hash, password) {
		return fmt.Errorf("stored hash contains the plain password")
	}
	return nil
}

func theStoredFirstIntegerShouldBe(ctx context.Context, expected int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	first, ok := tc.validator.First()
	if !ok {
		return fmt.Errorf("no first integer stored")
	}
	if int(first) != expected {
		return fmt.Errorf("expected first integer %d, got %d", expected, first)
	}
	return nil
}
